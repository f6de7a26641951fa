// Package driver implements the engine driver (§4.H): the single
// stateful component in this module, holding one acceptor, its live
// walker population, and the vocabulary used for token healing. It
// applies one model token per step and exposes the accept/heal/reject
// verdict the logits-biasing front-end needs.
//
// Grounded on meta.Engine's facade shape: compiled/immutable schema state
// plus a small Config/Stats pair, exactly the way meta.Engine pairs an
// immutable NFA with meta.Config and running match statistics.
package driver

import (
	"sort"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/engine"
	"github.com/coregx/hsm/heal"
	"github.com/coregx/hsm/hsmerr"
	"github.com/coregx/hsm/hsmlog"
	"github.com/coregx/hsm/primitive"
	"github.com/coregx/hsm/tokenizer"
	"github.com/coregx/hsm/vocab"
)

// Verdict is process_token's three-way result (§4.D, §4.H).
type Verdict int

const (
	// Reject means the proposed token is inconsistent with the
	// structure even after healing; the walker population is unchanged
	// (§7: "Idempotence of reject").
	Reject Verdict = iota
	// Accept means the proposed token was consumed exactly.
	Accept
	// Healed means the proposed token was replaced by the longest
	// in-vocabulary prefix that keeps the parse alive.
	Healed
)

// String renders v for logging.
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Healed:
		return "healed"
	default:
		return "reject"
	}
}

// Driver holds a single acceptor and its current walker population
// (§4.H). Embedding multiple drivers in one process is supported — a
// Driver has no global state.
type Driver struct {
	acceptor   accept.Acceptor
	tok        tokenizer.Tokenizer
	vocabulary *vocab.Vocabulary
	cfg        Config
	log        hsmlog.Logger

	walkers []*accept.Walker
	stats   Stats
}

// New builds a Driver. tok and vocabulary may be nil for callers that
// only ever use consume-by-string flows without token healing; cfg is
// validated and DefaultConfig() used in place of a zero Config.
func New(tok tokenizer.Tokenizer, vocabulary *vocab.Vocabulary, cfg Config, log hsmlog.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = hsmlog.Discard
	}
	return &Driver{tok: tok, vocabulary: vocabulary, cfg: cfg, log: log}, nil
}

// SetSchema installs a as the driver's acceptor, wrapping it in the
// configured open/close delimiters first when useDelimiters is true or
// Config.UseDelimiters is set (§4.H's set_schema(acceptor,
// use_delimiters?, delimiters?)). Resets the walker population to a's
// initial walkers and clears Stats.
func (d *Driver) SetSchema(a accept.Acceptor, useDelimiters bool, delims *Delimiters) {
	d.acceptor = a
	if useDelimiters || d.cfg.UseDelimiters {
		openDelim, closeDelim := d.cfg.Delimiters.Open, d.cfg.Delimiters.Close
		if delims != nil {
			openDelim, closeDelim = delims.Open, delims.Close
		}
		d.acceptor = primitive.Encapsulated(openDelim, a, closeDelim, 1)
	}
	d.walkers = engine.WalkersOf(d.acceptor)
	d.stats = Stats{}
}

// Walkers exposes the current live walker population for inspection.
func (d *Driver) Walkers() []*accept.Walker {
	return d.walkers
}

// Stats returns the running counters accumulated so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// HasReachedAcceptState reports whether any live walker has reached an
// accept state.
func (d *Driver) HasReachedAcceptState() bool {
	for _, w := range d.walkers {
		if w.HasReachedAcceptState() {
			return true
		}
	}
	return false
}

// IsInStructuredRegion reports whether the driver is past any
// wait-for-trigger delimiter and not currently inside a free-form value
// (e.g. a JSON string body) — used to let a front-end's sampling
// temperature diverge inside free-form text (§4.H).
func (d *Driver) IsInStructuredRegion() bool {
	if len(d.walkers) == 0 {
		return false
	}
	for _, w := range d.walkers {
		if w.AcceptsAnyToken() {
			return false
		}
	}
	for _, w := range d.walkers {
		if w.IsWithinValue() {
			return false
		}
	}
	return true
}

// step runs one token through the walker population, optionally
// attempting healing, and returns the verdict plus the token string
// actually consumed ("" on reject).
func (d *Driver) step(tok string, allowHeal bool) (Verdict, string) {
	if exact := filterExact(engine.AdvanceAll(d.walkers, tok)); len(exact) > 0 {
		d.walkers = d.capPopulation(exact)
		d.stats.Steps++
		return Accept, tok
	}

	if allowHeal && d.vocabulary != nil {
		if cand, ok := heal.LongestHealable(d.vocabulary, tok); ok {
			if exact := filterExact(engine.AdvanceAll(d.walkers, cand.Healed)); len(exact) > 0 {
				d.walkers = d.capPopulation(exact)
				d.stats.Steps++
				d.stats.Heals++
				d.stats.lastHealStep = d.stats.Steps
				return Healed, cand.Healed
			}
		}
	}

	d.stats.Rejects++
	return Reject, ""
}

// ProcessToken decodes id, advances the walker population, and reports
// the verdict (§4.H). On Healed, the returned int is the substitute
// token id for the healed string (or -1 if the tokenizer cannot encode
// it back to a single id). On Reject, the walker population is
// unchanged — process_token is idempotent on reject (§7).
func (d *Driver) ProcessToken(id int) (Verdict, int) {
	tok, ok := d.tok.Decode(id)
	if !ok {
		d.stats.Rejects++
		return Reject, 0
	}

	verdict, consumed := d.step(tok, true)
	switch verdict {
	case Accept:
		return Accept, id
	case Healed:
		if ids, err := d.tok.Encode(consumed); err == nil && len(ids) == 1 {
			return Healed, ids[0]
		}
		return Healed, -1
	default:
		return Reject, 0
	}
}

// ConsumeRaw tokenizes text with the driver's tokenizer and steps the
// walker population through each decoded id, treating only exact matches
// as success (§4.H):
// healing is not attempted, since text is assumed to already be
// known-good rather than a model's candidate proposal. Returns
// hsmerr.ErrNotAccepted at the first id that isn't accepted outright.
func (d *Driver) ConsumeRaw(text string) error {
	ids, err := d.tok.Encode(text)
	if err != nil {
		return err
	}
	for _, id := range ids {
		tok, ok := d.tok.Decode(id)
		if !ok {
			return hsmerr.ErrNotAccepted
		}
		if verdict, _ := d.step(tok, false); verdict != Accept {
			return hsmerr.ErrNotAccepted
		}
	}
	return nil
}

// AllowedTokenIDs returns every vocabulary token id that is a valid
// continuation of at least one live walker (§4.G point 3: "the core only
// needs to expose walker-valid continuations" for a biasing front-end to
// consume). This is a reference implementation, not a performance-tuned
// one: production front-ends narrow the candidate set with the reverse
// trie/Aho-Corasick scanner in vocab before ever probing a walker.
func (d *Driver) AllowedTokenIDs() map[int]bool {
	if d.vocabulary == nil {
		return nil
	}
	allowed := make(map[int]bool)
	for _, word := range d.vocabulary.Forward.Words() {
		id, ok := d.vocabulary.Forward.TokenID(word)
		if !ok {
			continue
		}
		for _, w := range d.walkers {
			if walkerAcceptsWhole(w, word) {
				allowed[id] = true
				break
			}
		}
	}
	return allowed
}

func walkerAcceptsWhole(w *accept.Walker, token string) bool {
	for _, nw := range w.Consume(token) {
		if rem, has := nw.RemainingInput(); !has || rem == "" {
			return true
		}
	}
	return false
}

// filterExact keeps only the walkers that consumed their proposed token
// in full, with no remaining_input tail.
func filterExact(walkers []*accept.Walker) []*accept.Walker {
	out := make([]*accept.Walker, 0, len(walkers))
	for _, w := range walkers {
		if rem, has := w.RemainingInput(); !has || rem == "" {
			out = append(out, w)
		}
	}
	return out
}

// capPopulation enforces cfg.MaxPopulation (§9 "branching factor
// ceilings"): on overflow, keep the walkers with the longest RawValue
// (closest to acceptance).
func (d *Driver) capPopulation(walkers []*accept.Walker) []*accept.Walker {
	if d.cfg.MaxPopulation <= 0 || len(walkers) <= d.cfg.MaxPopulation {
		return walkers
	}
	d.log.Warnf("driver: walker population %d exceeds MaxPopulation %d, trimming", len(walkers), d.cfg.MaxPopulation)

	sorted := make([]*accept.Walker, len(walkers))
	copy(sorted, walkers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].RawValue()) > len(sorted[j].RawValue())
	})
	return sorted[:d.cfg.MaxPopulation]
}
