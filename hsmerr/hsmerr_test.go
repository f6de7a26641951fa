package hsmerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaErrorUnwrapsToSentinel(t *testing.T) {
	err := NewSchemaError("type", "unknown schema type: weird", ErrUnknownType)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "unknown schema type: weird")
}

func TestSchemaErrorWithoutKeyword(t *testing.T) {
	err := NewSchemaError("", "bad enum", ErrEmptyEnum)
	assert.NotContains(t, err.Error(), `""`)
	assert.Contains(t, err.Error(), "bad enum")
}
