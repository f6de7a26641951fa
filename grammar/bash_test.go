package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBashValidatePrefix(t *testing.T) {
	assert.True(t, Bash.Validate(`echo "hello`, false, "bash"))
	assert.True(t, Bash.Validate("if [ -f a ]; then", false, "bash"))
	assert.False(t, Bash.Validate("echo )", false, "bash"))
}

func TestBashValidateStrictRequiresClosedBlocks(t *testing.T) {
	open := "if [ -f a ]; then\n  echo hi"
	assert.False(t, Bash.Validate(open, true, "bash"))

	closed := "if [ -f a ]; then\n  echo hi\nfi"
	assert.True(t, Bash.Validate(closed, true, "bash"))
}

func TestBashValidateStrictRejectsDanglingOperator(t *testing.T) {
	assert.False(t, Bash.Validate("echo hi &&", true, "bash"))
	assert.False(t, Bash.Validate("echo hi |", true, "bash"))
	assert.True(t, Bash.Validate("echo hi && echo bye", true, "bash"))
}

func TestBashValidateRejectsUnbalancedBrackets(t *testing.T) {
	assert.False(t, Bash.Validate("echo $(( 1 + 2 )", true, "bash"))
}
