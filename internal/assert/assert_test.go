package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThatPassing(t *testing.T) {
	assert.True(t, That(true, "never reported"))
}

func TestThatFailing(t *testing.T) {
	if Fatal {
		assert.Panics(t, func() { That(false, "broken %d", 1) })
		return
	}
	assert.False(t, That(false, "broken %d", 1))
}
