package settlement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReference(t *testing.T) {
	ref := NewReference()

	assert.True(t, strings.HasPrefix(ref, "TXN-"))
	assert.True(t, IsOriginal(ref))

	// millis timestamp plus a random segment
	parts := strings.SplitN(strings.TrimPrefix(ref, "TXN-"), "-", 2)
	assert.Len(t, parts, 2)
	assert.NotEmpty(t, parts[1])

	assert.NotEqual(t, ref, NewReference())
}

func TestDerivedReferences(t *testing.T) {
	ref := "TXN-1700000000000-ab12cd34"

	commission := CommissionReference(ref)
	agent := AgentShareReference(ref)

	assert.Equal(t, "COM-"+ref, commission)
	assert.Equal(t, "AGT-"+ref, agent)
	assert.False(t, IsOriginal(commission))
	assert.False(t, IsOriginal(agent))

	assert.Equal(t, ref, OriginalReference(commission))
	assert.Equal(t, ref, OriginalReference(agent))
	assert.Equal(t, ref, OriginalReference(ref))
}
