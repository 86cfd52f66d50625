package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyParity_DefaultSeeds(t *testing.T) {
	r := New()
	// 135 + 153 = 288 = 2 * 144
	assert.True(t, r.VerifyParity())
}

func TestVerifyParity_BrokenSeeds(t *testing.T) {
	s := DefaultSeeds()
	s.DimL = 136
	r := NewWithSeeds(s)
	assert.False(t, r.VerifyParity())
}

func TestVerifyEulerFactor(t *testing.T) {
	assert.True(t, New().VerifyEulerFactor())

	s := DefaultSeeds()
	s.B3 = 26 // 26^2/4 = 169 exactly, still closes
	assert.True(t, NewWithSeeds(s).VerifyEulerFactor())

	s.B3 = 25 // 625/4 truncates
	assert.False(t, NewWithSeeds(s).VerifyEulerFactor())
}

func TestVerifyIntegerClosure(t *testing.T) {
	assert.True(t, New().VerifyIntegerClosure())

	s := DefaultSeeds()
	s.B3 = 26 // not divisible by 8
	assert.False(t, NewWithSeeds(s).VerifyIntegerClosure())
}

func TestVerifyAll_AllPassOnDefaults(t *testing.T) {
	checks := New().VerifyAll()
	assert.Len(t, checks, 3)
	for _, c := range checks {
		assert.True(t, c.Passed, "check %s failed: %s", c.Name, c.Detail)
	}
}
