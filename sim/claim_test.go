package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g2sim/g2sim/registry"
)

func TestClaimValidate_SigmaBudget(t *testing.T) {
	reg := registry.New()
	reg.SetMeasured("reference.test", 10.0, 0.5, "test")
	reg.Set("derived.test", 10.8, "test", registry.StatusPredicted)

	c := Claim{
		ID:            "derived.test",
		Target:        "derived.test",
		ReferencePath: "reference.test",
		MaxSigma:      3,
	}
	v, err := c.Validate(reg)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, v.Sigma, 1e-9)
	assert.True(t, v.Validated)

	reg.Set("derived.test", 12.0, "test", registry.StatusPredicted)
	v, err = c.Validate(reg)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v.Sigma, 1e-9)
	assert.False(t, v.Validated)
}

func TestClaimValidate_AbsoluteToleranceAgainstReference(t *testing.T) {
	reg := registry.New()
	reg.SetMeasured("reference.test", 137.035999084, 0.000000021, "test")
	reg.Set("derived.test", 137.0363038, "test", registry.StatusPredicted)

	c := Claim{
		ID:            "derived.test",
		Target:        "derived.test",
		ReferencePath: "reference.test",
		AbsTol:        5e-4,
	}
	v, err := c.Validate(reg)
	require.NoError(t, err)
	// Sigma is enormous but not the criterion here.
	assert.Greater(t, v.Sigma, 1000.0)
	assert.True(t, v.Validated)
}

func TestClaimValidate_ExactExpected(t *testing.T) {
	reg := registry.New()
	reg.Set("derived.count", 3.0, "test", registry.StatusDerived)

	c := Claim{ID: "derived.count", Target: "derived.count", Expected: 3, AbsTol: 1e-12}
	v, err := c.Validate(reg)
	require.NoError(t, err)
	assert.True(t, v.Validated)
	assert.Equal(t, 0.0, v.AbsErr)
}

func TestClaimValidate_MissingTarget(t *testing.T) {
	c := Claim{ID: "ghost", Target: "never.set", Expected: 1, AbsTol: 1e-12}
	_, err := c.Validate(registry.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrNotFound))
}

func TestResultValidated(t *testing.T) {
	ok := Result{Validations: []Validation{{Validated: true}, {Validated: true}}}
	assert.True(t, ok.Validated())

	mixed := Result{Validations: []Validation{{Validated: true}, {Validated: false}}}
	assert.False(t, mixed.Validated())

	failed := Result{Err: errors.New("boom")}
	assert.False(t, failed.Validated())
}
