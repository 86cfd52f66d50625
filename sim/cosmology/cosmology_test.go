package cosmology

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g2sim/g2sim/registry"
)

func seededRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	reg.Set("topology.chi_eff", float64(reg.ChiEff()), "test", registry.StatusDerived)
	return reg
}

func TestDarkEnergy_W0IsExactly(t *testing.T) {
	reg := seededRegistry(t)
	out, err := (&DarkEnergy{}).Run(reg)
	require.NoError(t, err)

	// The documented formula on the documented seed: -1 + 1/24.
	assert.Equal(t, -1+1.0/24, out["cosmology.w0"])
	assert.InDelta(t, -0.9583333333, out["cosmology.w0"], 1e-9)
	assert.Equal(t, -24.0/144.0, out["cosmology.wa"])
}

func TestDarkEnergy_ClaimsValidate(t *testing.T) {
	reg := seededRegistry(t)
	d := &DarkEnergy{}
	_, err := d.Run(reg)
	require.NoError(t, err)

	for _, c := range d.Claims() {
		v, err := c.Validate(reg)
		require.NoError(t, err)
		assert.True(t, v.Validated, "claim %s at %.2f sigma", c.ID, v.Sigma)
	}
}

func TestDarkEnergy_MissingChiEff(t *testing.T) {
	_, err := (&DarkEnergy{}).Run(registry.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrNotFound))
}

func TestHubble_Value(t *testing.T) {
	reg := registry.New()
	out, err := (&Hubble{}).Run(reg)
	require.NoError(t, err)

	want := 67.36 * math.Pow(1+1.0/48, 4)
	assert.Equal(t, want, out["cosmology.h0_derived"])
	assert.InDelta(t, 73.15, out["cosmology.h0_derived"], 0.01)
}

func TestHubble_WithinSH0ES(t *testing.T) {
	reg := registry.New()
	h := &Hubble{}
	_, err := h.Run(reg)
	require.NoError(t, err)

	v, err := h.Claims()[0].Validate(reg)
	require.NoError(t, err)
	assert.True(t, v.Validated)
	assert.Less(t, v.Sigma, 0.5)
}

func TestSpectral_Value(t *testing.T) {
	out, err := (&Spectral{}).Run(registry.New())
	require.NoError(t, err)
	assert.Equal(t, 1-1.0/24, out["cosmology.n_s"])
}

func TestSpectral_ClaimValidates(t *testing.T) {
	reg := registry.New()
	s := &Spectral{}
	_, err := s.Run(reg)
	require.NoError(t, err)

	v, err := s.Claims()[0].Validate(reg)
	require.NoError(t, err)
	assert.True(t, v.Validated)
	assert.InDelta(t, 1.56, v.Sigma, 0.05)
}

func TestFraction_Value(t *testing.T) {
	reg := seededRegistry(t)
	out, err := (&Fraction{}).Run(reg)
	require.NoError(t, err)
	assert.Equal(t, 144.0/210.0, out["cosmology.omega_de"])
}

func TestFraction_ClaimValidates(t *testing.T) {
	reg := seededRegistry(t)
	f := &Fraction{}
	_, err := f.Run(reg)
	require.NoError(t, err)

	v, err := f.Claims()[0].Validate(reg)
	require.NoError(t, err)
	assert.True(t, v.Validated)
}

func TestCosmology_RunsAreIdempotent(t *testing.T) {
	reg := seededRegistry(t)
	for _, s := range []interface {
		Run(*registry.Registry) (map[string]float64, error)
	}{
		&DarkEnergy{}, &Hubble{}, &Spectral{}, &Fraction{},
	} {
		first, err := s.Run(reg)
		require.NoError(t, err)
		second, err := s.Run(reg)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
