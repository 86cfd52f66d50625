package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedGetters(t *testing.T) {
	r := New()
	assert.Equal(t, 24, r.B3())
	assert.Equal(t, 135, r.DimL())
	assert.Equal(t, 153, r.DimR())
	assert.Equal(t, 144, r.ChiEff())
	assert.InDelta(t, 1.280145, r.XiTorsion(), 1e-12)
}

func TestNew_SeedPathsMaterialized(t *testing.T) {
	r := New()
	for _, path := range []string{
		"topology.b3",
		"topology.dim_l",
		"topology.dim_r",
		"fit.xi_torsion",
	} {
		assert.True(t, r.Has(path), "missing seed path %s", path)
	}

	// Derived paths are produced by the topology module, not preloaded.
	assert.False(t, r.Has("topology.chi_eff"))

	xi, err := r.Float("fit.xi_torsion")
	require.NoError(t, err)
	assert.InDelta(t, 1.280145, xi, 1e-12)
}

func TestGet_MissingPath(t *testing.T) {
	r := New()
	_, err := r.Get("cosmology.h0_derived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFloat_WrongType(t *testing.T) {
	r := New()
	r.Set("meta.label", "leptonic", "test", StatusDerived)
	_, err := r.Float("meta.label")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongType))
}

func TestFloat_WidensIntegers(t *testing.T) {
	r := New()
	v, err := r.Float("topology.b3")
	require.NoError(t, err)
	assert.Equal(t, 24.0, v)
}

func TestSet_UnconditionalOverwrite(t *testing.T) {
	r := New()
	r.Set("particle.sin_theta_c", 0.2236, "cabibbo-v1", StatusPredicted)
	r.Set("particle.sin_theta_c", 0.2250, "cabibbo-v2", StatusPredicted)

	p, err := r.Get("particle.sin_theta_c")
	require.NoError(t, err)
	assert.Equal(t, 0.2250, p.Value)
	assert.Equal(t, "cabibbo-v2", p.Source)
}

func TestReferences_CarryUncertainty(t *testing.T) {
	r := New()
	p, err := r.Get("reference.h0_local")
	require.NoError(t, err)
	assert.Equal(t, StatusEstablished, p.Status)
	assert.Equal(t, "SH0ES 2022", p.Source)
	assert.Equal(t, 1.04, p.Uncertainty)
}

func TestSnapshot_SortedAndComplete(t *testing.T) {
	r := New()
	entries := r.Snapshot()
	assert.Equal(t, r.Len(), len(entries))
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Path, entries[i].Path)
	}
}

func TestSnapshot_StableAcrossCalls(t *testing.T) {
	r := New()
	first := r.Snapshot()
	second := r.Snapshot()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("snapshot not stable (-first +second):\n%s", diff)
	}
}
