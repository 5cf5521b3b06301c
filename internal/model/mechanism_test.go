package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMechanism_SpeciesLookups(t *testing.T) {
	m := &Mechanism{
		Species: []Species{{Name: "H"}, {Name: "H2"}, {Name: "AR"}},
	}

	require.Equal(t, []string{"H", "H2", "AR"}, m.SpeciesNames())
	require.True(t, m.HasSpecies("H2"))
	require.False(t, m.HasSpecies("H2O"))

	set := m.SpeciesSet()
	require.Len(t, set, 3)
	_, ok := set["AR"]
	require.True(t, ok)
}

func TestMechanism_NReactions(t *testing.T) {
	m := &Mechanism{}
	require.Equal(t, 0, m.NReactions())

	m.Reactions = append(m.Reactions, Reaction{Equation: "H2 => H + H", Kind: KindElementary})
	require.Equal(t, 1, m.NReactions())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Cache.Enabled)
	require.Greater(t, cfg.Concurrency.Workers, 0)
	require.Equal(t, 10.0, cfg.Sweep.Factor)
	require.Equal(t, "chem.inp", cfg.Sweep.FilePrefix)
}
