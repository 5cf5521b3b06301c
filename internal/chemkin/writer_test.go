package chemkin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinetics-io/mech2ck/internal/model"
)

func elementary(equation string, a float64) model.Reaction {
	return model.Reaction{
		Equation: equation,
		Kind:     model.KindElementary,
		Rate:     model.Arrhenius{A: a},
	}
}

func threeBody(equation string, a float64, effs map[string]float64) model.Reaction {
	return model.Reaction{
		Equation:     equation,
		Kind:         model.KindThreeBody,
		Rate:         model.Arrhenius{A: a},
		Efficiencies: effs,
	}
}

func hydrogenMechanism(reactions ...model.Reaction) *model.Mechanism {
	return &model.Mechanism{
		Elements: []string{"H", "O", "AR"},
		Species: []model.Species{
			{Name: "H"}, {Name: "H2"}, {Name: "O2"}, {Name: "HO2"}, {Name: "AR"},
		},
		Reactions: reactions,
	}
}

// writeToString runs Write against a temp path and returns the file content.
func writeToString(t *testing.T, m *model.Mechanism, factors []float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chem.inp")
	written, err := Write(m, factors, path)
	require.NoError(t, err)
	require.Equal(t, path, written)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// reactionLines returns the lines between REACTIONS and the final END.
func reactionLines(t *testing.T, content string) []string {
	t.Helper()
	lines := strings.Split(content, "\n")
	start := -1
	for i, line := range lines {
		if line == "REACTIONS" {
			start = i + 1
			break
		}
	}
	require.GreaterOrEqual(t, start, 0, "REACTIONS line not found")
	require.Equal(t, "END", lines[len(lines)-1])
	return lines[start : len(lines)-1]
}

func TestWrite_EndToEnd(t *testing.T) {
	m := &model.Mechanism{
		Elements: []string{"H"},
		Species:  []model.Species{{Name: "H"}, {Name: "H2"}},
		Reactions: []model.Reaction{{
			Equation: "H2 => H + H",
			Kind:     model.KindElementary,
			Rate:     model.Arrhenius{A: 1.0e10, B: 0, Ea: 10000},
		}},
	}

	content := writeToString(t, m, []float64{2.0})

	rule := "!" + strings.Repeat("-", 75)
	require.True(t, strings.HasPrefix(content, rule+"\n"), "file should open with a banner rule")
	require.Contains(t, content, "!  Chemkin File converted from Solution Object\n")
	require.Contains(t, content, "!  Species data\n")
	require.Contains(t, content, "!  Reaction Data\n")

	require.Contains(t, content, "ELEMENTS\nH\nEND\n")
	require.Contains(t, content, "SPECIES\n")
	require.True(t, strings.HasSuffix(content, "\nEND"), "final END carries no trailing newline")

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 1)
	want := fmt.Sprintf("%-51s%9s%9s%11s", "H2=>H+H", "2.000E+10", "0.000", "2.39")
	require.Equal(t, want, rxns[0])
}

func TestWrite_ElementsDoubleSpaced(t *testing.T) {
	content := writeToString(t, hydrogenMechanism(), nil)
	require.Contains(t, content, "ELEMENTS\nH  O  AR\nEND\n")
}

func TestWrite_NilFactorsEqualsAllOnes(t *testing.T) {
	m := hydrogenMechanism(
		elementary("H2 => H + H", 1.0e10),
		elementary("H + O2 <=> OH + O", 2.65e16),
	)

	withNil := writeToString(t, m, nil)
	withOnes := writeToString(t, m, []float64{1.0, 1.0})
	require.Equal(t, withNil, withOnes)
}

func TestWrite_UnitCorrections(t *testing.T) {
	cases := []struct {
		name  string
		rxn   model.Reaction
		scale float64
		wantA string
	}{
		{"elementary first order", elementary("H2 => H + H", 1.0e10), 1.0, "1.000E+10"},
		{"elementary second order scaled", elementary("H + H => H2", 5.0e8), 3.0, "1.500E+12"},
		{"elementary third order", elementary("H + H + H2 => H2 + H2", 1.0e9), 1.0, "1.000E+15"},
		{"three-body first order", threeBody("H2 + M => H + H + M", 1.0e10, nil), 1.0, "1.000E+13"},
		{"three-body second order", threeBody("H + H + M => H2 + M", 1.0e10, nil), 1.0, "1.000E+16"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := writeToString(t, hydrogenMechanism(tc.rxn), []float64{tc.scale})
			rxns := reactionLines(t, content)
			fields := strings.Fields(rxns[0])
			require.Len(t, fields, 4)
			require.Equal(t, tc.wantA, fields[1])
		})
	}
}

func TestWrite_ThreeBodyEfficienciesFilteredAndSorted(t *testing.T) {
	rxn := threeBody("H + H + M <=> H2 + M", 9.0e10, map[string]float64{
		"H2":  2.4,
		"AR":  0.83,
		"H2O": 5.0, // not in the species list, must not appear
	})
	content := writeToString(t, hydrogenMechanism(rxn), nil)

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 2)
	require.Equal(t, "AR/ 0.83/ H2/ 2.4/", rxns[1])
	require.NotContains(t, content, "H2O")
}

func TestWrite_ThreeBodyAllEfficienciesFiltered(t *testing.T) {
	rxn := threeBody("H + H + M <=> H2 + M", 9.0e10, map[string]float64{"XX": 1.5})
	content := writeToString(t, hydrogenMechanism(rxn), nil)

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 1, "no efficiency line when every species is filtered out")
}

func TestWrite_Falloff(t *testing.T) {
	rxn := model.Reaction{
		Equation:     "H + O2 (+M) <=> HO2 (+M)",
		Kind:         model.KindFalloff,
		HighRate:     model.Arrhenius{A: 4.65e9, B: 0.44, Ea: 0},
		LowRate:      model.Arrhenius{A: 6.37e14, B: -1.72, Ea: 2092},
		Troe:         []float64{0.5, 30.0, 90000.0},
		Efficiencies: map[string]float64{"AR": 0.53},
	}
	content := writeToString(t, hydrogenMechanism(rxn), nil)

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 4)

	// Main line carries the high-pressure rate, corrected for order 2.
	require.True(t, strings.HasPrefix(rxns[0], "H+O2(+M)<=>HO2(+M)"))
	fields := strings.Fields(rxns[0])
	require.Equal(t, "4.650E+12", fields[1])
	require.Equal(t, "0.440", fields[2])

	require.Equal(t, "     LOW  /  6.370E+20  -1.720  0.50/", rxns[1])
	require.Equal(t, "     TROE/   0.5  30.0  90000.0 /", rxns[2])
	require.Equal(t, "AR/ 0.53/", rxns[3])
}

func TestWrite_FalloffWithoutTroe(t *testing.T) {
	for _, troe := range [][]float64{nil, {0.5, 30.0}} {
		rxn := model.Reaction{
			Equation: "H + O2 (+M) <=> HO2 (+M)",
			Kind:     model.KindFalloff,
			HighRate: model.Arrhenius{A: 4.65e9},
			LowRate:  model.Arrhenius{A: 6.37e14},
			Troe:     troe,
		}
		content := writeToString(t, hydrogenMechanism(rxn), nil)
		require.NotContains(t, content, "TROE")
		require.Contains(t, content, "LOW")
	}
}

func TestWrite_DuplicateFlag(t *testing.T) {
	dup := elementary("H + O2 <=> OH + O", 2.65e16)
	dup.Duplicate = true
	content := writeToString(t, hydrogenMechanism(dup, elementary("H2 => H + H", 1.0e10)), nil)

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 3)
	require.Equal(t, " DUPLICATE", rxns[1])
	require.Equal(t, 1, strings.Count(content, "DUPLICATE"))
}

func TestWrite_ReactionOrderPreserved(t *testing.T) {
	m := hydrogenMechanism(
		elementary("H2 => H + H", 1.0e10),
		elementary("H + O2 <=> OH + O", 2.65e16),
		elementary("H + HO2 <=> H2 + O2", 4.48e13),
	)
	content := writeToString(t, m, nil)

	rxns := reactionLines(t, content)
	require.Len(t, rxns, 3)
	require.True(t, strings.HasPrefix(rxns[0], "H2=>H+H"))
	require.True(t, strings.HasPrefix(rxns[1], "H+O2<=>OH+O"))
	require.True(t, strings.HasPrefix(rxns[2], "H+HO2<=>H2+O2"))
}

func TestWrite_SpeciesWrapping(t *testing.T) {
	m := &model.Mechanism{Elements: []string{"C", "H"}}
	for i := 0; i < 8; i++ {
		m.Species = append(m.Species, model.Species{Name: fmt.Sprintf("C7H%02dXYZ", i)})
	}

	content := writeToString(t, m, nil)
	lines := strings.Split(content, "\n")
	inSpecies := false
	for _, line := range lines {
		if line == "SPECIES" {
			inSpecies = true
			continue
		}
		if inSpecies && line == "END" {
			break
		}
		if inSpecies {
			require.LessOrEqual(t, len(strings.TrimRight(line, " ")), 70)
		}
	}
	for _, sp := range m.Species {
		require.Contains(t, content, sp.Name)
	}
}

func TestWrite_NoOutputPath(t *testing.T) {
	_, err := Write(hydrogenMechanism(), nil, "")
	require.ErrorIs(t, err, ErrNoOutputPath)
}

func TestWrite_ScaleLengthMismatch(t *testing.T) {
	m := hydrogenMechanism(elementary("H2 => H + H", 1.0e10))
	path := filepath.Join(t.TempDir(), "chem.inp")

	_, err := Write(m, []float64{1.0, 2.0}, path)
	require.ErrorIs(t, err, ErrScaleLength)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "no file should exist after a configuration error")
	_, statErr = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(statErr), "no temp file should be left behind")
}

func TestWrite_UnknownReactionKind(t *testing.T) {
	m := hydrogenMechanism(model.Reaction{Equation: "H2 => H + H", Kind: "chebyshev"})
	path := filepath.Join(t.TempDir(), "chem.inp")

	_, err := Write(m, nil, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown reaction kind")

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestWrite_BadEquationPropagates(t *testing.T) {
	m := hydrogenMechanism(elementary("H2 + O2", 1.0e10))
	_, err := Write(m, nil, filepath.Join(t.TempDir(), "chem.inp"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no reaction arrow")
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chem.inp")
	m1 := hydrogenMechanism(elementary("H2 => H + H", 1.0e10))
	m2 := hydrogenMechanism(elementary("H + O2 <=> OH + O", 2.65e16))

	_, err := Write(m1, nil, path)
	require.NoError(t, err)
	_, err = Write(m2, nil, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "H+O2<=>OH+O")
	require.NotContains(t, string(data), "H2=>H+H")
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "0.83", formatValue(0.83))
	require.Equal(t, "5.0", formatValue(5))
	require.Equal(t, "90000.0", formatValue(90000))
	require.Equal(t, "1e-30", formatValue(1e-30))
}
