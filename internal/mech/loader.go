package mech

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinetics-io/mech2ck/internal/model"
)

// mechDoc mirrors the on-disk YAML schema (Cantera-style mechanism files).
type mechDoc struct {
	Description string        `yaml:"description"`
	Elements    []string      `yaml:"elements"`
	Species     []speciesDoc  `yaml:"species"`
	Reactions   []reactionDoc `yaml:"reactions"`
}

type speciesDoc struct {
	Name        string         `yaml:"name"`
	Composition map[string]int `yaml:"composition"`
	Thermo      *thermoDoc     `yaml:"thermo"`
}

type thermoDoc struct {
	Model             string      `yaml:"model"`
	TemperatureRanges []float64   `yaml:"temperature-ranges"`
	Data              [][]float64 `yaml:"data"`
	Phase             string      `yaml:"phase"`
	Note              string      `yaml:"note"`
}

type reactionDoc struct {
	Equation     string             `yaml:"equation"`
	Type         string             `yaml:"type"`
	Rate         *model.Arrhenius   `yaml:"rate-constant"`
	High         *model.Arrhenius   `yaml:"high-P-rate-constant"`
	Low          *model.Arrhenius   `yaml:"low-P-rate-constant"`
	Troe         map[string]float64 `yaml:"Troe"`
	Efficiencies map[string]float64 `yaml:"efficiencies"`
	Duplicate    bool               `yaml:"duplicate"`
}

// Load reads a mechanism from a YAML file. Structural problems (unknown
// reaction type, missing rate blocks, malformed thermo data) are reported as
// errors; physical plausibility is not checked.
func Load(path string) (*model.Mechanism, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mechanism: %w", err)
	}

	var doc mechDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mechanism %s: %w", path, err)
	}

	m := &model.Mechanism{
		Description: doc.Description,
		Elements:    doc.Elements,
	}

	for _, sd := range doc.Species {
		sp, err := convertSpecies(sd)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", sd.Name, err)
		}
		m.Species = append(m.Species, sp)
	}

	for i, rd := range doc.Reactions {
		rxn, err := convertReaction(rd)
		if err != nil {
			return nil, fmt.Errorf("reaction %d (%s): %w", i+1, rd.Equation, err)
		}
		m.Reactions = append(m.Reactions, rxn)
	}

	return m, nil
}

func convertSpecies(sd speciesDoc) (model.Species, error) {
	sp := model.Species{
		Name:        sd.Name,
		Composition: sd.Composition,
	}
	if sd.Name == "" {
		return sp, fmt.Errorf("missing name")
	}
	if sd.Thermo == nil {
		return sp, nil
	}

	td := sd.Thermo
	if td.Model != "" && td.Model != "NASA7" {
		return sp, fmt.Errorf("unsupported thermo model %q", td.Model)
	}
	if len(td.TemperatureRanges) != 3 {
		return sp, fmt.Errorf("thermo needs 3 temperature bounds, got %d", len(td.TemperatureRanges))
	}
	if len(td.Data) != 2 || len(td.Data[0]) != 7 || len(td.Data[1]) != 7 {
		return sp, fmt.Errorf("thermo needs two rows of 7 coefficients")
	}

	th := &model.Thermo{
		Tmin:  td.TemperatureRanges[0],
		Tmid:  td.TemperatureRanges[1],
		Tmax:  td.TemperatureRanges[2],
		Phase: td.Phase,
		Note:  td.Note,
	}
	copy(th.Low[:], td.Data[0])
	copy(th.High[:], td.Data[1])
	if th.Phase == "" {
		th.Phase = "G"
	}
	sp.Thermo = th
	return sp, nil
}

func convertReaction(rd reactionDoc) (model.Reaction, error) {
	rxn := model.Reaction{
		Equation:     rd.Equation,
		Efficiencies: rd.Efficiencies,
		Duplicate:    rd.Duplicate,
	}
	if rd.Equation == "" {
		return rxn, fmt.Errorf("missing equation")
	}

	switch rd.Type {
	case "", "elementary":
		rxn.Kind = model.KindElementary
		if rd.Rate == nil {
			return rxn, fmt.Errorf("missing rate-constant")
		}
		rxn.Rate = *rd.Rate
	case "three-body":
		rxn.Kind = model.KindThreeBody
		if rd.Rate == nil {
			return rxn, fmt.Errorf("missing rate-constant")
		}
		rxn.Rate = *rd.Rate
	case "falloff":
		rxn.Kind = model.KindFalloff
		if rd.High == nil || rd.Low == nil {
			return rxn, fmt.Errorf("falloff reaction needs high-P and low-P rate constants")
		}
		rxn.HighRate = *rd.High
		rxn.LowRate = *rd.Low
		troe, err := convertTroe(rd.Troe)
		if err != nil {
			return rxn, err
		}
		rxn.Troe = troe
	default:
		return rxn, fmt.Errorf("unknown reaction type %q", rd.Type)
	}

	return rxn, nil
}

// convertTroe flattens the Cantera-style {A, T3, T1, T2} map into the
// ordered parameter list the writer consumes. An absent map is fine; a
// partial one is not.
func convertTroe(t map[string]float64) ([]float64, error) {
	if len(t) == 0 {
		return nil, nil
	}
	for _, key := range []string{"A", "T3", "T1"} {
		if _, ok := t[key]; !ok {
			return nil, fmt.Errorf("Troe parameters missing %q", key)
		}
	}
	params := []float64{t["A"], t["T3"], t["T1"]}
	if t2, ok := t["T2"]; ok {
		params = append(params, t2)
	}
	return params, nil
}
