// Package chemkin formats a kinetics mechanism as a CHEMKIN-format
// mechanism file (.inp). It is a pure text transform: unit conversion,
// fixed-column layout and per-reaction-kind branching, nothing else.
package chemkin

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kinetics-io/mech2ck/internal/mech"
	"github.com/kinetics-io/mech2ck/internal/model"
)

var (
	// ErrNoOutputPath is returned when Write is called without a destination.
	ErrNoOutputPath = errors.New("chemkin: output path is required")

	// ErrScaleLength is returned when the scale-factor vector does not have
	// one entry per reaction.
	ErrScaleLength = errors.New("chemkin: scale factor count does not match reaction count")
)

// Write formats the mechanism and writes it to outPath, returning the path
// written. factors perturbs each reaction's pre-exponential factor and
// defaults to all ones when nil; its length must equal the reaction count.
//
// The file is assembled in memory and moved into place with a rename, so a
// failed write never leaves a truncated mechanism at outPath.
func Write(m *model.Mechanism, factors []float64, outPath string) (string, error) {
	if outPath == "" {
		return "", ErrNoOutputPath
	}
	if factors == nil {
		factors = make([]float64, m.NReactions())
		for i := range factors {
			factors[i] = 1.0
		}
	}
	if len(factors) != m.NReactions() {
		return "", fmt.Errorf("%w: %d factors for %d reactions", ErrScaleLength, len(factors), m.NReactions())
	}

	var buf bytes.Buffer
	if err := render(&buf, m, factors); err != nil {
		return "", err
	}

	tmp := outPath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write mechanism: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename mechanism: %w", err)
	}

	return outPath, nil
}

func render(buf *bytes.Buffer, m *model.Mechanism, factors []float64) error {
	known := m.SpeciesSet()

	buf.WriteString(banner("Chemkin File converted from Solution Object"))

	buf.WriteString("ELEMENTS\n")
	buf.WriteString(strings.Join(m.Elements, "  "))
	buf.WriteString("\nEND\n")

	buf.WriteString("SPECIES\n")
	buf.WriteString(speciesLines(m.SpeciesNames()))
	buf.WriteString("\nEND\n")

	buf.WriteString(banner("Species data"))
	writeThermo(buf, m)

	buf.WriteString(banner("Reaction Data"))
	buf.WriteString("REACTIONS\n")
	for i, rxn := range m.Reactions {
		if err := writeReaction(buf, m, rxn, factors[i], known); err != nil {
			return fmt.Errorf("reaction %d (%s): %w", i+1, rxn.Equation, err)
		}
	}
	buf.WriteString("END")

	return nil
}

func writeReaction(buf *bytes.Buffer, m *model.Mechanism, rxn model.Reaction, scale float64, known map[string]struct{}) error {
	equation := strings.ReplaceAll(rxn.Equation, " ", "")
	order, err := mech.ReactantOrder(rxn.Equation)
	if err != nil {
		return err
	}

	switch rxn.Kind {
	case model.KindElementary:
		mainLine(buf, equation, formatRate(rxn.Rate, order, roleElementary, scale))

	case model.KindThreeBody:
		mainLine(buf, equation, formatRate(rxn.Rate, order, roleThreeBody, scale))
		writeEfficiencies(buf, rxn.Efficiencies, known)

	case model.KindFalloff:
		mainLine(buf, equation, formatRate(rxn.HighRate, order, roleElementary, scale))
		low := formatRate(rxn.LowRate, order, roleFalloffLow, scale)
		fmt.Fprintf(buf, "     LOW  /  %s  %s  %s/\n", low.a, low.b, low.ea)
		if len(rxn.Troe) >= 3 {
			fmt.Fprintf(buf, "     TROE/   %s  %s  %s /\n",
				formatValue(rxn.Troe[0]), formatValue(rxn.Troe[1]), formatValue(rxn.Troe[2]))
		}
		writeEfficiencies(buf, rxn.Efficiencies, known)

	default:
		return fmt.Errorf("unknown reaction kind %q", rxn.Kind)
	}

	if rxn.Duplicate {
		buf.WriteString(" DUPLICATE\n")
	}
	return nil
}

// mainLine writes the fixed-column reaction line: equation padded to 51
// columns, then the Arrhenius triple right-justified in 9, 9 and 11 columns.
func mainLine(buf *bytes.Buffer, equation string, arr arrhenius) {
	fmt.Fprintf(buf, "%-51s%9s%9s%11s\n", equation, arr.a, arr.b, arr.ea)
}

// writeEfficiencies renders the third-body efficiency line, keeping only
// species present in the mechanism. Nothing is written when the filtered
// map is empty. The map is never mutated; a filtered copy is built and
// sorted by species name so output is deterministic.
func writeEfficiencies(buf *bytes.Buffer, efficiencies map[string]float64, known map[string]struct{}) {
	type efficiency struct {
		name  string
		value float64
	}
	kept := make([]efficiency, 0, len(efficiencies))
	for name, v := range efficiencies {
		if _, ok := known[name]; ok {
			kept = append(kept, efficiency{name, v})
		}
	}
	if len(kept) == 0 {
		return
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].name < kept[j].name })

	pairs := make([]string, len(kept))
	for i, e := range kept {
		pairs[i] = e.name + "/ " + formatValue(e.value)
	}
	buf.WriteString(strings.Join(pairs, "/ ") + "/\n")
}

// speciesLines lays out species names padded to 16 columns, soft-wrapped so
// no line grows past ~70 columns.
func speciesLines(names []string) string {
	var b strings.Builder
	line := 1
	for _, name := range names {
		if b.Len()+len(name)+3 >= 70*line {
			b.WriteByte('\n')
			line++
		}
		b.WriteString(name)
		for pad := 16 - len(name); pad > 0; pad-- {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// banner renders a three-line section break.
func banner(title string) string {
	rule := "!" + strings.Repeat("-", 75)
	return rule + "\n!  " + title + "\n" + rule + "\n"
}

// formatValue renders an efficiency or falloff parameter in its shortest
// form while always keeping a decimal point, so 5 prints as "5.0".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
