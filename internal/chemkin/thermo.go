package chemkin

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/kinetics-io/mech2ck/internal/model"
)

// writeThermo emits a THERMO ALL block with NASA-7 polynomial data. The
// block is only written when every species carries thermo data; a mechanism
// with partial data gets no block at all, since CHEMKIN would then resolve
// the rest from an external thermo database that may not exist.
func writeThermo(buf *bytes.Buffer, m *model.Mechanism) {
	if len(m.Species) == 0 {
		return
	}
	for _, sp := range m.Species {
		if sp.Thermo == nil {
			return
		}
	}

	first := m.Species[0].Thermo
	buf.WriteString("THERMO ALL\n")
	fmt.Fprintf(buf, "%10.3f%10.3f%10.3f\n", first.Tmin, first.Tmid, first.Tmax)
	for _, sp := range m.Species {
		writeThermoEntry(buf, sp)
	}
	buf.WriteString("END\n")
}

// writeThermoEntry writes the four fixed-column lines of one species entry.
func writeThermoEntry(buf *bytes.Buffer, sp model.Species) {
	th := sp.Thermo

	// Line 1: name, note, up to four element/count pairs, phase, temperature
	// bounds, card number 1 in column 80.
	line := fmt.Sprintf("%-18s%-6s%-20s%1s%10.2f%10.2f%8.2f",
		clip(sp.Name, 18), clip(th.Note, 6), composition(sp.Composition),
		th.Phase, th.Tmin, th.Tmax, th.Tmid)
	buf.WriteString(pad(line, 79) + "1\n")

	// Lines 2-4: the fourteen polynomial coefficients, high range first,
	// five per card.
	coeffs := make([]float64, 0, 14)
	coeffs = append(coeffs, th.High[:]...)
	coeffs = append(coeffs, th.Low[:]...)
	writeCoeffRow(buf, coeffs[0:5], 2)
	writeCoeffRow(buf, coeffs[5:10], 3)
	writeCoeffRow(buf, coeffs[10:14], 4)
}

// writeCoeffRow writes one coefficient card: each value in 8-decimal
// scientific notation, non-negative values led by a space, card number in
// column 80.
func writeCoeffRow(buf *bytes.Buffer, coeffs []float64, card int) {
	var b strings.Builder
	for _, c := range coeffs {
		if c >= 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.8e", c)
	}
	fmt.Fprintf(buf, "%s%d\n", pad(b.String(), 79), card)
}

// composition renders up to four element/count pairs in a 20-column field.
func composition(comp map[string]int) string {
	elements := make([]string, 0, len(comp))
	for el := range comp {
		elements = append(elements, el)
	}
	sort.Strings(elements)
	if len(elements) > 4 {
		elements = elements[:4]
	}

	var b strings.Builder
	for _, el := range elements {
		fmt.Fprintf(&b, "%-2s%3d", strings.ToUpper(el), comp[el])
	}
	return pad(b.String(), 20)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
