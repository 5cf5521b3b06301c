package mech

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	falloffMarker = regexp.MustCompile(`\(\+[^)]*\)`)
	coeffPrefix   = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(.*)$`)
)

// ReactantOrder returns the sum of reactant stoichiometric coefficients of a
// reaction equation. Falloff markers such as "(+M)" or "(+AR)" and bare
// third-body "M" terms do not count toward the order.
//
// Both "2 OH" and "2OH" coefficient forms are accepted; a missing
// coefficient means 1.
func ReactantOrder(equation string) (float64, error) {
	lhs, err := reactantSide(equation)
	if err != nil {
		return 0, err
	}

	lhs = falloffMarker.ReplaceAllString(lhs, "")

	var order float64
	for _, term := range strings.Split(lhs, "+") {
		term = strings.TrimSpace(term)
		if term == "" || term == "M" {
			continue
		}
		coeff := 1.0
		if m := coeffPrefix.FindStringSubmatch(term); m != nil && m[2] != "" {
			c, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, fmt.Errorf("mech: bad coefficient in term %q of %q: %w", term, equation, err)
			}
			coeff = c
		}
		order += coeff
	}
	if order == 0 {
		return 0, fmt.Errorf("mech: no reactants in equation %q", equation)
	}
	return order, nil
}

// reactantSide splits off the left-hand side of an equation, accepting the
// "<=>", "=>" and "=" arrow forms.
func reactantSide(equation string) (string, error) {
	for _, arrow := range []string{"<=>", "=>", "="} {
		if i := strings.Index(equation, arrow); i >= 0 {
			return equation[:i], nil
		}
	}
	return "", fmt.Errorf("mech: equation %q has no reaction arrow", equation)
}
