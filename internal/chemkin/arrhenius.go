package chemkin

import (
	"fmt"

	"github.com/kinetics-io/mech2ck/internal/model"
)

// caloriesConstant converts activation energies from J/kmol to cal/mol.
const caloriesConstant = 4184.0

// rateRole selects the unit correction applied to a pre-exponential factor.
// Cantera rates are in kmol/m^3 units; CHEMKIN expects mol/cm^3, which
// shifts A by a factor of 10^3 per concentration order. Third-body
// concentrations add one extra order.
type rateRole int

const (
	roleElementary rateRole = iota // also the falloff high-pressure limit
	roleThreeBody
	roleFalloffLow
)

// arrhenius holds the three formatted rate fields of a reaction line.
type arrhenius struct {
	a  string
	b  string
	ea string
}

// formatRate builds the formatted Arrhenius triple for one rate expression.
// The pre-exponential factor is multiplied by the reaction's scale factor
// and then by the unit correction for the given role and reactant order.
func formatRate(r model.Arrhenius, order float64, role rateRole, scale float64) arrhenius {
	a := r.A * scale

	switch role {
	case roleElementary:
		switch order {
		case 2:
			a *= 1e3
		case 3:
			a *= 1e6
		}
	case roleThreeBody:
		switch order {
		case 1:
			a *= 1e3
		case 2:
			a *= 1e6
		}
	case roleFalloffLow:
		switch order {
		case 1:
			a *= 1e3
		case 2:
			a *= 1e6
		case 3:
			a *= 1e9
		}
	}

	return arrhenius{
		a:  fmt.Sprintf("%.3E", a),
		b:  fmt.Sprintf("%.3f", r.B),
		ea: fmt.Sprintf("%.2f", r.Ea/caloriesConstant),
	}
}
