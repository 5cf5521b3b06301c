package model

// ReactionKind tags the rate-law branch a reaction follows
type ReactionKind string

const (
	KindElementary ReactionKind = "elementary" // single Arrhenius rate
	KindThreeBody  ReactionKind = "three-body" // rate enhanced by a collision partner
	KindFalloff    ReactionKind = "falloff"    // pressure-dependent, high/low limit rates
)

// Arrhenius holds the rate parameters k = A * T^b * exp(-Ea/RT).
// A is in kmol/m^3-based units, Ea in J/kmol (Cantera conventions).
type Arrhenius struct {
	A  float64 `yaml:"A"`  // pre-exponential factor
	B  float64 `yaml:"b"`  // temperature exponent
	Ea float64 `yaml:"Ea"` // activation energy
}

// Thermo holds a two-range NASA-7 polynomial for one species.
type Thermo struct {
	Tmin  float64    // low bound of the low-temperature range
	Tmid  float64    // range switch temperature
	Tmax  float64    // high bound of the high-temperature range
	Low   [7]float64 // low-range coefficients a1..a5, a6, a7
	High  [7]float64 // high-range coefficients
	Phase string     // single-character phase tag, "G" when unset
	Note  string     // free-form note written into the date field
}

// Species is one chemical species of a mechanism.
type Species struct {
	Name        string
	Composition map[string]int // element symbol -> atom count
	Thermo      *Thermo        // nil when no thermodynamic data is attached
}

// Reaction is one reaction of a mechanism. Rate is set for Elementary and
// ThreeBody kinds; HighRate/LowRate are set for Falloff. Troe may be empty
// or carry fewer than three entries, in which case no blending function
// applies.
type Reaction struct {
	Equation     string
	Kind         ReactionKind
	Rate         Arrhenius
	HighRate     Arrhenius
	LowRate      Arrhenius
	Troe         []float64
	Efficiencies map[string]float64 // third-body species -> efficiency multiplier
	Duplicate    bool
}

// Mechanism is a complete chemical-kinetics model: elements, species and an
// ordered reaction list. It is an immutable input to the writer.
type Mechanism struct {
	Description string
	Elements    []string
	Species     []Species
	Reactions   []Reaction
}

// NReactions returns the number of reactions in the mechanism.
func (m *Mechanism) NReactions() int {
	return len(m.Reactions)
}

// SpeciesNames returns the species names in mechanism order.
func (m *Mechanism) SpeciesNames() []string {
	names := make([]string, len(m.Species))
	for i, sp := range m.Species {
		names[i] = sp.Name
	}
	return names
}

// SpeciesSet returns a fresh name lookup set. Mechanisms are shared across
// concurrent write jobs, so the set is built per caller instead of cached.
func (m *Mechanism) SpeciesSet() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Species))
	for _, sp := range m.Species {
		set[sp.Name] = struct{}{}
	}
	return set
}

// HasSpecies reports whether a species with the given name is part of the
// mechanism.
func (m *Mechanism) HasSpecies(name string) bool {
	for _, sp := range m.Species {
		if sp.Name == name {
			return true
		}
	}
	return false
}
