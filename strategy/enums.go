package strategy

// Sense tells the algorithm whether to minimize or maximize the objective.
type Sense uint8

const (
	Minimize Sense = 0
	Maximize Sense = 1
)

var senses = newRegistry("Sense",
	variant[Sense]{"MINIMIZE", Minimize},
	variant[Sense]{"MAXIMIZE", Maximize},
)

// ParseSense resolves a Sense by name, ignoring case.
func ParseSense(s string) (Sense, error) { return senses.parse(s) }

// AllSenses returns every Sense in tag order.
func AllSenses() []Sense { return senses.values() }

func (s Sense) String() string                { return senses.format(s) }
func (s Sense) IsValid() bool                 { return senses.valid(s) }
func (s Sense) MarshalText() ([]byte, error)  { return senses.marshal(s) }
func (s *Sense) UnmarshalText(b []byte) error { return unmarshalInto(senses, s, b) }

// BiasFunction weights parents by rank when choosing mates. It replaces
// the rho parameter of the two-parent BRKGA; see RankWeight for the formulas.
type BiasFunction uint8

const (
	BiasConstant    BiasFunction = 0
	BiasCubic       BiasFunction = 1
	BiasExponential BiasFunction = 2
	BiasLinear      BiasFunction = 3
	BiasLogInverse  BiasFunction = 4
	BiasQuadratic   BiasFunction = 5
	BiasCustom      BiasFunction = 6
)

var biasFunctions = newRegistry("BiasFunction",
	variant[BiasFunction]{"CONSTANT", BiasConstant},
	variant[BiasFunction]{"CUBIC", BiasCubic},
	variant[BiasFunction]{"EXPONENTIAL", BiasExponential},
	variant[BiasFunction]{"LINEAR", BiasLinear},
	variant[BiasFunction]{"LOGINVERSE", BiasLogInverse},
	variant[BiasFunction]{"QUADRATIC", BiasQuadratic},
	variant[BiasFunction]{"CUSTOM", BiasCustom},
)

// ParseBiasFunction resolves a BiasFunction by name, ignoring case.
func ParseBiasFunction(s string) (BiasFunction, error) { return biasFunctions.parse(s) }

// AllBiasFunctions returns every BiasFunction in tag order.
func AllBiasFunctions() []BiasFunction { return biasFunctions.values() }

func (b BiasFunction) String() string                { return biasFunctions.format(b) }
func (b BiasFunction) IsValid() bool                 { return biasFunctions.valid(b) }
func (b BiasFunction) MarshalText() ([]byte, error)  { return biasFunctions.marshal(b) }
func (b *BiasFunction) UnmarshalText(p []byte) error { return unmarshalInto(biasFunctions, b, p) }

// PathRelinkingType selects how a path between two chromosomes is built.
//   - DIRECT changes each key for the corresponding key of the guide.
//   - PERMUTATION moves a key to the position it has in the guide.
type PathRelinkingType uint8

const (
	PathRelinkDirect      PathRelinkingType = 0
	PathRelinkPermutation PathRelinkingType = 1
)

var pathRelinkingTypes = newRegistry("PathRelinkingType",
	variant[PathRelinkingType]{"DIRECT", PathRelinkDirect},
	variant[PathRelinkingType]{"PERMUTATION", PathRelinkPermutation},
)

// ParsePathRelinkingType resolves a PathRelinkingType by name, ignoring case.
func ParsePathRelinkingType(s string) (PathRelinkingType, error) {
	return pathRelinkingTypes.parse(s)
}

// AllPathRelinkingTypes returns every PathRelinkingType in tag order.
func AllPathRelinkingTypes() []PathRelinkingType { return pathRelinkingTypes.values() }

func (t PathRelinkingType) String() string               { return pathRelinkingTypes.format(t) }
func (t PathRelinkingType) IsValid() bool                { return pathRelinkingTypes.valid(t) }
func (t PathRelinkingType) MarshalText() ([]byte, error) { return pathRelinkingTypes.marshal(t) }
func (t *PathRelinkingType) UnmarshalText(b []byte) error {
	return unmarshalInto(pathRelinkingTypes, t, b)
}

// PathRelinkingSelection selects the individuals that anchor a path.
//   - BESTSOLUTION takes the best solution of each population, in order.
//   - RANDOMELITE draws uniformly from the elite sets.
type PathRelinkingSelection uint8

const (
	SelectBestSolution PathRelinkingSelection = 0
	SelectRandomElite  PathRelinkingSelection = 1
)

var pathRelinkingSelections = newRegistry("PathRelinkingSelection",
	variant[PathRelinkingSelection]{"BESTSOLUTION", SelectBestSolution},
	variant[PathRelinkingSelection]{"RANDOMELITE", SelectRandomElite},
)

// ParsePathRelinkingSelection resolves a PathRelinkingSelection by name, ignoring case.
func ParsePathRelinkingSelection(s string) (PathRelinkingSelection, error) {
	return pathRelinkingSelections.parse(s)
}

// AllPathRelinkingSelections returns every PathRelinkingSelection in tag order.
func AllPathRelinkingSelections() []PathRelinkingSelection {
	return pathRelinkingSelections.values()
}

func (s PathRelinkingSelection) String() string { return pathRelinkingSelections.format(s) }
func (s PathRelinkingSelection) IsValid() bool  { return pathRelinkingSelections.valid(s) }
func (s PathRelinkingSelection) MarshalText() ([]byte, error) {
	return pathRelinkingSelections.marshal(s)
}
func (s *PathRelinkingSelection) UnmarshalText(b []byte) error {
	return unmarshalInto(pathRelinkingSelections, s, b)
}

// ShakingType selects the perturbation applied when shaking a population.
//   - CHANGE inverts a random key (v -> 1-v) and reassigns another at random.
//   - SWAP swaps a random key with its neighbor and two random keys.
type ShakingType uint8

const (
	ShakeChange ShakingType = 0
	ShakeSwap   ShakingType = 1
)

var shakingTypes = newRegistry("ShakingType",
	variant[ShakingType]{"CHANGE", ShakeChange},
	variant[ShakingType]{"SWAP", ShakeSwap},
)

// ParseShakingType resolves a ShakingType by name, ignoring case.
func ParseShakingType(s string) (ShakingType, error) { return shakingTypes.parse(s) }

// AllShakingTypes returns every ShakingType in tag order.
func AllShakingTypes() []ShakingType { return shakingTypes.values() }

func (t ShakingType) String() string                { return shakingTypes.format(t) }
func (t ShakingType) IsValid() bool                 { return shakingTypes.valid(t) }
func (t ShakingType) MarshalText() ([]byte, error)  { return shakingTypes.marshal(t) }
func (t *ShakingType) UnmarshalText(b []byte) error { return unmarshalInto(shakingTypes, t, b) }

func unmarshalInto[E ~uint8](r *registry[E], dst *E, b []byte) error {
	v, err := r.parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Enumeration describes one enumeration for listings and lookups by
// enumeration name.
type Enumeration struct {
	Name     string
	Variants []string
	Tags     []uint8
	parse    func(string) (string, error)
}

// Resolve parses token against this enumeration and returns the
// canonical variant name.
func (e Enumeration) Resolve(token string) (string, error) {
	return e.parse(token)
}

func describe[E ~uint8](r *registry[E]) Enumeration {
	tags := make([]uint8, len(r.variants))
	for i, v := range r.variants {
		tags[i] = uint8(v.value)
	}
	return Enumeration{
		Name:     r.enum,
		Variants: r.names(),
		Tags:     tags,
		parse: func(token string) (string, error) {
			v, err := r.parse(token)
			if err != nil {
				return "", err
			}
			return r.format(v), nil
		},
	}
}

var enumerations = newRegistry("enumeration",
	variant[uint8]{"Sense", 0},
	variant[uint8]{"BiasFunction", 1},
	variant[uint8]{"PathRelinkingType", 2},
	variant[uint8]{"PathRelinkingSelection", 3},
	variant[uint8]{"ShakingType", 4},
	variant[uint8]{"PathRelinkingResult", 5},
)

// Enumerations lists every enumeration of the package.
func Enumerations() []Enumeration {
	return []Enumeration{
		describe(senses),
		describe(biasFunctions),
		describe(pathRelinkingTypes),
		describe(pathRelinkingSelections),
		describe(shakingTypes),
		describe(pathRelinkingResults),
	}
}

// LookupEnumeration finds an enumeration by its type name, ignoring case.
func LookupEnumeration(name string) (Enumeration, error) {
	idx, err := enumerations.parse(name)
	if err != nil {
		return Enumeration{}, err
	}
	return Enumerations()[idx], nil
}
