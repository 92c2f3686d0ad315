package strategy

// PathRelinkingResult classifies the outcome of a path-relinking call.
//
// The tags are chosen so that each level's bits contain the previous
// level's bits (0b000, 0b001, 0b011, 0b111). OR-ing two results therefore
// yields the stronger one, which is what Combine relies on. Only the four
// constants below are meaningful; do not build other values.
type PathRelinkingResult uint8

const (
	// TooHomogeneous means the chromosomes were too similar to relink.
	TooHomogeneous PathRelinkingResult = 0b000
	// NoImprovement means relinking ran but found nothing better.
	NoImprovement PathRelinkingResult = 0b001
	// EliteImprovement means an elite solution improved but the best did not.
	EliteImprovement PathRelinkingResult = 0b011
	// BestImprovement means the best solution improved.
	BestImprovement PathRelinkingResult = 0b111
)

var pathRelinkingResults = newRegistry("PathRelinkingResult",
	variant[PathRelinkingResult]{"TOO_HOMOGENEOUS", TooHomogeneous},
	variant[PathRelinkingResult]{"NO_IMPROVEMENT", NoImprovement},
	variant[PathRelinkingResult]{"ELITE_IMPROVEMENT", EliteImprovement},
	variant[PathRelinkingResult]{"BEST_IMPROVEMENT", BestImprovement},
)

// Combine returns the stronger of a and b.
func Combine(a, b PathRelinkingResult) PathRelinkingResult {
	return a | b
}

// CombineAll folds results starting from TooHomogeneous, the identity.
func CombineAll(results ...PathRelinkingResult) PathRelinkingResult {
	acc := TooHomogeneous
	for _, r := range results {
		acc = Combine(acc, r)
	}
	return acc
}

// Combine returns the stronger of r and other.
func (r PathRelinkingResult) Combine(other PathRelinkingResult) PathRelinkingResult {
	return Combine(r, other)
}

// Improved reports whether r found at least an elite improvement.
func (r PathRelinkingResult) Improved() bool {
	return r&EliteImprovement == EliteImprovement
}

// ParsePathRelinkingResult resolves a PathRelinkingResult by name, ignoring case.
func ParsePathRelinkingResult(s string) (PathRelinkingResult, error) {
	return pathRelinkingResults.parse(s)
}

// AllPathRelinkingResults returns the four results from weakest to strongest.
func AllPathRelinkingResults() []PathRelinkingResult { return pathRelinkingResults.values() }

func (r PathRelinkingResult) String() string { return pathRelinkingResults.format(r) }
func (r PathRelinkingResult) IsValid() bool  { return pathRelinkingResults.valid(r) }
func (r PathRelinkingResult) MarshalText() ([]byte, error) {
	return pathRelinkingResults.marshal(r)
}
func (r *PathRelinkingResult) UnmarshalText(b []byte) error {
	return unmarshalInto(pathRelinkingResults, r, b)
}
