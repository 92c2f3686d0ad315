package strategy

import (
	"errors"
	"fmt"
	"math"
)

// ErrCustomBias is returned by RankWeight for BiasCustom, whose weighting
// function is supplied by the caller.
var ErrCustomBias = errors.New("custom bias function must be supplied by the caller")

// RankWeight returns the weighting formula of b over a parent's rank r
// (1 is the best parent). totalParents is only used by BiasConstant.
//
//	CONSTANT     1 / totalParents
//	CUBIC        r^-3
//	EXPONENTIAL  e^-r
//	LINEAR       1 / r
//	LOGINVERSE   1 / log(r + 1)
//	QUADRATIC    r^-2
func (b BiasFunction) RankWeight(totalParents int) (func(r float64) float64, error) {
	switch b {
	case BiasConstant:
		if totalParents <= 0 {
			return nil, fmt.Errorf("constant bias needs a positive number of parents, got %d", totalParents)
		}
		weight := 1.0 / float64(totalParents)
		return func(float64) float64 { return weight }, nil
	case BiasCubic:
		return func(r float64) float64 { return math.Pow(r, -3) }, nil
	case BiasExponential:
		return func(r float64) float64 { return math.Exp(-r) }, nil
	case BiasLinear:
		return func(r float64) float64 { return 1 / r }, nil
	case BiasLogInverse:
		return func(r float64) float64 { return 1 / math.Log(r+1) }, nil
	case BiasQuadratic:
		return func(r float64) float64 { return math.Pow(r, -2) }, nil
	case BiasCustom:
		return nil, ErrCustomBias
	default:
		return nil, &LookupError{Enum: biasFunctions.enum, Token: b.String()}
	}
}
