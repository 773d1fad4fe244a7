// Package heuristic provides distance estimates for pocket cube
// configurations.
//
// Every estimate is exposed through the Evaluator interface. The variants
// are registered as Strategy values so callers can pick them by name; a
// Strategy records whether its evaluator is a distance bound or a
// progress score and whether the bound is admissible.
package heuristic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("heuristic: unknown strategy")

// Evaluator estimates the remaining distance of a configuration.
// Implementations must be pure and deterministic.
type Evaluator interface {
	Evaluate(c cube.Cube) float64
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(c cube.Cube) float64

// Evaluate calls f(c).
func (f Func) Evaluate(c cube.Cube) float64 {
	return f(c)
}

// Kind separates distance estimates from progress scores.
type Kind int

const (
	// Distance evaluators return 0 on the goal and grow with distance.
	Distance Kind = iota
	// Progress evaluators return their maximum on the goal.
	Progress
)

func (k Kind) String() string {
	switch k {
	case Distance:
		return "distance"
	case Progress:
		return "progress"
	default:
		return "unknown"
	}
}

// Strategy is a named evaluator with its known properties.
type Strategy struct {
	Name        string
	Description string
	Kind        Kind
	// Admissible is only meaningful for Distance strategies.
	Admissible bool
	Evaluator  Evaluator
}

// Evaluate delegates to the strategy's evaluator.
func (s Strategy) Evaluate(c cube.Cube) float64 {
	return s.Evaluator.Evaluate(c)
}

// Zero is the trivially admissible evaluator.
var Zero = Func(func(cube.Cube) float64 { return 0 })

var registry = map[string]Strategy{}

func register(s Strategy) {
	registry[s.Name] = s
}

func init() {
	register(Strategy{Name: "zero", Description: "always 0", Kind: Distance, Admissible: true, Evaluator: Zero})
	register(Strategy{Name: "hamming", Description: "misplaced facelets", Kind: Distance, Evaluator: Func(Hamming)})
	register(Strategy{Name: "inverse-hamming", Description: "24 minus misplaced facelets", Kind: Progress, Evaluator: Func(InverseHamming)})
	register(Strategy{Name: "blocked-hamming", Description: "4 x faces with any misplaced facelet", Kind: Distance, Evaluator: Func(BlockedHamming)})
	register(Strategy{Name: "manhattan", Description: "sum of face distances / 8", Kind: Distance, Admissible: true, Evaluator: Func(Manhattan)})
	register(Strategy{Name: "manhattan-face-max", Description: "sum of per-face max distance / 2", Kind: Distance, Evaluator: Func(ManhattanFaceMax)})
	register(Strategy{Name: "manhattan-face-max-sum", Description: "sum of per-face max distance", Kind: Distance, Evaluator: Func(ManhattanFaceMaxSum)})
	register(Strategy{Name: "manhattan-global-max", Description: "max face distance of any facelet", Kind: Distance, Admissible: true, Evaluator: Func(ManhattanGlobalMax)})
	register(Strategy{Name: "inverse-manhattan", Description: "MaxManhattan minus manhattan", Kind: Progress, Evaluator: Func(InverseManhattan)})
	register(Strategy{Name: "inverse-face-max", Description: "MaxFaceMax minus manhattan-face-max", Kind: Progress, Evaluator: Func(InverseFaceMax)})
	register(Strategy{Name: "inverse-face-max-sum", Description: "MaxFaceMaxSum minus manhattan-face-max-sum", Kind: Progress, Evaluator: Func(InverseFaceMaxSum)})
	register(Strategy{Name: "inverse-global-max", Description: "MaxFaceletDistance minus manhattan-global-max", Kind: Progress, Evaluator: Func(InverseGlobalMax)})
}

// Lookup returns the registered strategy with the given name.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Strategies returns all registered strategies sorted by name.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered strategy names sorted.
func Names() []string {
	strategies := Strategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name
	}
	return names
}
