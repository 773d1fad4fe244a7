package heuristic

import "github.com/SeamusWaldron/pocketcube/internal/cube"

// Table is a read-only distance lookup, satisfied by *pdb.Database.
type Table interface {
	Lookup(key cube.Key) (int, bool)
}

type databaseEvaluator struct {
	table    Table
	fallback Evaluator
}

// WithDatabase returns an evaluator that answers from table when the
// configuration is recorded there and from fallback otherwise. It stays
// admissible as long as fallback is.
func WithDatabase(table Table, fallback Evaluator) Evaluator {
	if fallback == nil {
		fallback = Zero
	}
	return databaseEvaluator{table: table, fallback: fallback}
}

func (e databaseEvaluator) Evaluate(c cube.Cube) float64 {
	if d, ok := e.table.Lookup(c.Key()); ok {
		return float64(d)
	}
	return e.fallback.Evaluate(c)
}

// Database wraps the named fallback strategy with table. The resulting
// strategy is named "db+<fallback>".
func Database(table Table, fallbackName string) (Strategy, error) {
	fallback, err := Lookup(fallbackName)
	if err != nil {
		return Strategy{}, err
	}
	return Strategy{
		Name:        "db+" + fallback.Name,
		Description: "pattern database, " + fallback.Name + " when absent",
		Kind:        Distance,
		Admissible:  fallback.Kind == Distance && fallback.Admissible,
		Evaluator:   WithDatabase(table, fallback.Evaluator),
	}, nil
}
