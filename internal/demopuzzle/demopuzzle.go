// Package demopuzzle builds the five-row, four-category puzzle used by
// "logicgrid demo readme": a worked illustration of
// all six pkg/csp propagator kinds in one clue set.
package demopuzzle

import "github.com/kanelogic/logicgrid/pkg/csp"

// Name is the label shown by callers that print which puzzle they solved.
const Name = "readme-5x5"

// Build constructs the puzzle. Categories A, B, C, D each hold five rows.
// The clue set below fixes A2/C1 and A4/B5 to the same row, forces A1 and
// D1 apart, ranks A1 above A5 within category B, fixes the C-rank gap
// between A4 and A3, and resolves an either-or between two candidate
// row-sharings for A5/A2 against D2/D3.
func Build() (*csp.Puzzle, error) {
	p, err := csp.NewPuzzle(5)
	if err != nil {
		return nil, err
	}
	for _, tag := range []string{"A", "B", "C", "D"} {
		if err := p.AddCategory(tag); err != nil {
			return nil, err
		}
	}

	p.AddConstraint(csp.NewEquality("A2", "C1"))
	p.AddConstraint(csp.NewEquality("A4", "B5"))
	p.AddConstraint(csp.NewInequality("A1", "D1"))
	p.AddConstraint(csp.NewRankGreater("A1", "A5", "B"))
	p.AddConstraint(csp.NewRankExactDiff("A4", "A3", "C", -2))

	eo, err := csp.NewEitherOr([][]csp.Pair{
		{{X: "A5", Y: "D2"}},
		{{X: "A2", Y: "D3"}},
	})
	if err != nil {
		return nil, err
	}
	p.AddConstraint(eo)

	return p, nil
}
