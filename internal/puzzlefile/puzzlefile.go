// Package puzzlefile decodes a YAML puzzle description into pkg/csp
// builder calls. It is the "already structured input" the core CSP engine
// assumes — it never parses clue prose, only a fixed schema.
package puzzlefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kanelogic/logicgrid/pkg/csp"
)

// Document is the on-disk shape of a puzzle file.
type Document struct {
	Rows       int      `yaml:"rows"`
	Categories []string `yaml:"categories"`
	Clues      []Clue   `yaml:"clues"`
}

// Clue is a tagged union over the six propagator kinds. Type selects which
// of the other fields are read; unused fields are left zero.
type Clue struct {
	Type         string       `yaml:"type"`
	A            string       `yaml:"a,omitempty"`
	B            string       `yaml:"b,omitempty"`
	Names        []string     `yaml:"names,omitempty"`
	Left         string       `yaml:"left,omitempty"`
	Right        string       `yaml:"right,omitempty"`
	Category     string       `yaml:"category,omitempty"`
	Diff         int          `yaml:"diff,omitempty"`
	Alternatives [][]PairClue `yaml:"alternatives,omitempty"`
}

// PairClue mirrors csp.Pair in YAML form.
type PairClue struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Load reads and parses a puzzle file at path.
func Load(path string) (*csp.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a *csp.Puzzle from a puzzle file's YAML bytes.
func Parse(data []byte) (*csp.Puzzle, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	return build(doc)
}

func build(doc Document) (*csp.Puzzle, error) {
	p, err := csp.NewPuzzle(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	for _, tag := range doc.Categories {
		if err := p.AddCategory(tag); err != nil {
			return nil, fmt.Errorf("puzzlefile: category %q: %w", tag, err)
		}
	}
	for i, clue := range doc.Clues {
		c, err := buildClue(clue)
		if err != nil {
			return nil, fmt.Errorf("puzzlefile: clue %d: %w", i, err)
		}
		p.AddConstraint(c)
	}
	return p, nil
}

func buildClue(c Clue) (csp.Constraint, error) {
	switch c.Type {
	case "equality":
		return csp.NewEquality(c.A, c.B), nil
	case "inequality":
		return csp.NewInequality(c.A, c.B), nil
	case "all_different":
		return csp.NewAllDifferent(c.Names), nil
	case "rank_greater":
		return csp.NewRankGreater(c.Left, c.Right, c.Category), nil
	case "rank_exact_diff":
		return csp.NewRankExactDiff(c.Left, c.Right, c.Category, c.Diff), nil
	case "either_or":
		alternatives := make([][]csp.Pair, len(c.Alternatives))
		for i, alt := range c.Alternatives {
			pairs := make([]csp.Pair, len(alt))
			for j, pc := range alt {
				pairs[j] = csp.Pair{X: pc.X, Y: pc.Y}
			}
			alternatives[i] = pairs
		}
		return csp.NewEitherOr(alternatives)
	default:
		return nil, fmt.Errorf("%w: unknown clue type %q", csp.ErrInvalidArgument, c.Type)
	}
}
