package puzzlefile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kanelogic/logicgrid/pkg/csp"
)

const minimalYAML = `
rows: 2
categories: [A, B]
clues:
  - type: equality
    a: A1
    b: B1
`

func TestParseBuildsSolvablePuzzle(t *testing.T) {
	p, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	sol, err := csp.Solve(p)
	require.NoError(t, err)
	require.Len(t, sol, 2)
}

func TestParseRejectsUnknownClueType(t *testing.T) {
	_, err := Parse([]byte(`
rows: 2
categories: [A]
clues:
  - type: bogus
`))
	require.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	require.Error(t, err)
}

func TestParseAllClueKinds(t *testing.T) {
	doc := `
rows: 5
categories: [A, B, C, D]
clues:
  - type: equality
    a: A2
    b: C1
  - type: inequality
    a: A1
    b: D1
  - type: all_different
    names: [D1, D2, D3]
  - type: rank_greater
    left: A1
    right: A5
    category: B
  - type: rank_exact_diff
    left: A4
    right: A3
    category: C
    diff: -2
  - type: either_or
    alternatives:
      - - x: A5
          y: D2
      - - x: A2
          y: D3
`
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	_, err = csp.Solve(p)
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/does-not-exist.yaml")
	require.Error(t, err)
}
