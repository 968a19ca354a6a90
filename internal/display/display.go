// Package display renders a solved puzzle grid to a terminal with
// per-category color banding, in the style of kpitt-sudoku's Dancing
// Links demo (github.com/fatih/color used to distinguish the pieces of a
// line rather than to theme the whole program).
package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/kanelogic/logicgrid/pkg/csp"
)

// bandColors cycles per category column so adjacent categories are
// visually distinct regardless of how many the puzzle declares.
var bandColors = []*color.Color{
	color.New(color.FgHiBlue),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
}

// Print writes sol to w as a row-per-line grid, one color per category
// column, preceded by a header naming the puzzle.
func Print(w io.Writer, name string, sol csp.Solution) {
	fmt.Fprintln(w, color.HiWhiteString("%s", name))
	if len(sol) == 0 {
		fmt.Fprintln(w, color.HiBlackString("(empty solution)"))
		return
	}

	tags := categoryOrder(sol[0])
	for i, tag := range tags {
		c := bandColors[i%len(bandColors)]
		fmt.Fprintf(w, "%s ", c.Sprintf("%-10s", tag))
	}
	fmt.Fprintln(w)

	for row, assignments := range sol {
		byTag := make(map[string]string, len(assignments))
		for _, a := range assignments {
			byTag[a.Tag] = a.Variable
		}
		fmt.Fprintf(w, "%s ", color.HiBlackString("row %d:", row))
		for i, tag := range tags {
			c := bandColors[i%len(bandColors)]
			fmt.Fprintf(w, "%s ", c.Sprintf("%-10s", byTag[tag]))
		}
		fmt.Fprintln(w)
	}
}

func categoryOrder(row csp.Row) []string {
	tags := make([]string, len(row))
	for i, a := range row {
		tags[i] = a.Tag
	}
	sort.Strings(tags)
	return tags
}
