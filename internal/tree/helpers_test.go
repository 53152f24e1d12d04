package tree

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// example builds
//
//	Alfa
//	Bravo
//	  Charlie
//	  Delta
//	    Echo
//	    Foxtrot
//	  Golf
//	Hotel
func example() []*Node[string] {
	leaf := func(name string) *Node[string] {
		return NewLeaf(name, NewText(name))
	}
	delta, err := New("Delta", NewText("Delta"), []*Node[string]{leaf("Echo"), leaf("Foxtrot")})
	if err != nil {
		panic(err)
	}
	bravo, err := New("Bravo", NewText("Bravo"), []*Node[string]{leaf("Charlie"), delta, leaf("Golf")})
	if err != nil {
		panic(err)
	}
	return []*Node[string]{leaf("Alfa"), bravo, leaf("Hotel")}
}

func p(ids ...string) Path[string] {
	return Path[string](ids)
}

func leaves(rows []Flattened[string]) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Node.Identifier()
	}
	return out
}

type cell struct {
	r     rune
	style tcell.Style
}

// grid is an in-memory Surface.
type grid struct {
	width, height int
	cells         map[[2]int]cell
	writes        int
}

func newGrid(width, height int) *grid {
	return &grid{width: width, height: height, cells: make(map[[2]int]cell)}
}

func (g *grid) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	g.writes++
	g.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func (g *grid) row(y int) string {
	var sb strings.Builder
	for x := 0; x < g.width; x++ {
		c, ok := g.cells[[2]int{x, y}]
		if !ok {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (g *grid) rows() []string {
	out := make([]string, g.height)
	for y := range out {
		out[y] = g.row(y)
	}
	return out
}

func (g *grid) styleAt(x, y int) tcell.Style {
	return g.cells[[2]int{x, y}].style
}
