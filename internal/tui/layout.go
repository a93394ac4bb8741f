package tui

import (
	"github.com/thenoetrevino/hireboard/internal/collision"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/tui/components"
)

// minColumnWidth keeps cards readable on narrow terminals
const minColumnWidth = 18

// layout is the on-screen geometry of the visible board, in cells. Cards
// and columns become collision droppables for keyboard drags.
type layout struct {
	columnWidth  int
	columnHeight int
	offsets      []int
	counts       []int
}

func newLayout(width, height int, b models.Board, offsets []int) layout {
	l := layout{
		columnWidth:  max(width/len(models.Columns), minColumnWidth),
		columnHeight: height,
		offsets:      offsets,
		counts:       make([]int, len(models.Columns)),
	}
	for i, col := range models.Columns {
		l.counts[i] = len(b[col])
	}
	return l
}

func (l layout) offset(col int) int {
	if col < len(l.offsets) {
		return l.offsets[col]
	}
	return 0
}

// visible is how many cards of column col are on screen
func (l layout) visible(col int) int {
	return max(min(l.counts[col]-l.offset(col), components.VisibleCards(l.columnHeight)), 0)
}

// slot is the rectangle a card at row would occupy in column col
func (l layout) slot(col, row int) collision.Rect {
	return collision.Rect{
		Left:   float64(col*l.columnWidth + components.ColumnInset),
		Top:    float64(components.ColumnHeaderRows + (row-l.offset(col))*components.CardHeight),
		Width:  float64(components.CardWidth(l.columnWidth)),
		Height: float64(components.CardHeight),
	}
}

// columnRect covers a column's visible cards plus one free slot, so an
// empty column is exactly one card tall
func (l layout) columnRect(col int) collision.Rect {
	r := l.slot(col, l.offset(col))
	r.Height = float64((l.visible(col) + 1) * components.CardHeight)
	return r
}

// droppables lists the visible cards, then the columns. exclude is left
// out so a dragged card never collides with itself.
func (l layout) droppables(b models.Board, exclude string) []collision.Droppable {
	var out []collision.Droppable
	for i, col := range models.Columns {
		off := l.offset(i)
		for row := off; row < off+l.visible(i); row++ {
			id := b[col][row].ID
			if id == exclude {
				continue
			}
			out = append(out, collision.Droppable{ID: id, Rect: l.slot(i, row)})
		}
	}
	for i, col := range models.Columns {
		out = append(out, collision.Droppable{ID: string(col), Rect: l.columnRect(i), IsColumn: true})
	}
	return out
}

// rectOf finds the droppable rectangle for id
func (l layout) rectOf(b models.Board, id string) (collision.Rect, bool) {
	if models.IsColumnID(id) {
		return l.columnRect(models.ColumnID(id).Index()), true
	}
	col, row, ok := b.Find(id)
	if !ok {
		return collision.Rect{}, false
	}
	return l.slot(col.Index(), row), true
}
