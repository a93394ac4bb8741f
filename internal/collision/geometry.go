package collision

import "math"

// Point is a position in board coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in board coordinates
type Rect struct {
	Left, Top, Width, Height float64
}

// Right edge
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom edge
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// MidY returns the vertical midpoint of the rectangle
func (r Rect) MidY() float64 { return r.Top + r.Height/2 }

// Area of the rectangle
func (r Rect) Area() float64 { return r.Width * r.Height }

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Translate returns r shifted by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{r.Left, r.Top},
		{r.Right(), r.Top},
		{r.Left, r.Bottom()},
		{r.Right(), r.Bottom()},
	}
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// intersectionRatio is the overlap area divided by the union area, 0 when
// the rectangles do not overlap
func intersectionRatio(a, b Rect) float64 {
	left := math.Max(a.Left, b.Left)
	top := math.Max(a.Top, b.Top)
	right := math.Min(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())

	if left >= right || top >= bottom {
		return 0
	}

	overlap := (right - left) * (bottom - top)
	union := a.Area() + b.Area() - overlap
	if union <= 0 {
		return 0
	}
	return overlap / union
}
