// Package collision decides which droppable a dragged card is over.
//
// Detection runs a fixed fallback chain: pointer containment, then
// rectangle overlap, then corner distance. Every strategy sorts stably, so
// identical geometry always yields the identical target.
package collision

import (
	"math"
	"slices"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// Droppable is a card or column container that can receive a drop
type Droppable struct {
	ID       string
	Rect     Rect
	IsColumn bool
}

// Args is the geometry of one drag frame
type Args struct {
	// ActiveID is the id of the card being dragged
	ActiveID string
	// TrackedID is the card the drag controller currently owns, if any
	TrackedID string
	// CollisionRect is the dragged card's translated rectangle
	CollisionRect Rect
	// Pointer is nil for keyboard drags
	Pointer    *Point
	Droppables []Droppable
}

// Collision is one candidate target with the score that ranked it
type Collision struct {
	ID    string
	Value float64
}

// Strategy ranks droppables for a drag frame
type Strategy func(args Args) []Collision

// PointerWithin returns droppables whose rectangle contains the pointer,
// nearest first by mean corner distance to the pointer
func PointerWithin(args Args) []Collision {
	if args.Pointer == nil {
		return nil
	}
	p := *args.Pointer

	var out []Collision
	for _, d := range args.Droppables {
		if !d.Rect.Contains(p) {
			continue
		}
		var sum float64
		for _, c := range d.Rect.corners() {
			sum += distance(c, p)
		}
		out = append(out, Collision{ID: d.ID, Value: sum / 4})
	}
	sortAscending(out)
	return out
}

// RectIntersection returns droppables overlapping the dragged rectangle,
// largest overlap ratio first
func RectIntersection(args Args) []Collision {
	var out []Collision
	for _, d := range args.Droppables {
		ratio := intersectionRatio(args.CollisionRect, d.Rect)
		if ratio > 0 {
			out = append(out, Collision{ID: d.ID, Value: ratio})
		}
	}
	slices.SortStableFunc(out, func(a, b Collision) int {
		return compareFloat(b.Value, a.Value)
	})
	return out
}

// ClosestCorners ranks every droppable by the mean distance between its
// corners and the dragged rectangle's corners
func ClosestCorners(args Args) []Collision {
	src := args.CollisionRect.corners()

	out := make([]Collision, 0, len(args.Droppables))
	for _, d := range args.Droppables {
		dst := d.Rect.corners()
		var sum float64
		for i := range src {
			sum += distance(src[i], dst[i])
		}
		out = append(out, Collision{ID: d.ID, Value: sum / 4})
	}
	sortAscending(out)
	return out
}

// FirstCollision returns the id of the top-ranked collision
func FirstCollision(collisions []Collision) (string, bool) {
	if len(collisions) == 0 {
		return "", false
	}
	return collisions[0].ID, true
}

// Detector runs the board's fallback chain
type Detector struct {
	// IsContainer reports whether an id names a column container
	IsContainer func(id string) bool
}

// NewDetector returns a detector that treats the pipeline columns as
// containers
func NewDetector() *Detector {
	return &Detector{IsContainer: models.IsColumnID}
}

// Detect returns the ranked result for one drag frame. When the chain
// settles on a single target the result has length one.
func (d *Detector) Detect(args Args) []Collision {
	if args.TrackedID != "" && args.TrackedID == args.ActiveID {
		return ClosestCorners(args)
	}

	intersections := PointerWithin(args)
	if len(intersections) == 0 {
		intersections = RectIntersection(args)
	}

	overID, ok := FirstCollision(intersections)
	if !ok {
		return ClosestCorners(args)
	}

	if d.isContainer(overID) {
		columnsOnly := args
		columnsOnly.Droppables = slices.DeleteFunc(slices.Clone(args.Droppables), func(dr Droppable) bool {
			return !dr.IsColumn
		})
		if hits := RectIntersection(columnsOnly); len(hits) > 0 {
			overID = hits[0].ID
		}
	}

	return []Collision{{ID: overID}}
}

// Over returns the id the dragged card is over for this frame
func (d *Detector) Over(args Args) (string, bool) {
	return FirstCollision(d.Detect(args))
}

func (d *Detector) isContainer(id string) bool {
	if d.IsContainer == nil {
		return models.IsColumnID(id)
	}
	return d.IsContainer(id)
}

func sortAscending(c []Collision) {
	slices.SortStableFunc(c, func(a, b Collision) int {
		return compareFloat(a.Value, b.Value)
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case math.IsNaN(a) && !math.IsNaN(b):
		return 1
	case !math.IsNaN(a) && math.IsNaN(b):
		return -1
	default:
		return 0
	}
}
