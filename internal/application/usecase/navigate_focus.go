package usecase

import "github.com/bnema/gridterm/internal/domain/entity"

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// NavigateInput contains the geometry for a focus move.
type NavigateInput struct {
	Current entity.PaneRect
	// Candidates are the workspace's leaves in traversal order.
	// The current leaf may be included; it is skipped.
	Candidates []entity.PaneRect
	Direction  NavigateDirection
	HandleGap  int
}

// NavigateFocus picks the leaf directly next to the current one in the given
// direction. Returns false when there is none.
//
// A candidate must touch the current leaf across exactly one handle gap and
// overlap it on the perpendicular axis. Among several, the first one sharing
// the current perpendicular origin wins, then the first one fully covering
// the current span from before, then the best overlap score.
func NavigateFocus(input NavigateInput) (entity.PaneRect, bool) {
	cur := input.Current
	gap := input.HandleGap

	var matches []entity.PaneRect
	for _, c := range input.Candidates {
		if c.Node == cur.Node {
			continue
		}
		if isAdjacent(c.Rect, cur.Rect, input.Direction, gap) && overlapsAcross(c.Rect, cur.Rect, input.Direction, gap) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return entity.PaneRect{}, false
	case 1:
		return matches[0], true
	}

	curOrigin, curSpan := perpendicular(cur.Rect, input.Direction)

	for _, c := range matches {
		if o, _ := perpendicular(c.Rect, input.Direction); o == curOrigin {
			return c, true
		}
	}

	for _, c := range matches {
		o, span := perpendicular(c.Rect, input.Direction)
		if o < curOrigin && o+span >= curOrigin+curSpan {
			return c, true
		}
	}

	best := matches[0]
	bestScore := overlapScore(best.Rect, cur.Rect, input.Direction)
	for _, c := range matches[1:] {
		if s := overlapScore(c.Rect, cur.Rect, input.Direction); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, true
}

func isAdjacent(t, cur entity.Rect, dir NavigateDirection, gap int) bool {
	switch dir {
	case NavUp:
		return t.Y+t.H+gap == cur.Y
	case NavDown:
		return t.Y == cur.Y+cur.H+gap
	case NavLeft:
		return t.X+t.W+gap == cur.X
	case NavRight:
		return t.X == cur.X+cur.W+gap
	default:
		return false
	}
}

func overlapsAcross(t, cur entity.Rect, dir NavigateDirection, gap int) bool {
	o, span := perpendicular(t, dir)
	co, cspan := perpendicular(cur, dir)
	return o < co+cspan+gap && o+span+gap > co
}

// perpendicular returns the origin and span of r on the axis across the move.
func perpendicular(r entity.Rect, dir NavigateDirection) (origin, span int) {
	if dir == NavUp || dir == NavDown {
		return r.X, r.W
	}
	return r.Y, r.H
}

// overlapScore rates how well t lines up with cur. Only the far-edge
// difference is halved.
func overlapScore(t, cur entity.Rect, dir NavigateDirection) int {
	o, span := perpendicular(t, dir)
	co, cspan := perpendicular(cur, dir)
	return span + cspan - absInt(o-co) - absInt(o+span-co-cspan)/2
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
