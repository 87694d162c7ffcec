package entity

// Switcher overlay geometry, in pixels.
const (
	SwitcherHeight          = 160
	SwitcherThumbnailOffset = 10 // Left padding of a thumbnail inside its region
	SwitcherTopOffset       = 10
	SwitcherBottomOffset    = 30
	SwitcherAddButtonSize   = 48
	SwitcherAddPadding      = 30
	SwitcherCloseButtonSize = 40

	// ThumbnailHeight is the height thumbnails are scaled to.
	ThumbnailHeight = SwitcherHeight - SwitcherTopOffset - SwitcherBottomOffset
)

// HoverTarget tells what the pointer is over in the switcher overlay.
// The states are mutually exclusive.
type HoverTarget uint8

const (
	HoverNone HoverTarget = iota
	HoverThumbnail
	HoverClose
	HoverAdd
)

func (h HoverTarget) String() string {
	switch h {
	case HoverThumbnail:
		return "thumbnail"
	case HoverClose:
		return "close"
	case HoverAdd:
		return "add"
	default:
		return "none"
	}
}

// Region is a scaled hit rectangle in overlay coordinates.
type Region struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the region.
func (r Region) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ThumbnailRegion is the hit area of one workspace in the switcher.
type ThumbnailRegion struct {
	Position int    // Position in the registry
	Area     Region // Whole thumbnail region
	Close    Region // Close button at the top-right corner
}

// SwitcherState is the transient state of the workspace switcher overlay.
// Not persisted; reset on hide.
type SwitcherState struct {
	Visible   bool
	Selected  int
	Regions   []ThumbnailRegion
	AddRegion Region
	Hover     HoverTarget
	Scale     float64
}

// Reset returns the state to its hidden defaults.
func (s *SwitcherState) Reset() {
	*s = SwitcherState{}
}
