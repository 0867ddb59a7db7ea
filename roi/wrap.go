package roi

// Wrap is the policy for reading outside a source image's data window.
type Wrap int

const (
	// WrapBlack fills out-of-window reads with zero.
	WrapBlack Wrap = iota
	// WrapClamp reads the nearest edge pixel.
	WrapClamp
	// WrapPeriodic tiles the data window periodically.
	WrapPeriodic
	// WrapMirror tiles the data window with alternating reflection.
	WrapMirror
)

// WrapFromString parses the four wrap-mode names used at the public API
// boundary. Unrecognized names fall back to WrapBlack.
func WrapFromString(s string) Wrap {
	switch s {
	case "clamp":
		return WrapClamp
	case "periodic":
		return WrapPeriodic
	case "mirror":
		return WrapMirror
	case "black":
		return WrapBlack
	default:
		return WrapBlack
	}
}

// Coord maps a possibly out-of-window coordinate c into [begin,end) (or
// reports that it's out of window and should be treated as black/zero).
// size must equal end-begin and be > 0.
func (w Wrap) Coord(c, begin, end int) (coord int, black bool) {
	size := end - begin
	if c >= begin && c < end {
		return c, false
	}
	switch w {
	case WrapClamp:
		if c < begin {
			return begin, false
		}
		return end - 1, false
	case WrapPeriodic:
		rel := (c - begin) % size
		if rel < 0 {
			rel += size
		}
		return begin + rel, false
	case WrapMirror:
		// Reflect, with period 2*size, folding back into [0,size).
		rel := (c - begin) % (2 * size)
		if rel < 0 {
			rel += 2 * size
		}
		if rel >= size {
			rel = 2*size - 1 - rel
		}
		return begin + rel, false
	default: // WrapBlack
		return 0, true
	}
}
