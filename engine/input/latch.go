package input

// Latch holds the "currently held" flag of each directional action.
// It is written only through Apply and read by the per-frame update.
type Latch struct {
	left, right, up, down bool
}

// Apply records a press or release of a directional action.
//
// Parameters:
//   - ev: the event to apply
//
// Returns:
//   - bool: true if the event was directional and the latch consumed it
func (l *Latch) Apply(ev Event) bool {
	switch ev.Action {
	case ActionLeft:
		l.left = ev.Pressed
	case ActionRight:
		l.right = ev.Pressed
	case ActionUp:
		l.up = ev.Pressed
	case ActionDown:
		l.down = ev.Pressed
	default:
		return false
	}
	return true
}

// Held reports whether a directional action is currently held.
func (l *Latch) Held(a Action) bool {
	switch a {
	case ActionLeft:
		return l.left
	case ActionRight:
		return l.right
	case ActionUp:
		return l.up
	case ActionDown:
		return l.down
	}
	return false
}

// Axes returns the raw rotation intent. Opposing held directions cancel.
//
// Returns:
//   - horizontal: +1 for left, -1 for right
//   - vertical: +1 for up, -1 for down
func (l *Latch) Axes() (horizontal, vertical float32) {
	if l.left {
		horizontal++
	}
	if l.right {
		horizontal--
	}
	if l.up {
		vertical++
	}
	if l.down {
		vertical--
	}
	return horizontal, vertical
}

// Clear releases every held direction.
func (l *Latch) Clear() {
	*l = Latch{}
}
