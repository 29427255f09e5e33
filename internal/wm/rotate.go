package wm

// RotFocus moves the input focus increment screens along, wrapping around.
func RotFocus(increment int) Action {
	return func(s State) {
		s.FocusScreen(mod(s.CurrentScreen()+increment, s.NumScreens()))
	}
}

// RotScreens shifts groups circularly across screens: screen i receives the
// group that screen i+increment was showing. The screens stay where they
// are.
func RotScreens(increment int) Action {
	return func(s State) {
		n := s.NumScreens()
		groups := make([]string, n)
		for i := range groups {
			groups[i] = s.ScreenGroup(i)
		}
		for i := range groups {
			if g := groups[mod(i+increment, n)]; s.ScreenGroup(i) != g {
				s.SetScreenGroup(i, g)
			}
		}
	}
}

// FocusOrSwitch focuses the screen showing group, if there is one, and
// otherwise brings group to the focused screen.
func FocusOrSwitch(group string) Action {
	return func(s State) {
		for i, n := 0, s.NumScreens(); i < n; i++ {
			if s.ScreenGroup(i) == group {
				s.FocusScreen(i)
				return
			}
		}
		s.SetScreenGroup(s.CurrentScreen(), group)
	}
}

// RotLayout steps the current group through its layouts. The cycle skips
// index 4 and index 0 in both directions; those are only reachable through
// FullscreenMode.
func RotLayout(d Direction) Action {
	return func(s State) {
		i := s.LayoutIndex()
		switch {
		case d == Next && (i == 3 || i == 6):
			i += 2
		case d == Prev && (i == 1 || i == 5):
			i -= 2
		default:
			i += d.step()
		}
		s.SetLayoutIndex(mod(i, s.NumLayouts()))
	}
}

const (
	fullscreenLayout = 4
	homeLayout       = 0
)

// FullscreenMode jumps the current group to the maximized layout (Right)
// or back to the first layout (Left).
func FullscreenMode(side Side) Action {
	target := homeLayout
	if side == Right {
		target = fullscreenLayout
	}
	return func(s State) {
		s.SetLayoutIndex(mod(target, s.NumLayouts()))
	}
}

// RenameGroup prompts for a new label for the current group. The text is
// used as entered, even if empty.
func RenameGroup() Action {
	return func(s State) {
		s.Prompt("name", s.SetGroupLabel)
	}
}
