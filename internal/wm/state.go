// Package wm defines what a configuration may ask of a running window
// manager, and the small actions that keybindings dispatch into it.
package wm

// State is the live window manager, as seen by an action. Screens are
// indexed from 0 in the host's order. Groups are identified by name.
//
// Implementations may assume they are called from a single goroutine.
type State interface {
	NumScreens() int
	CurrentScreen() int
	FocusScreen(i int)

	// ScreenGroup returns the name of the group shown on screen i.
	ScreenGroup(i int) string
	// SetScreenGroup shows group on screen i. If group was already shown
	// on another screen, that screen receives screen i's old group.
	SetScreenGroup(i int, group string)

	// CurrentGroup is the group on the focused screen.
	CurrentGroup() string
	NumLayouts() int
	LayoutIndex() int
	SetLayoutIndex(i int)
	SetGroupLabel(label string)

	// Prompt asks the user for a line of text. submit is called with the
	// text once it has been entered, possibly after Prompt returns.
	Prompt(label string, submit func(string))

	Spawn(cmd string)
	Call(c Command)
}

// Command is a host command that this package gives no meaning to, such as
// "layout.left" or "window.kill".
type Command struct {
	Name string
	Args []interface{}
}

// Direction is which way to rotate through an ordered sequence.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) step() int {
	if d == Prev {
		return -1
	}
	return +1
}

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Side picks one of the two fullscreen states.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// mod is the non-negative remainder of i divided by n.
func mod(i, n int) int {
	return ((i % n) + n) % n
}
