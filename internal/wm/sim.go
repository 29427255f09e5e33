package wm

import (
	"fmt"
	"strings"
)

// SimGroup is a group as tracked by Sim.
type SimGroup struct {
	Name   string
	Label  string
	Layout int
}

// Sim is an in-memory State. It records what would have been sent to a real
// window manager instead of doing it, which makes it suitable for tests and
// for dry-running a keybinding table.
//
// A Sim is not safe for concurrent use.
type Sim struct {
	Groups  []*SimGroup
	Layouts int

	// Screens[i] is the index into Groups of the group shown on screen i.
	Screens []int
	Current int

	// Replies are consumed, in order, by Prompt. A Prompt with no reply
	// left is recorded but never submitted.
	Replies []string

	Spawned []string
	Calls   []Command
	Prompts []string
}

// NewSim returns a Sim with numScreens screens showing the first
// numScreens groups. It panics if there are fewer groups than screens.
func NewSim(numScreens, numLayouts int, groups ...string) *Sim {
	if numScreens < 1 || len(groups) < numScreens {
		panic(fmt.Sprintf("wm: cannot show %d groups on %d screens", len(groups), numScreens))
	}
	s := &Sim{
		Layouts: numLayouts,
		Screens: make([]int, numScreens),
	}
	for _, g := range groups {
		s.Groups = append(s.Groups, &SimGroup{Name: g, Label: g})
	}
	for i := range s.Screens {
		s.Screens[i] = i
	}
	return s
}

func (s *Sim) group(name string) int {
	for i, g := range s.Groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}

func (s *Sim) currentGroup() *SimGroup {
	return s.Groups[s.Screens[s.Current]]
}

func (s *Sim) NumScreens() int    { return len(s.Screens) }
func (s *Sim) CurrentScreen() int { return s.Current }

func (s *Sim) FocusScreen(i int) {
	s.Current = i
}

func (s *Sim) ScreenGroup(i int) string {
	return s.Groups[s.Screens[i]].Name
}

// SetScreenGroup ignores groups it does not know about.
func (s *Sim) SetScreenGroup(i int, group string) {
	g := s.group(group)
	if g < 0 {
		return
	}
	for j, h := range s.Screens {
		if h == g && j != i {
			s.Screens[j] = s.Screens[i]
		}
	}
	s.Screens[i] = g
}

func (s *Sim) CurrentGroup() string { return s.currentGroup().Name }
func (s *Sim) NumLayouts() int      { return s.Layouts }
func (s *Sim) LayoutIndex() int     { return s.currentGroup().Layout }

func (s *Sim) SetLayoutIndex(i int) {
	s.currentGroup().Layout = i
}

func (s *Sim) SetGroupLabel(label string) {
	s.currentGroup().Label = label
}

func (s *Sim) Prompt(label string, submit func(string)) {
	s.Prompts = append(s.Prompts, label)
	if len(s.Replies) == 0 {
		return
	}
	reply := s.Replies[0]
	s.Replies = s.Replies[1:]
	submit(reply)
}

func (s *Sim) Spawn(cmd string) {
	s.Spawned = append(s.Spawned, cmd)
}

func (s *Sim) Call(c Command) {
	s.Calls = append(s.Calls, c)
}

// String describes each screen's group and layout, marking the focused
// screen with a '+'.
func (s *Sim) String() string {
	b := &strings.Builder{}
	for i, g := range s.Screens {
		mark := ' '
		if i == s.Current {
			mark = '+'
		}
		grp := s.Groups[g]
		fmt.Fprintf(b, "%c screen %d: group %q label %q layout %d\n",
			mark, i, grp.Name, grp.Label, grp.Layout)
	}
	return b.String()
}
