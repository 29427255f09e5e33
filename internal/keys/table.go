package keys

import (
	"errors"
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/grpwm/internal/wm"
)

// Binding binds a chord, written as for Parse, to an action.
type Binding struct {
	Chord  string
	Action wm.Action
	Desc   string
}

// Shadow records a binding that can never fire because a later binding uses
// the same chord.
type Shadow struct {
	Chord Chord
	Lost  int // Index of the unreachable binding.
	Won   int // Index of the binding that fires instead.
}

// Table is an ordered keybinding table. When a chord is bound more than
// once, the last binding wins.
type Table struct {
	bindings []Binding
	chords   []Chord
	index    map[Chord]int
	shadows  []Shadow
}

// NewTable parses every binding's chord. It reports all unparseable chords,
// not just the first.
func NewTable(bindings []Binding) (*Table, error) {
	t := &Table{
		bindings: bindings,
		chords:   make([]Chord, len(bindings)),
		index:    make(map[Chord]int, len(bindings)),
	}
	var errs []error
	for i, b := range bindings {
		c, err := Parse(b.Chord)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d: %w", i, err))
			continue
		}
		if b.Action == nil {
			errs = append(errs, fmt.Errorf("binding %d: %s has no action", i, b.Chord))
			continue
		}
		if j, ok := t.index[c]; ok {
			t.shadows = append(t.shadows, Shadow{Chord: c, Lost: j, Won: i})
		}
		t.chords[i] = c
		t.index[c] = i
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

func (t *Table) Len() int { return len(t.bindings) }

// Binding returns the i'th binding and its parsed chord.
func (t *Table) Binding(i int) (Binding, Chord) {
	return t.bindings[i], t.chords[i]
}

// Lookup returns the binding that fires for c.
func (t *Table) Lookup(c Chord) (Binding, bool) {
	i, ok := t.index[Chord{Mods: c.Mods & relevantMods, Keysym: c.Keysym}]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Dispatch runs the action bound to c, if any, and reports whether there
// was one.
func (t *Table) Dispatch(s wm.State, c Chord) bool {
	b, ok := t.Lookup(c)
	if !ok {
		return false
	}
	b.Action(s)
	return true
}

func (t *Table) Shadows() []Shadow {
	return t.shadows
}

// Keysyms lists each distinct keysym that some binding uses, in table order.
func (t *Table) Keysyms() []xp.Keysym {
	seen := make(map[xp.Keysym]bool)
	var out []xp.Keysym
	for _, c := range t.chords {
		if !seen[c.Keysym] {
			seen[c.Keysym] = true
			out = append(out, c.Keysym)
		}
	}
	return out
}
