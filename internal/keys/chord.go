// Package keys parses key chords such as "M-S-<Return>" and binds them to
// window manager actions.
package keys

import (
	"fmt"
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
)

// modifiers maps the single letters used in chords to X modifier masks.
// The order is the order in which Chord.String writes them.
var modifiers = [...]struct {
	letter string
	mask   uint16
}{
	{"M", xp.ModMask4},
	{"A", xp.ModMask1},
	{"C", xp.ModMaskControl},
	{"S", xp.ModMaskShift},
}

// relevantMods are the modifiers that distinguish one chord from another.
// Caps Lock and Num Lock (usually Mod2) are ignored.
const relevantMods = xp.ModMask4 | xp.ModMask1 | xp.ModMaskControl | xp.ModMaskShift

// Chord is a key press together with the modifiers held down.
type Chord struct {
	Mods   uint16
	Keysym xp.Keysym
}

// Parse parses a chord written as dash-separated modifier letters followed
// by one key. The key is either a single character or a keysym name in
// angle brackets:
//
//	M-a            mod4 and 'a'
//	M-S-<Return>   mod4, shift and Return
//	C-A-<space>    control, mod1 and space
func Parse(s string) (Chord, error) {
	var (
		c    Chord
		key  string
		have bool
	)
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			break
		}
		if mask, ok := modifierMask(part); ok {
			if have {
				return Chord{}, fmt.Errorf("keys: modifiers must come before the key in %q", s)
			}
			c.Mods |= mask
			continue
		}
		if have {
			return Chord{}, fmt.Errorf("keys: key chains are not supported: %q", s)
		}
		key, have = part, true
	}
	if !have {
		return Chord{}, fmt.Errorf("keys: no key in %q", s)
	}

	switch {
	case len(key) == 1:
		c.Keysym = xp.Keysym(key[0])
	case len(key) > 3 && key[0] == '<' && key[len(key)-1] == '>':
		k, ok := keysymNames[key[1:len(key)-1]]
		if !ok {
			return Chord{}, fmt.Errorf("keys: unknown keysym name %q in %q", key, s)
		}
		c.Keysym = k
	default:
		return Chord{}, fmt.Errorf("keys: invalid key %q in %q", key, s)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. It is meant for chords
// written into the program itself.
func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func modifierMask(letter string) (uint16, bool) {
	for _, m := range modifiers {
		if m.letter == letter {
			return m.mask, true
		}
	}
	return 0, false
}

// FromEvent builds the chord for a key press, given the event's modifier
// state and the keysym its keycode maps to.
func FromEvent(state uint16, keysym xp.Keysym) Chord {
	return Chord{Mods: state & relevantMods, Keysym: keysym}
}

func (c Chord) String() string {
	b := &strings.Builder{}
	for _, m := range modifiers {
		if c.Mods&m.mask != 0 {
			b.WriteString(m.letter)
			b.WriteByte('-')
		}
	}
	switch k := c.Keysym; {
	case k > ' ' && k < 0x7f && k != '-' && k != '<':
		b.WriteByte(byte(k))
	default:
		b.WriteString("<" + keysymString(k) + ">")
	}
	return b.String()
}
