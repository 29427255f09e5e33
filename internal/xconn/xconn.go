// Package xconn asks an X server the read-only questions that grpwm's
// diagnostics need: which windows exist, what they are called, and which
// keys the keyboard has. It never changes anything on the server.
package xconn

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/grpwm/internal/wmconf"
)

// Conn is a connection to an X server's first screen.
type Conn struct {
	x    *xgb.Conn
	root xp.Window

	atomNetWMWindowType xp.Atom
	atomWMClass         xp.Atom
	atomWMName          xp.Atom
	atomWMTransientFor  xp.Atom
}

// Dial connects to the named display, or to $DISPLAY if display is empty.
func Dial(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to display %q: %w", display, err)
	}
	setup := xp.Setup(x)
	if len(setup.Roots) != 1 {
		x.Close()
		return nil, fmt.Errorf("X setup has unsupported number of roots: %d", len(setup.Roots))
	}
	c := &Conn{x: x, root: setup.Roots[0].Root}
	for _, a := range []struct {
		dst  *xp.Atom
		name string
	}{
		{&c.atomNetWMWindowType, "_NET_WM_WINDOW_TYPE"},
		{&c.atomWMClass, "WM_CLASS"},
		{&c.atomWMName, "WM_NAME"},
		{&c.atomWMTransientFor, "WM_TRANSIENT_FOR"},
	} {
		if *a.dst, err = c.internAtom(a.name); err != nil {
			x.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Conn) Close() {
	c.x.Close()
}

func (c *Conn) internAtom(name string) (xp.Atom, error) {
	r, err := xp.InternAtom(c.x, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return r.Atom, nil
}

func (c *Conn) property(xWin xp.Window, a xp.Atom) ([]byte, error) {
	p, err := xp.GetProperty(c.x, false, xWin, a, xp.GetPropertyTypeAny, 0, 1<<32-1).Reply()
	if err != nil {
		return nil, err
	}
	return p.Value, nil
}

// Window is a top-level client window.
type Window struct {
	ID xp.Window
	wmconf.Window
}

// Windows lists the mapped, top-level windows that a window manager would
// manage, in stacking order.
func (c *Conn) Windows() ([]Window, error) {
	tree, err := xp.QueryTree(c.x, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query tree: %w", err)
	}
	var out []Window
	for _, xWin := range tree.Children {
		attrs, err := xp.GetWindowAttributes(c.x, xWin).Reply()
		if err != nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState == xp.MapStateUnmapped {
			continue
		}
		w, err := c.window(xWin)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (c *Conn) window(xWin xp.Window) (Window, error) {
	w := Window{ID: xWin}

	class, err := c.property(xWin, c.atomWMClass)
	if err != nil {
		return Window{}, fmt.Errorf("window %#x: WM_CLASS: %w", xWin, err)
	}
	w.Class = splitClass(class)

	name, err := c.property(xWin, c.atomWMName)
	if err != nil {
		return Window{}, fmt.Errorf("window %#x: WM_NAME: %w", xWin, err)
	}
	w.Title = string(name)

	if v, err := c.property(xWin, c.atomWMTransientFor); err == nil && len(v) == 4 {
		w.Transient = u32(v) != 0
	}

	if v, err := c.property(xWin, c.atomNetWMWindowType); err == nil && len(v) >= 4 {
		if r, err := xp.GetAtomName(c.x, xp.Atom(u32(v))).Reply(); err == nil {
			w.Type = windowType(r.Name)
		}
	}
	return w, nil
}

// splitClass splits WM_CLASS, which is two NUL-terminated strings.
func splitClass(b []byte) []string {
	s := strings.TrimRight(string(b), "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}

// windowType turns "_NET_WM_WINDOW_TYPE_DIALOG" into "dialog".
func windowType(atomName string) string {
	return strings.ToLower(strings.TrimPrefix(atomName, "_NET_WM_WINDOW_TYPE_"))
}

// Keysyms returns the unshifted and shifted keysym for each keycode.
func (c *Conn) Keysyms() (*[256][2]xp.Keysym, error) {
	const (
		keyLo = 8
		keyHi = 255
	)
	km, err := xp.GetKeyboardMapping(c.x, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		return nil, fmt.Errorf("get keyboard mapping: %w", err)
	}
	n := int(km.KeysymsPerKeycode)
	if n < 2 {
		return nil, fmt.Errorf("too few keysyms per keycode: %d", n)
	}
	keysyms := new([256][2]xp.Keysym)
	for i := keyLo; i <= keyHi; i++ {
		keysyms[i][0] = km.Keysyms[(i-keyLo)*n+0]
		keysyms[i][1] = km.Keysyms[(i-keyLo)*n+1]
	}
	return keysyms, nil
}

// FindKeycode returns a keycode that produces keysym, and whether shift is
// needed for it. A zero keycode means no key does.
func FindKeycode(keysyms *[256][2]xp.Keysym, keysym xp.Keysym) (keycode xp.Keycode, shift bool) {
	for i, k := range keysyms {
		if k[0] == keysym {
			return xp.Keycode(i), false
		}
		if k[1] == keysym {
			return xp.Keycode(i), true
		}
	}
	return 0, false
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<0 | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
