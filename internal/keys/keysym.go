package keys

// These constants come from /usr/include/X11/keysymdef.h and
// /usr/include/X11/XF86keysym.h.

import (
	"strconv"

	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	xkISOLeftTab        = 0xfe20
	xkBackspace         = 0xff08
	xkTab               = 0xff09
	xkReturn            = 0xff0d
	xkPause             = 0xff13
	xkScrollLock        = 0xff14
	xkEscape            = 0xff1b
	xkHome              = 0xff50
	xkLeft              = 0xff51
	xkUp                = 0xff52
	xkRight             = 0xff53
	xkDown              = 0xff54
	xkPageUp            = 0xff55
	xkPageDown          = 0xff56
	xkEnd               = 0xff57
	xkPrint             = 0xff61
	xkInsert            = 0xff63
	xkMenu              = 0xff67
	xkF1                = 0xffbe
	xkDelete            = 0xffff
	xkAudioLowerVolume  = 0x1008ff11
	xkAudioMute         = 0x1008ff12
	xkAudioRaiseVolume  = 0x1008ff13
	xkAudioPlay         = 0x1008ff14
	xkAudioNext         = 0x1008ff17
	xkAudioPrev         = 0x1008ff16
	xkMonBrightnessUp   = 0x1008ff02
	xkMonBrightnessDown = 0x1008ff03
)

// keysymNames maps the names accepted between angle brackets, as in
// "M-<Return>", to keysyms. Printable ASCII keys also have names, so that
// "<minus>" and "-" mean the same thing.
var keysymNames = map[string]xp.Keysym{
	"ISO_Left_Tab":          xkISOLeftTab,
	"BackSpace":             xkBackspace,
	"Tab":                   xkTab,
	"Return":                xkReturn,
	"Pause":                 xkPause,
	"Scroll_Lock":           xkScrollLock,
	"Escape":                xkEscape,
	"Home":                  xkHome,
	"Left":                  xkLeft,
	"Up":                    xkUp,
	"Right":                 xkRight,
	"Down":                  xkDown,
	"Page_Up":               xkPageUp,
	"Prior":                 xkPageUp,
	"Page_Down":             xkPageDown,
	"Next":                  xkPageDown,
	"End":                   xkEnd,
	"Print":                 xkPrint,
	"Insert":                xkInsert,
	"Menu":                  xkMenu,
	"Delete":                xkDelete,
	"XF86AudioLowerVolume":  xkAudioLowerVolume,
	"XF86AudioMute":         xkAudioMute,
	"XF86AudioRaiseVolume":  xkAudioRaiseVolume,
	"XF86AudioPlay":         xkAudioPlay,
	"XF86AudioNext":         xkAudioNext,
	"XF86AudioPrev":         xkAudioPrev,
	"XF86MonBrightnessUp":   xkMonBrightnessUp,
	"XF86MonBrightnessDown": xkMonBrightnessDown,

	"space":        ' ',
	"exclam":       '!',
	"quotedbl":     '"',
	"numbersign":   '#',
	"dollar":       '$',
	"percent":      '%',
	"ampersand":    '&',
	"apostrophe":   '\'',
	"parenleft":    '(',
	"parenright":   ')',
	"asterisk":     '*',
	"plus":         '+',
	"comma":        ',',
	"minus":        '-',
	"period":       '.',
	"slash":        '/',
	"colon":        ':',
	"semicolon":    ';',
	"less":         '<',
	"equal":        '=',
	"greater":      '>',
	"question":     '?',
	"at":           '@',
	"bracketleft":  '[',
	"backslash":    '\\',
	"bracketright": ']',
	"asciicircum":  '^',
	"underscore":   '_',
	"grave":        '`',
	"braceleft":    '{',
	"bar":          '|',
	"braceright":   '}',
	"asciitilde":   '~',
}

func init() {
	for i := 0; i < 12; i++ {
		keysymNames["F"+strconv.Itoa(i+1)] = xkF1 + xp.Keysym(i)
	}
}

// keysymString is the inverse of keysymNames, preferring the canonical
// name for keysyms that have two.
func keysymString(k xp.Keysym) string {
	switch k {
	case xkPageUp:
		return "Page_Up"
	case xkPageDown:
		return "Page_Down"
	}
	if ('0' <= k && k <= '9') || ('a' <= k && k <= 'z') || ('A' <= k && k <= 'Z') {
		return string(rune(k))
	}
	for name, v := range keysymNames {
		if v == k {
			return name
		}
	}
	return "UnknownKeysym"
}
