package main

import (
	"sort"

	"github.com/nigeltao/grpwm/internal/wmconf"
)

// profiles are the configurations compiled into grpwm, by name. Each takes
// the number of monitors, which decides how many screens get bars.
var profiles = map[string]func(numMonitors int) *wmconf.Config{
	"scratch": scratchConfig,
	"rotate":  rotateConfig,
}

func profileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// autostartScript is run once, when the window manager first starts.
const autostartScript = "~/setup_qtile.sh"

// Commands shared by both profiles.
const (
	cmdTerminal     = "urxvt"
	cmdLauncher     = "rofi -show run -theme /usr/share/rofi/themes/Arc.rasi"
	cmdWindowSwitch = "rofi -show window -theme /usr/share/rofi/themes/Arc.rasi"
)

// groupNames are the names of the ordinary, numbered groups.
const groupNames = "123456789"

// Nerd Font glyphs used in bar widgets.
const (
	glyphCPU       = "\uf9c4"
	glyphThermal   = "\uf2c8"
	glyphMemory    = "\uf85a"
	glyphClock     = "\uf017"
	glyphCharge    = "\uf58f"
	glyphDischarge = "\uf58c"
	glyphEmpty     = "\uf579"
	glyphFull      = "\uf578"
	glyphBacklight = "\uf5de"
	glyphMinimized = "\uf070"
	glyphPrompt    = "\u03bb"
)

// palette is the set of named colors a profile's bars and borders use.
type palette struct {
	background string
	foreground string
	red        string
	blue       string
	cyan       string
	border     string
	taskBorder string
}

// screens lays out bars for numMonitors screens: the first gets the full
// status bar, the rest a smaller one. Every screen gets a task list.
func screens(numMonitors int, p palette) []wmconf.Screen {
	if numMonitors < 1 {
		numMonitors = 1
	}
	out := make([]wmconf.Screen, numMonitors)
	for i := range out {
		bottom := &wmconf.Bar{Size: 30}
		if i == 0 {
			bottom.Widgets = fullStatus(p)
		} else {
			bottom.Widgets = []wmconf.Widget{prompt(p), groupBox(p), {Kind: wmconf.WindowName}}
		}
		out[i] = wmconf.Screen{Top: taskBar(p), Bottom: bottom}
	}
	return out
}

func prompt(p palette) wmconf.Widget {
	return wmconf.Widget{Kind: wmconf.Prompt, Background: p.red, Foreground: p.background}
}

func groupBox(p palette) wmconf.Widget {
	return wmconf.Widget{Kind: wmconf.GroupBox, Options: map[string]interface{}{
		"highlight_method":            "block",
		"rounded":                     false,
		"block_highlight_text_color":  p.background,
		"this_current_screen_border":  p.foreground,
		"this_screen_border":          p.foreground,
		"other_current_screen_border": p.blue,
		"other_screen_border":         p.blue,
		"urgent_border":               p.red,
	}}
}

func fullStatus(p palette) []wmconf.Widget {
	return []wmconf.Widget{
		prompt(p),
		groupBox(p),
		{Kind: wmconf.WindowName, Options: map[string]interface{}{"max_chars": 70}},
		{Kind: wmconf.CPU, Options: map[string]interface{}{
			"format": " " + glyphCPU + " {freq_current}GHz {load_percent}%",
		}},
		{Kind: wmconf.TextBox, Options: map[string]interface{}{"text": " " + glyphThermal}},
		{Kind: wmconf.ThermalSensor, Options: map[string]interface{}{"threshold": 85}},
		{Kind: wmconf.Memory, Options: map[string]interface{}{
			"format":      " " + glyphMemory + "{MemUsed: .2f}{mm}",
			"measure_mem": "G",
		}},
		{Kind: wmconf.Clock, Options: map[string]interface{}{"format": " " + glyphClock + " %I:%M %p"}},
		{Kind: wmconf.Battery, Options: map[string]interface{}{
			"format":          " {char}{percent: 2.0%}",
			"charge_char":     glyphCharge,
			"discharge_char":  glyphDischarge,
			"empty_char":      glyphEmpty,
			"full_char":       glyphFull,
			"show_short_text": false,
		}},
		{Kind: wmconf.Backlight, Options: map[string]interface{}{
			"format":         " " + glyphBacklight + " {percent:2.0%}",
			"backlight_name": "intel_backlight",
		}},
		{Kind: wmconf.Sep, Foreground: p.cyan, Options: map[string]interface{}{"linewidth": 0, "padding": 10}},
		{Kind: wmconf.Systray},
	}
}

func taskBar(p palette) *wmconf.Bar {
	return &wmconf.Bar{Size: 22, Widgets: []wmconf.Widget{{
		Kind: wmconf.TaskList,
		Options: map[string]interface{}{
			"title_width_method": "uniform",
			"highlight_method":   "block",
			"icon_size":          0,
			"border":             p.taskBorder,
			"rounded":            false,
			"txt_minimized":      glyphMinimized + " ",
		},
	}}}
}

// floatRules extends the default floating rules with a few windows that
// are dialogs in all but name.
func floatRules() []wmconf.Match {
	return append(append([]wmconf.Match(nil), wmconf.DefaultFloatRules...),
		wmconf.Match{WMClass: "confirmreset"},   // gitk
		wmconf.Match{WMClass: "makebranch"},     // gitk
		wmconf.Match{WMClass: "maketag"},        // gitk
		wmconf.Match{WMClass: "ssh-askpass"},    // ssh-askpass
		wmconf.Match{Title: "branchdialog"},     // gitk
		wmconf.Match{Title: "pinentry"},         // GPG key password entry
		wmconf.Match{WMClass: "blueman-manager"},
		wmconf.Match{WMClass: "pavucontrol"},
	)
}

// mouse lets the mod key and a mouse button move, resize or raise floating
// windows.
var mouse = []wmconf.Mouse{
	{Kind: wmconf.Drag, Mods: "M", Button: "Button1", Command: "window.set_position_floating", Start: "window.get_position"},
	{Kind: wmconf.Drag, Mods: "M", Button: "Button3", Command: "window.set_size_floating", Start: "window.get_size"},
	{Kind: wmconf.Click, Mods: "M", Button: "Button2", Command: "window.bring_to_front"},
}

var options = wmconf.Options{
	FollowMouseFocus:        true,
	BringFrontClick:         false,
	CursorWarp:              false,
	AutoFullscreen:          true,
	FocusOnWindowActivation: "smart",
	ReconfigureScreens:      true,
	// If things like steam games want to auto-minimize themselves when
	// losing focus, respect that.
	AutoMinimize: true,
	// Some Java programs only work with a window manager they recognize.
	WMName: "LG3D",
}
