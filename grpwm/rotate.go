package main

import (
	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wm"
	"github.com/nigeltao/grpwm/internal/wmconf"
)

var rotatePalette = palette{
	background: "#2e3440",
	foreground: "#d8dee9",
	red:        "#bf616a",
	blue:       "#81a1c1",
	cyan:       "#88c0d0",
	border:     "#5e81ac",
	taskBorder: "#3b4252",
}

// rotateLayouts is ordered for wm.RotLayout and wm.FullscreenMode: columns
// (0) and max (4) sit outside the rotation and are reached directly.
func rotateLayouts(p palette) []wmconf.Layout {
	kinds := []wmconf.LayoutKind{
		wmconf.Columns,
		wmconf.MonadTall,
		wmconf.MonadWide,
		wmconf.Bsp,
		wmconf.Max,
		wmconf.RatioTile,
		wmconf.Tile,
	}
	layouts := make([]wmconf.Layout, len(kinds))
	for i, k := range kinds {
		layouts[i] = wmconf.Layout{Kind: k, BorderFocus: p.border, BorderNormal: p.background, BorderWidth: 2, Margin: 4}
		if k == wmconf.Max {
			layouts[i] = wmconf.Layout{Kind: k}
		}
	}
	return layouts
}

func rotateKeys() []keys.Binding {
	b := []keys.Binding{
		{Chord: "M-h", Action: wm.Cmd("layout.left"), Desc: "focus left"},
		{Chord: "M-l", Action: wm.Cmd("layout.right"), Desc: "focus right"},
		{Chord: "M-j", Action: wm.Cmd("layout.down"), Desc: "focus down"},
		{Chord: "M-k", Action: wm.Cmd("layout.up"), Desc: "focus up"},
		{Chord: "M-S-h", Action: wm.Cmd("layout.shuffle_left"), Desc: "move window left"},
		{Chord: "M-S-l", Action: wm.Cmd("layout.shuffle_right"), Desc: "move window right"},
		{Chord: "M-S-j", Action: wm.Cmd("layout.shuffle_down"), Desc: "move window down"},
		{Chord: "M-S-k", Action: wm.Cmd("layout.shuffle_up"), Desc: "move window up"},

		{Chord: "M-<period>", Action: wm.RotFocus(+1), Desc: "focus next screen"},
		{Chord: "M-<comma>", Action: wm.RotFocus(-1), Desc: "focus previous screen"},
		{Chord: "M-S-<period>", Action: wm.RotScreens(+1), Desc: "rotate groups forward across screens"},
		{Chord: "M-S-<comma>", Action: wm.RotScreens(-1), Desc: "rotate groups backward across screens"},
		{Chord: "M-<Up>", Action: wm.RotLayout(wm.Next), Desc: "next layout"},
		{Chord: "M-<Down>", Action: wm.RotLayout(wm.Prev), Desc: "previous layout"},
		{Chord: "M-<Right>", Action: wm.FullscreenMode(wm.Right), Desc: "maximize"},
		{Chord: "M-<Left>", Action: wm.FullscreenMode(wm.Left), Desc: "columns"},
		{Chord: "M-n", Action: wm.RenameGroup(), Desc: "rename group"},

		{Chord: "M-<Return>", Action: wm.Spawn(cmdTerminal), Desc: "terminal"},
		{Chord: "M-d", Action: wm.Spawn(cmdLauncher), Desc: "launcher"},
		{Chord: "M-w", Action: wm.Spawn(cmdWindowSwitch), Desc: "window switcher"},
		{Chord: "M-r", Action: wm.SpawnCmd(glyphPrompt), Desc: "run command"},
		{Chord: "M-f", Action: wm.Cmd("window.toggle_floating"), Desc: "toggle floating"},
		{Chord: "M-S-q", Action: wm.Kill, Desc: "kill window"},
		{Chord: "M-C-r", Action: wm.Restart, Desc: "restart"},
		{Chord: "M-C-q", Action: wm.Shutdown, Desc: "shutdown"},
	}
	for _, c := range groupNames {
		name := string(c)
		b = append(b,
			keys.Binding{Chord: "M-" + name, Action: wm.FocusOrSwitch(name), Desc: "focus or show group " + name},
			keys.Binding{Chord: "M-S-" + name, Action: wm.Cmd("window.togroup", name), Desc: "move window to group " + name},
		)
	}
	return b
}

func rotateConfig(numMonitors int) *wmconf.Config {
	p := rotatePalette
	return &wmconf.Config{
		Name:    "rotate",
		Keys:    rotateKeys(),
		Mouse:   mouse,
		Groups:  numberedGroups(),
		Layouts: rotateLayouts(p),
		Floating: wmconf.Floating{
			Rules:        floatRules(),
			BorderFocus:  p.border,
			BorderNormal: p.background,
		},
		WidgetDefaults: wmconf.WidgetDefaults{
			Font:       "Hack Nerd Font",
			FontSize:   13,
			Padding:    3,
			Foreground: p.foreground,
			Background: p.background,
		},
		Screens: screens(numMonitors, p),
		Options: options,
		Hooks:   wmconf.Hooks{Autostart: autostartScript},
	}
}
