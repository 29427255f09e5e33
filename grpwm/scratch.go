package main

import (
	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wm"
	"github.com/nigeltao/grpwm/internal/wmconf"
)

var scratchPalette = palette{
	background: "#282c34",
	foreground: "#dcdfe4",
	red:        "#e06c75",
	blue:       "#e5c07b",
	cyan:       "#149bda",
	border:     "#514b57",
	taskBorder: "#3b404c",
}

// mutscrGroup is the invisible group behind the mutable scratchpad. Windows
// are added to and removed from it, and it is toggled over the current group.
const mutscrGroup = ""

func scratchKeys() []keys.Binding {
	b := []keys.Binding{
		{Chord: "M-a", Action: wm.Cmd("group.dropdown_toggle", "ranger", "file manager"), Desc: "toggle file manager"},

		{Chord: "M-h", Action: wm.Cmd("layout.left"), Desc: "focus left"},
		{Chord: "M-l", Action: wm.Cmd("layout.right"), Desc: "focus right"},
		{Chord: "M-j", Action: wm.Cmd("layout.down"), Desc: "focus down"},
		{Chord: "M-k", Action: wm.Cmd("layout.up"), Desc: "focus up"},

		// Move windows between columns.
		{Chord: "M-S-h", Action: wm.Cmd("layout.shuffle_left"), Desc: "move window left"},
		{Chord: "M-S-l", Action: wm.Cmd("layout.shuffle_right"), Desc: "move window right"},
		{Chord: "M-S-j", Action: wm.Cmd("layout.shuffle_down"), Desc: "move window down"},
		{Chord: "M-S-k", Action: wm.Cmd("layout.shuffle_up"), Desc: "move window up"},

		{Chord: "M-C-h", Action: wm.Cmd("layout.grow_left"), Desc: "grow left"},
		{Chord: "M-C-l", Action: wm.Cmd("layout.grow_right"), Desc: "grow right"},
		{Chord: "M-C-j", Action: wm.Cmd("layout.grow_down"), Desc: "grow down"},
		{Chord: "M-A-j", Action: wm.Cmd("layout.increase_ratio"), Desc: "increase ratio"},
		{Chord: "M-C-k", Action: wm.Cmd("layout.grow_up"), Desc: "grow up"},
		{Chord: "M-A-k", Action: wm.Cmd("layout.decrease_ratio"), Desc: "decrease ratio"},
		{Chord: "M-n", Action: wm.Cmd("layout.normalize"), Desc: "reset window sizes"},

		{Chord: "M-S-<Return>", Action: wm.Cmd("layout.toggle_split"), Desc: "toggle split"},
		{Chord: "M-<Up>", Action: wm.Cmd("next_layout"), Desc: "next layout"},

		{Chord: "M-d", Action: wm.Spawn(cmdLauncher), Desc: "launcher"},
		{Chord: "M-w", Action: wm.Spawn(cmdWindowSwitch), Desc: "window switcher"},
		{Chord: "M-S-q", Action: wm.Kill, Desc: "kill window"},
		{Chord: "M-C-r", Action: wm.Restart, Desc: "restart"},
		{Chord: "M-C-q", Action: wm.Shutdown, Desc: "shutdown"},
		{Chord: "M-r", Action: wm.SpawnCmd(glyphPrompt), Desc: "run command"},
		{Chord: "M-n", Action: wm.RenameGroup(), Desc: "rename group"},
		{Chord: "M-<space>", Action: wm.Cmd("screen.next_group"), Desc: "next group"},
		{Chord: "M-C-<space>", Action: wm.Cmd("screen.prev_group"), Desc: "previous group"},

		{Chord: "M-C-1", Action: wm.Spawn("telegram-desktop"), Desc: "telegram"},
		{Chord: "M-C-2", Action: wm.Spawn("firefox"), Desc: "firefox"},
		{Chord: "M-C-3", Action: wm.Spawn("thunar"), Desc: "thunar"},
		{Chord: "M-C-4", Action: wm.Spawn("code"), Desc: "code"},
		{Chord: "M-C-5", Action: wm.Spawn("discord"), Desc: "discord"},
		{Chord: "M-<Return>", Action: wm.Spawn(cmdTerminal), Desc: "terminal"},

		{Chord: "M-f", Action: wm.Cmd("window.toggle_floating"), Desc: "toggle floating"},
		{Chord: "M-<Tab>", Action: wm.Cmd("screen.next_group"), Desc: "next group"},
		{Chord: "M-C-<Tab>", Action: wm.Cmd("screen.prev_group"), Desc: "previous group"},
		{Chord: "M-m", Action: wm.Cmd("hide_show_bar", "top"), Desc: "toggle top bar"},
		{Chord: "M-C-m", Action: wm.Cmd("hide_show_bar", "bottom"), Desc: "toggle bottom bar"},

		{Chord: "A-<space>", Action: wm.Spawn("dunstctl close"), Desc: "close notification"},
		{Chord: "C-A-<space>", Action: wm.Spawn("dunstctl close-all"), Desc: "close all notifications"},
	}
	for _, c := range groupNames {
		name := string(c)
		b = append(b,
			keys.Binding{Chord: "M-" + name, Action: wm.ToGroup(name), Desc: "show group " + name},
			// The trailing true also switches to the group.
			keys.Binding{Chord: "M-S-" + name, Action: wm.Cmd("window.togroup", name, true), Desc: "move window to group " + name},
		)
	}
	return append(b,
		keys.Binding{Chord: "M-S-<minus>", Action: wm.Cmd("mutscr.add_current_window"), Desc: "add window to scratchpad"},
		keys.Binding{Chord: "M-<minus>", Action: wm.Cmd("mutscr.toggle"), Desc: "toggle scratchpad"},
		keys.Binding{Chord: "M-C-<minus>", Action: wm.Cmd("mutscr.remove"), Desc: "remove window from scratchpad"},
	)
}

func numberedGroups() []wmconf.Group {
	groups := make([]wmconf.Group, 0, len(groupNames))
	for _, c := range groupNames {
		groups = append(groups, wmconf.Group{Name: string(c)})
	}
	return groups
}

func scratchConfig(numMonitors int) *wmconf.Config {
	p := scratchPalette
	return &wmconf.Config{
		Name:   "scratch",
		Keys:   scratchKeys(),
		Mouse:  mouse,
		Groups: append(numberedGroups(), wmconf.Group{Name: mutscrGroup}),
		ScratchPads: []wmconf.ScratchPad{{
			Name: "ranger",
			DropDowns: []wmconf.DropDown{{
				Name:            "file manager",
				Cmd:             "urxvt -hold -e 'ranger'",
				X:               0.05,
				Y:               0.4,
				Width:           0.9,
				Height:          0.6,
				Opacity:         0.9,
				OnFocusLostHide: true,
			}},
		}},
		Layouts: []wmconf.Layout{
			{Kind: wmconf.Columns, BorderFocus: p.border, BorderNormal: p.background, BorderWidth: 1},
			{Kind: wmconf.Max},
			// Tile keeps the host's default normal border.
			{Kind: wmconf.Tile, BorderFocus: p.border, BorderWidth: 1},
		},
		Floating: wmconf.Floating{
			Rules:        floatRules(),
			BorderFocus:  p.border,
			BorderNormal: p.background,
		},
		WidgetDefaults: wmconf.WidgetDefaults{
			Font:       "Hack Nerd Font",
			FontSize:   14,
			Padding:    3,
			Foreground: p.foreground,
			Background: p.background,
		},
		Screens: screens(numMonitors, p),
		Options: options,
		Hooks: wmconf.Hooks{
			Autostart:       autostartScript,
			StartupComplete: []wm.Action{wm.Cmd("mutscr.qtile_startup")},
		},
	}
}
