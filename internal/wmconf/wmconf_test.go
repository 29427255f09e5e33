package wmconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wm"
)

func validConfig() *Config {
	return &Config{
		Name: "test",
		Keys: []keys.Binding{
			{Chord: "M-<Return>", Action: wm.Spawn("urxvt"), Desc: "terminal"},
			{Chord: "M-1", Action: wm.ToGroup("1"), Desc: "group 1"},
		},
		Mouse: []Mouse{
			{Kind: Drag, Mods: "M", Button: "Button1", Command: "window.set_position_floating", Start: "window.get_position"},
		},
		Groups:  []Group{{Name: "1"}, {Name: "2", Layout: Max}, {Name: ""}},
		Layouts: []Layout{{Kind: Columns, BorderFocus: "#514b57", BorderWidth: 1}, {Kind: Max}},
		ScratchPads: []ScratchPad{{
			Name: "ranger",
			DropDowns: []DropDown{{
				Name: "file manager", Cmd: "urxvt -e ranger",
				X: 0.05, Y: 0.4, Width: 0.9, Height: 0.6, Opacity: 0.9,
			}},
		}},
		Floating: Floating{Rules: append([]Match{{WMClass: "pavucontrol"}}, DefaultFloatRules...)},
		WidgetDefaults: WidgetDefaults{
			Font: "Hack", FontSize: 14, Padding: 3,
			Foreground: "#dcdfe4", Background: "#282c34",
		},
		Screens: []Screen{{
			Bottom: &Bar{Size: 30, Widgets: []Widget{{Kind: GroupBox}, {Kind: Clock}}},
		}},
		Options: Options{FocusOnWindowActivation: "smart", WMName: "LG3D"},
		Hooks:   Hooks{Autostart: "~/setup.sh"},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsNil(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad color", func(c *Config) { c.Layouts[0].BorderFocus = "#zzzzzz" }, "Layouts[0].BorderFocus: failed wmcolor"},
		{"unknown layout", func(c *Config) { c.Layouts[1].Kind = "spiral" }, "Layouts[1].Kind: failed layoutkind"},
		{"group layout", func(c *Config) { c.Groups[0].Layout = "spiral" }, "Groups[0].Layout: failed layoutkind"},
		{"no layouts", func(c *Config) { c.Layouts = nil }, "Layouts: failed required"},
		{"zero bar", func(c *Config) { c.Screens[0].Bottom.Size = 0 }, "Screens[0].Bottom.Size: failed gt=0"},
		{"dropdown", func(c *Config) { c.ScratchPads[0].DropDowns[0].Width = 1.5 }, "Width: failed lte=1"},
		{"empty rule", func(c *Config) { c.Floating.Rules = append(c.Floating.Rules, Match{}) }, "failed nonempty"},
		{"activation", func(c *Config) { c.Options.FocusOnWindowActivation = "sometimes" }, "FocusOnWindowActivation: failed oneof"},
		{"duplicate group", func(c *Config) { c.Groups = append(c.Groups, Group{Name: "2"}) }, `duplicate group name "2"`},
		{"scratchpad clash", func(c *Config) { c.ScratchPads[0].Name = "1" }, `name "1" is already a group`},
		{"bad chord", func(c *Config) { c.Keys[0].Chord = "M-<Nope>" }, "keys: binding 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatch(t *testing.T) {
	w := Window{Class: []string{"pinentry-gtk-2", "Pinentry-gtk-2"}, Title: "pinentry", Type: "normal"}
	assert.True(t, Match{Title: "pinentry"}.Matches(w))
	assert.True(t, Match{WMClass: "Pinentry-gtk-2"}.Matches(w))
	assert.True(t, Match{WMClass: "pinentry-gtk-2", Title: "pinentry"}.Matches(w))
	assert.False(t, Match{WMClass: "pinentry-gtk-2", Title: "other"}.Matches(w))
	assert.False(t, Match{WMType: "dialog"}.Matches(w))
	assert.False(t, Match{Transient: true}.Matches(w))
	assert.False(t, Match{}.Matches(w), "an empty rule matches nothing")

	w.Transient = true
	assert.True(t, Match{Transient: true}.Matches(w))
}

func TestFloatingMatch(t *testing.T) {
	f := Floating{Rules: append([]Match{{WMClass: "pavucontrol"}}, DefaultFloatRules...)}
	assert.Equal(t, 0, f.Match(Window{Class: []string{"pavucontrol", "Pavucontrol"}}))
	assert.Equal(t, 5, f.Match(Window{Class: []string{"x"}, Type: "dialog"}))
	assert.Equal(t, -1, f.Match(Window{Class: []string{"urxvt", "URxvt"}, Type: "normal"}))
}

func TestLint(t *testing.T) {
	c := validConfig()
	c.Keys = append(c.Keys, keys.Binding{Chord: "M-<Return>", Action: wm.Spawn("xterm"), Desc: "other terminal"})
	c.Screens[0].Bottom.Widgets = append(c.Screens[0].Bottom.Widgets,
		Widget{Kind: Prompt, Foreground: "#282c34", Background: "#282c35"})

	warnings := Lint(c)
	require.Len(t, warnings, 2)
	assert.Equal(t, "key M-<Return>: binding 0 (terminal) is shadowed by binding 2 (other terminal)", warnings[0])
	assert.Equal(t, "screen 0 bottom bar widget 2 (prompt): #282c34 on #282c35 is hard to read", warnings[1])
}

func TestLintCleanConfig(t *testing.T) {
	assert.Empty(t, Lint(validConfig()))
}

func TestExport(t *testing.T) {
	out, err := Export(validConfig())
	require.NoError(t, err)

	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "test", back["name"])
	assert.Len(t, back["groups"], 3)
	assert.Len(t, back["layouts"], 2)

	ks, ok := back["keys"].([]interface{})
	require.True(t, ok)
	require.Len(t, ks, 2)
	assert.Equal(t, map[string]interface{}{"chord": "M-<Return>", "desc": "terminal"}, ks[0])

	assert.True(t, strings.Contains(string(out), "~/setup.sh"))
	assert.NotContains(t, string(out), "startupcomplete")
}
