// Package wmconf holds the declarative half of a window manager
// configuration: groups, layouts, bars, floating rules and the like. None of
// it does anything by itself; a host reads it at startup.
package wmconf

import (
	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wm"
)

type Config struct {
	Name string `yaml:"name" validate:"required"`

	Keys  []keys.Binding `yaml:"-" validate:"-"`
	Mouse []Mouse        `yaml:"mouse,omitempty" validate:"dive"`

	Groups      []Group      `yaml:"groups" validate:"required,dive"`
	ScratchPads []ScratchPad `yaml:"scratchpads,omitempty" validate:"dive"`
	Layouts     []Layout     `yaml:"layouts" validate:"required,dive"`
	Floating    Floating     `yaml:"floating"`

	WidgetDefaults WidgetDefaults `yaml:"widget_defaults"`
	Screens        []Screen       `yaml:"screens" validate:"required,dive"`

	Options Options `yaml:"options"`
	Hooks   Hooks   `yaml:"hooks"`
}

// Group is a named set of windows, shown on at most one screen at a time.
// A group with an empty name never appears in a group box.
type Group struct {
	Name   string     `yaml:"name"`
	Label  string     `yaml:"label,omitempty"`
	Layout LayoutKind `yaml:"layout,omitempty" validate:"omitempty,layoutkind"`
}

// ScratchPad is a hidden group whose windows drop down over the current
// group on demand.
type ScratchPad struct {
	Name      string     `yaml:"name" validate:"required"`
	DropDowns []DropDown `yaml:"dropdowns" validate:"required,dive"`
}

// DropDown geometry is relative to the screen, from 0 to 1.
type DropDown struct {
	Name            string  `yaml:"name" validate:"required"`
	Cmd             string  `yaml:"cmd" validate:"required"`
	X               float64 `yaml:"x" validate:"gte=0,lte=1"`
	Y               float64 `yaml:"y" validate:"gte=0,lte=1"`
	Width           float64 `yaml:"width" validate:"gt=0,lte=1"`
	Height          float64 `yaml:"height" validate:"gt=0,lte=1"`
	Opacity         float64 `yaml:"opacity" validate:"gt=0,lte=1"`
	OnFocusLostHide bool    `yaml:"on_focus_lost_hide"`
}

type LayoutKind string

const (
	Columns   LayoutKind = "columns"
	Max       LayoutKind = "max"
	Tile      LayoutKind = "tile"
	MonadTall LayoutKind = "monadtall"
	MonadWide LayoutKind = "monadwide"
	Bsp       LayoutKind = "bsp"
	RatioTile LayoutKind = "ratiotile"
	Floats    LayoutKind = "floating"
)

var layoutKinds = map[LayoutKind]bool{
	Columns: true, Max: true, Tile: true, MonadTall: true,
	MonadWide: true, Bsp: true, RatioTile: true, Floats: true,
}

// Layout is one entry of the layout stack. Its index in Config.Layouts is
// what the rotation actions manipulate.
type Layout struct {
	Kind         LayoutKind `yaml:"kind" validate:"layoutkind"`
	BorderFocus  string     `yaml:"border_focus,omitempty" validate:"omitempty,wmcolor"`
	BorderNormal string     `yaml:"border_normal,omitempty" validate:"omitempty,wmcolor"`
	BorderWidth  int        `yaml:"border_width,omitempty" validate:"gte=0"`
	Margin       int        `yaml:"margin,omitempty" validate:"gte=0"`
}

type Screen struct {
	Top    *Bar `yaml:"top,omitempty"`
	Bottom *Bar `yaml:"bottom,omitempty"`
}

type Bar struct {
	Widgets []Widget `yaml:"widgets" validate:"required,dive"`
	Size    int      `yaml:"size" validate:"gt=0"`
}

type WidgetKind string

const (
	Prompt        WidgetKind = "prompt"
	GroupBox      WidgetKind = "groupbox"
	WindowName    WidgetKind = "windowname"
	CPU           WidgetKind = "cpu"
	TextBox       WidgetKind = "textbox"
	ThermalSensor WidgetKind = "thermalsensor"
	Memory        WidgetKind = "memory"
	Clock         WidgetKind = "clock"
	Battery       WidgetKind = "battery"
	Backlight     WidgetKind = "backlight"
	Sep           WidgetKind = "sep"
	Systray       WidgetKind = "systray"
	TaskList      WidgetKind = "tasklist"
	CurrentLayout WidgetKind = "currentlayout"
)

// Widget is a bar item. Options are passed to the host untouched; only the
// colors are interpreted here.
type Widget struct {
	Kind       WidgetKind             `yaml:"kind" validate:"required"`
	Foreground string                 `yaml:"foreground,omitempty" validate:"omitempty,wmcolor"`
	Background string                 `yaml:"background,omitempty" validate:"omitempty,wmcolor"`
	Options    map[string]interface{} `yaml:"options,omitempty"`
}

type WidgetDefaults struct {
	Font       string `yaml:"font" validate:"required"`
	FontSize   int    `yaml:"fontsize" validate:"gt=0"`
	Padding    int    `yaml:"padding" validate:"gte=0"`
	Foreground string `yaml:"foreground" validate:"required,wmcolor"`
	Background string `yaml:"background" validate:"required,wmcolor"`
}

type MouseKind string

const (
	Drag  MouseKind = "drag"
	Click MouseKind = "click"
)

// Mouse binds a modified mouse button. A drag runs Start when the button
// goes down and Command as the pointer moves.
type Mouse struct {
	Kind    MouseKind `yaml:"kind" validate:"oneof=drag click"`
	Mods    string    `yaml:"mods"`
	Button  string    `yaml:"button" validate:"oneof=Button1 Button2 Button3 Button4 Button5"`
	Command string    `yaml:"command" validate:"required"`
	Start   string    `yaml:"start,omitempty"`
}

// Options are host-wide switches.
type Options struct {
	FollowMouseFocus        bool   `yaml:"follow_mouse_focus"`
	BringFrontClick         bool   `yaml:"bring_front_click"`
	CursorWarp              bool   `yaml:"cursor_warp"`
	AutoFullscreen          bool   `yaml:"auto_fullscreen"`
	FocusOnWindowActivation string `yaml:"focus_on_window_activation" validate:"oneof=smart focus urgent never"`
	ReconfigureScreens      bool   `yaml:"reconfigure_screens"`
	AutoMinimize            bool   `yaml:"auto_minimize"`
	WMName                  string `yaml:"wmname" validate:"required"`
}

type Hooks struct {
	// Autostart is a script run once, when the host first starts. A
	// leading "~/" is expanded to the user's home directory.
	Autostart string `yaml:"autostart,omitempty"`

	// StartupComplete runs after the host has finished starting, including
	// after each restart.
	StartupComplete []wm.Action `yaml:"-" validate:"-"`
}
