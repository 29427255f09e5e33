package wmconf

// Window is what a floating rule can see of a client window.
type Window struct {
	// Class is WM_CLASS: usually the instance name followed by the class
	// name.
	Class     []string
	Title     string
	Type      string // _NET_WM_WINDOW_TYPE, without the prefix, lower case.
	Transient bool
}

// Match is a floating rule. Every predicate that is set must hold; a Match
// with no predicates set is invalid.
type Match struct {
	WMClass   string `yaml:"wm_class,omitempty"`
	Title     string `yaml:"title,omitempty"`
	WMType    string `yaml:"wm_type,omitempty"`
	Transient bool   `yaml:"transient,omitempty"`
}

func (m Match) empty() bool {
	return m == Match{}
}

// Matches reports whether w satisfies m.
func (m Match) Matches(w Window) bool {
	if m.empty() {
		return false
	}
	if m.WMClass != "" && !contains(w.Class, m.WMClass) {
		return false
	}
	if m.Title != "" && m.Title != w.Title {
		return false
	}
	if m.WMType != "" && m.WMType != w.Type {
		return false
	}
	if m.Transient && !w.Transient {
		return false
	}
	return true
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

// Floating configures the floating layout: which windows bypass tiling, and
// how their borders look.
type Floating struct {
	Rules        []Match `yaml:"rules" validate:"dive"`
	BorderFocus  string  `yaml:"border_focus,omitempty" validate:"omitempty,wmcolor"`
	BorderNormal string  `yaml:"border_normal,omitempty" validate:"omitempty,wmcolor"`
}

// Match returns the index of the first rule that w satisfies, or -1.
func (f *Floating) Match(w Window) int {
	for i, m := range f.Rules {
		if m.Matches(w) {
			return i
		}
	}
	return -1
}

// DefaultFloatRules float the windows that are almost never meant to be
// tiled: dialogs, splash screens, transient windows and the like.
var DefaultFloatRules = []Match{
	{WMType: "utility"},
	{WMType: "notification"},
	{WMType: "toolbar"},
	{WMType: "splash"},
	{WMType: "dialog"},
	{WMClass: "file_progress"},
	{WMClass: "confirm"},
	{WMClass: "dialog"},
	{WMClass: "download"},
	{WMClass: "error"},
	{WMClass: "notification"},
	{WMClass: "splash"},
	{WMClass: "toolbar"},
	{Transient: true},
}
