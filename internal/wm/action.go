package wm

import (
	"fmt"
	"strings"
)

// Action is what a keybinding does. It runs when the key is pressed,
// receiving the live state, and must not block.
type Action func(State)

// Spawn starts cmd as a shell command line. Its output and exit status are
// not observed.
func Spawn(cmd string) Action {
	return func(s State) {
		s.Spawn(cmd)
	}
}

// SpawnCmd prompts for a command line and spawns whatever is entered.
// Empty input spawns nothing.
func SpawnCmd(label string) Action {
	return func(s State) {
		s.Prompt(label, func(cmd string) {
			if strings.TrimSpace(cmd) != "" {
				s.Spawn(cmd)
			}
		})
	}
}

// Cmd invokes a host command by name.
func Cmd(name string, args ...interface{}) Action {
	c := Command{Name: name, Args: args}
	return func(s State) {
		s.Call(c)
	}
}

// Host commands that several profiles share.
var (
	Kill     = Cmd("window.kill")
	Restart  = Cmd("restart")
	Shutdown = Cmd("shutdown")
)

// ToGroup shows group on the focused screen.
func ToGroup(group string) Action {
	return func(s State) {
		s.SetScreenGroup(s.CurrentScreen(), group)
	}
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name + "()"
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		if str, ok := a.(string); ok {
			args[i] = fmt.Sprintf("%q", str)
		} else {
			args[i] = fmt.Sprint(a)
		}
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}
