/*
Grpwm is a pair of keyboard driven tiling window manager configurations, and a
tool for checking them. A configuration declares key bindings, groups (what
other window managers call workspaces), layouts, status bars and the rules for
which windows float. Grpwm compiles those declarations in, and can validate
them, print them, or try its key bindings out against a simulated window
manager before a real one ever sees them.


PROFILES

The "scratch" profile has nine groups, three layouts (columns, max and tile),
a drop-down ranger file manager on Mod4 and 'A', and a mutable scratchpad that
windows can be added to (Mod4, Shift and '-'), toggled (Mod4 and '-') and
removed from (Mod4, Control and '-').

The "rotate" profile has nine groups and seven layouts, and is built around
rotation. Mod4 and '.' or ',' move the focus to the next or previous screen.
Adding Shift rotates the groups across the screens instead, leaving the focus
where it is. Mod4 and Up or Down step through the tiling layouts, skipping
columns and max, which Mod4 and Left or Right select directly. Mod4 and a
number key focus the screen showing that group, or bring the group to the
focused screen if no screen shows it.

In both profiles Mod4 and 'N' prompts for a new name for the current group.

Both profiles give the first screen a full status bar and every other screen
a smaller one. The number of screens is the number of monitors that report a
preferred mode, as told by the X server's RandR extension, or one if the
server cannot be asked.


USAGE

	grpwm keys                  list the key bindings
	grpwm check [--x]           validate; --x also checks the keyboard has every key
	grpwm dump                  print the configuration as YAML
	grpwm monitors              print the monitor count
	grpwm floats                list windows and whether each would float
	grpwm press M-S-. M-<Up>    dry-run key chords
	grpwm autostart             run the startup script

Chords are written as dash-separated modifiers followed by one key: M for
Mod4, A for Mod1, C for Control and S for Shift. A key is a single character,
or a keysym name in angle brackets such as <Return> or <space>.

Every command takes --profile, and --monitors to skip asking the X server.


SETTINGS

Settings that vary by machine rather than by taste live in
$XDG_CONFIG_HOME/grpwm/config.yaml:
	profile: rotate
	display: ":0"
	log:
	  level: debug
	  human: true
	autostart: ~/setup_qtile.sh
	notify: true
Each can be overridden by an environment variable such as GRPWM_PROFILE or
GRPWM_LOG_LEVEL. If the startup script fails and notify is set, grpwm sends a
desktop notification.


CUSTOMIZATION

Customizing the key bindings, groups, colors, bars, etc., is done by editing
scratch.go, rotate.go or config.go and re-compiling.
*/
package main
