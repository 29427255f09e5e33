package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nigeltao/grpwm/internal/hook"
	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wmconf"
	"github.com/nigeltao/grpwm/internal/xconn"
)

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the profile's key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			t, err := keys.NewTable(s.config.Keys)
			if err != nil {
				return err
			}
			lost := make(map[int]bool)
			for _, sh := range t.Shadows() {
				lost[sh.Lost] = true
			}

			chords := make([]string, t.Len())
			width := 0
			for i := range chords {
				_, c := t.Binding(i)
				chords[i] = c.String()
				if w := runewidth.StringWidth(chords[i]); w > width {
					width = w
				}
			}
			out := cmd.OutOrStdout()
			for i, chord := range chords {
				b, _ := t.Binding(i)
				desc := b.Desc
				if lost[i] {
					desc += " (shadowed)"
				}
				fmt.Fprintf(out, "%s  %s\n", runewidth.FillRight(chord, width), desc)
			}
			return nil
		},
	}
}

type checkOptions struct {
	x bool
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the profile and report warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			c := s.config
			if err := wmconf.Validate(c); err != nil {
				return fmt.Errorf("profile %s: %w", c.Name, err)
			}
			out := cmd.OutOrStdout()
			for _, w := range wmconf.Lint(c) {
				s.log.Warn().Msg(w)
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			if opts.x {
				if err := checkKeyboard(s.settings.Display, c); err != nil {
					return fmt.Errorf("profile %s: %w", c.Name, err)
				}
			}
			fmt.Fprintf(out, "%s: %d keys, %d groups, %d layouts, %d screens: ok\n",
				c.Name, len(c.Keys), len(c.Groups), len(c.Layouts), len(c.Screens))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.x, "x", false, "also check that the X server's keyboard has every bound key")

	return cmd
}

// checkKeyboard reports the bound keys that no keycode produces.
func checkKeyboard(display string, c *wmconf.Config) error {
	t, err := keys.NewTable(c.Keys)
	if err != nil {
		return err
	}
	conn, err := xconn.Dial(display)
	if err != nil {
		return err
	}
	defer conn.Close()
	keysyms, err := conn.Keysyms()
	if err != nil {
		return err
	}
	var errs []error
	for _, k := range t.Keysyms() {
		if code, _ := xconn.FindKeycode(keysyms, k); code == 0 {
			errs = append(errs, fmt.Errorf("no key produces %s", keys.Chord{Keysym: k}))
		}
	}
	return errors.Join(errs...)
}

func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the profile as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			b, err := wmconf.Export(s.config)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newMonitorsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "Print how many monitors, and so screens, the profile is built for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.monitors)
			return nil
		},
	}
}

// titleWidth is how many columns of a window title the floats command
// shows.
const titleWidth = 40

func newFloatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "floats",
		Short: "List the X server's windows and the floating rule each one matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			conn, err := xconn.Dial(s.settings.Display)
			if err != nil {
				return err
			}
			defer conn.Close()
			windows, err := conn.Windows()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range windows {
				fmt.Fprintf(out, "%#08x  %s  %-20s  %-12s  %s\n",
					w.ID,
					runewidth.FillRight(runewidth.Truncate(w.Title, titleWidth, "…"), titleWidth),
					strings.Join(w.Class, "/"),
					w.Type,
					describeMatch(&s.config.Floating, w.Window))
			}
			s.log.Debug().Int("windows", len(windows)).Msg("listed windows")
			return nil
		},
	}
}

func describeMatch(f *wmconf.Floating, w wmconf.Window) string {
	i := f.Match(w)
	if i < 0 {
		return "tiled"
	}
	m := f.Rules[i]
	var preds []string
	if m.WMClass != "" {
		preds = append(preds, "wm_class="+m.WMClass)
	}
	if m.Title != "" {
		preds = append(preds, "title="+m.Title)
	}
	if m.WMType != "" {
		preds = append(preds, "wm_type="+m.WMType)
	}
	if m.Transient {
		preds = append(preds, "transient")
	}
	return fmt.Sprintf("floating (rule %d: %s)", i, strings.Join(preds, " "))
}

func newAutostartCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "autostart",
		Short: "Run the startup script once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			path := s.config.Hooks.Autostart
			if s.settings.Autostart != "" {
				path = s.settings.Autostart
			}
			var notify hook.Notifier
			if s.settings.Notify {
				notify = hook.DesktopNotifier
			}
			return hook.Autostart(cmd.Context(), path, s.log, notify)
		},
	}
}
