package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nigeltao/grpwm/internal/hook"
	"github.com/nigeltao/grpwm/internal/keys"
	"github.com/nigeltao/grpwm/internal/wm"
	"github.com/nigeltao/grpwm/internal/wmconf"
)

type pressOptions struct {
	replies []string
	startup bool
	spawn   bool
}

func newPressCmd(flags *rootFlags) *cobra.Command {
	opts := &pressOptions{}

	cmd := &cobra.Command{
		Use:   "press CHORD...",
		Short: "Dry-run key chords against a simulated window manager",
		Long: `Press runs the actions bound to each chord, in order, against a simulated
window manager with one screen per monitor. It then prints each screen's
group and layout, and the programs, host commands and prompts the actions
asked for. Prompts are answered from --reply, in order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}
			return runPress(cmd, s, args, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.replies, "reply", nil, "answer to the next prompt (repeatable)")
	cmd.Flags().BoolVar(&opts.startup, "startup", false, "run the startup-complete hooks first")
	cmd.Flags().BoolVar(&opts.spawn, "spawn", false, "actually start the programs the chords spawn")

	return cmd
}

// newSim returns a simulated host with c's groups and layouts and one
// screen per declared screen.
func newSim(c *wmconf.Config) (*wm.Sim, error) {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	if len(names) < len(c.Screens) {
		return nil, fmt.Errorf("%d groups cannot fill %d screens", len(names), len(c.Screens))
	}
	if len(c.Screens) == 0 || len(c.Layouts) == 0 {
		return nil, fmt.Errorf("profile %s has no screens or no layouts", c.Name)
	}
	sim := wm.NewSim(len(c.Screens), len(c.Layouts), names...)
	for i, g := range c.Groups {
		if g.Label != "" {
			sim.Groups[i].Label = g.Label
		}
	}
	return sim, nil
}

func runPress(cmd *cobra.Command, s *session, chords []string, opts *pressOptions) error {
	t, err := keys.NewTable(s.config.Keys)
	if err != nil {
		return err
	}
	parsed := make([]keys.Chord, len(chords))
	for i, arg := range chords {
		if parsed[i], err = keys.Parse(arg); err != nil {
			return err
		}
	}
	sim, err := newSim(s.config)
	if err != nil {
		return err
	}
	sim.Replies = append(sim.Replies, opts.replies...)

	if opts.startup {
		for _, a := range s.config.Hooks.StartupComplete {
			a(sim)
		}
	}
	out := cmd.OutOrStdout()
	for _, c := range parsed {
		if !t.Dispatch(sim, c) {
			fmt.Fprintf(out, "%s: not bound\n", c)
			continue
		}
		s.log.Debug().Stringer("chord", c).Msg("dispatched")
	}

	fmt.Fprint(out, sim)
	for _, p := range sim.Prompts {
		fmt.Fprintf(out, "prompt: %s\n", p)
	}
	for _, c := range sim.Calls {
		fmt.Fprintf(out, "call: %s\n", c)
	}
	for _, sp := range sim.Spawned {
		fmt.Fprintf(out, "spawn: %s\n", sp)
		if !opts.spawn {
			continue
		}
		if err := hook.Spawn(sp); err != nil {
			s.log.Error().Err(err).Msg("spawn failed")
		}
	}
	return nil
}
