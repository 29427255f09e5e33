package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nigeltao/grpwm/internal/logger"
	"github.com/nigeltao/grpwm/internal/monitor"
	"github.com/nigeltao/grpwm/internal/settings"
	"github.com/nigeltao/grpwm/internal/wmconf"
)

type rootFlags struct {
	configPath string
	profile    string
	display    string
	monitors   int
	logLevel   string
}

// session is what every subcommand starts from: the run-time settings, a
// logger, and the selected profile built for the detected monitors.
type session struct {
	settings settings.Settings
	log      zerolog.Logger
	monitors int
	config   *wmconf.Config
}

func (f *rootFlags) session(cmd *cobra.Command) (*session, error) {
	s, err := settings.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("profile") {
		s.Profile = f.profile
	}
	if flags.Changed("display") {
		s.Display = f.display
	}
	if flags.Changed("log-level") {
		s.Log.Level = f.logLevel
	}

	l, err := logger.New(logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	build, ok := profiles[s.Profile]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (have %s)", s.Profile, strings.Join(profileNames(), ", "))
	}
	n := f.monitors
	if n <= 0 {
		n = monitor.Detect(s.Display, l)
	}
	l = l.With().Str("profile", s.Profile).Int("monitors", n).Logger()
	l.Debug().Msg("session ready")

	return &session{
		settings: s,
		log:      l,
		monitors: n,
		config:   build(n),
	}, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "grpwm",
		Short:         "grpwm builds, checks and dry-runs tiling window manager configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/grpwm/config.yaml)")
	pf.StringVarP(&flags.profile, "profile", "p", "", "configuration profile: "+strings.Join(profileNames(), " or "))
	pf.StringVar(&flags.display, "display", "", "X display to query (default $DISPLAY)")
	pf.IntVar(&flags.monitors, "monitors", 0, "number of monitors; 0 asks the X server")
	pf.StringVar(&flags.logLevel, "log-level", "", "trace, debug, info, warn or error")

	cmd.AddCommand(newKeysCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newDumpCmd(flags))
	cmd.AddCommand(newMonitorsCmd(flags))
	cmd.AddCommand(newFloatsCmd(flags))
	cmd.AddCommand(newPressCmd(flags))
	cmd.AddCommand(newAutostartCmd(flags))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
