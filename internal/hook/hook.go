// Package hook runs the programs a configuration asks for at startup.
package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// ExpandHome replaces a leading "~/" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Notifier tells the user about something that went wrong in the
// background, where a log line alone might go unread.
type Notifier func(title, message string) error

// DesktopNotifier sends a desktop notification.
func DesktopNotifier(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Autostart runs the script at path and waits for it to finish. An empty
// path does nothing. A failing script is logged and, if notify is non-nil,
// reported to the user; it is also returned, but callers starting a session
// should carry on regardless.
func Autostart(ctx context.Context, path string, log zerolog.Logger, notify Notifier) error {
	if path == "" {
		return nil
	}
	err := run(ctx, path, log)
	if err == nil {
		return nil
	}
	log.Error().Err(err).Str("script", path).Msg("autostart failed")
	if notify != nil {
		if nerr := notify("grpwm", fmt.Sprintf("autostart %s failed: %v", path, err)); nerr != nil {
			log.Warn().Err(nerr).Msg("could not send notification")
		}
	}
	return err
}

func run(ctx context.Context, path string, log zerolog.Logger) error {
	script, err := ExpandHome(path)
	if err != nil {
		return err
	}
	c := exec.CommandContext(ctx, script)
	out, err := c.CombinedOutput()
	if len(out) != 0 {
		log.Debug().Str("script", script).Bytes("output", out).Msg("autostart output")
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", script, err)
	}
	log.Info().Str("script", script).Msg("autostart finished")
	return nil
}

// Spawn starts cmd with sh -c and does not wait for it to finish. The
// command's exit status is ignored.
func Spawn(cmd string) error {
	if strings.TrimSpace(cmd) == "" {
		return fmt.Errorf("spawn: empty command")
	}
	c := exec.Command("/bin/sh", "-c", cmd)
	if err := c.Start(); err != nil {
		return fmt.Errorf("spawn %q: %w", cmd, err)
	}
	// Reap the child, ignoring any error from the program itself.
	go c.Wait()
	return nil
}
