package hook

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tao")
	tests := []struct{ in, want string }{
		{"~/setup_qtile.sh", "/home/tao/setup_qtile.sh"},
		{"~", "/home/tao"},
		{"/etc/x.sh", "/etc/x.sh"},
		{"~other/x.sh", "~other/x.sh"},
		{"rel/x.sh", "rel/x.sh"},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAutostartRunsScriptUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	marker := filepath.Join(home, "ran")
	writeScript(t, home, "setup.sh", "echo hello\ntouch "+marker+"\n")

	var buf bytes.Buffer
	notified := false
	err := Autostart(context.Background(), "~/setup.sh", zerolog.New(&buf).Level(zerolog.DebugLevel),
		func(string, string) error { notified = true; return nil })
	require.NoError(t, err)
	assert.FileExists(t, marker)
	assert.False(t, notified)
	assert.Contains(t, buf.String(), "autostart finished")
}

func TestAutostartFailureNotifies(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fail.sh", "exit 3\n")

	var title, msg string
	var buf bytes.Buffer
	err := Autostart(context.Background(), script, zerolog.New(&buf),
		func(tt, m string) error { title, msg = tt, m; return nil })
	require.Error(t, err)
	assert.Equal(t, "grpwm", title)
	assert.Contains(t, msg, "fail.sh")
	assert.Contains(t, buf.String(), "autostart failed")
}

func TestAutostartMissingScript(t *testing.T) {
	err := Autostart(context.Background(), filepath.Join(t.TempDir(), "nope.sh"), zerolog.Nop(), nil)
	assert.Error(t, err)
}

func TestAutostartEmptyPath(t *testing.T) {
	called := false
	err := Autostart(context.Background(), "", zerolog.Nop(),
		func(string, string) error { called = true; return nil })
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestSpawn(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, Spawn("touch "+filepath.Join(dir, "x")))
	assert.Error(t, Spawn("   "))
	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "x"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}
