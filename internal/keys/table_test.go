package keys

import (
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigeltao/grpwm/internal/wm"
)

func TestTableLastBindingWins(t *testing.T) {
	table, err := NewTable([]Binding{
		{"M-n", wm.Cmd("layout.normalize"), ""},
		{"M-d", wm.Spawn("rofi -show run"), "launcher"},
		{"M-n", wm.RenameGroup(), "rename group"},
	})
	require.NoError(t, err)

	b, ok := table.Lookup(MustParse("M-n"))
	require.True(t, ok)
	assert.Equal(t, "rename group", b.Desc)

	assert.Equal(t, []Shadow{{Chord: MustParse("M-n"), Lost: 0, Won: 2}}, table.Shadows())
}

func TestTableDispatch(t *testing.T) {
	table, err := NewTable([]Binding{
		{"M-<Return>", wm.Spawn("urxvt"), ""},
		{"M-S-q", wm.Kill, ""},
	})
	require.NoError(t, err)

	s := wm.NewSim(1, 3, "1")
	assert.True(t, table.Dispatch(s, FromEvent(xp.ModMask4|xp.ModMaskLock, xkReturn)))
	assert.False(t, table.Dispatch(s, MustParse("M-q")))
	assert.True(t, table.Dispatch(s, MustParse("S-M-q")))

	assert.Equal(t, []string{"urxvt"}, s.Spawned)
	assert.Equal(t, []wm.Command{{Name: "window.kill"}}, s.Calls)
}

func TestTableReportsAllErrors(t *testing.T) {
	_, err := NewTable([]Binding{
		{"M-", wm.Kill, ""},
		{"M-a", wm.Kill, ""},
		{"M-<Bogus>", wm.Kill, ""},
		{"M-b", nil, ""},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding 0")
	assert.Contains(t, err.Error(), "binding 2")
	assert.Contains(t, err.Error(), "binding 3")
	assert.NotContains(t, err.Error(), "binding 1")
}

func TestTableKeysyms(t *testing.T) {
	table, err := NewTable([]Binding{
		{"M-a", wm.Kill, ""},
		{"M-S-a", wm.Kill, ""},
		{"M-<Return>", wm.Kill, ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []xp.Keysym{'a', xkReturn}, table.Keysyms())
	assert.Equal(t, 3, table.Len())

	b, c := table.Binding(1)
	assert.Equal(t, "M-S-a", b.Chord)
	assert.Equal(t, MustParse("M-S-a"), c)
}
