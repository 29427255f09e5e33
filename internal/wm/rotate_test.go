package wm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

func assignment(s *Sim) []string {
	out := make([]string, s.NumScreens())
	for i := range out {
		out[i] = s.ScreenGroup(i)
	}
	return out
}

func TestRotFocusClosesCycle(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, k := range []int{-7, -1, 0, 1, 2, 3, 11} {
			s := NewSim(n, 7, groupNames(n)...)
			s.Current = n - 1
			a := RotFocus(k)
			for i := 0; i < n; i++ {
				a(s)
				require.GreaterOrEqual(t, s.Current, 0)
				require.Less(t, s.Current, n)
			}
			assert.Equal(t, n-1, s.Current, "n=%d k=%d", n, k)
		}
	}
}

func TestRotFocusWraps(t *testing.T) {
	s := NewSim(3, 7, "a", "b", "c")
	RotFocus(1)(s)
	assert.Equal(t, 1, s.Current)
	RotFocus(-1)(s)
	RotFocus(-1)(s)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, []string{"a", "b", "c"}, assignment(s), "focus must not move groups")
}

func TestRotScreensShiftsGroups(t *testing.T) {
	s := NewSim(3, 7, "a", "b", "c", "d")
	RotScreens(1)(s)
	assert.Equal(t, []string{"b", "c", "a"}, assignment(s))
	RotScreens(-1)(s)
	assert.Equal(t, []string{"a", "b", "c"}, assignment(s))
	assert.Equal(t, 0, s.Current)
}

func TestRotScreensRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := NewSim(n, 7, groupNames(n+2)...)
		before := assignment(s)
		RotScreens(1)(s)
		RotScreens(-1)(s)
		assert.Equal(t, before, assignment(s), "n=%d", n)
	}
}

func TestRotScreensSingleScreen(t *testing.T) {
	s := NewSim(1, 7, "a", "b")
	RotScreens(1)(s)
	RotScreens(-3)(s)
	assert.Equal(t, []string{"a"}, assignment(s))
}

func TestFocusOrSwitchVisible(t *testing.T) {
	s := NewSim(3, 7, "1", "3", "5", "7")
	FocusOrSwitch("3")(s)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, []string{"1", "3", "5"}, assignment(s))
}

func TestFocusOrSwitchHidden(t *testing.T) {
	s := NewSim(3, 7, "1", "2", "5", "3")
	s.Current = 2
	FocusOrSwitch("3")(s)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, []string{"1", "2", "3"}, assignment(s))
}

func TestFocusOrSwitchUnknownGroup(t *testing.T) {
	s := NewSim(2, 7, "1", "2")
	FocusOrSwitch("nope")(s)
	assert.Equal(t, []string{"1", "2"}, assignment(s))
	assert.Len(t, s.Groups, 2)
}

func TestRotLayoutForwardSequence(t *testing.T) {
	s := NewSim(1, 7, "1")
	var got []int
	for i := 0; i < 8; i++ {
		got = append(got, s.LayoutIndex())
		RotLayout(Next)(s)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 1, 2}, got)
}

func TestRotLayoutBackwardSequence(t *testing.T) {
	s := NewSim(1, 7, "1")
	var got []int
	for i := 0; i < 8; i++ {
		got = append(got, s.LayoutIndex())
		RotLayout(Prev)(s)
	}
	assert.Equal(t, []int{0, 6, 5, 3, 2, 1, 6, 5}, got)
}

func TestRotLayoutSkips(t *testing.T) {
	tests := []struct {
		from int
		d    Direction
		want int
	}{
		{3, Next, 5},
		{6, Next, 1},
		{4, Next, 5},
		{1, Prev, 6},
		{5, Prev, 3},
		{4, Prev, 3},
		{0, Prev, 6},
	}
	for _, tt := range tests {
		s := NewSim(1, 7, "1")
		s.SetLayoutIndex(tt.from)
		RotLayout(tt.d)(s)
		assert.Equal(t, tt.want, s.LayoutIndex(), "from %d %v", tt.from, tt.d)
	}
}

func TestRotLayoutStaysInRange(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for from := 0; from < n; from++ {
			for _, d := range []Direction{Next, Prev} {
				s := NewSim(1, n, "1")
				s.SetLayoutIndex(from)
				RotLayout(d)(s)
				i := s.LayoutIndex()
				assert.True(t, 0 <= i && i < n, "n=%d from=%d %v gave %d", n, from, d, i)
			}
		}
	}
}

func TestRotLayoutAffectsCurrentGroupOnly(t *testing.T) {
	s := NewSim(2, 7, "a", "b")
	s.Current = 1
	RotLayout(Next)(s)
	assert.Equal(t, 0, s.Groups[0].Layout)
	assert.Equal(t, 1, s.Groups[1].Layout)
}

func TestFullscreenMode(t *testing.T) {
	for from := 0; from < 7; from++ {
		s := NewSim(1, 7, "1")
		s.SetLayoutIndex(from)
		FullscreenMode(Right)(s)
		assert.Equal(t, 4, s.LayoutIndex())
		FullscreenMode(Left)(s)
		assert.Equal(t, 0, s.LayoutIndex())
	}
}

func TestFullscreenModeShortStack(t *testing.T) {
	s := NewSim(1, 3, "1")
	FullscreenMode(Right)(s)
	assert.Equal(t, 1, s.LayoutIndex())
}

func TestRenameGroup(t *testing.T) {
	s := NewSim(2, 7, "1", "2")
	s.Current = 1
	s.Replies = []string{"web", ""}

	RenameGroup()(s)
	assert.Equal(t, []string{"name"}, s.Prompts)
	assert.Equal(t, "web", s.Groups[1].Label)
	assert.Equal(t, "1", s.Groups[0].Label)

	RenameGroup()(s)
	assert.Equal(t, "", s.Groups[1].Label, "empty input is passed through")

	RenameGroup()(s)
	assert.Len(t, s.Prompts, 3)
	assert.Equal(t, "", s.Groups[1].Label)
}
