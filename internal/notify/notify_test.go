package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_AddAndDrain(t *testing.T) {
	s := NewState()
	assert.False(t, s.HasAny())

	s.Notify(LevelError, "Failed to move candidate. Reverting changes.")
	s.Add(LevelSuccess, "Offer stage reached")

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, LevelError, all[0].Level)
	assert.Equal(t, "Offer stage reached", all[1].Message)

	drained := s.Drain()
	assert.Len(t, drained, 2)
	assert.False(t, s.HasAny())
}

func TestState_ClearLevel(t *testing.T) {
	s := NewState()
	s.Add(LevelInfo, "a")
	s.Add(LevelError, "b")
	s.Add(LevelInfo, "c")

	s.ClearLevel(LevelInfo)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].Message)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestState_Expire(t *testing.T) {
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)
	s := NewState()
	s.now = func() time.Time { return now }

	s.Add(LevelInfo, "old")
	now = now.Add(10 * time.Second)
	s.Add(LevelInfo, "new")

	s.Expire(5 * time.Second)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Message)
}

func TestFanout(t *testing.T) {
	var got []string
	f := Fanout{
		Func(func(_ Level, m string) { got = append(got, "one:"+m) }),
		nil,
		Func(func(_ Level, m string) { got = append(got, "two:"+m) }),
	}

	f.Notify(LevelWarning, "hi")

	assert.Equal(t, []string{"one:hi", "two:hi"}, got)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
