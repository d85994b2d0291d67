package collision

import (
	"testing"

	"github.com/arloliu/squeeze/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(4)

	isNew, err := tracker.Track("apple", 0x1)
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = tracker.Track("banana", 0x2)
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = tracker.Track("apple", 0x1)
	require.NoError(t, err)
	require.False(t, isNew)

	require.Equal(t, 2, tracker.Count())

	term, ok := tracker.Term(0x2)
	require.True(t, ok)
	require.Equal(t, "banana", term)
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Track("apple", 0xABCD)
	require.NoError(t, err)

	isNew, err := tracker.Track("cherry", 0xABCD)
	require.ErrorIs(t, err, errs.ErrUnresolvedCollision)
	require.False(t, isNew)
	require.Equal(t, 1, tracker.Count())

	term, _ := tracker.Term(0xABCD)
	require.Equal(t, "apple", term, "the first owner keeps the id")
}

func TestTracker_EmptyTerm(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Track("", 0x1)
	require.ErrorIs(t, err, errs.ErrInvalidTerm)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(2)
	_, _ = tracker.Track("a", 1)
	_, _ = tracker.Track("b", 2)

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	_, ok := tracker.Term(1)
	require.False(t, ok)

	isNew, err := tracker.Track("c", 1)
	require.NoError(t, err)
	require.True(t, isNew)
}
