package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ValidColumns(t *testing.T) {
	b := NewBoard(2, 3)
	assert.Equal(t, []int{0, 1, 2}, b.ValidColumns())

	_, err := b.DropDisk(1, Player1)
	require.NoError(t, err)
	_, err = b.DropDisk(1, Player2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, b.ValidColumns())
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	b := NewBoard(3, 3)
	_, err := b.DropDisk(0, Player1)
	require.NoError(t, err)

	c := b.Copy()
	_, err = c.DropDisk(0, Player2)
	require.NoError(t, err)

	assert.Equal(t, 1, b.Occupied())
	assert.Equal(t, 2, c.Occupied())
}

func TestBoard_Snapshot(t *testing.T) {
	b := NewBoard(2, 3)
	_, _ = b.DropDisk(0, Player1)
	_, _ = b.DropDisk(2, Player2)
	_, _ = b.DropDisk(2, Player1)

	want := [][]int{
		{0, 0, 1},
		{1, 0, 2},
	}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoard_HasWinIgnoresOutOfBoundsLines(t *testing.T) {
	b := NewBoard(4, 3)
	// three in the bottom row is the widest a 3-column board allows
	for col := 0; col < 3; col++ {
		_, err := b.DropDisk(col, Player1)
		require.NoError(t, err)
	}
	assert.False(t, b.HasWin(Player1))
	assert.False(t, b.HasWin(Empty))
}

func TestBoard_NegativeDimensions(t *testing.T) {
	b := NewBoard(-1, -5)
	assert.Zero(t, b.Rows())
	assert.Zero(t, b.Columns())
	assert.True(t, b.IsFull())

	_, err := b.DropRow(0)
	assert.ErrorIs(t, err, ErrInvalidColumn)
}
