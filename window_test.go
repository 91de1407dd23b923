package nvimgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvimgo/nvimgo/types"
)

func TestWindowCursor(t *testing.T) {
	withMock(t)

	buf := GetCurrentBuf()
	require.NoError(t, buf.SetLines(0, -1, true, []string{"one", "two", "three"}))

	win := GetCurrentWin()
	require.NoError(t, win.SetCursor(2, 1))

	row, col, err := win.Cursor()
	require.NoError(t, err)
	assert.Equal(t, int64(2), row)
	assert.Equal(t, int64(1), col)
}

func TestWindowCursorOutOfBounds(t *testing.T) {
	withMock(t)

	win := GetCurrentWin()
	err := win.SetCursor(99, 0)
	var boundary *types.BoundaryError
	require.ErrorAs(t, err, &boundary)
	assert.Equal(t, types.ErrorTypeValidation, boundary.Type)
}

func TestWindowGeometry(t *testing.T) {
	withMock(t)

	win := GetCurrentWin()
	require.NoError(t, win.SetHeight(12))
	require.NoError(t, win.SetWidth(100))

	h, err := win.Height()
	require.NoError(t, err)
	assert.Equal(t, int64(12), h)

	w, err := win.Width()
	require.NoError(t, err)
	assert.Equal(t, int64(100), w)

	row, col, err := win.Position()
	require.NoError(t, err)
	assert.Zero(t, row)
	assert.Zero(t, col)
}

func TestOpenAndCloseWindow(t *testing.T) {
	withMock(t)

	buf, err := CreateBuf(false, true)
	require.NoError(t, err)

	win, err := OpenWin(buf, false, &WindowConfig{
		Relative: "editor",
		Row:      2,
		Col:      4,
		Width:    60,
		Height:   15,
	})
	require.NoError(t, err)

	shown, err := win.Buf()
	require.NoError(t, err)
	assert.Equal(t, buf, shown)

	h, err := win.Height()
	require.NoError(t, err)
	assert.Equal(t, int64(15), h)

	tab, err := win.Tabpage()
	require.NoError(t, err)
	assert.True(t, tab.IsValid())

	wins, err := tab.Wins()
	require.NoError(t, err)
	assert.Contains(t, wins, win)

	require.NoError(t, win.Close(true))
	wins, err = tab.Wins()
	require.NoError(t, err)
	assert.NotContains(t, wins, win)
}

func TestTabPage(t *testing.T) {
	withMock(t)

	win := GetCurrentWin()
	tab, err := win.Tabpage()
	require.NoError(t, err)

	n, err := tab.Number()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := tab.Win()
	require.NoError(t, err)
	assert.Equal(t, win, active)

	assert.False(t, TabPage(999).IsValid())
}

func TestCloseCurrentWindowFails(t *testing.T) {
	withMock(t)

	win := GetCurrentWin()
	err := win.Close(true)
	var boundary *types.BoundaryError
	require.ErrorAs(t, err, &boundary)
}
