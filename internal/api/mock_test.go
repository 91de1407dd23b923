package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvimgo/nvimgo/types"
)

// borrow hands a string to a host call the way the wrappers do: the
// owner is freed when the test ends.
func borrow(t *testing.T, s string) str {
	t.Helper()
	owned := types.NewString(s)
	t.Cleanup(owned.Free)
	return owned.NonOwning()
}

func TestMockCreateBufListed(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	buf := m.CreateBuf(true, false, &err)
	require.False(t, err.IsErr())
	assert.True(t, m.BufIsValid(buf))
	assert.True(t, m.BufIsLoaded(buf))

	bufs := m.ListBufs()
	defer bufs.Free()
	assert.Equal(t, 2, bufs.Len()) // initial buffer plus the new one
}

func TestMockBufLines(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	buf := m.CreateBuf(true, false, &err)

	repl := types.ArrayFromStrings([]string{"hello", "world"})
	defer repl.Free()
	m.BufSetLines(buf, 0, -1, true, repl.NonOwning(), &err)
	require.False(t, err.IsErr())

	assert.Equal(t, int64(2), m.BufLineCount(buf, &err))

	lines := m.BufGetLines(buf, 0, -1, true, &err)
	defer lines.Free()
	require.False(t, err.IsErr())
	got, cerr := lines.Strings()
	require.NoError(t, cerr)
	assert.Equal(t, []string{"hello", "world"}, got)
}

func TestMockBufLinesStrictOutOfBounds(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	buf := m.CreateBuf(true, false, &err)

	out := m.BufGetLines(buf, 0, 10, true, &err)
	out.Free()
	require.True(t, err.IsErr())
	assert.Equal(t, types.ErrorTypeValidation, err.Type())
}

func TestMockVars(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	value := types.Integer(42)
	m.SetVar(borrow(t, "answer"), value.NonOwning(), &err)
	require.False(t, err.IsErr())

	got := m.GetVar(borrow(t, "answer"), &err)
	require.False(t, err.IsErr())
	i, cerr := got.AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(42), i)

	m.DelVar(borrow(t, "answer"), &err)
	require.False(t, err.IsErr())

	m.DelVar(borrow(t, "answer"), &err)
	require.True(t, err.IsErr())
	var boundary *types.BoundaryError
	require.ErrorAs(t, err.Take(), &boundary)
	assert.Equal(t, types.ErrorTypeValidation, boundary.Type)
}

func TestMockFailureInjection(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	m.FailNext("E5108: injected")
	got := m.GetVar(borrow(t, "whatever"), &err)
	got.Free()
	require.True(t, err.IsErr())
	assert.Contains(t, err.Take().Error(), "E5108: injected")

	// The failure is consumed, the next call succeeds.
	value := types.Boolean(true)
	m.SetVar(borrow(t, "whatever"), value.NonOwning(), &err)
	assert.False(t, err.IsErr())
}

func TestMockInvalidBuffer(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	m.BufSetName(999, borrow(t, "nope"), &err)
	require.True(t, err.IsErr())
	assert.Equal(t, types.ErrorTypeException, err.Type())
	err.Free()
}

func TestMockCursorBounds(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	win := m.GetCurrentWin()

	pos := types.NewArray(types.Integer(50), types.Integer(0))
	defer pos.Free()
	m.WinSetCursor(win, pos.NonOwning(), &err)
	require.True(t, err.IsErr())
	assert.Equal(t, types.ErrorTypeValidation, err.Type())
	err.Free()
}

func TestMockEditUnderCursorClampsIt(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	buf := m.GetCurrentBuf()
	win := m.GetCurrentWin()

	repl := types.ArrayFromStrings([]string{"one", "two", "three"})
	defer repl.Free()
	m.BufSetLines(buf, 0, -1, true, repl.NonOwning(), &err)
	require.False(t, err.IsErr())

	pos := types.NewArray(types.Integer(3), types.Integer(0))
	defer pos.Free()
	m.WinSetCursor(win, pos.NonOwning(), &err)
	require.False(t, err.IsErr())

	// Shrinking the buffer pulls the cursor back inside it, like the
	// editor does, so the current-line accessors stay in range.
	shrunk := types.ArrayFromStrings([]string{"only"})
	defer shrunk.Free()
	m.BufSetLines(buf, 0, -1, true, shrunk.NonOwning(), &err)
	require.False(t, err.IsErr())

	got := m.WinGetCursor(win, &err)
	require.False(t, err.IsErr())
	row, cerr := got.At(0).AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(1), row)
	got.Free()

	line := m.GetCurrentLine(&err)
	require.False(t, err.IsErr())
	assert.Equal(t, "only", line.String())
	line.Free()
	err.Free()
}

func TestMockOptions(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	opts := types.NewDictionary()

	got := m.GetOptionValue(borrow(t, "shiftwidth"), opts.NonOwning(), &err)
	require.False(t, err.IsErr())
	i, cerr := got.AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(8), i)

	garbage := m.GetOptionValue(borrow(t, "no_such_option"), opts.NonOwning(), &err)
	garbage.Free()
	assert.True(t, err.IsErr())
	err.Free()
}

func TestMockMarks(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	buf := m.GetCurrentBuf()
	opts := types.NewDictionary()

	ok := m.BufSetMark(buf, borrow(t, "a"), 1, 0, opts.NonOwning(), &err)
	require.False(t, err.IsErr())
	assert.True(t, ok)

	mark := m.BufGetMark(buf, borrow(t, "a"), &err)
	defer mark.Free()
	require.False(t, err.IsErr())
	row, _ := mark.At(0).AsInteger()
	assert.Equal(t, int64(1), row)

	assert.True(t, m.BufDelMark(buf, borrow(t, "a"), &err))
	assert.False(t, m.BufDelMark(buf, borrow(t, "a"), &err))
	assert.False(t, err.IsErr())
}

func TestMockEvalStub(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	m.StubEval("1+1", types.Integer(2))
	got := m.Eval(borrow(t, "1+1"), &err)
	require.False(t, err.IsErr())
	i, cerr := got.AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(2), i)

	bad := m.Eval(borrow(t, "bogus("), &err)
	bad.Free()
	require.True(t, err.IsErr())
	assert.Contains(t, err.Take().Error(), "E15")
}

func TestMockFireAndForget(t *testing.T) {
	m := NewMockHost()

	m.OutWrite(borrow(t, "hello"))
	m.ErrWriteln(borrow(t, "bad"))
	m.Feedkeys(borrow(t, "gg"), borrow(t, "n"), true)

	assert.Equal(t, []string{"hello"}, m.Messages)
	assert.Equal(t, []string{"bad\n"}, m.ErrMessages)
	assert.Equal(t, []string{"gg"}, m.TypedKeys)
}

func TestMockWindowsAndTabs(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()

	buf := m.CreateBuf(true, false, &err)
	config := types.NewDictionary()
	config.Set("height", types.Integer(5))
	defer config.Free()

	win := m.OpenWin(buf, false, config.NonOwning(), &err)
	require.False(t, err.IsErr())
	assert.Equal(t, int64(5), m.WinGetHeight(win, &err))
	assert.Equal(t, buf, m.WinGetBuf(win, &err))

	tab := m.WinGetTabpage(win, &err)
	assert.True(t, m.TabIsValid(tab))

	wins := m.TabListWins(tab, &err)
	defer wins.Free()
	assert.Equal(t, 2, wins.Len())

	m.WinClose(win, true, &err)
	require.False(t, err.IsErr())
	left := m.TabListWins(tab, &err)
	defer left.Free()
	assert.Equal(t, 1, left.Len())
}

func TestSetHostSwap(t *testing.T) {
	replacement := NewMockHost()
	prev := SetHost(replacement)
	defer SetHost(prev)

	assert.Same(t, replacement, Current())
}

func TestMockKeymaps(t *testing.T) {
	m := NewMockHost()
	err := types.NewError()
	opts := types.NewDictionary()

	m.SetKeymap(borrow(t, "n"), borrow(t, "gd"), borrow(t, "<cmd>def<cr>"), opts.NonOwning(), &err)
	require.False(t, err.IsErr())

	m.DelKeymap(borrow(t, "n"), borrow(t, "gd"), &err)
	require.False(t, err.IsErr())

	m.DelKeymap(borrow(t, "n"), borrow(t, "gd"), &err)
	require.True(t, err.IsErr())
	terr := err.Take()
	require.True(t, errors.As(terr, new(*types.BoundaryError)))
	assert.Contains(t, terr.Error(), "E31")
}
