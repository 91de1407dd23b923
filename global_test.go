package nvimgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvimgo/nvimgo/types"
)

func TestSetGetDelVar(t *testing.T) {
	withMock(t)

	require.NoError(t, SetVar("greeting", "hello"))

	got, err := GetVar("greeting")
	require.NoError(t, err)
	s, cerr := got.BorrowString()
	require.NoError(t, cerr)
	assert.Equal(t, "hello", s.Value().String())
	got.Free()

	require.NoError(t, DelVar("greeting"))
	_, err = GetVar("greeting")
	assert.Error(t, err)
}

func TestSetVarContainers(t *testing.T) {
	withMock(t)

	require.NoError(t, SetVar("list", []string{"a", "b"}))

	got, err := GetVar("list")
	require.NoError(t, err)
	defer got.Free()
	arr, cerr := got.BorrowArray()
	require.NoError(t, cerr)
	ss, cerr := arr.Value().Strings()
	require.NoError(t, cerr)
	assert.Equal(t, []string{"a", "b"}, ss)
}

func TestSetVarCallerKeepsObject(t *testing.T) {
	withMock(t)
	counting := types.NewCountingAllocator(nil)
	prev := types.SetAllocator(counting)
	defer types.SetAllocator(prev)

	// SetVar takes its own copy, so the caller's Object stays valid and
	// freeing it afterwards releases it exactly once.
	obj := types.Str("hello")
	require.NoError(t, SetVar("k", obj))

	s, cerr := obj.BorrowString()
	require.NoError(t, cerr)
	assert.Equal(t, "hello", s.Value().String())
	obj.Free()

	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestSetVarUnsupportedType(t *testing.T) {
	withMock(t)

	err := SetVar("oops", make(chan int))
	var unsupported *types.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestCurrentBufAndWin(t *testing.T) {
	withMock(t)

	initial := GetCurrentBuf()
	assert.True(t, initial.IsValid())

	buf, err := CreateBuf(true, false)
	require.NoError(t, err)
	require.NoError(t, SetCurrentBuf(buf))
	assert.Equal(t, buf, GetCurrentBuf())

	win := GetCurrentWin()
	shown, err := win.Buf()
	require.NoError(t, err)
	assert.Equal(t, buf, shown)
}

func TestListBufs(t *testing.T) {
	withMock(t)

	first := GetCurrentBuf()
	second, err := CreateBuf(true, false)
	require.NoError(t, err)

	assert.Equal(t, []Buffer{first, second}, ListBufs())
}

func TestCurrentLine(t *testing.T) {
	withMock(t)

	require.NoError(t, SetCurrentLine("hello there"))
	line, err := GetCurrentLine()
	require.NoError(t, err)
	assert.Equal(t, "hello there", line)

	require.NoError(t, DelCurrentLine())
	line, err = GetCurrentLine()
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestGetColorByName(t *testing.T) {
	withMock(t)

	c, err := GetColorByName("Red")
	require.NoError(t, err)
	assert.Equal(t, int64(0xff0000), c)

	_, err = GetColorByName("DefinitelyNotAColor")
	var domain *types.DomainError
	require.ErrorAs(t, err, &domain)
}

func TestDelMarkUnknown(t *testing.T) {
	withMock(t)

	err := DelMark("Z")
	var domain *types.DomainError
	require.ErrorAs(t, err, &domain)
}

func TestStrwidth(t *testing.T) {
	withMock(t)

	w, err := Strwidth("hello")
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)
}

func TestEchoAndWrites(t *testing.T) {
	m := withMock(t)

	require.NoError(t, Echo([]EchoChunk{
		{Text: "loaded "},
		{Text: "ok", HlGroup: types.NewOptionalStringSet("MoreMsg")},
	}, false))

	OutWrite("done\n")
	ErrWriteln("that failed")

	assert.Equal(t, []string{"loaded ok", "done\n"}, m.Messages)
	assert.Equal(t, []string{"that failed\n"}, m.ErrMessages)
}

func TestFeedkeys(t *testing.T) {
	m := withMock(t)

	Feedkeys("gg", "n", true)
	assert.Equal(t, []string{"gg"}, m.TypedKeys)
}

func TestKeymaps(t *testing.T) {
	withMock(t)

	opts := &SetKeymapOpts{
		Noremap: true,
		Silent:  true,
		Desc:    types.NewOptionalStringSet("go to definition"),
	}
	require.NoError(t, SetKeymap("n", "gd", "<cmd>lua vim.lsp.buf.definition()<cr>", opts))
	require.NoError(t, DelKeymap("n", "gd"))

	err := DelKeymap("n", "gd")
	var boundary *types.BoundaryError
	require.ErrorAs(t, err, &boundary)
}

func TestOptionValues(t *testing.T) {
	withMock(t)

	got, err := GetOptionValue("shiftwidth", nil)
	require.NoError(t, err)
	i, cerr := got.AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(8), i)

	require.NoError(t, SetOptionValue("shiftwidth", 4, nil))
	got, err = GetOptionValue("shiftwidth", nil)
	require.NoError(t, err)
	i, cerr = got.AsInteger()
	require.NoError(t, cerr)
	assert.Equal(t, int64(4), i)

	_, err = GetOptionValue("no_such_option", nil)
	assert.Error(t, err)
}
