// Package api defines the boundary between the typed wrapper functions and
// whatever actually executes editor operations: the host's C API reached
// over FFI when running embedded, a msgpack-RPC session when attached to a
// remote instance, or an in-process fake in tests.
//
// Every fallible operation follows the same convention: owned inputs are
// passed as non-owning borrows, a zeroed error record travels alongside the
// domain arguments, and the caller inspects the record before trusting the
// returned value. Hosts must not interpret or free borrowed inputs beyond
// the duration of the call.
package api

import "github.com/nvimgo/nvimgo/types"

type (
	str  = types.NonOwning[types.String]
	obj  = types.NonOwning[types.Object]
	arr  = types.NonOwning[types.Array]
	dict = types.NonOwning[types.Dictionary]
)

// Host is the boundary surface. Methods without an error record are
// either infallible on the host side or explicitly fire-and-forget
// (ErrWrite, ErrWriteln, OutWrite, Feedkeys).
//
// Returned Strings, Objects, Arrays and Dictionaries are owned by the
// caller. When the error record indicates failure the returned value is
// not meaningfully populated and must not be interpreted.
type Host interface {
	// Global.
	CreateBuf(listed, scratch bool, err *types.Error) types.BufHandle
	DelCurrentLine(err *types.Error)
	GetCurrentLine(err *types.Error) types.String
	SetCurrentLine(line str, err *types.Error)
	GetVar(name str, err *types.Error) types.Object
	SetVar(name str, value obj, err *types.Error)
	DelVar(name str, err *types.Error)
	GetCurrentBuf() types.BufHandle
	SetCurrentBuf(buf types.BufHandle, err *types.Error)
	GetCurrentWin() types.WinHandle
	ListBufs() types.Array
	DelMark(name str, err *types.Error) bool
	GetColorByName(name str) int64
	Strwidth(text str, err *types.Error) int64
	Echo(chunks arr, history bool, opts dict, err *types.Error)
	ErrWrite(s str)
	ErrWriteln(s str)
	OutWrite(s str)
	Feedkeys(keys, mode str, escapeKs bool)
	SetKeymap(mode, lhs, rhs str, opts dict, err *types.Error)
	DelKeymap(mode, lhs str, err *types.Error)
	GetOptionValue(name str, opts dict, err *types.Error) types.Object
	SetOptionValue(name str, value obj, opts dict, err *types.Error)
	SetHl(nsID int64, name str, val dict, err *types.Error)
	GetHlByName(name str, rgb bool, err *types.Error) types.Dictionary
	GetHlIDByName(name str) int64
	OpenWin(buf types.BufHandle, enter bool, config dict, err *types.Error) types.WinHandle

	// Vimscript.
	Command(cmd str, err *types.Error)
	Eval(expr str, err *types.Error) types.Object
	Exec(src str, output bool, err *types.Error) types.String
	CallFunction(fn str, args arr, err *types.Error) types.Object

	// Buffers.
	BufLineCount(buf types.BufHandle, err *types.Error) int64
	BufGetLines(buf types.BufHandle, start, end int64, strict bool, err *types.Error) types.Array
	BufSetLines(buf types.BufHandle, start, end int64, strict bool, repl arr, err *types.Error)
	BufGetName(buf types.BufHandle, err *types.Error) types.String
	BufSetName(buf types.BufHandle, name str, err *types.Error)
	BufGetVar(buf types.BufHandle, name str, err *types.Error) types.Object
	BufSetVar(buf types.BufHandle, name str, value obj, err *types.Error)
	BufDelVar(buf types.BufHandle, name str, err *types.Error)
	BufIsValid(buf types.BufHandle) bool
	BufIsLoaded(buf types.BufHandle) bool
	BufDelete(buf types.BufHandle, opts dict, err *types.Error)
	BufSetMark(buf types.BufHandle, name str, line, col int64, opts dict, err *types.Error) bool
	BufGetMark(buf types.BufHandle, name str, err *types.Error) types.Array
	BufDelMark(buf types.BufHandle, name str, err *types.Error) bool

	// Windows.
	WinGetCursor(win types.WinHandle, err *types.Error) types.Array
	WinSetCursor(win types.WinHandle, pos arr, err *types.Error)
	WinGetHeight(win types.WinHandle, err *types.Error) int64
	WinSetHeight(win types.WinHandle, height int64, err *types.Error)
	WinGetWidth(win types.WinHandle, err *types.Error) int64
	WinSetWidth(win types.WinHandle, width int64, err *types.Error)
	WinGetBuf(win types.WinHandle, err *types.Error) types.BufHandle
	WinGetPosition(win types.WinHandle, err *types.Error) types.Array
	WinGetTabpage(win types.WinHandle, err *types.Error) types.TabHandle
	WinClose(win types.WinHandle, force bool, err *types.Error)

	// Tabpages.
	TabListWins(tab types.TabHandle, err *types.Error) types.Array
	TabGetWin(tab types.TabHandle, err *types.Error) types.WinHandle
	TabGetNumber(tab types.TabHandle, err *types.Error) int64
	TabIsValid(tab types.TabHandle) bool
}

// currentHost should be initialized with an EmbeddedHost, a RemoteHost or
// a MockHost before the first wrapper call. The default MockHost keeps the
// package usable in tests without further setup.
var currentHost Host = NewMockHost()

// SetHost installs h and returns the previously installed host.
func SetHost(h Host) Host {
	prev := currentHost
	currentHost = h
	return prev
}

// Current returns the installed host.
func Current() Host {
	return currentHost
}
