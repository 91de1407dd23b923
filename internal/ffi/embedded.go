//go:build darwin || linux

package ffi

import (
	"github.com/nvimgo/nvimgo/types"
)

// EmbeddedHost calls the editor's C API directly through resolved symbols.
// It only works when the process shares an address space with the host,
// i.e. the Go code was loaded as a plugin.
//
// The host allocates and frees payloads with malloc/free, so an
// EmbeddedHost requires the libc allocator to be installed via
// types.SetAllocator before any call. NewEmbeddedHost does that.
//
// Argument handling follows the host's borrowing rules: string, array,
// dictionary and object arguments are materialized as native values,
// lent to the call, and released by the caller afterwards. Returned
// containers are owned by the caller and are decoded with the
// copy-and-destroy helpers. When a call fails, the returned payload is
// discarded without being decoded or freed.
type EmbeddedHost struct {
	fns *symbols
}

// NewEmbeddedHost resolves the host symbols in the current process and
// installs the libc allocator.
func NewEmbeddedHost() (*EmbeddedHost, error) {
	fns, err := loadSymbols()
	if err != nil {
		return nil, err
	}
	alloc, err := NewLibcAllocator()
	if err != nil {
		return nil, err
	}
	types.SetAllocator(alloc)
	return &EmbeddedHost{fns: fns}, nil
}

// NewEmbeddedHostFrom is NewEmbeddedHost against a dlopen'd library
// instead of the current process.
func NewEmbeddedHostFrom(path string) (*EmbeddedHost, error) {
	fns, err := loadSymbolsFrom(path)
	if err != nil {
		return nil, err
	}
	alloc, err := NewLibcAllocator()
	if err != nil {
		return nil, err
	}
	types.SetAllocator(alloc)
	return &EmbeddedHost{fns: fns}, nil
}

type (
	str  = types.NonOwning[types.String]
	obj  = types.NonOwning[types.Object]
	arr  = types.NonOwning[types.Array]
	dict = types.NonOwning[types.Dictionary]
)

// Global operations.

func (h *EmbeddedHost) CreateBuf(listed, scratch bool, err *types.Error) types.BufHandle {
	cerr := NewCError()
	handle := h.fns.createBuf(listed, scratch, &cerr)
	StoreCError(&cerr, err)
	return types.BufHandle(handle)
}

func (h *EmbeddedHost) DelCurrentLine(err *types.Error) {
	cerr := NewCError()
	h.fns.delCurrentLine(&cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetCurrentLine(err *types.Error) types.String {
	cerr := NewCError()
	cs := h.fns.getCurrentLine(&cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.String{}
	}
	return CopyAndDestroyCString(cs)
}

func (h *EmbeddedHost) SetCurrentLine(line str, err *types.Error) {
	cerr := NewCError()
	h.fns.setCurrentLine(BorrowCString(line.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetVar(name str, err *types.Error) types.Object {
	cerr := NewCError()
	co := h.fns.getVar(BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Nil()
	}
	return CopyAndDestroyCObject(co)
}

func (h *EmbeddedHost) SetVar(name str, value obj, err *types.Error) {
	cerr := NewCError()
	cv := CopyCObject(value.Value())
	h.fns.setVar(BorrowCString(name.Value()), cv, &cerr)
	FreeCObject(cv)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) DelVar(name str, err *types.Error) {
	cerr := NewCError()
	h.fns.delVar(BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetCurrentBuf() types.BufHandle {
	return types.BufHandle(h.fns.getCurrentBuf())
}

func (h *EmbeddedHost) SetCurrentBuf(buf types.BufHandle, err *types.Error) {
	cerr := NewCError()
	h.fns.setCurrentBuf(int32(buf), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetCurrentWin() types.WinHandle {
	return types.WinHandle(h.fns.getCurrentWin())
}

func (h *EmbeddedHost) ListBufs() types.Array {
	return CopyAndDestroyCArray(h.fns.listBufs())
}

func (h *EmbeddedHost) DelMark(name str, err *types.Error) bool {
	cerr := NewCError()
	ok := h.fns.delMark(BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
	return ok && !err.IsErr()
}

func (h *EmbeddedHost) GetColorByName(name str) int64 {
	return h.fns.getColorByName(BorrowCString(name.Value()))
}

func (h *EmbeddedHost) Strwidth(text str, err *types.Error) int64 {
	cerr := NewCError()
	w := h.fns.strwidth(BorrowCString(text.Value()), &cerr)
	StoreCError(&cerr, err)
	return w
}

func (h *EmbeddedHost) Echo(chunks arr, history bool, opts dict, err *types.Error) {
	cerr := NewCError()
	cc := CopyCArray(chunks.Value())
	co := CopyCDictionary(opts.Value())
	h.fns.echo(cc, history, co, &cerr)
	FreeCArray(cc)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) ErrWrite(s str)   { h.fns.errWrite(BorrowCString(s.Value())) }
func (h *EmbeddedHost) ErrWriteln(s str) { h.fns.errWriteln(BorrowCString(s.Value())) }
func (h *EmbeddedHost) OutWrite(s str)   { h.fns.outWrite(BorrowCString(s.Value())) }

func (h *EmbeddedHost) Feedkeys(keys, mode str, escapeKs bool) {
	h.fns.feedkeys(BorrowCString(keys.Value()), BorrowCString(mode.Value()), escapeKs)
}

func (h *EmbeddedHost) SetKeymap(mode, lhs, rhs str, opts dict, err *types.Error) {
	cerr := NewCError()
	co := CopyCDictionary(opts.Value())
	h.fns.setKeymap(BorrowCString(mode.Value()), BorrowCString(lhs.Value()), BorrowCString(rhs.Value()), co, &cerr)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) DelKeymap(mode, lhs str, err *types.Error) {
	cerr := NewCError()
	h.fns.delKeymap(BorrowCString(mode.Value()), BorrowCString(lhs.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetOptionValue(name str, opts dict, err *types.Error) types.Object {
	cerr := NewCError()
	co := CopyCDictionary(opts.Value())
	cv := h.fns.getOptionValue(BorrowCString(name.Value()), co, &cerr)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Nil()
	}
	return CopyAndDestroyCObject(cv)
}

func (h *EmbeddedHost) SetOptionValue(name str, value obj, opts dict, err *types.Error) {
	cerr := NewCError()
	cv := CopyCObject(value.Value())
	co := CopyCDictionary(opts.Value())
	h.fns.setOptionValue(BorrowCString(name.Value()), cv, co, &cerr)
	FreeCObject(cv)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) SetHl(nsID int64, name str, val dict, err *types.Error) {
	cerr := NewCError()
	cv := CopyCDictionary(val.Value())
	h.fns.setHl(nsID, BorrowCString(name.Value()), cv, &cerr)
	FreeCDictionary(cv)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) GetHlByName(name str, rgb bool, err *types.Error) types.Dictionary {
	cerr := NewCError()
	cd := h.fns.getHlByName(BorrowCString(name.Value()), rgb, &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Dictionary{}
	}
	return CopyAndDestroyCDictionary(cd)
}

func (h *EmbeddedHost) GetHlIDByName(name str) int64 {
	return h.fns.getHlIDByName(BorrowCString(name.Value()))
}

func (h *EmbeddedHost) OpenWin(buf types.BufHandle, enter bool, config dict, err *types.Error) types.WinHandle {
	cerr := NewCError()
	cc := CopyCDictionary(config.Value())
	win := h.fns.openWin(int32(buf), enter, cc, &cerr)
	FreeCDictionary(cc)
	StoreCError(&cerr, err)
	return types.WinHandle(win)
}

// Vimscript operations.

func (h *EmbeddedHost) Command(cmd str, err *types.Error) {
	cerr := NewCError()
	h.fns.command(BorrowCString(cmd.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) Eval(expr str, err *types.Error) types.Object {
	cerr := NewCError()
	co := h.fns.eval(BorrowCString(expr.Value()), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Nil()
	}
	return CopyAndDestroyCObject(co)
}

func (h *EmbeddedHost) Exec(src str, output bool, err *types.Error) types.String {
	cerr := NewCError()
	cs := h.fns.exec(BorrowCString(src.Value()), output, &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.String{}
	}
	return CopyAndDestroyCString(cs)
}

func (h *EmbeddedHost) CallFunction(fn str, args arr, err *types.Error) types.Object {
	cerr := NewCError()
	ca := CopyCArray(args.Value())
	co := h.fns.callFunction(BorrowCString(fn.Value()), ca, &cerr)
	FreeCArray(ca)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Nil()
	}
	return CopyAndDestroyCObject(co)
}

// Buffer operations.

func (h *EmbeddedHost) BufLineCount(buf types.BufHandle, err *types.Error) int64 {
	cerr := NewCError()
	n := h.fns.bufLineCount(int32(buf), &cerr)
	StoreCError(&cerr, err)
	return n
}

func (h *EmbeddedHost) BufGetLines(buf types.BufHandle, start, end int64, strict bool, err *types.Error) types.Array {
	cerr := NewCError()
	ca := h.fns.bufGetLines(int32(buf), start, end, strict, &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Array{}
	}
	return CopyAndDestroyCArray(ca)
}

func (h *EmbeddedHost) BufSetLines(buf types.BufHandle, start, end int64, strict bool, repl arr, err *types.Error) {
	cerr := NewCError()
	ca := CopyCArray(repl.Value())
	h.fns.bufSetLines(int32(buf), start, end, strict, ca, &cerr)
	FreeCArray(ca)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) BufGetName(buf types.BufHandle, err *types.Error) types.String {
	cerr := NewCError()
	cs := h.fns.bufGetName(int32(buf), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.String{}
	}
	return CopyAndDestroyCString(cs)
}

func (h *EmbeddedHost) BufSetName(buf types.BufHandle, name str, err *types.Error) {
	cerr := NewCError()
	h.fns.bufSetName(int32(buf), BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) BufGetVar(buf types.BufHandle, name str, err *types.Error) types.Object {
	cerr := NewCError()
	co := h.fns.bufGetVar(int32(buf), BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Nil()
	}
	return CopyAndDestroyCObject(co)
}

func (h *EmbeddedHost) BufSetVar(buf types.BufHandle, name str, value obj, err *types.Error) {
	cerr := NewCError()
	cv := CopyCObject(value.Value())
	h.fns.bufSetVar(int32(buf), BorrowCString(name.Value()), cv, &cerr)
	FreeCObject(cv)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) BufDelVar(buf types.BufHandle, name str, err *types.Error) {
	cerr := NewCError()
	h.fns.bufDelVar(int32(buf), BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) BufIsValid(buf types.BufHandle) bool {
	return h.fns.bufIsValid(int32(buf))
}

func (h *EmbeddedHost) BufIsLoaded(buf types.BufHandle) bool {
	return h.fns.bufIsLoaded(int32(buf))
}

func (h *EmbeddedHost) BufDelete(buf types.BufHandle, opts dict, err *types.Error) {
	cerr := NewCError()
	co := CopyCDictionary(opts.Value())
	h.fns.bufDelete(int32(buf), co, &cerr)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) BufSetMark(buf types.BufHandle, name str, line, col int64, opts dict, err *types.Error) bool {
	cerr := NewCError()
	co := CopyCDictionary(opts.Value())
	ok := h.fns.bufSetMark(int32(buf), BorrowCString(name.Value()), line, col, co, &cerr)
	FreeCDictionary(co)
	StoreCError(&cerr, err)
	return ok && !err.IsErr()
}

func (h *EmbeddedHost) BufGetMark(buf types.BufHandle, name str, err *types.Error) types.Array {
	cerr := NewCError()
	ca := h.fns.bufGetMark(int32(buf), BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Array{}
	}
	return CopyAndDestroyCArray(ca)
}

func (h *EmbeddedHost) BufDelMark(buf types.BufHandle, name str, err *types.Error) bool {
	cerr := NewCError()
	ok := h.fns.bufDelMark(int32(buf), BorrowCString(name.Value()), &cerr)
	StoreCError(&cerr, err)
	return ok && !err.IsErr()
}

// Window operations.

func (h *EmbeddedHost) WinGetCursor(win types.WinHandle, err *types.Error) types.Array {
	cerr := NewCError()
	ca := h.fns.winGetCursor(int32(win), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Array{}
	}
	return CopyAndDestroyCArray(ca)
}

func (h *EmbeddedHost) WinSetCursor(win types.WinHandle, pos arr, err *types.Error) {
	cerr := NewCError()
	ca := CopyCArray(pos.Value())
	h.fns.winSetCursor(int32(win), ca, &cerr)
	FreeCArray(ca)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) WinGetHeight(win types.WinHandle, err *types.Error) int64 {
	cerr := NewCError()
	v := h.fns.winGetHeight(int32(win), &cerr)
	StoreCError(&cerr, err)
	return v
}

func (h *EmbeddedHost) WinSetHeight(win types.WinHandle, height int64, err *types.Error) {
	cerr := NewCError()
	h.fns.winSetHeight(int32(win), height, &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) WinGetWidth(win types.WinHandle, err *types.Error) int64 {
	cerr := NewCError()
	v := h.fns.winGetWidth(int32(win), &cerr)
	StoreCError(&cerr, err)
	return v
}

func (h *EmbeddedHost) WinSetWidth(win types.WinHandle, width int64, err *types.Error) {
	cerr := NewCError()
	h.fns.winSetWidth(int32(win), width, &cerr)
	StoreCError(&cerr, err)
}

func (h *EmbeddedHost) WinGetBuf(win types.WinHandle, err *types.Error) types.BufHandle {
	cerr := NewCError()
	buf := h.fns.winGetBuf(int32(win), &cerr)
	StoreCError(&cerr, err)
	return types.BufHandle(buf)
}

func (h *EmbeddedHost) WinGetPosition(win types.WinHandle, err *types.Error) types.Array {
	cerr := NewCError()
	ca := h.fns.winGetPosition(int32(win), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Array{}
	}
	return CopyAndDestroyCArray(ca)
}

func (h *EmbeddedHost) WinGetTabpage(win types.WinHandle, err *types.Error) types.TabHandle {
	cerr := NewCError()
	tab := h.fns.winGetTabpage(int32(win), &cerr)
	StoreCError(&cerr, err)
	return types.TabHandle(tab)
}

func (h *EmbeddedHost) WinClose(win types.WinHandle, force bool, err *types.Error) {
	cerr := NewCError()
	h.fns.winClose(int32(win), force, &cerr)
	StoreCError(&cerr, err)
}

// Tabpage operations.

func (h *EmbeddedHost) TabListWins(tab types.TabHandle, err *types.Error) types.Array {
	cerr := NewCError()
	ca := h.fns.tabListWins(int32(tab), &cerr)
	StoreCError(&cerr, err)
	if err.IsErr() {
		return types.Array{}
	}
	return CopyAndDestroyCArray(ca)
}

func (h *EmbeddedHost) TabGetWin(tab types.TabHandle, err *types.Error) types.WinHandle {
	cerr := NewCError()
	win := h.fns.tabGetWin(int32(tab), &cerr)
	StoreCError(&cerr, err)
	return types.WinHandle(win)
}

func (h *EmbeddedHost) TabGetNumber(tab types.TabHandle, err *types.Error) int64 {
	cerr := NewCError()
	n := h.fns.tabGetNumber(int32(tab), &cerr)
	StoreCError(&cerr, err)
	return n
}

func (h *EmbeddedHost) TabIsValid(tab types.TabHandle) bool {
	return h.fns.tabIsValid(int32(tab))
}
