package api

import (
	"fmt"
	"unicode/utf8"

	"github.com/nvimgo/nvimgo/internal/api/testdb"
	"github.com/nvimgo/nvimgo/types"
)

// MockHost is an in-process fake editor implementing Host. It keeps enough
// state (buffers with lines, variables, options, marks, keymaps, highlight
// groups) for the wrapper tests to exercise real sequences of calls, and it
// supports failure injection so the error-channel path can be tested
// without a real host.
//
// Like the real host it is single-threaded from this layer's perspective;
// it performs no locking of its own. Borrowed inputs are copied, never
// retained or freed.
type MockHost struct {
	nextBuf types.BufHandle
	nextWin types.WinHandle
	nextTab types.TabHandle

	bufs map[types.BufHandle]*mockBuffer
	wins map[types.WinHandle]*mockWindow
	tabs map[types.TabHandle]*mockTab

	curBuf types.BufHandle
	curWin types.WinHandle

	globals *testdb.Store
	options *testdb.Store
	hl      *testdb.Store
	hlIDs   map[string]int64
	nextHl  int64
	keymaps map[string]string
	marks   map[string]mockMark
	colors  map[string]int64

	evalStubs map[string]types.Object
	fnStubs   map[string]types.Object

	// Captured side effects, inspectable by tests.
	Commands    []string
	Messages    []string
	ErrMessages []string
	TypedKeys   []string

	pendingFail *pendingFailure
}

type mockBuffer struct {
	name    string
	lines   []string
	vars    *testdb.Store
	marks   map[string]mockMark
	listed  bool
	scratch bool
	loaded  bool
}

type mockWindow struct {
	buf    types.BufHandle
	tab    types.TabHandle
	cursor [2]int64 // (1,0)-indexed row, col
	height int64
	width  int64
	pos    [2]int64
}

type mockTab struct {
	wins []types.WinHandle
}

type mockMark struct {
	buf  types.BufHandle
	line int64
	col  int64
}

type pendingFailure struct {
	typ types.ErrorType
	msg string
}

var _ Host = (*MockHost)(nil)

// NewMockHost returns a fake editor with one listed buffer, one window and
// one tabpage, mirroring a freshly started host.
func NewMockHost() *MockHost {
	m := &MockHost{
		nextBuf: 1,
		nextWin: 1000,
		nextTab: 1,
		bufs:    make(map[types.BufHandle]*mockBuffer),
		wins:    make(map[types.WinHandle]*mockWindow),
		tabs:    make(map[types.TabHandle]*mockTab),
		globals: testdb.NewStore(),
		options: testdb.NewStore(),
		hl:      testdb.NewStore(),
		hlIDs:   make(map[string]int64),
		nextHl:  1,
		keymaps: make(map[string]string),
		marks:   make(map[string]mockMark),
		colors: map[string]int64{
			"Black": 0x000000,
			"Red":   0xff0000,
			"Green": 0x00ff00,
			"Blue":  0x0000ff,
			"White": 0xffffff,
		},
		evalStubs: make(map[string]types.Object),
		fnStubs:   make(map[string]types.Object),
	}
	m.options.Set("shiftwidth", types.Integer(8))
	m.options.Set("expandtab", types.Boolean(false))
	m.options.Set("filetype", types.Str(""))

	buf := m.newBuffer(true, false)
	tab := m.nextTab
	m.nextTab++
	win := m.nextWin
	m.nextWin++
	m.tabs[tab] = &mockTab{wins: []types.WinHandle{win}}
	m.wins[win] = &mockWindow{buf: buf, tab: tab, cursor: [2]int64{1, 0}, height: 24, width: 80}
	m.curBuf = buf
	m.curWin = win
	return m
}

func (m *MockHost) newBuffer(listed, scratch bool) types.BufHandle {
	h := m.nextBuf
	m.nextBuf++
	m.bufs[h] = &mockBuffer{
		lines:   []string{""},
		vars:    testdb.NewStore(),
		marks:   make(map[string]mockMark),
		listed:  listed,
		scratch: scratch,
		loaded:  true,
	}
	return h
}

// FailNext arranges for the next fallible call to end with an exception
// record carrying msg. The call's returned payload is garbage, as on the
// real host.
func (m *MockHost) FailNext(msg string) {
	m.pendingFail = &pendingFailure{typ: types.ErrorTypeException, msg: msg}
}

// FailNextValidation is FailNext with a validation-typed record.
func (m *MockHost) FailNextValidation(msg string) {
	m.pendingFail = &pendingFailure{typ: types.ErrorTypeValidation, msg: msg}
}

// StubEval makes Eval return a clone of result for the given expression.
func (m *MockHost) StubEval(expr string, result types.Object) {
	m.evalStubs[expr] = result
}

// StubFunction makes CallFunction return a clone of result for the given
// function name.
func (m *MockHost) StubFunction(name string, result types.Object) {
	m.fnStubs[name] = result
}

// GlobalVars exposes the global variable store for test assertions.
func (m *MockHost) GlobalVars() *testdb.Store { return m.globals }

// failed consumes a pending injected failure, writing it into err. The
// caller returns garbage when it reports true.
func (m *MockHost) failed(err *types.Error) bool {
	if m.pendingFail == nil {
		return false
	}
	f := m.pendingFail
	m.pendingFail = nil
	if f.typ == types.ErrorTypeValidation {
		err.SetValidation(f.msg)
	} else {
		err.SetException(f.msg)
	}
	return true
}

// garbageObject is what failed calls return: a value that would decode
// fine if a buggy wrapper interpreted it anyway, which the tests catch.
func garbageObject() types.Object { return types.Integer(-0xdead) }

func (m *MockHost) buffer(h types.BufHandle, err *types.Error) *mockBuffer {
	b, ok := m.bufs[h]
	if !ok {
		err.SetException(fmt.Sprintf("Invalid buffer id: %d", h))
		return nil
	}
	return b
}

func (m *MockHost) window(h types.WinHandle, err *types.Error) *mockWindow {
	w, ok := m.wins[h]
	if !ok {
		err.SetException(fmt.Sprintf("Invalid window id: %d", h))
		return nil
	}
	return w
}

// Global operations.

func (m *MockHost) CreateBuf(listed, scratch bool, err *types.Error) types.BufHandle {
	if m.failed(err) {
		return 0
	}
	return m.newBuffer(listed, scratch)
}

func (m *MockHost) DelCurrentLine(err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(m.curBuf, err)
	if b == nil {
		return
	}
	row := m.wins[m.curWin].cursor[0] - 1
	if int(row) < len(b.lines) {
		b.lines = append(b.lines[:row], b.lines[row+1:]...)
	}
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	m.clampCursors(m.curBuf)
}

// clampCursors pulls every cursor in a window showing buf back inside the
// buffer, the way the editor does after an edit shrinks it.
func (m *MockHost) clampCursors(buf types.BufHandle) {
	b := m.bufs[buf]
	if b == nil {
		return
	}
	n := int64(len(b.lines))
	for _, w := range m.wins {
		if w.buf != buf {
			continue
		}
		if w.cursor[0] > n {
			w.cursor[0] = n
		}
	}
}

func (m *MockHost) GetCurrentLine(err *types.Error) types.String {
	if m.failed(err) {
		return types.String{}
	}
	b := m.buffer(m.curBuf, err)
	if b == nil {
		return types.String{}
	}
	row := m.wins[m.curWin].cursor[0] - 1
	return types.NewString(b.lines[row])
}

func (m *MockHost) SetCurrentLine(line str, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(m.curBuf, err)
	if b == nil {
		return
	}
	row := m.wins[m.curWin].cursor[0] - 1
	b.lines[row] = line.Value().String()
}

func (m *MockHost) GetVar(name str, err *types.Error) types.Object {
	if m.failed(err) {
		return garbageObject()
	}
	v, ok := m.globals.Get(name.Value().String())
	if !ok {
		err.SetValidation(fmt.Sprintf("Key not found: %s", name.Value().String()))
		return garbageObject()
	}
	return v
}

func (m *MockHost) SetVar(name str, value obj, err *types.Error) {
	if m.failed(err) {
		return
	}
	m.globals.Set(name.Value().String(), value.Value().Clone())
}

func (m *MockHost) DelVar(name str, err *types.Error) {
	if m.failed(err) {
		return
	}
	if !m.globals.Delete(name.Value().String()) {
		err.SetValidation(fmt.Sprintf("Key not found: %s", name.Value().String()))
	}
}

func (m *MockHost) GetCurrentBuf() types.BufHandle { return m.curBuf }

func (m *MockHost) SetCurrentBuf(buf types.BufHandle, err *types.Error) {
	if m.failed(err) {
		return
	}
	if m.buffer(buf, err) == nil {
		return
	}
	m.curBuf = buf
	m.wins[m.curWin].buf = buf
}

func (m *MockHost) GetCurrentWin() types.WinHandle { return m.curWin }

func (m *MockHost) ListBufs() types.Array {
	var out types.Array
	// Handles are allocated sequentially, so ascending id order is also
	// creation order.
	for h := types.BufHandle(1); h < m.nextBuf; h++ {
		if _, ok := m.bufs[h]; ok {
			out.Push(types.BufferObject(h))
		}
	}
	return out
}

func (m *MockHost) DelMark(name str, err *types.Error) bool {
	if m.failed(err) {
		return false
	}
	n := name.Value().String()
	if _, ok := m.marks[n]; !ok {
		return false
	}
	delete(m.marks, n)
	return true
}

func (m *MockHost) GetColorByName(name str) int64 {
	if c, ok := m.colors[name.Value().String()]; ok {
		return c
	}
	return -1
}

func (m *MockHost) Strwidth(text str, err *types.Error) int64 {
	if m.failed(err) {
		return 0
	}
	return int64(utf8.RuneCount(text.Value().Bytes()))
}

func (m *MockHost) Echo(chunks arr, history bool, opts dict, err *types.Error) {
	if m.failed(err) {
		return
	}
	msg := ""
	for _, chunk := range chunks.Value().Items() {
		pair, berr := chunk.BorrowArray()
		if berr != nil || pair.Value().Len() == 0 {
			err.SetValidation("chunk is not an array")
			return
		}
		text, berr := pair.Value().At(0).BorrowString()
		if berr != nil {
			err.SetValidation("chunk text is not a string")
			return
		}
		msg += text.Value().String()
	}
	m.Messages = append(m.Messages, msg)
}

func (m *MockHost) ErrWrite(s str) { m.ErrMessages = append(m.ErrMessages, s.Value().String()) }

func (m *MockHost) ErrWriteln(s str) {
	m.ErrMessages = append(m.ErrMessages, s.Value().String()+"\n")
}

func (m *MockHost) OutWrite(s str) { m.Messages = append(m.Messages, s.Value().String()) }

func (m *MockHost) Feedkeys(keys, mode str, escapeKs bool) {
	m.TypedKeys = append(m.TypedKeys, keys.Value().String())
}

func (m *MockHost) SetKeymap(mode, lhs, rhs str, opts dict, err *types.Error) {
	if m.failed(err) {
		return
	}
	m.keymaps[mode.Value().String()+"\x00"+lhs.Value().String()] = rhs.Value().String()
}

func (m *MockHost) DelKeymap(mode, lhs str, err *types.Error) {
	if m.failed(err) {
		return
	}
	key := mode.Value().String() + "\x00" + lhs.Value().String()
	if _, ok := m.keymaps[key]; !ok {
		err.SetException("E31: No such mapping")
		return
	}
	delete(m.keymaps, key)
}

func (m *MockHost) GetOptionValue(name str, opts dict, err *types.Error) types.Object {
	if m.failed(err) {
		return garbageObject()
	}
	v, ok := m.options.Get(name.Value().String())
	if !ok {
		err.SetValidation(fmt.Sprintf("Unknown option '%s'", name.Value().String()))
		return garbageObject()
	}
	return v
}

func (m *MockHost) SetOptionValue(name str, value obj, opts dict, err *types.Error) {
	if m.failed(err) {
		return
	}
	n := name.Value().String()
	if !m.options.Has(n) {
		err.SetValidation(fmt.Sprintf("Unknown option '%s'", n))
		return
	}
	m.options.Set(n, value.Value().Clone())
}

func (m *MockHost) SetHl(nsID int64, name str, val dict, err *types.Error) {
	if m.failed(err) {
		return
	}
	m.hl.Set(hlKey(nsID, name.Value().String()), val.Value().Clone().Object())
}

func (m *MockHost) GetHlByName(name str, rgb bool, err *types.Error) types.Dictionary {
	if m.failed(err) {
		return types.Dictionary{}
	}
	v, ok := m.hl.Get(hlKey(0, name.Value().String()))
	if !ok {
		err.SetException(fmt.Sprintf("Invalid highlight name: '%s'", name.Value().String()))
		return types.Dictionary{}
	}
	d, cerr := v.TakeDictionary()
	if cerr != nil {
		v.Free()
		err.SetException("corrupt highlight entry")
		return types.Dictionary{}
	}
	return d
}

func (m *MockHost) GetHlIDByName(name str) int64 {
	n := name.Value().String()
	if id, ok := m.hlIDs[n]; ok {
		return id
	}
	id := m.nextHl
	m.nextHl++
	m.hlIDs[n] = id
	return id
}

func hlKey(nsID int64, name string) string {
	return fmt.Sprintf("%d:%s", nsID, name)
}

func (m *MockHost) OpenWin(buf types.BufHandle, enter bool, config dict, err *types.Error) types.WinHandle {
	if m.failed(err) {
		return 0
	}
	if m.buffer(buf, err) == nil {
		return 0
	}
	win := m.nextWin
	m.nextWin++
	w := &mockWindow{buf: buf, tab: 1, cursor: [2]int64{1, 0}, height: 10, width: 40}
	if v, ok := config.Value().Get("height"); ok {
		if h, cerr := v.AsInteger(); cerr == nil {
			w.height = h
		}
	}
	if v, ok := config.Value().Get("width"); ok {
		if wd, cerr := v.AsInteger(); cerr == nil {
			w.width = wd
		}
	}
	m.wins[win] = w
	m.tabs[w.tab].wins = append(m.tabs[w.tab].wins, win)
	if enter {
		m.curWin = win
		m.curBuf = buf
	}
	return win
}

// Vimscript operations.

func (m *MockHost) Command(cmd str, err *types.Error) {
	if m.failed(err) {
		return
	}
	m.Commands = append(m.Commands, cmd.Value().String())
}

func (m *MockHost) Eval(expr str, err *types.Error) types.Object {
	if m.failed(err) {
		return garbageObject()
	}
	e := expr.Value().String()
	if stub, ok := m.evalStubs[e]; ok {
		return stub.Clone()
	}
	err.SetException(fmt.Sprintf("E15: Invalid expression: %s", e))
	return garbageObject()
}

func (m *MockHost) Exec(src str, output bool, err *types.Error) types.String {
	if m.failed(err) {
		return types.String{}
	}
	m.Commands = append(m.Commands, src.Value().String())
	return types.String{}
}

func (m *MockHost) CallFunction(fn str, args arr, err *types.Error) types.Object {
	if m.failed(err) {
		return garbageObject()
	}
	n := fn.Value().String()
	if stub, ok := m.fnStubs[n]; ok {
		return stub.Clone()
	}
	err.SetException(fmt.Sprintf("E117: Unknown function: %s", n))
	return garbageObject()
}

// Buffer operations.

func (m *MockHost) BufLineCount(buf types.BufHandle, err *types.Error) int64 {
	if m.failed(err) {
		return 0
	}
	b := m.buffer(buf, err)
	if b == nil {
		return 0
	}
	return int64(len(b.lines))
}

// resolveRange maps the host's negative line indices onto [0, n].
func resolveRange(start, end, n int64) (int64, int64) {
	if start < 0 {
		start = n + start + 1
	}
	if end < 0 {
		end = n + end + 1
	}
	return start, end
}

func (m *MockHost) BufGetLines(buf types.BufHandle, start, end int64, strict bool, err *types.Error) types.Array {
	if m.failed(err) {
		return types.Array{}
	}
	b := m.buffer(buf, err)
	if b == nil {
		return types.Array{}
	}
	n := int64(len(b.lines))
	start, end = resolveRange(start, end, n)
	if start < 0 || end > n || start > end {
		if strict {
			err.SetValidation("Index out of bounds")
			return types.Array{}
		}
		start = max(0, min(start, n))
		end = max(start, min(end, n))
	}
	return types.ArrayFromStrings(b.lines[start:end])
}

func (m *MockHost) BufSetLines(buf types.BufHandle, start, end int64, strict bool, repl arr, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(buf, err)
	if b == nil {
		return
	}
	lines, cerr := repl.Value().Strings()
	if cerr != nil {
		err.SetValidation("All items in the replacement array must be strings")
		return
	}
	n := int64(len(b.lines))
	start, end = resolveRange(start, end, n)
	if start < 0 || end > n || start > end {
		err.SetValidation("Index out of bounds")
		return
	}
	next := make([]string, 0, int(start)+len(lines)+int(n-end))
	next = append(next, b.lines[:start]...)
	next = append(next, lines...)
	next = append(next, b.lines[end:]...)
	if len(next) == 0 {
		next = []string{""}
	}
	b.lines = next
	m.clampCursors(buf)
}

func (m *MockHost) BufGetName(buf types.BufHandle, err *types.Error) types.String {
	if m.failed(err) {
		return types.String{}
	}
	b := m.buffer(buf, err)
	if b == nil {
		return types.String{}
	}
	return types.NewString(b.name)
}

func (m *MockHost) BufSetName(buf types.BufHandle, name str, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(buf, err)
	if b == nil {
		return
	}
	b.name = name.Value().String()
}

func (m *MockHost) BufGetVar(buf types.BufHandle, name str, err *types.Error) types.Object {
	if m.failed(err) {
		return garbageObject()
	}
	b := m.buffer(buf, err)
	if b == nil {
		return garbageObject()
	}
	v, ok := b.vars.Get(name.Value().String())
	if !ok {
		err.SetValidation(fmt.Sprintf("Key not found: %s", name.Value().String()))
		return garbageObject()
	}
	return v
}

func (m *MockHost) BufSetVar(buf types.BufHandle, name str, value obj, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(buf, err)
	if b == nil {
		return
	}
	b.vars.Set(name.Value().String(), value.Value().Clone())
}

func (m *MockHost) BufDelVar(buf types.BufHandle, name str, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(buf, err)
	if b == nil {
		return
	}
	if !b.vars.Delete(name.Value().String()) {
		err.SetValidation(fmt.Sprintf("Key not found: %s", name.Value().String()))
	}
}

func (m *MockHost) BufIsValid(buf types.BufHandle) bool {
	_, ok := m.bufs[buf]
	return ok
}

func (m *MockHost) BufIsLoaded(buf types.BufHandle) bool {
	b, ok := m.bufs[buf]
	return ok && b.loaded
}

func (m *MockHost) BufDelete(buf types.BufHandle, opts dict, err *types.Error) {
	if m.failed(err) {
		return
	}
	b := m.buffer(buf, err)
	if b == nil {
		return
	}
	b.vars.Clear()
	delete(m.bufs, buf)
}

func (m *MockHost) BufSetMark(buf types.BufHandle, name str, line, col int64, opts dict, err *types.Error) bool {
	if m.failed(err) {
		return false
	}
	b := m.buffer(buf, err)
	if b == nil {
		return false
	}
	n := name.Value().String()
	if len(n) != 1 {
		return false
	}
	b.marks[n] = mockMark{buf: buf, line: line, col: col}
	return true
}

func (m *MockHost) BufGetMark(buf types.BufHandle, name str, err *types.Error) types.Array {
	if m.failed(err) {
		return types.Array{}
	}
	b := m.buffer(buf, err)
	if b == nil {
		return types.Array{}
	}
	// An unset mark is (0, 0), same as the host.
	mk := b.marks[name.Value().String()]
	return types.NewArray(types.Integer(mk.line), types.Integer(mk.col))
}

func (m *MockHost) BufDelMark(buf types.BufHandle, name str, err *types.Error) bool {
	if m.failed(err) {
		return false
	}
	b := m.buffer(buf, err)
	if b == nil {
		return false
	}
	n := name.Value().String()
	if _, ok := b.marks[n]; !ok {
		return false
	}
	delete(b.marks, n)
	return true
}

// Window operations.

func (m *MockHost) WinGetCursor(win types.WinHandle, err *types.Error) types.Array {
	if m.failed(err) {
		return types.Array{}
	}
	w := m.window(win, err)
	if w == nil {
		return types.Array{}
	}
	return types.NewArray(types.Integer(w.cursor[0]), types.Integer(w.cursor[1]))
}

func (m *MockHost) WinSetCursor(win types.WinHandle, pos arr, err *types.Error) {
	if m.failed(err) {
		return
	}
	w := m.window(win, err)
	if w == nil {
		return
	}
	p := pos.Value()
	if p.Len() != 2 {
		err.SetValidation("Argument \"pos\" must be a [row, col] array")
		return
	}
	row, e1 := p.At(0).AsInteger()
	col, e2 := p.At(1).AsInteger()
	if e1 != nil || e2 != nil {
		err.SetValidation("Argument \"pos\" must be a [row, col] array")
		return
	}
	lines := int64(len(m.bufs[w.buf].lines))
	if row < 1 || row > lines {
		err.SetValidation("Cursor position outside buffer")
		return
	}
	w.cursor = [2]int64{row, col}
}

func (m *MockHost) WinGetHeight(win types.WinHandle, err *types.Error) int64 {
	if m.failed(err) {
		return 0
	}
	w := m.window(win, err)
	if w == nil {
		return 0
	}
	return w.height
}

func (m *MockHost) WinSetHeight(win types.WinHandle, height int64, err *types.Error) {
	if m.failed(err) {
		return
	}
	if w := m.window(win, err); w != nil {
		w.height = height
	}
}

func (m *MockHost) WinGetWidth(win types.WinHandle, err *types.Error) int64 {
	if m.failed(err) {
		return 0
	}
	w := m.window(win, err)
	if w == nil {
		return 0
	}
	return w.width
}

func (m *MockHost) WinSetWidth(win types.WinHandle, width int64, err *types.Error) {
	if m.failed(err) {
		return
	}
	if w := m.window(win, err); w != nil {
		w.width = width
	}
}

func (m *MockHost) WinGetBuf(win types.WinHandle, err *types.Error) types.BufHandle {
	if m.failed(err) {
		return 0
	}
	w := m.window(win, err)
	if w == nil {
		return 0
	}
	return w.buf
}

func (m *MockHost) WinGetPosition(win types.WinHandle, err *types.Error) types.Array {
	if m.failed(err) {
		return types.Array{}
	}
	w := m.window(win, err)
	if w == nil {
		return types.Array{}
	}
	return types.NewArray(types.Integer(w.pos[0]), types.Integer(w.pos[1]))
}

func (m *MockHost) WinGetTabpage(win types.WinHandle, err *types.Error) types.TabHandle {
	if m.failed(err) {
		return 0
	}
	w := m.window(win, err)
	if w == nil {
		return 0
	}
	return w.tab
}

func (m *MockHost) WinClose(win types.WinHandle, force bool, err *types.Error) {
	if m.failed(err) {
		return
	}
	w := m.window(win, err)
	if w == nil {
		return
	}
	if win == m.curWin {
		err.SetException("E444: Cannot close last window")
		return
	}
	tab := m.tabs[w.tab]
	for i, h := range tab.wins {
		if h == win {
			tab.wins = append(tab.wins[:i], tab.wins[i+1:]...)
			break
		}
	}
	delete(m.wins, win)
}

// Tabpage operations.

func (m *MockHost) tabpage(h types.TabHandle, err *types.Error) *mockTab {
	t, ok := m.tabs[h]
	if !ok {
		err.SetException(fmt.Sprintf("Invalid tabpage id: %d", h))
		return nil
	}
	return t
}

func (m *MockHost) TabListWins(tab types.TabHandle, err *types.Error) types.Array {
	if m.failed(err) {
		return types.Array{}
	}
	t := m.tabpage(tab, err)
	if t == nil {
		return types.Array{}
	}
	var out types.Array
	for _, w := range t.wins {
		out.Push(types.WindowObject(w))
	}
	return out
}

func (m *MockHost) TabGetWin(tab types.TabHandle, err *types.Error) types.WinHandle {
	if m.failed(err) {
		return 0
	}
	t := m.tabpage(tab, err)
	if t == nil {
		return 0
	}
	for _, w := range t.wins {
		if w == m.curWin {
			return w
		}
	}
	return t.wins[0]
}

func (m *MockHost) TabGetNumber(tab types.TabHandle, err *types.Error) int64 {
	if m.failed(err) {
		return 0
	}
	if m.tabpage(tab, err) == nil {
		return 0
	}
	return int64(tab)
}

func (m *MockHost) TabIsValid(tab types.TabHandle) bool {
	_, ok := m.tabs[tab]
	return ok
}
