package api

import (
	"fmt"
	"io"
	"net"

	"github.com/shamaton/msgpack/v2"

	"github.com/nvimgo/nvimgo/types"
)

// RemoteHost talks to an editor over its msgpack-RPC socket. Requests are
// [0, id, method, params] arrays, responses [1, id, error, result];
// fire-and-forget operations go out as [2, method, params] notifications.
//
// A RemoteHost is not safe for concurrent use: requests and responses are
// matched by issuing strictly one call at a time on the wire.
//
// Dictionary key order is not preserved across the wire; msgpack maps carry
// no ordering guarantee.
type RemoteHost struct {
	conn   io.ReadWriteCloser
	nextID uint32
}

var _ Host = (*RemoteHost)(nil)

// NewRemoteHost wraps an established connection.
func NewRemoteHost(conn io.ReadWriteCloser) *RemoteHost {
	return &RemoteHost{conn: conn}
}

// Dial connects to a host listening on the given address. Network is
// "unix" for a socket path or "tcp" for host:port.
func Dial(network, addr string) (*RemoteHost, error) {
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, addr, err)
	}
	return NewRemoteHost(conn), nil
}

// Close tears down the connection.
func (h *RemoteHost) Close() error { return h.conn.Close() }

func (h *RemoteHost) call(method string, err *types.Error, params ...any) any {
	h.nextID++
	id := h.nextID
	if params == nil {
		params = []any{}
	}
	logger.Debug().Str("method", method).Uint32("id", id).Msg("rpc request")
	if werr := msgpack.MarshalWrite(h.conn, []any{0, id, method, params}); werr != nil {
		err.SetException(fmt.Sprintf("rpc: send %s: %v", method, werr))
		return nil
	}
	var resp []any
	if rerr := msgpack.UnmarshalRead(h.conn, &resp); rerr != nil {
		err.SetException(fmt.Sprintf("rpc: receive %s: %v", method, rerr))
		return nil
	}
	if len(resp) != 4 || asInt64(resp[0]) != 1 {
		err.SetException(fmt.Sprintf("rpc: malformed response to %s", method))
		return nil
	}
	if got := asInt64(resp[1]); got != int64(id) {
		err.SetException(fmt.Sprintf("rpc: response id %d does not match request id %d", got, id))
		return nil
	}
	if resp[2] != nil {
		err.SetException(rpcErrorMessage(resp[2]))
		return nil
	}
	return resp[3]
}

func (h *RemoteHost) notify(method string, params ...any) {
	if params == nil {
		params = []any{}
	}
	logger.Debug().Str("method", method).Msg("rpc notification")
	// Nowhere to report a send failure on a notification.
	_ = msgpack.MarshalWrite(h.conn, []any{2, method, params})
}

// rpcErrorMessage extracts the message from a response error, which the
// host encodes as a [type, message] pair.
func rpcErrorMessage(v any) string {
	if pair, ok := v.([]any); ok && len(pair) == 2 {
		if msg, ok := pair[1].(string); ok {
			return msg
		}
	}
	return fmt.Sprint(v)
}

// Wire conversions. Handles travel as plain integers.

func objectToWire(o types.Object) any {
	switch o.Kind() {
	case types.KindNil:
		return nil
	case types.KindBoolean:
		b, _ := o.AsBoolean()
		return b
	case types.KindInteger:
		i, _ := o.AsInteger()
		return i
	case types.KindFloat:
		f, _ := o.AsFloat()
		return f
	case types.KindString:
		s, _ := o.BorrowString()
		return s.Value().String()
	case types.KindArray:
		a, _ := o.BorrowArray()
		return arrayToWire(a.Value())
	case types.KindDictionary:
		d, _ := o.BorrowDictionary()
		return dictionaryToWire(d.Value())
	case types.KindBuffer:
		b, _ := o.AsBuffer()
		return int64(b)
	case types.KindWindow:
		w, _ := o.AsWindow()
		return int64(w)
	case types.KindTabPage:
		t, _ := o.AsTabPage()
		return int64(t)
	case types.KindLuaRef:
		r, _ := o.AsLuaRef()
		return int64(r)
	}
	return nil
}

func arrayToWire(a types.Array) []any {
	out := make([]any, 0, a.Len())
	for _, item := range a.Items() {
		out = append(out, objectToWire(item))
	}
	return out
}

func dictionaryToWire(d types.Dictionary) map[string]any {
	out := make(map[string]any, len(d.Pairs()))
	for _, kv := range d.Pairs() {
		out[kv.Key.String()] = objectToWire(kv.Value)
	}
	return out
}

func wireToObject(v any) types.Object {
	switch x := v.(type) {
	case nil:
		return types.Nil()
	case bool:
		return types.Boolean(x)
	case int:
		return types.Integer(int64(x))
	case int8:
		return types.Integer(int64(x))
	case int16:
		return types.Integer(int64(x))
	case int32:
		return types.Integer(int64(x))
	case int64:
		return types.Integer(x)
	case uint:
		return types.Integer(int64(x))
	case uint8:
		return types.Integer(int64(x))
	case uint16:
		return types.Integer(int64(x))
	case uint32:
		return types.Integer(int64(x))
	case uint64:
		return types.Integer(int64(x))
	case float32:
		return types.Float(float64(x))
	case float64:
		return types.Float(x)
	case string:
		return types.Str(x)
	case []byte:
		return types.StringFromBytes(x).Object()
	case []any:
		var a types.Array
		for _, item := range x {
			a.Push(wireToObject(item))
		}
		return a.Object()
	case map[string]any:
		var d types.Dictionary
		for k, val := range x {
			d.Set(k, wireToObject(val))
		}
		return d.Object()
	case map[any]any:
		var d types.Dictionary
		for k, val := range x {
			d.Set(fmt.Sprint(k), wireToObject(val))
		}
		return d.Object()
	}
	return types.Nil()
}

func asInt64(v any) int64 {
	o := wireToObject(v)
	defer o.Free()
	i, err := o.AsInteger()
	if err != nil {
		return 0
	}
	return i
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func asString(v any) types.String {
	switch x := v.(type) {
	case string:
		return types.NewString(x)
	case []byte:
		return types.StringFromBytes(x)
	}
	return types.String{}
}

func asArray(v any) types.Array {
	o := wireToObject(v)
	a, err := o.TakeArray()
	if err != nil {
		o.Free()
		return types.Array{}
	}
	return a
}

func asDictionary(v any) types.Dictionary {
	o := wireToObject(v)
	d, err := o.TakeDictionary()
	if err != nil {
		o.Free()
		return types.Dictionary{}
	}
	return d
}

// wireStr copies a borrowed string into its wire representation.
func wireStr(s str) string { return s.Value().String() }

func wireObj(o obj) any { return objectToWire(o.Value()) }

func wireArr(a arr) []any { return arrayToWire(a.Value()) }

func wireDict(d dict) map[string]any { return dictionaryToWire(d.Value()) }

// Global operations.

func (h *RemoteHost) CreateBuf(listed, scratch bool, err *types.Error) types.BufHandle {
	return types.BufHandle(asInt64(h.call("nvim_create_buf", err, listed, scratch)))
}

func (h *RemoteHost) DelCurrentLine(err *types.Error) {
	h.call("nvim_del_current_line", err)
}

func (h *RemoteHost) GetCurrentLine(err *types.Error) types.String {
	return asString(h.call("nvim_get_current_line", err))
}

func (h *RemoteHost) SetCurrentLine(line str, err *types.Error) {
	h.call("nvim_set_current_line", err, wireStr(line))
}

func (h *RemoteHost) GetVar(name str, err *types.Error) types.Object {
	return wireToObject(h.call("nvim_get_var", err, wireStr(name)))
}

func (h *RemoteHost) SetVar(name str, value obj, err *types.Error) {
	h.call("nvim_set_var", err, wireStr(name), wireObj(value))
}

func (h *RemoteHost) DelVar(name str, err *types.Error) {
	h.call("nvim_del_var", err, wireStr(name))
}

func (h *RemoteHost) GetCurrentBuf() types.BufHandle {
	e := types.NewError()
	defer e.Free()
	return types.BufHandle(asInt64(h.call("nvim_get_current_buf", &e)))
}

func (h *RemoteHost) SetCurrentBuf(buf types.BufHandle, err *types.Error) {
	h.call("nvim_set_current_buf", err, int64(buf))
}

func (h *RemoteHost) GetCurrentWin() types.WinHandle {
	e := types.NewError()
	defer e.Free()
	return types.WinHandle(asInt64(h.call("nvim_get_current_win", &e)))
}

func (h *RemoteHost) ListBufs() types.Array {
	e := types.NewError()
	defer e.Free()
	raw := asArray(h.call("nvim_list_bufs", &e))
	defer raw.Free()
	// Handles arrive as plain integers; retag them.
	var out types.Array
	for _, item := range raw.Items() {
		if id, cerr := item.AsInteger(); cerr == nil {
			out.Push(types.BufferObject(types.BufHandle(id)))
		}
	}
	return out
}

func (h *RemoteHost) DelMark(name str, err *types.Error) bool {
	return asBool(h.call("nvim_del_mark", err, wireStr(name)))
}

func (h *RemoteHost) GetColorByName(name str) int64 {
	e := types.NewError()
	defer e.Free()
	v := h.call("nvim_get_color_by_name", &e, wireStr(name))
	if e.IsErr() {
		return -1
	}
	return asInt64(v)
}

func (h *RemoteHost) Strwidth(text str, err *types.Error) int64 {
	return asInt64(h.call("nvim_strwidth", err, wireStr(text)))
}

func (h *RemoteHost) Echo(chunks arr, history bool, opts dict, err *types.Error) {
	h.call("nvim_echo", err, wireArr(chunks), history, wireDict(opts))
}

func (h *RemoteHost) ErrWrite(s str)   { h.notify("nvim_err_write", wireStr(s)) }
func (h *RemoteHost) ErrWriteln(s str) { h.notify("nvim_err_writeln", wireStr(s)) }
func (h *RemoteHost) OutWrite(s str)   { h.notify("nvim_out_write", wireStr(s)) }

func (h *RemoteHost) Feedkeys(keys, mode str, escapeKs bool) {
	h.notify("nvim_feedkeys", wireStr(keys), wireStr(mode), escapeKs)
}

func (h *RemoteHost) SetKeymap(mode, lhs, rhs str, opts dict, err *types.Error) {
	h.call("nvim_set_keymap", err, wireStr(mode), wireStr(lhs), wireStr(rhs), wireDict(opts))
}

func (h *RemoteHost) DelKeymap(mode, lhs str, err *types.Error) {
	h.call("nvim_del_keymap", err, wireStr(mode), wireStr(lhs))
}

func (h *RemoteHost) GetOptionValue(name str, opts dict, err *types.Error) types.Object {
	return wireToObject(h.call("nvim_get_option_value", err, wireStr(name), wireDict(opts)))
}

func (h *RemoteHost) SetOptionValue(name str, value obj, opts dict, err *types.Error) {
	h.call("nvim_set_option_value", err, wireStr(name), wireObj(value), wireDict(opts))
}

func (h *RemoteHost) SetHl(nsID int64, name str, val dict, err *types.Error) {
	h.call("nvim_set_hl", err, nsID, wireStr(name), wireDict(val))
}

func (h *RemoteHost) GetHlByName(name str, rgb bool, err *types.Error) types.Dictionary {
	v := h.call("nvim_get_hl_by_name", err, wireStr(name), rgb)
	if err.IsErr() {
		return types.Dictionary{}
	}
	return asDictionary(v)
}

func (h *RemoteHost) GetHlIDByName(name str) int64 {
	e := types.NewError()
	defer e.Free()
	return asInt64(h.call("nvim_get_hl_id_by_name", &e, wireStr(name)))
}

func (h *RemoteHost) OpenWin(buf types.BufHandle, enter bool, config dict, err *types.Error) types.WinHandle {
	return types.WinHandle(asInt64(h.call("nvim_open_win", err, int64(buf), enter, wireDict(config))))
}

// Vimscript operations.

func (h *RemoteHost) Command(cmd str, err *types.Error) {
	h.call("nvim_command", err, wireStr(cmd))
}

func (h *RemoteHost) Eval(expr str, err *types.Error) types.Object {
	return wireToObject(h.call("nvim_eval", err, wireStr(expr)))
}

func (h *RemoteHost) Exec(src str, output bool, err *types.Error) types.String {
	return asString(h.call("nvim_exec", err, wireStr(src), output))
}

func (h *RemoteHost) CallFunction(fn str, args arr, err *types.Error) types.Object {
	return wireToObject(h.call("nvim_call_function", err, wireStr(fn), wireArr(args)))
}

// Buffer operations.

func (h *RemoteHost) BufLineCount(buf types.BufHandle, err *types.Error) int64 {
	return asInt64(h.call("nvim_buf_line_count", err, int64(buf)))
}

func (h *RemoteHost) BufGetLines(buf types.BufHandle, start, end int64, strict bool, err *types.Error) types.Array {
	v := h.call("nvim_buf_get_lines", err, int64(buf), start, end, strict)
	if err.IsErr() {
		return types.Array{}
	}
	return asArray(v)
}

func (h *RemoteHost) BufSetLines(buf types.BufHandle, start, end int64, strict bool, repl arr, err *types.Error) {
	h.call("nvim_buf_set_lines", err, int64(buf), start, end, strict, wireArr(repl))
}

func (h *RemoteHost) BufGetName(buf types.BufHandle, err *types.Error) types.String {
	return asString(h.call("nvim_buf_get_name", err, int64(buf)))
}

func (h *RemoteHost) BufSetName(buf types.BufHandle, name str, err *types.Error) {
	h.call("nvim_buf_set_name", err, int64(buf), wireStr(name))
}

func (h *RemoteHost) BufGetVar(buf types.BufHandle, name str, err *types.Error) types.Object {
	return wireToObject(h.call("nvim_buf_get_var", err, int64(buf), wireStr(name)))
}

func (h *RemoteHost) BufSetVar(buf types.BufHandle, name str, value obj, err *types.Error) {
	h.call("nvim_buf_set_var", err, int64(buf), wireStr(name), wireObj(value))
}

func (h *RemoteHost) BufDelVar(buf types.BufHandle, name str, err *types.Error) {
	h.call("nvim_buf_del_var", err, int64(buf), wireStr(name))
}

func (h *RemoteHost) BufIsValid(buf types.BufHandle) bool {
	e := types.NewError()
	defer e.Free()
	return asBool(h.call("nvim_buf_is_valid", &e, int64(buf)))
}

func (h *RemoteHost) BufIsLoaded(buf types.BufHandle) bool {
	e := types.NewError()
	defer e.Free()
	return asBool(h.call("nvim_buf_is_loaded", &e, int64(buf)))
}

func (h *RemoteHost) BufDelete(buf types.BufHandle, opts dict, err *types.Error) {
	h.call("nvim_buf_delete", err, int64(buf), wireDict(opts))
}

func (h *RemoteHost) BufSetMark(buf types.BufHandle, name str, line, col int64, opts dict, err *types.Error) bool {
	return asBool(h.call("nvim_buf_set_mark", err, int64(buf), wireStr(name), line, col, wireDict(opts)))
}

func (h *RemoteHost) BufGetMark(buf types.BufHandle, name str, err *types.Error) types.Array {
	v := h.call("nvim_buf_get_mark", err, int64(buf), wireStr(name))
	if err.IsErr() {
		return types.Array{}
	}
	return asArray(v)
}

func (h *RemoteHost) BufDelMark(buf types.BufHandle, name str, err *types.Error) bool {
	return asBool(h.call("nvim_buf_del_mark", err, int64(buf), wireStr(name)))
}

// Window operations.

func (h *RemoteHost) WinGetCursor(win types.WinHandle, err *types.Error) types.Array {
	v := h.call("nvim_win_get_cursor", err, int64(win))
	if err.IsErr() {
		return types.Array{}
	}
	return asArray(v)
}

func (h *RemoteHost) WinSetCursor(win types.WinHandle, pos arr, err *types.Error) {
	h.call("nvim_win_set_cursor", err, int64(win), wireArr(pos))
}

func (h *RemoteHost) WinGetHeight(win types.WinHandle, err *types.Error) int64 {
	return asInt64(h.call("nvim_win_get_height", err, int64(win)))
}

func (h *RemoteHost) WinSetHeight(win types.WinHandle, height int64, err *types.Error) {
	h.call("nvim_win_set_height", err, int64(win), height)
}

func (h *RemoteHost) WinGetWidth(win types.WinHandle, err *types.Error) int64 {
	return asInt64(h.call("nvim_win_get_width", err, int64(win)))
}

func (h *RemoteHost) WinSetWidth(win types.WinHandle, width int64, err *types.Error) {
	h.call("nvim_win_set_width", err, int64(win), width)
}

func (h *RemoteHost) WinGetBuf(win types.WinHandle, err *types.Error) types.BufHandle {
	return types.BufHandle(asInt64(h.call("nvim_win_get_buf", err, int64(win))))
}

func (h *RemoteHost) WinGetPosition(win types.WinHandle, err *types.Error) types.Array {
	v := h.call("nvim_win_get_position", err, int64(win))
	if err.IsErr() {
		return types.Array{}
	}
	return asArray(v)
}

func (h *RemoteHost) WinGetTabpage(win types.WinHandle, err *types.Error) types.TabHandle {
	return types.TabHandle(asInt64(h.call("nvim_win_get_tabpage", err, int64(win))))
}

func (h *RemoteHost) WinClose(win types.WinHandle, force bool, err *types.Error) {
	h.call("nvim_win_close", err, int64(win), force)
}

// Tabpage operations.

func (h *RemoteHost) TabListWins(tab types.TabHandle, err *types.Error) types.Array {
	v := h.call("nvim_tabpage_list_wins", err, int64(tab))
	if err.IsErr() {
		return types.Array{}
	}
	raw := asArray(v)
	defer raw.Free()
	var out types.Array
	for _, item := range raw.Items() {
		if id, cerr := item.AsInteger(); cerr == nil {
			out.Push(types.WindowObject(types.WinHandle(id)))
		}
	}
	return out
}

func (h *RemoteHost) TabGetWin(tab types.TabHandle, err *types.Error) types.WinHandle {
	return types.WinHandle(asInt64(h.call("nvim_tabpage_get_win", err, int64(tab))))
}

func (h *RemoteHost) TabGetNumber(tab types.TabHandle, err *types.Error) int64 {
	return asInt64(h.call("nvim_tabpage_get_number", err, int64(tab)))
}

func (h *RemoteHost) TabIsValid(tab types.TabHandle) bool {
	e := types.NewError()
	defer e.Free()
	return asBool(h.call("nvim_tabpage_is_valid", &e, int64(tab)))
}
