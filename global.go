package nvimgo

import (
	"fmt"

	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// CreateBuf creates a new buffer. Listed buffers show up in the buffer
// list; scratch buffers are throwaway buffers for temporary work.
func CreateBuf(listed, scratch bool) (Buffer, error) {
	defer api.Trace("nvim_create_buf")()
	err := types.NewError()
	defer err.Free()
	handle := api.Current().CreateBuf(listed, scratch, &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	if handle == 0 {
		return 0, &types.DomainError{Msg: "failed to create a new buffer"}
	}
	return Buffer(handle), nil
}

// DelCurrentLine deletes the line under the cursor.
func DelCurrentLine() error {
	defer api.Trace("nvim_del_current_line")()
	err := types.NewError()
	defer err.Free()
	api.Current().DelCurrentLine(&err)
	return err.Take()
}

// GetCurrentLine returns the line under the cursor.
func GetCurrentLine() (string, error) {
	defer api.Trace("nvim_get_current_line")()
	err := types.NewError()
	defer err.Free()
	line := api.Current().GetCurrentLine(&err)
	if e := err.Take(); e != nil {
		return "", e
	}
	defer line.Free()
	return line.String(), nil
}

// SetCurrentLine replaces the line under the cursor.
func SetCurrentLine(line string) error {
	defer api.Trace("nvim_set_current_line")()
	s := types.NewString(line)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().SetCurrentLine(s.NonOwning(), &err)
	return err.Take()
}

// GetVar returns a global variable. The caller owns the returned Object.
func GetVar(name string) (types.Object, error) {
	defer api.Trace("nvim_get_var")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().GetVar(s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return types.Nil(), e
	}
	return out, nil
}

// SetVar sets a global variable from any supported Go value.
func SetVar(name string, value any) error {
	defer api.Trace("nvim_set_var")()
	obj, cerr := types.ToObject(value)
	if cerr != nil {
		return cerr
	}
	defer obj.Free()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().SetVar(s.NonOwning(), obj.NonOwning(), &err)
	return err.Take()
}

// DelVar removes a global variable.
func DelVar(name string) error {
	defer api.Trace("nvim_del_var")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().DelVar(s.NonOwning(), &err)
	return err.Take()
}

// GetCurrentBuf returns the buffer shown in the current window.
func GetCurrentBuf() Buffer {
	defer api.Trace("nvim_get_current_buf")()
	return Buffer(api.Current().GetCurrentBuf())
}

// SetCurrentBuf shows the given buffer in the current window.
func SetCurrentBuf(buf Buffer) error {
	defer api.Trace("nvim_set_current_buf")()
	err := types.NewError()
	defer err.Free()
	api.Current().SetCurrentBuf(types.BufHandle(buf), &err)
	return err.Take()
}

// GetCurrentWin returns the current window.
func GetCurrentWin() Window {
	defer api.Trace("nvim_get_current_win")()
	return Window(api.Current().GetCurrentWin())
}

// ListBufs returns every buffer handle, in creation order.
func ListBufs() []Buffer {
	defer api.Trace("nvim_list_bufs")()
	arr := api.Current().ListBufs()
	defer arr.Free()
	out := make([]Buffer, 0, arr.Len())
	for _, o := range arr.Items() {
		if h, err := o.AsBuffer(); err == nil {
			out = append(out, Buffer(h))
		}
	}
	return out
}

// DelMark deletes an uppercase or numbered mark.
func DelMark(name string) error {
	defer api.Trace("nvim_del_mark")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	ok := api.Current().DelMark(s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return e
	}
	if !ok {
		return &types.DomainError{Msg: fmt.Sprintf("failed to delete mark %q", name)}
	}
	return nil
}

// GetColorByName returns the 24-bit value of a named color.
func GetColorByName(name string) (int64, error) {
	defer api.Trace("nvim_get_color_by_name")()
	s := types.NewString(name)
	defer s.Free()
	color := api.Current().GetColorByName(s.NonOwning())
	if color == -1 {
		return 0, &types.DomainError{Msg: fmt.Sprintf("unknown color %q", name)}
	}
	return color, nil
}

// Strwidth returns the number of display cells the string occupies.
func Strwidth(text string) (int64, error) {
	defer api.Trace("nvim_strwidth")()
	s := types.NewString(text)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	width := api.Current().Strwidth(s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return width, nil
}

// EchoChunk is one piece of an echoed message, optionally highlighted.
type EchoChunk struct {
	Text    string
	HlGroup types.OptionalString
}

// Echo displays a message, optionally recording it in the message history.
func Echo(chunks []EchoChunk, history bool) error {
	defer api.Trace("nvim_echo")()
	var carr types.Array
	for _, c := range chunks {
		var pair types.Array
		pair.Push(types.Str(c.Text))
		if c.HlGroup.Set {
			pair.Push(types.Str(c.HlGroup.Value))
		}
		carr.Push(pair.Object())
	}
	defer carr.Free()
	opts := types.NewDictionary()
	defer opts.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().Echo(carr.NonOwning(), history, opts.NonOwning(), &err)
	return err.Take()
}

// ErrWrite writes to the error buffer without a trailing newline; the
// message is displayed once a newline arrives.
func ErrWrite(s string) {
	defer api.Trace("nvim_err_write")()
	owned := types.NewString(s)
	defer owned.Free()
	api.Current().ErrWrite(owned.NonOwning())
}

// ErrWriteln writes to the error buffer and displays the message.
func ErrWriteln(s string) {
	defer api.Trace("nvim_err_writeln")()
	owned := types.NewString(s)
	defer owned.Free()
	api.Current().ErrWriteln(owned.NonOwning())
}

// OutWrite writes to the output buffer.
func OutWrite(s string) {
	defer api.Trace("nvim_out_write")()
	owned := types.NewString(s)
	defer owned.Free()
	api.Current().OutWrite(owned.NonOwning())
}

// Feedkeys pushes keys into the input queue. The call does not wait for
// the keys to be processed and cannot fail.
func Feedkeys(keys, mode string, escapeKs bool) {
	defer api.Trace("nvim_feedkeys")()
	k := types.NewString(keys)
	defer k.Free()
	m := types.NewString(mode)
	defer m.Free()
	api.Current().Feedkeys(k.NonOwning(), m.NonOwning(), escapeKs)
}

// SetKeymapOpts tunes a global mapping.
type SetKeymapOpts struct {
	Noremap bool
	Nowait  bool
	Silent  bool
	Expr    bool
	Desc    types.OptionalString
}

func (o *SetKeymapOpts) toDictionary() types.Dictionary {
	var d types.Dictionary
	if o == nil {
		return d
	}
	d.Set("noremap", types.Boolean(o.Noremap))
	d.Set("nowait", types.Boolean(o.Nowait))
	d.Set("silent", types.Boolean(o.Silent))
	d.Set("expr", types.Boolean(o.Expr))
	if o.Desc.Set {
		d.Set("desc", types.Str(o.Desc.Value))
	}
	return d
}

// SetKeymap defines a global mapping for the given mode.
func SetKeymap(mode, lhs, rhs string, opts *SetKeymapOpts) error {
	defer api.Trace("nvim_set_keymap")()
	mo := types.NewString(mode)
	defer mo.Free()
	l := types.NewString(lhs)
	defer l.Free()
	r := types.NewString(rhs)
	defer r.Free()
	d := opts.toDictionary()
	defer d.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().SetKeymap(mo.NonOwning(), l.NonOwning(), r.NonOwning(), d.NonOwning(), &err)
	return err.Take()
}

// DelKeymap removes a global mapping.
func DelKeymap(mode, lhs string) error {
	defer api.Trace("nvim_del_keymap")()
	mo := types.NewString(mode)
	defer mo.Free()
	l := types.NewString(lhs)
	defer l.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().DelKeymap(mo.NonOwning(), l.NonOwning(), &err)
	return err.Take()
}
