package nvimgo

import (
	"fmt"

	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// Buffer is a handle to an editor buffer. The zero value is not a valid
// handle; obtain one from CreateBuf, GetCurrentBuf or ListBufs.
type Buffer types.BufHandle

// Mark is a (1,0)-indexed position in a buffer.
type Mark struct {
	Row int64
	Col int64
}

// LineCount returns the number of lines in the buffer.
func (b Buffer) LineCount() (int64, error) {
	defer api.Trace("nvim_buf_line_count")()
	err := types.NewError()
	defer err.Free()
	n := api.Current().BufLineCount(types.BufHandle(b), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return n, nil
}

// Lines returns the lines in [start, end). Negative indices count from the
// end of the buffer, with -1 meaning one past the last line. With strict
// set, out-of-bounds indices are an error instead of being clamped.
func (b Buffer) Lines(start, end int64, strict bool) ([]string, error) {
	defer api.Trace("nvim_buf_get_lines")()
	err := types.NewError()
	defer err.Free()
	arr := api.Current().BufGetLines(types.BufHandle(b), start, end, strict, &err)
	if e := err.Take(); e != nil {
		return nil, e
	}
	defer arr.Free()
	return arr.Strings()
}

// SetLines replaces the lines in [start, end). Indexing follows Lines.
func (b Buffer) SetLines(start, end int64, strict bool, lines []string) error {
	defer api.Trace("nvim_buf_set_lines")()
	repl := types.ArrayFromStrings(lines)
	defer repl.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().BufSetLines(types.BufHandle(b), start, end, strict, repl.NonOwning(), &err)
	return err.Take()
}

// Name returns the full path of the file loaded in the buffer.
func (b Buffer) Name() (string, error) {
	defer api.Trace("nvim_buf_get_name")()
	err := types.NewError()
	defer err.Free()
	name := api.Current().BufGetName(types.BufHandle(b), &err)
	if e := err.Take(); e != nil {
		return "", e
	}
	defer name.Free()
	return name.String(), nil
}

// SetName renames the buffer.
func (b Buffer) SetName(name string) error {
	defer api.Trace("nvim_buf_set_name")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().BufSetName(types.BufHandle(b), s.NonOwning(), &err)
	return err.Take()
}

// Var returns a buffer-local variable. The caller owns the returned
// Object.
func (b Buffer) Var(name string) (types.Object, error) {
	defer api.Trace("nvim_buf_get_var")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().BufGetVar(types.BufHandle(b), s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return types.Nil(), e
	}
	return out, nil
}

// SetVar sets a buffer-local variable from any supported Go value.
func (b Buffer) SetVar(name string, value any) error {
	defer api.Trace("nvim_buf_set_var")()
	obj, cerr := types.ToObject(value)
	if cerr != nil {
		return cerr
	}
	defer obj.Free()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().BufSetVar(types.BufHandle(b), s.NonOwning(), obj.NonOwning(), &err)
	return err.Take()
}

// DelVar removes a buffer-local variable.
func (b Buffer) DelVar(name string) error {
	defer api.Trace("nvim_buf_del_var")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().BufDelVar(types.BufHandle(b), s.NonOwning(), &err)
	return err.Take()
}

// IsValid reports whether the handle refers to an existing buffer.
func (b Buffer) IsValid() bool {
	defer api.Trace("nvim_buf_is_valid")()
	return api.Current().BufIsValid(types.BufHandle(b))
}

// IsLoaded reports whether the buffer's content is in memory.
func (b Buffer) IsLoaded() bool {
	defer api.Trace("nvim_buf_is_loaded")()
	return api.Current().BufIsLoaded(types.BufHandle(b))
}

// Delete removes the buffer. With force set, unsaved changes are
// discarded; with unload set, the buffer is only unloaded, not deleted.
func (b Buffer) Delete(force, unload bool) error {
	defer api.Trace("nvim_buf_delete")()
	var opts types.Dictionary
	opts.Set("force", types.Boolean(force))
	opts.Set("unload", types.Boolean(unload))
	defer opts.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().BufDelete(types.BufHandle(b), opts.NonOwning(), &err)
	return err.Take()
}

// SetMark places a named mark at the given (1,0)-indexed position.
func (b Buffer) SetMark(name string, row, col int64) error {
	defer api.Trace("nvim_buf_set_mark")()
	s := types.NewString(name)
	defer s.Free()
	opts := types.NewDictionary()
	defer opts.Free()
	err := types.NewError()
	defer err.Free()
	ok := api.Current().BufSetMark(types.BufHandle(b), s.NonOwning(), row, col, opts.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return e
	}
	if !ok {
		return &types.DomainError{Msg: fmt.Sprintf("failed to set mark %q", name)}
	}
	return nil
}

// Mark returns the position of a named mark. An unset mark is at (0, 0).
func (b Buffer) Mark(name string) (Mark, error) {
	defer api.Trace("nvim_buf_get_mark")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	pos := api.Current().BufGetMark(types.BufHandle(b), s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return Mark{}, e
	}
	defer pos.Free()
	if pos.Len() != 2 {
		return Mark{}, &types.DomainError{Msg: "mark position is not a [row, col] pair"}
	}
	row, cerr := pos.At(0).AsInteger()
	if cerr != nil {
		return Mark{}, cerr
	}
	col, cerr := pos.At(1).AsInteger()
	if cerr != nil {
		return Mark{}, cerr
	}
	return Mark{Row: row, Col: col}, nil
}

// DelMark removes a named mark from the buffer.
func (b Buffer) DelMark(name string) error {
	defer api.Trace("nvim_buf_del_mark")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	ok := api.Current().BufDelMark(types.BufHandle(b), s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return e
	}
	if !ok {
		return &types.DomainError{Msg: fmt.Sprintf("failed to delete mark %q", name)}
	}
	return nil
}
