package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// Window is a handle to an editor window. The zero value is not a valid
// handle; obtain one from GetCurrentWin, OpenWin or TabPage.Wins.
type Window types.WinHandle

// Cursor returns the (1,0)-indexed cursor position in the window.
func (w Window) Cursor() (row, col int64, err error) {
	defer api.Trace("nvim_win_get_cursor")()
	rec := types.NewError()
	defer rec.Free()
	pos := api.Current().WinGetCursor(types.WinHandle(w), &rec)
	if e := rec.Take(); e != nil {
		return 0, 0, e
	}
	defer pos.Free()
	if pos.Len() != 2 {
		return 0, 0, &types.DomainError{Msg: "cursor position is not a [row, col] pair"}
	}
	if row, err = pos.At(0).AsInteger(); err != nil {
		return 0, 0, err
	}
	if col, err = pos.At(1).AsInteger(); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// SetCursor moves the cursor to the (1,0)-indexed position.
func (w Window) SetCursor(row, col int64) error {
	defer api.Trace("nvim_win_set_cursor")()
	pos := types.NewArray(types.Integer(row), types.Integer(col))
	defer pos.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().WinSetCursor(types.WinHandle(w), pos.NonOwning(), &err)
	return err.Take()
}

// Height returns the window height in rows.
func (w Window) Height() (int64, error) {
	defer api.Trace("nvim_win_get_height")()
	err := types.NewError()
	defer err.Free()
	h := api.Current().WinGetHeight(types.WinHandle(w), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return h, nil
}

// SetHeight resizes the window to the given number of rows.
func (w Window) SetHeight(height int64) error {
	defer api.Trace("nvim_win_set_height")()
	err := types.NewError()
	defer err.Free()
	api.Current().WinSetHeight(types.WinHandle(w), height, &err)
	return err.Take()
}

// Width returns the window width in columns.
func (w Window) Width() (int64, error) {
	defer api.Trace("nvim_win_get_width")()
	err := types.NewError()
	defer err.Free()
	width := api.Current().WinGetWidth(types.WinHandle(w), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return width, nil
}

// SetWidth resizes the window to the given number of columns.
func (w Window) SetWidth(width int64) error {
	defer api.Trace("nvim_win_set_width")()
	err := types.NewError()
	defer err.Free()
	api.Current().WinSetWidth(types.WinHandle(w), width, &err)
	return err.Take()
}

// Buf returns the buffer shown in the window.
func (w Window) Buf() (Buffer, error) {
	defer api.Trace("nvim_win_get_buf")()
	err := types.NewError()
	defer err.Free()
	buf := api.Current().WinGetBuf(types.WinHandle(w), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return Buffer(buf), nil
}

// Position returns the window's (row, col) position on the grid.
func (w Window) Position() (row, col int64, err error) {
	defer api.Trace("nvim_win_get_position")()
	rec := types.NewError()
	defer rec.Free()
	pos := api.Current().WinGetPosition(types.WinHandle(w), &rec)
	if e := rec.Take(); e != nil {
		return 0, 0, e
	}
	defer pos.Free()
	if pos.Len() != 2 {
		return 0, 0, &types.DomainError{Msg: "window position is not a [row, col] pair"}
	}
	if row, err = pos.At(0).AsInteger(); err != nil {
		return 0, 0, err
	}
	if col, err = pos.At(1).AsInteger(); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// Tabpage returns the tabpage containing the window.
func (w Window) Tabpage() (TabPage, error) {
	defer api.Trace("nvim_win_get_tabpage")()
	err := types.NewError()
	defer err.Free()
	tab := api.Current().WinGetTabpage(types.WinHandle(w), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return TabPage(tab), nil
}

// Close closes the window. With force set, unsaved changes in its buffer
// are discarded.
func (w Window) Close(force bool) error {
	defer api.Trace("nvim_win_close")()
	err := types.NewError()
	defer err.Free()
	api.Current().WinClose(types.WinHandle(w), force, &err)
	return err.Take()
}
