package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// TabPage is a handle to an editor tabpage.
type TabPage types.TabHandle

// Wins returns the windows in the tabpage.
func (t TabPage) Wins() ([]Window, error) {
	defer api.Trace("nvim_tabpage_list_wins")()
	err := types.NewError()
	defer err.Free()
	arr := api.Current().TabListWins(types.TabHandle(t), &err)
	if e := err.Take(); e != nil {
		return nil, e
	}
	defer arr.Free()
	out := make([]Window, 0, arr.Len())
	for _, o := range arr.Items() {
		h, cerr := o.AsWindow()
		if cerr != nil {
			return nil, cerr
		}
		out = append(out, Window(h))
	}
	return out, nil
}

// Win returns the active window of the tabpage.
func (t TabPage) Win() (Window, error) {
	defer api.Trace("nvim_tabpage_get_win")()
	err := types.NewError()
	defer err.Free()
	win := api.Current().TabGetWin(types.TabHandle(t), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return Window(win), nil
}

// Number returns the tabpage number, which changes as tabpages are moved
// or closed, unlike the handle.
func (t TabPage) Number() (int64, error) {
	defer api.Trace("nvim_tabpage_get_number")()
	err := types.NewError()
	defer err.Free()
	n := api.Current().TabGetNumber(types.TabHandle(t), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	return n, nil
}

// IsValid reports whether the handle refers to an existing tabpage.
func (t TabPage) IsValid() bool {
	defer api.Trace("nvim_tabpage_is_valid")()
	return api.Current().TabIsValid(types.TabHandle(t))
}
