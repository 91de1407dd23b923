package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// OptionOpts scopes an option read or write. With none of the fields set,
// the option is accessed like :set does.
type OptionOpts struct {
	// Scope is "global" or "local", mirroring :setglobal and :setlocal.
	Scope types.OptionalString
	// Buf targets a buffer-local option. Implies the local scope.
	Buf *Buffer
	// Win targets a window-local option. Implies the local scope.
	Win *Window
}

func (o *OptionOpts) toDictionary() types.Dictionary {
	var d types.Dictionary
	if o == nil {
		return d
	}
	if o.Scope.Set {
		d.Set("scope", types.Str(o.Scope.Value))
	}
	if o.Buf != nil {
		d.Set("buf", types.BufferObject(types.BufHandle(*o.Buf)))
	}
	if o.Win != nil {
		d.Set("win", types.WindowObject(types.WinHandle(*o.Win)))
	}
	return d
}

// GetOptionValue returns an option value. The caller owns the returned
// Object; its kind depends on the option (boolean, integer or string).
func GetOptionValue(name string, opts *OptionOpts) (types.Object, error) {
	defer api.Trace("nvim_get_option_value")()
	s := types.NewString(name)
	defer s.Free()
	d := opts.toDictionary()
	defer d.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().GetOptionValue(s.NonOwning(), d.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return types.Nil(), e
	}
	return out, nil
}

// SetOptionValue sets an option from any supported Go value.
func SetOptionValue(name string, value any, opts *OptionOpts) error {
	defer api.Trace("nvim_set_option_value")()
	obj, cerr := types.ToObject(value)
	if cerr != nil {
		return cerr
	}
	defer obj.Free()
	s := types.NewString(name)
	defer s.Free()
	d := opts.toDictionary()
	defer d.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().SetOptionValue(s.NonOwning(), obj.NonOwning(), d.NonOwning(), &err)
	return err.Take()
}
