package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// Command executes an ex command.
func Command(cmd string) error {
	defer api.Trace("nvim_command")()
	s := types.NewString(cmd)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().Command(s.NonOwning(), &err)
	return err.Take()
}

// Eval evaluates a vimscript expression. The caller owns the returned
// Object.
func Eval(expr string) (types.Object, error) {
	defer api.Trace("nvim_eval")()
	s := types.NewString(expr)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().Eval(s.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return types.Nil(), e
	}
	return out, nil
}

// Exec executes a multiline block of ex commands. With output set, the
// captured output is returned.
func Exec(src string, output bool) (string, error) {
	defer api.Trace("nvim_exec")()
	s := types.NewString(src)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().Exec(s.NonOwning(), output, &err)
	if e := err.Take(); e != nil {
		return "", e
	}
	defer out.Free()
	return out.String(), nil
}

// CallFunction calls a vimscript function with the given arguments, each
// converted through ToObject. The caller owns the returned Object.
func CallFunction(fn string, args ...any) (types.Object, error) {
	defer api.Trace("nvim_call_function")()
	var carr types.Array
	for _, a := range args {
		obj, cerr := types.ToObject(a)
		if cerr != nil {
			carr.Free()
			return types.Nil(), cerr
		}
		carr.Push(obj)
	}
	defer carr.Free()
	s := types.NewString(fn)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	out := api.Current().CallFunction(s.NonOwning(), carr.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return types.Nil(), e
	}
	return out, nil
}
