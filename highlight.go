package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// SetHighlightOpts describes a highlight group definition. Color values
// are names ("Red") or "#rrggbb" strings.
type SetHighlightOpts struct {
	Foreground types.OptionalString
	Background types.OptionalString
	Bold       bool
	Italic     bool
	Underline  bool
	Reverse    bool
}

// MarshalObject encodes the definition as the dictionary the host expects.
func (o *SetHighlightOpts) MarshalObject() (types.Object, error) {
	var d types.Dictionary
	if o == nil {
		return d.Object(), nil
	}
	if o.Foreground.Set {
		d.Set("fg", types.Str(o.Foreground.Value))
	}
	if o.Background.Set {
		d.Set("bg", types.Str(o.Background.Value))
	}
	if o.Bold {
		d.Set("bold", types.Boolean(true))
	}
	if o.Italic {
		d.Set("italic", types.Boolean(true))
	}
	if o.Underline {
		d.Set("underline", types.Boolean(true))
	}
	if o.Reverse {
		d.Set("reverse", types.Boolean(true))
	}
	return d.Object(), nil
}

// HighlightInfos is a decoded highlight group. Unset colors mean the group
// does not define them.
type HighlightInfos struct {
	Foreground types.OptionalInt
	Background types.OptionalInt
	Bold       bool
	Italic     bool
	Underline  bool
	Reverse    bool
}

// UnmarshalObject decodes the dictionary returned by the host, consuming
// the Object.
func (h *HighlightInfos) UnmarshalObject(o *types.Object) error {
	d, err := o.TakeDictionary()
	if err != nil {
		return err
	}
	defer d.Free()
	dec := types.NewDictDecoder(&d)
	if h.Foreground, err = dec.OptionalInt("foreground"); err != nil {
		return err
	}
	if h.Background, err = dec.OptionalInt("background"); err != nil {
		return err
	}
	bold, err := dec.OptionalBool("bold")
	if err != nil {
		return err
	}
	italic, err := dec.OptionalBool("italic")
	if err != nil {
		return err
	}
	underline, err := dec.OptionalBool("underline")
	if err != nil {
		return err
	}
	reverse, err := dec.OptionalBool("reverse")
	if err != nil {
		return err
	}
	h.Bold = bold.Bool()
	h.Italic = italic.Bool()
	h.Underline = underline.Bool()
	h.Reverse = reverse.Bool()
	return nil
}

// SetHl defines (or redefines) a highlight group in the given namespace.
// Namespace 0 is the global one.
func SetHl(nsID int64, name string, opts *SetHighlightOpts) error {
	defer api.Trace("nvim_set_hl")()
	obj, cerr := opts.MarshalObject()
	if cerr != nil {
		return cerr
	}
	d, cerr := obj.TakeDictionary()
	if cerr != nil {
		obj.Free()
		return cerr
	}
	defer d.Free()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	api.Current().SetHl(nsID, s.NonOwning(), d.NonOwning(), &err)
	return err.Take()
}

// GetHlByName returns the definition of a highlight group. With rgb set,
// colors are 24-bit values, otherwise terminal ones.
func GetHlByName(name string, rgb bool) (HighlightInfos, error) {
	defer api.Trace("nvim_get_hl_by_name")()
	s := types.NewString(name)
	defer s.Free()
	err := types.NewError()
	defer err.Free()
	d := api.Current().GetHlByName(s.NonOwning(), rgb, &err)
	if e := err.Take(); e != nil {
		return HighlightInfos{}, e
	}
	obj := d.Object()
	var infos HighlightInfos
	if cerr := infos.UnmarshalObject(&obj); cerr != nil {
		obj.Free()
		return HighlightInfos{}, cerr
	}
	return infos, nil
}

// GetHlIDByName returns the id of a highlight group, allocating one if the
// group does not exist yet.
func GetHlIDByName(name string) int64 {
	defer api.Trace("nvim_get_hl_id_by_name")()
	s := types.NewString(name)
	defer s.Free()
	return api.Current().GetHlIDByName(s.NonOwning())
}
