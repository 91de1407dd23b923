package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/types"
)

// WindowConfig describes a floating window. Relative, Row, Col, Width and
// Height are required; the rest defaults to the host's behavior when
// unset.
type WindowConfig struct {
	// Relative anchors the float to "editor", "win" or "cursor".
	Relative string
	Row      float64
	Col      float64
	Width    int64
	Height   int64

	// Win is the window Row and Col are relative to, for Relative "win".
	Win       types.OptionalInt
	Focusable types.OptionalBool
	ZIndex    types.OptionalInt
	Border    types.OptionalString
}

// MarshalObject encodes the config as the dictionary the host expects.
func (c *WindowConfig) MarshalObject() (types.Object, error) {
	var d types.Dictionary
	if c == nil {
		return d.Object(), nil
	}
	d.Set("relative", types.Str(c.Relative))
	d.Set("row", types.Float(c.Row))
	d.Set("col", types.Float(c.Col))
	d.Set("width", types.Integer(c.Width))
	d.Set("height", types.Integer(c.Height))
	if c.Win.Set {
		d.Set("win", types.Integer(c.Win.Value))
	}
	if c.Focusable.Set {
		d.Set("focusable", types.Boolean(c.Focusable.Value))
	}
	if c.ZIndex.Set {
		d.Set("zindex", types.Integer(c.ZIndex.Value))
	}
	if c.Border.Set {
		d.Set("border", types.Str(c.Border.Value))
	}
	return d.Object(), nil
}

// UnmarshalObject decodes a config dictionary, consuming the Object. A
// missing required field fails with a MissingFieldError, a field of the
// wrong kind with a ConversionError.
func (c *WindowConfig) UnmarshalObject(o *types.Object) error {
	d, err := o.TakeDictionary()
	if err != nil {
		return err
	}
	defer d.Free()
	dec := types.NewDictDecoder(&d)
	if c.Relative, err = dec.String("relative"); err != nil {
		return err
	}
	if c.Row, err = dec.Float("row"); err != nil {
		return err
	}
	if c.Col, err = dec.Float("col"); err != nil {
		return err
	}
	if c.Width, err = dec.Int("width"); err != nil {
		return err
	}
	if c.Height, err = dec.Int("height"); err != nil {
		return err
	}
	if c.Win, err = dec.OptionalInt("win"); err != nil {
		return err
	}
	if c.Focusable, err = dec.OptionalBool("focusable"); err != nil {
		return err
	}
	if c.ZIndex, err = dec.OptionalInt("zindex"); err != nil {
		return err
	}
	if c.Border, err = dec.OptionalString("border"); err != nil {
		return err
	}
	return nil
}

// OpenWin opens a floating window showing the given buffer. With enter
// set, the new window becomes the current one.
func OpenWin(buf Buffer, enter bool, config *WindowConfig) (Window, error) {
	defer api.Trace("nvim_open_win")()
	obj, cerr := config.MarshalObject()
	if cerr != nil {
		return 0, cerr
	}
	d, cerr := obj.TakeDictionary()
	if cerr != nil {
		obj.Free()
		return 0, cerr
	}
	defer d.Free()
	err := types.NewError()
	defer err.Free()
	win := api.Current().OpenWin(types.BufHandle(buf), enter, d.NonOwning(), &err)
	if e := err.Take(); e != nil {
		return 0, e
	}
	if win == 0 {
		return 0, &types.DomainError{Msg: "failed to open window"}
	}
	return Window(win), nil
}
