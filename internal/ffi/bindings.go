//go:build darwin || linux

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// symbols is the table of host entry points. Every field is registered
// against the loaded library with purego, so the struct doubles as the
// single place the C signatures are written down.
type symbols struct {
	// Global.
	createBuf      func(listed, scratch bool, err *CError) int32
	delCurrentLine func(err *CError)
	getCurrentLine func(err *CError) CString
	setCurrentLine func(line CString, err *CError)
	getVar         func(name CString, err *CError) CObject
	setVar         func(name CString, value CObject, err *CError)
	delVar         func(name CString, err *CError)
	getCurrentBuf  func() int32
	setCurrentBuf  func(buf int32, err *CError)
	getCurrentWin  func() int32
	listBufs       func() CArray
	delMark        func(name CString, err *CError) bool
	getColorByName func(name CString) int64
	strwidth       func(text CString, err *CError) int64
	echo           func(chunks CArray, history bool, opts CDictionary, err *CError)
	errWrite       func(s CString)
	errWriteln     func(s CString)
	outWrite       func(s CString)
	feedkeys       func(keys, mode CString, escapeKs bool)
	setKeymap      func(mode, lhs, rhs CString, opts CDictionary, err *CError)
	delKeymap      func(mode, lhs CString, err *CError)
	getOptionValue func(name CString, opts CDictionary, err *CError) CObject
	setOptionValue func(name CString, value CObject, opts CDictionary, err *CError)
	setHl          func(nsID int64, name CString, val CDictionary, err *CError)
	getHlByName    func(name CString, rgb bool, err *CError) CDictionary
	getHlIDByName  func(name CString) int64
	openWin        func(buf int32, enter bool, config CDictionary, err *CError) int32

	// Vimscript.
	command      func(cmd CString, err *CError)
	eval         func(expr CString, err *CError) CObject
	exec         func(src CString, output bool, err *CError) CString
	callFunction func(fn CString, args CArray, err *CError) CObject

	// Buffers.
	bufLineCount func(buf int32, err *CError) int64
	bufGetLines  func(buf int32, start, end int64, strict bool, err *CError) CArray
	bufSetLines  func(buf int32, start, end int64, strict bool, repl CArray, err *CError)
	bufGetName   func(buf int32, err *CError) CString
	bufSetName   func(buf int32, name CString, err *CError)
	bufGetVar    func(buf int32, name CString, err *CError) CObject
	bufSetVar    func(buf int32, name CString, value CObject, err *CError)
	bufDelVar    func(buf int32, name CString, err *CError)
	bufIsValid   func(buf int32) bool
	bufIsLoaded  func(buf int32) bool
	bufDelete    func(buf int32, opts CDictionary, err *CError)
	bufSetMark   func(buf int32, name CString, line, col int64, opts CDictionary, err *CError) bool
	bufGetMark   func(buf int32, name CString, err *CError) CArray
	bufDelMark   func(buf int32, name CString, err *CError) bool

	// Windows.
	winGetCursor   func(win int32, err *CError) CArray
	winSetCursor   func(win int32, pos CArray, err *CError)
	winGetHeight   func(win int32, err *CError) int64
	winSetHeight   func(win int32, height int64, err *CError)
	winGetWidth    func(win int32, err *CError) int64
	winSetWidth    func(win int32, width int64, err *CError)
	winGetBuf      func(win int32, err *CError) int32
	winGetPosition func(win int32, err *CError) CArray
	winGetTabpage  func(win int32, err *CError) int32
	winClose       func(win int32, force bool, err *CError)

	// Tabpages.
	tabListWins  func(tab int32, err *CError) CArray
	tabGetWin    func(tab int32, err *CError) int32
	tabGetNumber func(tab int32, err *CError) int64
	tabIsValid   func(tab int32) bool
}

func registerSymbols(lib uintptr) *symbols {
	s := &symbols{}
	purego.RegisterLibFunc(&s.createBuf, lib, "nvim_create_buf")
	purego.RegisterLibFunc(&s.delCurrentLine, lib, "nvim_del_current_line")
	purego.RegisterLibFunc(&s.getCurrentLine, lib, "nvim_get_current_line")
	purego.RegisterLibFunc(&s.setCurrentLine, lib, "nvim_set_current_line")
	purego.RegisterLibFunc(&s.getVar, lib, "nvim_get_var")
	purego.RegisterLibFunc(&s.setVar, lib, "nvim_set_var")
	purego.RegisterLibFunc(&s.delVar, lib, "nvim_del_var")
	purego.RegisterLibFunc(&s.getCurrentBuf, lib, "nvim_get_current_buf")
	purego.RegisterLibFunc(&s.setCurrentBuf, lib, "nvim_set_current_buf")
	purego.RegisterLibFunc(&s.getCurrentWin, lib, "nvim_get_current_win")
	purego.RegisterLibFunc(&s.listBufs, lib, "nvim_list_bufs")
	purego.RegisterLibFunc(&s.delMark, lib, "nvim_del_mark")
	purego.RegisterLibFunc(&s.getColorByName, lib, "nvim_get_color_by_name")
	purego.RegisterLibFunc(&s.strwidth, lib, "nvim_strwidth")
	purego.RegisterLibFunc(&s.echo, lib, "nvim_echo")
	purego.RegisterLibFunc(&s.errWrite, lib, "nvim_err_write")
	purego.RegisterLibFunc(&s.errWriteln, lib, "nvim_err_writeln")
	purego.RegisterLibFunc(&s.outWrite, lib, "nvim_out_write")
	purego.RegisterLibFunc(&s.feedkeys, lib, "nvim_feedkeys")
	purego.RegisterLibFunc(&s.setKeymap, lib, "nvim_set_keymap")
	purego.RegisterLibFunc(&s.delKeymap, lib, "nvim_del_keymap")
	purego.RegisterLibFunc(&s.getOptionValue, lib, "nvim_get_option_value")
	purego.RegisterLibFunc(&s.setOptionValue, lib, "nvim_set_option_value")
	purego.RegisterLibFunc(&s.setHl, lib, "nvim_set_hl")
	purego.RegisterLibFunc(&s.getHlByName, lib, "nvim_get_hl_by_name")
	purego.RegisterLibFunc(&s.getHlIDByName, lib, "nvim_get_hl_id_by_name")
	purego.RegisterLibFunc(&s.openWin, lib, "nvim_open_win")
	purego.RegisterLibFunc(&s.command, lib, "nvim_command")
	purego.RegisterLibFunc(&s.eval, lib, "nvim_eval")
	purego.RegisterLibFunc(&s.exec, lib, "nvim_exec")
	purego.RegisterLibFunc(&s.callFunction, lib, "nvim_call_function")
	purego.RegisterLibFunc(&s.bufLineCount, lib, "nvim_buf_line_count")
	purego.RegisterLibFunc(&s.bufGetLines, lib, "nvim_buf_get_lines")
	purego.RegisterLibFunc(&s.bufSetLines, lib, "nvim_buf_set_lines")
	purego.RegisterLibFunc(&s.bufGetName, lib, "nvim_buf_get_name")
	purego.RegisterLibFunc(&s.bufSetName, lib, "nvim_buf_set_name")
	purego.RegisterLibFunc(&s.bufGetVar, lib, "nvim_buf_get_var")
	purego.RegisterLibFunc(&s.bufSetVar, lib, "nvim_buf_set_var")
	purego.RegisterLibFunc(&s.bufDelVar, lib, "nvim_buf_del_var")
	purego.RegisterLibFunc(&s.bufIsValid, lib, "nvim_buf_is_valid")
	purego.RegisterLibFunc(&s.bufIsLoaded, lib, "nvim_buf_is_loaded")
	purego.RegisterLibFunc(&s.bufDelete, lib, "nvim_buf_delete")
	purego.RegisterLibFunc(&s.bufSetMark, lib, "nvim_buf_set_mark")
	purego.RegisterLibFunc(&s.bufGetMark, lib, "nvim_buf_get_mark")
	purego.RegisterLibFunc(&s.bufDelMark, lib, "nvim_buf_del_mark")
	purego.RegisterLibFunc(&s.winGetCursor, lib, "nvim_win_get_cursor")
	purego.RegisterLibFunc(&s.winSetCursor, lib, "nvim_win_set_cursor")
	purego.RegisterLibFunc(&s.winGetHeight, lib, "nvim_win_get_height")
	purego.RegisterLibFunc(&s.winSetHeight, lib, "nvim_win_set_height")
	purego.RegisterLibFunc(&s.winGetWidth, lib, "nvim_win_get_width")
	purego.RegisterLibFunc(&s.winSetWidth, lib, "nvim_win_set_width")
	purego.RegisterLibFunc(&s.winGetBuf, lib, "nvim_win_get_buf")
	purego.RegisterLibFunc(&s.winGetPosition, lib, "nvim_win_get_position")
	purego.RegisterLibFunc(&s.winGetTabpage, lib, "nvim_win_get_tabpage")
	purego.RegisterLibFunc(&s.winClose, lib, "nvim_win_close")
	purego.RegisterLibFunc(&s.tabListWins, lib, "nvim_tabpage_list_wins")
	purego.RegisterLibFunc(&s.tabGetWin, lib, "nvim_tabpage_get_win")
	purego.RegisterLibFunc(&s.tabGetNumber, lib, "nvim_tabpage_get_number")
	purego.RegisterLibFunc(&s.tabIsValid, lib, "nvim_tabpage_is_valid")
	return s
}

// loadSymbols resolves the host entry points against the process itself.
// That requires the binary to be loaded as a plugin into a running host.
func loadSymbols() (*symbols, error) {
	if _, err := purego.Dlsym(purego.RTLD_DEFAULT, "nvim_get_current_buf"); err != nil {
		return nil, fmt.Errorf("host symbols not present in this process: %w", err)
	}
	return registerSymbols(purego.RTLD_DEFAULT), nil
}

// loadSymbolsFrom dlopens a standalone host library, mainly for testing
// the binding layer against a stub.
func loadSymbolsFrom(path string) (*symbols, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("load host library %q: %w", path, err)
	}
	return registerSymbols(lib), nil
}
