package common

import (
	"fmt"
	"strings"
)

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace        = 32 // Spacebar (ASCII)
	KeyApostrophe   = 39
	KeyComma        = 44
	KeyMinus        = 45
	KeyPeriod       = 46
	KeySlash        = 47
	Key0            = 48 // Digits 0-9 are contiguous (ASCII)
	Key9            = 57
	KeySemicolon    = 59
	KeyEqual        = 61
	KeyA            = 65 // Letters A-Z are contiguous (ASCII)
	KeyD            = 68
	KeyR            = 82
	KeyS            = 83
	KeyW            = 87
	KeyZ            = 90
	KeyLeftBracket  = 91
	KeyBackslash    = 92
	KeyRightBracket = 93
	KeyGraveAccent  = 96

	KeyEsc         = 256 // Escape key (GLFW), reserved for closing the window
	KeyEnter       = 257
	KeyTab         = 258
	KeyBackspace   = 259
	KeyInsert      = 260
	KeyDelete      = 261
	KeyRight       = 262
	KeyLeft        = 263
	KeyDown        = 264
	KeyUp          = 265
	KeyPageUp      = 266
	KeyPageDown    = 267
	KeyHome        = 268
	KeyEnd         = 269
	KeyCapsLock    = 280
	KeyScrollLock  = 281
	KeyNumLock     = 282
	KeyPrintScreen = 283
	KeyPause       = 284
	KeyF1          = 290 // F1-F25 are contiguous (GLFW)
	KeyF25         = 314
	KeyKP0         = 320 // Keypad 0-9 are contiguous (GLFW)
	KeyKPDecimal   = 330
	KeyKPDivide    = 331
	KeyKPMultiply  = 332
	KeyKPSubtract  = 333
	KeyKPAdd       = 334
	KeyKPEnter     = 335
	KeyKPEqual     = 336

	KeyLeftShift    = 340
	KeyLeftControl  = 341
	KeyLeftAlt      = 342
	KeyLeftSuper    = 343
	KeyRightShift   = 344
	KeyRightControl = 345
	KeyRightAlt     = 346
	KeyRightSuper   = 347
	KeyMenu         = 348
)

// keyNames maps the lower-case names accepted in key binding configuration to key codes.
// Letters, digits, function keys and keypad keys are filled in by init.
var keyNames = map[string]uint32{
	"space":         KeySpace,
	"apostrophe":    KeyApostrophe,
	"comma":         KeyComma,
	"minus":         KeyMinus,
	"period":        KeyPeriod,
	"slash":         KeySlash,
	"semicolon":     KeySemicolon,
	"equal":         KeyEqual,
	"left_bracket":  KeyLeftBracket,
	"backslash":     KeyBackslash,
	"right_bracket": KeyRightBracket,
	"grave":         KeyGraveAccent,

	"enter":        KeyEnter,
	"tab":          KeyTab,
	"backspace":    KeyBackspace,
	"insert":       KeyInsert,
	"delete":       KeyDelete,
	"right":        KeyRight,
	"left":         KeyLeft,
	"down":         KeyDown,
	"up":           KeyUp,
	"page_up":      KeyPageUp,
	"page_down":    KeyPageDown,
	"home":         KeyHome,
	"end":          KeyEnd,
	"caps_lock":    KeyCapsLock,
	"scroll_lock":  KeyScrollLock,
	"num_lock":     KeyNumLock,
	"print_screen": KeyPrintScreen,
	"pause":        KeyPause,

	"kp_decimal":  KeyKPDecimal,
	"kp_divide":   KeyKPDivide,
	"kp_multiply": KeyKPMultiply,
	"kp_subtract": KeyKPSubtract,
	"kp_add":      KeyKPAdd,
	"kp_enter":    KeyKPEnter,
	"kp_equal":    KeyKPEqual,

	"left_shift":    KeyLeftShift,
	"left_control":  KeyLeftControl,
	"left_alt":      KeyLeftAlt,
	"left_super":    KeyLeftSuper,
	"right_shift":   KeyRightShift,
	"right_control": KeyRightControl,
	"right_alt":     KeyRightAlt,
	"right_super":   KeyRightSuper,
	"menu":          KeyMenu,

	// Short forms bind the left-hand key.
	"shift": KeyLeftShift,
	"ctrl":  KeyLeftControl,
	"alt":   KeyLeftAlt,
	"super": KeyLeftSuper,
}

// reservedKeyNames are keys the window consumes before input dispatch.
var reservedKeyNames = map[string]bool{
	"escape": true,
	"esc":    true,
}

func init() {
	for c := KeyA; c <= KeyZ; c++ {
		keyNames[string(rune('a'+c-KeyA))] = uint32(c)
	}
	for c := Key0; c <= Key9; c++ {
		keyNames[string(rune('0'+c-Key0))] = uint32(c)
	}
	for c := KeyF1; c <= KeyF25; c++ {
		keyNames[fmt.Sprintf("f%d", c-KeyF1+1)] = uint32(c)
	}
	for c := KeyKP0; c < KeyKP0+10; c++ {
		keyNames[fmt.Sprintf("kp_%d", c-KeyKP0)] = uint32(c)
	}
}

// KeyByName resolves a key name such as "left", "space", "q" or "f1" to its key code.
// Lookup is case-insensitive and ignores surrounding whitespace. Reserved keys are not bindable.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown or reserved
func KeyByName(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// KeyReserved reports whether name is a key the window handles itself, such as escape.
func KeyReserved(name string) bool {
	return reservedKeyNames[strings.ToLower(strings.TrimSpace(name))]
}
