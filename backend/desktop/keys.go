package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/viewports"
)

var glfwKeys = map[glfw.Key]viewports.Key{
	glfw.KeyTab:          viewports.KeyTab,
	glfw.KeyLeft:         viewports.KeyLeftArrow,
	glfw.KeyRight:        viewports.KeyRightArrow,
	glfw.KeyUp:           viewports.KeyUpArrow,
	glfw.KeyDown:         viewports.KeyDownArrow,
	glfw.KeyPageUp:       viewports.KeyPageUp,
	glfw.KeyPageDown:     viewports.KeyPageDown,
	glfw.KeyHome:         viewports.KeyHome,
	glfw.KeyEnd:          viewports.KeyEnd,
	glfw.KeyInsert:       viewports.KeyInsert,
	glfw.KeyDelete:       viewports.KeyDelete,
	glfw.KeyBackspace:    viewports.KeyBackspace,
	glfw.KeySpace:        viewports.KeySpace,
	glfw.KeyEnter:        viewports.KeyEnter,
	glfw.KeyEscape:       viewports.KeyEscape,
	glfw.KeyApostrophe:   viewports.KeyApostrophe,
	glfw.KeyComma:        viewports.KeyComma,
	glfw.KeyMinus:        viewports.KeyMinus,
	glfw.KeyPeriod:       viewports.KeyPeriod,
	glfw.KeySlash:        viewports.KeySlash,
	glfw.KeySemicolon:    viewports.KeySemicolon,
	glfw.KeyEqual:        viewports.KeyEqual,
	glfw.KeyLeftBracket:  viewports.KeyLeftBracket,
	glfw.KeyBackslash:    viewports.KeyBackslash,
	glfw.KeyRightBracket: viewports.KeyRightBracket,
	glfw.KeyGraveAccent:  viewports.KeyGraveAccent,
	glfw.KeyCapsLock:     viewports.KeyCapsLock,
	glfw.KeyScrollLock:   viewports.KeyScrollLock,
	glfw.KeyNumLock:      viewports.KeyNumLock,
	glfw.KeyPrintScreen:  viewports.KeyPrintScreen,
	glfw.KeyPause:        viewports.KeyPause,
	glfw.KeyKPDecimal:    viewports.KeyKeypadDecimal,
	glfw.KeyKPDivide:     viewports.KeyKeypadDivide,
	glfw.KeyKPMultiply:   viewports.KeyKeypadMultiply,
	glfw.KeyKPSubtract:   viewports.KeyKeypadSubtract,
	glfw.KeyKPAdd:        viewports.KeyKeypadAdd,
	glfw.KeyKPEnter:      viewports.KeyKeypadEnter,
	glfw.KeyKPEqual:      viewports.KeyKeypadEqual,
	glfw.KeyLeftShift:    viewports.KeyLeftShift,
	glfw.KeyLeftControl:  viewports.KeyLeftCtrl,
	glfw.KeyLeftAlt:      viewports.KeyLeftAlt,
	glfw.KeyLeftSuper:    viewports.KeyLeftSuper,
	glfw.KeyRightShift:   viewports.KeyRightShift,
	glfw.KeyRightControl: viewports.KeyRightCtrl,
	glfw.KeyRightAlt:     viewports.KeyRightAlt,
	glfw.KeyRightSuper:   viewports.KeyRightSuper,
	glfw.KeyMenu:         viewports.KeyMenu,
}

// translateKey maps a GLFW key to a viewports key. Contiguous ranges are
// computed, the rest come from glfwKeys.
func translateKey(key glfw.Key) viewports.Key {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return viewports.Key0 + viewports.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return viewports.KeyA + viewports.Key(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return viewports.KeyF1 + viewports.Key(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return viewports.KeyKeypad0 + viewports.Key(key-glfw.KeyKP0)
	}
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return viewports.KeyNone
}

// translateMouseButton maps a GLFW mouse button; ok is false for buttons
// past the fifth.
func translateMouseButton(button glfw.MouseButton) (viewports.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return viewports.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return viewports.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return viewports.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return viewports.MouseButton4, true
	case glfw.MouseButton5:
		return viewports.MouseButton5, true
	default:
		return 0, false
	}
}
