package viewports

import "strconv"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButton4
	MouseButton5
	MouseButtonCount
)

// Key represents a keyboard key as the GUI library understands it.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual
	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	KeyCount
)

// InputState holds the level-triggered input state of one native window.
// It is populated by the windowing backend and read once per frame by the
// Controller, which merges the states of all windows.
//
// Besides the real button state, each mouse button carries a synthetic
// override. The bridge sets it on windows spawned by dragging a panel out of
// its parent, so the drag keeps going although the new window never saw the
// press. It reads as "down" until the window reports a real transition for
// that button, or until the Controller sees the button released in any
// window, since the release may land on the parent instead.
type InputState struct {
	// Cursor position relative to the window's client area.
	MouseX, MouseY float32

	mouseDown      [MouseButtonCount]bool
	syntheticMouse [MouseButtonCount]bool
	mouseReleased  [MouseButtonCount]bool

	keyDown [KeyCount]bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a real button transition and drops any synthetic
// override for that button.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseDown[button] = down
	s.syntheticMouse[button] = false
	if !down {
		s.mouseReleased[button] = true
	}
}

// TakeMouseRelease reports whether button was released since the last call.
func (s *InputState) TakeMouseRelease(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	r := s.mouseReleased[button]
	s.mouseReleased[button] = false
	return r
}

// SetSyntheticMouseDown forces a button to read as held until the next real
// transition for it in this window. The Controller also clears it when the
// button is released in another window.
func (s *InputState) SetSyntheticMouseDown(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.syntheticMouse[button] = down
}

// MouseDown returns true if a mouse button is held, for real or synthetically.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button] || s.syntheticMouse[button]
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// Ctrl reports whether either control key is held.
func (s *InputState) Ctrl() bool { return s.keyDown[KeyLeftCtrl] || s.keyDown[KeyRightCtrl] }

// Shift reports whether either shift key is held.
func (s *InputState) Shift() bool { return s.keyDown[KeyLeftShift] || s.keyDown[KeyRightShift] }

// Alt reports whether either alt key is held.
func (s *InputState) Alt() bool { return s.keyDown[KeyLeftAlt] || s.keyDown[KeyRightAlt] }

// Super reports whether either super key is held.
func (s *InputState) Super() bool { return s.keyDown[KeyLeftSuper] || s.keyDown[KeyRightSuper] }

// ReleaseKeys clears every held key. Backends call it when a window loses
// focus because the release may be delivered to another window.
func (s *InputState) ReleaseKeys() {
	s.keyDown = [KeyCount]bool{}
}

var keyNames = map[Key]string{
	KeyNone:         "--",
	KeyTab:          "Tab",
	KeyLeftArrow:    "Left",
	KeyRightArrow:   "Right",
	KeyUpArrow:      "Up",
	KeyDownArrow:    "Down",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyBackspace:    "Backspace",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Esc",
	KeyKeypadEnter:  "KpEnter",
	KeyLeftShift:    "LShift",
	KeyLeftCtrl:     "LCtrl",
	KeyLeftAlt:      "LAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightShift:   "RShift",
	KeyRightCtrl:    "RCtrl",
	KeyRightAlt:     "RAlt",
	KeyRightSuper:   "RSuper",
	KeyMenu:         "Menu",
	KeyCapsLock:     "CapsLock",
	KeyPrintScreen:  "PrtSc",
	KeyPause:        "Pause",
	KeyScrollLock:   "ScrLk",
	KeyNumLock:      "NumLk",
	KeyGraveAccent:  "`",
	KeyApostrophe:   "'",
	KeyComma:        ",",
	KeyMinus:        "-",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeySemicolon:    ";",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyBackslash:    "\\",
	KeyRightBracket: "]",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyKeypad0 && k <= KeyKeypad9:
		return "Kp" + string(rune('0'+k-KeyKeypad0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
