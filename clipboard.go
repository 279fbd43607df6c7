package viewports

// ClipboardProvider abstracts system clipboard access.
//
// The WindowsManager implements it by routing through a native window:
//
//	func (m *WindowsManager) GetText() string {
//	    return m.clipboardWindow().ClipboardText()
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// clipboardWindow picks the window clipboard calls go through: the focused
// secondary window if any, else the main window.
func (m *WindowsManager) clipboardWindow() NativeWindow {
	for _, s := range m.handles.slots {
		if s.win != nil && s.win.native.Focused() {
			return s.win.native
		}
	}
	return m.main.Native()
}

// GetText retrieves clipboard text through the focused window.
func (m *WindowsManager) GetText() string {
	return m.clipboardWindow().ClipboardText()
}

// SetText stores clipboard text through the focused window.
func (m *WindowsManager) SetText(text string) {
	m.clipboardWindow().SetClipboardText(text)
}
