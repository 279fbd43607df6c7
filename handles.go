package viewports

// WindowHandle names a secondary window owned by a WindowsManager. It is
// what a Viewport stores instead of a pointer. The zero value names no
// window, and a handle whose window was destroyed never resolves again,
// even after its slot is reused.
type WindowHandle struct {
	index uint32 // slot index + 1
	gen   uint32
}

// IsZero reports whether h names no window.
func (h WindowHandle) IsZero() bool { return h.index == 0 }

type handleSlot struct {
	gen uint32
	win *viewportWindow
	vp  *Viewport
}

// handleTable maps handles to windows and their viewports.
type handleTable struct {
	slots []handleSlot
	free  []uint32
	live  int
}

func (t *handleTable) insert(win *viewportWindow, vp *Viewport) WindowHandle {
	var i uint32
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, handleSlot{})
		i = uint32(len(t.slots) - 1)
	}
	s := &t.slots[i]
	s.gen++
	s.win = win
	s.vp = vp
	t.live++
	return WindowHandle{index: i + 1, gen: s.gen}
}

func (t *handleTable) slot(h WindowHandle) *handleSlot {
	if h.index == 0 || int(h.index) > len(t.slots) {
		return nil
	}
	s := &t.slots[h.index-1]
	if s.gen != h.gen || s.win == nil {
		return nil
	}
	return s
}

func (t *handleTable) get(h WindowHandle) (*viewportWindow, *Viewport, bool) {
	s := t.slot(h)
	if s == nil {
		return nil, nil, false
	}
	return s.win, s.vp, true
}

// remove frees h and returns the window it named.
func (t *handleTable) remove(h WindowHandle) (*viewportWindow, bool) {
	s := t.slot(h)
	if s == nil {
		return nil, false
	}
	win := s.win
	s.win = nil
	s.vp = nil
	t.free = append(t.free, h.index-1)
	t.live--
	return win, true
}

func (t *handleTable) len() int { return t.live }

// handles returns every live handle in slot order.
func (t *handleTable) handles() []WindowHandle {
	out := make([]WindowHandle, 0, t.live)
	for i, s := range t.slots {
		if s.win != nil {
			out = append(out, WindowHandle{index: uint32(i) + 1, gen: s.gen})
		}
	}
	return out
}
