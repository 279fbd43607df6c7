package viewports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTable_InsertGetRemove(t *testing.T) {
	var tbl handleTable
	win := &viewportWindow{}
	vp := &Viewport{ID: 2}

	h := tbl.insert(win, vp)
	require.False(t, h.IsZero())
	assert.Equal(t, 1, tbl.len())

	gotWin, gotVP, ok := tbl.get(h)
	require.True(t, ok)
	assert.Same(t, win, gotWin)
	assert.Same(t, vp, gotVP)

	removed, ok := tbl.remove(h)
	require.True(t, ok)
	assert.Same(t, win, removed)
	assert.Equal(t, 0, tbl.len())

	_, _, ok = tbl.get(h)
	assert.False(t, ok, "removed handle must not resolve")
	_, ok = tbl.remove(h)
	assert.False(t, ok, "second remove must be a no-op")
}

func TestHandleTable_StaleHandleAfterReuse(t *testing.T) {
	var tbl handleTable
	old := tbl.insert(&viewportWindow{}, &Viewport{ID: 2})
	tbl.remove(old)

	vp := &Viewport{ID: 3}
	fresh := tbl.insert(&viewportWindow{}, vp)
	assert.NotEqual(t, old, fresh)

	_, _, ok := tbl.get(old)
	assert.False(t, ok, "stale handle resolved to the slot's new occupant")

	_, got, ok := tbl.get(fresh)
	require.True(t, ok)
	assert.Same(t, vp, got)
}

func TestHandleTable_ZeroHandle(t *testing.T) {
	var tbl handleTable
	tbl.insert(&viewportWindow{}, &Viewport{})

	_, _, ok := tbl.get(WindowHandle{})
	assert.False(t, ok)
	_, _, ok = tbl.get(WindowHandle{index: 42, gen: 1})
	assert.False(t, ok, "out of range index")
}

func TestHandleTable_Handles(t *testing.T) {
	var tbl handleTable
	a := tbl.insert(&viewportWindow{}, &Viewport{ID: 2})
	b := tbl.insert(&viewportWindow{}, &Viewport{ID: 3})
	c := tbl.insert(&viewportWindow{}, &Viewport{ID: 4})
	tbl.remove(b)

	assert.Equal(t, []WindowHandle{a, c}, tbl.handles())
}
