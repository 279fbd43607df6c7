package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// dirty puts the fake into a state unlike anything the renderer sets.
func dirty(f *fakeGL) {
	f.vao = 41
	f.arrayBuf = 42
	f.program = 43
	f.activeTex = TEXTURE0 + 3
	f.tex2D[TEXTURE0] = 44
	f.tex2D[TEXTURE0+3] = 45
	f.caps[BLEND] = false
	f.caps[SCISSOR_TEST] = false
	f.caps[CULL_FACE] = true
	f.caps[DEPTH_TEST] = true
	f.blend = [6]Enum{0x800B, 0x8007, 0x0301, 0x0300, 1, 0}
	f.scissor = [4]int32{1, 2, 3, 4}
	f.polygon = [2]int32{0x1B01, 0x1B01}
}

func TestStateGuard_RoundTrip(t *testing.T) {
	for _, profile := range []Profile{
		{GLVersion: 330},
		{GLVersion: 310},
		{GLVersion: 330, Compatibility: true},
	} {
		f := newFakeGL()
		dirty(f)
		before := f.snapshot()

		g := SaveState(f, profile)
		assert.Equal(t, Enum(TEXTURE0), f.activeTex, "unit 0 selected")
		assert.Equal(t, [2]int32{FILL, FILL}, f.polygon, "filled polygons forced")

		// Everything a render pass might touch.
		f.vao, f.arrayBuf, f.program = 1, 2, 3
		f.tex2D[TEXTURE0] = 4
		f.caps[BLEND], f.caps[SCISSOR_TEST] = true, true
		f.caps[CULL_FACE], f.caps[DEPTH_TEST] = false, false
		f.BlendEquation(FUNC_ADD)
		f.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)
		f.Scissor(9, 9, 9, 9)

		g.Restore()
		assert.Equal(t, before, f.snapshot(), "profile %+v", profile)
	}
}

func TestStateGuard_RestoreOnce(t *testing.T) {
	f := newFakeGL()
	g := SaveState(f, Profile{GLVersion: 330})
	g.Restore()

	f.program = 99
	g.Restore()
	assert.Equal(t, uint32(99), f.program, "second Restore must not write")
}

func TestQueryProfile(t *testing.T) {
	f := newFakeGL()
	f.major, f.minor = 4, 1
	assert.Equal(t, Profile{GLVersion: 410}, QueryProfile(f))

	f.profileMask = CONTEXT_COMPATIBILITY_PROFILE_BIT
	p := QueryProfile(f)
	assert.True(t, p.Compatibility)
	assert.True(t, p.separatePolygonFaces())
	assert.False(t, Profile{GLVersion: 330}.separatePolygonFaces())
	assert.True(t, Profile{GLVersion: 310}.separatePolygonFaces())
}
