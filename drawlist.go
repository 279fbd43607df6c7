package viewports

import (
	"sync"
	"unsafe"
)

// DrawVert is one vertex as uploaded to the GPU: position, texture
// coordinate and a packed 0xAABBGGRR color.
type DrawVert struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// DrawIdx is a vertex index relative to its command's VtxOffset. Lists with
// vertex offsets disabled keep VtxOffset at 0, so indices are absolute.
type DrawIdx = uint16

// Vertex layout as seen by the shader.
const (
	DrawVertSize      = int(unsafe.Sizeof(DrawVert{}))
	DrawVertPosOffset = int(unsafe.Offsetof(DrawVert{}.Pos))
	DrawVertUVOffset  = int(unsafe.Offsetof(DrawVert{}.UV))
	DrawVertColOffset = int(unsafe.Offsetof(DrawVert{}.Col))
	DrawIdxSize       = int(unsafe.Sizeof(DrawIdx(0)))
)

// maxCmdVertices is the largest vertex count a single command can address
// with 16-bit relative indices.
const maxCmdVertices = 1 << 16

// DrawCallback is a user hook embedded in a command list. The OpenGL
// renderer does not run callbacks and rejects any command carrying one.
type DrawCallback func(list *DrawList, cmd *DrawCmd)

// DrawCmd is a single batched draw command.
type DrawCmd struct {
	ClipRect     Vec4   // left, top, right, bottom in display coordinates
	TextureID    uint32 // GL texture name
	VtxOffset    uint32 // first vertex of this command in VtxBuffer
	IdxOffset    uint32 // first index of this command in IdxBuffer
	ElemCount    uint32 // number of indices
	UserCallback DrawCallback
}

// drawListPool reuses DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]DrawVert, 0, 1024),
			IdxBuffer: make([]DrawIdx, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([]Vec4, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList is one command list: a vertex buffer, an index buffer and the
// commands slicing them. It batches primitives by texture and clip rect.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []DrawVert
	IdxBuffer []DrawIdx

	clipStack   []Vec4
	currentClip Vec4
	textureID   uint32
	noVtxOffset bool
}

// Clear resets the DrawList while keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = Vec4{X: -1e9, Y: -1e9, Z: 1e9, W: 1e9}
	dl.textureID = 0
	dl.noVtxOffset = false
}

// SetVtxOffsetEnabled selects how commands address vertices. Disable it for
// renderers without BackendFlagsRendererHasVtxOffset: every command then
// starts at vertex 0 and the list holds at most 65536 vertices, dropping
// primitives past that. Call it right after Clear; Clear enables it again.
func (dl *DrawList) SetVtxOffsetEnabled(enabled bool) { dl.noVtxOffset = !enabled }

// cmdVtxOffset is the VtxOffset a command started now gets.
func (dl *DrawList) cmdVtxOffset() uint32 {
	if dl.noVtxOffset {
		return 0
	}
	return uint32(len(dl.VtxBuffer))
}

// PushClipRect pushes a clip rectangle; subsequent primitives are clipped to it.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = Vec4{X: x1, Y: y1, Z: x2, W: y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// AddCallback appends a command that carries a user callback.
func (dl *DrawList) AddCallback(cb DrawCallback) {
	dl.finishCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VtxOffset:    dl.cmdVtxOffset(),
		IdxOffset:    uint32(len(dl.IdxBuffer)),
		UserCallback: cb,
	})
	dl.splitDraw()
}

// finishCommand fixes the element count of the last command.
func (dl *DrawList) finishCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		if last.UserCallback == nil {
			last.ElemCount = uint32(len(dl.IdxBuffer)) - last.IdxOffset
		}
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	dl.finishCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:  dl.currentClip,
		TextureID: dl.textureID,
		VtxOffset: dl.cmdVtxOffset(),
		IdxOffset: uint32(len(dl.IdxBuffer)),
	})
}

// reserve makes sure the current command can address n more vertices and
// returns the relative index of the first one. ok is false when the
// vertices cannot be addressed at all.
func (dl *DrawList) reserve(n int) (idx DrawIdx, ok bool) {
	if len(dl.CmdBuffer) == 0 || dl.CmdBuffer[len(dl.CmdBuffer)-1].UserCallback != nil {
		dl.splitDraw()
	}
	cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	if len(dl.VtxBuffer)-int(cmd.VtxOffset)+n > maxCmdVertices {
		if dl.noVtxOffset {
			return 0, false
		}
		dl.splitDraw()
		cmd = &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	}
	return DrawIdx(len(dl.VtxBuffer) - int(cmd.VtxOffset)), true
}

// AddRectUV draws a textured, colored quad.
func (dl *DrawList) AddRectUV(x, y, w, h float32, uv0, uv1 [2]float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx, ok := dl.reserve(4)
	if !ok {
		return
	}
	dl.VtxBuffer = append(dl.VtxBuffer,
		DrawVert{Pos: [2]float32{x, y}, UV: uv0, Col: color},
		DrawVert{Pos: [2]float32{x + w, y}, UV: [2]float32{uv1[0], uv0[1]}, Col: color},
		DrawVert{Pos: [2]float32{x + w, y + h}, UV: uv1, Col: color},
		DrawVert{Pos: [2]float32{x, y + h}, UV: [2]float32{uv0[0], uv1[1]}, Col: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle sampling uv at every corner. Pass the
// atlas white pixel to get a flat color.
func (dl *DrawList) AddRect(x, y, w, h float32, uv [2]float32, color uint32) {
	dl.AddRectUV(x, y, w, h, uv, uv, color)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(p1, p2, p3 Vec2, uv [2]float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx, ok := dl.reserve(3)
	if !ok {
		return
	}
	dl.VtxBuffer = append(dl.VtxBuffer,
		DrawVert{Pos: [2]float32{p1.X, p1.Y}, UV: uv, Col: color},
		DrawVert{Pos: [2]float32{p2.X, p2.Y}, UV: uv, Col: color},
		DrawVert{Pos: [2]float32{p3.X, p3.Y}, UV: uv, Col: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// Finalize closes the last command and drops empty ones. Callback commands
// are kept even though they carry no elements.
func (dl *DrawList) Finalize() {
	dl.finishCommand()
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 || cmd.UserCallback != nil {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// VertexBytes returns the vertex buffer as raw bytes, sharing its memory.
func (dl *DrawList) VertexBytes() []byte {
	if len(dl.VtxBuffer) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&dl.VtxBuffer[0])), len(dl.VtxBuffer)*DrawVertSize)
}

// IndexBytes returns the index buffer as raw bytes, sharing its memory.
func (dl *DrawList) IndexBytes() []byte {
	if len(dl.IdxBuffer) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&dl.IdxBuffer[0])), len(dl.IdxBuffer)*DrawIdxSize)
}

// DrawData is everything needed to render one viewport.
type DrawData struct {
	CmdLists         []*DrawList
	DisplayPos       Vec2 // top-left of the viewport in screen coordinates
	DisplaySize      Vec2
	FramebufferScale Vec2
}

// Empty reports whether there is nothing to draw.
func (dd *DrawData) Empty() bool {
	return dd == nil || len(dd.CmdLists) == 0
}

// TotalVtxCount returns the number of vertices across all lists.
func (dd *DrawData) TotalVtxCount() int {
	n := 0
	for _, l := range dd.CmdLists {
		n += len(l.VtxBuffer)
	}
	return n
}

// TotalIdxCount returns the number of indices across all lists.
func (dd *DrawData) TotalIdxCount() int {
	n := 0
	for _, l := range dd.CmdLists {
		n += len(l.IdxBuffer)
	}
	return n
}

// ScaleClipRects multiplies every clip rectangle by scale, moving them from
// display coordinates into framebuffer pixels.
func (dd *DrawData) ScaleClipRects(scale Vec2) {
	for _, l := range dd.CmdLists {
		for i := range l.CmdBuffer {
			c := &l.CmdBuffer[i].ClipRect
			c.X *= scale.X
			c.Y *= scale.Y
			c.Z *= scale.X
			c.W *= scale.Y
		}
	}
}
