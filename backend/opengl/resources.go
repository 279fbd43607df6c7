package opengl

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/viewports"
)

// Initial buffer capacities in bytes.
const (
	initialVertexBufferSize = 10000
	initialIndexBufferSize  = 2000
)

// sharedResources are created once on the main context and borrowed by
// every secondary renderer.
type sharedResources struct {
	fontTexture uint32
	program     uint32
	projLoc     int32
	fontLoc     int32
}

// resourceSet holds one context's vertex array and the vertex and index
// buffers it draws from.
type resourceSet struct {
	f Functions

	vertexArray  uint32
	vertexBuffer uint32
	indexBuffer  uint32
	vertexCap    int
	indexCap     int

	disposed bool
}

// newResourceSet creates the per-context objects on the current context.
// The previous vertex array and array buffer bindings are kept.
func newResourceSet(f Functions) *resourceSet {
	prevVAO := uint32(f.GetInteger(VERTEX_ARRAY_BINDING))
	prevArrayBuf := uint32(f.GetInteger(ARRAY_BUFFER_BINDING))

	rs := &resourceSet{
		f:         f,
		vertexCap: initialVertexBufferSize,
		indexCap:  initialIndexBufferSize,
	}
	rs.vertexArray = f.CreateVertexArray()
	f.BindVertexArray(rs.vertexArray)

	rs.vertexBuffer = f.CreateBuffer()
	f.BindBuffer(ARRAY_BUFFER, rs.vertexBuffer)
	f.BufferData(ARRAY_BUFFER, rs.vertexCap, DYNAMIC_DRAW)

	rs.indexBuffer = f.CreateBuffer()
	f.BindBuffer(ELEMENT_ARRAY_BUFFER, rs.indexBuffer)
	f.BufferData(ELEMENT_ARRAY_BUFFER, rs.indexCap, DYNAMIC_DRAW)

	stride := viewports.DrawVertSize
	f.VertexAttribPointer(0, 2, FLOAT, false, stride, viewports.DrawVertPosOffset)
	f.VertexAttribPointer(1, 2, FLOAT, false, stride, viewports.DrawVertUVOffset)
	f.VertexAttribPointer(2, 4, UNSIGNED_BYTE, true, stride, viewports.DrawVertColOffset)
	f.EnableVertexAttribArray(0)
	f.EnableVertexAttribArray(1)
	f.EnableVertexAttribArray(2)

	f.BindVertexArray(prevVAO)
	f.BindBuffer(ARRAY_BUFFER, prevArrayBuf)
	return rs
}

// growSize returns the capacity needed to hold required bytes.
func growSize(capacity, required int) int {
	if required <= capacity {
		return capacity
	}
	return max(int(float32(capacity)*1.5), required)
}

// resize binds the set and grows either buffer that is too small for the
// given byte counts. Grown buffers lose their contents.
func (rs *resourceSet) resize(vertexBytes, indexBytes int) {
	f := rs.f
	f.BindVertexArray(rs.vertexArray)
	f.BindBuffer(ARRAY_BUFFER, rs.vertexBuffer)
	f.BindBuffer(ELEMENT_ARRAY_BUFFER, rs.indexBuffer)

	if n := growSize(rs.vertexCap, vertexBytes); n != rs.vertexCap {
		f.BufferData(ARRAY_BUFFER, n, DYNAMIC_DRAW)
		rs.vertexCap = n
	}
	if n := growSize(rs.indexCap, indexBytes); n != rs.indexCap {
		f.BufferData(ELEMENT_ARRAY_BUFFER, n, DYNAMIC_DRAW)
		rs.indexCap = n
	}
}

func (rs *resourceSet) dispose() {
	if rs.disposed {
		return
	}
	rs.disposed = true
	rs.f.DeleteVertexArray(rs.vertexArray)
	rs.f.DeleteBuffer(rs.vertexBuffer)
	rs.f.DeleteBuffer(rs.indexBuffer)
}

// createSharedResources uploads the font atlas and builds the program.
func createSharedResources(f Functions, atlas viewports.FontAtlas) (*sharedResources, error) {
	prog, err := createProgram(f)
	if err != nil {
		return nil, err
	}
	return &sharedResources{
		fontTexture: createFontTexture(f, atlas),
		program:     prog,
		projLoc:     f.GetUniformLocation(prog, "projection_matrix"),
		fontLoc:     f.GetUniformLocation(prog, "font_texture"),
	}, nil
}

func (s *sharedResources) dispose(f Functions) {
	f.DeleteTexture(s.fontTexture)
	f.DeleteProgram(s.program)
}

// mipLevels returns floor(log2(max(w, h))), at least 1.
func mipLevels(w, h int) int {
	n := int(math32.Floor(math32.Log2(float32(max(w, h, 1)))))
	return max(n, 1)
}

// createFontTexture uploads the atlas pixels with mipmaps, hands the
// texture name back to the atlas and lets it free its copy. The active
// texture unit and 2D binding are left as they were.
func createFontTexture(f Functions, atlas viewports.FontAtlas) uint32 {
	pixels, w, h := atlas.TexDataAsRGBA32()
	mips := mipLevels(w, h)

	prevActive := Enum(f.GetInteger(ACTIVE_TEXTURE))
	f.ActiveTexture(TEXTURE0)
	prevTex := uint32(f.GetInteger(TEXTURE_BINDING_2D))

	tex := f.CreateTexture()
	f.BindTexture(TEXTURE_2D, tex)
	f.TexImage2D(TEXTURE_2D, 0, RGBA8, w, h, RGBA, UNSIGNED_BYTE, pixels)
	f.GenerateMipmap(TEXTURE_2D)
	f.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, REPEAT)
	f.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, REPEAT)
	f.TexParameteri(TEXTURE_2D, TEXTURE_MAX_LEVEL, mips-1)
	f.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, LINEAR)
	f.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, LINEAR)

	f.BindTexture(TEXTURE_2D, prevTex)
	f.ActiveTexture(prevActive)

	atlas.SetTexID(tex)
	atlas.ClearTexData()
	return tex
}

// checkError drains the GL error queue, logging every pending code.
func checkError(f Functions, log *slog.Logger, label string) {
	// A lost context can report errors forever.
	for i := 1; i <= 32; i++ {
		code := f.GetError()
		if code == NO_ERROR {
			return
		}
		log.Warn("gl error", "label", label, "index", i, "code", ErrorName(code))
	}
}
