package opengl

import "maps"

// glState is the part of fakeGL state the renderer must leave untouched.
type glState struct {
	vao, arrayBuf, program uint32
	activeTex              Enum
	tex2D                  map[Enum]uint32
	caps                   map[Enum]bool
	blend                  [6]Enum // eqRGB, eqA, srcRGB, dstRGB, srcA, dstA
	scissor                [4]int32
	polygon                [2]int32
}

func (s glState) clone() glState {
	s.tex2D = maps.Clone(s.tex2D)
	s.caps = maps.Clone(s.caps)
	return s
}

type drawCall struct {
	count, offset, baseVertex int
	texture                   uint32
	scissor                   [4]int32
}

// fakeGL is an in-memory Functions recording object lifetimes and the
// state the renderer touches.
type fakeGL struct {
	glState

	major, minor int
	profileMask  int

	nextName    uint32
	textures    map[uint32]bool
	buffers     map[uint32]int // name -> size
	vaos        map[uint32]bool
	shaders     map[uint32]bool
	programs    map[uint32]bool
	elementBuf  uint32
	texLevels   map[uint32][2]int
	texParams   map[Enum]int
	uploads     map[Enum]int // target -> bytes uploaded last
	attribs     map[uint32]int
	projection  [16]float32
	viewport    [4]int32
	clearColor  [4]float32
	queries     int
	errors      []Enum
	draws       []drawCall
	failCompile bool
	failLink    bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		glState: glState{
			activeTex: TEXTURE0,
			tex2D:     map[Enum]uint32{},
			caps:      map[Enum]bool{},
			blend:     [6]Enum{FUNC_ADD, FUNC_ADD, 1, 0, 1, 0},
			polygon:   [2]int32{FILL, FILL},
		},
		major:     3,
		minor:     3,
		textures:  map[uint32]bool{},
		buffers:   map[uint32]int{},
		vaos:      map[uint32]bool{},
		shaders:   map[uint32]bool{},
		programs:  map[uint32]bool{},
		texLevels: map[uint32][2]int{},
		texParams: map[Enum]int{},
		uploads:   map[Enum]int{},
		attribs:   map[uint32]int{},
	}
}

func (f *fakeGL) snapshot() glState { return f.glState.clone() }

func (f *fakeGL) name() uint32 {
	f.nextName++
	return f.nextName
}

func (f *fakeGL) GetInteger(pname Enum) int {
	f.queries++
	switch pname {
	case VERTEX_ARRAY_BINDING:
		return int(f.vao)
	case ARRAY_BUFFER_BINDING:
		return int(f.arrayBuf)
	case CURRENT_PROGRAM:
		return int(f.program)
	case ACTIVE_TEXTURE:
		return int(f.activeTex)
	case TEXTURE_BINDING_2D:
		return int(f.tex2D[f.activeTex])
	case BLEND_EQUATION_RGB:
		return int(f.blend[0])
	case BLEND_EQUATION_ALPHA:
		return int(f.blend[1])
	case BLEND_SRC_RGB:
		return int(f.blend[2])
	case BLEND_DST_RGB:
		return int(f.blend[3])
	case BLEND_SRC_ALPHA:
		return int(f.blend[4])
	case BLEND_DST_ALPHA:
		return int(f.blend[5])
	case MAJOR_VERSION:
		return f.major
	case MINOR_VERSION:
		return f.minor
	case CONTEXT_PROFILE_MASK:
		return f.profileMask
	}
	return 0
}

func (f *fakeGL) GetIntegerv(pname Enum, dst []int32) {
	f.queries++
	switch pname {
	case SCISSOR_BOX:
		copy(dst, f.scissor[:])
	case POLYGON_MODE:
		copy(dst, f.polygon[:])
	}
}

func (f *fakeGL) GetError() Enum {
	if len(f.errors) == 0 {
		return NO_ERROR
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func (f *fakeGL) IsEnabled(cap Enum) bool { return f.caps[cap] }
func (f *fakeGL) Enable(cap Enum)         { f.caps[cap] = true }
func (f *fakeGL) Disable(cap Enum)        { f.caps[cap] = false }

func (f *fakeGL) BlendEquation(mode Enum) { f.blend[0], f.blend[1] = mode, mode }

func (f *fakeGL) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	f.blend[0], f.blend[1] = modeRGB, modeAlpha
}

func (f *fakeGL) BlendFunc(sfactor, dfactor Enum) {
	f.blend[2], f.blend[3], f.blend[4], f.blend[5] = sfactor, dfactor, sfactor, dfactor
}

func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	f.blend[2], f.blend[3], f.blend[4], f.blend[5] = srcRGB, dstRGB, srcAlpha, dstAlpha
}

func (f *fakeGL) PolygonMode(face, mode Enum) {
	switch face {
	case FRONT:
		f.polygon[0] = int32(mode)
	case BACK:
		f.polygon[1] = int32(mode)
	case FRONT_AND_BACK:
		f.polygon = [2]int32{int32(mode), int32(mode)}
	}
}

func (f *fakeGL) Scissor(x, y, w, h int32)  { f.scissor = [4]int32{x, y, w, h} }
func (f *fakeGL) Viewport(x, y, w, h int32) { f.viewport = [4]int32{x, y, w, h} }
func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.clearColor = [4]float32{r, g, b, a}
}
func (f *fakeGL) Clear(Enum) {}

func (f *fakeGL) ActiveTexture(texture Enum) { f.activeTex = texture }

func (f *fakeGL) CreateTexture() uint32 {
	t := f.name()
	f.textures[t] = true
	return t
}

func (f *fakeGL) DeleteTexture(t uint32)             { delete(f.textures, t) }
func (f *fakeGL) BindTexture(_ Enum, t uint32)       { f.tex2D[f.activeTex] = t }
func (f *fakeGL) TexParameteri(_, pname Enum, v int) { f.texParams[pname] = v }
func (f *fakeGL) GenerateMipmap(Enum)                 {}
func (f *fakeGL) CreateVertexArray() uint32  { a := f.name(); f.vaos[a] = true; return a }
func (f *fakeGL) DeleteVertexArray(a uint32) { delete(f.vaos, a) }
func (f *fakeGL) BindVertexArray(a uint32)   { f.vao = a }
func (f *fakeGL) CreateBuffer() uint32       { b := f.name(); f.buffers[b] = 0; return b }
func (f *fakeGL) DeleteBuffer(b uint32)      { delete(f.buffers, b) }
func (f *fakeGL) EnableVertexAttribArray(index uint32) {}

func (f *fakeGL) TexImage2D(_ Enum, level int, _ Enum, width, height int, _, _ Enum, _ []byte) {
	if level == 0 {
		f.texLevels[f.tex2D[f.activeTex]] = [2]int{width, height}
	}
}

func (f *fakeGL) BindBuffer(target Enum, b uint32) {
	switch target {
	case ARRAY_BUFFER:
		f.arrayBuf = b
	case ELEMENT_ARRAY_BUFFER:
		f.elementBuf = b
	}
}

func (f *fakeGL) bound(target Enum) uint32 {
	if target == ARRAY_BUFFER {
		return f.arrayBuf
	}
	return f.elementBuf
}

func (f *fakeGL) BufferData(target Enum, size int, _ Enum) { f.buffers[f.bound(target)] = size }

func (f *fakeGL) BufferSubData(target Enum, offset int, src []byte) {
	f.queries++
	if offset+len(src) > f.buffers[f.bound(target)] {
		f.errors = append(f.errors, INVALID_VALUE)
	}
	f.uploads[target] = len(src)
}

func (f *fakeGL) VertexAttribPointer(index uint32, _ int, _ Enum, _ bool, _, offset int) {
	f.attribs[index] = offset
}

func (f *fakeGL) DrawElements(_ Enum, count int, _ Enum, offset int) {
	f.draws = append(f.draws, drawCall{count: count, offset: offset, baseVertex: -1, texture: f.tex2D[f.activeTex], scissor: f.scissor})
}

func (f *fakeGL) DrawElementsBaseVertex(_ Enum, count int, _ Enum, offset, baseVertex int) {
	f.draws = append(f.draws, drawCall{count: count, offset: offset, baseVertex: baseVertex, texture: f.tex2D[f.activeTex], scissor: f.scissor})
}

func (f *fakeGL) CreateShader(Enum) uint32 {
	s := f.name()
	f.shaders[s] = true
	return s
}

func (f *fakeGL) ShaderSource(uint32, string) {}
func (f *fakeGL) CompileShader(uint32)        {}

func (f *fakeGL) GetShaderi(_ uint32, pname Enum) int {
	if pname == COMPILE_STATUS && f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(uint32) string { return "0:1: syntax error" }
func (f *fakeGL) DeleteShader(s uint32)          { delete(f.shaders, s) }

func (f *fakeGL) CreateProgram() uint32 {
	p := f.name()
	f.programs[p] = true
	return p
}

func (f *fakeGL) AttachShader(_, _ uint32) {}
func (f *fakeGL) DetachShader(_, _ uint32) {}
func (f *fakeGL) LinkProgram(uint32)       {}

func (f *fakeGL) GetProgrami(_ uint32, pname Enum) int {
	if pname == LINK_STATUS && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeGL) GetProgramInfoLog(uint32) string { return "link error: missing main" }
func (f *fakeGL) DeleteProgram(p uint32)          { delete(f.programs, p) }
func (f *fakeGL) UseProgram(p uint32)             { f.program = p }

func (f *fakeGL) GetUniformLocation(_ uint32, name string) int32 {
	if name == "projection_matrix" {
		return 0
	}
	return 1
}

func (f *fakeGL) Uniform1i(int32, int) {}

func (f *fakeGL) UniformMatrix4fv(_ int32, m *[16]float32) { f.projection = *m }
