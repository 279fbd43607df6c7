package opengl

// Profile describes the current context, as needed to restore polygon mode.
type Profile struct {
	// GLVersion is major*100 + minor*10, e.g. 330.
	GLVersion     int
	Compatibility bool
}

// separatePolygonFaces reports whether polygon mode is set per face.
func (p Profile) separatePolygonFaces() bool {
	return p.GLVersion <= 310 || p.Compatibility
}

// QueryProfile reads the version and profile of the current context.
func QueryProfile(f Functions) Profile {
	major := f.GetInteger(MAJOR_VERSION)
	minor := f.GetInteger(MINOR_VERSION)
	return Profile{
		GLVersion:     major*100 + minor*10,
		Compatibility: f.GetInteger(CONTEXT_PROFILE_MASK)&CONTEXT_COMPATIBILITY_PROFILE_BIT != 0,
	}
}

// StateGuard is a snapshot of the GL state the renderer touches. Restore
// puts it back; defer it right after SaveState so it runs on every exit
// path.
type StateGuard struct {
	f       Functions
	profile Profile

	vertArray   uint32
	arrayBuf    uint32
	prog        uint32
	blend       bool
	scissorTest bool
	blendEqRGB  Enum
	blendEqA    Enum
	srcRGB      Enum
	dstRGB      Enum
	srcA        Enum
	dstA        Enum
	cullFace    bool
	depthTest   bool
	activeTex   Enum
	tex2D       uint32
	scissorBox  [4]int32
	polygonMode [2]int32

	restored bool
}

// SaveState snapshots the current state, selects texture unit 0 and forces
// filled polygons. The saved 2D texture binding is the one of unit 0.
func SaveState(f Functions, profile Profile) *StateGuard {
	s := &StateGuard{
		f:           f,
		profile:     profile,
		vertArray:   uint32(f.GetInteger(VERTEX_ARRAY_BINDING)),
		arrayBuf:    uint32(f.GetInteger(ARRAY_BUFFER_BINDING)),
		prog:        uint32(f.GetInteger(CURRENT_PROGRAM)),
		blend:       f.IsEnabled(BLEND),
		scissorTest: f.IsEnabled(SCISSOR_TEST),
		blendEqRGB:  Enum(f.GetInteger(BLEND_EQUATION_RGB)),
		blendEqA:    Enum(f.GetInteger(BLEND_EQUATION_ALPHA)),
		srcRGB:      Enum(f.GetInteger(BLEND_SRC_RGB)),
		dstRGB:      Enum(f.GetInteger(BLEND_DST_RGB)),
		srcA:        Enum(f.GetInteger(BLEND_SRC_ALPHA)),
		dstA:        Enum(f.GetInteger(BLEND_DST_ALPHA)),
		cullFace:    f.IsEnabled(CULL_FACE),
		depthTest:   f.IsEnabled(DEPTH_TEST),
		activeTex:   Enum(f.GetInteger(ACTIVE_TEXTURE)),
	}
	f.GetIntegerv(SCISSOR_BOX, s.scissorBox[:])
	f.GetIntegerv(POLYGON_MODE, s.polygonMode[:])

	// The renderer only binds unit 0, so that is the binding to keep.
	f.ActiveTexture(TEXTURE0)
	s.tex2D = uint32(f.GetInteger(TEXTURE_BINDING_2D))
	if profile.separatePolygonFaces() {
		f.PolygonMode(FRONT, FILL)
		f.PolygonMode(BACK, FILL)
	} else {
		f.PolygonMode(FRONT_AND_BACK, FILL)
	}
	return s
}

// Restore writes the snapshot back. Calls after the first do nothing.
func (s *StateGuard) Restore() {
	if s.restored {
		return
	}
	s.restored = true
	f := s.f

	f.BindTexture(TEXTURE_2D, s.tex2D)
	f.ActiveTexture(s.activeTex)
	f.UseProgram(s.prog)
	f.BindVertexArray(s.vertArray)
	b := s.scissorBox
	f.Scissor(b[0], b[1], b[2], b[3])
	f.BindBuffer(ARRAY_BUFFER, s.arrayBuf)
	f.BlendEquationSeparate(s.blendEqRGB, s.blendEqA)
	f.BlendFuncSeparate(s.srcRGB, s.dstRGB, s.srcA, s.dstA)
	setCap(f, BLEND, s.blend)
	setCap(f, DEPTH_TEST, s.depthTest)
	setCap(f, CULL_FACE, s.cullFace)
	setCap(f, SCISSOR_TEST, s.scissorTest)
	if s.profile.separatePolygonFaces() {
		f.PolygonMode(FRONT, Enum(s.polygonMode[0]))
		f.PolygonMode(BACK, Enum(s.polygonMode[1]))
	} else {
		f.PolygonMode(FRONT_AND_BACK, Enum(s.polygonMode[0]))
	}
}

func setCap(f Functions, cap Enum, enable bool) {
	if enable {
		f.Enable(cap)
	} else {
		f.Disable(cap)
	}
}
