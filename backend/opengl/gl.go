package opengl

// Enum is a GL enumerant or bitfield.
type Enum uint32

const (
	ACTIVE_TEXTURE                    = 0x84E0
	ARRAY_BUFFER                      = 0x8892
	ARRAY_BUFFER_BINDING              = 0x8894
	BACK                              = 0x0405
	BLEND                             = 0x0BE2
	BLEND_DST_ALPHA                   = 0x80CA
	BLEND_DST_RGB                     = 0x80C8
	BLEND_EQUATION_ALPHA              = 0x883D
	BLEND_EQUATION_RGB                = 0x8009
	BLEND_SRC_ALPHA                   = 0x80CB
	BLEND_SRC_RGB                     = 0x80C9
	COLOR_BUFFER_BIT                  = 0x4000
	COMPILE_STATUS                    = 0x8B81
	CONTEXT_COMPATIBILITY_PROFILE_BIT = 0x0002
	CONTEXT_PROFILE_MASK              = 0x9126
	CULL_FACE                         = 0x0B44
	CURRENT_PROGRAM                   = 0x8B8D
	DEPTH_BUFFER_BIT                  = 0x0100
	DEPTH_TEST                        = 0x0B71
	DYNAMIC_DRAW                      = 0x88E8
	ELEMENT_ARRAY_BUFFER              = 0x8893
	FILL                              = 0x1B02
	FLOAT                             = 0x1406
	FRAGMENT_SHADER                   = 0x8B30
	FRONT                             = 0x0404
	FRONT_AND_BACK                    = 0x0408
	FUNC_ADD                          = 0x8006
	INFO_LOG_LENGTH                   = 0x8B84
	LINEAR                            = 0x2601
	LINEAR_MIPMAP_LINEAR              = 0x2703
	LINK_STATUS                       = 0x8B82
	MAJOR_VERSION                     = 0x821B
	MINOR_VERSION                     = 0x821C
	NO_ERROR                          = 0x0
	ONE_MINUS_SRC_ALPHA               = 0x0303
	POLYGON_MODE                      = 0x0B40
	REPEAT                            = 0x2901
	RGBA                              = 0x1908
	RGBA8                             = 0x8058
	SCISSOR_BOX                       = 0x0C10
	SCISSOR_TEST                      = 0x0C11
	SRC_ALPHA                         = 0x0302
	STENCIL_BUFFER_BIT                = 0x0400
	TEXTURE0                          = 0x84C0
	TEXTURE_2D                        = 0x0DE1
	TEXTURE_BASE_LEVEL                = 0x813C
	TEXTURE_BINDING_2D                = 0x8069
	TEXTURE_MAG_FILTER                = 0x2800
	TEXTURE_MAX_LEVEL                 = 0x813D
	TEXTURE_MIN_FILTER                = 0x2801
	TEXTURE_WRAP_S                    = 0x2802
	TEXTURE_WRAP_T                    = 0x2803
	TRIANGLES                         = 0x0004
	UNSIGNED_BYTE                     = 0x1401
	UNSIGNED_SHORT                    = 0x1403
	VERTEX_ARRAY_BINDING              = 0x85B5
	VERTEX_SHADER                     = 0x8B31

	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
)

// Functions is the subset of OpenGL 3.3 core the renderer uses. Object
// names are plain GL names; 0 means none. backend/opengl/gogl implements
// it on top of go-gl.
type Functions interface {
	GetInteger(pname Enum) int
	GetIntegerv(pname Enum, dst []int32)
	GetError() Enum
	IsEnabled(cap Enum) bool
	Enable(cap Enum)
	Disable(cap Enum)

	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	PolygonMode(face, mode Enum)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	ActiveTexture(texture Enum)
	CreateTexture() uint32
	DeleteTexture(t uint32)
	BindTexture(target Enum, t uint32)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)

	CreateVertexArray() uint32
	DeleteVertexArray(a uint32)
	BindVertexArray(a uint32)
	CreateBuffer() uint32
	DeleteBuffer(b uint32)
	BindBuffer(target Enum, b uint32)
	// BufferData reallocates the bound buffer with undefined contents.
	BufferData(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	DrawElementsBaseVertex(mode Enum, count int, ty Enum, offset, baseVertex int)

	CreateShader(ty Enum) uint32
	ShaderSource(s uint32, src string)
	CompileShader(s uint32)
	GetShaderi(s uint32, pname Enum) int
	GetShaderInfoLog(s uint32) string
	DeleteShader(s uint32)
	CreateProgram() uint32
	AttachShader(p, s uint32)
	DetachShader(p, s uint32)
	LinkProgram(p uint32)
	GetProgrami(p uint32, pname Enum) int
	GetProgramInfoLog(p uint32) string
	DeleteProgram(p uint32)
	UseProgram(p uint32)
	GetUniformLocation(p uint32, name string) int32
	Uniform1i(loc int32, v int)
	UniformMatrix4fv(loc int32, m *[16]float32)
}

var errorNames = map[Enum]string{
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	STACK_OVERFLOW:                "STACK_OVERFLOW",
	STACK_UNDERFLOW:               "STACK_UNDERFLOW",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code Enum) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "UNKNOWN_ERROR"
}
