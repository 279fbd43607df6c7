// Package gogl implements opengl.Functions with github.com/go-gl/gl.
//
// Call Init once after the first context is made current. Function
// pointers are shared by every context created with the same pixel format,
// which holds for windows sharing the main context.
package gogl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/viewports/backend/opengl"
)

// Functions calls straight into the loaded GL entry points.
type Functions struct{}

var _ opengl.Functions = Functions{}

// Init loads GL entry points for the current context.
func Init() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, fmt.Errorf("gl init: %w", err)
	}
	return Functions{}, nil
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (Functions) GetInteger(pname opengl.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Functions) GetIntegerv(pname opengl.Enum, dst []int32) {
	if len(dst) == 0 {
		return
	}
	gl.GetIntegerv(uint32(pname), &dst[0])
}

func (Functions) GetError() opengl.Enum          { return opengl.Enum(gl.GetError()) }
func (Functions) IsEnabled(cap opengl.Enum) bool { return gl.IsEnabled(uint32(cap)) }
func (Functions) Enable(cap opengl.Enum)         { gl.Enable(uint32(cap)) }
func (Functions) Disable(cap opengl.Enum)        { gl.Disable(uint32(cap)) }

func (Functions) BlendEquation(mode opengl.Enum) { gl.BlendEquation(uint32(mode)) }

func (Functions) BlendEquationSeparate(modeRGB, modeAlpha opengl.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (Functions) BlendFunc(sfactor, dfactor opengl.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha opengl.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (Functions) PolygonMode(face, mode opengl.Enum) { gl.PolygonMode(uint32(face), uint32(mode)) }

func (Functions) Scissor(x, y, width, height int32)  { gl.Scissor(x, y, width, height) }
func (Functions) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Functions) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Functions) Clear(mask opengl.Enum)             { gl.Clear(uint32(mask)) }

func (Functions) ActiveTexture(texture opengl.Enum) { gl.ActiveTexture(uint32(texture)) }

func (Functions) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (Functions) DeleteTexture(t uint32) { gl.DeleteTextures(1, &t) }

func (Functions) BindTexture(target opengl.Enum, t uint32) { gl.BindTexture(uint32(target), t) }

func (Functions) TexImage2D(target opengl.Enum, level int, internalFormat opengl.Enum, width, height int, format, ty opengl.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr(pixels))
}

func (Functions) TexParameteri(target, pname opengl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Functions) GenerateMipmap(target opengl.Enum) { gl.GenerateMipmap(uint32(target)) }

func (Functions) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Functions) DeleteVertexArray(a uint32) { gl.DeleteVertexArrays(1, &a) }
func (Functions) BindVertexArray(a uint32)   { gl.BindVertexArray(a) }

func (Functions) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Functions) DeleteBuffer(b uint32)                   { gl.DeleteBuffers(1, &b) }
func (Functions) BindBuffer(target opengl.Enum, b uint32) { gl.BindBuffer(uint32(target), b) }
func (Functions) EnableVertexAttribArray(index uint32)    { gl.EnableVertexAttribArray(index) }

func (Functions) BufferData(target opengl.Enum, size int, usage opengl.Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (Functions) BufferSubData(target opengl.Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(src), ptr(src))
}

func (Functions) VertexAttribPointer(index uint32, size int, ty opengl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(index, int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (Functions) DrawElements(mode opengl.Enum, count int, ty opengl.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (Functions) DrawElementsBaseVertex(mode opengl.Enum, count int, ty opengl.Enum, offset, baseVertex int) {
	gl.DrawElementsBaseVertexWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(baseVertex))
}

func (Functions) CreateShader(ty opengl.Enum) uint32 { return gl.CreateShader(uint32(ty)) }

func (Functions) ShaderSource(s uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s, 1, csrc, nil)
}

func (Functions) CompileShader(s uint32) { gl.CompileShader(s) }

func (Functions) GetShaderi(s uint32, pname opengl.Enum) int {
	var v int32
	gl.GetShaderiv(s, uint32(pname), &v)
	return int(v)
}

func (f Functions) GetShaderInfoLog(s uint32) string {
	n := f.GetShaderi(s, opengl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(s, int32(n), nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) DeleteShader(s uint32)    { gl.DeleteShader(s) }
func (Functions) CreateProgram() uint32    { return gl.CreateProgram() }
func (Functions) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (Functions) DetachShader(p, s uint32) { gl.DetachShader(p, s) }
func (Functions) LinkProgram(p uint32)     { gl.LinkProgram(p) }

func (Functions) GetProgrami(p uint32, pname opengl.Enum) int {
	var v int32
	gl.GetProgramiv(p, uint32(pname), &v)
	return int(v)
}

func (f Functions) GetProgramInfoLog(p uint32) string {
	n := f.GetProgrami(p, opengl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(p, int32(n), nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) DeleteProgram(p uint32) { gl.DeleteProgram(p) }
func (Functions) UseProgram(p uint32)    { gl.UseProgram(p) }

func (Functions) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (Functions) Uniform1i(loc int32, v int) { gl.Uniform1i(loc, int32(v)) }

func (Functions) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
