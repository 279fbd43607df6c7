package opengl

import (
	"errors"
	"fmt"
)

var (
	// ErrShaderCompile is returned when a shader stage fails to compile.
	ErrShaderCompile = errors.New("opengl: shader compilation failed")
	// ErrShaderLink is returned when the program fails to link.
	ErrShaderLink = errors.New("opengl: shader program linking failed")
)

const vertexShaderSource = `#version 330 core

uniform mat4 projection_matrix;

layout(location = 0) in vec2 in_position;
layout(location = 1) in vec2 in_texCoord;
layout(location = 2) in vec4 in_color;

out vec4 color;
out vec2 texCoord;

void main() {
    gl_Position = projection_matrix * vec4(in_position, 0, 1);
    color = in_color;
    texCoord = in_texCoord;
}
`

const fragmentShaderSource = `#version 330 core

uniform sampler2D font_texture;

in vec4 color;
in vec2 texCoord;

out vec4 outputColor;

void main() {
    outputColor = color * texture(font_texture, texCoord);
}
`

// createProgram compiles and links the draw-list program. Partially built
// objects are deleted on failure.
func createProgram(f Functions) (uint32, error) {
	vs, err := compileShader(f, VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer f.DeleteShader(vs)

	fs, err := compileShader(f, FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer f.DeleteShader(fs)

	prog := f.CreateProgram()
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)
	f.DetachShader(prog, vs)
	f.DetachShader(prog, fs)

	if f.GetProgrami(prog, LINK_STATUS) == 0 {
		log := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return 0, fmt.Errorf("%w: %s", ErrShaderLink, log)
	}
	return prog, nil
}

func compileShader(f Functions, ty Enum, src string) (uint32, error) {
	s := f.CreateShader(ty)
	f.ShaderSource(s, src)
	f.CompileShader(s)
	if f.GetShaderi(s, COMPILE_STATUS) == 0 {
		log := f.GetShaderInfoLog(s)
		f.DeleteShader(s)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, log)
	}
	return s, nil
}
