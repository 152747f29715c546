package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Pixel-space quads expanded from per-instance rects. Positions arrive in
// window pixels with a top-left origin and are mapped to NDC against the
// resolution uniform.
const textVertexSrc = `#version 330 core
layout (location = 0) in vec2 aQuad;
layout (location = 1) in vec4 aRect;
layout (location = 2) in vec4 aUV;
layout (location = 3) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 pos = aRect.xy + aQuad * aRect.zw;
    vec2 ndc = vec2(pos.x / uResolution.x * 2.0 - 1.0,
                    1.0 - pos.y / uResolution.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV.xy + aQuad * aUV.zw;
    vColor = aColor;
}
`

// Dual-source output: index 0 carries the text color, index 1 the
// per-subpixel coverage consumed by glBlendFunc(SRC1_COLOR,
// ONE_MINUS_SRC1_COLOR).
const textFragmentSrc = `#version 330 core
in vec2 vUV;
in vec4 vColor;

uniform sampler2D uAtlas;

layout (location = 0, index = 0) out vec4 color;
layout (location = 0, index = 1) out vec4 coverage;

void main() {
    vec3 mask = texture(uAtlas, vUV).rgb;
    color = vec4(vColor.rgb, 1.0);
    coverage = vec4(mask * vColor.a, vColor.a);
}
`

const rectVertexSrc = `#version 330 core
layout (location = 0) in vec2 aQuad;
layout (location = 1) in vec4 aRect;
layout (location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 pos = aRect.xy + aQuad * aRect.zw;
    vec2 ndc = vec2(pos.x / uResolution.x * 2.0 - 1.0,
                    1.0 - pos.y / uResolution.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
`

const rectFragmentSrc = `#version 330 core
in vec4 vColor;
out vec4 color;

void main() {
    color = vColor;
}
`

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	sources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return program, nil
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
