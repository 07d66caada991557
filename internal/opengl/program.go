package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deferred-shading/pipeline"
	"deferred-shading/scene"
)

// Uniform block binding points shared by the three light programs.
const (
	LightBinding  = 0
	CameraBinding = 1
)

// Programs holds every compiled program of the demo.
type Programs struct {
	Geometry pipeline.GeometryProgram
	Lights   [len(scene.LightKinds)]pipeline.Program
}

// NewPrograms compiles and links the G-buffer program and the point,
// directional and spot light programs, and wires their samplers and
// uniform blocks to fixed units and binding points.
func NewPrograms() (*Programs, error) {
	geom, err := newProgram(gbufferVertSrc, gbufferFragSrc)
	if err != nil {
		return nil, fmt.Errorf("gbuffer shader compile: %w", err)
	}
	p := &Programs{
		Geometry: pipeline.GeometryProgram{
			Program:        pipeline.Program(geom),
			MVP:            uniformLocation(geom, "MVP"),
			MV:             uniformLocation(geom, "MV"),
			Time:           uniformLocation(geom, "Time"),
			SpecularPower:  uniformLocation(geom, "SpecularPower"),
			InstanceNumber: uniformLocation(geom, "InstanceNumber"),
		},
	}
	gl.UseProgram(geom)
	gl.Uniform1i(int32(uniformLocation(geom, "Diffuse")), pipeline.UnitDiffuse)
	gl.Uniform1i(int32(uniformLocation(geom, "Specular")), pipeline.UnitSpecular)

	sources := [len(scene.LightKinds)]string{
		scene.LightPoint:       pointLightFragSrc,
		scene.LightDirectional: directionalLightFragSrc,
		scene.LightSpot:        spotLightFragSrc,
	}
	for _, kind := range scene.LightKinds {
		prog, err := newProgram(quadVertSrc, sources[kind])
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("%s light shader compile: %w", kind, err)
		}
		p.Lights[kind] = pipeline.Program(prog)

		if err := bindBlock(prog, "Light", LightBinding); err != nil {
			p.Destroy()
			return nil, fmt.Errorf("%s light program: %w", kind, err)
		}
		if err := bindBlock(prog, "Camera", CameraBinding); err != nil {
			p.Destroy()
			return nil, fmt.Errorf("%s light program: %w", kind, err)
		}

		gl.UseProgram(prog)
		gl.Uniform1i(int32(uniformLocation(prog, "ColorBuffer")), pipeline.UnitColor)
		gl.Uniform1i(int32(uniformLocation(prog, "NormalBuffer")), pipeline.UnitNormal)
		gl.Uniform1i(int32(uniformLocation(prog, "DepthBuffer")), pipeline.UnitDepth)
	}
	gl.UseProgram(0)

	return p, nil
}

// Destroy deletes every program that was created.
func (p *Programs) Destroy() {
	if p.Geometry.Program != 0 {
		gl.DeleteProgram(uint32(p.Geometry.Program))
		p.Geometry.Program = 0
	}
	for i, prog := range p.Lights {
		if prog != 0 {
			gl.DeleteProgram(uint32(prog))
			p.Lights[i] = 0
		}
	}
}

func uniformLocation(prog uint32, name string) pipeline.Uniform {
	return pipeline.Uniform(gl.GetUniformLocation(prog, gl.Str(name+"\x00")))
}

// bindBlock attaches the named uniform block of prog to a binding point.
func bindBlock(prog uint32, name string, binding uint32) error {
	idx := gl.GetUniformBlockIndex(prog, gl.Str(name+"\x00"))
	if idx == gl.INVALID_INDEX {
		return fmt.Errorf("uniform block %q not found", name)
	}
	gl.UniformBlockBinding(prog, idx, binding)
	return nil
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
