package pipeline

import (
	"fmt"

	"deferred-shading/scene"
)

// draw is a draw call captured by fakeDevice with the state it ran under.
type draw struct {
	instanced  bool
	count      int32
	instances  int32
	fb         Framebuffer
	program    Program
	depthTest  bool
	blend      bool
	vao        VertexArray
	textures   map[uint32]Texture
	lightBlock []byte
}

// fakeDevice records every command and tracks the state a GL context would
// hold. It shades a single pixel so blending behaviour can be checked.
type fakeDevice struct {
	log []string

	fb        Framebuffer
	depthTest bool
	blend     bool
	program   Program
	vao       VertexArray
	textures  map[uint32]Texture
	buffers   map[Buffer][]byte

	lightBuffer  Buffer
	kindPrograms map[Program]scene.LightKind

	draws []draw
	pixel [3]float64
}

func newFakeDevice(lightBuffer Buffer, programs [3]Program) *fakeDevice {
	d := &fakeDevice{
		textures:     make(map[uint32]Texture),
		buffers:      make(map[Buffer][]byte),
		lightBuffer:  lightBuffer,
		kindPrograms: make(map[Program]scene.LightKind),
	}
	for kind, p := range programs {
		d.kindPrograms[p] = scene.LightKind(kind)
	}
	return d
}

func (d *fakeDevice) logf(format string, args ...any) {
	d.log = append(d.log, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) BindFramebuffer(fb Framebuffer) {
	d.fb = fb
	d.logf("fb %d", fb)
}

func (d *fakeDevice) Viewport(w, h int32) { d.logf("viewport %dx%d", w, h) }

func (d *fakeDevice) Clear(color, depth bool) {
	if color && d.fb == DefaultFramebuffer {
		d.pixel = [3]float64{}
	}
	d.logf("clear color=%t depth=%t", color, depth)
}

func (d *fakeDevice) EnableDepthTest(enabled bool) {
	d.depthTest = enabled
	d.logf("depth %t", enabled)
}

func (d *fakeDevice) EnableAdditiveBlend(enabled bool) {
	d.blend = enabled
	d.logf("blend %t", enabled)
}

func (d *fakeDevice) UseProgram(p Program) {
	d.program = p
	d.logf("program %d", p)
}

func (d *fakeDevice) BindTexture(unit uint32, tex Texture) {
	d.textures[unit] = tex
	d.logf("texture %d=%d", unit, tex)
}

func (d *fakeDevice) BindVertexArray(vao VertexArray) {
	d.vao = vao
	d.logf("vao %d", vao)
}

func (d *fakeDevice) UpdateUniformBuffer(buf Buffer, data []byte) {
	d.buffers[buf] = append([]byte(nil), data...)
	d.logf("ubo %d len=%d", buf, len(data))
}

func (d *fakeDevice) SetUniformMat4(p Program, loc Uniform, m [16]float32) {
	d.logf("mat4 %d/%d", p, loc)
}

func (d *fakeDevice) SetUniform1f(p Program, loc Uniform, v float32) {
	d.logf("1f %d/%d=%g", p, loc, v)
}

func (d *fakeDevice) SetUniform1i(p Program, loc Uniform, v int32) {
	d.logf("1i %d/%d=%d", p, loc, v)
}

func (d *fakeDevice) DrawElements(count int32) {
	d.record(draw{count: count})
	d.logf("draw %d", count)
	d.shade()
}

func (d *fakeDevice) DrawElementsInstanced(count, instances int32) {
	d.record(draw{instanced: true, count: count, instances: instances})
	d.logf("draw %d x%d", count, instances)
}

func (d *fakeDevice) record(dr draw) {
	dr.fb = d.fb
	dr.program = d.program
	dr.depthTest = d.depthTest
	dr.blend = d.blend
	dr.vao = d.vao
	dr.textures = make(map[uint32]Texture, len(d.textures))
	for k, v := range d.textures {
		dr.textures[k] = v
	}
	dr.lightBlock = d.buffers[d.lightBuffer]
	d.draws = append(d.draws, dr)
}

// shade evaluates a stand-in lighting term for the bound light record and
// writes it to the pixel, adding when blending is on.
func (d *fakeDevice) shade() {
	kind, ok := d.kindPrograms[d.program]
	if !ok {
		return
	}
	var c [3]float64
	switch kind {
	case scene.LightSpot:
		s, err := scene.DecodeSpotLight(d.buffers[d.lightBuffer])
		if err != nil {
			return
		}
		k := float64(s.Intensity) / (1 + float64(s.Attenuation)) * float64(s.ConeAngle) / float64(s.Falloff)
		c = [3]float64{float64(s.Color[0]) * k, float64(s.Color[1]) * k, float64(s.Color[2]) * k}
	default:
		l, err := scene.DecodeLight(d.buffers[d.lightBuffer])
		if err != nil {
			return
		}
		k := float64(l.Intensity) / (1 + float64(l.Attenuation) + float64(l.Position.Len()))
		c = [3]float64{float64(l.Color[0]) * k, float64(l.Color[1]) * k, float64(l.Color[2]) * k}
	}
	if !d.blend {
		d.pixel = c
		return
	}
	for i := range c {
		d.pixel[i] += c[i]
	}
}

// count returns how many log lines equal line.
func (d *fakeDevice) count(line string) int {
	n := 0
	for _, l := range d.log {
		if l == line {
			n++
		}
	}
	return n
}

// index returns the position of the first log line equal to line, or -1.
func (d *fakeDevice) index(line string) int {
	for i, l := range d.log {
		if l == line {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last log line equal to line, or -1.
func (d *fakeDevice) lastIndex(line string) int {
	for i := len(d.log) - 1; i >= 0; i-- {
		if d.log[i] == line {
			return i
		}
	}
	return -1
}
