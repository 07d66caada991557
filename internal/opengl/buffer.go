package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deferred-shading/pipeline"
)

// NewUniformBuffer allocates size bytes of dynamic uniform storage and
// attaches the whole buffer to binding.
func NewUniformBuffer(size int, binding uint32) pipeline.Buffer {
	var ubo uint32
	gl.GenBuffers(1, &ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ubo)
	return pipeline.Buffer(ubo)
}

// DeleteBuffer frees a buffer created by NewUniformBuffer.
func DeleteBuffer(buf pipeline.Buffer) {
	id := uint32(buf)
	if id != 0 {
		gl.DeleteBuffers(1, &id)
	}
}

// GPUMesh holds the OpenGL objects of an uploaded indexed mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Mesh returns the handles the passes bind.
func (m *GPUMesh) Mesh() pipeline.Mesh {
	return pipeline.Mesh{VAO: pipeline.VertexArray(m.VAO), IndexCount: m.IndexCount}
}

// Destroy frees GPU resources.
func (m *GPUMesh) Destroy() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
		m.EBO = 0
	}
}

// vertexAttrib is one float attribute of an interleaved vertex.
type vertexAttrib struct {
	location uint32
	size     int32
}

// uploadMesh creates a VAO over interleaved float vertices and uint32 indices.
func uploadMesh(vertices []float32, indices []uint32, attribs ...vertexAttrib) *GPUMesh {
	var stride int32
	for _, a := range attribs {
		stride += a.size * 4
	}

	m := &GPUMesh{IndexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	offset := 0
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointer(a.location, a.size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
		offset += int(a.size) * 4
	}

	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// NewCubeMesh uploads a unit cube centred on the origin with per-face
// normals and UVs (position, normal, uv).
func NewCubeMesh() *GPUMesh {
	vertices, indices := cubeGeometry()
	return uploadMesh(vertices, indices,
		vertexAttrib{location: 0, size: 3},
		vertexAttrib{location: 1, size: 3},
		vertexAttrib{location: 2, size: 2},
	)
}

// NewQuadMesh uploads the clip-space quad the light programs draw.
func NewQuadMesh() *GPUMesh {
	vertices := []float32{
		-1, -1,
		1, -1,
		1, 1,
		-1, 1,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return uploadMesh(vertices, indices, vertexAttrib{location: 0, size: 2})
}

// cubeGeometry builds 24 vertices (4 per face) and 36 indices.
func cubeGeometry() ([]float32, []uint32) {
	faces := [6]struct {
		normal, u, v [3]float32
	}{
		{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}
	corners := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 24*8)
	indices := make([]uint32, 0, 36)
	for f, face := range faces {
		for _, c := range corners {
			su, sv := c[0]-0.5, c[1]-0.5
			for i := 0; i < 3; i++ {
				vertices = append(vertices, face.normal[i]*0.5+face.u[i]*su+face.v[i]*sv)
			}
			vertices = append(vertices, face.normal[0], face.normal[1], face.normal[2])
			vertices = append(vertices, c[0], c[1])
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return vertices, indices
}
