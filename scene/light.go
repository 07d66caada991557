package scene

import "github.com/go-gl/mathgl/mgl32"

// LightKind selects the lighting program variant a record is drawn with.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDirectional
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	case LightSpot:
		return "spot"
	}
	return "unknown"
}

// LightKinds lists the kinds in the order the composite pass draws them.
var LightKinds = [...]LightKind{LightPoint, LightDirectional, LightSpot}

// LightRecord is a light that can be written into the Light uniform block.
type LightRecord interface {
	Kind() LightKind
	AppendStd140(dst []byte) []byte
}

// Light is a point light, or a directional light when Position holds the
// direction the light travels in.
type Light struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Intensity   float32
	Attenuation float32
}

// NewLight returns a white light at pos with intensity 1 and attenuation 2.
func NewLight(pos mgl32.Vec3) Light {
	return Light{
		Position:    pos,
		Color:       mgl32.Vec3{1, 1, 1},
		Intensity:   1,
		Attenuation: 2,
	}
}

func (Light) Kind() LightKind { return LightPoint }

// DirectionalLight tags a Light record as directional.
type DirectionalLight struct {
	Light
}

func (DirectionalLight) Kind() LightKind { return LightDirectional }

// SpotLight is a cone light. Direction is expected to be unit length.
// ConeAngle and Falloff are in degrees.
type SpotLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Intensity   float32
	Attenuation float32
	Direction   mgl32.Vec3
	ConeAngle   float32
	Falloff     float32
}

func (SpotLight) Kind() LightKind { return LightSpot }

// LightSet is every light drawn in one frame, grouped by kind.
type LightSet struct {
	Points       []Light
	Directionals []Light
	Spots        []SpotLight
}

// Len returns the total number of lights.
func (s LightSet) Len() int {
	return len(s.Points) + len(s.Directionals) + len(s.Spots)
}

// Records returns the lights of one kind as uniform block records.
func (s LightSet) Records(kind LightKind) []LightRecord {
	var out []LightRecord
	switch kind {
	case LightPoint:
		out = make([]LightRecord, 0, len(s.Points))
		for _, l := range s.Points {
			out = append(out, l)
		}
	case LightDirectional:
		out = make([]LightRecord, 0, len(s.Directionals))
		for _, l := range s.Directionals {
			out = append(out, DirectionalLight{l})
		}
	case LightSpot:
		out = make([]LightRecord, 0, len(s.Spots))
		for _, l := range s.Spots {
			out = append(out, l)
		}
	}
	return out
}
