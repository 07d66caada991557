package scene

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// std140 byte offsets of the Light uniform block. A point or directional
// light fills the first three 16-byte groups; a spot light appends two more.
const (
	offPosition    = 0
	offColor       = 16
	offIntensity   = 28
	offAttenuation = 32
	offDirection   = 48
	offConeAngle   = 60
	offFalloff     = 64

	LightBlockSize     = 48
	SpotLightBlockSize = 80
)

// std140 byte offsets of the Camera uniform block.
const (
	offEye           = 0
	offScreenToWorld = 16
	offViewToWorld   = 80

	CameraBlockSize = 144
)

var ErrShortBuffer = errors.New("scene: buffer shorter than uniform block")

// CameraBlock is the per-frame data shared by every lighting program.
type CameraBlock struct {
	Eye           mgl32.Vec3
	ScreenToWorld mgl32.Mat4
	ViewToWorld   mgl32.Mat4
}

func (l Light) AppendStd140(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, LightBlockSize)...)
	putLight(dst[start:], l)
	return dst
}

func (l DirectionalLight) AppendStd140(dst []byte) []byte {
	return l.Light.AppendStd140(dst)
}

func (s SpotLight) AppendStd140(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, SpotLightBlockSize)...)
	b := dst[start:]
	putLight(b, Light{
		Position:    s.Position,
		Color:       s.Color,
		Intensity:   s.Intensity,
		Attenuation: s.Attenuation,
	})
	putVec3(b[offDirection:], s.Direction)
	putFloat(b[offConeAngle:], s.ConeAngle)
	putFloat(b[offFalloff:], s.Falloff)
	return dst
}

func (c CameraBlock) AppendStd140(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, CameraBlockSize)...)
	b := dst[start:]
	putVec3(b[offEye:], c.Eye)
	putMat4(b[offScreenToWorld:], c.ScreenToWorld)
	putMat4(b[offViewToWorld:], c.ViewToWorld)
	return dst
}

// DecodeLight reads a point or directional light back from its block.
func DecodeLight(b []byte) (Light, error) {
	if len(b) < LightBlockSize {
		return Light{}, fmt.Errorf("light block: %d bytes: %w", len(b), ErrShortBuffer)
	}
	return Light{
		Position:    getVec3(b[offPosition:]),
		Color:       getVec3(b[offColor:]),
		Intensity:   getFloat(b[offIntensity:]),
		Attenuation: getFloat(b[offAttenuation:]),
	}, nil
}

func DecodeSpotLight(b []byte) (SpotLight, error) {
	if len(b) < SpotLightBlockSize {
		return SpotLight{}, fmt.Errorf("spot light block: %d bytes: %w", len(b), ErrShortBuffer)
	}
	l, _ := DecodeLight(b)
	return SpotLight{
		Position:    l.Position,
		Color:       l.Color,
		Intensity:   l.Intensity,
		Attenuation: l.Attenuation,
		Direction:   getVec3(b[offDirection:]),
		ConeAngle:   getFloat(b[offConeAngle:]),
		Falloff:     getFloat(b[offFalloff:]),
	}, nil
}

func DecodeCameraBlock(b []byte) (CameraBlock, error) {
	if len(b) < CameraBlockSize {
		return CameraBlock{}, fmt.Errorf("camera block: %d bytes: %w", len(b), ErrShortBuffer)
	}
	return CameraBlock{
		Eye:           getVec3(b[offEye:]),
		ScreenToWorld: getMat4(b[offScreenToWorld:]),
		ViewToWorld:   getMat4(b[offViewToWorld:]),
	}, nil
}

func putLight(b []byte, l Light) {
	putVec3(b[offPosition:], l.Position)
	putVec3(b[offColor:], l.Color)
	putFloat(b[offIntensity:], l.Intensity)
	putFloat(b[offAttenuation:], l.Attenuation)
}

func putFloat(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func putVec3(b []byte, v mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		putFloat(b[i*4:], v[i])
	}
}

// putMat4 writes the matrix column by column, which is mgl32's storage order
// and the std140 layout of a mat4.
func putMat4(b []byte, m mgl32.Mat4) {
	for i := 0; i < 16; i++ {
		putFloat(b[i*4:], m[i])
	}
}

func getFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func getVec3(b []byte) mgl32.Vec3 {
	return mgl32.Vec3{getFloat(b), getFloat(b[4:]), getFloat(b[8:])}
}

func getMat4(b []byte) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := 0; i < 16; i++ {
		m[i] = getFloat(b[i*4:])
	}
	return m
}
