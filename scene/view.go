package scene

import "github.com/go-gl/mathgl/mgl32"

// Projection parameters of the demo.
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 10000.0
)

// FrameView holds the per-frame camera matrices consumed by both passes.
type FrameView struct {
	Eye            mgl32.Vec3
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	ViewProjection mgl32.Mat4
	ScreenToWorld  mgl32.Mat4 // inverse(Projection * View)
	ViewToWorld    mgl32.Mat4 // inverse(View)
}

// NewFrameView computes projection and view for the camera's current state.
func NewFrameView(cam *OrbitCamera, aspect float32) FrameView {
	proj := mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
	view := cam.ViewMatrix()
	vp := proj.Mul4(view)
	return FrameView{
		Eye:            cam.Eye(),
		Projection:     proj,
		View:           view,
		ViewProjection: vp,
		ScreenToWorld:  vp.Inv(),
		ViewToWorld:    view.Inv(),
	}
}

// CameraBlock returns the data uploaded once per frame to the Camera uniform block.
func (v FrameView) CameraBlock() CameraBlock {
	return CameraBlock{
		Eye:           v.Eye,
		ScreenToWorld: v.ScreenToWorld,
		ViewToWorld:   v.ViewToWorld,
	}
}
