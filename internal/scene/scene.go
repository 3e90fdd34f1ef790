// Package scene plans the box chain for a frame without touching GL.
package scene

import (
	"cubetest/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// SpinDivisor scales wall-clock time into spin-angle degrees per box.
const SpinDivisor = 50000.0

var (
	// FillColor is the neutral color multiplier of the primary draw.
	FillColor = mgl32.Vec3{1, 1, 1}
	// OuterColor brightens the outer wireframe.
	OuterColor = mgl32.Vec3{2, 2, 2}
)

// Draw is one cube draw call of the chain.
type Draw struct {
	Box       int
	Model     mgl32.Mat4
	Lines     bool
	LineWidth float32
	Color     mgl32.Vec3
	Outer     bool
}

// State is the spin accumulator carried across frames.
type State struct {
	SpinAngle float32
}

// Reset zeroes the accumulator.
func (s *State) Reset() {
	s.SpinAngle = 0
}

// BaseModel rotates identity by pitch then yaw, both in degrees.
func BaseModel(rotation mgl32.Vec2) mgl32.Mat4 {
	return mgl32.Ident4().
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y())))
}

// ChainBoxes folds box indices 0..N-1 into an ordered draw list. Each box
// builds on the previous box's matrix, including the outer wireframe scale.
// spin is advanced once per box by SpinSpeed*now/SpinDivisor; the new value
// is returned.
func ChainBoxes(base mgl32.Mat4, s config.Scene, spin float32, now float64) ([]Draw, float32) {
	n := s.BoxCount
	if n < 1 {
		return nil, spin
	}

	draws := make([]Draw, 0, 2*n)
	model := base
	for i := 0; i < n; i++ {
		primary := Draw{Box: i, Model: model, Color: FillColor}
		if s.InnerWireframe {
			primary.Lines = true
			primary.LineWidth = s.InnerThickness
		}
		draws = append(draws, primary)

		if s.OuterWireframe {
			model = model.Mul4(mgl32.Scale3D(s.OuterScale, s.OuterScale, s.OuterScale))
			draws = append(draws, Draw{
				Box:       i,
				Model:     model,
				Lines:     true,
				LineWidth: s.OuterThickness,
				Color:     OuterColor,
				Outer:     true,
			})
		}

		spin += s.SpinSpeed * float32(now) / SpinDivisor
		model = model.
			Mul4(mgl32.Translate3D(0, 0, -1)).
			Mul4(mgl32.Scale3D(1.5, 1.5, 1.5)).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(spin) / float32(n)))
	}
	return draws, spin
}
