package pinchzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// OpKind selects the component a TransformOp applies.
type OpKind uint8

const (
	OpScale      OpKind = iota // uniform scale about the view center
	OpTranslateX               // horizontal translation in pre-scale units
	OpTranslateY               // vertical translation in pre-scale units
)

// TransformOp is one entry of an ordered transform list.
type TransformOp struct {
	Kind  OpKind
	Value float64
}

func (o TransformOp) String() string {
	switch o.Kind {
	case OpScale:
		return fmt.Sprintf("scale(%g)", o.Value)
	case OpTranslateX:
		return fmt.Sprintf("translateX(%g)", o.Value)
	case OpTranslateY:
		return fmt.Sprintf("translateY(%g)", o.Value)
	}
	return fmt.Sprintf("op%d(%g)", o.Kind, o.Value)
}

// TransformState is the visual affine transform of a displayed image.
type TransformState struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// IdentityState is the resting transform: natural size, no offset.
var IdentityState = TransformState{Scale: 1}

// Ops returns the transform list in render order: scale, translateX, translateY.
func (t TransformState) Ops() []TransformOp {
	return []TransformOp{
		{Kind: OpScale, Value: t.Scale},
		{Kind: OpTranslateX, Value: t.TranslateX},
		{Kind: OpTranslateY, Value: t.TranslateY},
	}
}

// Matrix returns the affine that maps view-local points of a w x h view to
// their transformed position. See opsMatrix.
func (t TransformState) Matrix(w, h float64) [6]float64 {
	return opsMatrix(t.Ops(), w, h)
}

// opsMatrix composes a transform list about the center of a w x h view.
// Ops compose left to right, so the first op is outermost:
//
//	M = Translate(c) * op[0] * op[1] * ... * Translate(-c)
//
// For [scale, translateX, translateY] a point p lands at c + s*(p - c + t),
// which keeps translation in pre-scale units.
func opsMatrix(ops []TransformOp, w, h float64) [6]float64 {
	cx, cy := w/2, h/2
	m := [6]float64{1, 0, 0, 1, cx, cy}
	for _, op := range ops {
		var local [6]float64
		switch op.Kind {
		case OpScale:
			local = [6]float64{op.Value, 0, 0, op.Value, 0, 0}
		case OpTranslateX:
			local = [6]float64{1, 0, 0, 1, op.Value, 0}
		case OpTranslateY:
			local = [6]float64{1, 0, 0, 1, 0, op.Value}
		default:
			continue
		}
		m = multiplyAffine(m, local)
	}
	return multiplyAffine(m, [6]float64{1, 0, 0, 1, -cx, -cy})
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ViewToImage converts a point in view space to untransformed image space
// for a w x h view showing state t.
func ViewToImage(t TransformState, w, h, x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix(w, h)), x, y)
}
