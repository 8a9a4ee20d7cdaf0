package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EllipseParams describes the 2-D projection of a point cloud (a failure
// sample region, or the neighbourhood of a design point) onto two chosen
// axes: center, semi-axes and rotation.
type EllipseParams struct {
	CenterX         float64
	CenterY         float64
	MajorAxis       float64
	MinorAxis       float64
	Angle           float64 // radians
	ConfidenceLevel float64
}

// ConfidenceEllipse is vendored 2-D confidence-ellipse geometry: generic
// eigendecomposition of a point cloud's covariance matrix, unconnected to
// reliability analysis. FailureRegionEllipse below is what adapts it to
// this package's domain, by choosing which projection of which sampler
// output to feed in.
//
// Reference: Johnson & Wichern (2007) Applied Multivariate Statistical Analysis
func ConfidenceEllipse(x, y []float64, confidenceLevel float64) (centerX, centerY, majorAxis, minorAxis, angle float64, err error) {
	if len(x) != len(y) {
		return 0, 0, 0, 0, 0, fmt.Errorf("x and y must have the same length")
	}

	n := len(x)
	if n < 3 {
		return 0, 0, 0, 0, 0, fmt.Errorf("need at least 3 points to calculate confidence ellipse")
	}

	centerX = stat.Mean(x, nil)
	centerY = stat.Mean(y, nil)

	cov := mat.NewSymDense(2, nil)
	cov.SetSym(0, 0, stat.Variance(x, nil))
	cov.SetSym(1, 1, stat.Variance(y, nil))
	cov.SetSym(0, 1, stat.Covariance(x, y, nil))

	var eig mat.EigenSym
	ok := eig.Factorize(cov, true)
	if !ok {
		return 0, 0, 0, 0, 0, fmt.Errorf("failed to compute eigenvalues")
	}

	values := eig.Values(nil)
	vectors := mat.NewDense(2, 2, nil)
	eig.VectorsTo(vectors)

	if values[0] <= 0 || values[1] <= 0 {
		return 0, 0, 0, 0, 0, fmt.Errorf("covariance matrix is not positive definite")
	}

	// Largest eigenvalue first, so majorAxis/minorAxis and the rotation
	// angle below stay consistent with each other.
	if values[0] < values[1] {
		values[0], values[1] = values[1], values[0]
		v1 := mat.Col(nil, 0, vectors)
		v2 := mat.Col(nil, 1, vectors)
		vectors.SetCol(0, v2)
		vectors.SetCol(1, v1)
	}

	chiSquare := chiSquareValue(confidenceLevel, 2)

	majorAxis = math.Sqrt(chiSquare * values[0])
	minorAxis = math.Sqrt(chiSquare * values[1])
	angle = math.Atan2(vectors.At(1, 0), vectors.At(0, 0))

	return centerX, centerY, majorAxis, minorAxis, angle, nil
}

// chiSquareValue returns the chi-square value for a given confidence level
// and degrees of freedom. Every caller in this package passes df=2; other
// values fall back to the 95%/df=2 figure rather than erroring.
func chiSquareValue(confidenceLevel float64, df int) float64 {
	if df != 2 {
		return 5.991
	}

	switch confidenceLevel {
	case 0.90:
		return 4.605
	case 0.95:
		return 5.991
	case 0.99:
		return 9.210
	default:
		return 5.991
	}
}

// FailureRegionEllipse computes the confidence-ellipse parameters for the
// failed and safe subsets of a sampler's draws, projected onto two chosen
// Y-space axes (axisX, axisY). Samples come from any Sampler.Draw result;
// failed is the caller's g(x) <= 0 classification, parallel to samples.
// Groups with fewer than three points are omitted rather than erroring,
// since a sparse failure region is an expected outcome at large beta.
func FailureRegionEllipse(samples []Sample, failed []bool, axisX, axisY int, confidenceLevel float64) (map[string]EllipseParams, error) {
	if len(samples) != len(failed) {
		return nil, fmt.Errorf("samples and failed must have the same length")
	}

	groups := map[string]struct{ x, y []float64 }{"failed": {}, "safe": {}}
	for i, s := range samples {
		if axisX >= len(s.Y) || axisY >= len(s.Y) {
			return nil, fmt.Errorf("axis index out of bounds for sample dimension %d", len(s.Y))
		}
		key := "safe"
		if failed[i] {
			key = "failed"
		}
		g := groups[key]
		g.x = append(g.x, s.Y[axisX])
		g.y = append(g.y, s.Y[axisY])
		groups[key] = g
	}

	ellipses := make(map[string]EllipseParams)
	for group, data := range groups {
		if len(data.x) < 3 {
			continue
		}
		centerX, centerY, majorAxis, minorAxis, angle, err := ConfidenceEllipse(data.x, data.y, confidenceLevel)
		if err != nil {
			continue
		}
		ellipses[group] = EllipseParams{
			CenterX:         centerX,
			CenterY:         centerY,
			MajorAxis:       majorAxis,
			MinorAxis:       minorAxis,
			Angle:           angle,
			ConfidenceLevel: confidenceLevel,
		}
	}

	return ellipses, nil
}
