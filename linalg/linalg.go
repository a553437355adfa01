package linalg

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

//MakeSymmetric : mirrors the lower triangle of a square matrix across
//the diagonal, overwriting the upper triangle.
func MakeSymmetric(m *mat64.Dense) {
	r, c := m.Dims()
	if r != c {
		panic("linalg: MakeSymmetric on non-square matrix")
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			m.Set(i, j, m.At(j, i))
		}
	}
}

//ContactToDist : converts contact weights into distances on the lower
//triangle, d = c^(-1/alpha). Zero entries stay zero, so a higher contact
//weight always maps to a smaller distance.
func ContactToDist(contacts *mat64.Dense, alpha float64) *mat64.Dense {
	r, c := contacts.Dims()
	dists := mat64.NewDense(r, c, make([]float64, r*c))
	for i := 0; i < r; i++ {
		for j := 0; j <= i && j < c; j++ {
			v := contacts.At(i, j)
			if v != 0 {
				dists.Set(i, j, math.Pow(v, -1.0/alpha))
			}
		}
	}
	return dists
}

//Mean : arithmetic mean over all entries.
func Mean(m mat64.Matrix) float64 {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += m.At(i, j)
		}
	}
	return sum / float64(r*c)
}

//RadiusOfGyration : root mean square distance of a point set from its
//centroid.
func RadiusOfGyration(coords [][3]float64) float64 {
	n := float64(len(coords))
	if n == 0 {
		return 0
	}
	var centroid [3]float64
	for _, c := range coords {
		centroid[0] += c[0]
		centroid[1] += c[1]
		centroid[2] += c[2]
	}
	centroid[0] /= n
	centroid[1] /= n
	centroid[2] /= n
	sum := 0.0
	for _, c := range coords {
		dx := c[0] - centroid[0]
		dy := c[1] - centroid[1]
		dz := c[2] - centroid[2]
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / n)
}

//Identity3 : 3x3 identity rotation.
func Identity3() *mat64.Dense {
	return mat64.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

//RotX : rotation of theta radians about the x axis.
func RotX(theta float64) *mat64.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat64.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

//RotY : rotation of theta radians about the y axis.
func RotY(theta float64) *mat64.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat64.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

//RotZ : rotation of theta radians about the z axis.
func RotZ(theta float64) *mat64.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat64.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
