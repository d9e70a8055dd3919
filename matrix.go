package contrast

import "math"

// vec3 is a 3-component column vector.
type vec3 [3]float64

// add returns the sum of two vectors.
func (v vec3) add(w vec3) vec3 {
	return vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// sub returns the difference of two vectors.
func (v vec3) sub(w vec3) vec3 {
	return vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// scale returns the vector scaled by a scalar.
func (v vec3) scale(s float64) vec3 {
	return vec3{v[0] * s, v[1] * s, v[2] * s}
}

// mat3 is a 3x3 matrix in row-major order.
type mat3 [3][3]float64

// identity3 returns the 3x3 identity matrix.
func identity3() mat3 {
	return mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// columns builds a matrix whose columns are the given vectors.
func columns(a, b, c vec3) mat3 {
	return mat3{
		{a[0], b[0], c[0]},
		{a[1], b[1], c[1]},
		{a[2], b[2], c[2]},
	}
}

// mul multiplies two matrices (m * other).
func (m mat3) mul(other mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// mulVec applies the matrix to a column vector.
func (m mat3) mulVec(v vec3) vec3 {
	return vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// det returns the determinant.
func (m mat3) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// invert returns the inverse matrix via the adjugate.
// Reports ok = false if the matrix is singular.
func (m mat3) invert() (mat3, bool) {
	d := m.det()
	if math.Abs(d) < 1e-12 {
		return identity3(), false
	}

	invDet := 1.0 / d
	return mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}, true
}
