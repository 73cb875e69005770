// Package f32 provides the float32 vector kernels used on the sampling-mass
// path.
package f32

// Sum is
//  var sum float32
//  for i := range x {
//      sum += x[i]
//  }
func Sum(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}

// ScalUnitaryTo is
//  for i, v := range x {
//  	dst[i] = alpha * v
//  }
func ScalUnitaryTo(dst []float32, alpha float32, x []float32) {
	for i, v := range x {
		dst[i] = alpha * v
	}
}

// MulTo is
//  for i, v := range s {
//  	dst[i] = v * t[i]
//  }
func MulTo(dst, s, t []float32) {
	for i, v := range s {
		dst[i] = v * t[i]
	}
}
