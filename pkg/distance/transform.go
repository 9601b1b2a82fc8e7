package distance

import "math"

// large stands in for +infinity in the lower-envelope construction; it must
// be large enough that no real squared-distance value can approach it.
const large = 1e37

// Transform computes, for every cell of mask, the Euclidean distance to the
// nearest cell where mask is true. mask is indexed [row][col]; the returned
// grid has the same shape. If mask contains no true cell, every distance is
// sqrt(large).
//
// This is the two-pass separable squared-Euclidean distance transform
// (Felzenszwalt & Huttenlocher): first each column is swept top-to-bottom,
// then each row is swept left-to-right over the column results, each sweep
// computing the lower envelope of parabolas rooted at the seed cells.
func Transform(mask [][]bool) [][]float64 {
	rows := len(mask)
	if rows == 0 {
		return nil
	}
	cols := len(mask[0])

	sq := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		sq[y] = make([]float64, cols)
	}

	// Column pass (axis 0): seed each column with 0 at mask cells, +inf
	// elsewhere, then take the per-column lower envelope.
	col := make([]float64, rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			if mask[y][x] {
				col[y] = 0
			} else {
				col[y] = large
			}
		}
		d := transform1D(col)
		for y := 0; y < rows; y++ {
			sq[y][x] = d[y]
		}
	}

	// Row pass (axis 1): feed the column pass's result into another
	// lower-envelope sweep, this time along each row.
	out := make([][]float64, rows)
	row := make([]float64, cols)
	for y := 0; y < rows; y++ {
		copy(row, sq[y])
		d := transform1D(row)
		out[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			out[y][x] = math.Sqrt(d[x])
		}
	}
	return out
}

// transform1D computes the lower envelope of unit parabolas (q, f[q] + q^2)
// rooted at every index of f, returning, for each q, the minimum envelope
// value at q. This is the shared per-axis primitive both sweeps in
// Transform reduce to.
func transform1D(f []float64) []float64 {
	n := len(f)
	d := make([]float64, n)
	if n == 0 {
		return d
	}

	v := make([]int, n)
	z := make([]float64, n+1)

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
	return d
}

// intersect returns the x-coordinate where the parabolas rooted at q and at
// vk cross.
func intersect(f []float64, q, vk int) float64 {
	fq := f[q] + float64(q*q)
	fv := f[vk] + float64(vk*vk)
	return (fq - fv) / float64(2*(q-vk))
}
