package matrix

import "fmt"

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// New creates an r×c zero matrix using row-major storage.
// Non-positive dimensions panic.
func New(r, c int) *Dense {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("matrix: New(%d,%d): dimensions must be > 0", r, c))
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Identity creates the n×n identity matrix — the canonical initial
// inverse-Hessian approximation.
func Identity(n int) *Dense {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j). Out-of-range indices panic.
func (m *Dense) At(i, j int) float64 {
	m.check(i, j)

	return m.data[i*m.c+j]
}

// Set assigns the element at (i, j). Out-of-range indices panic.
func (m *Dense) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[i*m.c+j] = v
}

// Clone returns an independent deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// MulVec returns the matrix–vector product m·v as a fresh slice.
// len(v) must equal Cols.
func (m *Dense) MulVec(v []float64) []float64 {
	if len(v) != m.c {
		panic(fmt.Sprintf("matrix: MulVec: vector length %d vs %d columns", len(v), m.c))
	}

	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]

		var sum float64
		for j, rv := range row {
			sum += rv * v[j]
		}
		out[i] = sum
	}

	return out
}

// VecMul returns the vector–matrix product vᵀ·m as a fresh slice.
// len(v) must equal Rows. For a symmetric m this equals MulVec(v) in exact
// arithmetic; BFGS computes both sides explicitly so rounding noise cannot
// skew the update asymmetrically.
func (m *Dense) VecMul(v []float64) []float64 {
	if len(v) != m.r {
		panic(fmt.Sprintf("matrix: VecMul: vector length %d vs %d rows", len(v), m.r))
	}

	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		vi := v[i]
		for j, rv := range row {
			out[j] += vi * rv
		}
	}

	return out
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.r, m.c))
	}
}
