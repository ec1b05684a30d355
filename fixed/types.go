package fixed

// Grid is a read-only view of a small row-major shape.
// Vectors implement it as n×1 columns.
type Grid interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at row i, column j. Out-of-range indices panic.
	At(i, j int) float64
}

// Vec2 is a 2-component vector.
type Vec2 [2]float64

// Vec3 is a 3-component vector: a spatial vector or an so(3) rotation.
type Vec3 [3]float64

// Vec4 is a 4-component vector.
type Vec4 [4]float64

// Mat3 is a 3×3 matrix indexed m[row][col].
type Mat3 [3][3]float64

var (
	_ Grid = Vec2{}
	_ Grid = Vec3{}
	_ Grid = Vec4{}
	_ Grid = Mat3{}
)

// columnAt returns v[i] for a column vector, panicking with ErrOutOfRange
// when j addresses a column other than 0.
func columnAt(v []float64, i, j int) float64 {
	if j != 0 {
		panic(ErrOutOfRange)
	}

	return v[i]
}

func (v Vec2) Rows() int { return len(v) }
func (v Vec2) Cols() int { return 1 }
func (v Vec2) At(i, j int) float64 { return columnAt(v[:], i, j) }

func (v Vec3) Rows() int { return len(v) }
func (v Vec3) Cols() int { return 1 }
func (v Vec3) At(i, j int) float64 { return columnAt(v[:], i, j) }

func (v Vec4) Rows() int { return len(v) }
func (v Vec4) Cols() int { return 1 }
func (v Vec4) At(i, j int) float64 { return columnAt(v[:], i, j) }

func (m Mat3) Rows() int { return 3 }
func (m Mat3) Cols() int { return 3 }
func (m Mat3) At(i, j int) float64 { return m[i][j] }
