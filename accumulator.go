package squares

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned for a negative declared square count.
	ErrInvalidCount = errors.New("squares: declared count must not be negative")
	// ErrCapacityExceeded is returned when more squares are added than declared.
	ErrCapacityExceeded = errors.New("squares: more squares submitted than declared")
	// ErrIncomplete is returned when finalizing before every declared square was added.
	ErrIncomplete = errors.New("squares: fewer squares submitted than declared")
	// ErrFinalized is returned when an accumulator is used after Finalize.
	ErrFinalized = errors.New("squares: accumulator already finalized")
)

// AppendSquare appends the six vertex records of sq to dst and returns the
// extended slice. Records are emitted top-left, top-left, top-right,
// bottom-left, bottom-right, bottom-right. Size is not validated.
func AppendSquare(dst []float32, layout Layout, sq Square) []float32 {
	c := sq.Corners()
	for _, p := range [VerticesPerSquare]Vec2{c[0], c[0], c[1], c[2], c[3], c[3]} {
		dst = append(dst, p.X, p.Y)
		if layout != LayoutPosition {
			dst = append(dst, sq.Color.R, sq.Color.G, sq.Color.B)
		}
	}
	return dst
}

// Accumulator collects square vertex records for a fixed, declared number of
// squares. It is append-only; Finalize hands the buffer over to a Geometry.
type Accumulator struct {
	layout   Layout
	declared int
	count    int
	data     []float32
	done     bool
}

// NewAccumulator creates an accumulator sized for exactly declared squares.
func NewAccumulator(layout Layout, declared int) (*Accumulator, error) {
	if declared < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, declared)
	}
	return &Accumulator{
		layout:   layout,
		declared: declared,
		data:     make([]float32, 0, declared*layout.FloatsPerSquare()),
	}, nil
}

// Add appends one square.
func (a *Accumulator) Add(sq Square) error {
	if a.done {
		return ErrFinalized
	}
	if a.count >= a.declared {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, a.declared)
	}
	a.data = AppendSquare(a.data, a.layout, sq)
	a.count++
	return nil
}

// Len returns the number of squares added so far.
func (a *Accumulator) Len() int { return a.count }

// Declared returns the fixed square capacity.
func (a *Accumulator) Declared() int { return a.declared }

// Remaining returns how many squares must still be added before Finalize succeeds.
func (a *Accumulator) Remaining() int { return a.declared - a.count }

// Layout returns the record layout.
func (a *Accumulator) Layout() Layout { return a.layout }

// Finalize freezes the accumulated records. Every declared square must have
// been added. The accumulator cannot be used afterwards.
func (a *Accumulator) Finalize() (*Geometry, error) {
	if a.done {
		return nil, ErrFinalized
	}
	if a.count != a.declared {
		return nil, fmt.Errorf("%w: got %d of %d", ErrIncomplete, a.count, a.declared)
	}
	a.done = true
	g := &Geometry{layout: a.layout, squares: a.count, data: a.data}
	a.data = nil
	return g, nil
}

// Geometry is an immutable, finalized vertex buffer.
type Geometry struct {
	layout   Layout
	squares  int
	data     []float32
	uploaded bool
}

// Layout returns the record layout.
func (g *Geometry) Layout() Layout { return g.layout }

// SquareCount returns the number of squares in the buffer.
func (g *Geometry) SquareCount() int { return g.squares }

// VertexCount returns the number of vertex records.
func (g *Geometry) VertexCount() int { return g.squares * VerticesPerSquare }

// Len returns the number of floats in the buffer.
func (g *Geometry) Len() int { return len(g.data) }

// Floats returns a copy of the buffer.
func (g *Geometry) Floats() []float32 {
	out := make([]float32, len(g.data))
	copy(out, g.data)
	return out
}
