package squares

import "fmt"

// Vec2 represents a 2D position in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Color is an RGB color with channels in the 0..1 range.
type Color struct {
	R, G, B float32
}

// Square describes one solid square. Pos is the top-left corner.
type Square struct {
	Pos   Vec2
	Size  float32
	Color Color
}

// Corners returns the four distinct corners in strip order:
// top-left, top-right, bottom-left, bottom-right.
func (s Square) Corners() [4]Vec2 {
	return [4]Vec2{
		s.Pos,
		s.Pos.Add(Vec2{X: s.Size}),
		s.Pos.Add(Vec2{Y: -s.Size}),
		s.Pos.Add(Vec2{X: s.Size, Y: -s.Size}),
	}
}

// VerticesPerSquare is the number of vertex records a square contributes.
// The first and last corners are repeated so consecutive squares join
// through zero-area triangles in a single strip.
const VerticesPerSquare = 6

// Layout selects the per-vertex record format.
type Layout int

const (
	// LayoutPositionColor is x, y, r, g, b (stride 5).
	LayoutPositionColor Layout = iota
	// LayoutPosition is x, y only (stride 2).
	LayoutPosition
)

// Attribute describes one vertex attribute inside a record.
// Size and Offset are measured in floats.
type Attribute struct {
	Index  uint32
	Size   int32
	Offset int
}

// Stride returns the number of floats per vertex record.
func (l Layout) Stride() int {
	if l == LayoutPosition {
		return 2
	}
	return 5
}

// FloatsPerSquare returns the number of floats one square appends.
func (l Layout) FloatsPerSquare() int {
	return VerticesPerSquare * l.Stride()
}

// Attributes returns the attribute slots a shader reads for this layout.
func (l Layout) Attributes() []Attribute {
	if l == LayoutPosition {
		return []Attribute{{Index: 0, Size: 2, Offset: 0}}
	}
	return []Attribute{
		{Index: 0, Size: 2, Offset: 0},
		{Index: 1, Size: 3, Offset: 2},
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutPositionColor:
		return "position_color"
	case LayoutPosition:
		return "position"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	switch l {
	case LayoutPositionColor, LayoutPosition:
		return []byte(l.String()), nil
	}
	return nil, fmt.Errorf("unknown layout %d", int(l))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	switch string(text) {
	case "position_color", "":
		*l = LayoutPositionColor
	case "position":
		*l = LayoutPosition
	default:
		return fmt.Errorf("unknown layout %q", string(text))
	}
	return nil
}
