package squares_test

import (
	"github.com/go-theft-auto/squares"
)

// fakeDevice records every call instead of talking to a GPU.
type fakeDevice struct {
	calls []string

	compileErr  error
	nextHandle  uint32
	uploaded    [][]float32
	layouts     []squares.Layout
	draws       []int32
	clears      []squares.Color
	released    [][2]uint32
	lastProgram uint32
}

func (f *fakeDevice) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeDevice) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	f.calls = append(f.calls, "compile")
	f.lastProgram = f.handle()
	return f.lastProgram, f.compileErr
}

func (f *fakeDevice) UploadVertices(data []float32, layout squares.Layout) uint32 {
	f.calls = append(f.calls, "upload")
	f.uploaded = append(f.uploaded, append([]float32(nil), data...))
	f.layouts = append(f.layouts, layout)
	return f.handle()
}

func (f *fakeDevice) DrawStrip(program, vao uint32, count int32) {
	f.calls = append(f.calls, "draw")
	f.draws = append(f.draws, count)
}

func (f *fakeDevice) Clear(c squares.Color) {
	f.calls = append(f.calls, "clear")
	f.clears = append(f.clears, c)
}

func (f *fakeDevice) Release(program, vao uint32) {
	f.calls = append(f.calls, "release")
	f.released = append(f.released, [2]uint32{program, vao})
}

func (f *fakeDevice) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeSurface closes after a fixed number of presented frames.
type fakeSurface struct {
	dev      *fakeDevice
	closeAt  int
	presents int
}

func (s *fakeSurface) ShouldClose() bool { return s.presents >= s.closeAt }

func (s *fakeSurface) Present() {
	s.presents++
	if s.dev != nil {
		s.dev.calls = append(s.dev.calls, "present")
	}
}

var testShaders = squares.ShaderSources{
	Vertex:   "#version 410 core\nvoid main() {}\n",
	Fragment: "#version 410 core\nvoid main() {}\n",
}

func sq(x, y, size float32, c squares.Color) squares.Square {
	return squares.Square{Pos: squares.Vec2{X: x, Y: y}, Size: size, Color: c}
}
