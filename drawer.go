package squares

import (
	"fmt"
)

// DrawerState is the one-shot setup state of a Drawer.
type DrawerState int

const (
	// StateAccepting collects squares until the declared count is reached.
	StateAccepting DrawerState = iota
	// StateFreezing means every square was collected but GPU objects do not exist yet.
	StateFreezing
	// StateReady means the geometry is on the GPU and every call draws.
	StateReady
)

func (s DrawerState) String() string {
	switch s {
	case StateAccepting:
		return "accepting"
	case StateFreezing:
		return "freezing"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("DrawerState(%d)", int(s))
	}
}

// Drawer lets a frame loop submit its squares every frame and have them drawn
// once the declared number has been seen.
//
// The first declared squares are accumulated. The next call freezes the
// buffer and performs GPU setup instead of accumulating; every call after
// that draws the whole strip. Submitting fewer squares than declared never
// reaches StateReady, so nothing is drawn.
type Drawer struct {
	dev     Device
	shaders ShaderSources
	opts    []UploadOption

	acc        *Accumulator
	renderable *Renderable
	setups     int
	setupErr   error
}

// NewDrawer creates a drawer for exactly declared squares in the colored layout.
func NewDrawer(dev Device, shaders ShaderSources, declared int, opts ...UploadOption) (*Drawer, error) {
	return NewDrawerWithLayout(dev, shaders, LayoutPositionColor, declared, opts...)
}

// NewDrawerWithLayout is NewDrawer with an explicit record layout.
func NewDrawerWithLayout(dev Device, shaders ShaderSources, layout Layout, declared int, opts ...UploadOption) (*Drawer, error) {
	acc, err := NewAccumulator(layout, declared)
	if err != nil {
		return nil, err
	}
	return &Drawer{
		dev:     dev,
		shaders: shaders,
		opts:    opts,
		acc:     acc,
	}, nil
}

// State reports the current setup state.
func (d *Drawer) State() DrawerState {
	switch {
	case d.renderable != nil:
		return StateReady
	case d.acc.Remaining() > 0:
		return StateAccepting
	default:
		return StateFreezing
	}
}

// Pending returns how many squares still have to be submitted.
func (d *Drawer) Pending() int {
	if d.renderable != nil {
		return 0
	}
	return d.acc.Remaining()
}

// Setups returns how many times GPU setup ran. It is never more than one.
func (d *Drawer) Setups() int { return d.setups }

// Renderable returns the uploaded geometry, or nil before StateReady.
func (d *Drawer) Renderable() *Renderable { return d.renderable }

// DrawSquare submits sq for the current call.
func (d *Drawer) DrawSquare(sq Square) error {
	switch d.State() {
	case StateAccepting:
		return d.acc.Add(sq)
	case StateFreezing:
		return d.freeze()
	default:
		d.renderable.Draw()
		return nil
	}
}

func (d *Drawer) freeze() error {
	// Setup is never retried; report the original failure again.
	if d.setupErr != nil {
		return d.setupErr
	}
	g, err := d.acc.Finalize()
	if err != nil {
		return fmt.Errorf("freeze geometry: %w", err)
	}
	r, err := Upload(d.dev, g, d.shaders, d.opts...)
	if err != nil {
		d.setupErr = fmt.Errorf("gpu setup: %w", err)
		return d.setupErr
	}
	d.renderable = r
	d.setups++
	logger.Debug("drawer ready", "squares", g.SquareCount(), "floats", g.Len())
	return nil
}

// Delete releases GPU resources if setup has run.
func (d *Drawer) Delete() {
	if d.renderable != nil {
		d.renderable.Delete()
	}
}
