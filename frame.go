package squares

// Surface is a window that can present frames.
type Surface interface {
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// Present swaps buffers and processes pending OS events.
	Present()
}

// Run drives the frame loop until s reports it should close. Each frame
// clears to background, calls frame to issue draws and presents. It returns
// the number of presented frames. An error from frame stops the loop.
func Run(s Surface, dev Device, background Color, frame func() error) (int, error) {
	frames := 0
	for !s.ShouldClose() {
		dev.Clear(background)
		if err := frame(); err != nil {
			return frames, err
		}
		s.Present()
		frames++
	}
	return frames, nil
}
