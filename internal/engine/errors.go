package engine

import "errors"

// Construction errors. Every collaborator except the overlay and the thing
// registry is required.
var (
	ErrNilBuffer   = errors.New("engine: nil buffer")
	ErrNilSource   = errors.New("engine: nil segmentation source")
	ErrNilStepper  = errors.New("engine: nil thing stepper")
	ErrNilRealizer = errors.New("engine: nil selection realizer")
	ErrNilSearch   = errors.New("engine: nil search ring")
)
