// Package port defines the I/O capability a machine calls into,
// along with stock implementations of it.
package port

// Port represents a machine's connection to the outside world.
// It is injected at machine construction and is the only collaborator
// the execution engine ever calls out to.
type Port interface {
	// In returns the next input value. It may block until one is
	// available. An error terminates the requesting machine.
	In() (int, error)

	// Out consumes one output value.
	Out(value int)
}
