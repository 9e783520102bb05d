package port

import "github.com/pkg/errors"

// Chan is a Port backed by channels, for hosts that feed a machine
// from other goroutines. In blocks until a value arrives on Input or
// the channel is closed. Out sends on Output; supply a buffered
// channel if no consumer runs concurrently.
type Chan struct {
	Input  <-chan int
	Output chan<- int
}

// In receives the next input value.
// Returns an error if the input channel has been closed.
func (p *Chan) In() (int, error) {
	v, ok := <-p.Input
	if !ok {
		return 0, errors.New("input channel closed")
	}
	return v, nil
}

// Out sends value on the output channel.
func (p *Chan) Out(value int) {
	p.Output <- value
}
