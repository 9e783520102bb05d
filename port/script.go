package port

import "github.com/pkg/errors"

// Script is a Port fed from a fixed input sequence. Every output value
// is captured in order. It drives programs whose inputs are known up
// front, and doubles as the standard test port.
type Script struct {
	inputs  []int
	next    int
	Outputs []int
}

// NewScript creates a script port serving the given input values.
func NewScript(inputs ...int) *Script {
	return &Script{inputs: inputs}
}

// In returns the next scripted input value.
// Returns an error when the script has run dry.
func (p *Script) In() (int, error) {
	if p.next >= len(p.inputs) {
		return 0, errors.Errorf("input script exhausted after %d values", len(p.inputs))
	}

	v := p.inputs[p.next]
	p.next++
	return v, nil
}

// Out appends value to the captured output sequence.
func (p *Script) Out(value int) {
	p.Outputs = append(p.Outputs, value)
}
