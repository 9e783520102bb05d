// Package vm implements the Intcode execution engine.
package vm

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/intcode/arch"
	"github.com/hexaflex/intcode/port"
)

// TraceFunc represents a callback handler for debug trace output.
// It is invoked with each decoded instruction before it executes.
type TraceFunc func(*Instruction)

// State identifies a machine's execution state.
type State int

// Known machine states.
const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "invalid"
}

// Result describes a halted run.
type Result struct {
	Value   int    // Memory cell zero at halt; by convention the program result.
	Memory  Memory // The final memory image.
	Outputs []int  // Every value the program emitted, in order.
}

// Machine owns one memory bank and executes one program on it.
// A machine is single-threaded and not reusable: once halted or
// faulted it stays that way. Independent machines may run concurrently
// since each owns its memory and port exclusively.
type Machine struct {
	memory  Memory
	pc      int
	port    port.Port
	trace   TraceFunc
	instr   Instruction // Decoded instruction data.
	state   State
	fault   error
	outputs []int
}

// New creates a machine for the given memory image, connected to the
// given I/O port. The image is copied; the caller's slice is not
// aliased. Optionally with a debug trace handler.
func New(image []int, p port.Port, trace TraceFunc) (*Machine, error) {
	if len(image) == 0 {
		return nil, errors.New("empty memory image")
	}
	if p == nil {
		return nil, errors.New("no port connected")
	}
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	return &Machine{
		memory: append(Memory(nil), image...),
		port:   p,
		trace:  trace,
	}, nil
}

// State returns the machine's current execution state.
func (m *Machine) State() State {
	return m.state
}

// Memory returns the machine's memory bank.
func (m *Machine) Memory() Memory {
	return m.memory
}

// Run executes the program until it halts or faults. On a halt it
// returns the terminal result. On a fault it returns the *Fault that
// stopped execution; the program is broken and the machine is dead.
func (m *Machine) Run() (*Result, error) {
	for {
		err := m.Step()
		if err == io.EOF {
			return &Result{
				Value:   m.memory[0],
				Memory:  m.memory.Clone(),
				Outputs: append([]int(nil), m.outputs...),
			}, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Step performs a single execution step.
// Returns io.EOF once the program has halted.
func (m *Machine) Step() error {
	switch m.state {
	case Halted:
		return io.EOF
	case Faulted:
		return m.fault
	}

	err := m.step()
	switch {
	case err == io.EOF:
		m.state = Halted
	case err != nil:
		m.state = Faulted
		m.fault = err
	}
	return err
}

func (m *Machine) step() error {
	if !m.memory.In(m.pc) {
		return NewFault(CounterOutOfBounds, m.pc, "counter %d outside memory of %d cells", m.pc, len(m.memory))
	}

	instr := &m.instr
	if err := instr.Decode(m.memory, m.pc); err != nil {
		return err
	}

	m.trace(instr)
	args := instr.Args[:]

	switch instr.Opcode {
	case arch.ADD:
		if err := m.combine(args, func(a, b int) int { return a + b }); err != nil {
			return err
		}
	case arch.MUL:
		if err := m.combine(args, func(a, b int) int { return a * b }); err != nil {
			return err
		}
	case arch.CLT:
		if err := m.combine(args, func(a, b int) int { return btoi(a < b) }); err != nil {
			return err
		}
	case arch.CEQ:
		if err := m.combine(args, func(a, b int) int { return btoi(a == b) }); err != nil {
			return err
		}

	case arch.IN:
		addr := args[0].Value
		if !m.memory.In(addr) {
			return NewFault(OutOfBounds, instr.IP, "input to address %d", addr)
		}
		v, err := m.port.In()
		if err != nil {
			return NewFault(PortFailure, instr.IP, "input request: %v", err)
		}
		m.memory[addr] = v

	case arch.OUT:
		addr := args[0].Value
		if !m.memory.In(addr) {
			return NewFault(OutOfBounds, instr.IP, "output from address %d", addr)
		}
		v := m.memory[addr]
		m.outputs = append(m.outputs, v)
		m.port.Out(v)

	case arch.JNZ, arch.JEZ:
		cond, err := m.read(args[0])
		if err != nil {
			return err
		}
		taken := cond != 0
		if instr.Opcode == arch.JEZ {
			taken = cond == 0
		}
		if taken {
			target, err := m.read(args[1])
			if err != nil {
				return err
			}
			m.pc = target
			return nil
		}

	case arch.HALT:
		return io.EOF
	}

	m.pc += instr.Length
	return nil
}

// combine applies f to the first two operands and stores the result
// through the third.
func (m *Machine) combine(args []Operand, f func(a, b int) int) error {
	va, err := m.read(args[0])
	if err != nil {
		return err
	}
	vb, err := m.read(args[1])
	if err != nil {
		return err
	}
	return m.write(args[2], f(va, vb))
}

// read resolves an operand for reading.
func (m *Machine) read(op Operand) (int, error) {
	if op.Mode == arch.Immediate {
		return op.Value, nil
	}
	if !m.memory.In(op.Value) {
		return 0, NewFault(OutOfBounds, m.instr.IP, "read from address %d", op.Value)
	}
	return m.memory[op.Value], nil
}

// write resolves an operand for writing and stores value through it.
// Immediate operands are never a legal write target.
func (m *Machine) write(op Operand, value int) error {
	if op.Mode == arch.Immediate {
		return NewFault(WriteToImmediate, m.instr.IP, "write of %d through immediate operand", value)
	}
	if !m.memory.In(op.Value) {
		return NewFault(OutOfBounds, m.instr.IP, "write to address %d", op.Value)
	}
	m.memory[op.Value] = value
	return nil
}

func btoi(v bool) int {
	if v {
		return 1
	}
	return 0
}
