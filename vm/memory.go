package vm

// Memory defines the machine's memory bank: a flat, fixed-length,
// zero-indexed sequence of signed integers. A bank is owned by exactly
// one machine for the duration of a run.
type Memory []int

// In reports whether addr is a valid address into the bank.
func (m Memory) In(addr int) bool {
	return addr >= 0 && addr < len(m)
}

// Clone returns an independent copy of the memory bank.
func (m Memory) Clone() Memory {
	return append(Memory(nil), m...)
}
