package arch

// AddressMode defines instruction operand address modes.
type AddressMode byte

// Known address modes.
const (
	Position  AddressMode = 0 // x = mem[123]
	Immediate AddressMode = 1 // x = 123
)

// Valid reports whether m is a defined address mode. Instruction words
// encode modes as decimal digits, so any digit may show up here.
func (m AddressMode) Valid() bool {
	return m == Position || m == Immediate
}

func (m AddressMode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return "invalid"
}
