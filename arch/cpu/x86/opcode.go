package x86

import (
	"x8086/log"
	"x8086/set"
)

// handlerFunc executes one instruction. It is responsible for fetching
// its own operand bytes (advancing IP as it goes) and for performing
// the instruction's side effects; the dispatch core does nothing but
// fetch the opcode byte and call the handler.
type handlerFunc func(c *CPU) error

// dispatch maps an opcode byte to the handler that implements it.
// Slots for opcodes this core does not implement hold undefinedOpcode,
// which decodes as a documented one-byte no-op rather than an error -
// spec.md requires Step/Execute to never fail on program bytes.
var dispatch [256]handlerFunc

// group1 holds the eight ALU operations selected by a Group-1 opcode's
// ModR/M reg field (0x80-0x83).
var group1 = [8]func(c *CPU, dst, src uint16, width int) uint16{
	group1Add, group1Or, group1Adc, group1Sbb,
	group1And, group1Sub, group1Xor, group1Cmp,
}

var implemented = set.New[uint8]()

// ImplementedOpcodes reports the opcode bytes this core has a real
// handler for, as opposed to the documented no-op fallback.
func ImplementedOpcodes() []uint8 {
	return implemented.ToSlice()
}

func bind(opcode uint8, fn handlerFunc) {
	dispatch[opcode] = fn
	implemented.Add(opcode)
}

func init() {
	for i := range dispatch {
		dispatch[i] = undefinedOpcode
	}
	buildArithmeticDispatch()
	buildDataTransferDispatch()
	buildControlFlowDispatch()
	buildMiscDispatch()
}

// undefinedOpcode is the fallback for every opcode byte this core does
// not decode. Per spec.md's error model, an undefined opcode is a
// documented one-byte no-op, never a failure.
func undefinedOpcode(c *CPU) error {
	if c.logger != nil {
		c.logger.Trace("decoded undefined opcode", log.Int("opcode", int(c.lastOpcode)))
	}
	return nil
}
