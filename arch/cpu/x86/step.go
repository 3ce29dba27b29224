package x86

import "fmt"

// fetch8 reads the byte at CS:IP and advances IP by one.
func (c *CPU) fetch8() uint8 {
	v := c.ReadSegmented8(c.CS(), c.IP())
	c.SetIP(c.IP() + 1)
	return v
}

// fetch16 reads the word at CS:IP and advances IP by two.
func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return hi<<8 | lo
}

// fetchRel8 reads a signed 8-bit displacement, sign-extended to 16 bits.
func (c *CPU) fetchRel8() int16 {
	return int16(int8(c.fetch8()))
}

// Step decodes and executes exactly one instruction at the current
// CS:IP, per spec.md's fetch/decode/execute contract. A segment-override
// prefix (0x26/0x2E/0x36/0x3E) decodes and sets up the override for the
// instruction that follows, then this call returns without advancing
// past it as a full "step" - the next Step executes the overridden
// instruction. Step never returns a non-nil error for any byte pattern;
// the return value exists only so the signature matches Execute's.
func (c *CPU) Step() error {
	opcode := c.fetch8()
	c.lastOpcode = opcode

	if seg, ok := segOverridePrefix(opcode); ok {
		c.segOverride = &seg
		return nil
	}

	err := dispatch[opcode](c)
	c.segOverride = nil
	return err
}

// segOverridePrefix reports whether opcode is one of the four segment
// override prefixes and, if so, which segment register it selects.
func segOverridePrefix(opcode uint8) (uint8, bool) {
	switch opcode {
	case 0x26:
		return segES, true
	case 0x2E:
		return segCS, true
	case 0x36:
		return segSS, true
	case 0x3E:
		return segDS, true
	default:
		return 0, false
	}
}

// Execute runs Step in a loop until budget instructions have completed,
// HLT is reached, or an error occurs. A segment-override prefix does
// not count against the budget, matching spec.md's instruction-count
// contract rather than a byte or cycle count. Execute returns the
// number of budget-counted instructions actually run.
func (c *CPU) Execute(budget int) (int, error) {
	ran := 0
	for ran < budget {
		if c.halted {
			return ran, nil
		}

		if err := c.Step(); err != nil {
			return ran, err
		}
		if c.segOverride != nil {
			continue // the prefix byte we just consumed is free
		}
		ran++
	}
	return ran, nil
}

// TraceStep captures a single instruction's effect on architectural
// state, for hosts that want to observe execution rather than just
// the end result.
type TraceStep struct {
	CS, IP uint16
	Opcode uint8

	PreAX, PreCX, PreDX, PreBX uint16
	PreSP, PreBP, PreSI, PreDI uint16
	PreFlags                   uint16

	PostAX, PostCX, PostDX, PostBX uint16
	PostSP, PostBP, PostSI, PostDI uint16
	PostFlags                      uint16
}

// StepTraced behaves like Step but returns a snapshot of register and
// flag state before and after the instruction.
func (c *CPU) StepTraced() (TraceStep, error) {
	ts := TraceStep{
		CS: c.CS(), IP: c.IP(),
		PreAX: c.AX(), PreCX: c.CX(), PreDX: c.DX(), PreBX: c.BX(),
		PreSP: c.SP(), PreBP: c.BP(), PreSI: c.SI(), PreDI: c.DI(),
		PreFlags: c.Packed(),
	}

	err := c.Step()
	ts.Opcode = c.lastOpcode

	ts.PostAX, ts.PostCX, ts.PostDX, ts.PostBX = c.AX(), c.CX(), c.DX(), c.BX()
	ts.PostSP, ts.PostBP, ts.PostSI, ts.PostDI = c.SP(), c.BP(), c.SI(), c.DI()
	ts.PostFlags = c.Packed()

	return ts, err
}

// String renders the step in the compact single-line form used for
// instruction traces.
func (ts TraceStep) String() string {
	return fmt.Sprintf("%04X:%04X %02X AX=%04X CX=%04X DX=%04X BX=%04X SP=%04X BP=%04X SI=%04X DI=%04X FL=%04X",
		ts.CS, ts.IP, ts.Opcode,
		ts.PostAX, ts.PostCX, ts.PostDX, ts.PostBX,
		ts.PostSP, ts.PostBP, ts.PostSI, ts.PostDI, ts.PostFlags)
}

// FlagChanges lists the named flags whose value differs between the
// pre- and post-execution snapshots, e.g. "+CF", "-ZF".
func (ts TraceStep) FlagChanges() []string {
	if ts.PreFlags == ts.PostFlags {
		return nil
	}

	names := []struct {
		bit  uint16
		name string
	}{
		{1 << FlagCarry, "CF"}, {1 << FlagParity, "PF"}, {1 << FlagAuxCarry, "AF"},
		{1 << FlagZero, "ZF"}, {1 << FlagSign, "SF"}, {1 << FlagTrap, "TF"},
		{1 << FlagInterrupt, "IF"}, {1 << FlagDirection, "DF"}, {1 << FlagOverflow, "OF"},
	}

	var changes []string
	for _, n := range names {
		before := ts.PreFlags&n.bit != 0
		after := ts.PostFlags&n.bit != 0
		if before == after {
			continue
		}
		if after {
			changes = append(changes, "+"+n.name)
		} else {
			changes = append(changes, "-"+n.name)
		}
	}
	return changes
}
