package x86

// ModRM holds the decoded fields of a ModR/M byte.
type ModRM struct {
	Mod uint8 // addressing mode: 0/1/2 memory, 3 register
	Reg uint8 // register operand or Group-n sub-opcode selector
	RM  uint8 // register or memory operand
}

func decodeModRM(b uint8) ModRM {
	return ModRM{
		Mod: (b >> 6) & 0x03,
		Reg: (b >> 3) & 0x07,
		RM:  b & 0x07,
	}
}

// fetchModRM reads the ModR/M byte at IP and advances IP past it. The
// displacement, if any, is read separately by dispForModRM.
func (c *CPU) fetchModRM() ModRM {
	m := decodeModRM(c.fetch8())
	return m
}

// dispForModRM reads the displacement bytes a decoded ModR/M requires,
// if any, advancing IP. Call this only once per ModR/M, immediately
// after fetchModRM.
func (c *CPU) dispForModRM(m ModRM) int16 {
	switch {
	case m.Mod == 1:
		return int16(int8(c.fetch8()))
	case m.Mod == 2 || (m.Mod == 0 && m.RM == 6):
		return int16(c.fetch16())
	default:
		return 0
	}
}

// effectiveSegment returns the segment to use for a memory operand,
// honoring a pending segment-override prefix and otherwise falling back
// to the addressing mode's own default segment (SS for BP-based modes,
// DS for everything else).
func (c *CPU) effectiveSegment(defaultSeg uint8) uint16 {
	if c.segOverride != nil {
		return c.Seg(*c.segOverride)
	}
	return c.Seg(defaultSeg)
}

// effectiveAddress computes the physical address a ModR/M memory
// operand (Mod != 3) refers to, per the 8086's fixed base/index table.
func (c *CPU) effectiveAddress(m ModRM, disp int16) uint32 {
	var offset uint16
	defaultSeg := uint8(segDS)

	switch m.RM {
	case 0:
		offset = c.BX() + c.SI()
	case 1:
		offset = c.BX() + c.DI()
	case 2:
		offset = c.BP() + c.SI()
		defaultSeg = segSS
	case 3:
		offset = c.BP() + c.DI()
		defaultSeg = segSS
	case 4:
		offset = c.SI()
	case 5:
		offset = c.DI()
	case 6:
		if m.Mod == 0 {
			return c.phys(c.effectiveSegment(defaultSeg), uint16(disp)) // direct address, no base register, no further displacement
		}
		offset = c.BP()
		defaultSeg = segSS
	case 7:
		offset = c.BX()
	}

	if m.Mod == 1 || m.Mod == 2 {
		offset += uint16(disp)
	}

	return c.phys(c.effectiveSegment(defaultSeg), offset)
}

// readRM8 reads an 8-bit r/m operand, from a register if Mod==3 or from
// memory otherwise.
func (c *CPU) readRM8(m ModRM, disp int16) uint8 {
	if m.Mod == 3 {
		return c.Reg8(m.RM)
	}
	return c.Read8(c.effectiveAddress(m, disp))
}

// writeRM8 writes an 8-bit r/m operand.
func (c *CPU) writeRM8(m ModRM, disp int16, v uint8) {
	if m.Mod == 3 {
		c.SetReg8(m.RM, v)
		return
	}
	c.Write8(c.effectiveAddress(m, disp), v)
}

// readRM16 reads a 16-bit r/m operand.
func (c *CPU) readRM16(m ModRM, disp int16) uint16 {
	if m.Mod == 3 {
		return c.Reg16(m.RM)
	}
	return c.Read16(c.effectiveAddress(m, disp))
}

// writeRM16 writes a 16-bit r/m operand.
func (c *CPU) writeRM16(m ModRM, disp int16, v uint16) {
	if m.Mod == 3 {
		c.SetReg16(m.RM, v)
		return
	}
	c.Write16(c.effectiveAddress(m, disp), v)
}
