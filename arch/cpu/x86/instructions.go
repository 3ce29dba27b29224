package x86

// buildArithmeticDispatch wires ADD/OR/ADC/SBB/AND/SUB/XOR/CMP/TEST/INC/DEC
// and the BCD adjust opcodes.
func buildArithmeticDispatch() {
	type family struct {
		base         uint8 // rm,reg opcode (e.g. 0x00 for ADD)
		op           func(c *CPU, dst, src uint16, width int) uint16
		alImm, axImm uint8
		write        bool // false for CMP, which discards its result
	}

	families := []family{
		{0x00, group1Add, 0x04, 0x05, true},
		{0x08, group1Or, 0x0C, 0x0D, true},
		{0x10, group1Adc, 0x14, 0x15, true},
		{0x18, group1Sbb, 0x1C, 0x1D, true},
		{0x20, group1And, 0x24, 0x25, true},
		{0x28, group1Sub, 0x2C, 0x2D, true},
		{0x30, group1Xor, 0x34, 0x35, true},
		{0x38, group1Cmp, 0x3C, 0x3D, false},
	}

	for _, f := range families {
		f := f
		bind(f.base, aluRMReg8(f.op, f.write))
		bind(f.base+1, aluRMReg16(f.op, f.write))
		bind(f.base+2, aluRegRM8(f.op, f.write))
		bind(f.base+3, aluRegRM16(f.op, f.write))
		bind(f.alImm, aluALImm8(f.op, f.write))
		bind(f.axImm, aluAXImm16(f.op, f.write))
	}

	bind(0x80, group1Dispatch8)
	bind(0x81, group1Dispatch16)
	bind(0x82, group1Dispatch8) // alias of 0x80 on real 8086
	bind(0x83, group1Dispatch16SignExtend)

	bind(0x84, testRMReg8)
	bind(0x85, testRMReg16)
	bind(0xA8, testALImm8)
	bind(0xA9, testAXImm16)

	bind(0x86, xchgRMReg8)
	bind(0x87, xchgRMReg16)
	for i := uint8(1); i < 8; i++ {
		reg := i
		bind(0x90+i, func(c *CPU) error {
			a, r := c.AX(), c.Reg16(reg)
			c.SetAX(r)
			c.SetReg16(reg, a)
			return nil
		})
	}

	for i := uint8(0); i < 8; i++ {
		reg := i
		bind(0x40+i, func(c *CPU) error { c.SetReg16(reg, c.inc16(c.Reg16(reg))); return nil })
		bind(0x48+i, func(c *CPU) error { c.SetReg16(reg, c.dec16(c.Reg16(reg))); return nil })
	}

	bind(0xFE, incDecRM8Group)
	bind(0xFF, incDecRM16Group)

	bind(0x27, func(c *CPU) error { c.daa(); return nil })
	bind(0x2F, func(c *CPU) error { c.das(); return nil })
	bind(0x37, func(c *CPU) error { c.aaa(); return nil })
	bind(0x3F, func(c *CPU) error { c.aas(); return nil })
}

// --- Group-1 ALU operations, shared by the rm,reg / reg,rm / imm forms ---

func group1Add(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		return uint16(c.add8(uint8(dst), uint8(src), 0))
	}
	return c.add16(dst, src, 0)
}

func group1Or(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		return uint16(c.logic8(uint8(dst) | uint8(src)))
	}
	return c.logic16(dst | src)
}

func group1Adc(c *CPU, dst, src uint16, width int) uint16 {
	cin := uint16(0)
	if c.GetCarry() {
		cin = 1
	}
	if width == 8 {
		return uint16(c.add8(uint8(dst), uint8(src), uint8(cin)))
	}
	return c.add16(dst, src, cin)
}

func group1Sbb(c *CPU, dst, src uint16, width int) uint16 {
	cin := uint16(0)
	if c.GetCarry() {
		cin = 1
	}
	if width == 8 {
		return uint16(c.sub8(uint8(dst), uint8(src), uint8(cin)))
	}
	return c.sub16(dst, src, cin)
}

func group1And(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		return uint16(c.logic8(uint8(dst) & uint8(src)))
	}
	return c.logic16(dst & src)
}

func group1Sub(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		return uint16(c.sub8(uint8(dst), uint8(src), 0))
	}
	return c.sub16(dst, src, 0)
}

func group1Xor(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		return uint16(c.logic8(uint8(dst) ^ uint8(src)))
	}
	return c.logic16(dst ^ src)
}

func group1Cmp(c *CPU, dst, src uint16, width int) uint16 {
	if width == 8 {
		c.sub8(uint8(dst), uint8(src), 0)
	} else {
		c.sub16(dst, src, 0)
	}
	return dst // CMP discards the result, keeps the destination unwritten
}

// aluRMReg8 builds the "op r/m8, r8" handler for a Group-1-shaped family.
// write is false for CMP, which computes flags but discards its result.
func aluRMReg8(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		dst := c.readRM8(m, disp)
		src := c.Reg8(m.Reg)
		result := uint8(op(c, uint16(dst), uint16(src), 8))
		if write {
			c.writeRM8(m, disp, result)
		}
		return nil
	}
}

func aluRegRM8(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		dst := c.Reg8(m.Reg)
		src := c.readRM8(m, disp)
		result := uint8(op(c, uint16(dst), uint16(src), 8))
		if write {
			c.SetReg8(m.Reg, result)
		}
		return nil
	}
}

func aluRMReg16(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		dst := c.readRM16(m, disp)
		src := c.Reg16(m.Reg)
		result := op(c, dst, src, 16)
		if write {
			c.writeRM16(m, disp, result)
		}
		return nil
	}
}

func aluRegRM16(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		dst := c.Reg16(m.Reg)
		src := c.readRM16(m, disp)
		result := op(c, dst, src, 16)
		if write {
			c.SetReg16(m.Reg, result)
		}
		return nil
	}
}

func aluALImm8(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		imm := c.fetch8()
		result := uint8(op(c, uint16(c.AL()), uint16(imm), 8))
		if write {
			c.SetAL(result)
		}
		return nil
	}
}

func aluAXImm16(op func(c *CPU, dst, src uint16, width int) uint16, write bool) handlerFunc {
	return func(c *CPU) error {
		imm := c.fetch16()
		result := op(c, c.AX(), imm, 16)
		if write {
			c.SetAX(result)
		}
		return nil
	}
}

// group1Dispatch8/16 implement the 0x80/0x81/0x83 immediate-to-r/m
// opcodes, sub-dispatched by the ModR/M reg field per spec.md's
// Group-1 table, replacing the donor's blank 0x80-0x83 slots.
func group1Dispatch8(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	imm := c.fetch8()
	dst := c.readRM8(m, disp)
	result := uint8(group1[m.Reg](c, uint16(dst), uint16(imm), 8))
	if m.Reg != 7 { // CMP discards the write
		c.writeRM8(m, disp, result)
	}
	return nil
}

func group1Dispatch16(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	imm := c.fetch16()
	dst := c.readRM16(m, disp)
	result := group1[m.Reg](c, dst, imm, 16)
	if m.Reg != 7 {
		c.writeRM16(m, disp, result)
	}
	return nil
}

func group1Dispatch16SignExtend(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	imm := uint16(int16(int8(c.fetch8())))
	dst := c.readRM16(m, disp)
	result := group1[m.Reg](c, dst, imm, 16)
	if m.Reg != 7 {
		c.writeRM16(m, disp, result)
	}
	return nil
}

// --- TEST / XCHG, replacing the donor's triple-defined 0x84 ---

func testRMReg8(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	c.logic8(c.readRM8(m, disp) & c.Reg8(m.Reg))
	return nil
}

func testRMReg16(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	c.logic16(c.readRM16(m, disp) & c.Reg16(m.Reg))
	return nil
}

func testALImm8(c *CPU) error {
	imm := c.fetch8()
	c.logic8(c.AL() & imm)
	return nil
}

func testAXImm16(c *CPU) error {
	imm := c.fetch16()
	c.logic16(c.AX() & imm)
	return nil
}

func xchgRMReg8(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	a, b := c.readRM8(m, disp), c.Reg8(m.Reg)
	c.writeRM8(m, disp, b)
	c.SetReg8(m.Reg, a)
	return nil
}

func xchgRMReg16(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	a, b := c.readRM16(m, disp), c.Reg16(m.Reg)
	c.writeRM16(m, disp, b)
	c.SetReg16(m.Reg, a)
	return nil
}

// --- INC/DEC r/m via the Group FE/FF ModR/M reg field ---

func incDecRM8Group(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	v := c.readRM8(m, disp)
	switch m.Reg {
	case 0:
		c.writeRM8(m, disp, c.inc8(v))
	case 1:
		c.writeRM8(m, disp, c.dec8(v))
	}
	return nil
}

// incDecRM16Group implements Group 5 (0xFF): /0 INC, /1 DEC, /6 PUSH
// r/m16. The CALL/JMP/far-call sub-cases (/2,/3,/4,/5) are left to the
// documented no-op fallback.
func incDecRM16Group(c *CPU) error {
	m := c.fetchModRM()
	disp := c.dispForModRM(m)
	switch m.Reg {
	case 0:
		c.writeRM16(m, disp, c.inc16(c.readRM16(m, disp)))
	case 1:
		c.writeRM16(m, disp, c.dec16(c.readRM16(m, disp)))
	case 6:
		c.push16(c.readRM16(m, disp))
	}
	return nil
}

// buildDataTransferDispatch wires MOV, PUSH/POP, LEA and XLAT.
func buildDataTransferDispatch() {
	bind(0x88, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.writeRM8(m, disp, c.Reg8(m.Reg))
		return nil
	})
	bind(0x89, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.writeRM16(m, disp, c.Reg16(m.Reg))
		return nil
	})
	bind(0x8A, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.SetReg8(m.Reg, c.readRM8(m, disp))
		return nil
	})
	bind(0x8B, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.SetReg16(m.Reg, c.readRM16(m, disp))
		return nil
	})
	bind(0x8D, func(c *CPU) error { // LEA r16, m - offset only, never dereferences
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.SetReg16(m.Reg, effectiveOffset(c, m, disp))
		return nil
	})
	bind(0x8C, func(c *CPU) error { // MOV r/m16, Sreg
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.writeRM16(m, disp, c.Seg(m.Reg&0x03))
		return nil
	})
	bind(0x8E, func(c *CPU) error { // MOV Sreg, r/m16
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		c.setSeg(m.Reg&0x03, c.readRM16(m, disp))
		return nil
	})
	bind(0xC6, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		imm := c.fetch8()
		c.writeRM8(m, disp, imm)
		return nil
	})
	bind(0xC7, func(c *CPU) error {
		m := c.fetchModRM()
		disp := c.dispForModRM(m)
		imm := c.fetch16()
		c.writeRM16(m, disp, imm)
		return nil
	})

	for i := uint8(0); i < 8; i++ {
		reg := i
		bind(0xB0+i, func(c *CPU) error { c.SetReg8(reg, c.fetch8()); return nil })
		bind(0xB8+i, func(c *CPU) error { c.SetReg16(reg, c.fetch16()); return nil })
	}

	bind(0xA0, func(c *CPU) error { c.SetAL(c.ReadSegmented8(c.effectiveSegment(segDS), c.fetch16())); return nil })
	bind(0xA1, func(c *CPU) error { c.SetAX(c.ReadSegmented16(c.effectiveSegment(segDS), c.fetch16())); return nil })
	bind(0xA2, func(c *CPU) error { c.WriteSegmented8(c.effectiveSegment(segDS), c.fetch16(), c.AL()); return nil })
	bind(0xA3, func(c *CPU) error { c.WriteSegmented16(c.effectiveSegment(segDS), c.fetch16(), c.AX()); return nil })

	gpPush := [8]uint8{regAX, regCX, regDX, regBX, regSP, regBP, regSI, regDI}
	for i, reg := range gpPush {
		reg := reg
		bind(uint8(0x50+i), func(c *CPU) error { c.push16(c.Reg16(reg)); return nil })
		bind(uint8(0x58+i), func(c *CPU) error { c.SetReg16(reg, c.pop16()); return nil })
	}

	segPush := []struct {
		pushOp, popOp uint8
		seg           uint8
	}{
		{0x06, 0x07, segES},
		{0x0E, 0x0F, segCS},
		{0x16, 0x17, segSS},
		{0x1E, 0x1F, segDS},
	}
	for _, s := range segPush {
		s := s
		bind(s.pushOp, func(c *CPU) error { c.push16(c.Seg(s.seg)); return nil })
	}
	bind(0x07, func(c *CPU) error { c.setSeg(segES, c.pop16()); return nil })
	// 0x0F POP CS is undocumented on real 8086 (286+ repurposes it as a
	// two-byte escape prefix); here it behaves as a plain POP into CS,
	// per the no-trap-surface scope this core targets.
	bind(0x0F, func(c *CPU) error { c.setSeg(segCS, c.pop16()); return nil })
	bind(0x17, func(c *CPU) error { c.setSeg(segSS, c.pop16()); return nil })
	bind(0x1F, func(c *CPU) error { c.setSeg(segDS, c.pop16()); return nil })

	bind(0x9C, func(c *CPU) error { c.push16(c.Packed()); return nil })
	bind(0x9D, func(c *CPU) error { c.SetFlags(c.pop16()); return nil })

	bind(0xD7, func(c *CPU) error { // XLAT: AL := [DS:BX+AL]
		c.SetAL(c.ReadSegmented8(c.effectiveSegment(segDS), c.BX()+uint16(c.AL())))
		return nil
	})
}

// effectiveOffset computes the 16-bit offset component of a ModR/M
// memory operand without forming a physical address or touching
// memory, for LEA.
func effectiveOffset(c *CPU, m ModRM, disp int16) uint16 {
	switch m.RM {
	case 0:
		return c.BX() + c.SI() + uint16(disp)
	case 1:
		return c.BX() + c.DI() + uint16(disp)
	case 2:
		return c.BP() + c.SI() + uint16(disp)
	case 3:
		return c.BP() + c.DI() + uint16(disp)
	case 4:
		return c.SI() + uint16(disp)
	case 5:
		return c.DI() + uint16(disp)
	case 6:
		if m.Mod == 0 {
			return uint16(disp)
		}
		return c.BP() + uint16(disp)
	default:
		return c.BX() + uint16(disp)
	}
}

func (c *CPU) push16(v uint16) {
	c.SetSP(c.SP() - 2)
	c.WriteSegmented16(c.SS(), c.SP(), v)
}

func (c *CPU) pop16() uint16 {
	v := c.ReadSegmented16(c.SS(), c.SP())
	c.SetSP(c.SP() + 2)
	return v
}

// buildControlFlowDispatch wires the sixteen Jcc predicates, JMP and
// CALL-less relative jumps.
func buildControlFlowDispatch() {
	predicates := [16]func(c *CPU) bool{
		func(c *CPU) bool { return c.GetOverflow() },                                  // JO
		func(c *CPU) bool { return !c.GetOverflow() },                                 // JNO
		func(c *CPU) bool { return c.GetCarry() },                                     // JB/JC
		func(c *CPU) bool { return !c.GetCarry() },                                    // JNB/JNC
		func(c *CPU) bool { return c.GetZero() },                                      // JZ/JE
		func(c *CPU) bool { return !c.GetZero() },                                     // JNZ/JNE
		func(c *CPU) bool { return c.GetCarry() || c.GetZero() },                      // JBE
		func(c *CPU) bool { return !c.GetCarry() && !c.GetZero() },                    // JNBE/JA
		func(c *CPU) bool { return c.GetSign() },                                      // JS
		func(c *CPU) bool { return !c.GetSign() },                                     // JNS
		func(c *CPU) bool { return c.GetParity() },                                    // JP/JPE
		func(c *CPU) bool { return !c.GetParity() },                                   // JNP/JPO
		func(c *CPU) bool { return c.GetSign() != c.GetOverflow() },                   // JL/JNGE
		func(c *CPU) bool { return c.GetSign() == c.GetOverflow() },                   // JNL/JGE
		func(c *CPU) bool { return c.GetZero() || c.GetSign() != c.GetOverflow() },    // JLE/JNG
		func(c *CPU) bool { return !c.GetZero() && c.GetSign() == c.GetOverflow() },   // JNLE/JG
	}

	for i, pred := range predicates {
		pred := pred
		bind(uint8(0x70+i), func(c *CPU) error {
			rel := c.fetchRel8()
			if pred(c) {
				c.SetIP(uint16(int32(c.IP()) + int32(rel)))
			}
			return nil
		})
	}

	bind(0xEB, func(c *CPU) error {
		rel := c.fetchRel8()
		c.SetIP(uint16(int32(c.IP()) + int32(rel)))
		return nil
	})
	bind(0xE9, func(c *CPU) error {
		rel := int16(c.fetch16())
		c.SetIP(uint16(int32(c.IP()) + int32(rel)))
		return nil
	})
}

// buildMiscDispatch wires NOP, HLT, flag-control, CBW/CWD and the
// segment-override prefixes' handler slots (the prefixes themselves are
// intercepted in Step before dispatch; these exist only so
// ImplementedOpcodes reports them accurately).
func buildMiscDispatch() {
	bind(0x90, func(c *CPU) error { return nil })
	bind(0xF4, func(c *CPU) error { c.halted = true; return nil })

	bind(0xF8, func(c *CPU) error { c.SetCarry(false); return nil })
	bind(0xF9, func(c *CPU) error { c.SetCarry(true); return nil })
	bind(0xF5, func(c *CPU) error { c.SetCarry(!c.GetCarry()); return nil })
	bind(0xFA, func(c *CPU) error { c.SetInterrupt(false); return nil })
	bind(0xFB, func(c *CPU) error { c.SetInterrupt(true); return nil })
	bind(0xFC, func(c *CPU) error { c.SetDirection(false); return nil })
	bind(0xFD, func(c *CPU) error { c.SetDirection(true); return nil })

	bind(0x98, func(c *CPU) error { // CBW
		al := c.AL()
		c.SetAX(uint16(int16(int8(al))))
		return nil
	})
	bind(0x99, func(c *CPU) error { // CWD
		if c.AX()&0x8000 != 0 {
			c.SetDX(0xFFFF)
		} else {
			c.SetDX(0x0000)
		}
		return nil
	})

	implemented.Add(0x26)
	implemented.Add(0x2E)
	implemented.Add(0x36)
	implemented.Add(0x3E)
}
