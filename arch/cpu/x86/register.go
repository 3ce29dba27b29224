package x86

import "encoding/binary"

// get16 reads a little-endian word at the given byte offset in buf.
func (c *CPU) get16(off int) uint16 {
	return binary.LittleEndian.Uint16(c.buf[off:])
}

func (c *CPU) set16(off int, v uint16) {
	binary.LittleEndian.PutUint16(c.buf[off:], v)
}

// Reg16 returns the value of the 16-bit general register selected by its
// 3-bit encoding (0=AX, 1=CX, 2=DX, 3=BX, 4=SP, 5=BP, 6=SI, 7=DI).
func (c *CPU) Reg16(reg uint8) uint16 {
	return c.get16(regionGeneral + 2*int(reg&7))
}

// SetReg16 stores a value into the 16-bit general register selected by
// its 3-bit encoding.
func (c *CPU) SetReg16(reg uint8, v uint16) {
	c.set16(regionGeneral+2*int(reg&7), v)
}

// Reg8 returns the value of the 8-bit general register selected by its
// 3-bit encoding (0=AL, 1=CL, 2=DL, 3=BL, 4=AH, 5=CH, 6=DH, 7=BH) via the
// nonuniform byte-offset table - these are not a contiguous run of bytes.
func (c *CPU) Reg8(reg uint8) uint8 {
	return c.buf[regionGeneral+int(reg8Offset[reg&7])]
}

// SetReg8 stores a value into the 8-bit general register selected by its
// 3-bit encoding.
func (c *CPU) SetReg8(reg uint8, v uint8) {
	c.buf[regionGeneral+int(reg8Offset[reg&7])] = v
}

// Seg returns the value of the segment register selected by its 2-bit
// encoding (0=ES, 1=CS, 2=SS, 3=DS).
func (c *CPU) Seg(seg uint8) uint16 {
	return c.get16(regionSegment + 2*int(seg&3))
}

func (c *CPU) setSeg(seg uint8, v uint16) {
	c.set16(regionSegment+2*int(seg&3), v)
}

// Named accessors matching the architectural register names, used
// throughout the instruction handlers for readability.
func (c *CPU) AX() uint16    { return c.Reg16(regAX) }
func (c *CPU) CX() uint16    { return c.Reg16(regCX) }
func (c *CPU) DX() uint16    { return c.Reg16(regDX) }
func (c *CPU) BX() uint16    { return c.Reg16(regBX) }
func (c *CPU) SP() uint16    { return c.Reg16(regSP) }
func (c *CPU) BP() uint16    { return c.Reg16(regBP) }
func (c *CPU) SI() uint16    { return c.Reg16(regSI) }
func (c *CPU) DI() uint16    { return c.Reg16(regDI) }
func (c *CPU) SetAX(v uint16) { c.SetReg16(regAX, v) }
func (c *CPU) SetCX(v uint16) { c.SetReg16(regCX, v) }
func (c *CPU) SetDX(v uint16) { c.SetReg16(regDX, v) }
func (c *CPU) SetBX(v uint16) { c.SetReg16(regBX, v) }
func (c *CPU) SetSP(v uint16) { c.SetReg16(regSP, v) }
func (c *CPU) SetBP(v uint16) { c.SetReg16(regBP, v) }
func (c *CPU) SetSI(v uint16) { c.SetReg16(regSI, v) }
func (c *CPU) SetDI(v uint16) { c.SetReg16(regDI, v) }

func (c *CPU) AL() uint8      { return c.Reg8(0) }
func (c *CPU) CL() uint8      { return c.Reg8(1) }
func (c *CPU) DL() uint8      { return c.Reg8(2) }
func (c *CPU) BL() uint8      { return c.Reg8(3) }
func (c *CPU) AH() uint8      { return c.Reg8(4) }
func (c *CPU) CH() uint8      { return c.Reg8(5) }
func (c *CPU) DH() uint8      { return c.Reg8(6) }
func (c *CPU) BH() uint8      { return c.Reg8(7) }
func (c *CPU) SetAL(v uint8)  { c.SetReg8(0, v) }
func (c *CPU) SetCL(v uint8)  { c.SetReg8(1, v) }
func (c *CPU) SetDL(v uint8)  { c.SetReg8(2, v) }
func (c *CPU) SetBL(v uint8)  { c.SetReg8(3, v) }
func (c *CPU) SetAH(v uint8)  { c.SetReg8(4, v) }
func (c *CPU) SetCH(v uint8)  { c.SetReg8(5, v) }
func (c *CPU) SetDH(v uint8)  { c.SetReg8(6, v) }
func (c *CPU) SetBH(v uint8)  { c.SetReg8(7, v) }

func (c *CPU) ES() uint16 { return c.Seg(segES) }
func (c *CPU) CS() uint16 { return c.Seg(segCS) }
func (c *CPU) SS() uint16 { return c.Seg(segSS) }
func (c *CPU) DS() uint16 { return c.Seg(segDS) }

// IP returns the instruction pointer.
func (c *CPU) IP() uint16 { return c.get16(regionIP) }

// SetIP sets the instruction pointer.
func (c *CPU) SetIP(v uint16) { c.set16(regionIP, v) }

// CSIP returns the physical address of the byte CS:IP currently points
// to.
func (c *CPU) CSIP() uint32 {
	return c.phys(c.CS(), c.IP())
}
