package x86

// add8 computes dst+src+cin, sets CF/AF/OF/SF/ZF/PF from the result and
// returns it. cin is the incoming carry, 0 or 1, letting ADC share this
// with ADD instead of folding the carry into an operand beforehand.
func (c *CPU) add8(dst, src uint8, cin uint8) uint8 {
	sum := uint16(dst) + uint16(src) + uint16(cin)
	result := uint8(sum)

	c.SetCarry(sum > 0xFF)
	c.SetAuxCarry((dst&0x0F)+(src&0x0F)+cin > 0x0F)
	c.SetOverflow((dst^src^0x80)&(dst^result)&0x80 != 0)
	c.SetSZP8(result)
	return result
}

// add16 is add8's 16-bit counterpart.
func (c *CPU) add16(dst, src uint16, cin uint16) uint16 {
	sum := uint32(dst) + uint32(src) + uint32(cin)
	result := uint16(sum)

	c.SetCarry(sum > 0xFFFF)
	c.SetAuxCarry((dst&0x0F)+(src&0x0F)+uint16(cin&0x0F) > 0x0F)
	c.SetOverflow((dst^src^0x8000)&(dst^result)&0x8000 != 0)
	c.SetSZP16(result)
	return result
}

// sub8 computes dst-src-cin (cin is the incoming borrow for SBB, 0 for
// plain SUB/CMP), sets flags and returns the result.
func (c *CPU) sub8(dst, src uint8, cin uint8) uint8 {
	diff := uint16(dst) - uint16(src) - uint16(cin)
	result := uint8(diff)

	c.SetCarry(uint16(dst) < uint16(src)+uint16(cin))
	c.SetAuxCarry(int16(dst&0x0F)-int16(src&0x0F)-int16(cin) < 0)
	c.SetOverflow((dst^src)&(dst^result)&0x80 != 0)
	c.SetSZP8(result)
	return result
}

// sub16 is sub8's 16-bit counterpart.
func (c *CPU) sub16(dst, src uint16, cin uint16) uint16 {
	diff := uint32(dst) - uint32(src) - uint32(cin)
	result := uint16(diff)

	c.SetCarry(uint32(dst) < uint32(src)+uint32(cin))
	c.SetAuxCarry(int32(dst&0x0F)-int32(src&0x0F)-int32(cin) < 0)
	c.SetOverflow((dst^src)&(dst^result)&0x8000 != 0)
	c.SetSZP16(result)
	return result
}

// logic8 applies a bitwise op's SZP result and clears CF/OF/AF, matching
// AND/OR/XOR/TEST on real 8086 hardware (AF is documented undefined; this
// core clears it for determinism).
func (c *CPU) logic8(result uint8) uint8 {
	c.SetCarry(false)
	c.SetOverflow(false)
	c.SetAuxCarry(false)
	c.SetSZP8(result)
	return result
}

func (c *CPU) logic16(result uint16) uint16 {
	c.SetCarry(false)
	c.SetOverflow(false)
	c.SetAuxCarry(false)
	c.SetSZP16(result)
	return result
}

// inc8 and dec8 are ADD/SUB by 1 that leave CF untouched, matching the
// documented INC/DEC behavior (the Design Notes correction: these are
// not plain add8/sub8 calls with cin=0, since those would clobber CF).
func (c *CPU) inc8(v uint8) uint8 {
	saved := c.GetCarry()
	result := c.add8(v, 1, 0)
	c.SetCarry(saved)
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	saved := c.GetCarry()
	result := c.sub8(v, 1, 0)
	c.SetCarry(saved)
	return result
}

func (c *CPU) inc16(v uint16) uint16 {
	saved := c.GetCarry()
	result := c.add16(v, 1, 0)
	c.SetCarry(saved)
	return result
}

func (c *CPU) dec16(v uint16) uint16 {
	saved := c.GetCarry()
	result := c.sub16(v, 1, 0)
	c.SetCarry(saved)
	return result
}

// daa adjusts AL after a BCD addition.
func (c *CPU) daa() {
	al := c.AL()
	oldAL := al
	oldCF := c.GetCarry()
	cf := false

	if al&0x0F > 9 || c.GetAuxCarry() {
		carry := uint16(al) + 6
		al = uint8(carry)
		c.SetAuxCarry(true)
		cf = oldCF || carry > 0xFF
	}
	if oldAL > 0x99 || oldCF {
		al += 0x60
		cf = true
	}

	c.SetCarry(cf)
	c.SetSZP8(al)
	c.SetAL(al)
}

// das adjusts AL after a BCD subtraction.
func (c *CPU) das() {
	al := c.AL()
	oldAL := al
	oldCF := c.GetCarry()
	cf := false

	if al&0x0F > 9 || c.GetAuxCarry() {
		cf = oldCF || al < 6
		al -= 6
		c.SetAuxCarry(true)
	}
	if oldAL > 0x99 || oldCF {
		al -= 0x60
		cf = true
	}

	c.SetCarry(cf)
	c.SetSZP8(al)
	c.SetAL(al)
}

// aaa adjusts AL after a BCD addition producing an unpacked result in AL,
// carrying into AH.
func (c *CPU) aaa() {
	al := c.AL()
	if al&0x0F > 9 || c.GetAuxCarry() {
		c.SetAL(al + 6)
		c.SetAH(c.AH() + 1)
		c.SetAuxCarry(true)
		c.SetCarry(true)
	} else {
		c.SetAuxCarry(false)
		c.SetCarry(false)
	}
	c.SetAL(c.AL() & 0x0F)
}

// aas adjusts AL after a BCD subtraction producing an unpacked result.
func (c *CPU) aas() {
	al := c.AL()
	if al&0x0F > 9 || c.GetAuxCarry() {
		c.SetAL(al - 6)
		c.SetAH(c.AH() - 1)
		c.SetAuxCarry(true)
		c.SetCarry(true)
	} else {
		c.SetAuxCarry(false)
		c.SetCarry(false)
	}
	c.SetAL(c.AL() & 0x0F)
}
