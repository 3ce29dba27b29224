package x86

import (
	"fmt"

	"x8086/log"
)

// phys computes the 20-bit physical address for a segment:offset pair,
// wrapping on overflow the way real 8086 segmented addressing does:
// ((seg<<4)+offset) mod 2^20.
func (c *CPU) phys(segment, offset uint16) uint32 {
	return (uint32(segment)<<4 + uint32(offset)) & AddressMask
}

// Read8 reads a byte from the given physical address. Addresses outside
// the configured RAM size read back as 0xFF; this is a decode anomaly,
// not a fault, and execution continues normally.
func (c *CPU) Read8(addr uint32) uint8 {
	addr &= AddressMask
	idx := regionRAM + int(addr)
	if idx >= len(c.buf) {
		c.logOOB("read", addr)
		return 0xFF
	}
	return c.buf[idx]
}

// Read16 reads a little-endian word starting at the given physical
// address.
func (c *CPU) Read16(addr uint32) uint16 {
	lo := uint16(c.Read8(addr))
	hi := uint16(c.Read8(addr + 1))
	return hi<<8 | lo
}

// Write8 writes a byte to the given physical address. Writes outside
// the configured RAM size are silently discarded.
func (c *CPU) Write8(addr uint32, v uint8) {
	addr &= AddressMask
	idx := regionRAM + int(addr)
	if idx >= len(c.buf) {
		c.logOOB("write", addr)
		return
	}
	c.buf[idx] = v
}

// Write16 writes a little-endian word to the given physical address.
func (c *CPU) Write16(addr uint32, v uint16) {
	c.Write8(addr, uint8(v))
	c.Write8(addr+1, uint8(v>>8))
}

func (c *CPU) logOOB(op string, addr uint32) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("memory access beyond configured RAM",
		log.String("op", op),
		log.String("address", fmt.Sprintf("0x%05X", addr)),
		log.Int("ram_size", c.RAMSize()))
}

// ReadSegmented8 reads a byte at segment:offset.
func (c *CPU) ReadSegmented8(segment, offset uint16) uint8 {
	return c.Read8(c.phys(segment, offset))
}

// ReadSegmented16 reads a word at segment:offset.
func (c *CPU) ReadSegmented16(segment, offset uint16) uint16 {
	return c.Read16(c.phys(segment, offset))
}

// WriteSegmented8 writes a byte at segment:offset.
func (c *CPU) WriteSegmented8(segment, offset uint16, v uint8) {
	c.Write8(c.phys(segment, offset), v)
}

// WriteSegmented16 writes a word at segment:offset.
func (c *CPU) WriteSegmented16(segment, offset uint16, v uint16) {
	c.Write16(c.phys(segment, offset), v)
}
