package x86

import (
	"testing"

	"x8086/assert"
)

func TestReadWrite8RoundTrip(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	c.Write8(0x100, 0x5A)
	assert.Equal(t, uint8(0x5A), c.Read8(0x100))
}

func TestReadWrite16LittleEndian(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	c.Write16(0x200, 0xBEEF)
	assert.Equal(t, uint8(0xEF), c.Read8(0x200))
	assert.Equal(t, uint8(0xBE), c.Read8(0x201))
	assert.Equal(t, uint16(0xBEEF), c.Read16(0x200))
}

func TestReadOutOfBoundsReturnsFF(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	addr := uint32(c.RAMSize())
	assert.Equal(t, uint8(0xFF), c.Read8(addr))
}

func TestWriteOutOfBoundsDiscarded(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	addr := uint32(c.RAMSize())
	c.Write8(addr, 0x42)
	assert.Equal(t, uint8(0xFF), c.Read8(addr))
}

func TestPhysWraparound(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	got := c.phys(0xFFFF, 0xFFFF)
	want := (uint32(0xFFFF)<<4 + uint32(0xFFFF)) & AddressMask
	assert.Equal(t, want, got)
	assert.True(t, got <= AddressMask)
}

func TestSegmentedReadWrite(t *testing.T) {
	c, err := New(MaxRAMSize)
	assert.NoError(t, err)

	c.WriteSegmented8(0x1000, 0x0010, 0x99)
	assert.Equal(t, uint8(0x99), c.ReadSegmented8(0x1000, 0x0010))
	assert.Equal(t, uint8(0x99), c.Read8(c.phys(0x1000, 0x0010)))

	c.WriteSegmented16(0x1000, 0x0020, 0xCAFE)
	assert.Equal(t, uint16(0xCAFE), c.ReadSegmented16(0x1000, 0x0020))
}

func TestSegmentedAliasing(t *testing.T) {
	c, err := New(MaxRAMSize)
	assert.NoError(t, err)

	// 0x1000:0x0010 and 0x1001:0x0000 address the same physical byte.
	c.WriteSegmented8(0x1000, 0x0010, 0x7B)
	assert.Equal(t, uint8(0x7B), c.ReadSegmented8(0x1001, 0x0000))
}
