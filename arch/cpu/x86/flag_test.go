package x86

import (
	"testing"

	"x8086/assert"
)

func TestReservedFlagBits(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	// Reserved bits (1, 3, 5, 12-15) always read as 1, regardless of
	// what was last written to them.
	c.SetFlags(0x0000)
	assert.Equal(t, reservedOneBits, c.Packed())

	c.SetFlags(0xFFFF)
	assert.Equal(t, uint16(0xFFFF), c.Packed())

	c.SetFlags(reservedOneBits)
	packed := c.Packed()
	assert.True(t, packed&(1<<flagReserved1) != 0)
	assert.True(t, packed&(1<<flagReserved3) != 0)
	assert.True(t, packed&(1<<flagReserved5) != 0)
	assert.True(t, packed&(1<<flagReserved12) != 0)
	assert.True(t, packed&(1<<flagReserved13) != 0)
	assert.True(t, packed&(1<<flagReserved14) != 0)
	assert.True(t, packed&(1<<flagReserved15) != 0)
}

func TestResetFlagsWord(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	// Reset FLAGS reads back as 0xF02A: only the reserved bits are set.
	assert.Equal(t, uint16(0xF02A), c.Packed())
}

func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	c, err := New(MinRAMSize)
	assert.NoError(t, err)

	c.SetCarry(true)
	c.SetZero(true)
	c.SetSign(false)
	c.SetOverflow(true)

	packed := c.Packed()
	c.SetFlags(0)
	c.SetFlags(packed)

	assert.True(t, c.GetCarry())
	assert.True(t, c.GetZero())
	assert.False(t, c.GetSign())
	assert.True(t, c.GetOverflow())
}

func TestSetSZP8(t *testing.T) {
	tests := []struct {
		name   string
		result uint8
		zero   bool
		sign   bool
		parity bool
	}{
		{"zero", 0x00, true, false, true},
		{"negative", 0x80, false, true, false},
		{"odd parity", 0x01, false, false, false},
		{"even parity nonzero", 0x03, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(MinRAMSize)
			assert.NoError(t, err)

			c.SetSZP8(tt.result)
			assert.Equal(t, tt.zero, c.GetZero())
			assert.Equal(t, tt.sign, c.GetSign())
			assert.Equal(t, tt.parity, c.GetParity())
		})
	}
}
