package x86

import (
	"x8086/log"
)

// Layout of the flat state buffer. A CPU's entire architectural state -
// general registers, segment registers, flags and RAM - lives in one
// []byte so a host can read or write it directly without going through
// accessor methods. This layout is part of the public ABI; nothing in
// this package may reorder it.
const (
	regionGeneral = 0  // 8 x 16-bit general registers, 16 bytes
	regionSegment = 16 // 4 x 16-bit segment registers, 8 bytes
	regionIP      = 24 // instruction pointer, 2 bytes
	regionFlags   = 26 // 16 x 1-byte flag cells, 16 bytes
	regionRAM     = 42 // real-mode 20-bit address space starts here

	// MinRAMSize and MaxRAMSize bound the RAM region of the buffer,
	// matching the 8086's addressable range.
	MinRAMSize = 64 * 1024
	MaxRAMSize = 1024 * 1024

	// AddressMask truncates a linear address to the 8086's 20-bit bus.
	AddressMask = 0x000FFFFF
)

// General-register slot order within regionGeneral, matching the 3-bit
// ModR/M and opcode-embedded register encodings.
const (
	regAX = iota
	regCX
	regDX
	regBX
	regSP
	regBP
	regSI
	regDI
)

// Segment-register slot order within regionSegment, matching the 2-bit
// segment encoding used by MOV Sreg and the segment-override prefixes.
const (
	segES = iota
	segCS
	segSS
	segDS
)

// reg8Offset maps a 3-bit ModR/M register field to its byte offset inside
// regionGeneral for 8-bit operands. The 8086 packs AL/CL/DL/BL/AH/CH/DH/BH
// as the low and high bytes of four different 16-bit registers, not as a
// contiguous run, so this is a lookup table rather than a shift.
var reg8Offset = [8]uint8{0, 2, 4, 6, 1, 3, 5, 7}

// CPU is a single-threaded, cycle-agnostic 8086 real-mode interpreter.
// It holds no architectural state beyond the flat buffer described above;
// outside it live only the halted flag, the transient decode state of the
// instruction currently in flight and the optional logger.
type CPU struct {
	buf []byte

	halted      bool
	segOverride *uint8 // pending segment-register slot for the next instruction only
	lastOpcode  uint8  // opcode byte decoded by the instruction currently executing

	logger *log.Logger
}

// New allocates a CPU with a fresh state buffer of ramSize bytes of RAM
// plus the fixed 40-byte register/flag region, and applies options.
// ramSize must fall within [MinRAMSize, MaxRAMSize].
func New(ramSize uint32, options ...Option) (*CPU, error) {
	if ramSize < MinRAMSize {
		return nil, ErrBufferTooSmall
	}
	if ramSize > MaxRAMSize {
		return nil, ErrBufferTooLarge
	}

	opts := NewOptions(options...)

	c := &CPU{
		buf:    make([]byte, regionRAM+ramSize),
		logger: opts.logger,
	}
	c.reset(opts)
	return c, nil
}

// NewFromBuffer wraps an existing, host-owned buffer instead of
// allocating one. The buffer must already be at least regionRAM plus
// MinRAMSize bytes long; its layout is defined by the region constants
// above. The CPU takes no ownership - the host may keep reading and
// writing the buffer between calls to Step or Execute.
func NewFromBuffer(buf []byte, options ...Option) (*CPU, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if len(buf) < regionRAM+MinRAMSize {
		return nil, ErrBufferTooSmall
	}
	if uint64(len(buf)) > uint64(regionRAM+MaxRAMSize) {
		return nil, ErrBufferTooLarge
	}

	opts := NewOptions(options...)
	c := &CPU{buf: buf, logger: opts.logger}
	if opts.resetOnAttach {
		c.reset(opts)
	}
	return c, nil
}

func (c *CPU) reset(opts Options) {
	c.halted = false
	c.segOverride = nil
	c.setSeg(segCS, opts.initialCS)
	c.setSeg(segDS, opts.initialDS)
	c.setSeg(segES, opts.initialES)
	c.setSeg(segSS, opts.initialSS)
	c.SetIP(opts.initialIP)
	c.SetSP(opts.initialSP)
	c.SetFlags(0) // SetFlags forces the reserved bits back on
	c.SetInterrupt(opts.interruptEnabled)
}

// Buffer returns the live state buffer backing this CPU. Writes to the
// returned slice are writes to CPU state; this is the ABI surface a
// host uses to load a program and read back results.
func (c *CPU) Buffer() []byte {
	return c.buf
}

// RAMSize returns the size of the RAM region in bytes.
func (c *CPU) RAMSize() int {
	return len(c.buf) - regionRAM
}

// Halted reports whether HLT has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// LoadProgram copies data into RAM at the given physical address. It is
// a convenience for hosts and tests; the core places no requirement on
// how a program gets into memory before Execute is called.
func (c *CPU) LoadProgram(physAddr uint32, data []byte) error {
	physAddr &= AddressMask
	end := int(physAddr) + len(data)
	if end > c.RAMSize() {
		return ErrBufferTooSmall
	}
	copy(c.buf[regionRAM+int(physAddr):], data)
	return nil
}
