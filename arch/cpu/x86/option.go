package x86

import "x8086/log"

// Options holds CPU construction and reset-time configuration.
type Options struct {
	systemType string

	initialIP uint16
	initialSP uint16
	initialCS uint16
	initialDS uint16
	initialES uint16
	initialSS uint16

	interruptEnabled bool

	logger *log.Logger

	// resetOnAttach controls whether NewFromBuffer resets the initial
	// register values into a host-supplied buffer. A host that is
	// resuming a previously saved state passes false.
	resetOnAttach bool
}

// Option represents a CPU configuration option function.
type Option func(*Options)

// NewOptions creates new options with defaults applied.
func NewOptions(options ...Option) Options {
	opts := Options{
		systemType:       "",
		initialIP:        0x0000,
		initialSP:        0xFFFE,
		initialCS:        0xF000,
		initialDS:        0x0000,
		initialES:        0x0000,
		initialSS:        0x0000,
		interruptEnabled: false,
		resetOnAttach:    true,
	}

	for _, option := range options {
		option(&opts)
	}

	return opts
}

// WithSystemType sets the system type, for host bookkeeping only; the
// core itself does not branch on it.
func WithSystemType(systemType string) Option {
	return func(opts *Options) {
		opts.systemType = systemType
	}
}

// WithInitialIP sets the initial instruction pointer.
func WithInitialIP(ip uint16) Option {
	return func(opts *Options) {
		opts.initialIP = ip
	}
}

// WithInitialSP sets the initial stack pointer.
func WithInitialSP(sp uint16) Option {
	return func(opts *Options) {
		opts.initialSP = sp
	}
}

// WithInitialCS sets the initial code segment.
func WithInitialCS(cs uint16) Option {
	return func(opts *Options) {
		opts.initialCS = cs
	}
}

// WithInitialDS sets the initial data segment.
func WithInitialDS(ds uint16) Option {
	return func(opts *Options) {
		opts.initialDS = ds
	}
}

// WithInitialES sets the initial extra segment.
func WithInitialES(es uint16) Option {
	return func(opts *Options) {
		opts.initialES = es
	}
}

// WithInitialSS sets the initial stack segment.
func WithInitialSS(ss uint16) Option {
	return func(opts *Options) {
		opts.initialSS = ss
	}
}

// WithInterrupts seeds the initial IF flag.
func WithInterrupts(enabled bool) Option {
	return func(opts *Options) {
		opts.interruptEnabled = enabled
	}
}

// WithLogger attaches a logger the core uses for decode-anomaly and
// out-of-bounds diagnostics. Without one, the core logs nothing.
func WithLogger(logger *log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// WithResetOnAttach controls whether NewFromBuffer applies the initial
// register values to a host-supplied buffer. Defaults to true; a host
// resuming a previously saved state passes false.
func WithResetOnAttach(reset bool) Option {
	return func(opts *Options) {
		opts.resetOnAttach = reset
	}
}

// WithDOSDefaults sets reasonable defaults for DOS .COM development.
func WithDOSDefaults() Option {
	return func(opts *Options) {
		opts.systemType = "dos"
		opts.initialCS = 0x1000
		opts.initialDS = 0x1000
		opts.initialES = 0x1000
		opts.initialSS = 0x2000
		opts.initialSP = 0xFFFE
		opts.initialIP = 0x0100
		opts.interruptEnabled = true
	}
}

// WithBIOSDefaults sets defaults for BIOS/ROM development.
func WithBIOSDefaults() Option {
	return func(opts *Options) {
		opts.systemType = "bios"
		opts.initialCS = 0xF000
		opts.initialDS = 0x0000
		opts.initialES = 0x0000
		opts.initialSS = 0x0000
		opts.initialSP = 0x0400
		opts.initialIP = 0xFFF0
		opts.interruptEnabled = false
	}
}
