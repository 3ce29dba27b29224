// Package x86 implements a deterministic, cycle-agnostic interpreter for
// the Intel 8086 real-mode instruction subset.
//
// All architectural state - general registers, segment registers, the
// instruction pointer, flags and RAM - lives in a single flat byte
// buffer. A host can allocate one with New, or wrap an existing buffer
// with NewFromBuffer and read or write it directly; the buffer layout is
// part of the package's API, not an implementation detail.
//
// Step decodes and executes exactly one instruction. Execute runs Step
// in a loop for a caller-supplied instruction budget, stopping early on
// HLT. Neither ever fails on program bytes: a malformed or unimplemented
// opcode always decodes to some defined, documented behavior, usually a
// no-op. Construction is the only place this package returns errors.
//
// Example usage:
//
//	cpu, err := x86.New(64 * 1024, x86.WithInitialCS(0x0000))
//	if err != nil {
//		log.Fatal(err)
//	}
//	cpu.LoadProgram(0, program)
//	if _, err := cpu.Execute(1000); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("AX=%04X\n", cpu.AX())
package x86
