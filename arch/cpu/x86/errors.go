package x86

import "errors"

// Construction-time errors. The core never returns these, or any other
// error, from Step or Execute: a malformed or undefined instruction byte
// always decodes to something and execution continues.
var (
	ErrNilBuffer      = errors.New("state buffer is nil")
	ErrBufferTooSmall = errors.New("state buffer smaller than minimum RAM size")
	ErrBufferTooLarge = errors.New("state buffer larger than maximum RAM size")
)
