package logger

import (
	"fmt"

	ulogger "github.com/mason-leap-lab/go-utils/logger"
)

// ILogger Interface shared by packages that log.
type ILogger = ulogger.Logger

var (
	// NilLogger Default logger of all packages, outputs nothing.
	NilLogger ILogger = ulogger.NilLogger
)

// Func Function wrapper that support lazy evaluation for the logger
type Func func() string

func (f Func) String() string {
	return f()
}

// NewFunc Create the function wrapper for func() string
func NewFunc(f Func) Func {
	return f
}

// NewFormatFunc Create the function wrapper that compatible with fmt.Sprintf
func NewFormatFunc(msg string, args ...interface{}) Func {
	return func() string {
		return fmt.Sprintf(msg, args...)
	}
}

// String helper that ensure safely output
func SafeString(msg string, sz int) string {
	if len(msg) < sz+1 {
		return msg
	} else {
		msg = msg[:sz]
		return msg + "..."
	}
}
