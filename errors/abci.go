package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the ABCI response code signaling that the
	// processing was successful.
	SuccessABCICode uint32 = 0

	// Unclassified errors are reported with a generic code and message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the ABCI code and log message for given error, as
// consumed by the tendermint client.
//
// Any error that does not provide ABCICode information is considered
// internal and reported with code 1. Unless running in debug mode, the
// message of an internal error is replaced with "internal error".
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalABCICode {
		return code, internalABCILog
	}
	return code, err.Error()
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the first ABCI code found while unwrapping given error.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// Redact replaces all errors that do not wrap a registered error, and all
// recovered panics, with a generic internal error. It is a no-op in debug
// mode.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
