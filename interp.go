package main

import (
	"fmt"
	"io"

	"github.com/doctool/chew/internal/flushio"
)

// Interpreter holds all process-wide state for one run: the dictionary, both
// stacks, the variable table, the scan buffer and its index, and the I/O
// destinations. spec.md §9 ("Global mutable state") directs bundling these
// into a single context value passed to every primitive rather than package
// globals, which is exactly what this struct, together with primFunc's
// *Interpreter receiver, does.
type Interpreter struct {
	dict dictionary
	vars variables

	strs *stringStack
	ints *intStack

	scan    []byte
	scanIdx int

	internalModeVar int
	internalWanted  int
	warn            bool
	trace           bool

	out    flushio.WriteFlusher
	errOut io.Writer
	logf   func(mess string, args ...interface{})
}

// haltError is panicked by halt and recovered at the RunScript boundary, turning
// a structural fault into a returned error exactly once.
type haltError struct{ error }

func (e haltError) Error() string {
	if e.error != nil {
		return fmt.Sprintf("halted: %v", e.error)
	}
	return "halted"
}
func (e haltError) Unwrap() error { return e.error }

// halt flushes any buffered output, logs the failure, and panics so that
// RunScript's recover converts it to a returned error. It never returns.
func (it *Interpreter) halt(err error) {
	if it.out != nil {
		_ = it.out.Flush()
	}
	if it.logf != nil {
		it.logf("halt: %v", err)
	}
	panic(haltError{err})
}

func (it *Interpreter) warnf(mess string, args ...interface{}) {
	if it.warn && it.logf != nil {
		it.logf("warning: "+mess, args...)
	}
}

// newInterpreter constructs a ready-to-compile Interpreter. internalmode is
// pre-declared as spec.md §3 requires ("The process owns one pre-declared
// variable, internalmode").
func newInterpreter() *Interpreter {
	it := &Interpreter{
		strs: newStringStack(),
		ints: newIntStack(),
	}
	it.internalModeVar = it.vars.declare()
	return it
}
