package main

import (
	"errors"

	"github.com/doctool/chew/internal/panicerr"
)

// New constructs a ready-to-use Interpreter, with its builtins registered
// and its dictionary empty of user-defined words.
func New(opts ...Option) *Interpreter {
	it := newInterpreter()
	defaultOptions.apply(it)
	Options(opts...).apply(it)
	it.registerBuiltins()
	return it
}

// SetScanBuffer installs the prefiltered input that the driver loop scans
// for command lines. It is set once, before any RunScript call: the scan
// position persists across scripts exactly as the original program's single
// global pos_idx does, so the first RunScript call's driver pass walks the
// buffer to its end, matched or not, and later calls find nothing left to
// scan.
func (it *Interpreter) SetScanBuffer(buf []byte) {
	it.scan = buf
	it.scanIdx = 0
}

// RunScript compiles src (a -f script's contents) under the given name, then
// runs the driver loop over the shared scan buffer, matching spec.md §6:
// "-f may appear multiple times... each -f also runs the driver loop after
// compilation". Definitions and variables compiled by one call remain
// visible to the next, and the scan position is never rewound between
// calls.
func (it *Interpreter) RunScript(name string, src []byte) error {
	return it.recoverRun(func() error {
		it.compileScript(name, src)
		it.runDriver()
		return nil
	}).unwrapHalt()
}

// runResult adapts panicerr.Recover's return value into chew's own error
// semantics: a clean `exit` primitive call is success, a halt surfaces its
// wrapped cause, anything else (a genuine Go panic) passes through.
type runResult struct{ error }

func (it *Interpreter) recoverRun(f func() error) runResult {
	return runResult{panicerr.Recover("chew", f)}
}

func (r runResult) unwrapHalt() error {
	err := r.error
	if err == nil {
		return nil
	}
	var ee earlyExit
	if errors.As(err, &ee) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		return he.error
	}
	return err
}
