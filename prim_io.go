package main

import "fmt"

// Integer-stack and I/O primitives, grounded on bfd/doc/chew.c's idrop,
// bang, atsign, stdout_, stderr_, print, hello, chew_exit and
// print_stack_level.

type badPrintDestError struct{ dest int }

func (e badPrintDestError) Error() string {
	return fmt.Sprintf("print: illegal print destination %d", e.dest)
}

// earlyExit is panicked by the `exit` primitive to terminate the run
// successfully before all scripts/input are consumed, mirroring chew.c's
// chew_exit calling exit(0) directly. It is not an error: RunScript's recover
// treats it as a clean stop.
type earlyExit struct{}

func (earlyExit) Error() string { return "exit" }

func primIdrop(it *Interpreter) {
	it.ints.pop(it.halt)
}

// primBang implements `!`: pop address then value, store value at address.
func primBang(it *Interpreter) {
	addr := it.ints.pop(it.halt)
	val := it.ints.pop(it.halt)
	it.vars.set(addr, val)
}

// primAtsign implements `@`: replace top with the integer loaded from the
// address it holds.
func primAtsign(it *Interpreter) {
	addr := it.ints.pop(it.halt)
	it.ints.push(it.vars.get(addr), it.halt)
}

func primStdout(it *Interpreter) { it.ints.push(1, it.halt) }
func primStderr(it *Interpreter) { it.ints.push(2, it.halt) }

// primPrint writes the string at the top of the string stack to the file
// descriptor selected by the top of the integer stack (1 or 2). Both
// operands are popped regardless of path, per spec.md §4.2.
func primPrint(it *Interpreter) {
	dest := it.ints.pop(it.halt)
	buf := it.strs.tos()
	switch dest {
	case 1:
		if _, err := buf.writeTo(it.out); err != nil {
			it.halt(err)
		}
	case 2:
		if _, err := buf.writeTo(it.errOut); err != nil {
			it.halt(err)
		}
	default:
		it.strs.drop(it.halt)
		it.halt(badPrintDestError{dest})
		return
	}
	it.strs.drop(it.halt)
}

// primHello is a trivial diagnostic primitive carried over from the
// original program's built-in "hello" command.
func primHello(it *Interpreter) {
	fmt.Fprint(it.out, "hello\n")
}

// primExit terminates the run immediately and successfully.
func primExit(it *Interpreter) {
	if it.out != nil {
		_ = it.out.Flush()
	}
	panic(earlyExit{})
}

// primPrintStackLevel reports current stack depths to stderr, for script
// debugging.
func primPrintStackLevel(it *Interpreter) {
	fmt.Fprintf(it.errOut, "current string stack depth = %d, current integer stack depth = %d\n",
		it.strs.top, it.ints.depth())
}
