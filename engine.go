package main

import "fmt"

// undefinedWordCallError is raised when a compiled call cell whose lookup
// failed at compile time is actually executed — spec.md §7: "produce a body
// cell whose call target is null (runtime crash if ever executed)".
type undefinedWordCallError struct{ name string }

func (e undefinedWordCallError) Error() string {
	return fmt.Sprintf("call to undefined word %q", e.name)
}

// exec runs a compiled word's body to completion. Per spec.md §4.4, a call
// cell recurses through exec using the host call stack rather than an
// explicit return-stack data structure — recursion depth is therefore
// bounded by the Go call stack, not by a separately sized structure.
func (it *Interpreter) exec(w *word) {
	for i := range w.body {
		c := &w.body[i]
		switch c.kind {
		case cellEnd:
			return
		case cellPrim:
			c.prim(it)
		case cellCall:
			if c.call == nil {
				it.halt(undefinedWordCallError{c.callName})
			}
			it.exec(c.call)
		case cellText:
			b := it.strs.push(it.halt)
			b.puts(c.text)
		case cellNumber:
			it.ints.push(c.num, it.halt)
		case cellPushVariable:
			it.ints.push(c.num, it.halt)
		}
	}
}

// run executes the word named name, if defined.
func (it *Interpreter) run(name string) bool {
	w := it.dict.lookup(name)
	if w == nil {
		return false
	}
	it.exec(w)
	return true
}
