package main

// Stack-manipulation primitives on the string stack, grounded on
// bfd/doc/chew.c's other_dup, drop, swap, remchar, icatstr, catstrif,
// maybecatstr and strip_trailing_newlines.

func primDup(it *Interpreter) {
	src := it.strs.tos()
	dst := it.strs.push(it.halt)
	dst.puts(src.bytes())
}

func primDrop(it *Interpreter) {
	it.strs.drop(it.halt)
}

func primSwap(it *Interpreter) {
	it.strs.swap(it.halt)
}

func primRemchar(it *Interpreter) {
	it.strs.tos().truncateOne()
}

// primCatstr appends the top string to the slot beneath it, then releases
// the top.
func primCatstr(it *Interpreter) {
	it.strs.collapseTop(true, it.halt)
}

// primCatstrif is catstr gated on a popped integer-stack condition.
func primCatstrif(it *Interpreter) {
	cond := it.ints.pop(it.halt)
	it.strs.collapseTop(cond != 0, it.halt)
}

// primMaybecatstr is catstr gated on internalWanted matching the
// internalmode variable.
func primMaybecatstr(it *Interpreter) {
	it.strs.collapseTop(it.internalWanted == it.vars.get(it.internalModeVar), it.halt)
}

func primStripTrailingNewlines(it *Interpreter) {
	b := it.strs.tos()
	for n := b.len(); n > 0; n = b.len() {
		c := b.at(n - 1)
		if c == '\n' || isSpaceByte(c) {
			b.truncateOne()
			continue
		}
		break
	}
}
