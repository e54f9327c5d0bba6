package main

// Scan-buffer primitives, grounded on bfd/doc/chew.c's skip_past_newline_1,
// skip_past_newline, copy_past_newline, icopy_past_newline,
// get_stuff_in_command and iscommand.

// skipPastNewline1 advances idx past the next newline in src, or to the end
// of src if none remains.
func skipPastNewline1(src []byte, idx int) int {
	for idx < len(src) && src[idx] != '\n' {
		idx++
	}
	if idx < len(src) {
		return idx + 1
	}
	return idx
}

// isCommandLine reports whether the line starting at idx is a command line:
// all uppercase/space/underscore, longer than 3 characters.
func isCommandLine(src []byte, idx int) bool {
	n := 0
	for idx < len(src) {
		c := src[idx]
		switch {
		case c >= 'A' && c <= 'Z', c == ' ', c == '_':
			n++
			idx++
		case c == '\n':
			return n > 3
		default:
			return false
		}
	}
	return false
}

// copyPastNewline copies src[idx:] up to and including the next newline
// into dst, expanding tabs to the next multiple of 8 columns. It returns the
// index just past the consumed newline.
func copyPastNewline(src []byte, idx int, dst *byteBuffer) int {
	column := 0
	for idx < len(src) && src[idx] != '\n' {
		if src[idx] == '\t' {
			for {
				dst.putc(' ')
				column++
				if column&7 == 0 {
					break
				}
			}
		} else {
			dst.putc(src[idx])
			column++
		}
		idx++
	}
	if idx < len(src) {
		dst.putc(src[idx])
		idx++
	}
	return idx
}

func primSkipPastNewline(it *Interpreter) {
	it.scanIdx = skipPastNewline1(it.scan, it.scanIdx)
}

func primCopyPastNewline(it *Interpreter) {
	b := it.strs.push(it.halt)
	it.scanIdx = copyPastNewline(it.scan, it.scanIdx, b)
}

// primGetStuffInCommand copies scan-buffer lines onto a freshly pushed
// string, stopping (without consuming) at the next command line or end of
// buffer.
func primGetStuffInCommand(it *Interpreter) {
	b := it.strs.push(it.halt)
	for it.scanIdx < len(it.scan) {
		if isCommandLine(it.scan, it.scanIdx) {
			break
		}
		it.scanIdx = copyPastNewline(it.scan, it.scanIdx, b)
	}
}
