package main

// prefilter extracts the interiors of /* ... */ comments that start at the
// beginning of a line out of src, discarding everything else, and returns
// the resulting scan buffer. Grounded on bfd/doc/chew.c's
// remove_noncomments and skip_white_and_stars.
//
// A leading newline is synthesized onto src first so that a comment opening
// on the very first line of the input is still recognized as "starting a
// line" — remove_noncomments only matches '\n' '/' '*'.
func prefilter(src []byte) []byte {
	padded := make([]byte, 0, len(src)+1)
	padded = append(padded, '\n')
	padded = append(padded, src...)

	var out byteBuffer
	for idx := 0; idx < len(padded); {
		if atb(padded, idx) == '\n' && atb(padded, idx+1) == '/' && atb(padded, idx+2) == '*' {
			idx += 3
			idx = skipWhiteAndStars(padded, idx)
			if atb(padded, idx) == '.' {
				idx++
			}
			for idx < len(padded) {
				switch {
				case atb(padded, idx) == '\n':
					if atb(padded, idx+1) == '\n' {
						out.putc('\n')
					}
					out.putc('\n')
					idx++
					idx = skipWhiteAndStars(padded, idx)
				case atb(padded, idx) == '*' && atb(padded, idx+1) == '/':
					idx += 2
					out.putstr("\nENDDD\n")
					goto doneComment
				default:
					out.putc(padded[idx])
					idx++
				}
			}
		doneComment:
		} else {
			idx++
		}
	}
	return out.bytes()
}

// skipWhiteAndStars advances idx past whitespace and leading '*' characters,
// stopping short of a '*' that opens "*/" or that starts a line.
func skipWhiteAndStars(src []byte, idx int) int {
	for {
		c := atb(src, idx)
		if isSpaceC(c) {
			idx++
			continue
		}
		if c == '*' && atb(src, idx+1) != '/' && atb(src, idx-1) != '\n' {
			idx++
			continue
		}
		return idx
	}
}
