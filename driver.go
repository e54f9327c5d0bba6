package main

// runDriver is the driver loop, grounded on bfd/doc/chew.c's perform: it resets
// the string stack, then walks the scan buffer looking for command lines
// (spec.md's all-uppercase/space/underscore lines longer than 3 chars),
// executing the dictionary word named by each one it finds.
func (it *Interpreter) runDriver() {
	it.strs.reset()

	for it.scanIdx < len(it.scan) {
		if isCommandLine(it.scan, it.scanIdx) {
			sc := &scriptScanner{src: it.scan, pos: it.scanIdx}
			tok, ok := sc.next()
			if !ok {
				it.scanIdx = skipPastNewline1(it.scan, it.scanIdx)
				continue
			}
			w := it.dict.lookup(tok.text)
			if w == nil {
				it.warnf("%s is not recognised", tok.text)
				it.scanIdx = skipPastNewline1(it.scan, it.scanIdx)
				continue
			}
			if it.trace && it.logf != nil {
				it.logf("exec %s", tok.text)
			}
			it.exec(w)
		} else {
			it.scanIdx = skipPastNewline1(it.scan, it.scanIdx)
		}
	}
}
