package main

import (
	"fmt"
	"strconv"

	"github.com/doctool/chew/internal/srcinput"
)

// token is one lexical item out of a script: either a bare word or a
// double-quoted, backslash-decoded string literal.
type token struct {
	text     string // decoded text (quotes stripped, escapes applied)
	isString bool
	pos      int // byte offset of the token's start, for diagnostics
}

// scriptScanner tokenizes a script's source per spec.md §4.3: whitespace
// delimits words, lines starting with `-` are comments, and `"..."` is a
// single backslash-decoded token.
type scriptScanner struct {
	src []byte
	pos int
}

func (sc *scriptScanner) skipSpaceAndComments() {
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		if c == '-' {
			for sc.pos < len(sc.src) && sc.src[sc.pos] != '\n' {
				sc.pos++
			}
			continue
		}
		if isSpaceByte(c) {
			sc.pos++
			continue
		}
		break
	}
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// next returns the next token, or ok=false at end of input.
func (sc *scriptScanner) next() (tok token, ok bool) {
	sc.skipSpaceAndComments()
	if sc.pos >= len(sc.src) {
		return token{}, false
	}

	start := sc.pos
	if sc.src[sc.pos] == '"' {
		sc.pos++
		bodyStart := sc.pos
		for sc.pos < len(sc.src) && sc.src[sc.pos] != '"' {
			if sc.src[sc.pos] == '\\' && sc.pos+1 < len(sc.src) {
				sc.pos += 2
			} else {
				sc.pos++
			}
		}
		raw := sc.src[bodyStart:sc.pos]
		if sc.pos < len(sc.src) {
			sc.pos++ // consume closing quote
		}
		return token{text: decodeEscapes(raw), isString: true, pos: start}, true
	}

	for sc.pos < len(sc.src) && !isSpaceByte(sc.src[sc.pos]) {
		sc.pos++
	}
	return token{text: string(sc.src[start:sc.pos]), pos: start}, true
}

// decodeEscapes implements the backslash decoding spec.md §4.3 specifies:
// \n -> newline, \" -> quote, \\ -> backslash, any other \x -> literal "\x".
func decodeEscapes(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				out = append(out, '\n')
				i++
				continue
			case '"', '\\':
				out = append(out, raw[i+1])
				i++
				continue
			default:
				out = append(out, '\\')
				continue
			}
		}
		out = append(out, raw[i])
	}
	return string(out)
}

// compileScript compiles one script's worth of source into the
// interpreter's dictionary: colon-definitions, variable declarations, and
// (as a top-level syntax error) anything else.
func (it *Interpreter) compileScript(name string, src []byte) {
	sc := &scriptScanner{src: src}
	for {
		tok, ok := sc.next()
		if !ok {
			return
		}
		switch {
		case tok.text == ":" && !tok.isString:
			it.compileDefinition(name, src, sc)
		case tok.text == "variable" && !tok.isString:
			it.compileVariable(name, src, sc)
		default:
			it.syntaxError(name, src, tok.pos, "unexpected top-level token %q", tok.text)
		}
	}
}

func (it *Interpreter) syntaxError(name string, src []byte, pos int, mess string, args ...interface{}) {
	loc := srcinput.Location{Name: name, Line: srcinput.LineAt(src, pos)}
	if it.logf != nil {
		it.logf("syntax error at %v: %s", loc, fmt.Sprintf(mess, args...))
	}
}

// compileDefinition handles `: NAME body ;`.
func (it *Interpreter) compileDefinition(name string, src []byte, sc *scriptScanner) {
	nameTok, ok := sc.next()
	if !ok {
		it.syntaxError(name, src, sc.pos, "unexpected end of script after ':'")
		return
	}

	w := it.dict.define(nameTok.text)
	for {
		tok, ok := sc.next()
		if !ok {
			it.syntaxError(name, src, sc.pos, "unterminated definition of %q", nameTok.text)
			return
		}
		if tok.text == ";" && !tok.isString {
			w.body = append(w.body, cell{kind: cellEnd})
			return
		}
		w.body = append(w.body, it.compileToken(name, src, tok))
	}
}

// compileVariable handles `variable NAME`.
func (it *Interpreter) compileVariable(name string, src []byte, sc *scriptScanner) {
	nameTok, ok := sc.next()
	if !ok {
		it.syntaxError(name, src, sc.pos, "unexpected end of script after 'variable'")
		return
	}
	idx := it.vars.declare()
	w := it.dict.define(nameTok.text)
	w.body = []cell{
		{kind: cellPushVariable, num: idx},
		{kind: cellEnd},
	}
}

// compileToken compiles one body token per the table in spec.md §4.3.
func (it *Interpreter) compileToken(name string, src []byte, tok token) cell {
	if tok.isString {
		return cell{kind: cellText, text: []byte(tok.text)}
	}
	if len(tok.text) > 0 && tok.text[0] >= '0' && tok.text[0] <= '9' {
		n, err := strconv.Atoi(tok.text)
		if err != nil {
			it.syntaxError(name, src, tok.pos, "bad numeric literal %q", tok.text)
		}
		return cell{kind: cellNumber, num: n}
	}
	w := it.dict.lookup(tok.text)
	if w == nil {
		it.warnf("undefined word %q at %v", tok.text, srcinput.Location{Name: name, Line: srcinput.LineAt(src, tok.pos)})
	}
	return cell{kind: cellCall, call: w, callName: tok.text}
}
