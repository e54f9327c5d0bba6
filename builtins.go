package main

// registerBuiltins installs every native primitive as a one-cell dictionary
// word, plus the internalmode variable's accessor word. Each entry mirrors
// chew.c's add_intrinsic, which installs a primitive's function pointer as a
// dictionary word's sole body cell.
func (it *Interpreter) registerBuiltins() {
	prims := map[string]primFunc{
		"dup":                      primDup,
		"drop":                     primDrop,
		"swap":                     primSwap,
		"remchar":                  primRemchar,
		"catstr":                   primCatstr,
		"catstrif":                 primCatstrif,
		"maybecatstr":              primMaybecatstr,
		"strip_trailing_newlines":  primStripTrailingNewlines,
		"idrop":                    primIdrop,
		"!":                        primBang,
		"@":                        primAtsign,
		"stdout":                   primStdout,
		"stderr":                   primStderr,
		"print":                    primPrint,
		"hello":                    primHello,
		"exit":                     primExit,
		"print_stack_level":        primPrintStackLevel,
		"skip_past_newline":        primSkipPastNewline,
		"copy_past_newline":        primCopyPastNewline,
		"get_stuff_in_command":     primGetStuffInCommand,
		"translatecomments":        primTranslatecomments,
		"wrap_comment":             primWrapComment,
		"outputdots":               primOutputdots,
		"courierize":               primCourierize,
		"bulletize":                primBulletize,
		"do_fancy_stuff":           primDoFancyStuff,
		"kill_bogus_lines":         primKillBogusLines,
		"collapse_whitespace":      primCollapseWhitespace,
		"indent":                   primIndent,
	}
	for name, fn := range prims {
		w := it.dict.define(name)
		w.body = []cell{
			{kind: cellPrim, prim: fn},
			{kind: cellEnd},
		}
	}

	it.dict.define("internalmode").body = []cell{
		{kind: cellPushVariable, num: it.internalModeVar},
		{kind: cellEnd},
	}
}
