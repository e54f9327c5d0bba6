/* Package main implements chew: a tiny stack-threaded interpreter used to
strip documentation comments out of source files and re-render them
according to whatever formatting words a -f script defines.

Input is read whole from stdin and passed through a pre-filter that keeps
only the interiors of C-style block comments that open at the start of a
line, ending each kept fragment with an ENDDD sentinel line. Each -f
script is then compiled into the dictionary and run against that same
filtered buffer: compiling adds colon-definitions and variable declarations,
and running walks the buffer looking for command lines (a line that is
entirely upper-case letters, spaces and underscores, and longer than three
characters) to execute as dictionary words.

See interp.go and SPEC_FULL.md for the rest of the picture.
*/
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/doctool/chew/internal/logio"
)

// fileList collects the repeated -f PATH flag, in the order given.
type fileList []string

func (fl *fileList) String() string { return fmt.Sprint(*fl) }
func (fl *fileList) Set(path string) error {
	*fl = append(*fl, path)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: -[d|i|g] <file >file\n")
	os.Exit(33)
}

func main() {
	var (
		files    fileList
		internal bool
		warn     bool
		trace    bool
		dump     bool
	)
	flag.Var(&files, "f", "compile and run a word-definition script (repeatable)")
	flag.BoolVar(&internal, "i", false, "want internal-mode documentation")
	flag.BoolVar(&warn, "w", false, "warn about unrecognised commands and words")
	flag.BoolVar(&trace, "trace", false, "log every command word the driver executes")
	flag.BoolVar(&dump, "dump", false, "print a dictionary/stack dump after execution")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	internalWanted := 0
	if internal {
		internalWanted = 1
	}

	it := New(
		WithOutput(os.Stdout),
		WithErrorOutput(os.Stderr),
		WithInternal(internalWanted),
		WithWarn(warn),
		WithTrace(trace),
		WithLogf(log.Leveledf("chew")),
	)
	defer it.out.Flush()

	if dump {
		defer interpDumper{it: it, out: os.Stderr}.dump()
	}

	raw, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.ErrorIf(err)
		log.SetExitCode(33)
		return
	}
	it.SetScanBuffer(prefilter(raw))

	for _, path := range files {
		src, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Can't open the input file %s\n", path)
			log.SetExitCode(33)
			return
		}
		if err := it.RunScript(path, src); err != nil {
			log.ErrorIf(err)
			return
		}
	}

	if _, err := it.strs.slots[0].writeTo(it.out); err != nil {
		log.ErrorIf(err)
		return
	}

	if it.strs.top != 0 {
		fmt.Fprintf(os.Stderr, "finishing with current stack level %d\n", it.strs.top)
		log.SetExitCode(1)
	}
}
