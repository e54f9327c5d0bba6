package main

import (
	"io"
	"io/ioutil"

	"github.com/doctool/chew/internal/flushio"
)

// Option configures an Interpreter at construction time.
type Option interface{ apply(it *Interpreter) }

var defaultOptions = Options(
	withOutput(ioutil.Discard),
	withErrorOutput(ioutil.Discard),
)

// Options flattens a list of Options into one, the same way the teacher's
// VMOptions splices nested option lists rather than nesting them.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interpreter) {}

type options []Option

func (opts options) apply(it *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(it)
		}
	}
}

type outputOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type logfOption func(mess string, args ...interface{})
type internalOption int
type warnOption bool
type traceOption bool

func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withErrorOutput(w io.Writer) errorOutputOption { return errorOutputOption{w} }

// WithOutput directs stdout-bound print traffic, flushed before any halt.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithErrorOutput directs stderr-bound print traffic and diagnostics to w.
func WithErrorOutput(w io.Writer) Option { return withErrorOutput(w) }

// WithLogf installs a diagnostics sink used for warnings and halt messages.
func WithLogf(logf func(mess string, args ...interface{})) Option { return logfOption(logf) }

// WithInternal sets the value internalmode must hold for maybecatstr to
// pass its string through, mirroring the -i flag's effect.
func WithInternal(wanted int) Option { return internalOption(wanted) }

// WithWarn enables "not recognised"/"undefined word" diagnostics on stderr,
// mirroring the -w flag.
func WithWarn(warn bool) Option { return warnOption(warn) }

// WithTrace enables a log line for every command line the driver executes.
func WithTrace(trace bool) Option { return traceOption(trace) }

func (o outputOption) apply(it *Interpreter) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.NewWriteFlusher(o.Writer)
}

func (o errorOutputOption) apply(it *Interpreter) { it.errOut = o.Writer }
func (f logfOption) apply(it *Interpreter)        { it.logf = f }
func (n internalOption) apply(it *Interpreter)    { it.internalWanted = int(n) }
func (w warnOption) apply(it *Interpreter)        { it.warn = bool(w) }
func (t traceOption) apply(it *Interpreter)       { it.trace = bool(t) }
