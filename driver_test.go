package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDriverExecutesMatchingCommandLine(t *testing.T) {
	var out bytes.Buffer
	it := New(WithOutput(&out))
	it.compileScript("t", []byte(`: GREETING_WORD "hi" catstr skip_past_newline ;`))
	it.scan = []byte("GREETING_WORD\n")
	it.scanIdx = 0
	it.runDriver()
	require.Equal(t, "hi", it.strs.tos().String())
}

func TestRunDriverSkipsUnrecognisedCommand(t *testing.T) {
	var warned []string
	it := New(WithWarn(true), WithLogf(func(mess string, args ...interface{}) {
		warned = append(warned, mess)
	}))
	it.scan = []byte("UNKNOWN COMMAND LINE\nafter\n")
	it.scanIdx = 0
	it.runDriver()
	require.NotEmpty(t, warned)
}

func TestRunDriverResetsStringStackEachCall(t *testing.T) {
	it := New()
	it.strs.push(it.halt)
	it.strs.push(it.halt)
	require.Equal(t, 2, it.strs.top)

	it.scan = []byte("plain text, no commands\n")
	it.scanIdx = 0
	it.runDriver()
	require.Equal(t, 0, it.strs.top)
}

func TestIsCommandLineRejectsShortOrLowercase(t *testing.T) {
	require.False(t, isCommandLine([]byte("abc def\n"), 0))
	require.False(t, isCommandLine([]byte("ABC\n"), 0))
	require.True(t, isCommandLine([]byte("A VALID LINE\n"), 0))
}
