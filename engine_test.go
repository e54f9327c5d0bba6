package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecCellText(t *testing.T) {
	it := New()
	w := &word{name: "t", body: []cell{
		{kind: cellText, text: []byte("hi")},
		{kind: cellEnd},
	}}
	it.exec(w)
	require.Equal(t, "hi", it.strs.tos().String())
}

func TestExecCellNumber(t *testing.T) {
	it := New()
	w := &word{name: "t", body: []cell{
		{kind: cellNumber, num: 7},
		{kind: cellEnd},
	}}
	it.exec(w)
	require.Equal(t, 7, it.ints.pop(it.halt))
}

func TestExecCellEndStopsEarly(t *testing.T) {
	it := New()
	w := &word{name: "t", body: []cell{
		{kind: cellNumber, num: 1},
		{kind: cellEnd},
		{kind: cellNumber, num: 2},
	}}
	it.exec(w)
	require.Equal(t, 1, it.ints.depth())
}

func TestExecCellCallRecurses(t *testing.T) {
	it := New()
	inner := &word{name: "inner", body: []cell{
		{kind: cellNumber, num: 9},
		{kind: cellEnd},
	}}
	outer := &word{name: "outer", body: []cell{
		{kind: cellCall, call: inner},
		{kind: cellEnd},
	}}
	it.exec(outer)
	require.Equal(t, 9, it.ints.pop(it.halt))
}

func TestExecUndefinedCallHalts(t *testing.T) {
	it := New()
	w := &word{name: "bad", body: []cell{
		{kind: cellCall, call: nil, callName: "ghost"},
		{kind: cellEnd},
	}}

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		it.exec(w)
	}()
	require.NotNil(t, recovered)
	he, ok := recovered.(haltError)
	require.True(t, ok)
	require.IsType(t, undefinedWordCallError{}, he.error)
	require.Contains(t, he.error.Error(), "ghost")
}

func TestRunFindsAndExecutesWord(t *testing.T) {
	it := New()
	it.compileScript("t", []byte(`: greet "yo" ;`))
	ok := it.run("greet")
	require.True(t, ok)
	require.Equal(t, "yo", it.strs.tos().String())
}

func TestRunMissingWordReturnsFalse(t *testing.T) {
	it := New()
	require.False(t, it.run("nope"))
}
