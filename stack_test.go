package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringStackPushDrop(t *testing.T) {
	s := newStringStack()
	require.Equal(t, 0, s.top)

	var haltErr error
	halt := func(err error) { haltErr = err }

	b := s.push(halt)
	b.putstr("hi")
	require.Equal(t, 1, s.top)
	require.Equal(t, "hi", s.tos().String())
	require.NoError(t, haltErr)

	s.drop(halt)
	require.Equal(t, 0, s.top)
	require.NoError(t, haltErr)
}

func TestStringStackUnderflowHalts(t *testing.T) {
	s := newStringStack()
	var haltErr error
	halt := func(err error) { haltErr = err }

	s.drop(halt)
	require.Error(t, haltErr)
	require.IsType(t, stackUnderflowError{}, haltErr)
}

// TestStringStackOverflow pushes until the fixed-capacity slot array is
// full. halt must panic here (as the real Interpreter.halt does): push does
// not stop on its own after calling halt, relying on halt never returning.
func TestStringStackOverflow(t *testing.T) {
	s := newStringStack()
	halt := func(err error) { panic(haltError{err}) }

	var haltErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				haltErr = r.(haltError).error
			}
		}()
		for i := 0; i < stackCapacity+1; i++ {
			s.push(halt)
		}
	}()
	require.Error(t, haltErr)
	require.IsType(t, stackOverflowError{}, haltErr)
}

func TestStringStackSwap(t *testing.T) {
	s := newStringStack()
	halt := func(error) {}
	a := s.push(halt)
	a.putstr("a")
	b := s.push(halt)
	b.putstr("b")

	s.swap(halt)
	require.Equal(t, "a", s.tos().String())
	require.Equal(t, "b", s.under().String())

	s.swap(halt)
	require.Equal(t, "b", s.tos().String())
}

func TestStringStackSwapUnderflowHalts(t *testing.T) {
	s := newStringStack()
	var haltErr error
	s.swap(func(err error) { haltErr = err })
	require.Error(t, haltErr)
}

func TestStringStackCollapseTop(t *testing.T) {
	s := newStringStack()
	halt := func(error) {}
	a := s.push(halt)
	a.putstr("A")
	b := s.push(halt)
	b.putstr("B")

	s.collapseTop(true, halt)
	require.Equal(t, 1, s.top)
	require.Equal(t, "AB", s.tos().String())

	// collapseTop(false, ...) drops without merging.
	c := s.push(halt)
	c.putstr("C")
	s.collapseTop(false, halt)
	require.Equal(t, 1, s.top)
	require.Equal(t, "AB", s.tos().String())
}

func TestStringStackResetKeepsAccumulator(t *testing.T) {
	s := newStringStack()
	halt := func(error) {}
	s.slots[0].putstr("kept")
	s.push(halt)
	s.push(halt)
	require.Equal(t, 2, s.top)

	s.reset()
	require.Equal(t, 0, s.top)
	require.Equal(t, "kept", s.slots[0].String())
}

func TestIntStack(t *testing.T) {
	s := newIntStack()
	require.Equal(t, 0, s.depth())
	halt := func(error) {}

	s.push(1, halt)
	s.push(2, halt)
	require.Equal(t, 2, s.depth())
	require.Equal(t, 2, s.peek(halt))

	v := s.pop(halt)
	require.Equal(t, 2, v)
	require.Equal(t, 1, s.depth())
}

func TestIntStackUnderflowHalts(t *testing.T) {
	s := newIntStack()
	var haltErr error
	s.pop(func(err error) { haltErr = err })
	require.Error(t, haltErr)
}
