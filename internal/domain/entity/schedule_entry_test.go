package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testDoctor = Doctor{Specialization: SpecializationGeneralPractice}
	testRoom   = Room{Name: "room 1"}
	otherRoom  = Room{Name: "room 2"}
)

func onCall(t *testing.T, room Room, from, to time.Time) Entry {
	t.Helper()

	entry, err := NewOnCallEntry(testDoctor, room, from, to)
	require.NoError(t, err)

	return entry
}

func visit(t *testing.T, room Room, from, to time.Time) Entry {
	t.Helper()

	entry, err := NewVisitEntry(testDoctor, Patient{Name: "John Doe"}, room, from, to)
	require.NoError(t, err)

	return entry
}

func TestNewEntry(t *testing.T) {
	t.Run(
		"1. on-call entry",
		func(t *testing.T) {
			entry, err := NewOnCallEntry(testDoctor, testRoom, at(10, 0), at(12, 0))
			require.NoError(t, err)
			require.False(t, entry.IsVisit())
		},
	)

	t.Run(
		"2. visit entry",
		func(t *testing.T) {
			entry, err := NewVisitEntry(testDoctor, Patient{Name: "John Doe"}, testRoom, at(10, 0), at(12, 0))
			require.NoError(t, err)
			require.True(t, entry.IsVisit())
		},
	)

	t.Run(
		"3. inverted range fails",
		func(t *testing.T) {
			_, err := NewOnCallEntry(testDoctor, testRoom, at(12, 0), at(10, 0))
			require.ErrorIs(t, err, ErrInvalidRange)

			_, err = NewVisitEntry(testDoctor, Patient{Name: "John Doe"}, testRoom, at(10, 0), at(10, 0))
			require.ErrorIs(t, err, ErrInvalidRange)
		},
	)
}

func TestInterference(t *testing.T) {
	t.Run(
		"1. overlap in same room interferes both ways",
		func(t *testing.T) {
			a := onCall(t, testRoom, at(10, 0), at(12, 0))
			b := onCall(t, testRoom, at(11, 0), at(13, 0))

			require.True(t, a.InterferesWith(b))
			require.True(t, b.InterferesWith(a))
		},
	)

	t.Run(
		"2. containment interferes both ways",
		func(t *testing.T) {
			outer := onCall(t, testRoom, at(9, 0), at(17, 0))
			inner := onCall(t, testRoom, at(11, 0), at(12, 0))

			require.True(t, outer.InterferesWith(inner))
			require.True(t, inner.InterferesWith(outer))
		},
	)

	t.Run(
		"3. touching endpoints do not interfere",
		func(t *testing.T) {
			a := onCall(t, testRoom, at(10, 0), at(12, 0))
			b := onCall(t, testRoom, at(12, 0), at(14, 0))

			require.False(t, a.InterferesWith(b))
			require.False(t, b.InterferesWith(a))
		},
	)

	t.Run(
		"4. different rooms never interfere",
		func(t *testing.T) {
			a := onCall(t, testRoom, at(10, 0), at(12, 0))
			b := onCall(t, otherRoom, at(10, 0), at(12, 0))

			require.False(t, a.InterferesWith(b))
			require.True(t, a.DatesInterfereWith(b))
		},
	)

	t.Run(
		"5. identical ranges interfere",
		func(t *testing.T) {
			a := onCall(t, testRoom, at(10, 0), at(12, 0))
			b := visit(t, testRoom, at(10, 0), at(12, 0))

			require.True(t, a.InterferesWith(b))
		},
	)
}

func TestEntryEqual(t *testing.T) {
	a := visit(t, testRoom, at(10, 0), at(12, 0))
	b := visit(t, testRoom, at(10, 0), at(12, 0))
	require.True(t, a.Equal(b))

	c := onCall(t, testRoom, at(10, 0), at(12, 0))
	require.False(t, a.Equal(c), "patient differs")

	d := visit(t, otherRoom, at(10, 0), at(12, 0))
	require.False(t, a.Equal(d), "room differs")
}

func TestTrimTo(t *testing.T) {
	t.Run(
		"1. other inside self consumes self entirely",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(17, 0))
			other := visit(t, testRoom, at(12, 0), at(13, 0))

			_, kept := self.TrimTo(other)
			require.False(t, kept)
		},
	)

	t.Run(
		"2. tail overlap clips the tail",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(17, 0))
			other := visit(t, testRoom, at(16, 0), at(18, 0))

			trimmed, kept := self.TrimTo(other)
			require.True(t, kept)
			require.True(t, trimmed.Range.From.Equal(at(9, 0)))
			require.True(t, trimmed.Range.To.Equal(at(16, 0)))
			require.Equal(t, self.Doctor, trimmed.Doctor)
			require.Equal(t, self.Room, trimmed.Room)
		},
	)

	t.Run(
		"3. head overlap clips the head",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(17, 0))
			other := visit(t, testRoom, at(8, 0), at(10, 0))

			trimmed, kept := self.TrimTo(other)
			require.True(t, kept)
			require.True(t, trimmed.Range.From.Equal(at(10, 0)))
			require.True(t, trimmed.Range.To.Equal(at(17, 0)))
		},
	)

	t.Run(
		"4. other covering self consumes self",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(10, 0), at(12, 0))
			other := visit(t, testRoom, at(9, 0), at(13, 0))

			_, kept := self.TrimTo(other)
			require.False(t, kept)
		},
	)

	t.Run(
		"5. equal ranges consume self",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(10, 0), at(12, 0))
			other := visit(t, testRoom, at(10, 0), at(12, 0))

			_, kept := self.TrimTo(other)
			require.False(t, kept)
		},
	)

	t.Run(
		"6. disjoint ranges leave self unchanged",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(11, 0))
			other := visit(t, testRoom, at(12, 0), at(13, 0))

			trimmed, kept := self.TrimTo(other)
			require.True(t, kept)
			require.True(t, trimmed.Equal(self))
		},
	)

	t.Run(
		"7. touching endpoint is not an overlap",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(12, 0))
			other := visit(t, testRoom, at(12, 0), at(13, 0))

			trimmed, kept := self.TrimTo(other)
			require.True(t, kept)
			require.True(t, trimmed.Equal(self))
		},
	)

	t.Run(
		"8. exact tail match clips to the overlap start",
		func(t *testing.T) {
			self := onCall(t, testRoom, at(9, 0), at(17, 0))
			other := visit(t, testRoom, at(16, 0), at(17, 0))

			trimmed, kept := self.TrimTo(other)
			require.True(t, kept)
			require.True(t, trimmed.Range.From.Equal(at(9, 0)))
			require.True(t, trimmed.Range.To.Equal(at(16, 0)))
		},
	)
}
