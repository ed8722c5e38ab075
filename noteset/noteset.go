package noteset

import (
	"fmt"
	"sort"

	"github.com/johnfelipe/HarmonyLab/theory"
)

type Command string

const (
	On  Command = "on"
	Off Command = "off"
)

// Clef names accepted by ForClef. Treble owns note 60 and above.
const (
	Treble = "treble"
	Bass   = "bass"

	clefSplit theory.Note = 60
)

// Observer is invoked synchronously after every state change.
type Observer func(cmd Command, note theory.Note)

// Set tracks the currently sounding notes. Mutation is single-writer: the
// one input stream driving it. Reads are pure.
type Set struct {
	on        map[theory.Note]bool
	observers []Observer
}

func New() *Set {
	return &Set{on: make(map[theory.Note]bool)}
}

func (s *Set) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

func (s *Set) notify(cmd Command, note theory.Note) {
	for _, fn := range s.observers {
		fn(cmd, note)
	}
}

// NoteOn marks note as sounding and reports whether anything changed.
// Turning on an already-on note is a no-op and does not notify.
func (s *Set) NoteOn(note theory.Note) bool {
	if s.on[note] {
		return false
	}
	s.on[note] = true
	s.notify(On, note)
	return true
}

// NoteOff is the inverse of NoteOn, with the same changed contract.
func (s *Set) NoteOff(note theory.Note) bool {
	if !s.on[note] {
		return false
	}
	delete(s.on, note)
	s.notify(Off, note)
	return true
}

func (s *Set) IsOn(note theory.Note) bool {
	return s.on[note]
}

func (s *Set) Len() int {
	return len(s.on)
}

// Sorted returns the sounding notes in ascending numeric order.
func (s *Set) Sorted() []theory.Note {
	notes := make([]theory.Note, 0, len(s.on))
	for note := range s.on {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// ForClef returns the sounding notes belonging to one stave.
func (s *Set) ForClef(clef string) ([]theory.Note, error) {
	var keep func(theory.Note) bool
	switch clef {
	case Treble:
		keep = func(n theory.Note) bool { return n >= clefSplit }
	case Bass:
		keep = func(n theory.Note) bool { return n < clefSplit }
	default:
		return nil, fmt.Errorf("unknown clef %q: %w", clef, theory.ErrInvalidArgument)
	}

	var res []theory.Note
	for _, note := range s.Sorted() {
		if keep(note) {
			res = append(res, note)
		}
	}
	return res, nil
}

func (s *Set) HasAny() bool {
	return len(s.on) > 0
}

// HasAnyFor reports whether any sounding note belongs to the given clef.
func (s *Set) HasAnyFor(clef string) (bool, error) {
	notes, err := s.ForClef(clef)
	if err != nil {
		return false, err
	}
	return len(notes) > 0, nil
}
