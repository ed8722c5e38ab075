package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/johnfelipe/HarmonyLab/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("Error reading midi file... %s", err.Error())
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("Error parsing midi file... %s", err.Error())
	}

	return res, nil
}

type noteEvent struct {
	offset    int64 // microseconds
	isNoteOff bool
	note      uint8
}

// Moment is the set of notes sounding from one point in a file onward.
type Moment struct {
	OffsetMicros int64
	Notes        model.Notes
}

// Moments folds a file's note on/off events into the sequence of sounding
// note sets, one per instant at which the set changed.
func Moments(s *smf.SMF) []Moment {
	var events []noteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var note uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &note, &velocity):
				// a zero-velocity note on is a note off
				events = append(events, noteEvent{offset: absTime, isNoteOff: velocity == 0, note: note})
			case event.Message.GetNoteOff(&channel, &note, &velocity):
				events = append(events, noteEvent{offset: absTime, isNoteOff: true, note: note})
			}
		}
	}

	// smaller offsets first, note offs before note ons at the same instant
	sort.Slice(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff
	})

	pressed := make(map[uint8]bool)
	var moments []Moment
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		if i+1 < len(events) && events[i+1].offset == evt.offset {
			continue
		}
		var notes model.Notes
		for note := range pressed {
			notes = append(notes, note)
		}
		sort.Slice(notes, func(a, b int) bool {
			return notes[a] < notes[b]
		})
		if len(notes) > 0 {
			moments = append(moments, Moment{OffsetMicros: evt.offset, Notes: notes})
		}
	}
	return moments
}
