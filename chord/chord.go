package chord

import (
	"sort"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/theory"
)

// Match is the result of identifying a chord against a key.
type Match struct {
	Root      theory.PitchClass
	RootName  string
	Bass      theory.PitchClass
	Quality   string
	Numeral   string // base Roman numeral, no figure
	Figure    string // figured-bass inversion suffix
	Inversion int    // 0 = root position
}

// Label is the full Roman-numeral label including the inversion figure.
func (m *Match) Label() string {
	return m.Numeral + m.Figure
}

type quality struct {
	name      string
	intervals []int // semitone offsets from the root, ascending, 0 omitted
}

var (
	majorTriad = quality{"major", []int{4, 7}}
	minorTriad = quality{"minor", []int{3, 7}}
	dimTriad   = quality{"diminished", []int{3, 6}}
	augTriad   = quality{"augmented", []int{4, 8}}
	dom7       = quality{"dominant seventh", []int{4, 7, 10}}
	maj7       = quality{"major seventh", []int{4, 7, 11}}
	min7       = quality{"minor seventh", []int{3, 7, 10}}
	halfDim7   = quality{"half-diminished seventh", []int{3, 6, 10}}
	dim7       = quality{"diminished seventh", []int{3, 6, 9}}
)

// Entry is one chord shape the matcher recognizes: a quality rooted on a
// scale degree (possibly altered) in one mode, with its numeral template.
type Entry struct {
	Degree  int // 0-6 frame index of the root
	Alter   int // semitone alteration of the root (borrowed/chromatic roots)
	Quality quality
	Numeral string
	Mode    theory.Mode
}

func row(mode theory.Mode, degree, alter int, q quality, numeral string) Entry {
	return Entry{Degree: degree, Alter: alter, Quality: q, Numeral: numeral, Mode: mode}
}

// table lists every recognized chord per mode, diatonic shapes first and the
// common borrowed/chromatic shapes after them.
var table = []Entry{
	// major mode, diatonic
	row(theory.Major, 0, 0, majorTriad, "I"),
	row(theory.Major, 0, 0, maj7, "I"),
	row(theory.Major, 1, 0, minorTriad, "ii"),
	row(theory.Major, 1, 0, min7, "ii"),
	row(theory.Major, 2, 0, minorTriad, "iii"),
	row(theory.Major, 2, 0, min7, "iii"),
	row(theory.Major, 3, 0, majorTriad, "IV"),
	row(theory.Major, 3, 0, maj7, "IV"),
	row(theory.Major, 4, 0, majorTriad, "V"),
	row(theory.Major, 4, 0, dom7, "V"),
	row(theory.Major, 5, 0, minorTriad, "vi"),
	row(theory.Major, 5, 0, min7, "vi"),
	row(theory.Major, 6, 0, dimTriad, "viio"),
	row(theory.Major, 6, 0, halfDim7, "viiø"),

	// major mode, borrowed
	row(theory.Major, 0, 0, minorTriad, "i"),
	row(theory.Major, 1, 0, dimTriad, "iio"),
	row(theory.Major, 1, -1, majorTriad, "bII"),
	row(theory.Major, 2, 0, majorTriad, "III"),
	row(theory.Major, 3, 0, minorTriad, "iv"),
	row(theory.Major, 4, 0, minorTriad, "v"),
	row(theory.Major, 5, -1, majorTriad, "bVI"),
	row(theory.Major, 6, -1, majorTriad, "bVII"),
	row(theory.Major, 6, 0, dim7, "viio"),
	// flat-seventh sonorities on the tonic and subdominant
	row(theory.Major, 0, 0, dom7, "I"),
	row(theory.Major, 3, 0, dom7, "IV"),

	// minor mode, diatonic (natural) plus harmonic-minor shapes
	row(theory.Minor, 0, 0, minorTriad, "i"),
	row(theory.Minor, 0, 0, min7, "i"),
	row(theory.Minor, 1, 0, dimTriad, "iio"),
	row(theory.Minor, 1, 0, halfDim7, "iiø"),
	row(theory.Minor, 2, 0, majorTriad, "III"),
	row(theory.Minor, 2, 0, maj7, "III"),
	row(theory.Minor, 2, 0, augTriad, "III+"),
	row(theory.Minor, 3, 0, minorTriad, "iv"),
	row(theory.Minor, 3, 0, min7, "iv"),
	row(theory.Minor, 4, 0, majorTriad, "V"),
	row(theory.Minor, 4, 0, dom7, "V"),
	row(theory.Minor, 4, 0, minorTriad, "v"),
	row(theory.Minor, 5, 0, majorTriad, "VI"),
	row(theory.Minor, 5, 0, maj7, "VI"),
	row(theory.Minor, 6, 0, majorTriad, "VII"),
	row(theory.Minor, 6, 0, dom7, "VII"),
	row(theory.Minor, 6, 1, dimTriad, "viio"),
	row(theory.Minor, 6, 1, dim7, "viio"),
	row(theory.Minor, 6, 1, halfDim7, "viiø"),

	// minor mode, borrowed
	row(theory.Minor, 0, 0, majorTriad, "I"),
	row(theory.Minor, 1, -1, majorTriad, "bII"),
	row(theory.Minor, 3, 0, majorTriad, "IV"),
}

var triadFigures = [...]string{"", "6", "64"}
var seventhFigures = [...]string{"7", "65", "43", "42"}

type scored struct {
	entry     Entry
	root      theory.PitchClass
	explained int
}

// Find normalizes the sounding notes to the best matching table entry, or
// nil when nothing tertian is present. Doublings collapse to pitch classes;
// the lowest sounding note is kept aside as the bass for inversion labeling.
// A nil result is the normal steady state during exploratory play, never an
// error.
func Find(notes []theory.Note, sig *key.Signature) *Match {
	if len(notes) < 3 {
		return nil
	}

	sorted := make([]theory.Note, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	bass := theory.PC(sorted[0])

	pcs := make(map[theory.PitchClass]bool)
	for _, n := range sorted {
		pcs[theory.PC(n)] = true
	}
	if len(pcs) < 3 {
		return nil
	}

	// candidate roots in ascending pitch-class order so ties resolve the
	// same way on every call
	roots := make([]theory.PitchClass, 0, len(pcs))
	for pc := range pcs {
		roots = append(roots, pc)
	}
	sort.Slice(roots, func(i, j int) bool {
		return roots[i] < roots[j]
	})

	frame := sig.Frame()
	var best *scored

	for _, root := range roots {
		rel := make(map[int]bool)
		for pc := range pcs {
			if pc != root {
				rel[(int(pc)-int(root)+12)%12] = true
			}
		}

		for _, e := range table {
			if e.Mode != sig.Mode() {
				continue
			}
			want := theory.PitchClass(((int(frame[e.Degree].PC)+e.Alter)%12 + 12) % 12)
			if want != root {
				continue
			}
			covered := true
			for _, iv := range e.Quality.intervals {
				if !rel[iv] {
					covered = false
					break
				}
			}
			if !covered {
				continue
			}

			s := scored{entry: e, root: root, explained: len(e.Quality.intervals) + 1}
			if best == nil || betterMatch(s, *best, bass) {
				cp := s
				best = &cp
			}
		}
	}

	if best == nil {
		return nil
	}

	e := best.entry
	figure, inversion := figureFor(e, best.root, bass)
	// the entry knows how its root is spelled: the degree's letter carries
	// the alteration (bVI in C is Ab, never G#)
	rootDegree := frame[e.Degree]
	rootName := theory.Spelling{
		Letter:     rootDegree.Letter,
		Accidental: rootDegree.Accidental + theory.Accidental(e.Alter),
	}
	return &Match{
		Root:      best.root,
		RootName:  rootName.String(),
		Bass:      bass,
		Quality:   e.Quality.name,
		Numeral:   e.Numeral,
		Figure:    figure,
		Inversion: inversion,
	}
}

// betterMatch orders candidates by pitch classes explained, then a diatonic
// root over an altered one, then the more specific (longer) pattern. A full
// tie goes to the root sounding in the bass, then the lower root pitch
// class, so the same notes always get the same label.
func betterMatch(a, b scored, bass theory.PitchClass) bool {
	if a.explained != b.explained {
		return a.explained > b.explained
	}
	if (a.entry.Alter == 0) != (b.entry.Alter == 0) {
		return a.entry.Alter == 0
	}
	if la, lb := len(a.entry.Quality.intervals), len(b.entry.Quality.intervals); la != lb {
		return la > lb
	}
	if (a.root == bass) != (b.root == bass) {
		return a.root == bass
	}
	return a.root < b.root
}

func figureFor(e Entry, root, bass theory.PitchClass) (string, int) {
	members := append([]int{0}, e.Quality.intervals...)
	inversion := 0
	for i, iv := range members {
		if theory.PitchClass((int(root)+iv)%12) == bass {
			inversion = i
			break
		}
	}
	if len(e.Quality.intervals) >= 3 {
		return seventhFigures[inversion], inversion
	}
	return triadFigures[inversion], inversion
}
