package modfile

import (
	"fmt"

	"github.com/quasilyte/modplay/internal/ptdb"
)

var noteNames = [12]string{
	"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-",
}

// NoteName formats a note number as it's usually displayed by trackers.
// Note 1 is "C-0", note 0 is "---".
func NoteName(note uint8) string {
	if note == 0 || int(note) > ptdb.MaxNote {
		return "---"
	}
	n := int(note) - 1
	return fmt.Sprintf("%s%d", noteNames[n%12], n/12)
}

// ParseNote is the inverse of NoteName.
func ParseNote(s string) (uint8, error) {
	if s == "---" || s == "..." {
		return 0, nil
	}
	if len(s) != 3 {
		return 0, fmt.Errorf("invalid note %q", s)
	}
	octave := int(s[2] - '0')
	if octave < 0 || octave > 7 {
		return 0, fmt.Errorf("invalid note %q: bad octave", s)
	}
	for i, name := range noteNames {
		if s[:2] == name {
			return uint8(octave*12 + i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid note %q", s)
}
