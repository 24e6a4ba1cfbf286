package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidProgress  = errors.New("invalid progress")
	ErrProgressNotFound = errors.New("progress not found")
)

const DateLayout = "2006-01-02"

// LiftSet is one recorded set of a lift.
type LiftSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// LiftData maps an exercise name to the sets recorded for it.
type LiftData map[string][]LiftSet

func (ld LiftData) Validate() error {
	for name, sets := range ld {
		if name == "" {
			return fmt.Errorf("%w: lift name cannot be empty", ErrInvalidProgress)
		}
		if strings.ContainsRune(name, 0) {
			return fmt.Errorf("%w: lift name contains a NUL character", ErrInvalidProgress)
		}
		for _, set := range sets {
			if set.Weight < 0 || set.Reps < 0 {
				return fmt.Errorf("%w: lift %q has a negative set", ErrInvalidProgress, name)
			}
		}
	}
	return nil
}

// validateNotes rejects text that Postgres cannot store in a TEXT column.
func validateNotes(notes string) error {
	if strings.ContainsRune(notes, 0) {
		return fmt.Errorf("%w: notes contain a NUL character", ErrInvalidProgress)
	}
	return nil
}

// BestSet returns the heaviest set of a lift, more reps winning a tie.
func (ld LiftData) BestSet(lift string) (LiftSet, bool) {
	sets := ld[lift]
	if len(sets) == 0 {
		return LiftSet{}, false
	}
	best := sets[0]
	for _, set := range sets[1:] {
		if set.Weight > best.Weight || (set.Weight == best.Weight && set.Reps > best.Reps) {
			best = set
		}
	}
	return best, true
}

// lift data is stored as JSONB, a nil LiftData as NULL
func encodeLiftData(ld LiftData) ([]byte, error) {
	if ld == nil {
		return nil, nil
	}
	data, err := json.Marshal(ld)
	if err != nil {
		return nil, fmt.Errorf("marshal lift data: %w", err)
	}
	return data, nil
}

// decodeLiftData fails on malformed data: a stored value that does not parse is corrupted.
func decodeLiftData(data []byte) (LiftData, error) {
	if data == nil || string(data) == "null" {
		return nil, nil
	}
	var ld LiftData
	if err := json.Unmarshal(data, &ld); err != nil {
		return nil, fmt.Errorf("unmarshal lift data: %w", err)
	}
	return ld, nil
}

type Entry struct {
	ID       int       `json:"progressId"`
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	Weight   *float64  `json:"weight"`
	LiftData LiftData  `json:"liftData"`
	Notes    string    `json:"notes"`
}

// Update holds the mutable fields of an entry. All three are replaced.
type Update struct {
	Weight   *float64
	LiftData LiftData
	Notes    string
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC3339 timestamp, keeping only the date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidProgress, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
