package domain

import (
	"strings"
	"time"
)

// Item is a checklist entry: a task on projects and days, a goal on phases and weeks.
type Item struct {
	Text      string
	Completed bool
}

type Phase struct {
	ID        string
	Title     string
	Goals     []Item
	Weeks     []*Week
	Materials Materials
}

type Week struct {
	ID        string
	Title     string
	Goals     []Item
	Days      []*Day
	Materials Materials
}

type Day struct {
	ID        string
	Title     string
	Date      string // YYYY-MM-DD or empty
	Tasks     []Item
	Materials Materials
}

// NewPhase returns an empty phase. withWeeks mirrors the project's HasWeeks flag.
func NewPhase(title string, withWeeks bool) (*Phase, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	ph := &Phase{Title: title, Goals: []Item{}, Materials: NewMaterials()}
	if withWeeks {
		ph.Weeks = []*Week{}
	}
	return ph, nil
}

// NewWeek returns an empty week. withDays mirrors the project's HasDays flag.
func NewWeek(title string, withDays bool) (*Week, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	w := &Week{Title: title, Goals: []Item{}, Materials: NewMaterials()}
	if withDays {
		w.Days = []*Day{}
	}
	return w, nil
}

func NewDay(title string) (*Day, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Day{Title: title, Tasks: []Item{}, Materials: NewMaterials()}, nil
}

// ValidateDate checks an optional YYYY-MM-DD day date.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
