package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is the persisted application state as it appears on the wire.
// Nil slices and pointers mean the field was absent, which is how records
// written by older versions look before Normalize repairs them.
type Document struct {
	Projects []*ProjectDoc `json:"projects" yaml:"projects"`
	Settings *SettingsDoc  `json:"settings" yaml:"settings"`
}

type SettingsDoc struct {
	Theme        string     `json:"theme" yaml:"theme"`
	LastActivity *time.Time `json:"lastActivity" yaml:"lastActivity"`
}

// activityLayouts are the timestamp forms accepted for lastActivity.
var activityLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalJSON reads lastActivity leniently: a value in none of the
// activityLayouts, or one that is not a string, decodes as null.
func (s *SettingsDoc) UnmarshalJSON(data []byte) error {
	var raw struct {
		Theme        string          `json:"theme"`
		LastActivity json.RawMessage `json:"lastActivity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Theme = raw.Theme
	s.LastActivity = parseActivity(raw.LastActivity)
	return nil
}

func parseActivity(raw json.RawMessage) *time.Time {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}
	for _, layout := range activityLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return &ts
		}
	}
	return nil
}

// ProjectDoc holds at most one of Phases, Weeks or Days. Collections use
// omitzero so an empty collection survives a round trip while an absent one
// stays absent.
type ProjectDoc struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description *string       `json:"description" yaml:"description"`
	Structure   *StructureDoc `json:"structure" yaml:"structure"`
	Tasks       []ItemDoc     `json:"tasks" yaml:"tasks"`
	Materials   *MaterialsDoc `json:"materials" yaml:"materials"`
	Phases      []*PhaseDoc   `json:"phases,omitzero" yaml:"phases,omitempty"`
	Weeks       []*WeekDoc    `json:"weeks,omitzero" yaml:"weeks,omitempty"`
	Days        []*DayDoc     `json:"days,omitzero" yaml:"days,omitempty"`
}

type StructureDoc struct {
	HasPhases    bool `json:"hasPhases" yaml:"hasPhases"`
	HasWeeks     bool `json:"hasWeeks" yaml:"hasWeeks"`
	HasDays      bool `json:"hasDays" yaml:"hasDays"`
	HasMaterials bool `json:"hasMaterials" yaml:"hasMaterials"`
}

type PhaseDoc struct {
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title" yaml:"title"`
	Goals     []ItemDoc     `json:"goals" yaml:"goals"`
	Materials *MaterialsDoc `json:"materials" yaml:"materials"`
	Weeks     []*WeekDoc    `json:"weeks,omitzero" yaml:"weeks,omitempty"`
}

type WeekDoc struct {
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title" yaml:"title"`
	Goals     []ItemDoc     `json:"goals" yaml:"goals"`
	Materials *MaterialsDoc `json:"materials" yaml:"materials"`
	Days      []*DayDoc     `json:"days,omitzero" yaml:"days,omitempty"`
}

type DayDoc struct {
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title" yaml:"title"`
	Date      string        `json:"date" yaml:"date"`
	Tasks     []ItemDoc     `json:"tasks" yaml:"tasks"`
	Materials *MaterialsDoc `json:"materials" yaml:"materials"`
}

type ItemDoc struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

type MaterialsDoc struct {
	Notes  []NoteDoc  `json:"notes" yaml:"notes"`
	Videos []VideoDoc `json:"videos" yaml:"videos"`
	Files  []FileDoc  `json:"files" yaml:"files"`
	Links  []LinkDoc  `json:"links" yaml:"links"`
}

type NoteDoc struct {
	Text string `json:"text" yaml:"text"`
}

type VideoDoc struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

type FileDoc struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Size int64  `json:"size" yaml:"size"`
	Data string `json:"data" yaml:"data"`
}

type LinkDoc struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

// Parse decodes a JSON document without normalizing it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}
