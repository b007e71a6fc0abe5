package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

// ProjectSummary is one row of the dashboard.
type ProjectSummary struct {
	ID          string
	Name        string
	Description string
	Shape       domain.Shape
	Counts      domain.Counts
	Progress    int
}

type ProjectService interface {
	Create(ctx context.Context, name string, tmpl domain.Template, description string) (*domain.Project, error)
	// Get returns a copy of the project; changes to it are not persisted.
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, query string) ([]ProjectSummary, error)
	Rename(ctx context.Context, id, name string) error
	Describe(ctx context.Context, id, description string) error
	SetStructure(ctx context.Context, id string, s domain.Structure) error
	Delete(ctx context.Context, id string) error
}

type NodeService interface {
	AddPhase(ctx context.Context, projectID, title string) (*domain.Phase, error)
	// AddWeek adds to the given phase, or to the top-level weeks when phaseID is empty.
	AddWeek(ctx context.Context, projectID, phaseID, title string) (*domain.Week, error)
	// AddDay adds to the given week, or to the top-level days when weekID is empty.
	AddDay(ctx context.Context, projectID, weekID, title, date string) (*domain.Day, error)
	Rename(ctx context.Context, projectID string, ref domain.NodeRef, title string) error
	SetDate(ctx context.Context, projectID, dayID, date string) error
	Remove(ctx context.Context, projectID string, ref domain.NodeRef) error
}

// ItemService edits the checklist of a node. Indexes are zero-based.
type ItemService interface {
	List(ctx context.Context, projectID string, at domain.NodeRef) ([]domain.Item, error)
	Add(ctx context.Context, projectID string, at domain.NodeRef, text string) (int, error)
	Toggle(ctx context.Context, projectID string, at domain.NodeRef, index int) (bool, error)
	Edit(ctx context.Context, projectID string, at domain.NodeRef, index int, text string) error
	Remove(ctx context.Context, projectID string, at domain.NodeRef, index int) error
}

// FileSource is a file waiting to be attached. Read is called once, off the
// caller's goroutine.
type FileSource struct {
	Name string
	Type string
	Read func() ([]byte, error)
}

// AttachResult reports the outcome of each file of an AttachFiles call.
type AttachResult struct {
	Attached []string
	// Skipped lists files whose target node was removed while they were read.
	Skipped []string
	Failed  map[string]error
}

type MaterialsService interface {
	List(ctx context.Context, projectID string, at domain.NodeRef) (*domain.Materials, error)
	AddNote(ctx context.Context, projectID string, at domain.NodeRef, text string) error
	AddVideo(ctx context.Context, projectID string, at domain.NodeRef, url string) (domain.Video, error)
	AddLink(ctx context.Context, projectID string, at domain.NodeRef, url, title string) (domain.Link, error)
	// AttachFiles returns the per-file result even when the final save fails.
	AttachFiles(ctx context.Context, projectID string, at domain.NodeRef, files []FileSource) (*AttachResult, error)
	// OpenFile returns the attachment at index and its decoded content.
	OpenFile(ctx context.Context, projectID string, at domain.NodeRef, index int) (domain.File, []byte, error)
	Remove(ctx context.Context, projectID string, at domain.NodeRef, kind domain.MaterialKind, index int) error
}

type CalendarService interface {
	// Entries lists dated days of one project, or of every project when
	// projectID is empty.
	Entries(ctx context.Context, projectID string) ([]domain.CalendarEntry, error)
	On(ctx context.Context, projectID, date string) ([]domain.CalendarEntry, error)
	Month(ctx context.Context, projectID string, year int, month time.Month) ([][7]domain.CalendarCell, error)
}

// Overview is the dashboard: every project with its progress.
type Overview struct {
	Projects     []ProjectSummary
	Counts       domain.Counts
	LastActivity *time.Time
}

// ProjectStats is the analysis of one project.
type ProjectStats struct {
	ProjectID string
	Name      string
	domain.Stats
	Breakdown []domain.NodeProgress
}

type StatusService interface {
	Overview(ctx context.Context) (*Overview, error)
	ProjectStats(ctx context.Context, projectID string) (*ProjectStats, error)
}

type ViewService interface {
	Current(ctx context.Context) (domain.View, error)
	// Use opens a project, optionally at one of its nodes.
	Use(ctx context.Context, projectID string, at domain.NodeRef) (domain.View, error)
	Home(ctx context.Context) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	SetTheme(ctx context.Context, theme string) error
}

type BackupService interface {
	Export(ctx context.Context, w io.Writer, format string) error
	// Preview decodes a backup without touching the current state.
	Preview(ctx context.Context, r io.Reader) (*store.Incoming, error)
	Apply(ctx context.Context, in *store.Incoming) error
}
