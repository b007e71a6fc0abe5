package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := newStore(t, newRepo(t))
	require.NoError(t, s.Update(context.Background(), func(state *domain.AppState) error {
		p := testutil.NewPhasedProject("Thesis", testutil.WithTasks(true, false), testutil.WithDescription("final"))
		d, _ := domain.FindDay(p, "d1")
		d.Materials.Files = append(d.Materials.Files, domain.NewFile("n.txt", "text/plain", []byte("hi")))
		state.Projects = append(state.Projects,
			p,
			testutil.NewDailyProject("Journal"),
			testutil.NewTestProject("Chores", domain.TemplateSimple),
		)
		state.Settings.Theme = domain.ThemeLight
		return nil
	}))
	return s
}

func TestExportImport_RoundTripIsDeepEqual(t *testing.T) {
	src := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf, FormatJSON))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"projects\": ["), "pretty-printed with two spaces")

	dst := newStore(t, newRepo(t))
	require.NoError(t, dst.Import(context.Background(), &buf))

	assert.Equal(t, snapshot(t, src), snapshot(t, dst))
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	s := seeded(t)
	before := snapshot(t, s)
	var calls int
	s.OnChange(func(*domain.AppState) { calls++ })

	err := s.Import(context.Background(), strings.NewReader(`{"projects": nope}`))
	require.ErrorIs(t, err, ErrImport)

	assert.Same(t, before, snapshot(t, s))
	assert.Len(t, snapshot(t, s).Projects, 3)
	assert.Zero(t, calls)
}

func TestImport_ResetsViewAndNotifies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	require.NoError(t, s.SaveView(ctx, domain.View{ProjectID: "gone", At: domain.DayRef("x")}))
	var calls int
	s.OnChange(func(*domain.AppState) { calls++ })

	require.NoError(t, s.Import(ctx, strings.NewReader(`{"projects":[]}`)))

	v, err := s.LoadView(ctx)
	require.NoError(t, err)
	assert.True(t, v.IsHome())
	assert.Empty(t, snapshot(t, s).Projects)
	assert.Equal(t, 1, calls)
}

func TestReplace_BackendFailureKeepsState(t *testing.T) {
	s := New(failingRepo{err: errors.New("read only")})
	before := snapshot(t, s)

	err := s.Replace(context.Background(), testutil.NewTestState(testutil.NewTestProject("X", domain.TemplateSimple)))
	require.Error(t, err)
	assert.Same(t, before, snapshot(t, s))
}

func TestDecodeImport_ReportsIssues(t *testing.T) {
	in, err := DecodeImport(strings.NewReader(`{"projects":[{"id":"a","name":"A"},{"id":"a","name":"B"}]}`))
	require.NoError(t, err)
	assert.Len(t, in.State.Projects, 2)
	require.Len(t, in.Issues, 1)
	assert.Contains(t, in.Issues[0].Error(), "duplicate id")
}

func TestExport_YAML(t *testing.T) {
	s := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf, FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "projects:")
	assert.Contains(t, out, "hasPhases: true")
	assert.Contains(t, out, "theme: light")
}

func TestExport_UnknownFormat(t *testing.T) {
	s := seeded(t)
	err := s.Export(&bytes.Buffer{}, "toml")
	assert.ErrorContains(t, err, `unknown export format "toml"`)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "tally-2025-01-09.json", ExportFileName(time.Date(2025, 1, 9, 23, 0, 0, 0, time.UTC)))
}
