package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupService_ExportPreviewApply(t *testing.T) {
	src := setupStore(t, testutil.NewPhasedProject("Thesis"), testutil.NewDailyProject("Journal"))
	var buf bytes.Buffer
	require.NoError(t, NewBackupService(src).Export(context.Background(), &buf, store.FormatJSON))

	dst, repo := setupStoreWithRepo(t, testutil.NewTestProject("Old", domain.TemplateSimple))
	obs := &recordingObserver{}
	svc := NewBackupService(dst, obs)
	ctx := context.Background()

	in, err := svc.Preview(ctx, &buf)
	require.NoError(t, err)
	assert.Empty(t, in.Issues)
	require.Len(t, in.State.Projects, 2)

	before, err := NewProjectService(dst).List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, before, 1, "preview does not touch the state")

	require.NoError(t, svc.Apply(ctx, in))
	assert.Equal(t, 2, obs.last(t).Fields["projects"])

	saved := persisted(t, repo)
	require.Len(t, saved.Projects, 2)
	assert.Equal(t, "Thesis", saved.Projects[0].Name)
	assert.Equal(t, "Journal", saved.Projects[1].Name)
}

func TestBackupService_PreviewMalformed(t *testing.T) {
	svc := NewBackupService(setupStore(t))
	_, err := svc.Preview(context.Background(), strings.NewReader(`{"projects": [`))
	assert.ErrorIs(t, err, store.ErrImport)
}

func TestBackupService_PreviewReportsIssues(t *testing.T) {
	svc := NewBackupService(setupStore(t))
	in, err := svc.Preview(context.Background(), strings.NewReader(`{"projects":[{"id":"a","name":""}]}`))
	require.NoError(t, err)
	require.Len(t, in.Issues, 1)
	assert.Contains(t, in.Issues[0].Error(), "name is required")
}

func TestBackupService_ExportYAML(t *testing.T) {
	svc := NewBackupService(setupStore(t, testutil.NewDailyProject("Journal")))
	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf, store.FormatYAML))
	assert.Contains(t, buf.String(), "name: Journal")
	assert.Error(t, svc.Export(context.Background(), &buf, "toml"))
}
