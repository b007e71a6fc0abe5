package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Theme(t *testing.T) {
	st, repo := setupStoreWithRepo(t)
	svc := NewSettingsService(st)
	ctx := context.Background()

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, s.Theme)

	require.NoError(t, svc.SetTheme(ctx, " Light "))
	assert.Error(t, svc.SetTheme(ctx, "solarized"))

	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, s.Theme)
	assert.Equal(t, domain.ThemeLight, persisted(t, repo).Settings.Theme)
}
