package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type settingsService struct {
	store *store.Store
}

func NewSettingsService(st *store.Store) SettingsService {
	return &settingsService{store: st}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	err := s.store.Read(func(state *domain.AppState) error {
		out = state.Settings
		if ts := state.Settings.LastActivity; ts != nil {
			t := *ts
			out.LastActivity = &t
		}
		return nil
	})
	return out, err
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme != domain.ThemeDark && theme != domain.ThemeLight {
		return fmt.Errorf("unknown theme %q (expected %s or %s)", theme, domain.ThemeDark, domain.ThemeLight)
	}
	return s.store.Update(ctx, func(state *domain.AppState) error {
		state.Settings.Theme = theme
		return nil
	})
}
