package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type statusService struct {
	store *store.Store
}

func NewStatusService(st *store.Store) StatusService {
	return &statusService{store: st}
}

func (s *statusService) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}
	err := s.store.Read(func(state *domain.AppState) error {
		for _, p := range state.Projects {
			sum := summarize(p)
			out.Projects = append(out.Projects, sum)
			out.Counts = out.Counts.Add(sum.Counts)
		}
		if ts := state.Settings.LastActivity; ts != nil {
			t := *ts
			out.LastActivity = &t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *statusService) ProjectStats(ctx context.Context, projectID string) (*ProjectStats, error) {
	var out *ProjectStats
	err := readProject(s.store, projectID, func(p *domain.Project) error {
		out = &ProjectStats{
			ProjectID: p.ID,
			Name:      p.Name,
			Stats:     domain.ProjectStats(p),
			Breakdown: domain.PhaseBreakdown(p),
		}
		return nil
	})
	return out, err
}
