package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type materialsService struct {
	store    *store.Store
	observer UseCaseObserver
}

func NewMaterialsService(st *store.Store, observers ...UseCaseObserver) MaterialsService {
	return &materialsService{store: st, observer: useCaseObserverOrNoop(observers)}
}

func (s *materialsService) List(ctx context.Context, projectID string, at domain.NodeRef) (*domain.Materials, error) {
	var out *domain.Materials
	err := readProject(s.store, projectID, func(p *domain.Project) error {
		m, err := findMaterials(p, at)
		if err != nil {
			return err
		}
		cp := domain.Materials{
			Notes:  append([]domain.Note{}, m.Notes...),
			Videos: append([]domain.Video{}, m.Videos...),
			Files:  append([]domain.File{}, m.Files...),
			Links:  append([]domain.Link{}, m.Links...),
		}
		out = &cp
		return nil
	})
	return out, err
}

func (s *materialsService) AddNote(ctx context.Context, projectID string, at domain.NodeRef, text string) error {
	text, err := cleanText(text)
	if err != nil {
		return err
	}
	return s.edit(ctx, projectID, at, func(m *domain.Materials) error {
		m.Notes = append(m.Notes, domain.Note{Text: text})
		return nil
	})
}

func (s *materialsService) AddVideo(ctx context.Context, projectID string, at domain.NodeRef, url string) (domain.Video, error) {
	v, err := domain.NewVideo(url)
	if err != nil {
		return domain.Video{}, err
	}
	err = s.edit(ctx, projectID, at, func(m *domain.Materials) error {
		m.Videos = append(m.Videos, v)
		return nil
	})
	return v, err
}

func (s *materialsService) AddLink(ctx context.Context, projectID string, at domain.NodeRef, url, title string) (domain.Link, error) {
	l, err := domain.NewLink(url, title)
	if err != nil {
		return domain.Link{}, err
	}
	err = s.edit(ctx, projectID, at, func(m *domain.Materials) error {
		m.Links = append(m.Links, l)
		return nil
	})
	return l, err
}

// AttachFiles reads and encodes every file on its own goroutine. Each file is
// stored as soon as it is ready; a file whose node was removed in the
// meantime is skipped. Listeners are notified once at the end.
func (s *materialsService) AttachFiles(ctx context.Context, projectID string, at domain.NodeRef, files []FileSource) (res *AttachResult, err error) {
	fields := map[string]any{"project_id": projectID, "node": at.String(), "files": len(files)}
	defer finishUseCase(ctx, s.observer, "attach-files", time.Now().UTC(), fields, &err)

	if err = readProject(s.store, projectID, func(p *domain.Project) error {
		_, err := findMaterials(p, at)
		return err
	}); err != nil {
		return nil, err
	}

	res = &AttachResult{Failed: make(map[string]error)}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(f FileSource) {
			defer wg.Done()
			attachErr := s.attach(ctx, projectID, at, f)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case attachErr == nil:
				res.Attached = append(res.Attached, f.Name)
			case errors.Is(attachErr, domain.ErrNotFound):
				res.Skipped = append(res.Skipped, f.Name)
			default:
				res.Failed[f.Name] = attachErr
			}
		}(f)
	}
	wg.Wait()

	fields["attached"] = len(res.Attached)
	fields["skipped"] = len(res.Skipped)
	if len(res.Attached) > 0 {
		if err = s.store.Save(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *materialsService) attach(ctx context.Context, projectID string, at domain.NodeRef, f FileSource) error {
	content, err := f.Read()
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Name, err)
	}
	file := domain.NewFile(f.Name, f.Type, content)
	return s.store.UpdateQuietly(ctx, func(state *domain.AppState) error {
		p, err := findProject(state, projectID)
		if err != nil {
			return err
		}
		m, err := findMaterials(p, at)
		if err != nil {
			return err
		}
		m.Files = append(m.Files, file)
		return nil
	})
}

func (s *materialsService) OpenFile(ctx context.Context, projectID string, at domain.NodeRef, index int) (domain.File, []byte, error) {
	var f domain.File
	err := readProject(s.store, projectID, func(p *domain.Project) error {
		m, err := findMaterials(p, at)
		if err != nil {
			return err
		}
		if err := checkIndex(len(m.Files), index); err != nil {
			return err
		}
		f = m.Files[index]
		return nil
	})
	if err != nil {
		return domain.File{}, nil, err
	}
	content, err := f.Decode()
	if err != nil {
		return domain.File{}, nil, err
	}
	return f, content, nil
}

func (s *materialsService) Remove(ctx context.Context, projectID string, at domain.NodeRef, kind domain.MaterialKind, index int) error {
	if !domain.ValidMaterialKinds[string(kind)] {
		return fmt.Errorf("unknown material kind %q", kind)
	}
	return s.edit(ctx, projectID, at, func(m *domain.Materials) error {
		return m.Remove(kind, index)
	})
}

func (s *materialsService) edit(ctx context.Context, projectID string, at domain.NodeRef, fn func(m *domain.Materials) error) error {
	return updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		m, err := findMaterials(p, at)
		if err != nil {
			return err
		}
		return fn(m)
	})
}
