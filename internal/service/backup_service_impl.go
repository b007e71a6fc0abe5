package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/tally/internal/store"
)

type backupService struct {
	store    *store.Store
	observer UseCaseObserver
}

func NewBackupService(st *store.Store, observers ...UseCaseObserver) BackupService {
	return &backupService{store: st, observer: useCaseObserverOrNoop(observers)}
}

func (s *backupService) Export(ctx context.Context, w io.Writer, format string) (err error) {
	defer finishUseCase(ctx, s.observer, "export", time.Now().UTC(), map[string]any{"format": format}, &err)
	return s.store.Export(w, format)
}

func (s *backupService) Preview(ctx context.Context, r io.Reader) (*store.Incoming, error) {
	return store.DecodeImport(r)
}

func (s *backupService) Apply(ctx context.Context, in *store.Incoming) (err error) {
	fields := map[string]any{"projects": len(in.State.Projects), "issues": len(in.Issues)}
	defer finishUseCase(ctx, s.observer, "import", time.Now().UTC(), fields, &err)
	return s.store.Replace(ctx, in.State)
}
