package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/schema"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrImport marks an import file that could not be read as a document.
var ErrImport = errors.New("import failed")

// ExportFileName returns the default export file name for the given day.
func ExportFileName(now time.Time) string {
	return "tally-" + now.Format(domain.DateLayout) + ".json"
}

func encodeDocument(w io.Writer, doc *schema.Document, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q (expected json or yaml)", format)
	}
	return nil
}

// Incoming is a decoded import file waiting for confirmation.
type Incoming struct {
	State *domain.AppState
	// Issues lists consistency problems found in the file. They do not
	// prevent the import.
	Issues []error
}

// DecodeImport parses an exported JSON document. Any read or parse failure
// is returned wrapped in ErrImport.
func DecodeImport(r io.Reader) (*Incoming, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file: %v", ErrImport, err)
	}
	doc, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	issues := schema.Validate(doc)
	return &Incoming{State: schema.ToState(doc), Issues: issues}, nil
}

// Replace swaps in a whole new state, resets the view to home and saves both
// in one write, then notifies listeners.
func (s *Store) Replace(ctx context.Context, state *domain.AppState) error {
	viewData, err := json.Marshal(domain.View{})
	if err != nil {
		return fmt.Errorf("encoding view: %w", err)
	}

	s.mu.Lock()
	now := s.now().UTC()
	state.Settings.LastActivity = &now
	stateData, err := json.Marshal(schema.FromState(state))
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := s.repo.PutAll(ctx, map[string][]byte{StateKey: stateData, ViewKey: viewData}); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("saving imported state: %w", err)
	}
	s.state = state
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return nil
}

// Import decodes r and replaces the current state with it. On ErrImport the
// current state is left untouched.
func (s *Store) Import(ctx context.Context, r io.Reader) error {
	in, err := DecodeImport(r)
	if err != nil {
		return err
	}
	return s.Replace(ctx, in.State)
}
