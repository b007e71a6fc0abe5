package domain

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

type Note struct {
	Text string
}

type Video struct {
	ID  string
	URL string
}

// File is an attachment stored inline as a data URI.
type File struct {
	Name string
	Type string
	Size int64
	Data string
}

type Link struct {
	URL   string
	Title string
}

// Materials is the bucket of notes, videos, files and links attached to a node.
type Materials struct {
	Notes  []Note
	Videos []Video
	Files  []File
	Links  []Link
}

// NewMaterials returns a bucket with all four lists allocated.
func NewMaterials() Materials {
	return Materials{Notes: []Note{}, Videos: []Video{}, Files: []File{}, Links: []Link{}}
}

// Len returns the number of entries in one list of the bucket.
func (m *Materials) Len(kind MaterialKind) int {
	switch kind {
	case MaterialNotes:
		return len(m.Notes)
	case MaterialVideos:
		return len(m.Videos)
	case MaterialFiles:
		return len(m.Files)
	case MaterialLinks:
		return len(m.Links)
	}
	return 0
}

// Total returns the number of entries across all lists.
func (m *Materials) Total() int {
	return len(m.Notes) + len(m.Videos) + len(m.Files) + len(m.Links)
}

// Remove deletes the entry at index from one list of the bucket.
func (m *Materials) Remove(kind MaterialKind, index int) error {
	if index < 0 || index >= m.Len(kind) {
		return fmt.Errorf("%s[%d]: %w", kind, index, ErrIndexOutOfRange)
	}
	switch kind {
	case MaterialNotes:
		m.Notes = slices.Delete(m.Notes, index, index+1)
	case MaterialVideos:
		m.Videos = slices.Delete(m.Videos, index, index+1)
	case MaterialFiles:
		m.Files = slices.Delete(m.Files, index, index+1)
	case MaterialLinks:
		m.Links = slices.Delete(m.Links, index, index+1)
	}
	return nil
}

// ResolveMaterials returns the bucket of the selected node, or false when the
// node no longer exists.
func ResolveMaterials(p *Project, ref NodeRef) (*Materials, bool) {
	switch ref.Kind {
	case NodeProject, "":
		return &p.Materials, true
	case NodePhase:
		if ph, ok := FindPhase(p, ref.ID); ok {
			return &ph.Materials, true
		}
	case NodeWeek:
		if w, ok := FindWeek(p, ref.ID); ok {
			return &w.Materials, true
		}
	case NodeDay:
		if d, ok := FindDay(p, ref.ID); ok {
			return &d.Materials, true
		}
	}
	return nil, false
}

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractYouTubeID returns the video id of a YouTube watch, short or embed URL,
// or of a bare 11-character id.
func ExtractYouTubeID(url string) (string, bool) {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// NewVideo validates a YouTube URL and returns the video entry for it.
func NewVideo(url string) (Video, error) {
	url = strings.TrimSpace(url)
	id, ok := ExtractYouTubeID(url)
	if !ok {
		return Video{}, fmt.Errorf("%w: %q", ErrInvalidVideoURL, url)
	}
	return Video{ID: id, URL: url}, nil
}

// NewLink returns a link whose title defaults to the URL.
func NewLink(url, title string) (Link, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Link{}, fmt.Errorf("link URL must not be empty")
	}
	return Link{URL: url, Title: CoalesceStr(strings.TrimSpace(title), url)}, nil
}

const defaultFileType = "application/octet-stream"

// NewFile encodes content as a base64 data URI attachment.
func NewFile(name, mimeType string, content []byte) File {
	dataType := CoalesceStr(mimeType, defaultFileType)
	return File{
		Name: name,
		Type: mimeType,
		Size: int64(len(content)),
		Data: "data:" + dataType + ";base64," + base64.StdEncoding.EncodeToString(content),
	}
}

// Decode returns the raw bytes of the attachment.
func (f File) Decode() ([]byte, error) {
	header, payload, ok := strings.Cut(f.Data, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return nil, fmt.Errorf("file %q: malformed data URI", f.Name)
	}
	if !strings.HasSuffix(header, ";base64") {
		return []byte(payload), nil
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding file %q: %w", f.Name, err)
	}
	return b, nil
}
