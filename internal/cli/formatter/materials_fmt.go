package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// FormatMaterials renders the four lists of a bucket with their indexes.
func FormatMaterials(title string, m *domain.Materials) string {
	var b strings.Builder
	b.WriteString(Header("Materials · "+title) + "\n")
	if m.Total() == 0 {
		b.WriteString(Dim("  no materials") + "\n")
		return b.String()
	}

	section := func(kind domain.MaterialKind, lines []string) {
		if len(lines) == 0 {
			return
		}
		b.WriteString(StyleYellowBold.Render(string(kind)) + "\n")
		for i, l := range lines {
			fmt.Fprintf(&b, "%3d. %s\n", i+1, l)
		}
	}

	notes := make([]string, 0, len(m.Notes))
	for _, n := range m.Notes {
		notes = append(notes, n.Text)
	}
	videos := make([]string, 0, len(m.Videos))
	for _, v := range m.Videos {
		videos = append(videos, StylePurple.Render(v.ID)+" "+Dim(v.URL))
	}
	files := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		files = append(files, f.Name+" "+Dim(fmt.Sprintf("(%s, %s)", CoalesceType(f.Type), FileSize(f.Size))))
	}
	links := make([]string, 0, len(m.Links))
	for _, l := range m.Links {
		line := StyleBlue.Render(l.Title)
		if l.Title != l.URL {
			line += " " + Dim(l.URL)
		}
		links = append(links, line)
	}

	section(domain.MaterialNotes, notes)
	section(domain.MaterialVideos, videos)
	section(domain.MaterialFiles, files)
	section(domain.MaterialLinks, links)
	return b.String()
}

// CoalesceType returns the MIME type or a placeholder when it is unknown.
func CoalesceType(t string) string {
	return domain.CoalesceStr(t, "unknown type")
}
