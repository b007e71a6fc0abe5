package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyPhased = `{
  "projects": [{
    "id": "p1",
    "name": "Old phased",
    "phases": [{
      "id": "ph1",
      "title": "Phase 1",
      "weeks": [{
        "id": "w1",
        "title": "Week 1",
        "days": [{"id": "d1", "title": "Mon", "date": "2025-01-06"}]
      }]
    }]
  }]
}`

const legacyStandalone = `{
  "projects": [
    {"id": "p2", "name": "Weekly", "weeks": [{"id": "w2", "title": "W", "goals": [{"text": "g", "completed": true}], "days": [{"id": "d2", "title": "D"}]}]},
    {"id": "p3", "name": "Daily", "days": [{"id": "d3", "title": "D", "materials": {"notes": [{"text": "n"}]}}, null]},
    null
  ],
  "settings": {"theme": "light", "lastActivity": null}
}`

func parse(t *testing.T, raw string) *Document {
	t.Helper()
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	return doc
}

func assertFullMaterials(t *testing.T, m *MaterialsDoc) {
	t.Helper()
	require.NotNil(t, m)
	assert.NotNil(t, m.Notes)
	assert.NotNil(t, m.Videos)
	assert.NotNil(t, m.Files)
	assert.NotNil(t, m.Links)
}

func TestNormalize_LegacyPhasedRecord(t *testing.T) {
	doc := Normalize(parse(t, legacyPhased))

	require.Len(t, doc.Projects, 1)
	p := doc.Projects[0]
	require.NotNil(t, p.Description)
	assert.Equal(t, "", *p.Description)
	assert.Equal(t, &StructureDoc{}, p.Structure)
	assert.Equal(t, []ItemDoc{}, p.Tasks)
	assertFullMaterials(t, p.Materials)

	ph := p.Phases[0]
	assert.Equal(t, []ItemDoc{}, ph.Goals)
	assertFullMaterials(t, ph.Materials)

	w := ph.Weeks[0]
	assert.Equal(t, []ItemDoc{}, w.Goals)
	assertFullMaterials(t, w.Materials)

	d := w.Days[0]
	assert.Equal(t, []ItemDoc{}, d.Tasks)
	assert.Equal(t, "2025-01-06", d.Date)
	assertFullMaterials(t, d.Materials)

	assert.Nil(t, p.Weeks, "absent collections stay absent")
	assert.Nil(t, p.Days)

	require.NotNil(t, doc.Settings)
	assert.Equal(t, "dark", doc.Settings.Theme)
	assert.Nil(t, doc.Settings.LastActivity)
}

func TestNormalize_StandaloneWeeksAndDays(t *testing.T) {
	doc := Normalize(parse(t, legacyStandalone))

	require.Len(t, doc.Projects, 2, "null projects are dropped")
	weekly := doc.Projects[0]
	assertFullMaterials(t, weekly.Weeks[0].Materials)
	assert.Equal(t, []ItemDoc{{Text: "g", Completed: true}}, weekly.Weeks[0].Goals)
	assertFullMaterials(t, weekly.Weeks[0].Days[0].Materials)
	assert.Equal(t, []ItemDoc{}, weekly.Weeks[0].Days[0].Tasks)

	daily := doc.Projects[1]
	require.Len(t, daily.Days, 1)
	assert.Equal(t, []NoteDoc{{Text: "n"}}, daily.Days[0].Materials.Notes)
	assert.Equal(t, []LinkDoc{}, daily.Days[0].Materials.Links)

	assert.Equal(t, "light", doc.Settings.Theme)
}

func TestNormalize_PhaseWithoutWeeksKeepsThemAbsent(t *testing.T) {
	doc := Normalize(parse(t, `{"projects":[{"id":"p","name":"x","phases":[{"id":"a","title":"A"}]}]}`))
	assert.Nil(t, doc.Projects[0].Phases[0].Weeks)
}

func TestNormalize_NilAndEmpty(t *testing.T) {
	doc := Normalize(nil)
	assert.Equal(t, []*ProjectDoc{}, doc.Projects)
	assert.Equal(t, &SettingsDoc{Theme: "dark"}, doc.Settings)

	doc = Normalize(parse(t, `{}`))
	assert.Empty(t, doc.Projects)
	assert.Equal(t, "dark", doc.Settings.Theme)

	doc = Normalize(&Document{Projects: []*ProjectDoc{{ID: "p"}}})
	assert.NotNil(t, doc.Projects[0].Materials)
}

func TestNormalize_Idempotent(t *testing.T) {
	fixtures := map[string]string{
		"phased":     legacyPhased,
		"standalone": legacyStandalone,
		"empty":      `{}`,
		"flat":       `{"projects":[{"id":"f","name":"F","tasks":[{"text":"a"}],"structure":{"hasMaterials":true}}]}`,
		"full": `{"projects":[{"id":"x","name":"X","description":"d","structure":{"hasPhases":true,"hasWeeks":true},
			"tasks":[],"materials":{"notes":[],"videos":[],"files":[],"links":[]},"phases":[]}],
			"settings":{"theme":"dark","lastActivity":"2025-03-01T10:00:00Z"}}`,
	}
	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			once := Normalize(parse(t, raw))
			twice := Normalize(Normalize(parse(t, raw)))
			assert.Equal(t, once, twice)

			again := Normalize(once)
			assert.Same(t, once, again)
			assert.Equal(t, twice, again)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"projects": [`))
	assert.Error(t, err)
	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}
