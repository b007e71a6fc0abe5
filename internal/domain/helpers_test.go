package domain

func items(done ...bool) []Item {
	out := make([]Item, len(done))
	for i, d := range done {
		out[i] = Item{Text: "item", Completed: d}
	}
	return out
}

func day(id string, done ...bool) *Day {
	return &Day{ID: id, Title: "Day " + id, Tasks: items(done...), Materials: NewMaterials()}
}

func week(id string, goals []Item, days ...*Day) *Week {
	return &Week{ID: id, Title: "Week " + id, Goals: goals, Days: days, Materials: NewMaterials()}
}

func phase(id string, goals []Item, weeks ...*Week) *Phase {
	return &Phase{ID: id, Title: "Phase " + id, Goals: goals, Weeks: weeks, Materials: NewMaterials()}
}

func project(id string, s Structure, body Body, tasks ...bool) *Project {
	return &Project{
		ID:        id,
		Name:      "Project " + id,
		Structure: s,
		Tasks:     items(tasks...),
		Materials: NewMaterials(),
		Body:      body,
	}
}

// phasedFixture: 2 project tasks (1 done), phase p1 with goals [done],
// week w1 with goals [no] and day d1 [done, no]; phase p2 empty.
func phasedFixture() *Project {
	return project("P", StructureFor(TemplateFull), &PhasedBody{Phases: []*Phase{
		phase("p1", items(true), week("w1", items(false), day("d1", true, false))),
		phase("p2", nil),
	}}, true, false)
}

func weeklyFixture() *Project {
	return project("W", StructureFor(TemplateWeekly), &WeeklyBody{Weeks: []*Week{
		week("w1", items(true, true), day("d1", true, false)),
		week("w2", nil, day("d2")),
	}})
}

func dailyFixture() *Project {
	return project("D", StructureFor(TemplateDaily), &DailyBody{Days: []*Day{
		day("d1", true),
		day("d2", false, false),
	}})
}

func flatFixture() *Project {
	return project("F", Structure{}, &FlatBody{}, true, false, false)
}
