// Package project defines the Project entity shown on the board, its Status
// enum, and the rules a form submission must pass before a project is created.
package project

import (
	"strconv"
	"time"
)

// Project is one card on the board. Every field except Status is fixed at
// creation; the board store is the only writer of Status.
type Project struct {
	ID          int64
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}

// PeopleText renders the people count for a card, e.g. "1 person" or "3 people".
func (p *Project) PeopleText() string {
	if p.People > 1 {
		return strconv.Itoa(p.People) + " people"
	}
	return strconv.Itoa(p.People) + " person"
}

// FilterByStatus returns the projects whose status equals s, preserving order.
// The result never aliases the input slice.
func FilterByStatus(projects []Project, s Status) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		if projects[i].Status == s {
			out = append(out, projects[i])
		}
	}
	return out
}
