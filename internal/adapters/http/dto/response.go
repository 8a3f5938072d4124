// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectResponse is a single project card.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	PeopleText  string `json:"people_text"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ProjectListResponse is a list of projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// BoardResponse is the board as displayed, one list per column.
type BoardResponse struct {
	Active   []ProjectResponse `json:"active"`
	Finished []ProjectResponse `json:"finished"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain project. PeopleText reads
// "<n> person/people assigned" the way the card shows it.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		PeopleText:  p.PeopleText() + " assigned",
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToProjectListResponse converts a slice of projects. The list is never null.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := toResponses(projects)
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// ToBoardResponse converts the column projection.
func ToBoardResponse(cols ports.Columns) BoardResponse {
	return BoardResponse{
		Active:   toResponses(cols.Active),
		Finished: toResponses(cols.Finished),
		Count:    cols.Count(),
	}
}

func toResponses(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}

// Health probe states.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthDegraded = "degraded"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the health probes. Checks maps each check
// name to "ok" or its error text; liveness leaves it out.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
