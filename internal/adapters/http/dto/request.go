package dto

import (
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// CreateProjectRequest is the JSON body of the new-project form. Field rules
// are applied by the board service, not here.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// ToInput converts the request to a domain form submission.
func (r *CreateProjectRequest) ToInput() project.Input {
	return project.Input{
		Title:       r.Title,
		Description: r.Description,
		People:      r.People,
	}
}

// MoveProjectRequest is the JSON body of a card drop.
type MoveProjectRequest struct {
	Status string `json:"status"`
}

// Validate checks that status names a board column.
func (r *MoveProjectRequest) Validate() error {
	switch {
	case r.Status == "":
		return domain.NewValidationError("status", domain.MsgRequired)
	case !project.Status(r.Status).IsValid():
		return domain.NewValidationError("status", "must be one of: active, finished")
	}
	return nil
}
