// Package handlers provides HTTP request handlers for the board API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectHandler serves the project list, the new-project form and card
// drops.
type ProjectHandler struct {
	svc ports.BoardService
}

// NewProjectHandler creates a ProjectHandler backed by svc.
func NewProjectHandler(svc ports.BoardService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects[?status=].
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	status := project.Status(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("query.status", "must be one of: active, finished"))
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	req, ok := readBody[dto.CreateProjectRequest](w, r)
	if !ok {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// MoveProject handles PATCH /api/v1/projects/{id}/status. It answers 200
// with the moved project, or 204 when nothing changed (unknown ID or same
// status).
func (h *ProjectHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	req, ok := readBody[dto.MoveProjectRequest](w, r)
	if !ok {
		return
	}

	moved, ok, err := h.svc.MoveProject(r.Context(), id, project.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(moved))
}
