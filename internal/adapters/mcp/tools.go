package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Tool names.
const (
	ToolAddProject   = "add_project"
	ToolMoveProject  = "move_project"
	ToolListProjects = "list_projects"
)

// Card is a project as returned by the tools.
type Card struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	PeopleText  string `json:"people_text"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// AddProjectInput are the add_project arguments.
type AddProjectInput struct {
	Title       string `json:"title" jsonschema:"short project title"`
	Description string `json:"description" jsonschema:"what the project is about"`
	People      int    `json:"people" jsonschema:"number of people assigned"`
}

// AddProjectOutput is the add_project result.
type AddProjectOutput struct {
	Project Card `json:"project"`
}

// MoveProjectInput are the move_project arguments.
type MoveProjectInput struct {
	ID     int64  `json:"id" jsonschema:"project id as returned by add_project or list_projects"`
	Status string `json:"status" jsonschema:"target column: active or finished"`
}

// MoveProjectOutput is the move_project result. Moved is false when the id
// is unknown or the project was already in that column.
type MoveProjectOutput struct {
	Moved   bool  `json:"moved"`
	Project *Card `json:"project,omitempty"`
}

// ListProjectsInput are the list_projects arguments.
type ListProjectsInput struct {
	Status string `json:"status,omitempty" jsonschema:"only list this column: active or finished"`
}

// ListProjectsOutput is the list_projects result.
type ListProjectsOutput struct {
	Projects []Card `json:"projects"`
	Count    int    `json:"count"`
}

type tools struct {
	svc ports.BoardService
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolAddProject,
		Description: "Add a project to the active column. Title and description are required; people must be within the board's limits.",
	}, t.addProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolMoveProject,
		Description: "Move a project to the active or finished column.",
	}, t.moveProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolListProjects,
		Description: "List the projects on the board, optionally only one column.",
		Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.listProjects)
}

func (t *tools) addProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddProjectInput) (*sdkmcp.CallToolResult, AddProjectOutput, error) {
	created, err := t.svc.CreateProject(ctx, project.Input{
		Title:       in.Title,
		Description: in.Description,
		People:      in.People,
	})
	if err != nil {
		return nil, AddProjectOutput{}, fmt.Errorf("%s: %w", ToolAddProject, err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "project added over mcp", slog.Int64("id", created.ID))
	return nil, AddProjectOutput{Project: toCard(created)}, nil
}

func (t *tools) moveProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in MoveProjectInput) (*sdkmcp.CallToolResult, MoveProjectOutput, error) {
	moved, ok, err := t.svc.MoveProject(ctx, in.ID, project.Status(in.Status))
	if err != nil {
		return nil, MoveProjectOutput{}, fmt.Errorf("%s: %w", ToolMoveProject, err)
	}
	if !ok {
		return nil, MoveProjectOutput{}, nil
	}

	card := toCard(moved)
	return nil, MoveProjectOutput{Moved: true, Project: &card}, nil
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsOutput, error) {
	projects, err := t.svc.ListProjects(ctx, project.Status(in.Status))
	if err != nil {
		return nil, ListProjectsOutput{}, fmt.Errorf("%s: %w", ToolListProjects, err)
	}

	cards := make([]Card, len(projects))
	for i := range projects {
		cards[i] = toCard(&projects[i])
	}
	return nil, ListProjectsOutput{Projects: cards, Count: len(cards)}, nil
}

func toCard(p *project.Project) Card {
	return Card{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		PeopleText:  p.PeopleText() + " assigned",
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
