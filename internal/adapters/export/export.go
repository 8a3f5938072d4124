package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Board is what gets exported: the columns at one instant.
type Board struct {
	Title       string
	GeneratedAt time.Time
	Columns     ports.Columns
}

// document is the JSON and YAML shape of a board.
type document struct {
	Title       string    `json:"title" yaml:"title"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Count       int       `json:"count" yaml:"count"`
	Columns     []column  `json:"columns" yaml:"columns"`
}

type column struct {
	Status   project.Status `json:"status" yaml:"status"`
	Projects []card         `json:"projects" yaml:"projects"`
}

type card struct {
	ID          int64     `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	People      int       `json:"people" yaml:"people"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

var csvHeader = []string{"id", "title", "description", "people", "status", "created_at"}

// Write encodes b to w in format f.
func Write(w io.Writer, f Format, b Board) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(b))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(b)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, b)
	case FormatPDF:
		return writePDF(w, b)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

func newDocument(b Board) document {
	doc := document{
		Title:       b.Title,
		GeneratedAt: b.GeneratedAt.UTC(),
		Count:       b.Columns.Count(),
	}
	for _, col := range columnsOf(b.Columns) {
		cards := make([]card, len(col.projects))
		for i, p := range col.projects {
			cards[i] = card{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				People:      p.People,
				CreatedAt:   p.CreatedAt.UTC(),
			}
		}
		doc.Columns = append(doc.Columns, column{Status: col.status, Projects: cards})
	}
	return doc
}

type statusColumn struct {
	status   project.Status
	heading  string
	projects []project.Project
}

// columnsOf lists the columns in display order.
func columnsOf(cols ports.Columns) []statusColumn {
	return []statusColumn{
		{status: project.StatusActive, heading: "Active Projects", projects: cols.Active},
		{status: project.StatusFinished, heading: "Finished Projects", projects: cols.Finished},
	}
}

func writeCSV(w io.Writer, b Board) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, col := range columnsOf(b.Columns) {
		for _, p := range col.projects {
			record := []string{
				strconv.FormatInt(p.ID, 10),
				p.Title,
				p.Description,
				strconv.Itoa(p.People),
				string(p.Status),
				p.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing csv row %d: %w", p.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, b Board) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(b.Title, true)
	pdf.SetCreator("project-board", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(b.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+b.GeneratedAt.UTC().Format(time.RFC1123), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, col := range columnsOf(b.Columns) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetFillColor(230, 230, 230)
		heading := fmt.Sprintf("%s (%d)", col.heading, len(col.projects))
		pdf.CellFormat(0, 9, heading, "", 1, "L", true, 0, "")
		pdf.Ln(2)

		if len(col.projects) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 6, "No projects.", "", 1, "L", false, 0, "")
		}
		for _, p := range col.projects {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(p.Title), "", "L", false)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 5, p.PeopleText()+" assigned", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(p.Description), "", "L", false)
			pdf.Ln(3)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}
