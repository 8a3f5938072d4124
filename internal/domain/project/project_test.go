package project

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "active is valid", status: StatusActive, want: true},
		{name: "finished is valid", status: StatusFinished, want: true},
		{name: "empty string is invalid", status: "", want: false},
		{name: "unknown value is invalid", status: "archived", want: false},
		{name: "case sensitive", status: "Active", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatuses_DisplayOrder(t *testing.T) {
	t.Parallel()

	got := Statuses()
	if len(got) != 2 || got[0] != StatusActive || got[1] != StatusFinished {
		t.Errorf("Statuses() = %v, want [active finished]", got)
	}
}

func TestProject_PeopleText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		people int
		want   string
	}{
		{1, "1 person"},
		{2, "2 people"},
		{5, "5 people"},
		{0, "0 person"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			p := Project{People: tt.people}
			if got := p.PeopleText(); got != tt.want {
				t.Errorf("PeopleText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterByStatus(t *testing.T) {
	t.Parallel()

	all := []Project{
		{ID: 1, Status: StatusActive},
		{ID: 2, Status: StatusFinished},
		{ID: 3, Status: StatusActive},
	}

	active := FilterByStatus(all, StatusActive)
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Fatalf("FilterByStatus(active) = %+v, want ids [1 3]", active)
	}

	active[0].Title = "mutated"
	if all[0].Title != "" {
		t.Error("FilterByStatus result aliases the input slice")
	}

	if got := FilterByStatus(nil, StatusFinished); got == nil || len(got) != 0 {
		t.Errorf("FilterByStatus(nil) = %v, want empty non-nil slice", got)
	}
}

func validInput() Input {
	return Input{
		Title:       "Launch site",
		Description: "Ship the marketing site",
		People:      3,
	}
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Input)
		wantField string
	}{
		{name: "valid input passes", modify: func(_ *Input) {}},
		{name: "empty title fails", modify: func(in *Input) { in.Title = "" }, wantField: "title"},
		{name: "whitespace title fails", modify: func(in *Input) { in.Title = "   " }, wantField: "title"},
		{name: "empty description fails", modify: func(in *Input) { in.Description = "" }, wantField: "description"},
		{name: "short description fails", modify: func(in *Input) { in.Description = "abcd" }, wantField: "description"},
		{name: "padded short description fails", modify: func(in *Input) { in.Description = "  abcd  " }, wantField: "description"},
		{name: "five character description passes", modify: func(in *Input) { in.Description = "abcde" }},
		{name: "zero people fails", modify: func(in *Input) { in.People = 0 }, wantField: "people"},
		{name: "six people fails", modify: func(in *Input) { in.People = 6 }, wantField: "people"},
		{name: "one person passes", modify: func(in *Input) { in.People = 1 }},
		{name: "five people passes", modify: func(in *Input) { in.People = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.modify(&in)

			err := in.Validate(DefaultInputRules())
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestInput_Validate_ReportsEveryField(t *testing.T) {
	t.Parallel()

	in := Input{}
	err := in.Validate(DefaultInputRules())

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("len(Fields) = %d, want 3; got %v", len(verr.Fields), verr.Fields)
	}
	if verr.Fields["title"] != domain.MsgRequired {
		t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], domain.MsgRequired)
	}
}

func TestInput_Validate_TitleMaxLength(t *testing.T) {
	t.Parallel()

	rules := DefaultInputRules()
	rules.TitleMaxLength = 5

	in := validInput()
	in.Title = "too long title"
	requireValidationField(t, in.Validate(rules), "title")

	in.Title = "short"
	if err := in.Validate(rules); err != nil {
		t.Errorf("Validate() = %v, want nil for title at max length", err)
	}
}

func TestInput_Validate_UnboundedPeople(t *testing.T) {
	t.Parallel()

	rules := InputRules{}
	in := validInput()
	in.People = 500

	if err := in.Validate(rules); err != nil {
		t.Errorf("Validate() = %v, want nil with no people bounds", err)
	}
}
