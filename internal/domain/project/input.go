package project

import (
	"fmt"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/validation"
)

// Input is a new-project form submission before it reaches the store.
type Input struct {
	Title       string
	Description string
	People      int
}

// InputRules holds the bounds applied to each form field. Zero values mean
// "no bound", except that every field is always required.
type InputRules struct {
	TitleMaxLength       int
	DescriptionMinLength int
	PeopleMin            int
	PeopleMax            int
}

// DefaultInputRules returns the stock form rules: a description of at least
// five characters and between one and five people.
func DefaultInputRules() InputRules {
	return InputRules{
		DescriptionMinLength: 5,
		PeopleMin:            1,
		PeopleMax:            5,
	}
}

// Validate checks the submission against rules and returns a
// *domain.ValidationError naming every failing field, or nil.
func (in *Input) Validate(rules InputRules) error {
	fields := make(map[string]string)

	title := validation.Descriptor{Value: in.Title, Required: true}
	if rules.TitleMaxLength > 0 {
		title.MaxLength = validation.Int(rules.TitleMaxLength)
	}
	if !validation.Validate(title) {
		fields["title"] = titleMessage(in.Title, rules)
	}

	description := validation.Descriptor{Value: in.Description, Required: true}
	if rules.DescriptionMinLength > 0 {
		description.MinLength = validation.Int(rules.DescriptionMinLength)
	}
	if !validation.Validate(description) {
		fields["description"] = descriptionMessage(in.Description, rules)
	}

	people := validation.Descriptor{Value: in.People, Required: true}
	if rules.PeopleMin > 0 {
		people.Min = validation.Float(float64(rules.PeopleMin))
	}
	if rules.PeopleMax > 0 {
		people.Max = validation.Float(float64(rules.PeopleMax))
	}
	if !validation.Validate(people) {
		fields["people"] = peopleMessage(in.People, rules)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func titleMessage(title string, rules InputRules) string {
	if !validation.Validate(validation.Descriptor{Value: title, Required: true}) {
		return domain.MsgRequired
	}
	return fmt.Sprintf("must be at most %d characters", rules.TitleMaxLength)
}

func descriptionMessage(description string, rules InputRules) string {
	if !validation.Validate(validation.Descriptor{Value: description, Required: true}) {
		return domain.MsgRequired
	}
	return fmt.Sprintf("must be at least %d characters", rules.DescriptionMinLength)
}

func peopleMessage(people int, rules InputRules) string {
	switch {
	case rules.PeopleMin > 0 && rules.PeopleMax > 0:
		return fmt.Sprintf("must be between %d and %d, got %d", rules.PeopleMin, rules.PeopleMax, people)
	case rules.PeopleMin > 0:
		return fmt.Sprintf("must be at least %d, got %d", rules.PeopleMin, people)
	default:
		return fmt.Sprintf("must be at most %d, got %d", rules.PeopleMax, people)
	}
}
