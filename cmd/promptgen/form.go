package main

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/eduforge/promptgen-api/internal/domain"
	"github.com/eduforge/promptgen-api/internal/service"
)

// errFormAborted is returned when the user interrupts the form.
var errFormAborted = errors.New("form aborted")

// askKind asks which of the two prompt kinds to generate.
func askKind(ctx context.Context) (domain.PromptKind, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var choice string
	prompt := &survey.Select{
		Message: "Selecione o tipo de prompt que deseja gerar:",
		Options: []string{
			"Prompt para Texto (Modelos de Linguagem)",
			"Prompt para Imagem (Geradores de Imagem)",
		},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", translateSurveyErr(err)
	}

	if strings.Contains(choice, "Imagem") {
		return domain.PromptKindImage, nil
	}
	return domain.PromptKindText, nil
}

// askFields walks the kind's field specifications and collects a field
// set: a select prompt for option-backed fields, multiline input for
// long text, plain input otherwise. The required field is enforced at
// prompt time so the service never sees a blank submission from the CLI.
func askFields(ctx context.Context, specs []service.FieldSpec) (domain.FieldSet, error) {
	fields := make(domain.FieldSet, len(specs))

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := askField(spec)
		if err != nil {
			return nil, err
		}
		fields[spec.Name] = value
	}

	return fields, nil
}

func askField(spec service.FieldSpec) (string, error) {
	var value string
	var err error

	switch {
	case len(spec.Options) > 0:
		prompt := &survey.Select{
			Message: spec.Label,
			Options: spec.Options,
			Default: spec.Default,
		}
		err = survey.AskOne(prompt, &value)

	case spec.Multiline:
		prompt := &survey.Multiline{
			Message: spec.Label,
			Default: spec.Default,
		}
		err = survey.AskOne(prompt, &value)

	default:
		prompt := &survey.Input{
			Message: spec.Label,
			Default: spec.Default,
		}
		var opts []survey.AskOpt
		if spec.Required {
			opts = append(opts, survey.WithValidator(requiredNonBlank))
		}
		err = survey.AskOne(prompt, &value, opts...)
	}

	if err != nil {
		return "", translateSurveyErr(err)
	}
	return value, nil
}

// requiredNonBlank rejects empty and whitespace-only answers.
func requiredNonBlank(ans interface{}) error {
	s, ok := ans.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return errors.New("Por favor, preencha este campo.")
	}
	return nil
}

// translateSurveyErr maps the survey interrupt error to errFormAborted.
func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errFormAborted
	}
	return err
}
