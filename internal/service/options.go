package service

import (
	"fmt"

	"github.com/eduforge/promptgen-api/internal/domain"
	"github.com/eduforge/promptgen-api/internal/template"
)

// FieldSpec describes one form field of a prompt kind: its placeholder
// name, a user-facing label, the selectable options (empty for free
// text), the default value, and whether the field is required.
type FieldSpec struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Options   []string `json:"options,omitempty"`
	Default   string   `json:"default,omitempty"`
	Required  bool     `json:"required"`
	Multiline bool     `json:"multiline,omitempty"`
}

// Option catalogs carried over from the original form. The backend does
// not force submitted values to come from these lists; they exist so
// clients can build the selection widgets.
var (
	contentTypes = []string{
		"resumo",
		"artigo de blog didático",
		"tópicos para aula",
		"problema de exercício",
		"roteiro de vídeo-aula",
		"explicação de conceito",
	}

	academicLevels = []string{
		"alunos de graduação (introdução)",
		"alunos de graduação (intermediário)",
		"alunos de graduação (avançado)",
		"alunos de pós-graduação",
	}

	artStyles = []string{
		"diagrama conceitual",
		"infográfico",
		"ilustração científica",
		"fotorrealista",
		"pintura acadêmica",
		"esquemático",
		"vetorial",
	}
)

var textFieldSpecs = []FieldSpec{
	{
		Name:    template.FieldContentType,
		Label:   "Qual tipo de conteúdo você precisa?",
		Options: contentTypes,
		Default: "resumo",
	},
	{
		Name:     template.FieldTopic,
		Label:    "Qual o tema principal do conteúdo?",
		Required: true,
	},
	{
		Name:    template.FieldAcademicLevel,
		Label:   "Para qual nível acadêmico é o conteúdo?",
		Options: academicLevels,
		Default: "alunos de graduação (introdução)",
	},
	{
		Name:      template.FieldExtraInstructions,
		Label:     "Adicione quaisquer instruções específicas ou requisitos:",
		Default:   "Ser conciso e didático.",
		Multiline: true,
	},
}

var imageFieldSpecs = []FieldSpec{
	{
		Name:     template.FieldVisualSubject,
		Label:    "O que você quer visualizar?",
		Required: true,
	},
	{
		Name:    template.FieldArtStyle,
		Label:   "Qual estilo artístico você prefere?",
		Options: artStyles,
		Default: "diagrama conceitual",
	},
	{
		Name:      template.FieldImageDetails,
		Label:     "Detalhes específicos da imagem:",
		Default:   "Ser claro, com boa iluminação e sem texto.",
		Multiline: true,
	},
	{
		Name:    template.FieldPedagogicalUse,
		Label:   "Onde a imagem será usada?",
		Default: "slide de apresentação em sala de aula",
	},
}

// Options returns the form field specifications for the given prompt
// kind, in template placeholder order. Returns
// domain.ErrInvalidPromptKind for an unsupported kind.
func Options(kind domain.PromptKind) ([]FieldSpec, error) {
	switch kind {
	case domain.PromptKindText:
		return textFieldSpecs, nil
	case domain.PromptKindImage:
		return imageFieldSpecs, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPromptKind, kind)
	}
}

// RequiredField returns the name of the single required field for the
// given prompt kind, or the empty string for an unsupported kind.
func RequiredField(kind domain.PromptKind) string {
	specs, err := Options(kind)
	if err != nil {
		return ""
	}
	for _, spec := range specs {
		if spec.Required {
			return spec.Name
		}
	}
	return ""
}
