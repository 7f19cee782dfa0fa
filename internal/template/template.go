package template

import (
	"errors"
	"fmt"

	"github.com/eduforge/promptgen-api/internal/domain"
)

// Errors returned by the registry and renderer.
var (
	// ErrUnknownKind is returned when no template exists for the
	// requested prompt kind.
	ErrUnknownKind = errors.New("unknown template kind")

	// ErrMissingPlaceholder is returned when a template placeholder has
	// no value in the supplied field set.
	ErrMissingPlaceholder = errors.New("missing placeholder value")

	// ErrUnexpectedPlaceholder is returned when the field set carries a
	// key the template does not declare.
	ErrUnexpectedPlaceholder = errors.New("unexpected placeholder")
)

// Placeholder names of the text-content template.
const (
	FieldContentType       = "tipo_conteudo"
	FieldTopic             = "tema"
	FieldAcademicLevel     = "nivel_academico"
	FieldExtraInstructions = "detalhes_adicionais"
)

// Placeholder names of the image-content template.
const (
	FieldVisualSubject  = "tema_visual"
	FieldArtStyle       = "estilo_arte"
	FieldImageDetails   = "detalhes_imagem"
	FieldPedagogicalUse = "aplicacao_didatica"
)

// Template is one of the built-in prompt templates. Text contains
// {name} markers for each entry in Placeholders.
type Template struct {
	Kind         domain.PromptKind
	Text         string
	Placeholders []string
}

const textTemplateBody = `Você é um assistente especializado em criar conteúdo didático para o ensino superior.
Sua tarefa é gerar um {tipo_conteudo} sobre o tema "{tema}" para {nivel_academico}.
Considere as seguintes instruções adicionais: {detalhes_adicionais}

Gere um prompt completo e claro para um modelo de linguagem.`

const imageTemplateBody = `Crie um prompt detalhado para um gerador de imagens que represente visualmente "{tema_visual}" no estilo "{estilo_arte}".
A imagem será usada como {aplicacao_didatica}.
Detalhes específicos para a imagem: {detalhes_imagem}.
O prompt deve focar na clareza didática e relevância acadêmica.`

var builtins = map[domain.PromptKind]Template{
	domain.PromptKindText: {
		Kind: domain.PromptKindText,
		Text: textTemplateBody,
		Placeholders: []string{
			FieldContentType,
			FieldTopic,
			FieldAcademicLevel,
			FieldExtraInstructions,
		},
	},
	domain.PromptKindImage: {
		Kind: domain.PromptKindImage,
		Text: imageTemplateBody,
		Placeholders: []string{
			FieldVisualSubject,
			FieldArtStyle,
			FieldImageDetails,
			FieldPedagogicalUse,
		},
	},
}

// Get returns the built-in template for the given prompt kind.
// Returns ErrUnknownKind if no template is defined for the kind.
func Get(kind domain.PromptKind) (Template, error) {
	tpl, ok := builtins[kind]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return tpl, nil
}
