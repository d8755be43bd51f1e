package transform

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var (
	compiledTemplates sync.Map
	templateFuncs     template.FuncMap
)

func init() {
	templateFuncs = sprig.TxtFuncMap()
}

// TemplateEnv is the data passed to a field template.
type TemplateEnv struct {
	// Value is the raw field content.
	Value string
}

// TemplateTransformer rewrites fields by rendering a text/template with
// the sprig function map. The template receives the field as .Value:
//
//	{{ upper .Value }}
//	{{ .Value | trim | b64enc }}
type TemplateTransformer struct {
	tmpl *template.Template
}

// NewTemplate compiles a field template. Compiled templates are cached by
// source text, so repeated construction from configuration is cheap.
func NewTemplate(text string) (*TemplateTransformer, error) {
	if cached, ok := compiledTemplates.Load(text); ok {
		return &TemplateTransformer{tmpl: cached.(*template.Template)}, nil
	}
	tmpl, err := template.New("field").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot compile template: %w", err)
	}
	compiledTemplates.Store(text, tmpl)
	return &TemplateTransformer{tmpl: tmpl}, nil
}

// Transform implements delim.Transformer.
func (t *TemplateTransformer) Transform(field string) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, TemplateEnv{Value: field}); err != nil {
		return "", fmt.Errorf("cannot render template: %w", err)
	}
	return buf.String(), nil
}
