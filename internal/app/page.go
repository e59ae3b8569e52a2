package app

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// indexTemplate is the parsed storefront page, set by LoadIndexTemplate
var indexTemplate *template.Template

// Page is the server-side presentation surface of the storefront. Themes are
// applied to it before the index template is rendered.
type Page struct {
	attributes map[string]string
	texts      map[string]string
}

// NewPage creates a page that has a text slot for every id in slots
func NewPage(slots ...string) *Page {
	p := &Page{
		attributes: make(map[string]string),
		texts:      make(map[string]string, len(slots)),
	}
	for _, id := range slots {
		p.texts[id] = ""
	}
	return p
}

// SetAttribute sets a document-level attribute
func (p *Page) SetAttribute(name, value string) {
	p.attributes[name] = value
}

// SetText sets the text of an existing slot
func (p *Page) SetText(id, text string) bool {
	if _, ok := p.texts[id]; !ok {
		return false
	}
	p.texts[id] = text
	return true
}

func (p *Page) Attr(name string) string {
	return p.attributes[name]
}

func (p *Page) Has(id string) bool {
	_, ok := p.texts[id]
	return ok
}

func (p *Page) Text(id string) string {
	return p.texts[id]
}

// LoadIndexTemplate parses the storefront page template once at startup
func LoadIndexTemplate(src []byte) error {
	tmpl, err := template.New("index").Parse(string(src))
	if err != nil {
		return fmt.Errorf("failed to parse index template: %w", err)
	}
	indexTemplate = tmpl
	return nil
}

// RenderIndex executes the index template against p
func RenderIndex(p *Page) ([]byte, error) {
	if indexTemplate == nil {
		return nil, errors.New("index template not loaded")
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
