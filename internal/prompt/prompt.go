// Package prompt renders the instruction text sent to the generation backend.
//
// Templates are embedded in the binary and can be replaced one by one from an
// override directory holding files with the same names. Rendering is pure:
// identical Data always yields byte-identical prompts.
package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Name identifies a prompt template.
type Name string

// Available templates.
const (
	MetaDescription        Name = "meta_description.tmpl"
	Paraphrase             Name = "paraphrase.tmpl"
	MedicineTitle          Name = "medicine_title.tmpl"
	ProductTitle           Name = "product_title.tmpl"
	MedicineKeywords       Name = "keywords_medicine.tmpl"
	GeneralKeywords        Name = "keywords_general.tmpl"
	BengaliMedicineDetails Name = "description_medicine_bn.tmpl"
	BengaliGeneralDetails  Name = "description_general_bn.tmpl"
	GeneralProductDetails  Name = "description_general.tmpl"
)

// Names lists every template the builder must provide.
var Names = []Name{
	MetaDescription,
	Paraphrase,
	MedicineTitle,
	ProductTitle,
	MedicineKeywords,
	GeneralKeywords,
	BengaliMedicineDetails,
	BengaliGeneralDetails,
	GeneralProductDetails,
}

// ErrUnknownTemplate is returned by Render for a name that was never loaded.
var ErrUnknownTemplate = errors.New("unknown prompt template")

// Data is the input of every template. Templates use only the fields they need.
type Data struct {
	Content      string
	CompanyName  string
	MaxLength    int
	KeywordCount int
}

// Builder renders prompts from the loaded templates. It is safe for
// concurrent use once constructed.
type Builder struct {
	templates   *template.Template
	bannedTerms []string
}

// NewBuilder loads the embedded templates and applies any overrides found in
// overrideDir. bannedTerms are rendered into every template that lists words
// the model must not use.
func NewBuilder(overrideDir string, bannedTerms []string) (*Builder, error) {
	root := template.New("prompts").Funcs(template.FuncMap{
		"quoteList": quoteList,
	})

	root, err := root.ParseFS(embedded, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded prompt templates: %w", err)
	}

	if overrideDir != "" {
		if err := applyOverrides(root, overrideDir); err != nil {
			return nil, err
		}
	}

	for _, name := range Names {
		if root.Lookup(string(name)) == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
		}
	}

	return &Builder{
		templates:   root,
		bannedTerms: append([]string(nil), bannedTerms...),
	}, nil
}

func applyOverrides(root *template.Template, dir string) error {
	for _, name := range Names {
		path := filepath.Join(dir, string(name))
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read prompt template from %s: %w", path, err)
		}
		if _, err := root.New(string(name)).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse prompt template %s: %w", path, err)
		}
	}
	return nil
}

// Render executes the named template with data.
func (b *Builder) Render(name Name, data Data) (string, error) {
	tmpl := b.templates.Lookup(string(name))
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	view := struct {
		Data
		BannedTerms []string
	}{Data: data, BannedTerms: b.bannedTerms}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// quoteList renders terms as 'a', 'b', 'c'.
func quoteList(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, "'"+t+"'")
	}
	return strings.Join(quoted, ", ")
}
