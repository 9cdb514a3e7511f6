package seo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/prompt"
)

// Generator names used for fallback metrics and logs.
const (
	GeneratorTitle              = "title"
	GeneratorMetaDescription    = "meta_description"
	GeneratorParaphrase         = "paraphrase"
	GeneratorKeywords           = "keywords"
	GeneratorProductDescription = "product_description"
)

// TextGenerator turns a prompt into text. *generation.Gateway implements it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Settings are the brand defaults and bounds shared by all generators.
type Settings struct {
	DefaultCompanyName    string
	DefaultPharmacyName   string
	DefaultShopName       string
	MaxTitleLength        int
	MaxDescriptionLength  int
	CompetitorAttribution string
}

// SettingsFromConfig copies the generator settings out of the content config.
func SettingsFromConfig(cfg config.ContentConfig) Settings {
	return Settings{
		DefaultCompanyName:    cfg.DefaultCompanyName,
		DefaultPharmacyName:   cfg.DefaultPharmacyName,
		DefaultShopName:       cfg.DefaultShopName,
		MaxTitleLength:        cfg.MaxTitleLength,
		MaxDescriptionLength:  cfg.MaxDescriptionLength,
		CompetitorAttribution: cfg.CompetitorAttribution,
	}
}

// Dependencies are the collaborators every generator needs.
type Dependencies struct {
	Generator  TextGenerator
	Prompts    *prompt.Builder
	Classifier *classifier.Classifier
	Settings   Settings
	Logger     *slog.Logger
	// Recorder is optional.
	Recorder generation.Recorder
}

func (d Dependencies) validate() error {
	switch {
	case d.Generator == nil:
		return errors.New("text generator cannot be nil")
	case d.Prompts == nil:
		return errors.New("prompt builder cannot be nil")
	case d.Classifier == nil:
		return errors.New("classifier cannot be nil")
	case d.Logger == nil:
		return errors.New("logger cannot be nil")
	case d.Settings.MaxTitleLength <= 0 || d.Settings.MaxDescriptionLength <= 0:
		return errors.New("length bounds must be positive")
	case d.Settings.DefaultCompanyName == "":
		return errors.New("default company name cannot be empty")
	}
	return nil
}

// base holds the plumbing shared by the generators.
type base struct {
	gen        TextGenerator
	prompts    *prompt.Builder
	classifier *classifier.Classifier
	settings   Settings
	logger     *slog.Logger
	recorder   generation.Recorder
	name       string
}

func newBase(deps Dependencies, name string) (base, error) {
	if err := deps.validate(); err != nil {
		return base{}, err
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = generation.NopRecorder()
	}
	return base{
		gen:        deps.Generator,
		prompts:    deps.Prompts,
		classifier: deps.Classifier,
		settings:   deps.Settings,
		logger:     deps.Logger.With("generator", name),
		recorder:   recorder,
		name:       name,
	}, nil
}

// generate renders the named prompt and sends it through the gateway.
func (b *base) generate(ctx context.Context, name prompt.Name, data prompt.Data) (string, error) {
	p, err := b.prompts.Render(name, data)
	if err != nil {
		return "", err
	}
	return b.gen.Generate(ctx, p)
}

// fallback logs and records that canned content replaced a backend reply.
func (b *base) fallback(ctx context.Context, err error) {
	b.fallbackFor(ctx, b.name, err)
}

func (b *base) fallbackFor(ctx context.Context, name string, err error) {
	b.recorder.Fallback(name)
	b.logger.WarnContext(ctx, "generation failed, using fallback content",
		"operation", name,
		"error", err)
}

// companyName returns name, or the flat default when name is blank.
func (b *base) companyName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.settings.DefaultCompanyName
	}
	return name
}

// brandName returns name unless it is blank or the flat default, in which
// case the pharmacy or shop default is chosen by product category.
func (b *base) brandName(name string, class classifier.Classification) string {
	name = strings.TrimSpace(name)
	if name != "" && name != b.settings.DefaultCompanyName {
		return name
	}
	if class.IsMedicine && b.settings.DefaultPharmacyName != "" {
		return b.settings.DefaultPharmacyName
	}
	if !class.IsMedicine && b.settings.DefaultShopName != "" {
		return b.settings.DefaultShopName
	}
	return b.settings.DefaultCompanyName
}

// Suite bundles the four generators.
type Suite struct {
	Titles       *TitleGenerator
	Descriptions *DescriptionGenerator
	Keywords     *KeywordGenerator
	Products     *ProductDescriptionGenerator
}

// New builds all four generators from deps.
func New(deps Dependencies) (*Suite, error) {
	titles, err := NewTitleGenerator(deps)
	if err != nil {
		return nil, err
	}
	descriptions, err := NewDescriptionGenerator(deps)
	if err != nil {
		return nil, err
	}
	keywords, err := NewKeywordGenerator(deps)
	if err != nil {
		return nil, err
	}
	products, err := NewProductDescriptionGenerator(deps)
	if err != nil {
		return nil, err
	}
	return &Suite{
		Titles:       titles,
		Descriptions: descriptions,
		Keywords:     keywords,
		Products:     products,
	}, nil
}

// cleanReply takes the first non-empty line of a model reply and strips
// surrounding quotes and markdown emphasis.
func cleanReply(reply string) string {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "\"'`*")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
