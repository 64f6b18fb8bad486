package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

//go:embed templates
var embeddedTemplates embed.FS

// TemplateRenderer renders artifacts from per-language text templates
type TemplateRenderer struct {
	options   *Options
	templates fs.FS
	now       time.Time
	cache     *lru.LRU[string, *template.Template]
}

// NewTemplateRenderer creates a renderer. A nil options uses DefaultOptions.
func NewTemplateRenderer(options *Options) (*TemplateRenderer, error) {
	if options == nil {
		options = DefaultOptions()
	}

	var templates fs.FS
	if options.TemplateDir != "" {
		info, err := os.Stat(options.TemplateDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: template directory %s", ErrTemplateNotFound, options.TemplateDir)
		}
		templates = os.DirFS(options.TemplateDir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, err
		}
		templates = sub
	}

	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}

	size := options.CacheSize
	if size <= 0 {
		size = DefaultOptions().CacheSize
	}

	return &TemplateRenderer{
		options:   options,
		templates: templates,
		now:       now,
		cache:     lru.NewLRU[string, *template.Template](size, nil, 0),
	}, nil
}

// Render executes the template name of a language with data
func (r *TemplateRenderer) Render(language, name string, data any) (string, error) {
	tmpl, err := r.template(language, name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			return "", fmt.Errorf("%s/%s: %w", language, name, err)
		}
		return "", fmt.Errorf("failed to render %s/%s: %v", language, name, err)
	}
	return buf.String(), nil
}

// template returns the parsed template, parsing it on first use
func (r *TemplateRenderer) template(language, name string) (*template.Template, error) {
	key := language + "/" + name
	if tmpl, ok := r.cache.Get(key); ok {
		return tmpl, nil
	}

	ts, ok := typeSystems[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	data, err := fs.ReadFile(r.templates, path.Join(language, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
		}
		return nil, fmt.Errorf("failed to read template %s: %w", key, err)
	}

	resolver := &typeResolver{ts: ts, customTypes: r.options.CustomTypes}
	tmpl, err := template.New(name).Funcs(r.funcMap(resolver)).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", key, err)
	}

	r.cache.Add(key, tmpl)
	return tmpl, nil
}

// Cached returns the number of parsed templates held in the cache
func (r *TemplateRenderer) Cached() int {
	return r.cache.Len()
}
