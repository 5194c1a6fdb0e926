package catalog

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/types"
)

//go:embed catalog.toml
var catalogData []byte

//go:embed templates
var templateFS embed.FS

var featureNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ReservedNames cannot be used as feature names because they are taken by CLI flags
var ReservedNames = []string{"all", "help", "dir", "format", "skip-install", "verbose", "version"}

// Catalog is the parsed feature table
type Catalog struct {
	App      types.Feature   `toml:"app"`
	Features []types.Feature `toml:"features"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed on first use
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		templates, err := fs.Sub(templateFS, "templates")
		if err != nil {
			defaultErr = errors.Wrap(err, errors.ErrCatalogInvalid, "failed to open embedded templates")
			return
		}
		defaultCatalog, defaultErr = Parse(catalogData, templates)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a catalog document and resolves every file template
// against templates. The result is validated before it is returned.
func Parse(data []byte, templates fs.FS) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	var c Catalog
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogInvalid, "failed to parse catalog")
	}

	if err := resolveTemplates(&c.App, templates); err != nil {
		return nil, err
	}
	for i := range c.Features {
		if err := resolveTemplates(&c.Features[i], templates); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("features", c.Names()).
		Msg("Catalog loaded")

	return &c, nil
}

func resolveTemplates(f *types.Feature, templates fs.FS) error {
	for i := range f.Files {
		file := &f.Files[i]
		if file.Template == "" {
			return errors.Newf(errors.ErrCatalogInvalid,
				"feature %q: file %q has no template", f.Name, file.Path).
				WithDetail("feature", f.Name)
		}
		content, err := fs.ReadFile(templates, file.Template)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCatalogInvalid,
				"feature %q: template %q not found", f.Name, file.Template).
				WithDetail("feature", f.Name)
		}
		file.Content = string(content)
	}
	return nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Features))
	for _, f := range c.Features {
		if !featureNamePattern.MatchString(f.Name) {
			return errors.Newf(errors.ErrCatalogInvalid, "invalid feature name %q", f.Name)
		}
		for _, reserved := range ReservedNames {
			if f.Name == reserved {
				return errors.Newf(errors.ErrCatalogInvalid, "feature name %q is reserved", f.Name)
			}
		}
		if seen[f.Name] {
			return errors.Newf(errors.ErrCatalogInvalid, "duplicate feature %q", f.Name)
		}
		seen[f.Name] = true

		if err := validateFeature(f); err != nil {
			return err
		}
	}
	return validateFeature(c.App)
}

func validateFeature(f types.Feature) error {
	scripts := make(map[string]bool, len(f.Scripts))
	for _, s := range f.Scripts {
		if s.Name == "" {
			return errors.Newf(errors.ErrCatalogInvalid, "feature %q: script without a name", f.Name)
		}
		if scripts[s.Name] {
			return errors.Newf(errors.ErrCatalogInvalid, "feature %q: duplicate script %q", f.Name, s.Name)
		}
		scripts[s.Name] = true
	}

	for _, file := range f.Files {
		if !filepath.IsLocal(file.Path) || path.Clean(file.Path) != file.Path {
			return errors.Newf(errors.ErrCatalogInvalid,
				"feature %q: file path %q must be a clean path inside the project", f.Name, file.Path)
		}
	}
	return nil
}

// Lookup returns the feature with the given name
func (c *Catalog) Lookup(name string) (types.Feature, bool) {
	for _, f := range c.Features {
		if f.Name == name {
			return f, true
		}
	}
	return types.Feature{}, false
}

// Names returns the feature names in catalog order
func (c *Catalog) Names() []string {
	return c.All().Names()
}

// All returns every feature in catalog order. The slice is a copy; the
// features themselves must be treated as read-only.
func (c *Catalog) All() types.Selection {
	return append(types.Selection(nil), c.Features...)
}
