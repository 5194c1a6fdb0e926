// Package materialize writes feature file templates into a project directory.
package materialize

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	starterrors "github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/types"
)

const (
	dirMode  fs.FileMode = 0755
	fileMode fs.FileMode = 0644
)

// Materializer writes templates below a project root. Existing files are
// overwritten without diffing or backup.
type Materializer struct {
	fs     types.FS
	root   string
	logger zerolog.Logger
}

// New creates a materializer rooted at root
func New(fsys types.FS, root string) *Materializer {
	return &Materializer{
		fs:     fsys,
		root:   root,
		logger: logging.GetLogger("materialize"),
	}
}

// Feature writes every file template of f in declaration order and returns
// the relative paths written. onWrite, when not nil, is called after each file.
func (m *Materializer) Feature(f types.Feature, onWrite func(path string)) ([]string, error) {
	written := make([]string, 0, len(f.Files))
	for _, file := range f.Files {
		if err := m.writeFile(file); err != nil {
			return written, err
		}
		written = append(written, file.Path)
		if onWrite != nil {
			onWrite(file.Path)
		}
	}
	return written, nil
}

// Selection writes the templates of every feature in selection order.
// A later write to the same path wins.
func (m *Materializer) Selection(sel types.Selection) ([]string, error) {
	var written []string
	for _, f := range sel {
		paths, err := m.Feature(f, nil)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (m *Materializer) writeFile(file types.FileTemplate) error {
	target := filepath.Join(m.root, filepath.FromSlash(file.Path))
	dir := filepath.Dir(target)

	if _, err := m.fs.Stat(dir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return starterrors.Wrapf(err, starterrors.ErrDirCreate, "failed to inspect %s", dir).
				WithDetail("path", dir)
		}
		if err := m.fs.MkdirAll(dir, dirMode); err != nil {
			return starterrors.Wrapf(err, starterrors.ErrDirCreate, "failed to create %s", dir).
				WithDetail("path", dir)
		}
		m.logger.Debug().Str("dir", dir).Msg("Created directory")
	}

	if err := m.fs.WriteFile(target, []byte(file.Content), fileMode); err != nil {
		return starterrors.Wrapf(err, starterrors.ErrFileWrite, "failed to write %s", file.Path).
			WithDetail("path", target)
	}

	m.logger.Info().
		Str("path", target).
		Int("bytes", len(file.Content)).
		Msg("Wrote template")
	return nil
}
