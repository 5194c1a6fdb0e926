// Package manifest reads, merges and rewrites the project's package.json.
//
// The document is kept as raw JSON and edited with gjson/sjson so that keys
// the merge does not touch keep their position and number literals; new
// keys are appended to the end of their object, matching how a JavaScript
// object assignment would behave. On parse a repeated key collapses to its
// first position with its last value and string escapes are reduced, as a
// JSON parse and re-serialize would do. Merge never modifies the receiver:
// it returns a new Manifest.
package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/types"
)

// DefaultFile is the manifest file name inside the project directory
const DefaultFile = "package.json"

// Section names touched by the merge
const (
	SectionScripts         = "scripts"
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "devDependencies"
)

// RuntimeVersion is the version recorded for runtime dependencies.
// Development dependencies are not pinned; the installer resolves them.
const RuntimeVersion = "latest"

// Manifest is an in-memory package.json document
type Manifest struct {
	path string
	data []byte
}

// Load reads and validates the manifest at path
func Load(fsys types.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	return Parse(path, data)
}

// Parse validates data as a manifest document. path is only used for
// messages and by Save.
func Parse(path string, data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Newf(errors.ErrManifestParse, "%s is not valid JSON", path).
			WithDetail("path", path)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, errors.Newf(errors.ErrManifestParse, "%s must contain a JSON object", path).
			WithDetail("path", path)
	}

	normalized, err := normalize(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to read %s", path).
			WithDetail("path", path)
	}

	return &Manifest{path: path, data: normalized}, nil
}

// normalize rewrites the document compactly. Within an object a repeated
// key keeps the position of its first occurrence and the value of its last.
func normalize(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, gjson.ParseBytes(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v gjson.Result) error {
	switch {
	case v.IsObject():
		var keys []string
		values := make(map[string]gjson.Result)
		v.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, seen := values[name]; !seen {
				keys = append(keys, name)
			}
			values[name] = value
			return true
		})

		buf.WriteByte('{')
		for i, name := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, values[name]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case v.IsArray():
		buf.WriteByte('[')
		for i, item := range v.Array() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case v.Type == gjson.String:
		return writeString(buf, v.String())
	default:
		buf.WriteString(v.Raw)
	}
	return nil
}

// writeString encodes s with only the escapes JSON requires
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// Path returns the file the manifest was loaded from
func (m *Manifest) Path() string {
	return m.path
}

// Bytes returns a copy of the raw document
func (m *Manifest) Bytes() []byte {
	return append([]byte(nil), m.data...)
}

// Merge applies every selected feature, in order, to a copy of the manifest:
// dev dependency sections are created when needed, runtime dependencies are
// recorded as "latest" and script entries overwrite existing ones, so the
// later feature wins on a shared key.
func (m *Manifest) Merge(sel types.Selection) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data := m.Bytes()
	var err error
	for _, f := range sel {
		if len(f.DevDependencies) > 0 {
			if data, err = ensureObject(data, SectionDevDependencies); err != nil {
				return nil, err
			}
		}

		if len(f.Dependencies) > 0 {
			if data, err = ensureObject(data, SectionDependencies); err != nil {
				return nil, err
			}
			for _, dep := range f.Dependencies {
				if data, err = setString(data, SectionDependencies, dep, RuntimeVersion); err != nil {
					return nil, err
				}
			}
		}

		if len(f.Scripts) > 0 {
			if data, err = ensureObject(data, SectionScripts); err != nil {
				return nil, err
			}
			for _, s := range f.Scripts {
				if data, err = setString(data, SectionScripts, s.Name, s.Command); err != nil {
					return nil, err
				}
			}
		}

		logger.Debug().
			Str("feature", f.Name).
			Strs("scripts", f.ScriptNames()).
			Strs("devDependencies", f.DevDependencies).
			Msg("Merged feature into manifest")
	}

	return &Manifest{path: m.path, data: data}, nil
}

// ensureObject makes sure section exists as an object. A missing or null
// section is replaced by an empty object; any other non-object is an error.
func ensureObject(data []byte, section string) ([]byte, error) {
	r := gjson.GetBytes(data, gjson.Escape(section))
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		out, err := sjson.SetRawBytes(data, gjson.Escape(section), []byte("{}"))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create %s", section)
		}
		return out, nil
	case r.IsObject():
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "%q must be an object, found %s", section, r.Type).
			WithDetail("section", section)
	}
}

func setString(data []byte, section, key, value string) ([]byte, error) {
	out, err := sjson.SetBytes(data, gjson.Escape(section)+"."+gjson.Escape(key), value)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to set %s.%s", section, key)
	}
	return out, nil
}

// Scripts returns the scripts table in document order
func (m *Manifest) Scripts() []types.Script {
	var scripts []types.Script
	gjson.GetBytes(m.data, SectionScripts).ForEach(func(key, value gjson.Result) bool {
		scripts = append(scripts, types.Script{Name: key.String(), Command: value.String()})
		return true
	})
	return scripts
}

// Script returns the command of a single script entry
func (m *Manifest) Script(name string) (string, bool) {
	return m.lookup(SectionScripts, name)
}

// Dependency returns the version recorded for name in section
func (m *Manifest) Dependency(section, name string) (string, bool) {
	return m.lookup(section, name)
}

// HasSection reports whether a top-level key exists
func (m *Manifest) HasSection(section string) bool {
	return gjson.GetBytes(m.data, gjson.Escape(section)).Exists()
}

func (m *Manifest) lookup(section, key string) (string, bool) {
	r := gjson.GetBytes(m.data, gjson.Escape(section)+"."+gjson.Escape(key))
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}

// Format renders the document with two-space indentation and a trailing newline
func (m *Manifest) Format() ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, m.data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to format %s", m.path)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to format %s", m.path)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Save overwrites the manifest file with the formatted document
func (m *Manifest) Save(fsys types.FS) error {
	data, err := m.Format()
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(m.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write %s", m.path).
			WithDetail("path", m.path)
	}
	return nil
}
