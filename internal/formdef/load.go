package formdef

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/pkg/fileutil"
)

// Extensions recognized by LoadDir.
var Extensions = []string{".yaml", ".yml", ".toml"}

// Parse decodes a definition from data. format is a file extension
// (".yaml", ".yml" or ".toml"). Unknown keys are rejected.
func Parse(data []byte, format string) (*Definition, error) {
	var def Definition
	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidDefinition, "decoding YAML: %v", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidDefinition, "decoding TOML: %v", err)
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidDefinition, "unsupported format %q", format)
	}
	return &def, nil
}

// LoadFile reads one definition. A missing name defaults to the file name
// without extension.
func LoadFile(path string) (*Definition, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "form definition %s", path)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	ext := filepath.Ext(path)
	def, err := Parse(data, ext)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	def.Source = path
	return def, nil
}

// LoadDir loads every definition file directly inside dir, sorted by name.
// A missing directory yields no definitions. Files that fail to load are
// returned in problems and do not stop the scan.
func LoadDir(dir string) (defs []*Definition, problems []error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, errors.Wrapf(err, "reading forms directory %s", dir)
	}

	for _, e := range entries {
		if e.IsDir() || !isDefinitionFile(e.Name()) {
			continue
		}
		def, loadErr := LoadFile(filepath.Join(dir, e.Name()))
		if loadErr != nil {
			problems = append(problems, loadErr)
			continue
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, problems, nil
}

func isDefinitionFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Save writes def as YAML to path atomically.
func Save(path string, def *Definition) error {
	return errors.Wrapf(fileutil.AtomicWriteYAML(path, def, 0o644), "saving form %q", def.Name)
}
