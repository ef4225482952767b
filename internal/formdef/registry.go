package formdef

import (
	"log/slog"
	"sort"

	"github.com/thoreinstein/formkit/internal/errors"
)

// Registry resolves form names to definitions. Files in the user forms
// directory override builtins of the same name.
type Registry struct {
	dir      string
	forms    map[string]*Definition
	problems []error
}

// NewRegistry loads the builtins and every definition in dir. Unreadable or
// invalid files are logged and kept in Problems; they never fail the load.
func NewRegistry(dir string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{dir: dir, forms: make(map[string]*Definition)}
	for _, def := range Builtin() {
		r.forms[def.Name] = def
	}

	if dir == "" {
		return r, nil
	}

	defs, problems, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, p := range problems {
		logger.Warn("skipping form definition", "error", p)
	}
	r.problems = problems

	for _, def := range defs {
		if res := Lint(def); res.HasErrors() {
			err := errors.Wrapf(errors.ErrInvalidDefinition, "%s: %s", def.Source, res.Errors()[0].Error())
			logger.Warn("skipping form definition", "path", def.Source, "error", err)
			r.problems = append(r.problems, err)
			continue
		}
		if _, ok := r.forms[def.Name]; ok {
			logger.Debug("form definition overrides existing", "name", def.Name, "path", def.Source)
		}
		r.forms[def.Name] = def
	}

	return r, nil
}

// Dir returns the forms directory the registry was loaded from.
func (r *Registry) Dir() string {
	return r.dir
}

// Lookup returns the named definition or an error wrapping ErrNotFound.
func (r *Registry) Lookup(name string) (*Definition, error) {
	def, ok := r.forms[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "form %q", name)
	}
	return def, nil
}

// List returns all definitions sorted by name.
func (r *Registry) List() []*Definition {
	out := make([]*Definition, 0, len(r.forms))
	for _, def := range r.forms {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted form names.
func (r *Registry) Names() []string {
	defs := r.List()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// Problems returns the errors of definition files that were skipped.
func (r *Registry) Problems() []error {
	return r.problems
}
