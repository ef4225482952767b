package form

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/thoreinstein/formkit/internal/password"
)

// PasswordField is the field whose value drives PasswordStrength.
const PasswordField = "password"

var scorePassword = password.Score

// Rule checks a field value. It returns "" when the value is valid and a
// human-readable message otherwise. Rules must not block or perform I/O.
type Rule func(value any) string

// Rules maps field names to the rule applied to them by Validate.
type Rules map[string]Rule

// State holds the values, errors and touched flags of one form.
//
// Every mutating method is applied atomically: readers never observe a
// half-applied change. The zero value is not usable; call New.
type State struct {
	mu      sync.RWMutex
	values  map[string]any
	errors  map[string]string
	touched map[string]bool

	strength strengthCache
}

// strengthCache memoizes the password score on the password string.
type strengthCache struct {
	valid bool
	input string
	score int
}

// New creates a State seeded with a copy of initial. Errors and touched
// flags start empty.
func New(initial map[string]any) *State {
	values := make(map[string]any, len(initial))
	maps.Copy(values, initial)
	return &State{
		values:  values,
		errors:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// HandleChange sets field to value. A pending error on field is cleared
// without re-validating the new value.
func (s *State) HandleChange(field string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[field] = value
	if s.errors[field] != "" {
		delete(s.errors, field)
	}
}

// HandleBlur marks field as touched. Values and errors are left alone.
func (s *State) HandleBlur(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched[field] = true
}

// Validate runs each rule against the current value of its field and
// replaces the error map with the messages of the failing rules. It reports
// whether every rule passed, along with a copy of the new error map.
//
// Rules run with no lock held, so a rule may read other fields of s.
// Panics raised by a rule propagate to the caller.
func (s *State) Validate(rules Rules) (bool, map[string]string) {
	s.mu.RLock()
	current := make(map[string]any, len(rules))
	for field := range rules {
		current[field] = s.values[field]
	}
	s.mu.RUnlock()

	next := make(map[string]string, len(rules))
	for field, rule := range rules {
		if rule == nil {
			continue
		}
		if msg := rule(current[field]); msg != "" {
			next[field] = msg
		}
	}

	s.mu.Lock()
	s.errors = next
	s.mu.Unlock()

	out := make(map[string]string, len(next))
	maps.Copy(out, next)
	return len(next) == 0, out
}

// PasswordStrength scores the current password value. The score is cached
// until the password changes.
func (s *State) PasswordStrength() int {
	s.mu.RLock()
	p := passwordString(s.values[PasswordField])
	if s.strength.valid && s.strength.input == p {
		score := s.strength.score
		s.mu.RUnlock()
		return score
	}
	s.mu.RUnlock()

	score := scorePassword(p)

	s.mu.Lock()
	s.strength = strengthCache{valid: true, input: p, score: score}
	s.mu.Unlock()
	return score
}

func passwordString(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	default:
		return fmt.Sprint(p)
	}
}

// SetValues replaces every value at once. Errors and touched flags are kept.
func (s *State) SetValues(values map[string]any) {
	next := make(map[string]any, len(values))
	maps.Copy(next, values)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = next
}

// SetErrors replaces the error map. Empty messages are dropped.
func (s *State) SetErrors(errs map[string]string) {
	next := make(map[string]string, len(errs))
	for k, v := range errs {
		if v != "" {
			next[k] = v
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = next
}

// Value returns the value of field and whether it is set.
func (s *State) Value(field string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[field]
	return v, ok
}

// String returns the value of field formatted as a string. Unset fields
// return "".
func (s *State) String(field string) string {
	v, _ := s.Value(field)
	return passwordString(v)
}

// Values returns a copy of all values.
func (s *State) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	maps.Copy(out, s.values)
	return out
}

// Error returns the current error message for field, or "".
func (s *State) Error(field string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors[field]
}

// Errors returns a copy of the error map.
func (s *State) Errors() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.errors))
	maps.Copy(out, s.errors)
	return out
}

// Touched reports whether field has lost focus at least once.
func (s *State) Touched(field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[field]
}

// TouchedFields returns the touched field names in sorted order.
func (s *State) TouchedFields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.touched))
	for k, ok := range s.touched {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of s, including the strength cache.
func (s *State) Clone() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := &State{
		values:   make(map[string]any, len(s.values)),
		errors:   make(map[string]string, len(s.errors)),
		touched:  make(map[string]bool, len(s.touched)),
		strength: s.strength,
	}
	maps.Copy(c.values, s.values)
	maps.Copy(c.errors, s.errors)
	maps.Copy(c.touched, s.touched)
	return c
}

// Change is HandleChange as a pure transformation: it returns a modified
// clone and leaves s untouched.
func Change(s *State, field string, value any) *State {
	c := s.Clone()
	c.HandleChange(field, value)
	return c
}

// Blur is HandleBlur as a pure transformation.
func Blur(s *State, field string) *State {
	c := s.Clone()
	c.HandleBlur(field)
	return c
}

// Snapshot is a point-in-time copy of a State suitable for reporting.
type Snapshot struct {
	Values           map[string]any    `json:"values"`
	Errors           map[string]string `json:"errors"`
	Touched          []string          `json:"touched"`
	PasswordStrength int               `json:"password_strength"`
}

// Valid reports whether the snapshot carries no errors.
func (s Snapshot) Valid() bool {
	return len(s.Errors) == 0
}

// Snapshot captures the current state under a single read lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Values:  make(map[string]any, len(s.values)),
		Errors:  make(map[string]string, len(s.errors)),
		Touched: make([]string, 0, len(s.touched)),
	}
	maps.Copy(snap.Values, s.values)
	maps.Copy(snap.Errors, s.errors)
	for k, ok := range s.touched {
		if ok {
			snap.Touched = append(snap.Touched, k)
		}
	}
	sort.Strings(snap.Touched)

	p := passwordString(s.values[PasswordField])
	if s.strength.valid && s.strength.input == p {
		snap.PasswordStrength = s.strength.score
	} else {
		snap.PasswordStrength = scorePassword(p)
	}
	return snap
}
