// Package form is a small state container for input forms.
//
// A [State] holds the current value of every field, the error message of
// each field that failed the last validation pass, and which fields have
// lost focus. Validation is driven by caller-supplied [Rule] functions and
// is always synchronous.
//
//	s := form.New(map[string]any{"email": "", "password": ""})
//	s.HandleChange("email", "a@b.com")
//	s.HandleBlur("email")
//	ok, errs := s.Validate(form.Rules{
//		"email": func(v any) string {
//			if !strings.Contains(fmt.Sprint(v), "@") {
//				return "Invalid email"
//			}
//			return ""
//		},
//	})
//
// Changing a field clears its pending error without re-checking it; the
// next Validate call decides again.
package form
