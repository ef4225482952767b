// Package password scores password strength on a 0-5 scale and derives the
// label and meter tone shown next to a password field.
//
// The score is five independent, additive checks: minimum length (6),
// extended length (10), an uppercase letter, a digit and a symbol. An empty
// password always scores 0.
//
//	a := password.Assess("StrongP@ssw0rd")
//	// a.Score == 5, a.Label == "Strong", a.Tone == password.ToneGreen
package password
