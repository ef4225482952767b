package rules

import (
	"github.com/thoreinstein/formkit/internal/form"
)

// Messages used by the preset rule sets.
const (
	MsgNameTooShort     = "Name too short"
	MsgInvalidEmail     = "Invalid email"
	MsgPasswordTooShort = "Password too short (min 6 chars)"
	MsgPasswordRequired = "Password is required"
	MsgEnterValidEmail  = "Enter a valid email"
)

// Names need more than two characters; passwords at least six.
const (
	signUpNameMin     = 3
	signUpPasswordMin = 6
)

// Email is the loose email check used throughout the app: the value must
// contain an "@".
func Email(msg string) form.Rule {
	return Contains("@", msg)
}

// SignUp returns the rules checked before creating an account.
func SignUp() form.Rules {
	return form.Rules{
		"name":     MinLength(signUpNameMin, MsgNameTooShort),
		"email":    Email(MsgInvalidEmail),
		"password": MinLength(signUpPasswordMin, MsgPasswordTooShort),
	}
}

// SignIn returns the rules checked before signing in.
func SignIn() form.Rules {
	return form.Rules{
		"email":    Email(MsgInvalidEmail),
		"password": Required(MsgPasswordRequired),
	}
}

// ForgotPassword returns the rules checked before sending a reset link.
func ForgotPassword() form.Rules {
	return form.Rules{
		"email": Email(MsgEnterValidEmail),
	}
}
