package formdef

import (
	"github.com/thoreinstein/formkit/internal/rules"
)

// Names of the builtin forms.
const (
	SignUpForm         = "signup"
	SignInForm         = "signin"
	ForgotPasswordForm = "forgot-password"
)

// Builtin returns fresh copies of the builtin definitions. Their rules
// behave like rules.SignUp, rules.SignIn and rules.ForgotPassword.
func Builtin() []*Definition {
	return []*Definition{
		{
			Name:  SignUpForm,
			Title: "Create your account",
			Fields: []FieldDef{
				{Name: "name", Label: "Name", Rules: []RuleDef{{MinLength: 3, Message: rules.MsgNameTooShort}}},
				{Name: "email", Label: "Email address", Kind: KindEmail, Rules: []RuleDef{{Contains: "@", Message: rules.MsgInvalidEmail}}},
				{Name: "password", Label: "Password", Kind: KindPassword, Rules: []RuleDef{{MinLength: 6, Message: rules.MsgPasswordTooShort}}},
			},
		},
		{
			Name:  SignInForm,
			Title: "Welcome Back!",
			Fields: []FieldDef{
				{Name: "email", Label: "Email address", Kind: KindEmail, Rules: []RuleDef{{Contains: "@", Message: rules.MsgInvalidEmail}}},
				{Name: "password", Label: "Password", Kind: KindPassword, Rules: []RuleDef{{Required: true, Message: rules.MsgPasswordRequired}}},
			},
		},
		{
			Name:  ForgotPasswordForm,
			Title: "Reset your password",
			Fields: []FieldDef{
				{Name: "email", Label: "Email address", Kind: KindEmail, Rules: []RuleDef{{Contains: "@", Message: rules.MsgEnterValidEmail}}},
			},
		},
	}
}

// Scaffold returns a starter definition for a new form called name.
func Scaffold(name string) *Definition {
	return &Definition{
		Name:  name,
		Title: "New form",
		Fields: []FieldDef{
			{
				Name:  "email",
				Label: "Email address",
				Kind:  KindEmail,
				Rules: []RuleDef{{Tag: "required,email", Message: "Enter a valid email"}},
			},
			{
				Name:  "password",
				Label: "Password",
				Kind:  KindPassword,
				Rules: []RuleDef{
					{MinLength: 8, Message: "Password too short (min 8 chars)"},
					{MinStrength: 3, Message: "Password is too weak"},
				},
			},
		},
	}
}
