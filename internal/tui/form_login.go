package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// loginForm holds the email/password inputs of the login screen.
type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return loginForm{inputs: []textinput.Model{email, password}}
}

func (f *loginForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *loginForm) email() string    { return f.inputs[0].Value() }
func (f *loginForm) password() string { return f.inputs[1].Value() }

func (f *loginForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// registerForm holds the inputs of the registration screen. Role toggles
// between user and admin with tab on the last field.
type registerForm struct {
	inputs []textinput.Model
	focus  int
	admin  bool
}

func newRegisterForm() registerForm {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return registerForm{inputs: []textinput.Model{name, email, password}}
}

func (f *registerForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *registerForm) name() string     { return f.inputs[0].Value() }
func (f *registerForm) email() string    { return f.inputs[1].Value() }
func (f *registerForm) password() string { return f.inputs[2].Value() }

func (f *registerForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.admin = false
	f.inputs[0].Focus()
}
