// Package forms holds the client-side form model shared by the login and
// register screens: field descriptors, validation and the submit gate.
package forms

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// ErrSubmitInFlight is returned when a form is submitted while its previous
// submission has not finished.
var ErrSubmitInFlight = errors.New("submission already in progress")

// Field describes one input of a form.
type Field struct {
	Name   string
	Label  string
	Secret bool
}

// Form is a parameterized form producing a T from raw field values.
// At most one submission of a Form runs at a time.
type Form[T any] struct {
	Title  string
	Fields []Field

	bind     func(values map[string]string) T
	inFlight atomic.Bool
}

// Validate binds values into T and validates it. Invalid input yields
// ValidationErrors.
func (f *Form[T]) Validate(values map[string]string) (T, error) {
	v := f.bind(values)
	if err := ValidateStruct(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Submit validates values and runs fn with the result. fn is never called
// for invalid input, or while another Submit of the same form is running.
func (f *Form[T]) Submit(ctx context.Context, values map[string]string, fn func(context.Context, T) error) error {
	v, err := f.Validate(values)
	if err != nil {
		return err
	}
	if !f.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.inFlight.Store(false)

	return fn(ctx, v)
}

func NewLoginForm() *Form[models.Credentials] {
	return &Form[models.Credentials]{
		Title: "Login",
		Fields: []Field{
			{Name: "email", Label: "Email"},
			{Name: "password", Label: "Password", Secret: true},
		},
		bind: func(v map[string]string) models.Credentials {
			return models.Credentials{Email: v["email"], Password: v["password"]}
		},
	}
}

func NewRegisterForm() *Form[models.Registration] {
	return &Form[models.Registration]{
		Title: "Register",
		Fields: []Field{
			{Name: "nombre", Label: "Name"},
			{Name: "username", Label: "Username"},
			{Name: "email", Label: "Email"},
			{Name: "password", Label: "Password", Secret: true},
		},
		bind: func(v map[string]string) models.Registration {
			return models.Registration{
				Nombre:   v["nombre"],
				Username: v["username"],
				Email:    v["email"],
				Password: v["password"],
			}
		},
	}
}
