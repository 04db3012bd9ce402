package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

func TestLoginForm_Validation(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   ValidationErrors
	}{
		{"empty", map[string]string{}, ValidationErrors{"email": MsgRequired, "password": MsgRequired}},
		{"bad email", map[string]string{"email": "abc", "password": "x"}, ValidationErrors{"email": MsgInvalidEmail}},
		{"no tld", map[string]string{"email": "a@b", "password": "x"}, ValidationErrors{"email": MsgInvalidEmail}},
		{"short tld", map[string]string{"email": "a@b.c", "password": "x"}, ValidationErrors{"email": MsgInvalidEmail}},
		{"missing password", map[string]string{"email": "a@b.co"}, ValidationErrors{"password": MsgRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoginForm().Validate(tt.values)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.want, verrs)
		})
	}
}

func TestLoginForm_EmailCaseInsensitive(t *testing.T) {
	got, err := NewLoginForm().Validate(map[string]string{"email": "Ana.Perez+x@Example.COM", "password": "p"})
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{Email: "Ana.Perez+x@Example.COM", Password: "p"}, got)
}

func TestRegisterForm_Validation(t *testing.T) {
	valid := map[string]string{"nombre": "Ana", "username": "ana", "email": "ana@example.com", "password": "secret"}

	t.Run("valid", func(t *testing.T) {
		got, err := NewRegisterForm().Validate(valid)
		require.NoError(t, err)
		assert.Equal(t, models.Registration{Nombre: "Ana", Username: "ana", Email: "ana@example.com", Password: "secret"}, got)
	})

	t.Run("short password", func(t *testing.T) {
		values := map[string]string{"nombre": "Ana", "username": "ana", "email": "ana@example.com", "password": "12345"}
		_, err := NewRegisterForm().Validate(values)
		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, ValidationErrors{"password": MsgPasswordMin}, verrs)
	})

	t.Run("all empty", func(t *testing.T) {
		_, err := NewRegisterForm().Validate(nil)
		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, ValidationErrors{
			"nombre": MsgRequired, "username": MsgRequired, "email": MsgRequired, "password": MsgRequired,
		}, verrs)
	})
}

func TestForm_SubmitSkipsInvalid(t *testing.T) {
	called := false
	err := NewLoginForm().Submit(context.Background(), map[string]string{"email": ""}, func(context.Context, models.Credentials) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called, "no submission for invalid input")
}

func TestForm_SubmitPassesResultAndError(t *testing.T) {
	f := NewLoginForm()
	boom := errors.New("boom")

	var got models.Credentials
	err := f.Submit(context.Background(), map[string]string{"email": "a@b.co", "password": "p"}, func(_ context.Context, c models.Credentials) error {
		got = c
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "a@b.co", got.Email)

	err = f.Submit(context.Background(), map[string]string{"email": "a@b.co", "password": "p"}, func(context.Context, models.Credentials) error { return nil })
	require.NoError(t, err, "gate released after failure")
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	f := NewLoginForm()
	values := map[string]string{"email": "a@b.co", "password": "p"}

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- f.Submit(context.Background(), values, func(context.Context, models.Credentials) error {
			close(entered)
			<-release
			return nil
		})
	}()

	<-entered

	err := f.Submit(context.Background(), values, func(context.Context, models.Credentials) error {
		t.Error("second submission must not run")
		return nil
	})
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)

	require.NoError(t, f.Submit(context.Background(), values, func(context.Context, models.Credentials) error { return nil }))
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{"password": MsgRequired, "email": MsgInvalidEmail}
	assert.Equal(t, "invalid input: email: Invalid email address, password: Required", err.Error())
}
