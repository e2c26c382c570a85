package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registrationInput struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=admin farmer customer"`
	Email    string `validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   registrationInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: registrationInput{Username: "caleb", Password: "long-enough", Role: "farmer"},
		},
		{
			name:  "optional email accepted when valid",
			input: registrationInput{Username: "caleb", Password: "long-enough", Role: "customer", Email: "caleb@example.com"},
		},
		{
			name:    "short username",
			input:   registrationInput{Username: "ab", Password: "long-enough", Role: "farmer"},
			wantErr: "Username",
		},
		{
			name:    "short password",
			input:   registrationInput{Username: "caleb", Password: "short", Role: "farmer"},
			wantErr: "Password",
		},
		{
			name:    "unknown role",
			input:   registrationInput{Username: "caleb", Password: "long-enough", Role: "vendor"},
			wantErr: "Role",
		},
		{
			name:    "malformed email",
			input:   registrationInput{Username: "caleb", Password: "long-enough", Role: "customer", Email: "not-an-email"},
			wantErr: "Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStructListsAllFailures(t *testing.T) {
	err := Struct(registrationInput{})
	assert.ErrorContains(t, err, "Username")
	assert.ErrorContains(t, err, "Password")
	assert.ErrorContains(t, err, "Role")
}
