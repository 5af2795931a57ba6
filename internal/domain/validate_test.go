package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validTitle       = "Write plan"
	validDescription = "Draft the design document"
)

func TestValidateInput_Title(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"empty", "", true},
		{"three chars", "abc", true},
		{"four chars", "abcd", false},
		{"thirty chars", strings.Repeat("a", 30), false},
		{"thirty one chars", strings.Repeat("a", 31), true},
		{"multibyte counted as characters", "ação", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(TaskInput{Title: tt.title, Description: validDescription, Step: StepTodo})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "title", vErr.Field)
			assert.Equal(t, "Title must be between 4 and 30 characters!", vErr.Error())
		})
	}
}

func TestValidateInput_Description(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"seven chars", "1234567", true},
		{"eight chars", "12345678", false},
		{"one fifty chars", strings.Repeat("d", 150), false},
		{"one fifty one chars", strings.Repeat("d", 151), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(TaskInput{Title: validTitle, Description: tt.description, Step: StepTodo})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "description", vErr.Field)
			assert.Equal(t, "Description must be between 8 and 150 characters!", vErr.Error())
		})
	}
}

func TestValidateInput_TitleCheckedFirst(t *testing.T) {
	err := ValidateInput(TaskInput{Title: "ab", Description: "short", Step: StepTodo})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "title", vErr.Field)
	assert.NotContains(t, vErr.Message, "Description")
}

func TestValidateInput_Step(t *testing.T) {
	err := ValidateInput(TaskInput{Title: validTitle, Description: validDescription, Step: "Blocked"})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "step", vErr.Field)
}
