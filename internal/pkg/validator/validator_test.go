//go:build unit

package validator_test

import (
	"errors"
	"testing"

	"kost-booking/internal/pkg/validator"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"fullName" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"max=5"`
}

func TestStruct(t *testing.T) {
	t.Run("valid struct has no errors", func(t *testing.T) {
		assert.Empty(t, validator.Struct(sample{Name: "a", Email: "a@b.co"}))
	})

	t.Run("errors use json names in field order", func(t *testing.T) {
		got := validator.Struct(sample{Email: "nope", Note: "too long"})
		require.Len(t, got, 3)
		assert.Equal(t, validator.FieldError{Field: "fullName", Code: "required", Message: "fullName is required"}, got[0])
		assert.Equal(t, "email", got[1].Field)
		assert.Equal(t, "email", got[1].Code)
		assert.Equal(t, "note", got[2].Field)
		assert.Equal(t, "note must be at most 5 characters", got[2].Message)
	})
}

type bindSample struct {
	PropertyID string `json:"propertyId" binding:"required"`
}

func TestFromError(t *testing.T) {
	t.Run("nil and non-validation errors yield nothing", func(t *testing.T) {
		assert.Nil(t, validator.FromError(nil))
		assert.Nil(t, validator.FromError(errors.New("unexpected EOF")))
	})

	t.Run("binding errors report json names", func(t *testing.T) {
		validator.UseJSONNamesInBinding()

		got := validator.FromError(binding.Validator.ValidateStruct(bindSample{}))
		require.Len(t, got, 1)
		assert.Equal(t, validator.FieldError{Field: "propertyId", Code: "required", Message: "propertyId is required"}, got[0])
	})
}
