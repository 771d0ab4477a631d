package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/krkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "rrn",
			Message: "is invalid",
		})
		assert.Equal(t, "validation failed: rrn: is invalid", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "rrn", Message: "is invalid"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "too short"})

		assert.Equal(t, "validation failed: rrn: is invalid; phone: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "rrn", Message: "first", TranslationKey: "a"})
	errs.Add(validator.ValidationError{Field: "phone", Message: "second", TranslationKey: "b"})
	errs.Add(validator.ValidationError{Field: "rrn", Message: "third", TranslationKey: "c"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("rrn"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"first", "third"}, errs.Get("rrn"))
	assert.Nil(t, errs.Get("email"))
	assert.Equal(t, []string{"rrn", "phone"}, errs.Fields())

	rrnErrs := errs.GetErrors("rrn")
	require.Len(t, rrnErrs, 2)
	assert.Equal(t, "a", rrnErrs[0].TranslationKey)
	assert.Equal(t, "c", rrnErrs[1].TranslationKey)
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "failed"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "b", verrs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "rrn", Message: "bad"}}
		err := fmt.Errorf("signup: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("rrn"))
	})
}
