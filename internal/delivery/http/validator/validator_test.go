package validator

import (
	"testing"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationFor(t *testing.T, err error, field string) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	for _, violation := range appErr.Fields() {
		if violation.Field == field {
			return violation.Message
		}
	}
	t.Fatalf("no violation recorded for field %q", field)

	return ""
}

func TestValidate_SignUpInput(t *testing.T) {
	v := New()

	t.Run("valid input passes", func(t *testing.T) {
		err := v.Validate(&usecase.SignUpInput{
			Username:        "Amina",
			Email:           "amina@example.com",
			Password:        "secret-pass",
			ConfirmPassword: "secret-pass",
		})

		assert.NoError(t, err)
	})

	t.Run("failures are itemized per field", func(t *testing.T) {
		err := v.Validate(&usecase.SignUpInput{
			Username:        "",
			Email:           "not-an-email",
			Password:        "short",
			ConfirmPassword: "different",
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Len(t, appErr.Fields(), 4)

		assert.Equal(t, "is required", violationFor(t, err, "username"))
		assert.Equal(t, "must be a valid email address", violationFor(t, err, "email"))
		assert.Equal(t, "must be at least 6 characters", violationFor(t, err, "password"))
		assert.Equal(t, "must match password", violationFor(t, err, "confirmPassword"))
	})
}

func TestValidate_ListProductsInput(t *testing.T) {
	v := New()

	t.Run("accepts asc and desc order", func(t *testing.T) {
		assert.NoError(t, v.Validate(&usecase.ListProductsInput{Order: "asc"}))
		assert.NoError(t, v.Validate(&usecase.ListProductsInput{Order: "desc"}))
		assert.NoError(t, v.Validate(&usecase.ListProductsInput{}))
	})

	t.Run("rejects any other order", func(t *testing.T) {
		err := v.Validate(&usecase.ListProductsInput{Order: "sideways"})

		require.Error(t, err)
		assert.Equal(t, "must be one of: asc desc", violationFor(t, err, "order"))
	})

	t.Run("caps the page size", func(t *testing.T) {
		err := v.Validate(&usecase.ListProductsInput{Limit: 500})

		require.Error(t, err)
		assert.Equal(t, "must be at most 100", violationFor(t, err, "limit"))
	})
}
