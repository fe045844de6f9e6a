// internal/utils/validator_test.go
package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title string  `validate:"required,min=3,max=255"`
	Email string  `validate:"omitempty,email"`
	Price float64 `validate:"gte=0"`
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Title: "ab", Email: "not-an-email", Price: -1})
	assert.Error(t, err)

	fieldErrors := GetValidationErrors(err)
	assert.Len(t, fieldErrors, 3)

	byField := make(map[string]ValidationError)
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe
	}

	assert.Equal(t, "min", byField["title"].Tag)
	assert.Equal(t, "Title must be at least 3", byField["title"].Message)
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Price must be at least 0", byField["price"].Message)
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(errors.New("boom")))
}

func TestValidationMessages(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Title: ""})
	assert.Error(t, err)

	msg := ValidationMessages(err)
	assert.Equal(t, "Title is required", msg)
	// The raw validator dump never reaches callers.
	assert.NotContains(t, msg, "Key:")
}

func TestValidationMessagesPassthrough(t *testing.T) {
	assert.Equal(t, "boom", ValidationMessages(errors.New("boom")))
}
