package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("Listing with ID %s not found!", "abc")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindUpdateFailed, KindOf(UpdateFailed("nope")))
	assert.Equal(t, KindDeleteFailed, KindOf(DeleteFailed("nope")))
	assert.Equal(t, KindAPIError, KindOf(errors.New("untyped")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("find listing: %w", NotFound("Listing not found!"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSentinels(t *testing.T) {
	assert.ErrorIs(t, NotFound("gone"), ErrNotFound)
	assert.ErrorIs(t, Unauthorized("nope"), ErrUnauthorized)
	assert.NotErrorIs(t, NotFound("gone"), ErrUnauthorized)

	wrapped := fmt.Errorf("delete review: %w", DeleteFailed("Failed to delete review!"))
	assert.ErrorIs(t, wrapped, ErrDeleteFailed)
}

func TestGeneric_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Generic("Payment initiation failed!", cause)

	assert.Equal(t, KindAPIError, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Payment initiation failed!: connection refused", err.Error())
}

func TestValidation_Details(t *testing.T) {
	details := map[string]string{"PhoneNumber": "Phone number must be in format +254XXXXXXXXX"}
	err := Validation("Validation failed", details)

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, details, DetailsOf(err))
	assert.Nil(t, DetailsOf(errors.New("untyped")))
}
