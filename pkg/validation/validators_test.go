package validation_test

import (
	"errors"
	"testing"

	"go-swipe-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type swipeInput struct {
	JobOfferID   string `validate:"required_without=TargetUserID,excluded_with=TargetUserID,omitempty,uuid"`
	TargetUserID string `validate:"omitempty,uuid"`
	SwipeType    string `validate:"swipe_type"`
}

type messageInput struct {
	Content string `validate:"trimmed_required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestSwipeType(t *testing.T) {
	v := newValidator()
	offer := "0f8fad5b-d9cb-469f-a165-70867728950e"

	assert.NoError(t, v.Struct(swipeInput{JobOfferID: offer, SwipeType: "LIKE"}))
	assert.NoError(t, v.Struct(swipeInput{JobOfferID: offer, SwipeType: "pass"}))
	assert.Error(t, v.Struct(swipeInput{JobOfferID: offer, SwipeType: "SUPERLIKE"}))
}

func TestSwipeTargetExactlyOne(t *testing.T) {
	v := newValidator()
	id := "0f8fad5b-d9cb-469f-a165-70867728950e"

	assert.Error(t, v.Struct(swipeInput{SwipeType: "LIKE"}))
	assert.Error(t, v.Struct(swipeInput{JobOfferID: id, TargetUserID: id, SwipeType: "LIKE"}))
	assert.NoError(t, v.Struct(swipeInput{TargetUserID: id, SwipeType: "LIKE"}))
}

func TestTrimmedRequired(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(messageInput{Content: " hi "}))
	assert.Error(t, v.Struct(messageInput{Content: " \n\t "}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	msgs := validation.FormatValidationErrors(v.Struct(swipeInput{JobOfferID: "nope", SwipeType: "MAYBE"}))
	assert.Contains(t, msgs, "Job offer: must be a valid id")
	assert.Contains(t, msgs, "Swipe type: must be LIKE or PASS")

	assert.Equal(t, []string{"plain"}, validation.FormatValidationErrors(errors.New("plain")))
}
