package outcome_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/newslens/core/outcome"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "unauthenticated", outcome.New(outcome.Unauthenticated, nil).Error())
		assert.Equal(t, "bad_request: missing email", outcome.New(outcome.BadRequest, errors.New("missing email")).Error())
	})

	t.Run("is matches category sentinels", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("lock busy")
		err := fmt.Errorf("guard: %w", outcome.New(outcome.InternalFailure, cause))

		assert.ErrorIs(t, err, outcome.ErrInternalFailure)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, outcome.ErrUnauthenticated)
	})

	t.Run("category of", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, outcome.UserNotFound, outcome.CategoryOf(outcome.ErrUserNotFound))
		assert.Equal(t, outcome.Unknown, outcome.CategoryOf(errors.New("plain")))
		assert.Equal(t, outcome.Unknown, outcome.CategoryOf(nil))
	})
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_already_exists", outcome.UserAlreadyExists.String())
	assert.Equal(t, "unknown", outcome.Category(99).String())
	assert.Len(t, outcome.Categories(), 9)
}
