package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	validation := fmt.Errorf("create order: %w", ValidationError{Field: "line_items", Message: "items cannot be empty"})
	assert.ErrorIs(t, validation, ErrValidation)
	assert.Equal(t, "create order: line_items: items cannot be empty", validation.Error())

	conflict := fmt.Errorf("update order 3: %w", StateConflictError{Reason: MsgCannotChangeAccepted})
	assert.ErrorIs(t, conflict, ErrStateConflict)
	var sc StateConflictError
	assert.True(t, errors.As(conflict, &sc))
	assert.Equal(t, MsgCannotChangeAccepted, sc.Reason)

	cause := errors.New("timeout")
	dep := DependencyError{Dependency: "object storage", Err: cause}
	assert.ErrorIs(t, dep, ErrDependency)
	assert.ErrorIs(t, dep, cause)

	assert.ErrorIs(t, NotFound("order", 9), ErrNotFound)
	assert.Equal(t, "order 9: not found", NotFound("order", 9).Error())
}
