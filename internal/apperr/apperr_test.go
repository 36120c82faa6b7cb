package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("start must be before end")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("session not found")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("Trainer has a conflicting session")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(LimitExceeded("payment exceeds invoice balance")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestHTTPStatusWrapped(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", Conflict("Class is full"))
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))
	assert.True(t, IsKind(wrapped, KindConflict))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestMessage(t *testing.T) {
	err := Validationf("capacity must be positive, got %d", -1)
	assert.Equal(t, "capacity must be positive, got -1", err.Error())
}
