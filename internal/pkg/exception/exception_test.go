package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotFound = ApplicationError{Message: "not found", StatusCode: http.StatusNotFound}

func TestApplicationError_Error(t *testing.T) {
	assert.Equal(t, "not found", errNotFound.Error())

	withCause := ApplicationError{Message: "upstream failed", Cause: errors.New("eof")}
	assert.Equal(t, "upstream failed: eof", withCause.Error())
}

func TestApplicationError_Is(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", errNotFound)

	assert.ErrorIs(t, wrapped, errNotFound)
	assert.NotErrorIs(t, wrapped, ApplicationError{Message: "other"})
	assert.NotErrorIs(t, errors.New("not found"), errNotFound)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("wrap: %w", errNotFound)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(ApplicationError{Message: "no status"}))
}
