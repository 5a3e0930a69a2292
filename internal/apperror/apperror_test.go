package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone", nil)))
	assert.Equal(t, KindConflict, KindOf(Conflict("busy", nil)))
	assert.Equal(t, KindPersistence, KindOf(errors.New("plain error")))

	// Kind survives wrapping
	wrapped := fmt.Errorf("outer: %w", AccessDenied("no", nil))
	assert.Equal(t, KindAccessDenied, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:        http.StatusBadRequest,
		KindInvalidCredential: http.StatusUnauthorized,
		KindAccessDenied:      http.StatusForbidden,
		KindNotFound:          http.StatusNotFound,
		KindConflict:          http.StatusConflict,
		KindPersistence:       http.StatusInternalServerError,
	}

	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus(), "kind %s", kind)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := NotFound("user missing", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "user missing")
}
