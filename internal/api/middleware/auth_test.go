package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func callWithToken(t *testing.T, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	if token != "" {
		req.Header.Set(AdminTokenHeader, token)
	}
	rec := httptest.NewRecorder()

	Auth("correct-token")(next).ServeHTTP(rec, req)
	return rec, nextCalled
}

func TestAuth_ValidToken(t *testing.T) {
	rec, nextCalled := callWithToken(t, "correct-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestAuth_MissingToken(t *testing.T) {
	rec, nextCalled := callWithToken(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuth_WrongToken(t *testing.T) {
	rec, nextCalled := callWithToken(t, "wrong-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}
