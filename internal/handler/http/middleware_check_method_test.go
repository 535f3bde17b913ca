package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_UnsupportedMethodIs404(t *testing.T) {
	router := newTestRouter(newTestServices())

	// "/" only registers GET; DELETE must read as 404, not 405
	w := doRequest(t, router, http.MethodDelete, "/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckHTTPMethod_RegisterRouteRejectsGet(t *testing.T) {
	router := newTestRouter(newTestServices())

	w := doRequest(t, router, http.MethodGet, "/api/user/register", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckHTTPMethod_UnknownRouteIs404(t *testing.T) {
	router := newTestRouter(newTestServices())

	w := doRequest(t, router, http.MethodGet, "/no/such/route", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
