package requests_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/requests"
)

func contextWithAuthHeader(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestGetTokenFromBearer(t *testing.T) {
	token, ok := requests.GetTokenFromBearer(contextWithAuthHeader("Bearer abc.def.ghi"))
	if !ok || token != "abc.def.ghi" {
		t.Fatalf("expected token, got %q ok=%v", token, ok)
	}

	if _, ok := requests.GetTokenFromBearer(contextWithAuthHeader("")); ok {
		t.Fatal("absent header must not yield a token")
	}

	if _, ok := requests.GetTokenFromBearer(contextWithAuthHeader("Basic dXNlcjpwYXNz")); ok {
		t.Fatal("non-bearer scheme must not yield a token")
	}

	if _, ok := requests.GetTokenFromBearer(contextWithAuthHeader("Bearerabc")); ok {
		t.Fatal("malformed prefix must not yield a token")
	}

	if _, ok := requests.GetTokenFromBearer(contextWithAuthHeader("Bearer ")); ok {
		t.Fatal("empty token must not yield a token")
	}

	if _, ok := requests.GetTokenFromBearer(contextWithAuthHeader("Bearer    ")); ok {
		t.Fatal("whitespace token must not yield a token")
	}
}
