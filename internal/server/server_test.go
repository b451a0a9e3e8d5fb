package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/envelope"
	"github.com/Hemang2208/vedicvogue-sync/internal/models"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	codec := envelope.NewCodec(envelope.NewAESCipher("server-test-key"))
	srv := New(codec, "server-test-secret", time.Hour, log)
	if err := srv.SeedUser(models.UserProfile{ID: "u1", Name: "Asha"}, "password-123"); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return srv, srv.Router()
}

func TestAuthRejectsMissingToken(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/get/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Error bodies are plaintext, never enveloped.
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body was not plain JSON: %v", err)
	}
	if body["message"] == "" {
		t.Fatalf("expected a message field, got %s", w.Body.String())
	}
}

func TestAuthRejectsForeignUserPath(t *testing.T) {
	srv, router := newTestServer(t)

	token, err := srv.IssueToken("u1")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/get/someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	_, router := newTestServer(t)

	other := New(envelope.NewCodec(envelope.NewAESCipher("k")), "different-secret", time.Hour, nil)
	token, err := other.IssueToken("u1")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/get/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSuccessResponsesAreSealed(t *testing.T) {
	srv, router := newTestServer(t)

	token, err := srv.IssueToken("u1")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/get/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env envelope.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil || env.Data == "" {
		t.Fatalf("expected a sealed envelope body, got %s", w.Body.String())
	}
}

func TestRejectsUnsealedRequestBody(t *testing.T) {
	srv, router := newTestServer(t)

	token, err := srv.IssueToken("u1")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/users/update/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing envelope, got %d", w.Code)
	}
}
