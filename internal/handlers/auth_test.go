package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/service"
)

func TestLogin(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		auth     *mockAuth
		wantCode int
		wantErr  string
		wantTok  string
	}{
		{
			name:     "success",
			body:     `{"username":"admin","password":"password"}`,
			auth:     &mockAuth{admin: models.Admin{ID: 1, Username: "admin"}, token: "tok123"},
			wantCode: http.StatusOK,
			wantTok:  "tok123",
		},
		{
			name:     "bad credentials",
			body:     `{"username":"admin","password":"nope"}`,
			auth:     &mockAuth{verifyErr: fmt.Errorf("%w: password mismatch", service.ErrInvalidCredentials)},
			wantCode: http.StatusUnauthorized,
			wantErr:  "Invalid credentials",
		},
		{
			name:     "store failure",
			body:     `{"username":"admin","password":"password"}`,
			auth:     &mockAuth{verifyErr: errors.New("disk I/O error")},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Internal server error",
		},
		{
			name:     "token failure",
			body:     `{"username":"admin","password":"password"}`,
			auth:     &mockAuth{admin: models.Admin{Username: "admin"}, issueErr: errors.New("sign")},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Internal server error",
		},
		{
			name:     "malformed body",
			body:     `{"username":1}`,
			auth:     &mockAuth{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth}, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			var out map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if tc.wantErr != "" && out["error"] != tc.wantErr {
				t.Fatalf("error=%q want %q", out["error"], tc.wantErr)
			}
			if tc.wantTok != "" {
				if out["token"] != tc.wantTok || out["username"] != "admin" {
					t.Fatalf("unexpected body: %v", out)
				}
			}
		})
	}
}

func TestLogin_PassesCredentialsThrough(t *testing.T) {
	auth := &mockAuth{admin: models.Admin{Username: "admin"}, token: "t"}
	r := newTestRouter(&service.Service{Authorization: auth}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if auth.lastUsername != "admin" || auth.lastPassword != "s3cret" {
		t.Fatalf("Verify got %q/%q", auth.lastUsername, auth.lastPassword)
	}
}

func TestRoot(t *testing.T) {
	r := newTestRouter(&service.Service{}, nil)

	for _, path := range []string{"/", "/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, w.Code)
		}
		var out map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out["status"] != "ok" || out["service"] == "" || out["timestamp"] == "" {
			t.Fatalf("unexpected body: %v", out)
		}
	}
}
