package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/mocks"
	"github.com/elifesajna/self-employ-final/internal/workflows"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func newAdminAuthRouter(remote *mocks.MockRemoteDataService) *gin.Engine {
	auth := workflows.NewAdminAuth(remote, mocks.NewMockSessionStore())
	h := NewAdminAuthHandlers(auth, mocks.NewMockTokenService())

	r := gin.New()
	r.POST("/auth/admin/login", h.Login)
	r.POST("/auth/admin/logout", h.Logout)
	return r
}

func TestAdminAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockRemoteDataService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful login returns token",
			body: AdminLoginRequest{Username: "admin", Password: "secret"},
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.VerifyAdminLoginFunc = func(ctx context.Context, username, password string) ([]domain.AdminRow, error) {
					return []domain.AdminRow{{ID: "a1", Username: "admin", Role: domain.RoleAdmin}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid credentials are 401",
			body:           AdminLoginRequest{Username: "admin", Password: "wrong"},
			setupMocks:     func(remote *mocks.MockRemoteDataService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid username or password",
		},
		{
			name:           "missing fields are 400",
			body:           map[string]string{"username": "admin"},
			setupMocks:     func(remote *mocks.MockRemoteDataService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewMockRemoteDataService()
			tt.setupMocks(remote)
			r := newAdminAuthRouter(remote)

			w := postJSON(t, r, "/auth/admin/login", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			body := decodeBody(t, w)
			if tt.expectedStatus == http.StatusOK {
				data, ok := body["data"].(map[string]interface{})
				if !ok {
					t.Fatalf("expected data object, got %v", body)
				}
				if data["access_token"] == "" {
					t.Error("expected access token in response")
				}
				if data["token_type"] != "Bearer" {
					t.Errorf("expected Bearer token type, got %v", data["token_type"])
				}
			} else if tt.expectedError != "" && body["error"] != tt.expectedError {
				t.Errorf("expected error %q, got %v", tt.expectedError, body["error"])
			}
		})
	}
}

func TestAdminAuthHandlers_Logout(t *testing.T) {
	remote := mocks.NewMockRemoteDataService()
	remote.VerifyAdminLoginFunc = func(ctx context.Context, username, password string) ([]domain.AdminRow, error) {
		return []domain.AdminRow{{ID: "a1", Username: "admin", Role: domain.RoleAdmin}}, nil
	}
	r := newAdminAuthRouter(remote)

	if w := postJSON(t, r, "/auth/admin/login", AdminLoginRequest{Username: "admin", Password: "secret"}); w.Code != http.StatusOK {
		t.Fatalf("login failed: %s", w.Body.String())
	}

	w := postJSON(t, r, "/auth/admin/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["success"] != true {
		t.Errorf("expected success, got %v", body)
	}
}
