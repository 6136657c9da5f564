package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/auth"
)

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Minute)

	token, err := manager.Generate(&domain.User{ID: "u1", Name: "Maria", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var gotUser *domain.User
	handler := Auth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = domain.UserFromContext(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"bad token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}

			if tt.wantStatus == http.StatusOK {
				if gotUser == nil || gotUser.ID != "u1" || gotUser.Role != domain.RoleEmployee {
					t.Fatalf("expected user on context, got %+v", gotUser)
				}
			}
		})
	}
}

func TestStaticUser(t *testing.T) {
	admin := &domain.User{ID: "system", Name: "System", Role: domain.RoleAdmin}

	var gotUser *domain.User
	handler := StaticUser(admin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = domain.UserFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if gotUser == nil || gotUser.ID != "system" || gotUser.Role != domain.RoleAdmin {
		t.Fatalf("expected static admin on context, got %+v", gotUser)
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name       string
		user       *domain.User
		wantStatus int
	}{
		{"no user", nil, http.StatusUnauthorized},
		{"employee", &domain.User{ID: "u1", Role: domain.RoleEmployee}, http.StatusForbidden},
		{"admin", &domain.User{ID: "u2", Role: domain.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs", nil)
			if tt.user != nil {
				req = req.WithContext(domain.ContextWithUser(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}
