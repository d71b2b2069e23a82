package auth

import (
	"testing"
	"time"

	"github.com/elifesajna/self-employ-final/domain"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "portal-test", 15*time.Minute)

	token, err := svc.GenerateAccessToken("a1", domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.AdminID != "a1" {
		t.Errorf("expected admin id a1, got %s", claims.AdminID)
	}
	if claims.Role != domain.RoleSuperAdmin {
		t.Errorf("expected role %s, got %s", domain.RoleSuperAdmin, claims.Role)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expected expiry after issuance")
	}
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", "portal-test", 15*time.Minute)

	token, err := svc.GenerateAccessToken("a1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token + "x"); err == nil {
		t.Error("expected tampered token rejected")
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", "portal-test", 15*time.Minute)
	validator := NewJWTService("secret-two", "portal-test", 15*time.Minute)

	token, err := issuer.GenerateAccessToken("a1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := validator.ValidateAccessToken(token); err == nil {
		t.Error("expected token signed with another secret rejected")
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", "portal-test", -time.Minute)

	token, err := svc.GenerateAccessToken("a1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expected expired token rejected")
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "portal-test", 15*time.Minute)

	if _, err := svc.ValidateAccessToken("not-a-token"); err == nil {
		t.Error("expected garbage rejected")
	}
}
