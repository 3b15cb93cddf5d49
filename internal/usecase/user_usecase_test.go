package usecase

import (
	"testing"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	companyID := uint(1)
	if err := svc.Register("Kim Jiwoo", "jiwoo@example.com", "secret123", "staff", &companyID); err != nil {
		t.Fatalf("register: %v", err)
	}

	tokenString, user, err := svc.Login("jiwoo@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "jiwoo@example.com" || user.Role != "staff" {
		t.Fatalf("unexpected user: %+v", user)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "staff" {
		t.Fatalf("claims = %v", claims)
	}
	if _, ok := claims["company_id"]; !ok {
		t.Fatalf("company_id claim missing: %v", claims)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	if err := svc.Register("Kim Jiwoo", "jiwoo@example.com", "secret123", "staff", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login("jiwoo@example.com", "wrong")
	if kind := errKind(t, err); kind != apperror.KindUnauthorized {
		t.Fatalf("kind = %s, want UnauthorizedError", kind)
	}

	_, _, err = svc.Login("nobody@example.com", "whatever")
	if kind := errKind(t, err); kind != apperror.KindUnauthorized {
		t.Fatalf("kind = %s, want UnauthorizedError", kind)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	err := svc.Register("X", "x@example.com", "pw", "superuser", nil)
	if kind := errKind(t, err); kind != apperror.KindValidation {
		t.Fatalf("kind = %s, want ValidationError", kind)
	}
}
