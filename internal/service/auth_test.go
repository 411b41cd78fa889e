package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devconnect/devconnect-go/internal/model"
)

func newTestAuthService() (*AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewAuthService(store, "test-secret", time.Hour, 10), store
}

func TestRegisterMissingName(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Msg != "Name is required" {
		t.Errorf("unexpected errors: %+v", ve.Errors)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "password123",
	})

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Errors[0].Msg != "Please include a valid email" {
		t.Errorf("unexpected message: %s", ve.Errors[0].Msg)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "abc",
	})

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Errors[0].Msg != "Please enter a password with 6 or more characters" {
		t.Errorf("unexpected message: %s", ve.Errors[0].Msg)
	}
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{})

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "bad-email",
	})

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(ve.Errors))
	}
}

func TestRegisterDuplicateEmailCreatesNoSecondRecord(t *testing.T) {
	svc, store := newTestAuthService()

	req := model.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	req.Name = "Impostor"
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if len(store.users) != 1 {
		t.Errorf("expected 1 user record, got %d", len(store.users))
	}
	user, err := store.GetByEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.Name != "Test User" {
		t.Errorf("original record was overwritten: %+v", user)
	}
}

func TestLoginUnknownEmailAndWrongPasswordSameError(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), model.LoginRequest{
		Email:    "test@example.com",
		Password: "not-the-password",
	})
	_, unknownEmail := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPass != unknownEmail {
		t.Errorf("the two failure paths must be indistinguishable: %v vs %v", wrongPass, unknownEmail)
	}
}

func TestLoginSuccessAfterRegister(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}
