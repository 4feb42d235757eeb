package auth

import (
	"testing"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret", time.Minute, time.Hour, "job-portal-website")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()

	token, err := s.GenerateAccessToken("u1", "jane@acme.test")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := s.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("userID = %q", claims.UserID)
	}
	if claims.Email != "jane@acme.test" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Error("freshly issued token should not be expired")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	s := NewJWTService("test-secret", -time.Minute, time.Hour, "job-portal-website")

	token, err := s.GenerateAccessToken("u1", "jane@acme.test")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = s.ValidateAccessToken(token)
	if !errx.IsType(err, errx.TypeAuthentication) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := newTestService().GenerateAccessToken("u1", "jane@acme.test")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTService("other-secret", time.Minute, time.Hour, "job-portal-website")
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with a different secret should be rejected")
	}
}

func TestValidateRejectsForeignIssuer(t *testing.T) {
	foreign := NewJWTService("test-secret", time.Minute, time.Hour, "someone-else")
	token, err := foreign.GenerateAccessToken("u1", "jane@acme.test")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := newTestService().ValidateAccessToken(token); err == nil {
		t.Fatal("token from a different issuer should be rejected")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestService().ValidateAccessToken("not-a-token")
	if !errx.IsType(err, errx.TypeAuthentication) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}
