package utils

import (
	"testing"
	"time"

	"afinare/config"
)

func TestGenerateTokenUsesConfiguredSecret(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "segredo-de-teste"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	token, err := GenerateToken("user-1", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("sub = %q, want user-1", sub)
	}

	config.AppConfig.JWTSecret = "outro-segredo"
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("token validated after the secret changed")
	}
}
