package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("abcdef")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "abcdef" || strings.Contains(hash, "abcdef") {
		t.Fatal("hash contains the plaintext")
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != PasswordCost {
		t.Errorf("cost: got %d, want %d", cost, PasswordCost)
	}
	if !CheckPassword(hash, "abcdef") {
		t.Error("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "abcdeg") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("abcdef")
	b, _ := HashPassword("abcdef")
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestHashPassword_Long(t *testing.T) {
	long := strings.Repeat("x", 80)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, long) {
		t.Error("CheckPassword rejected the right password")
	}
	// differs only after byte 72, where plain bcrypt stops reading
	if CheckPassword(hash, strings.Repeat("x", 79)+"y") {
		t.Error("CheckPassword accepted a password differing past 72 bytes")
	}
}

func TestIssueAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := IssueToken(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	userID, err := ParseToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID: got %d, want 42", userID)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	secret := []byte("test-secret")
	expired, _ := IssueToken(secret, 1, -time.Minute)
	otherKey, _ := IssueToken([]byte("other"), 1, time.Hour)

	for name, tok := range map[string]string{
		"expired":   expired,
		"wrong key": otherKey,
		"garbage":   "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseToken(secret, tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
