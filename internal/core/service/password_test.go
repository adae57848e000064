package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("not a bcrypt hash: %q", hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("reading cost: %v", err)
	}
	if cost != hashCost {
		t.Fatalf("expected cost %d, got %d", hashCost, cost)
	}
}

func TestVerifyLoginPassword_Matches(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyLoginPassword(hash, "correct horse") {
		t.Fatalf("correct password rejected")
	}
	if VerifyLoginPassword(hash, "wrong horse") {
		t.Fatalf("wrong password accepted")
	}
	if VerifyLoginPassword(hash, "") {
		t.Fatalf("empty password accepted")
	}
}

// The bootstrap fallback must only open the door when the stored hash is
// still the bootstrap hash. Once the password has been rotated, typing the
// well-known default gets rejected like any other wrong password.
func TestVerifyLoginPassword_DefaultFallback(t *testing.T) {
	bootstrapHash, err := HashPassword(defaultPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyLoginPassword(bootstrapHash, defaultPassword) {
		t.Fatalf("bootstrap password rejected against its own hash")
	}
	if VerifyLoginPassword(bootstrapHash, "anything-else") {
		t.Fatalf("non-default password accepted against bootstrap hash")
	}

	rotatedHash, err := HashPassword("rotated-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyLoginPassword(rotatedHash, defaultPassword) {
		t.Fatalf("default accepted after rotation")
	}
}

func TestVerifyCurrentPassword_SameRuleAsLogin(t *testing.T) {
	bootstrapHash, err := HashPassword(defaultPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyCurrentPassword(bootstrapHash, defaultPassword) {
		t.Fatalf("bootstrap password rejected in change-password flow")
	}

	rotatedHash, err := HashPassword("rotated-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyCurrentPassword(rotatedHash, "rotated-password") {
		t.Fatalf("current password rejected")
	}
	if VerifyCurrentPassword(rotatedHash, defaultPassword) {
		t.Fatalf("default accepted after rotation in change-password flow")
	}
}
