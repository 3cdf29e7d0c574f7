package auth

import "testing"

func TestHashPassword_NeverPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("hash equals plaintext")
	}
	if !CheckPassword("secret", hash) {
		t.Fatalf("CheckPassword rejected the original plaintext")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical, salt missing")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("other", hash) {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret", "not-a-bcrypt-hash") {
		t.Fatalf("CheckPassword accepted a malformed hash")
	}
}
