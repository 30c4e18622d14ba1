package email

import (
	"regexp"
	"testing"
)

func TestGenerateVerificationToken(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		token, err := GenerateVerificationToken()
		if err != nil {
			t.Fatalf("token error: %v", err)
		}
		if !hexRe.MatchString(token) {
			t.Fatalf("token %q is not 64 lowercase hex chars", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated")
		}
		seen[token] = true
	}
}
