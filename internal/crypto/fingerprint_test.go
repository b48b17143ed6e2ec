package crypto_test

import (
	"os"
	"path/filepath"
	"testing"

	"crashkit/internal/crypto"
)

func TestFingerprint_StableAndShort(t *testing.T) {
	a := crypto.Fingerprint([]byte("payload"))
	b := crypto.Fingerprint([]byte("payload"))
	if a != b {
		t.Fatalf("fingerprints differ for identical content: %s vs %s", a, b)
	}
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(a))
	}
	if crypto.Fingerprint([]byte("other")) == a {
		t.Fatal("distinct content produced identical fingerprints")
	}
}

func TestFingerprintFile_MatchesInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	if err := os.WriteFile(path, []byte("payload"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := crypto.FingerprintFile(path)
	if err != nil {
		t.Fatalf("FingerprintFile: %v", err)
	}
	if want := crypto.Fingerprint([]byte("payload")); got != want {
		t.Fatalf("FingerprintFile = %s, want %s", got, want)
	}
}
