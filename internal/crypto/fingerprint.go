package crypto

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of report content.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars),
// which is plenty for upload dedupe bookkeeping.
func Fingerprint(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:10])
}

// FingerprintFile fingerprints a file's content without loading it whole.
func FingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)[:10]), nil
}
