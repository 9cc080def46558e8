package sessionx

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
)

const keyLength = 32

// LoadOrGenerateKey loads the session signing key from file, generating and
// persisting a fresh random key on first run. Losing the file invalidates all
// outstanding sessions, which is an acceptable failure mode.
func LoadOrGenerateKey(file string) ([]byte, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		keyBytes := make([]byte, keyLength)
		if _, err := rand.Read(keyBytes); err != nil {
			return nil, err
		}
		encoded := base64.RawURLEncoding.EncodeToString(keyBytes)

		if err := os.WriteFile(file, []byte(encoded), 0600); err != nil {
			return nil, err
		}
		return keyBytes, nil
	}

	encoded, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	keyBytes, err := base64.RawURLEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, err
	}
	return keyBytes, nil
}
