package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// DigestPrefix names the hash in rendered banners.
const DigestPrefix = "blake2b-256:"

// ConfigDigest fingerprints a model configuration. Two models with the same
// declarations yield the same digest regardless of the document format they
// were loaded from.
func ConfigDigest(m *channel.Model) (string, error) {
	canonical, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode model for digest: %w", err)
	}
	sum := blake2b.Sum256(canonical)
	return DigestPrefix + hex.EncodeToString(sum[:]), nil
}
