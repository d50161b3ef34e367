// Package cas computes content digests for source files. The digests
// identify a converted source in logs and in the sqlite sources table.
package cas

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// HashResult contains both SHA-256 and BLAKE3 hashes of a blob.
type HashResult struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Blake3Hash computes the hex BLAKE3-256 digest of data.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SHA256Hash computes the hex SHA-256 digest of data.
func SHA256Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Hash returns both digests of data.
func Hash(data []byte) *HashResult {
	return &HashResult{
		SHA256: SHA256Hash(data),
		BLAKE3: Blake3Hash(data),
	}
}
