// Package password implements the credential hashing schemes.
//
// The default "sha256" scheme is a deterministic, unsalted SHA-256 digest
// encoded as base64. That matches the digests already sitting in the users
// collection, so it has to stay the default: switching the comparison scheme
// would lock every existing account out. Identical passwords therefore
// produce identical digests. The "bcrypt" scheme exists as the opt-in
// hardened alternative for fresh deployments.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext secret into a storable digest and verifies
// candidates against stored digests.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(candidate, digest string) bool
}

// NewHasher returns the hasher for the named scheme: "bcrypt" or "sha256".
// Unknown names fall back to the legacy sha256 scheme.
func NewHasher(scheme string) Hasher {
	if scheme == "bcrypt" {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}

// SHA256Hasher is the legacy scheme: base64(sha256(secret)), no salt,
// no iteration count.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(secret string) (string, error) {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares for plain equality, exactly as
// the legacy storefront did.
func (h SHA256Hasher) Verify(candidate, digest string) bool {
	computed, _ := h.Hash(candidate)
	return computed == digest
}

// BcryptHasher is the salted, cost-parameterized scheme.
type BcryptHasher struct{}

func (BcryptHasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(out), nil
}

func (BcryptHasher) Verify(candidate, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
