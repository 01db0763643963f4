package password

import "testing"

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}

	d1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	d2, _ := h.Hash("secret1")
	if d1 != d2 {
		t.Fatalf("same input produced different digests: %q vs %q", d1, d2)
	}
	if d1 == "secret1" {
		t.Fatalf("digest equals plaintext")
	}

	other, _ := h.Hash("secret2")
	if other == d1 {
		t.Fatalf("distinct inputs produced identical digests")
	}
}

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	// base64(sha256("password")), pinned so stored rows keep verifying.
	const want = "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg="

	h := SHA256Hasher{}
	got, _ := h.Hash("password")
	if got != want {
		t.Fatalf("digest mismatch: got %q, want %q", got, want)
	}
}

func TestSHA256Hasher_Verify(t *testing.T) {
	h := SHA256Hasher{}
	digest, _ := h.Hash("p")

	if !h.Verify("p", digest) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := BcryptHasher{}
	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("nope", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestNewHasher_SchemeSelection(t *testing.T) {
	if _, ok := NewHasher("bcrypt").(BcryptHasher); !ok {
		t.Fatalf("expected bcrypt hasher")
	}
	if _, ok := NewHasher("sha256").(SHA256Hasher); !ok {
		t.Fatalf("expected sha256 hasher")
	}
	if _, ok := NewHasher("").(SHA256Hasher); !ok {
		t.Fatalf("expected sha256 fallback for empty scheme")
	}
}
