package hash

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(MinCost)

	hashed, err := h.Hash("Aa1!aaaaaaaa")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "Aa1!aaaaaaaa" {
		t.Fatalf("hash equals plaintext")
	}

	if !h.Verify("Aa1!aaaaaaaa", hashed) {
		t.Fatalf("Verify rejected the original plaintext")
	}
	if h.Verify("wrong", hashed) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestBcryptHasher_SaltsPerCall(t *testing.T) {
	h := NewBcryptHasher(MinCost)

	first, err := h.Hash("same-input-password")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := h.Hash("same-input-password")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of identical input are equal; salting is broken")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(MinCost)

	for _, hashed := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", hashed) {
			t.Fatalf("Verify accepted malformed hash %q", hashed)
		}
	}
}

func TestNewBcryptHasher_CostFloor(t *testing.T) {
	h := NewBcryptHasher(4)
	if h.cost != MinCost {
		t.Fatalf("expected cost %d, got %d", MinCost, h.cost)
	}
}
