package security

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// BcryptHasher hashes passwords with bcrypt. The work factor makes a single
// call deliberately slow (~100ms class), so concurrent calls are bounded by
// a weighted semaphore sized to the number of CPUs: request goroutines wait
// for a slot instead of piling CPU-bound work onto the scheduler.
type BcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher creates a hasher with the given cost. Cost zero falls
// back to the bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

// Hash produces a salted digest of the plaintext
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	// Acquire may succeed even on a done context when a slot is free
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. A malformed
// digest yields false; no error crosses this boundary.
func (h *BcryptHasher) Verify(ctx context.Context, password, digest string) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
