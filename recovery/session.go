package recovery

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ruteri/threshold-secret-recovery/interfaces"
)

var (
	// ErrAlreadyRecovered is returned for shares submitted after recovery.
	ErrAlreadyRecovered = errors.New("secret is already recovered")

	// ErrDuplicateShare is returned when a share for the same x key was already submitted.
	ErrDuplicateShare = errors.New("share already submitted")
)

// SessionConfig contains configuration parameters for creating a Session.
type SessionConfig struct {
	// Threshold is the number of shares a single interpolation uses.
	Threshold int
	// Quorum is the number of shares to collect before the first recovery
	// attempt. Collecting more than Threshold shares lets the majority vote
	// outweigh corrupted ones. Defaults to Threshold.
	Quorum int
}

// Session collects shares one at a time until the secret can be recovered.
//
// Submitted shares are decoded immediately and rejected if malformed. Once at
// least Quorum shares are held, every submission triggers a majority solve
// over all shares received so far. On success the session is recovered, the
// received shares are dropped and further submissions fail.
type Session struct {
	mu             sync.RWMutex
	solver         *Solver
	threshold      int
	quorum         int
	receivedShares map[string]interfaces.RawShareEntry
	secret         *big.Int
	isRecovered    bool
}

// NewSession creates a Session that recovers with the given solver.
func NewSession(solver *Solver, config SessionConfig) (*Session, error) {
	if config.Threshold <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, config.Threshold)
	}

	quorum := config.Quorum
	if quorum == 0 {
		quorum = config.Threshold
	}
	if quorum < config.Threshold {
		return nil, fmt.Errorf("quorum %d must be at least the threshold %d", quorum, config.Threshold)
	}

	return &Session{
		solver:         solver,
		threshold:      config.Threshold,
		quorum:         quorum,
		receivedShares: make(map[string]interfaces.RawShareEntry),
	}, nil
}

// SubmitShare submits the raw share for the decimal x coordinate x. A nil
// error does not mean the secret was recovered, use IsRecovered.
func (s *Session) SubmitShare(ctx context.Context, x string, entry interfaces.RawShareEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRecovered {
		return ErrAlreadyRecovered
	}

	if _, found := s.receivedShares[x]; found {
		return fmt.Errorf("%w: x=%s", ErrDuplicateShare, x)
	}

	if _, err := DecodeShare(x, entry); err != nil {
		return fmt.Errorf("invalid share: %w", err)
	}

	s.receivedShares[x] = entry

	if err := s.tryRecover(ctx); err != nil {
		// The share was not used, let the caller submit it again.
		delete(s.receivedShares, x)
		return err
	}
	return nil
}

// tryRecover runs a solve over the received shares once the quorum is met.
// Inconsistent share sets are not an error: more shares may resolve them.
func (s *Session) tryRecover(ctx context.Context) error {
	if len(s.receivedShares) < s.quorum {
		return nil
	}

	doc := interfaces.InputDocument{
		N:       len(s.receivedShares),
		K:       s.threshold,
		HasK:    true,
		Entries: s.receivedShares,
	}

	secret, err := s.solver.Solve(ctx, doc)
	if errors.Is(err, ErrNoMajoritySecret) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to recover secret: %w", err)
	}

	s.secret = secret
	s.isRecovered = true
	s.receivedShares = make(map[string]interfaces.RawShareEntry)

	return nil
}

// IsRecovered returns whether the secret has been recovered.
func (s *Session) IsRecovered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRecovered
}

// Secret returns a copy of the recovered secret, or false if the session is
// not recovered yet.
func (s *Session) Secret() (*big.Int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRecovered {
		return nil, false
	}
	return new(big.Int).Set(s.secret), true
}

// Received returns the number of shares held, and the quorum needed before
// recovery is attempted.
func (s *Session) Received() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receivedShares), s.quorum
}
