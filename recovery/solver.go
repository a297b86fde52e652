package recovery

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"slices"

	"github.com/ruteri/threshold-secret-recovery/combinations"
	"github.com/ruteri/threshold-secret-recovery/interfaces"
	"github.com/ruteri/threshold-secret-recovery/lagrange"
	"github.com/ruteri/threshold-secret-recovery/numeral"
	"go.uber.org/atomic"
)

var (
	// ErrInvalidThreshold is returned when the threshold is missing or not positive.
	ErrInvalidThreshold = errors.New("missing or invalid threshold")

	// ErrInsufficientShares is returned when fewer than threshold shares decode.
	ErrInsufficientShares = errors.New("insufficient valid shares")

	// ErrNoMajoritySecret is returned when no combination of shares is consistent.
	ErrNoMajoritySecret = errors.New("no majority secret found")
)

// Config contains the parameters of a Solver.
type Config struct {
	// MaxCombinations bounds the number of combinations attempted per solve.
	// Zero means no bound.
	MaxCombinations uint64

	// TieBreak selects the winner between equally voted secrets.
	TieBreak TieBreak

	// Reconstructor interpolates a single combination. Defaults to
	// lagrange.Reconstructor.
	Reconstructor interfaces.Reconstructor

	// Log receives skipped shares and run summaries. Defaults to a discarding logger.
	Log *slog.Logger
}

// Result describes the outcome of a successful solve.
type Result struct {
	// Secret is the secret with the most votes.
	Secret *big.Int
	// Votes is the number of combinations that produced Secret.
	Votes int
	// Candidates is the number of distinct secrets produced.
	Candidates int
	// Attempted is the number of combinations interpolated.
	Attempted uint64
	// Consistent is the number of combinations that produced an integer secret.
	Consistent uint64
	// Shares is the pool of decoded shares, sorted by x.
	Shares []interfaces.Share
	// SkippedShares lists the keys of entries that failed to decode.
	SkippedShares []string
	// Truncated is set when MaxCombinations stopped the enumeration early.
	Truncated bool
}

// Stats are cumulative counters over the lifetime of a Solver.
type Stats struct {
	Solves       uint64
	Failures     uint64
	Combinations uint64
}

// Solver recovers secrets by majority vote over all threshold-sized
// combinations of the decodable shares. It is safe for concurrent use; every
// solve keeps its own tally.
type Solver struct {
	cfg           Config
	reconstructor interfaces.Reconstructor
	log           *slog.Logger

	solves       atomic.Uint64
	failures     atomic.Uint64
	combinations atomic.Uint64
}

// NewSolver creates a Solver, filling in defaults for unset Config fields.
func NewSolver(cfg Config) *Solver {
	s := &Solver{
		cfg:           cfg,
		reconstructor: cfg.Reconstructor,
		log:           cfg.Log,
	}
	if s.reconstructor == nil {
		s.reconstructor = lagrange.Reconstructor{}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Stats returns a snapshot of the cumulative counters.
func (s *Solver) Stats() Stats {
	return Stats{
		Solves:       s.solves.Load(),
		Failures:     s.failures.Load(),
		Combinations: s.combinations.Load(),
	}
}

// Solve returns the secret agreed on by the largest number of share
// combinations.
func (s *Solver) Solve(ctx context.Context, doc interfaces.InputDocument) (*big.Int, error) {
	res, err := s.SolveDetailed(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.Secret, nil
}

// SolveDetailed is Solve returning the vote statistics along with the secret.
//
// Shares that fail to decode are skipped with a warning. Every combination of
// doc.K decoded shares is interpolated; combinations that fail (duplicate x,
// non-integer result) cast no vote. The secret with the most votes wins, ties
// being resolved by Config.TieBreak. The context is checked between
// combinations.
func (s *Solver) SolveDetailed(ctx context.Context, doc interfaces.InputDocument) (*Result, error) {
	s.solves.Inc()
	res, err := s.solve(ctx, doc)
	if err != nil {
		s.failures.Inc()
		return nil, err
	}
	return res, nil
}

func (s *Solver) solve(ctx context.Context, doc interfaces.InputDocument) (*Result, error) {
	if !doc.HasK || doc.K <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidThreshold, doc.K)
	}

	res := &Result{}
	res.Shares, res.SkippedShares = s.decodeShares(doc)
	if len(res.Shares) < doc.K {
		return nil, fmt.Errorf("%w: only %d valid shares, need %d", ErrInsufficientShares, len(res.Shares), doc.K)
	}

	total := combinations.Count(len(res.Shares), doc.K)
	s.log.Debug("Interpolating share combinations",
		"shares", len(res.Shares),
		"threshold", doc.K,
		"combinations", total.String())

	votes := newTally()
	for comb := range combinations.Of(res.Shares, doc.K) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.cfg.MaxCombinations > 0 && res.Attempted >= s.cfg.MaxCombinations {
			res.Truncated = true
			s.log.Warn("Combination limit reached, result is based on a partial vote",
				"limit", s.cfg.MaxCombinations,
				"combinations", total.String())
			break
		}

		res.Attempted++
		s.combinations.Inc()

		secret, err := s.reconstructor.Reconstruct(comb)
		if err != nil {
			s.log.Debug("Discarding combination", "shares", comb, "err", err)
			continue
		}
		res.Consistent++
		votes.add(secret)
	}

	winner := votes.best(s.cfg.TieBreak)
	if winner == nil {
		return nil, fmt.Errorf("%w: none of %d combinations is consistent", ErrNoMajoritySecret, res.Attempted)
	}

	res.Secret = new(big.Int).Set(winner.secret)
	res.Votes = winner.votes
	res.Candidates = votes.len()

	s.log.Info("Secret recovered",
		"votes", res.Votes,
		"candidates", res.Candidates,
		"consistent", res.Consistent,
		"attempted", res.Attempted,
		"skippedShares", len(res.SkippedShares))

	return res, nil
}

// decodeShares decodes every entry of the document. Entries that fail to
// decode are logged and returned as skipped. Decoded shares are ordered by x
// and then by key, which fixes the combination enumeration order.
func (s *Solver) decodeShares(doc interfaces.InputDocument) ([]interfaces.Share, []string) {
	type keyedShare struct {
		key   string
		share interfaces.Share
	}

	var decoded []keyedShare
	var skipped []string
	for key, entry := range doc.Entries {
		share, err := DecodeShare(key, entry)
		if err != nil {
			s.log.Warn("Skipping invalid share", "x", key, "err", err)
			skipped = append(skipped, key)
			continue
		}
		decoded = append(decoded, keyedShare{key: key, share: share})
	}

	slices.SortFunc(decoded, func(a, b keyedShare) int {
		if c := a.share.X.Cmp(b.share.X); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	slices.Sort(skipped)

	shares := make([]interfaces.Share, len(decoded))
	for i, ks := range decoded {
		shares[i] = ks.share
	}
	return shares, skipped
}

// DecodeShare decodes the x coordinate (decimal) and the y value (in the
// entry's base) of a raw share.
func DecodeShare(key string, entry interfaces.RawShareEntry) (interfaces.Share, error) {
	x, ok := new(big.Int).SetString(key, 10)
	if !ok {
		return interfaces.Share{}, fmt.Errorf("invalid x coordinate %q", key)
	}

	y, err := numeral.DecodeString(entry.Base, entry.Value)
	if err != nil {
		return interfaces.Share{}, fmt.Errorf("failed to decode y: %w", err)
	}

	return interfaces.Share{X: x, Y: y}, nil
}
