// Package recovery reconstructs secrets from share sets that may contain
// corrupted, forged or badly encoded shares.
//
// # Solver
//
// A Solver takes a parsed share document and:
//
//  1. Validates the threshold k (ErrInvalidThreshold).
//  2. Decodes every share. The x coordinate is decimal, the y value is written
//     in the base stated by the share. Shares that fail to decode are logged
//     and skipped.
//  3. Fails with ErrInsufficientShares if fewer than k shares remain.
//  4. Interpolates the secret of every k-combination of the decoded shares
//     with the configured interfaces.Reconstructor. Combinations that fail
//     (duplicate x, non-integer secret) cast no vote.
//  5. Returns the secret produced by the most combinations, or
//     ErrNoMajoritySecret if no combination was consistent.
//
// Decoded shares are ordered by x (then by key text for equal x) before
// enumeration, so the combination order, and with it the TieBreakFirstSeen
// rule, is deterministic. This equals integer-key object order only for
// canonical non-negative decimal keys. Keys such as "-1" or "01" sort by value
// here, whereas object order puts them after the integer keys in insertion
// order, so a tie between them may resolve to another candidate.
//
// Usage:
//
//	solver := recovery.NewSolver(recovery.Config{Log: logger})
//	secret, err := solver.Solve(ctx, doc)
//	if errors.Is(err, recovery.ErrNoMajoritySecret) {
//	    // every combination contains inconsistent shares
//	}
//
// # Robustness
//
// If at most a minority of shares is corrupted, the combinations made only of
// genuine shares all agree on the real secret, while combinations including a
// bad share either fail the integer check or scatter over unrelated values.
// A corrupted share can still win when too few genuine combinations exist,
// for example a single bad share among k+1 where all combinations happen to be
// integral; the vote is then a tie and TieBreak decides.
//
// # Resource limits
//
// The number of combinations is C(n, k). They are generated lazily and only
// one is held at a time, but the run time still grows with C(n, k).
// Config.MaxCombinations stops the vote early, marking the Result as
// truncated, and the context passed to Solve is checked between combinations.
//
// # Session
//
// A Session collects shares one at a time, for example as administrators hand
// them in, and runs the Solver over everything received once a quorum is
// reached. Setting the quorum above the threshold gives the majority vote
// enough genuine combinations to outweigh a corrupted share.
package recovery
