package recovery

import (
	"fmt"
	"math/big"
	"strings"
)

// TieBreak selects the winner among candidate secrets with equal vote counts.
type TieBreak int

const (
	// TieBreakFirstSeen picks the secret that was produced first, in
	// combination enumeration order.
	TieBreakFirstSeen TieBreak = iota
	// TieBreakSmallest picks the numerically smallest secret.
	TieBreakSmallest
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakFirstSeen:
		return "first-seen"
	case TieBreakSmallest:
		return "smallest"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak parses the names returned by TieBreak.String.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "first-seen", "":
		return TieBreakFirstSeen, nil
	case "smallest":
		return TieBreakSmallest, nil
	default:
		return 0, fmt.Errorf("unknown tie-break rule %q", s)
	}
}

type candidate struct {
	secret *big.Int
	votes  int
}

// tally counts votes per candidate secret and remembers the order in which
// candidates first appeared.
type tally struct {
	bySecret map[string]*candidate
	order    []*candidate
}

func newTally() *tally {
	return &tally{bySecret: make(map[string]*candidate)}
}

func (t *tally) add(secret *big.Int) {
	key := secret.Text(16)
	c, found := t.bySecret[key]
	if !found {
		c = &candidate{secret: secret}
		t.bySecret[key] = c
		t.order = append(t.order, c)
	}
	c.votes++
}

func (t *tally) len() int {
	return len(t.order)
}

// best returns the candidate with the most votes, or nil if the tally is empty.
func (t *tally) best(rule TieBreak) *candidate {
	var winner *candidate
	for _, c := range t.order {
		switch {
		case winner == nil || c.votes > winner.votes:
			winner = c
		case c.votes == winner.votes && rule == TieBreakSmallest && c.secret.Cmp(winner.secret) < 0:
			winner = c
		}
	}
	return winner
}
