// Package aggregate provides pure strategies for combining the surviving
// responses of a parallel team round into a single output.
//
// Strategies are deliberately order-sensitive: responses must be supplied in
// configured agent order (not completion order) so that first-wins and
// majority-vote tie-breaking stay deterministic across runs.
package aggregate

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hupe1980/agentteam/core"
)

// Strategy selects how parallel results are combined.
type Strategy string

const (
	// FirstWins returns the text of the earliest surviving response in
	// configured agent order.
	FirstWins Strategy = "first-wins"

	// MajorityVote groups responses by trimmed text and returns the text of
	// the largest group. Ties resolve to the group seen first.
	MajorityVote Strategy = "majority-vote"

	// MergeAll joins "[agentName]: text" entries with a blank line. This is
	// the default strategy.
	MergeAll Strategy = "merge-all"

	// Custom delegates to a caller-supplied Reducer.
	Custom Strategy = "custom"
)

// Reducer combines responses under the Custom strategy.
type Reducer func(responses []core.AgentResponse) (string, error)

// Aggregate combines responses according to the given strategy. An empty
// response list yields "" for every strategy. The Custom strategy requires a
// non-nil reducer.
func Aggregate(strategy Strategy, responses []core.AgentResponse, reducer Reducer) (string, error) {
	if strategy == "" {
		strategy = MergeAll
	}

	switch strategy {
	case FirstWins, MajorityVote, MergeAll:
	case Custom:
		if reducer == nil {
			return "", fmt.Errorf("aggregation strategy %q requires a custom reducer function", Custom)
		}
	default:
		return "", fmt.Errorf("unknown aggregation strategy: %q", strategy)
	}

	if len(responses) == 0 {
		return "", nil
	}

	switch strategy {
	case FirstWins:
		return responses[0].Text, nil
	case MajorityVote:
		return majorityVote(responses), nil
	case Custom:
		return reducer(responses)
	default:
		return Merge(responses), nil
	}
}

// majorityVote scans groups in insertion order; the first group to reach the
// maximum count wins, so ties resolve to the earliest group.
func majorityVote(responses []core.AgentResponse) string {
	groups := orderedmap.New[string, int]()
	for _, r := range responses {
		key := strings.TrimSpace(r.Text)
		if count, ok := groups.Get(key); ok {
			groups.Set(key, count+1)
		} else {
			groups.Set(key, 1)
		}
	}

	var winner string
	best := 0
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value > best {
			best = pair.Value
			winner = pair.Key
		}
	}
	return winner
}

// Merge joins "[agentName]: text" entries with a blank line. Exported so
// other coordination modes can reuse the canonical merged rendering.
func Merge(responses []core.AgentResponse) string {
	entries := make([]string, 0, len(responses))
	for _, r := range responses {
		entries = append(entries, fmt.Sprintf("[%s]: %s", r.AgentName, r.Text))
	}
	return strings.Join(entries, "\n\n")
}
