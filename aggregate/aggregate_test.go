package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentteam/core"
)

func responses(texts ...string) []core.AgentResponse {
	out := make([]core.AgentResponse, 0, len(texts))
	for i, text := range texts {
		out = append(out, core.AgentResponse{
			AgentName: string(rune('A' + i)),
			Text:      text,
		})
	}
	return out
}

func TestAggregate_FirstWins(t *testing.T) {
	result, err := Aggregate(FirstWins, responses("X", "Y", "Z"), nil)
	require.NoError(t, err)
	assert.Equal(t, "X", result)
}

func TestAggregate_MajorityVote(t *testing.T) {
	result, err := Aggregate(MajorityVote, responses("A", "B", "A"), nil)
	require.NoError(t, err)
	assert.Equal(t, "A", result)
}

func TestAggregate_MajorityVote_TieFirstGroupWins(t *testing.T) {
	result, err := Aggregate(MajorityVote, responses("A", "B"), nil)
	require.NoError(t, err)
	assert.Equal(t, "A", result)
}

func TestAggregate_MajorityVote_TrimsBeforeGrouping(t *testing.T) {
	result, err := Aggregate(MajorityVote, responses("  yes  ", "no", "yes"), nil)
	require.NoError(t, err)
	assert.Equal(t, "yes", result)
}

func TestAggregate_MergeAll(t *testing.T) {
	result, err := Aggregate(MergeAll, responses("one", "two"), nil)
	require.NoError(t, err)
	assert.Equal(t, "[A]: one\n\n[B]: two", result)
}

func TestAggregate_DefaultsToMergeAll(t *testing.T) {
	result, err := Aggregate("", responses("one", "two"), nil)
	require.NoError(t, err)
	assert.Contains(t, result, "[A]: one")
	assert.Contains(t, result, "[B]: two")
}

func TestAggregate_Custom(t *testing.T) {
	reducer := func(rs []core.AgentResponse) (string, error) {
		parts := make([]string, 0, len(rs))
		for _, r := range rs {
			parts = append(parts, r.Text)
		}
		return strings.Join(parts, "|"), nil
	}

	result, err := Aggregate(Custom, responses("a", "b"), reducer)
	require.NoError(t, err)
	assert.Equal(t, "a|b", result)
}

func TestAggregate_CustomWithoutReducer(t *testing.T) {
	_, err := Aggregate(Custom, responses("a"), nil)
	assert.ErrorContains(t, err, "requires a custom reducer")
}

func TestAggregate_UnknownStrategy(t *testing.T) {
	_, err := Aggregate("median", responses("a"), nil)
	assert.ErrorContains(t, err, "unknown aggregation strategy")
}

func TestAggregate_EmptyResponses(t *testing.T) {
	for _, strategy := range []Strategy{FirstWins, MajorityVote, MergeAll} {
		result, err := Aggregate(strategy, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result, "strategy %s", strategy)
	}
}

func TestMerge_Empty(t *testing.T) {
	assert.Equal(t, "", Merge(nil))
}
