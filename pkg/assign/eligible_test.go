package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligibleTopics(t *testing.T) {
	members := []Member{
		{ID: "C0", Topics: []string{"orders", "payments"}},
		{ID: "C1", Topics: []string{"orders", "ghost"}},
	}
	partitionCounts := map[string]int{
		"orders":   4,
		"payments": 2,
		"idle":     8,
	}

	topics := EligibleTopics(members, partitionCounts)

	// "ghost" has no metadata, "idle" has no subscribers; both are excluded.
	// Results are sorted by name.
	assert.Equal(
		t,
		[]TopicMeta{
			{Name: "orders", Partitions: 4},
			{Name: "payments", Partitions: 2},
		},
		topics,
	)
}

func TestEligibleTopicsEmpty(t *testing.T) {
	assert.Equal(t, []TopicMeta{}, EligibleTopics(nil, map[string]int{"t0": 1}))
	assert.Equal(
		t,
		[]TopicMeta{},
		EligibleTopics([]Member{{ID: "C0", Topics: []string{"t0"}}}, nil),
	)
}
