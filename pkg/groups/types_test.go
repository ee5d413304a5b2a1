package groups

import (
	"testing"

	"github.com/segmentio/groupctl/pkg/assign"
	"github.com/stretchr/testify/assert"
)

func TestGroupDetailsTopics(t *testing.T) {
	details := GroupDetails{
		GroupID: "test-group",
		State:   "Stable",
		Members: []MemberInfo{
			{
				MemberID:      "member-1",
				Subscriptions: []string{"topic-b", "topic-a"},
			},
			{
				MemberID:      "member-2",
				Subscriptions: []string{"topic-b", "topic-c"},
			},
		},
	}

	assert.Equal(
		t,
		map[string]struct{}{
			"topic-a": {},
			"topic-b": {},
			"topic-c": {},
		},
		details.TopicsMap(),
	)
	assert.Equal(
		t,
		[]string{"topic-a", "topic-b", "topic-c"},
		details.Topics(),
	)
}

func TestGroupDetailsPartitionMembers(t *testing.T) {
	details := GroupDetails{
		GroupID: "test-group",
		State:   "Stable",
		Members: []MemberInfo{
			{
				MemberID: "member-1",
				TopicPartitions: map[string][]int{
					"topic-a": {0, 2},
					"topic-b": {1},
				},
			},
			{
				MemberID: "member-2",
				TopicPartitions: map[string][]int{
					"topic-a": {1},
				},
			},
		},
	}

	partitionMembers := details.PartitionMembers("topic-a")
	assert.Equal(t, 3, len(partitionMembers))
	assert.Equal(t, "member-1", partitionMembers[0].MemberID)
	assert.Equal(t, "member-2", partitionMembers[1].MemberID)
	assert.Equal(t, "member-1", partitionMembers[2].MemberID)

	assert.Equal(t, 0, len(details.PartitionMembers("topic-missing")))
}

func TestGroupDetailsAssignmentMembers(t *testing.T) {
	details := GroupDetails{
		GroupID: "test-group",
		State:   "Stable",
		Members: []MemberInfo{
			{
				MemberID:      "member-1",
				Subscriptions: []string{"topic-a", "topic-b"},
			},
			{
				MemberID:      "member-2",
				Subscriptions: []string{"topic-a"},
			},
		},
	}

	assert.Equal(
		t,
		[]assign.Member{
			{
				ID:     "member-1",
				Topics: []string{"topic-a", "topic-b"},
			},
			{
				ID:     "member-2",
				Topics: []string{"topic-a"},
			},
		},
		details.AssignmentMembers(),
	)
}

func TestGroupDetailsCurrentAssignments(t *testing.T) {
	details := GroupDetails{
		GroupID: "test-group",
		State:   "Stable",
		Members: []MemberInfo{
			{
				MemberID: "member-1",
				TopicPartitions: map[string][]int{
					"topic-b": {1},
					"topic-a": {0, 2},
				},
			},
			{
				MemberID:        "member-2",
				TopicPartitions: map[string][]int{},
			},
		},
	}

	assert.Equal(
		t,
		assign.MemberAssignments{
			"member-1": {
				{Topic: "topic-a", Partition: 0},
				{Topic: "topic-a", Partition: 2},
				{Topic: "topic-b", Partition: 1},
			},
			"member-2": {},
		},
		details.CurrentAssignments(),
	)
}

func TestMemberInfoNumPartitions(t *testing.T) {
	member := MemberInfo{
		MemberID: "member-1",
		TopicPartitions: map[string][]int{
			"topic-a": {0, 2},
			"topic-b": {1, 3, 5},
			"topic-c": {},
		},
	}
	assert.Equal(t, 5, member.NumPartitions())

	assert.Equal(t, 0, MemberInfo{MemberID: "member-2"}.NumPartitions())
}
