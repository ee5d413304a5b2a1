package assign

import (
	"fmt"
	"sort"
)

// Member is a snapshot of a single consumer group member going into a
// rebalance: its unique ID plus the topics that it subscribes to.
type Member struct {
	ID     string
	Topics []string
}

// SubscribesTo determines whether the member subscribes to the argument topic.
func (m Member) SubscribesTo(topic string) bool {
	for _, t := range m.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// TopicMeta describes a topic that is a candidate for assignment: its name
// and the number of partitions it has according to cluster metadata.
type TopicMeta struct {
	Name       string
	Partitions int
}

// TopicPartition identifies a single partition within a topic.
type TopicPartition struct {
	Topic     string
	Partition int
}

func (t TopicPartition) String() string {
	return fmt.Sprintf("%s:%d", t.Topic, t.Partition)
}

// MemberAssignments maps each member ID to an ordered list of the
// (topic, partition) pairs assigned to it. Every input member has an entry,
// possibly empty.
type MemberAssignments map[string][]TopicPartition

// MemberIDs returns the member IDs in the assignment, sorted.
func (m MemberAssignments) MemberIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PartitionsByTopic regroups a single member's assignment list by topic,
// preserving the per-topic partition order.
func (m MemberAssignments) PartitionsByTopic(memberID string) map[string][]int {
	byTopic := map[string][]int{}
	for _, tp := range m[memberID] {
		byTopic[tp.Topic] = append(byTopic[tp.Topic], tp.Partition)
	}
	return byTopic
}

// Assigner is an interface for strategies that figure out which group member
// each topic partition should be consumed by.
type Assigner interface {
	Assign(members []Member, topics []TopicMeta) (MemberAssignments, error)
}
