package groups

import (
	"sort"

	"github.com/segmentio/groupctl/pkg/assign"
	log "github.com/sirupsen/logrus"
)

// GroupCoordinator stores the coordinator broker and subscribed topics for a
// single consumer group.
type GroupCoordinator struct {
	GroupID     string
	Coordinator int
	Topics      []string
}

// GroupDetails stores the state and members for a consumer group.
type GroupDetails struct {
	GroupID string
	State   string
	Members []MemberInfo
}

// TopicsMap returns a map of all the topics subscribed to by the current group.
func (g GroupDetails) TopicsMap() map[string]struct{} {
	topicsMap := map[string]struct{}{}

	for _, member := range g.Members {
		for _, topic := range member.Subscriptions {
			topicsMap[topic] = struct{}{}
		}
	}

	return topicsMap
}

// Topics returns a sorted slice of all the topics subscribed to by the
// current group.
func (g GroupDetails) Topics() []string {
	topics := []string{}

	for topic := range g.TopicsMap() {
		topics = append(topics, topic)
	}

	sort.Strings(topics)
	return topics
}

// PartitionMembers returns the members for each partition in the argument topic.
func (g GroupDetails) PartitionMembers(topic string) map[int]MemberInfo {
	partitionsMap := map[int]MemberInfo{}

	for _, member := range g.Members {
		partitions := member.TopicPartitions[topic]
		if len(partitions) > 0 {
			for _, partition := range partitions {
				if _, ok := partitionsMap[partition]; ok {
					log.Warnf("Multiple members assigned to partition %d", partition)
				}

				partitionsMap[partition] = member
			}
		}
	}

	return partitionsMap
}

// AssignmentMembers converts the group membership into the inputs expected
// by an assigner.
func (g GroupDetails) AssignmentMembers() []assign.Member {
	members := make([]assign.Member, 0, len(g.Members))

	for _, member := range g.Members {
		members = append(
			members,
			assign.Member{
				ID:     member.MemberID,
				Topics: member.Subscriptions,
			},
		)
	}

	return members
}

// CurrentAssignments converts the assignments currently held by the group
// members into the format produced by an assigner.
func (g GroupDetails) CurrentAssignments() assign.MemberAssignments {
	assignments := assign.MemberAssignments{}

	for _, member := range g.Members {
		memberPartitions := []assign.TopicPartition{}

		topics := []string{}
		for topic := range member.TopicPartitions {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		for _, topic := range topics {
			for _, partition := range member.TopicPartitions[topic] {
				memberPartitions = append(
					memberPartitions,
					assign.TopicPartition{
						Topic:     topic,
						Partition: partition,
					},
				)
			}
		}

		assignments[member.MemberID] = memberPartitions
	}

	return assignments
}

// MemberInfo stores information about a single consumer group member.
type MemberInfo struct {
	MemberID        string
	ClientID        string
	ClientHost      string
	Subscriptions   []string
	TopicPartitions map[string][]int
}

// NumPartitions returns the total number of partitions currently assigned to
// this member across all topics.
func (m MemberInfo) NumPartitions() int {
	total := 0

	for _, partitions := range m.TopicPartitions {
		total += len(partitions)
	}

	return total
}
