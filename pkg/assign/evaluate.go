package assign

import (
	"fmt"
)

// CheckAssignments verifies the structural invariants of an assignment
// against the membership snapshot and topic metadata it was computed from:
// every (topic, partition) pair of a topic with at least one subscriber is
// assigned to exactly one member, no pair appears twice, nothing outside the
// eligible set is assigned, and each member's per-topic partition list is
// strictly ascending.
func CheckAssignments(
	members []Member,
	topics []TopicMeta,
	assignments MemberAssignments,
) error {
	memberIDs := map[string]struct{}{}
	for _, member := range members {
		memberIDs[member.ID] = struct{}{}
	}

	subscriberCounts := map[string]int{}
	for _, topic := range topics {
		for _, member := range members {
			if member.SubscribesTo(topic.Name) {
				subscriberCounts[topic.Name]++
			}
		}
	}

	assigned := map[TopicPartition]string{}

	for memberID, topicPartitions := range assignments {
		if _, ok := memberIDs[memberID]; !ok {
			return fmt.Errorf("Assignment refers to unknown member %s", memberID)
		}

		lastPartition := map[string]int{}

		for _, tp := range topicPartitions {
			if owner, ok := assigned[tp]; ok {
				return fmt.Errorf(
					"Partition %s assigned to both %s and %s",
					tp,
					owner,
					memberID,
				)
			}
			assigned[tp] = memberID

			if last, ok := lastPartition[tp.Topic]; ok && tp.Partition <= last {
				return fmt.Errorf(
					"Partitions for member %s topic %s are not ascending",
					memberID,
					tp.Topic,
				)
			}
			lastPartition[tp.Topic] = tp.Partition
		}
	}

	expected := 0

	for _, topic := range topics {
		if subscriberCounts[topic.Name] == 0 {
			continue
		}
		expected += topic.Partitions

		for partition := 0; partition < topic.Partitions; partition++ {
			tp := TopicPartition{Topic: topic.Name, Partition: partition}
			if _, ok := assigned[tp]; !ok {
				return fmt.Errorf("Partition %s is unassigned", tp)
			}
		}
	}

	if len(assigned) != expected {
		return fmt.Errorf(
			"Assignment covers %d partitions, expected %d",
			len(assigned),
			expected,
		)
	}

	return nil
}

// TopicBalance summarizes how one topic's partitions were spread across the
// replica groups of its subscribers.
type TopicBalance struct {
	Topic        string
	Partitions   int
	Groups       int
	GroupSpread  int
	MemberSpread int
}

// Balanced determines whether the topic's spread is within the double
// round-robin fairness bounds: group totals within one of each other, and
// member totals within one of each other inside every group.
func (b TopicBalance) Balanced() bool {
	return b.GroupSpread <= 1 && b.MemberSpread <= 1
}

// EvaluateBalance recomputes the replica groups for each topic's subscribers
// and measures the argument assignment against the fairness bounds of the
// double round-robin strategy. Topics with no subscribers are skipped. An
// error is returned if a topic's partitions were assigned to a member that
// the grouper excluded as a duplicate.
func EvaluateBalance(
	members []Member,
	topics []TopicMeta,
	comparator Comparator,
	assignments MemberAssignments,
) ([]TopicBalance, error) {
	balances := []TopicBalance{}

	for _, topic := range topics {
		subscribers := []Member{}
		for _, member := range members {
			if member.SubscribesTo(topic.Name) {
				subscribers = append(subscribers, member)
			}
		}

		grouped := groupMembers(subscribers, comparator)
		if len(grouped.groups) == 0 {
			continue
		}

		counts := map[string]int{}
		for memberID, topicPartitions := range assignments {
			for _, tp := range topicPartitions {
				if tp.Topic == topic.Name {
					counts[memberID]++
				}
			}
		}

		surviving := map[string]struct{}{}
		for _, member := range grouped.members {
			surviving[member.ID] = struct{}{}
		}
		for memberID, count := range counts {
			if _, ok := surviving[memberID]; !ok && count > 0 {
				return nil, fmt.Errorf(
					"Duplicate member %s received %d partitions of topic %s",
					memberID,
					count,
					topic.Name,
				)
			}
		}

		balance := TopicBalance{
			Topic:      topic.Name,
			Partitions: topic.Partitions,
			Groups:     len(grouped.groups),
		}

		var minGroup, maxGroup int
		for g, group := range grouped.groups {
			groupTotal := 0
			var minMember, maxMember int

			for i := 0; i < group.length; i++ {
				count := counts[grouped.members[group.start+i].ID]
				groupTotal += count

				if i == 0 || count < minMember {
					minMember = count
				}
				if i == 0 || count > maxMember {
					maxMember = count
				}
			}

			if spread := maxMember - minMember; spread > balance.MemberSpread {
				balance.MemberSpread = spread
			}
			if g == 0 || groupTotal < minGroup {
				minGroup = groupTotal
			}
			if g == 0 || groupTotal > maxGroup {
				maxGroup = groupTotal
			}
		}
		balance.GroupSpread = maxGroup - minGroup

		balances = append(balances, balance)
	}

	return balances, nil
}
