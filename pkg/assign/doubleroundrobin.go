package assign

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// DoubleRoundRobinAssigner distributes each topic's partitions round-robin
// across replica groups and, within the selected group, round-robin across
// that group's members. Groups are derived by sorting the topic's
// subscribers lexicographically and classifying adjacent ID pairs with the
// injected comparator.
//
// Advancing the group cursor once per partition means each group is offered
// partitions at the same rate regardless of its size, so a group's total
// share is roughly partitions/groups; a group's internal cursor only moves
// when that group is chosen, so its members split that share evenly. For
// example, with members m1a, m1b (replicas of each other) and m2, a six
// partition topic t0 is assigned as:
//
//	m1a: [t0:0, t0:4]
//	m1b: [t0:2]
//	m2:  [t0:1, t0:3, t0:5]
type DoubleRoundRobinAssigner struct {
	comparator Comparator
}

var _ Assigner = (*DoubleRoundRobinAssigner)(nil)

// NewDoubleRoundRobinAssigner creates and returns a DoubleRoundRobinAssigner
// using the argument comparator to detect replicas.
func NewDoubleRoundRobinAssigner(comparator Comparator) *DoubleRoundRobinAssigner {
	return &DoubleRoundRobinAssigner{comparator: comparator}
}

// Assign computes the full partition-to-member mapping for the argument
// membership snapshot and topic metadata. The computation is synchronous and
// deterministic: identical inputs always produce identical output.
//
// Topics with an invalid partition count contribute an error and no
// assignments; topics with no subscribing members are skipped, leaving their
// partitions unassigned. Every input member has an entry in the result,
// possibly empty, with its per-topic partition lists in ascending order.
func (a *DoubleRoundRobinAssigner) Assign(
	members []Member,
	topics []TopicMeta,
) (MemberAssignments, error) {
	assignments := make(MemberAssignments, len(members))
	for _, member := range members {
		assignments[member.ID] = []TopicPartition{}
	}

	var err error

	for _, topic := range topics {
		if topic.Partitions < 0 {
			err = multierror.Append(
				err,
				fmt.Errorf(
					"Topic %s has invalid partition count %d",
					topic.Name,
					topic.Partitions,
				),
			)
			continue
		}

		subscribers := []Member{}
		for _, member := range members {
			if member.SubscribesTo(topic.Name) {
				subscribers = append(subscribers, member)
			}
		}

		grouped := groupMembers(subscribers, a.comparator)
		if len(grouped.groups) == 0 {
			log.Debugf(
				"No eligible members for topic %s; leaving %d partitions unassigned",
				topic.Name,
				topic.Partitions,
			)
			continue
		}

		groupCursor := newRoundRobinCursor(len(grouped.groups))
		memberCursors := make([]roundRobinCursor, len(grouped.groups))
		for g, group := range grouped.groups {
			memberCursors[g] = newRoundRobinCursor(group.length)
		}

		for partition := 0; partition < topic.Partitions; partition++ {
			g := groupCursor.advance()
			group := grouped.groups[g]
			member := grouped.members[group.start+memberCursors[g].advance()]

			log.Debugf(
				"Member %s assigned topic %s partition %d",
				member.ID,
				topic.Name,
				partition,
			)
			assignments[member.ID] = append(
				assignments[member.ID],
				TopicPartition{Topic: topic.Name, Partition: partition},
			)
		}
	}

	return assignments, err
}
