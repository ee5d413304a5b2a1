package assign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignerTestCase struct {
	description string
	members     []Member
	topics      []TopicMeta
	expected    MemberAssignments
	err         bool
}

func (a assignerTestCase) evaluate(t *testing.T, assigner Assigner) {
	actual, err := assigner.Assign(a.members, a.topics)
	if a.err {
		require.NotNil(t, err, a.description)
	} else {
		require.Nil(t, err, a.description)

		assert.NoError(
			t,
			CheckAssignments(a.members, a.topics, actual),
			a.description,
		)
		assert.Equal(
			t,
			a.expected,
			actual,
			a.description,
		)
	}
}

// testMembers generates a membership snapshot with the argument number of
// logical consumers, each replicated the argument number of times, all
// subscribed to the same topics. IDs follow the consumerNN-R convention so
// that the default PrefixComparator clusters replicas together.
func testMembers(numConsumers int, replicasPerConsumer int, topics ...string) []Member {
	members := []Member{}

	for c := 0; c < numConsumers; c++ {
		for r := 0; r < replicasPerConsumer; r++ {
			members = append(
				members,
				Member{
					ID:     fmt.Sprintf("consumer%02d-%d", c, r),
					Topics: topics,
				},
			)
		}
	}

	return members
}

// pairComparator builds a comparator from an explicit relation table keyed by
// "a|b"; unlisted pairs are Distinct.
func pairComparator(relations map[string]Relation) Comparator {
	return ComparatorFunc(func(a string, b string) Relation {
		return relations[a+"|"+b]
	})
}
