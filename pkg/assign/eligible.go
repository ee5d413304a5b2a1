package assign

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// EligibleTopics returns the topics that the assignment computation covers:
// those that appear in the argument metadata (topic name to partition count)
// and have at least one subscribing member. Topics a member subscribes to
// but that are missing from the metadata are excluded, as are topics with no
// subscribers. The result is sorted by topic name so that callers iterate
// deterministically.
func EligibleTopics(members []Member, partitionCounts map[string]int) []TopicMeta {
	subscribed := map[string]struct{}{}
	for _, member := range members {
		for _, topic := range member.Topics {
			subscribed[topic] = struct{}{}
		}
	}

	topics := []TopicMeta{}
	for topic := range subscribed {
		count, ok := partitionCounts[topic]
		if !ok {
			log.Debugf("Excluding subscribed topic %s with no metadata", topic)
			continue
		}
		topics = append(topics, TopicMeta{Name: topic, Partitions: count})
	}

	sort.Slice(topics, func(a, b int) bool {
		return topics[a].Name < topics[b].Name
	})

	return topics
}
