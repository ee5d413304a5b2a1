package admin

// TopicInfo represents the summary of a Kafka topic as reported by the
// cluster metadata.
type TopicInfo struct {
	Name       string          `json:"name"`
	Partitions []PartitionInfo `json:"partitions"`
}

// PartitionInfo represents the state of a single topic partition.
type PartitionInfo struct {
	Topic    string `json:"topic"`
	ID       int    `json:"id"`
	Leader   int    `json:"leader"`
	Replicas []int  `json:"replicas"`
	ISR      []int  `json:"isr"`
}

// PartitionIDs returns the IDs of the partitions in this topic.
func (t TopicInfo) PartitionIDs() []int {
	ids := make([]int, 0, len(t.Partitions))
	for _, partition := range t.Partitions {
		ids = append(ids, partition.ID)
	}
	return ids
}

// PartitionCounts converts a slice of topic infos into a map of partition
// counts keyed by topic name.
func PartitionCounts(topics []TopicInfo) map[string]int {
	counts := make(map[string]int, len(topics))
	for _, topic := range topics {
		counts[topic.Name] = len(topic.Partitions)
	}
	return counts
}
