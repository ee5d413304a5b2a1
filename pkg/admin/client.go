package admin

import (
	"context"
	"errors"
	"sort"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// ErrTopicDoesNotExist is returned by GetTopic if the requested topic has no
// metadata in the cluster.
var ErrTopicDoesNotExist = errors.New("Topic does not exist")

// Client is a read-only admin client that fetches cluster metadata via the
// Kafka broker APIs.
type Client struct {
	connector *Connector
}

// NewClient constructs a new Client instance for the argument connection
// config.
func NewClient(config ConnectorConfig) (*Client, error) {
	connector, err := NewConnector(config)
	if err != nil {
		return nil, err
	}
	return &Client{connector: connector}, nil
}

// GetConnector returns the connector used by this client.
func (c *Client) GetConnector() *Connector {
	return c.connector
}

// GetBootstrapAddrs returns the broker addresses used by this client.
func (c *Client) GetBootstrapAddrs() []string {
	return []string{c.connector.Config.BrokerAddr}
}

// GetTopics fetches the details of each argument topic from the cluster
// metadata. If names is empty, all non-internal topics are returned. Topics
// for which the brokers report a metadata error are skipped.
func (c *Client) GetTopics(
	ctx context.Context,
	names []string,
) ([]TopicInfo, error) {
	var topicNames []string
	if len(names) > 0 {
		topicNames = names
	}

	metadataResp, err := c.connector.KafkaClient.Metadata(
		ctx,
		&kafka.MetadataRequest{
			Topics: topicNames,
		},
	)
	if err != nil {
		return nil, err
	}

	topicInfos := []TopicInfo{}

	for _, topic := range metadataResp.Topics {
		if topic.Error != nil {
			log.Debugf(
				"Skipping topic %s with metadata error: %+v",
				topic.Name,
				topic.Error,
			)
			continue
		}
		if len(names) == 0 && topic.Internal {
			continue
		}

		partitionInfos := []PartitionInfo{}

		for _, partition := range topic.Partitions {
			partitionInfos = append(
				partitionInfos,
				PartitionInfo{
					Topic:    topic.Name,
					ID:       partition.ID,
					Leader:   partition.Leader.ID,
					Replicas: brokerIDs(partition.Replicas),
					ISR:      brokerIDs(partition.Isr),
				},
			)
		}

		sort.Slice(partitionInfos, func(a, b int) bool {
			return partitionInfos[a].ID < partitionInfos[b].ID
		})

		topicInfos = append(
			topicInfos,
			TopicInfo{
				Name:       topic.Name,
				Partitions: partitionInfos,
			},
		)
	}

	sort.Slice(topicInfos, func(a, b int) bool {
		return topicInfos[a].Name < topicInfos[b].Name
	})

	return topicInfos, nil
}

// GetTopic fetches the details of a single topic.
func (c *Client) GetTopic(ctx context.Context, name string) (TopicInfo, error) {
	topicInfos, err := c.GetTopics(ctx, []string{name})
	if err != nil {
		return TopicInfo{}, err
	}
	for _, topicInfo := range topicInfos {
		if topicInfo.Name == name {
			return topicInfo, nil
		}
	}
	return TopicInfo{}, ErrTopicDoesNotExist
}

// GetTopicNames fetches the names of all non-internal topics in the cluster,
// sorted.
func (c *Client) GetTopicNames(ctx context.Context) ([]string, error) {
	topicInfos, err := c.GetTopics(ctx, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(topicInfos))
	for _, topicInfo := range topicInfos {
		names = append(names, topicInfo.Name)
	}
	return names, nil
}

// GetPartitionCounts fetches the partition count of each argument topic,
// keyed by topic name. Topics without metadata are absent from the result.
func (c *Client) GetPartitionCounts(
	ctx context.Context,
	names []string,
) (map[string]int, error) {
	topicInfos, err := c.GetTopics(ctx, names)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(topicInfos))
	for _, topicInfo := range topicInfos {
		counts[topicInfo.Name] = len(topicInfo.Partitions)
	}
	return counts, nil
}

// Close frees the resources held by this client.
func (c *Client) Close() error {
	return nil
}

func brokerIDs(brokers []kafka.Broker) []int {
	ids := make([]int, 0, len(brokers))
	for _, broker := range brokers {
		ids = append(ids, broker.ID)
	}
	return ids
}
