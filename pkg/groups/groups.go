package groups

import (
	"context"
	"fmt"
	"sort"

	"github.com/segmentio/groupctl/pkg/admin"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// GetGroups fetches and returns information about all consumer groups in the cluster.
func GetGroups(
	ctx context.Context,
	connector *admin.Connector,
) ([]GroupCoordinator, error) {
	listGroupsResp, err := connector.KafkaClient.ListGroups(
		ctx,
		&kafka.ListGroupsRequest{},
	)

	// Don't immediately fail if err is non-nil; instead, just process and return
	// whatever results are returned.
	groupCoordinators := []GroupCoordinator{}

	for _, kafkaGroupInfo := range listGroupsResp.Groups {
		topicsList := []string{}
		topicsMap := map[string]bool{}

		describeGroupsRequest := kafka.DescribeGroupsRequest{
			GroupIDs: []string{kafkaGroupInfo.GroupID},
		}

		describeGroupsResponse, err := connector.KafkaClient.DescribeGroups(ctx, &describeGroupsRequest)
		if err != nil {
			log.Warnf("Cannot list topics for group :%s \n Error in describing group : %s", kafkaGroupInfo.GroupID, err)
		} else {
			if len(describeGroupsResponse.Groups) != 1 {
				log.Warnf("Cannot list topics for group :%s \n Unexpected response length: %d, from describeGroups", kafkaGroupInfo.GroupID, len(describeGroupsResponse.Groups))
			} else {
				groupMembers := describeGroupsResponse.Groups[0].Members
				for _, groupMember := range groupMembers {
					for _, topic := range groupMember.MemberMetadata.Topics {
						topicsMap[topic] = true
					}
				}

				for key := range topicsMap {
					topicsList = append(topicsList, key)
				}
				sort.Strings(topicsList)
			}
		}

		groupCoordinators = append(
			groupCoordinators,
			GroupCoordinator{
				GroupID:     kafkaGroupInfo.GroupID,
				Coordinator: int(kafkaGroupInfo.Coordinator),
				Topics:      topicsList,
			},
		)
	}

	sort.Slice(groupCoordinators, func(a, b int) bool {
		return groupCoordinators[a].GroupID < groupCoordinators[b].GroupID
	})

	return groupCoordinators, err
}

// GetGroupDetails returns the details (state, membership, subscriptions, and
// current assignments) for a single consumer group.
func GetGroupDetails(ctx context.Context, connector *admin.Connector, groupID string) (*GroupDetails, error) {
	req := kafka.DescribeGroupsRequest{
		GroupIDs: []string{groupID},
	}
	log.Debugf("DescribeGroups request: %+v", req)

	describeGroupsResponse, err := connector.KafkaClient.DescribeGroups(ctx, &req)
	if err != nil {
		return nil, err
	}
	log.Debugf("DescribeGroups response: %+v", describeGroupsResponse)

	if len(describeGroupsResponse.Groups) != 1 {
		return nil, fmt.Errorf("Unexpected response length from describeGroups")
	}
	group := describeGroupsResponse.Groups[0]

	groupDetails := GroupDetails{
		GroupID: group.GroupID,
		State:   group.GroupState,
		Members: []MemberInfo{},
	}
	for _, kafkaMember := range group.Members {
		member := MemberInfo{
			MemberID:        kafkaMember.MemberID,
			ClientID:        kafkaMember.ClientID,
			ClientHost:      kafkaMember.ClientHost,
			Subscriptions:   []string{},
			TopicPartitions: map[string][]int{},
		}

		member.Subscriptions = append(
			member.Subscriptions,
			kafkaMember.MemberMetadata.Topics...,
		)
		sort.Strings(member.Subscriptions)

		for _, assignments := range kafkaMember.MemberAssignments.Topics {
			partitions := []int{}

			for _, kafkaPartition := range assignments.Partitions {
				partitions = append(partitions, int(kafkaPartition))
			}

			sort.Slice(partitions, func(a, b int) bool {
				return partitions[a] < partitions[b]
			})

			member.TopicPartitions[assignments.Topic] = partitions
		}

		// Assignments might be missing, use the subscription metadata to fill
		// in any blanks
		for _, topic := range member.Subscriptions {
			if _, ok := member.TopicPartitions[topic]; !ok {
				member.TopicPartitions[topic] = []int{}
			}
		}

		groupDetails.Members = append(groupDetails.Members, member)
	}

	return &groupDetails, nil
}
