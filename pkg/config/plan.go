package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/segmentio/groupctl/pkg/assign"
)

// PlanConfig describes a set of group members and topics to run an assignment
// plan over without contacting a live cluster.
type PlanConfig struct {
	Meta PlanMeta `json:"meta"`
	Spec PlanSpec `json:"spec"`
}

// PlanMeta contains metadata about a plan config.
type PlanMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlanSpec contains the members and topics used as inputs to a plan.
type PlanSpec struct {
	// Delimiter is the delimiter used to split member IDs into replica keys.
	// If unset, a default of "-" is used.
	Delimiter string `json:"delimiter"`

	Members []PlanMember `json:"members"`
	Topics  []PlanTopic  `json:"topics"`
}

// PlanMember describes a single group member in a plan config.
type PlanMember struct {
	ID     string   `json:"id"`
	Topics []string `json:"topics"`
}

// PlanTopic describes a single topic in a plan config.
type PlanTopic struct {
	Name       string `json:"name"`
	Partitions int    `json:"partitions"`
}

// Validate evaluates whether the plan config is valid.
func (p PlanConfig) Validate() error {
	var err error

	if p.Meta.Name == "" {
		err = multierror.Append(err, errors.New("Name must be set"))
	}
	if len(p.Spec.Members) == 0 {
		err = multierror.Append(err, errors.New("At least one member must be set"))
	}

	memberIDs := map[string]struct{}{}
	for _, member := range p.Spec.Members {
		if member.ID == "" {
			err = multierror.Append(err, errors.New("Member IDs must be set"))
			continue
		}
		if _, ok := memberIDs[member.ID]; ok {
			err = multierror.Append(
				err,
				fmt.Errorf("Member ID %s appears multiple times", member.ID),
			)
		}
		memberIDs[member.ID] = struct{}{}
	}

	topicNames := map[string]struct{}{}
	for _, topic := range p.Spec.Topics {
		if topic.Name == "" {
			err = multierror.Append(err, errors.New("Topic names must be set"))
			continue
		}
		if _, ok := topicNames[topic.Name]; ok {
			err = multierror.Append(
				err,
				fmt.Errorf("Topic %s appears multiple times", topic.Name),
			)
		}
		topicNames[topic.Name] = struct{}{}

		if topic.Partitions < 0 {
			err = multierror.Append(
				err,
				fmt.Errorf("Topic %s has a negative partition count", topic.Name),
			)
		}
	}

	for _, member := range p.Spec.Members {
		for _, topic := range member.Topics {
			if _, ok := topicNames[topic]; !ok {
				err = multierror.Append(
					err,
					fmt.Errorf(
						"Member %s subscribes to topic %s which is not in the plan",
						member.ID,
						topic,
					),
				)
			}
		}
	}

	return err
}

// ToMembers converts the plan members into the inputs expected by an assigner.
func (p PlanConfig) ToMembers() []assign.Member {
	members := make([]assign.Member, 0, len(p.Spec.Members))

	for _, planMember := range p.Spec.Members {
		members = append(
			members,
			assign.Member{
				ID:     planMember.ID,
				Topics: planMember.Topics,
			},
		)
	}

	return members
}

// ToTopics converts the plan topics into the inputs expected by an assigner.
func (p PlanConfig) ToTopics() []assign.TopicMeta {
	topics := make([]assign.TopicMeta, 0, len(p.Spec.Topics))

	for _, planTopic := range p.Spec.Topics {
		topics = append(
			topics,
			assign.TopicMeta{
				Name:       planTopic.Name,
				Partitions: planTopic.Partitions,
			},
		)
	}

	return topics
}
