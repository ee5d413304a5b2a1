package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/segmentio/groupctl/pkg/admin"
	"github.com/segmentio/groupctl/pkg/assign"
	"github.com/segmentio/groupctl/pkg/config"
	"github.com/segmentio/groupctl/pkg/groups"
)

const (
	spinnerCharSet  = 36
	spinnerDuration = 200 * time.Millisecond
)

// CLIRunner runs tool commands and prints the results for human consumption.
type CLIRunner struct {
	adminClient *admin.Client
	printer     func(f string, a ...interface{})
	spinnerObj  *spinner.Spinner
}

// NewCLIRunner creates and returns a new CLIRunner instance.
func NewCLIRunner(
	adminClient *admin.Client,
	printer func(f string, a ...interface{}),
	showSpinner bool,
) *CLIRunner {
	var spinnerObj *spinner.Spinner

	if showSpinner {
		spinnerObj = spinner.New(
			spinner.CharSets[spinnerCharSet],
			spinnerDuration,
			spinner.WithWriter(os.Stderr),
			spinner.WithHiddenCursor(true),
		)
		spinnerObj.Prefix = "Loading: "
	}

	return &CLIRunner{
		adminClient: adminClient,
		printer:     printer,
		spinnerObj:  spinnerObj,
	}
}

// GetGroups fetches all consumer groups in the cluster and prints out a
// summary of each one.
func (c *CLIRunner) GetGroups(ctx context.Context) error {
	c.startSpinner()

	groupCoordinators, err := groups.GetGroups(ctx, c.adminClient.GetConnector())
	c.stopSpinner()
	if err != nil {
		return err
	}

	c.printer("Groups:\n%s", groups.FormatGroupCoordinators(groupCoordinators))
	return nil
}

// GetGroupMembers fetches the membership of a single consumer group and
// prints out the details of each member.
func (c *CLIRunner) GetGroupMembers(ctx context.Context, groupID string, full bool) error {
	c.startSpinner()

	groupDetails, err := groups.GetGroupDetails(ctx, c.adminClient.GetConnector(), groupID)
	c.stopSpinner()
	if err != nil {
		return err
	}

	c.printer("Group state: %s", groupDetails.State)
	c.printer(
		"Group members (%d):\n%s",
		len(groupDetails.Members),
		groups.FormatGroupMembers(groupDetails.Members, full),
	)
	c.printer(
		"Member frequency by partition count:\n%s",
		groups.FormatMemberPartitionCounts(groupDetails.Members),
	)

	return nil
}

// GetTopics fetches the details of all topics in the cluster and prints out
// a summary of each one.
func (c *CLIRunner) GetTopics(ctx context.Context) error {
	c.startSpinner()

	topics, err := c.adminClient.GetTopics(ctx, nil)
	c.stopSpinner()
	if err != nil {
		return err
	}

	c.printer("Topics:\n%s", admin.FormatTopics(topics))

	return nil
}

// GetPartitions fetches the partitions of a single topic and prints out the
// details of each one.
func (c *CLIRunner) GetPartitions(ctx context.Context, topic string) error {
	c.startSpinner()

	topicInfo, err := c.adminClient.GetTopic(ctx, topic)
	c.stopSpinner()
	if err != nil {
		return err
	}

	c.printer(
		"Partitions for topic %s:\n%s",
		topic,
		admin.FormatTopicPartitions(topicInfo.Partitions),
	)

	return nil
}

// PlanGroup computes a fresh assignment for the members of a live consumer
// group and prints out the resulting plan.
func (c *CLIRunner) PlanGroup(
	ctx context.Context,
	groupID string,
	delimiter string,
	full bool,
) error {
	c.startSpinner()

	groupDetails, err := groups.GetGroupDetails(ctx, c.adminClient.GetConnector(), groupID)
	if err != nil {
		c.stopSpinner()
		return err
	}

	members := groupDetails.AssignmentMembers()

	topicNames := groupDetails.Topics()
	partitionCounts, err := c.adminClient.GetPartitionCounts(ctx, topicNames)
	c.stopSpinner()
	if err != nil {
		return err
	}

	topics := assign.EligibleTopics(members, partitionCounts)

	c.printer(
		"Planning assignments for group %s (state: %s, members: %d, topics: %d)",
		groupID,
		groupDetails.State,
		len(members),
		len(topics),
	)

	return c.planAssignments(members, topics, delimiter, full)
}

// PlanFile computes an assignment over the members and topics in a plan
// config and prints out the resulting plan.
func (c *CLIRunner) PlanFile(
	ctx context.Context,
	planConfig config.PlanConfig,
	delimiter string,
	full bool,
) error {
	if err := planConfig.Validate(); err != nil {
		return err
	}

	if delimiter == "" {
		delimiter = planConfig.Spec.Delimiter
	}

	members := planConfig.ToMembers()
	topics := planConfig.ToTopics()

	c.printer(
		"Planning assignments for plan %s (members: %d, topics: %d)",
		planConfig.Meta.Name,
		len(members),
		len(topics),
	)

	return c.planAssignments(members, topics, delimiter, full)
}

func (c *CLIRunner) planAssignments(
	members []assign.Member,
	topics []assign.TopicMeta,
	delimiter string,
	full bool,
) error {
	comparator := assign.NewPrefixComparator(delimiter)
	assigner := assign.NewDoubleRoundRobinAssigner(comparator)

	assignments, err := assigner.Assign(members, topics)
	if err != nil {
		return err
	}

	c.printer(
		"Assignments:\n%s",
		assign.FormatMemberAssignments(assignments, full),
	)

	balances, err := assign.EvaluateBalance(members, topics, comparator, assignments)
	if err != nil {
		return err
	}

	c.printer(
		"Balance per topic:\n%s",
		assign.FormatTopicBalances(balances),
	)

	return nil
}

// CheckGroup verifies that the current assignments of a live consumer group
// are complete, non-overlapping, and balanced.
func (c *CLIRunner) CheckGroup(ctx context.Context, groupID string, delimiter string) error {
	c.startSpinner()

	groupDetails, err := groups.GetGroupDetails(ctx, c.adminClient.GetConnector(), groupID)
	if err != nil {
		c.stopSpinner()
		return err
	}

	members := groupDetails.AssignmentMembers()

	topicNames := groupDetails.Topics()
	partitionCounts, err := c.adminClient.GetPartitionCounts(ctx, topicNames)
	c.stopSpinner()
	if err != nil {
		return err
	}

	topics := assign.EligibleTopics(members, partitionCounts)
	assignments := groupDetails.CurrentAssignments()

	if err := assign.CheckAssignments(members, topics, assignments); err != nil {
		return fmt.Errorf("Group %s assignments are invalid: %+v", groupID, err)
	}

	comparator := assign.NewPrefixComparator(delimiter)
	balances, err := assign.EvaluateBalance(members, topics, comparator, assignments)
	if err != nil {
		return err
	}

	c.printer(
		"Balance per topic:\n%s",
		assign.FormatTopicBalances(balances),
	)

	unbalanced := []string{}
	for _, balance := range balances {
		if !balance.Balanced() {
			unbalanced = append(unbalanced, balance.Topic)
		}
	}
	if len(unbalanced) > 0 {
		return fmt.Errorf(
			"Group %s has unbalanced topics: %+v",
			groupID,
			unbalanced,
		)
	}

	c.printer("Group %s assignments OK", groupID)
	return nil
}

func (c *CLIRunner) startSpinner() {
	if c.spinnerObj != nil {
		c.spinnerObj.Start()
	}
}

func (c *CLIRunner) stopSpinner() {
	if c.spinnerObj != nil && c.spinnerObj.Active() {
		c.spinnerObj.Stop()
	}
}
