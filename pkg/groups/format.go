package groups

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/groupctl/pkg/util"
)

// FormatGroupCoordinators generates a pretty table from the results of a call to GetGroups.
func FormatGroupCoordinators(groupCoordinators []GroupCoordinator) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Group",
			"Coordinator",
			"Topics",
		},
	)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(
		[]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
		},
	)
	table.SetBorders(
		tablewriter.Border{
			Left:   false,
			Top:    true,
			Right:  false,
			Bottom: true,
		},
	)

	for _, groupCoordinator := range groupCoordinators {
		table.Append(
			[]string{
				groupCoordinator.GroupID,
				fmt.Sprintf("%d", groupCoordinator.Coordinator),
				strings.Join(groupCoordinator.Topics, ", "),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FormatGroupMembers generates a pretty table from a slice of MemberInfo details.
func FormatGroupMembers(members []MemberInfo, full bool) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Member ID",
			"Client Host",
			"Subscribed\nTopics",
			"Num\nPartitions",
			"Partition\nAssignments",
		},
	)
	table.SetAutoWrapText(true)
	table.SetColumnAlignment(
		[]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
		},
	)
	table.SetBorders(
		tablewriter.Border{
			Left:   false,
			Top:    true,
			Right:  false,
			Bottom: true,
		},
	)

	for _, member := range members {
		var clientHost string
		if strings.HasPrefix(member.ClientHost, "/") {
			clientHost = member.ClientHost[1:]
		} else {
			clientHost = member.ClientHost
		}

		var memberID string
		if full {
			memberID = member.MemberID
		} else {
			memberID, _ = util.TruncateStringMiddle(member.MemberID, 40, 5)
		}

		table.Append(
			[]string{
				memberID,
				clientHost,
				strings.Join(member.Subscriptions, ", "),
				fmt.Sprintf("%d", member.NumPartitions()),
				fmt.Sprintf("%+v", member.TopicPartitions),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FormatMemberPartitionCounts generates a pretty table that shows the
// distribution of partition counts across the group members.
func FormatMemberPartitionCounts(members []MemberInfo) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Num Partitions",
			"Num Members",
		},
	)
	table.SetAutoWrapText(true)
	table.SetColumnAlignment(
		[]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
		},
	)
	table.SetBorders(
		tablewriter.Border{
			Left:   false,
			Top:    true,
			Right:  false,
			Bottom: true,
		},
	)

	countKeys := []int{}
	membersByCount := map[int]int{}

	for _, member := range members {
		totalPartitions := member.NumPartitions()

		if _, ok := membersByCount[totalPartitions]; !ok {
			countKeys = append(countKeys, totalPartitions)
		}

		membersByCount[totalPartitions]++
	}

	sort.Slice(countKeys, func(a, b int) bool {
		return countKeys[a] < countKeys[b]
	})

	for _, countKey := range countKeys {
		table.Append(
			[]string{
				fmt.Sprintf("%d", countKey),
				fmt.Sprintf("%d", membersByCount[countKey]),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
