package assign

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/groupctl/pkg/util"
)

// FormatMemberAssignments generates a pretty table from the results of a
// call to Assign.
func FormatMemberAssignments(assignments MemberAssignments, full bool) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Member ID",
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

	for _, fullID := range assignments.MemberIDs() {
		var memberID string
		if full {
			memberID = fullID
		} else {
			memberID, _ = util.TruncateStringMiddle(fullID, 40, 5)
		}

		table.Append(
			[]string{
				memberID,
				fmt.Sprintf("%d", len(assignments[fullID])),
				fmt.Sprintf("%+v", assignments.PartitionsByTopic(fullID)),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FormatTopicBalances generates a pretty table from the results of a call to
// EvaluateBalance. Unbalanced rows are highlighted in red if we're running
// in a terminal.
func FormatTopicBalances(balances []TopicBalance) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Topic",
			"Partitions",
			"Groups",
			"Group\nSpread",
			"Member\nSpread",
			"Balanced",
		},
	)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(
		[]int{
			tablewriter.ALIGN_LEFT,
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

	for _, balance := range balances {
		var balancedPrinter func(f string, a ...interface{}) string
		if !util.InTerminal() || balance.Balanced() {
			balancedPrinter = fmt.Sprintf
		} else {
			balancedPrinter = color.New(color.FgRed).SprintfFunc()
		}

		table.Append(
			[]string{
				balance.Topic,
				fmt.Sprintf("%d", balance.Partitions),
				fmt.Sprintf("%d", balance.Groups),
				fmt.Sprintf("%d", balance.GroupSpread),
				fmt.Sprintf("%d", balance.MemberSpread),
				balancedPrinter("%v", balance.Balanced()),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
