package admin

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// FormatTopics generates a pretty table that summarizes the argument topics.
func FormatTopics(topics []TopicInfo) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"Name",
			"Partitions",
		},
	)
	table.SetAutoWrapText(false)
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

	for _, topic := range topics {
		table.Append(
			[]string{
				topic.Name,
				fmt.Sprintf("%d", len(topic.Partitions)),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FormatTopicPartitions generates a pretty table with the details of each
// partition in a topic.
func FormatTopicPartitions(partitions []PartitionInfo) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(
		[]string{
			"ID",
			"Leader",
			"Replicas",
			"ISR",
		},
	)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(
		[]int{
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

	for _, partition := range partitions {
		table.Append(
			[]string{
				fmt.Sprintf("%d", partition.ID),
				fmt.Sprintf("%d", partition.Leader),
				fmt.Sprintf("%+v", partition.Replicas),
				fmt.Sprintf("%+v", partition.ISR),
			},
		)
	}

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
