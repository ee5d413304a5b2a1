package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/groupctl/pkg/admin"
	"github.com/segmentio/groupctl/pkg/groups"
	log "github.com/sirupsen/logrus"
)

var (
	commandSuggestions = []prompt.Suggest{
		{
			Text:        "get",
			Description: "Get information about one or more resources in the cluster",
		},
		{
			Text:        "plan",
			Description: "Plan assignments for a consumer group",
		},
		{
			Text:        "check",
			Description: "Check the current assignments of a consumer group",
		},
		{
			Text:        "help",
			Description: "Show all commands",
		},
		{
			Text:        "exit",
			Description: "Quit the repl",
		},
	}

	getSuggestions = []prompt.Suggest{
		{
			Text:        "groups",
			Description: "Get all consumer groups",
		},
		{
			Text:        "members",
			Description: "Get members in a consumer group",
		},
		{
			Text:        "partitions",
			Description: "Get all partitions for a topic",
		},
		{
			Text:        "topics",
			Description: "Get all topics",
		},
	}

	helpTableStr = helpTable()
)

// Repl manages the repl mode for groupctl.
type Repl struct {
	cliRunner        *CLIRunner
	topicSuggestions []prompt.Suggest
	groupSuggestions []prompt.Suggest
}

// NewRepl initializes and returns a Repl instance.
func NewRepl(
	ctx context.Context,
	adminClient *admin.Client,
) (*Repl, error) {
	cliRunner := NewCLIRunner(
		adminClient,
		func(f string, a ...interface{}) {
			fmt.Printf("> ")
			fmt.Printf(f, a...)
			// Add newline since printf doesn't do this automatically
			fmt.Printf("\n")
		},
		true,
	)

	log.Debug("Loading topic names for auto-complete")
	topicNames, err := adminClient.GetTopicNames(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(topicNames, func(a, b int) bool {
		return topicNames[a] < topicNames[b]
	})

	topicSuggestions := []prompt.Suggest{}

	for _, topicName := range topicNames {
		topicSuggestions = append(
			topicSuggestions,
			prompt.Suggest{
				Text: topicName,
			},
		)
	}

	log.Debug("Loading consumer groups for auto-complete")
	groupCoordinators, err := groups.GetGroups(ctx, adminClient.GetConnector())
	if err != nil {
		log.Warnf(
			"Error getting groups for auto-complete: %+v; auto-complete might not be fully functional",
			err,
		)
	}

	groupSuggestions := []prompt.Suggest{}

	for _, groupCoordinator := range groupCoordinators {
		groupSuggestions = append(
			groupSuggestions,
			prompt.Suggest{
				Text:        groupCoordinator.GroupID,
				Description: fmt.Sprintf("Group %s", groupCoordinator.GroupID),
			},
		)
	}

	return &Repl{
		cliRunner:        cliRunner,
		topicSuggestions: topicSuggestions,
		groupSuggestions: groupSuggestions,
	}, nil
}

// Run starts the repl main loop.
func (r *Repl) Run() {
	fmt.Println("Welcome to the groupctl repl. Type 'help' for available commands.")

	promptObj := prompt.New(
		r.executor,
		r.completer,
		prompt.OptionPrefix(">>> "),
	)
	promptObj.Run()
}

func (r *Repl) executor(in string) {
	in = strings.TrimSpace(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
	defer signal.Stop(sigChan)

	command := parseReplInputs(in)
	if len(command.args) == 0 {
		return
	}

	switch command.args[0] {
	case "exit":
		fmt.Println("Bye!")
		os.Exit(0)
	case "get":
		if len(command.args) == 1 {
			log.Error("Unrecognized input. Run 'help' for details on available commands.")
			return
		}

		switch command.args[1] {
		case "groups":
			if err := command.checkArgs(2, 2, nil); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
			if err := r.cliRunner.GetGroups(ctx); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
		case "members":
			if err := command.checkArgs(3, 3, map[string]struct{}{"full": {}}); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
			if err := r.cliRunner.GetGroupMembers(
				ctx,
				command.args[2],
				command.getBoolValue("full"),
			); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
		case "partitions":
			if err := command.checkArgs(3, 3, nil); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
			if err := r.cliRunner.GetPartitions(ctx, command.args[2]); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
		case "topics":
			if err := command.checkArgs(2, 2, nil); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
			if err := r.cliRunner.GetTopics(ctx); err != nil {
				log.Errorf("Error: %+v", err)
				return
			}
		default:
			log.Error("Unrecognized input. Run 'help' for details on available commands.")
		}
	case "plan":
		if err := command.checkArgs(
			2,
			2,
			map[string]struct{}{"delimiter": {}, "full": {}},
		); err != nil {
			log.Errorf("Error: %+v", err)
			return
		}
		if err := r.cliRunner.PlanGroup(
			ctx,
			command.args[1],
			command.flags["delimiter"],
			command.getBoolValue("full"),
		); err != nil {
			log.Errorf("Error: %+v", err)
			return
		}
	case "check":
		if err := command.checkArgs(
			2,
			2,
			map[string]struct{}{"delimiter": {}},
		); err != nil {
			log.Errorf("Error: %+v", err)
			return
		}
		if err := r.cliRunner.CheckGroup(
			ctx,
			command.args[1],
			command.flags["delimiter"],
		); err != nil {
			log.Errorf("Error: %+v", err)
			return
		}
	case "help":
		if err := command.checkArgs(1, 1, nil); err != nil {
			log.Errorf("Error: %+v", err)
			return
		}

		fmt.Printf("> Commands:\n%s\n", helpTableStr)
		return
	default:
		if len(in) > 0 {
			log.Error("Unrecognized input. Run 'help' for details on available commands.")
		}
	}
}

func (r *Repl) completer(doc prompt.Document) []prompt.Suggest {
	var suggestions []prompt.Suggest
	text := doc.TextBeforeCursor()

	if text != "" {
		words := strings.Split(text, " ")
		if len(words) == 1 {
			suggestions = commandSuggestions
		} else if len(words) == 2 && words[0] == "get" {
			suggestions = getSuggestions
		} else if len(words) == 3 && words[0] == "get" && words[1] == "partitions" {
			suggestions = r.topicSuggestions
		} else if len(words) == 3 && words[0] == "get" && words[1] == "members" {
			suggestions = r.groupSuggestions
		} else if len(words) == 2 && (words[0] == "plan" || words[0] == "check") {
			suggestions = r.groupSuggestions
		}
	}

	return prompt.FilterHasPrefix(
		suggestions,
		doc.GetWordBeforeCursor(),
		true,
	)
}

func helpTable() string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(
		[]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
		},
	)
	table.SetColumnSeparator("")
	table.SetBorders(
		tablewriter.Border{
			Left:   false,
			Top:    false,
			Right:  false,
			Bottom: false,
		},
	)

	table.AppendBulk(
		[][]string{
			{
				"  get groups",
				"Get all consumer groups",
			},
			{
				"  get members [group] [--full]",
				"Get the members of a consumer group",
			},
			{
				"  get partitions [topic]",
				"Get all partitions for a topic",
			},
			{
				"  get topics",
				"Get all topics",
			},
			{
				"  plan [group] [--delimiter=] [--full]",
				"Plan assignments for the members of a consumer group",
			},
			{
				"  check [group] [--delimiter=]",
				"Check the current assignments of a consumer group",
			},
			{
				"  exit",
				"Exit the repl",
			},
		},
	)

	table.Render()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
