package subcmd

import (
	"context"
	"strings"

	"github.com/segmentio/groupctl/pkg/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [group]",
	Short: "check the current assignments of a consumer group",
	Long: strings.Join(
		[]string{
			"Verifies that the current assignments of a consumer group are complete, non-overlapping, and balanced.",
			"Exits with an error if any check fails.",
		},
		"\n",
	),
	Args:    cobra.ExactArgs(1),
	PreRunE: checkPreRun,
	RunE:    checkRun,
}

type checkCmdConfig struct {
	delimiter string

	shared sharedOptions
}

var checkConfig checkCmdConfig

func init() {
	checkCmd.Flags().StringVar(
		&checkConfig.delimiter,
		"delimiter",
		"",
		"Delimiter used to group member IDs into replicas of the same consumer",
	)

	addSharedFlags(checkCmd, &checkConfig.shared)
	RootCmd.AddCommand(checkCmd)
}

func checkPreRun(cmd *cobra.Command, args []string) error {
	return checkConfig.shared.validate()
}

func checkRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	adminClient, err := checkConfig.shared.getAdminClient()
	if err != nil {
		return err
	}

	cliRunner := cli.NewCLIRunner(adminClient, log.Infof, !noSpinner)
	return cliRunner.CheckGroup(
		ctx,
		args[0],
		checkConfig.shared.getMemberDelimiter(checkConfig.delimiter),
	)
}
