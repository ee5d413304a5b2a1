package subcmd

import (
	"context"
	"errors"
	"strings"

	"github.com/segmentio/groupctl/pkg/cli"
	"github.com/segmentio/groupctl/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [group]",
	Short: "plan assignments for a consumer group",
	Long: strings.Join(
		[]string{
			"Computes partition assignments for the members of a consumer group.",
			"Either pass the ID of a live group or use --file to plan over the members and topics in a plan config.",
		},
		"\n",
	),
	Args:    cobra.MaximumNArgs(1),
	PreRunE: planPreRun,
	RunE:    planRun,
}

type planCmdConfig struct {
	delimiter string
	file      string
	full      bool

	shared sharedOptions
}

var planConfig planCmdConfig

func init() {
	planCmd.Flags().StringVar(
		&planConfig.delimiter,
		"delimiter",
		"",
		"Delimiter used to group member IDs into replicas of the same consumer",
	)
	planCmd.Flags().StringVarP(
		&planConfig.file,
		"file",
		"f",
		"",
		"Path to a plan config to use instead of a live group",
	)
	planCmd.Flags().BoolVar(
		&planConfig.full,
		"full",
		false,
		"Show full member IDs in the output",
	)

	addSharedFlags(planCmd, &planConfig.shared)
	RootCmd.AddCommand(planCmd)
}

func planPreRun(cmd *cobra.Command, args []string) error {
	if planConfig.file != "" {
		if len(args) > 0 {
			return errors.New("Cannot pass both a group ID and --file")
		}
		return nil
	}
	if len(args) == 0 {
		return errors.New("Must pass either a group ID or --file")
	}
	return planConfig.shared.validate()
}

func planRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if planConfig.file != "" {
		planFileConfig, err := config.LoadPlanFile(planConfig.file, planConfig.shared.expandEnv)
		if err != nil {
			return err
		}

		cliRunner := cli.NewCLIRunner(nil, log.Infof, !noSpinner)
		return cliRunner.PlanFile(
			ctx,
			planFileConfig,
			planConfig.delimiter,
			planConfig.full,
		)
	}

	adminClient, err := planConfig.shared.getAdminClient()
	if err != nil {
		return err
	}

	cliRunner := cli.NewCLIRunner(adminClient, log.Infof, !noSpinner)
	return cliRunner.PlanGroup(
		ctx,
		args[0],
		planConfig.shared.getMemberDelimiter(planConfig.delimiter),
		planConfig.full,
	)
}
