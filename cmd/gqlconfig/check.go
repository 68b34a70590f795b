package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildbuildio/gqlconfig/format"
	"github.com/buildbuildio/gqlconfig/linker"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Resolve links, merge and validate a config document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("print", false, "print the merged config as canonical SDL")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	printMerged, err := cmd.Flags().GetBool("print")
	if err != nil {
		return err
	}

	res, err := linker.New().WithLogger(logger).Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err := res.Config.Validate(); err != nil {
		return err
	}

	if printMerged {
		fmt.Fprint(cmd.OutOrStdout(), format.FormatConfig(res.Config))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
	return nil
}
