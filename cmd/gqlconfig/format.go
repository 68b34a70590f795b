package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildbuildio/gqlconfig/config"
	"github.com/buildbuildio/gqlconfig/format"
)

var formatCmd = &cobra.Command{
	Use:   "format <file> [file...]",
	Short: "Print config documents in canonical SDL",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().Bool("write", false, "rewrite files in place instead of printing to stdout")
	formatCmd.Flags().Bool("check", false, "exit non-zero if any file is not canonically formatted")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	if write && check {
		return fmt.Errorf("--write cannot be used with --check")
	}

	var dirty []string
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		fileFormat, err := config.DetectFormat(path)
		if err != nil {
			return err
		}

		cfg, err := config.Decode(src, fileFormat, path)
		if err != nil {
			return err
		}

		out := format.FormatConfig(cfg)
		switch {
		case check:
			if out != string(src) {
				dirty = append(dirty, path)
			}
		case write:
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return err
			}
		default:
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}

	if len(dirty) > 0 {
		for _, path := range dirty {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s is not canonically formatted\n", path)
		}
		return fmt.Errorf("%d file(s) need formatting", len(dirty))
	}
	return nil
}
