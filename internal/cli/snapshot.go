package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jusunglee/metro-go/internal/loader"
)

func snapshotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot SRC DST",
		Short: "Convert a CSV or YAML station table into a protobuf snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := loader.WriteSnapshot(f, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			opts.log.Info("snapshot written", "src", args[0], "dst", args[1], "rows", len(rows))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), args[1])
			return nil
		},
	}
}
