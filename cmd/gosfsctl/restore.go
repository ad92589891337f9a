package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restoreFormat string

var restoreCmd = &cobra.Command{
	Use:   "restore <archive> <image>",
	Short: "Decompress a backup archive into an sfs image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := restoreFormat
		if format == "" {
			format = formatFromExt(args[0])
		}
		if err := restoreImage(args[0], args[1], format); err != nil {
			return err
		}
		logrus.Infof("restored %s to %s (%s)", args[0], args[1], format)
		return nil
	},
}

func init() {
	restoreCmd.Flags().StringVar(&restoreFormat, "format", "", "compression format: zstd or xz (default: guess from extension)")
}
