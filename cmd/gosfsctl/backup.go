package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var backupFormat string

var backupCmd = &cobra.Command{
	Use:   "backup <image> <archive>",
	Short: "Compress an sfs image into a backup archive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := backupFormat
		if format == "" {
			format = formatFromExt(args[1])
		}
		if err := backupImage(args[0], args[1], format); err != nil {
			return err
		}
		logrus.Infof("backed up %s to %s (%s)", args[0], args[1], format)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupFormat, "format", "", "compression format: zstd or xz (default: guess from extension)")
}
