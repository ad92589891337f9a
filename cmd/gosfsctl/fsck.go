package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cerrnl/gosfs"
)

var fsckCmd = &cobra.Command{
	Use:   "fsck <image>",
	Short: "Check an sfs image for invariant violations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		vol, err := sfs.OpenFile(path)
		if err != nil {
			return err
		}
		defer vol.Close()

		findings := sfs.Check(vol)
		if len(findings) == 0 {
			logrus.Infof("%s: clean", path)
			return nil
		}
		for _, f := range findings {
			fmt.Println(f.String())
		}
		return fmt.Errorf("gosfsctl: %d inconsistencies found", len(findings))
	},
}
