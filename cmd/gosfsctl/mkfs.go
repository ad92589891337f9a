package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cerrnl/gosfs"
)

var mkfsCmd = &cobra.Command{
	Use:   "mkfs <image>",
	Short: "Create a fresh, empty sfs image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		dev, err := sfs.CreateDevice(path, sfs.ImageSize())
		if err != nil {
			return err
		}
		defer dev.Close()

		if err := sfs.Format(dev); err != nil {
			return err
		}
		logrus.Infof("formatted %s (%d bytes)", path, sfs.ImageSize())
		return nil
	},
}
