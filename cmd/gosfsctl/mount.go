package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cerrnl/gosfs"
)

var (
	flagBackground bool
	flagImg        string
)

var mountCmd = &cobra.Command{
	Use:   "mount <mountpoint>",
	Short: "Mount an sfs image over FUSE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath, mountPoint := flagImg, args[0]

		vol, err := sfs.OpenFile(imagePath)
		if err != nil {
			return err
		}

		root := &fsNode{vol: vol, path: "/"}
		server, err := fs.Mount(mountPoint, root, &fs.Options{
			MountOptions: fuse.MountOptions{
				Debug:      flagVerbose,
				FsName:     "gosfs",
				Name:       "sfs",
				AllowOther: false,
			},
		})
		if err != nil {
			vol.Close()
			return err
		}
		logrus.Infof("mounted %s at %s", imagePath, mountPoint)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sig
			logrus.Info("signal received, unmounting")
			server.Unmount()
		}()

		if flagBackground {
			go func() {
				server.Wait()
				vol.Close()
			}()
			return nil
		}

		server.Wait()
		return vol.Close()
	},
}

func init() {
	mountCmd.Flags().StringVarP(&flagImg, "img", "i", "test.img", "path to the sfs image to mount")
	mountCmd.Flags().BoolVarP(&flagBackground, "background", "b", false, "mount and return immediately instead of blocking")
}
