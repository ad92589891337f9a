package main

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagVerbose bool
	flagConfig  string
)

const configFileName = "gosfsctl.yaml"

var rootCmd = &cobra.Command{
	Use:   "gosfsctl",
	Short: "Mount, format and check Simple File System images",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default $HOME/gosfsctl.yaml)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initConfig()
		if flagVerbose || viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(mountCmd, mkfsCmd, fsckCmd, backupCmd, restoreCmd)
}

func initConfig() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
	} else if home, err := homedir.Dir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, configFileName))
	}

	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("using config file: %s", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
