// Package cmd is the command-line front-end around the stew engine,
// following the teacher's cobra-rooted layout (pkg/cmd holding the root
// command and subcommands, cmd/stew holding only the main entrypoint).
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (go build -ldflags "-X ...").
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stew",
	Short: "An order-sorted term-rewriting engine.",
	Long:  "A small command-line front-end around the stew term-rewriting engine and its demo specification.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		} else if GetFlag(cmd, "quiet") {
			log.SetLevel(log.ErrorLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Println("stew", versionString())
			return
		}

		_ = cmd.Help()
	},
}

func versionString() string {
	if Version != "" {
		return Version
	}

	return "(unknown version)"
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug-level rule tracing")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all but error-level logging")
}

// GetFlag gets an expected boolean flag, exiting if the flag is undeclared.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
