package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/buildaux/internal/hostfs"
)

// NewRootCmd builds the buildaux command tree operating on host.
func NewRootCmd(host *hostfs.Host) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "buildaux",
		Short:         "Build-support utilities for the CMake build",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(0)
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	root.AddCommand(newVFSOverlayCmd(host))
	root.AddCommand(newSaveCacheCmd(host))
	return root
}

// Execute runs the root command.
func Execute() {
	host, err := hostfs.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := NewRootCmd(host).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
