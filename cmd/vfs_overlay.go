package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentic-research/buildaux/internal/hostfs"
	"github.com/agentic-research/buildaux/internal/overlay"
)

func newVFSOverlayCmd(host *hostfs.Host) *cobra.Command {
	var (
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "vfs-overlay [flags] DIR...",
		Short: "Generate a case-insensitive Clang VFS overlay",
		Long: `Walks each search directory and writes a Clang VFS overlay that maps
every file to itself with case-insensitive lookup. Pass the result to
clang with -ivfsoverlay.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := overlay.ParseFormat(format)
			if err != nil {
				return err
			}

			roots := make([]string, len(args))
			for i, dir := range args {
				roots[i] = host.Abs(dir)
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				out, cerr := host.Create(outputPath)
				if cerr != nil {
					return fmt.Errorf("create output: %w", cerr)
				}
				defer func() {
					if cerr := out.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close output: %w", cerr)
					}
				}()
				w = out
			}

			bw := bufio.NewWriter(w)
			defer func() {
				if ferr := bw.Flush(); ferr != nil && err == nil {
					err = fmt.Errorf("write overlay: %w", ferr)
				}
			}()

			enc, err := overlay.NewEncoder(f, bw)
			if err != nil {
				return err
			}
			return overlay.Generate(host.FS, enc, roots...)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", string(overlay.FormatYAML), "Overlay syntax: yaml or json")
	return cmd
}
