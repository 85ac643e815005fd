package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/buildaux/internal/cmakecache"
	"github.com/agentic-research/buildaux/internal/hostfs"
)

func newSaveCacheCmd(host *hostfs.Host) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "save-cache -o OUTPUT CACHEFILE",
		Short: "Save configure-check results from a CMake cache",
		Long: `Reads a CMakeCache.txt and writes the internal configure-check
results (CMAKE_HAVE_*, HAVE_*, SIZEOF_*, curl_cv_*) to a script usable
with cmake -C. The saved entries are also listed on stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := host.Open(args[0])
			if err != nil {
				return fmt.Errorf("open cache file: %w", err)
			}
			cache, err := cmakecache.Load(in)
			_ = in.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out, err := host.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer func() {
				if cerr := out.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close output: %w", cerr)
				}
			}()

			if err := cmakecache.WriteListing(cmd.OutOrStdout(), cache); err != nil {
				return err
			}
			bw := bufio.NewWriter(out)
			if err := cmakecache.WriteScript(bw, cache); err != nil {
				return fmt.Errorf("write script: %w", err)
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("write script: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output .cmake file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
