package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/x/fsutil"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Remove files and directories, ignoring missing ones",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		logger.Info("removing", "path", path)
		if info.IsDir() {
			err = fsutil.DeleteDir(path)
		} else {
			err = fsutil.DeleteFile(path)
		}
		if err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}
