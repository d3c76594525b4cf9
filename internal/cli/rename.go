package cli

import (
	"github.com/spf13/cobra"

	"github.com/mydehq/annictl/internal/annict"
)

var (
	flagWorkID int
	flagOffset int
	flagYes    bool
	flagDryRun bool
)

var renameCmd = &cobra.Command{
	Use:   "rename <dir>",
	Short: "Rename the video files in a directory using a work's episode list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRename,
}

func init() {
	renameCmd.Flags().IntVarP(&flagWorkID, "id", "i", 0, "Annict work ID (required)")
	renameCmd.Flags().IntVarP(&flagOffset, "offset", "o", 1, "1-based index of the first file to rename")
	renameCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	renameCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "Show the plan without renaming")
	_ = renameCmd.MarkFlagRequired("id")
	RootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	listings, err := client.ListEpisodes(cmd.Context(), flagWorkID)
	if err != nil {
		reportFetchError(err)
		return nil
	}
	printListings(flagWorkID, "", listings)

	records := annict.UsableRecords(listings)
	if len(records) == 0 {
		logger.Warn("No episodes with usable numbers; nothing to rename")
		return nil
	}

	return runRenameFlow(cfg, records, args[0], renameOptions{
		Offset:    flagOffset,
		HasOffset: cmd.Flags().Changed("offset"),
		AssumeYes: flagYes,
		DryRun:    flagDryRun,
	})
}
