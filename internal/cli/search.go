package cli

import (
	"github.com/spf13/cobra"

	"github.com/mydehq/annictl/internal/annict"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search works by title, then optionally rename local files",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	works, err := client.SearchWorks(ctx, args[0])
	if err != nil {
		reportFetchError(err)
		return nil
	}
	if len(works) == 0 {
		logger.Info("No works matched", "query", args[0])
		return nil
	}
	printWorks(works)

	if !interactive() {
		return nil
	}

	work, err := selectWork(works)
	if err != nil {
		return cancelOrErr(err)
	}
	logger.Info("Selected", "work", work.Title, "id", work.ID)

	listings, err := client.ListEpisodes(ctx, work.ID)
	if err != nil {
		reportFetchError(err)
		return nil
	}
	printListings(work.ID, work.Title, listings)

	records := annict.UsableRecords(listings)
	if len(records) == 0 {
		logger.Warn("No episodes with usable numbers; rename unavailable")
		return nil
	}

	proceed, err := confirm("Rename local files with these titles?", "")
	if err != nil {
		return cancelOrErr(err)
	}
	if !proceed {
		logger.Info("Skipped file rename")
		return nil
	}

	dir, err := promptDir()
	if err != nil {
		return cancelOrErr(err)
	}

	return runRenameFlow(cfg, records, dir, renameOptions{})
}
