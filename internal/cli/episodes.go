package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes <work-id>",
	Short: "List the episodes of a work by its Annict ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodes,
}

func init() {
	RootCmd.AddCommand(episodesCmd)
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	workID, err := strconv.Atoi(args[0])
	if err != nil {
		logger.Error("Work ID must be numeric", "got", args[0])
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	listings, err := client.ListEpisodes(cmd.Context(), workID)
	if err != nil {
		reportFetchError(err)
		return nil
	}
	if len(listings) == 0 {
		logger.Info("No episodes found", "work_id", workID)
		return nil
	}

	printListings(workID, "", listings)
	return nil
}
