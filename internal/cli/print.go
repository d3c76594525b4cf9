package cli

import (
	"fmt"

	"github.com/mydehq/annictl/internal/annict"
	"github.com/mydehq/annictl/internal/planner"
	"github.com/mydehq/annictl/internal/renamer"
	"github.com/mydehq/annictl/internal/ui"
)

// printWorks lists search candidates in server order with 1-based indices.
func printWorks(works []annict.Work) {
	fmt.Println(ui.StyleHeader.Render("Search results"))
	for i, w := range works {
		fmt.Printf("  %s %s %s\n",
			ui.StyleDim.Render(fmt.Sprintf("[%d]", i+1)),
			ui.StyleCommand.Render(fmt.Sprintf("ID %d", w.ID)),
			w.Title,
		)
	}
}

// printListings shows every fetched episode, including entries with no
// resolvable number; those are dimmed and marked N/A.
func printListings(workID int, title string, listings []annict.Listing) {
	header := fmt.Sprintf("Episodes of work ID %d", workID)
	if title != "" {
		header = fmt.Sprintf("Episodes of %s (ID %d)", title, workID)
	}
	fmt.Println(ui.StyleHeader.Render(header))
	for _, l := range listings {
		if l.Number == nil {
			fmt.Println(ui.StyleDim.Render(fmt.Sprintf("  NUM: N/A | %s", l.Title)))
			continue
		}
		fmt.Printf("  NUM: %-3d | %s\n", *l.Number, l.Title)
	}
}

// printFiles shows the natural-sorted file list with the 1-based indices the
// offset prompt refers to.
func printFiles(files []string) {
	fmt.Println(ui.StyleHeader.Render("Sorted files"))
	for i, f := range files {
		fmt.Printf("  %s %s\n", ui.StyleDim.Render(fmt.Sprintf("[%d]", i+1)), ui.StylePath.Render(f))
	}
}

// printPlan shows the proposed mapping plus any files left unplanned.
func printPlan(plan *planner.Plan) {
	fmt.Println(ui.StyleHeader.Render("Rename plan"))
	for _, e := range plan.Entries {
		fmt.Printf("  %s %s %s\n",
			ui.StylePath.Render(e.OldName),
			ui.StyleDim.Render("->"),
			ui.StyleCommand.Render(e.NewName),
		)
	}
	for _, f := range plan.Unplanned {
		fmt.Println(ui.StyleWarn.Render(fmt.Sprintf("  %s (no episode, left as is)", f)))
	}
}

// reportResults prints the per-file outcomes and a summary count.
func reportResults(results []renamer.Result) {
	var renamed, failed int
	for _, r := range results {
		if r.Renamed() {
			renamed++
			logger.Info("Renamed", "from", r.OldName, "to", r.NewName)
		} else {
			failed++
			logger.Error("Rename failed", "file", r.OldName, "error", r.Err)
		}
	}
	logger.Info("Summary",
		"renamed", ui.StyleCommand.Render(fmt.Sprint(renamed)),
		"failed", ui.StyleWarn.Render(fmt.Sprint(failed)),
	)
}
