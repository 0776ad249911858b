package console

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

// PrintStandings - writes a table of standings ordered by points, then by name.
func PrintStandings(out io.Writer, standings []*entity.Standing) error {
	sorted := make([]*entity.Standing, len(standings))
	copy(sorted, standings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points() != sorted[j].Points() {
			return sorted[i].Points() > sorted[j].Points()
		}
		return sorted[i].Name < sorted[j].Name
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROBOT\tPLAYED\tWON\tDRAWN\tLOST\tDISQUALIFIED\tPOINTS")
	for _, standing := range sorted {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			standing.Name,
			standing.Played(),
			standing.Wins,
			standing.Draws,
			standing.Losses,
			standing.Disqualifications,
			standing.Points(),
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print standings: %w", err)
	}

	return nil
}
