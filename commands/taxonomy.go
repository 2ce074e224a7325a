package commands

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the slot and cluster labels of a view",
	Long: `Print the slot and cluster labels a view buckets notes into.

Examples:
  go-chronology taxonomy                          # Hours and 10-minute clusters
  go-chronology taxonomy --view week --week-start monday
  go-chronology taxonomy --24h`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTaxonomy,
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.TimelineSettings()
	if err != nil {
		return err
	}

	g, err := timeline.ParseGranularity(view)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tax, ok := timeline.TaxonomyFor(g, settings, model.NoteItem.Timestamp)
	if !ok {
		_, err = fmt.Fprintf(out, "No timeline for %s views.\n", g)
		return err
	}

	if _, err = fmt.Fprintf(out, "Slots (%d): %s\n", len(tax.Slots), strings.Join(tax.Slots, ", ")); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Clusters (%d): %s\n", len(tax.Clusters), strings.Join(tax.Clusters, ", "))
	return err
}
