package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Ram-Pam-Pam/Projekt/internal/ranking"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/scoring"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/session"
	"github.com/Ram-Pam-Pam/Projekt/internal/visual"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	var (
		templateID string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the district ranking for a business template",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := weights.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("weights.DefaultCatalog: %w", err)
			}
			h, err := catalog.ResetToTemplate(templateID)
			if err != nil {
				return err
			}
			dataset, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}

			if noColor {
				color.Disable()
			} else {
				color.Enable()
			}
			return printRanking(cmd.OutOrStdout(), dataset, h)
		},
	}
	cmd.Flags().StringVar(&templateID, "template", session.DefaultTemplateID, "business template id")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}

func printRanking(out io.Writer, dataset *reference.Dataset, h *weights.Hierarchy) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tDISTRICT\tTYPE\tSCORE\n")
	for i, d := range ranking.Districts(scoring.ScoreDistricts(dataset, h)) {
		score := d.MatchScore
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, d.District.Name, d.District.Type, visual.Terminal(&score, fmt.Sprintf("%3d", score)))
	}
	return w.Flush()
}
