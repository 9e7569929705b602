package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackloop/trackloop/pkg/track"
)

// catalogCommand creates the catalog command, which lists the piece kinds
// with their local geometry.
func (c *CLI) catalogCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the piece kinds and their geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeResult(catalogRecords(), "")
			}
			fmt.Println(StyleTitle.Render("Piece catalog"))
			for _, k := range track.Kinds() {
				g := track.PieceGeometry(k)
				printKeyValue(string(k), fmt.Sprintf(
					"disp (%.4f, %.4f)  turn %+.4f rad  mirror %s",
					g.Disp.X, g.Disp.Y, g.Turn, track.Flip(k)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the catalog as JSON")

	return cmd
}

// catalogRecord is the JSON shape of one catalog entry.
type catalogRecord struct {
	Kind   string  `json:"kind"`
	DispX  float64 `json:"disp_x"`
	DispY  float64 `json:"disp_y"`
	Turn   float64 `json:"turn"`
	Mirror string  `json:"mirror"`
}

func catalogRecords() []catalogRecord {
	kinds := track.Kinds()
	records := make([]catalogRecord, 0, len(kinds))
	for _, k := range kinds {
		g := track.PieceGeometry(k)
		records = append(records, catalogRecord{
			Kind:   string(k),
			DispX:  g.Disp.X,
			DispY:  g.Disp.Y,
			Turn:   g.Turn,
			Mirror: string(track.Flip(k)),
		})
	}
	return records
}
