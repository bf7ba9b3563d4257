package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
	"github.com/marcus/solsite/internal/output"
	"github.com/marcus/solsite/internal/site"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:     "ls <game>",
	Aliases: []string{"list"},
	Short:   "List dated entries in a game's index",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game := models.Game(args[0])
		if !models.IsValidGame(game) {
			output.Error("unknown game %q (one of: %s)", args[0], gameNames())
			return fmt.Errorf("unknown game %q", args[0])
		}

		u := site.NewUpdater(getBaseDir())
		entries, err := u.Entries(game)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Code > entries[j].Code })

		jsonOut, _ := cmd.Flags().GetBool("json")
		if jsonOut {
			type entry struct {
				Code    string `json:"code"`
				Display string `json:"display"`
				File    string `json:"file"`
			}
			out := make([]entry, 0, len(entries))
			for _, e := range entries {
				out = append(out, entry{
					Code:    e.Code,
					Display: displayFor(e.Code),
					File:    site.PagePath(game, e.Code),
				})
			}
			return output.JSON(out)
		}

		if len(entries) == 0 {
			output.Info("No entries in %s", site.IndexPath(game))
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s\n", e.Code, displayFor(e.Code))
		}
		return nil
	},
}

// displayFor renders a code for display, falling back to the raw code for
// index entries that are format-valid but not calendar-valid.
func displayFor(code string) string {
	d, err := datecode.Parse(code)
	if err != nil {
		return code
	}
	return d.Display()
}

func gameNames() string {
	names := make([]string, len(models.Games))
	for i, g := range models.Games {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().Bool("json", false, "output as JSON")
}
