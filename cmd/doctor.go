package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcus/solsite/internal/git"
	"github.com/marcus/solsite/internal/models"
	"github.com/marcus/solsite/internal/site"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostic checks over the site tree and git repo",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(getBaseDir())
		return nil
	},
}

func runDoctor(root string) {
	u := site.NewUpdater(root)

	// 1. Per-game index documents
	for _, game := range models.Games {
		name := fmt.Sprintf("%s index", game)
		entries, err := u.Entries(game)
		switch {
		case errors.Is(err, site.ErrMissingFile):
			fmt.Printf("%s FAIL (not found)\n", dotted(name))
		case errors.Is(err, site.ErrMalformedDocument):
			fmt.Printf("%s FAIL (no entry block)\n", dotted(name))
		case err != nil:
			fmt.Printf("%s FAIL (%v)\n", dotted(name), err)
		default:
			fmt.Printf("%s OK (%d entries)\n", dotted(name), len(entries))
		}
	}

	// 2. Homepage markers
	markers, err := u.HomepageMarkers()
	if err != nil {
		fmt.Printf("%s FAIL (%v)\n", dotted("homepage"), err)
	} else if markers < 3 {
		fmt.Printf("%s FAIL (%d/3 markers)\n", dotted("homepage"), markers)
	} else {
		fmt.Printf("%s OK (3/3 markers)\n", dotted("homepage"))
	}

	// 3. Landing page heading and cards
	hasHeading, cards, err := u.LandingStats()
	switch {
	case err != nil:
		fmt.Printf("%s FAIL (%v)\n", dotted("landing page"), err)
	case !hasHeading:
		fmt.Printf("%s FAIL (no heading)\n", dotted("landing page"))
	case cards < len(models.Games):
		fmt.Printf("%s FAIL (%d/%d game cards)\n", dotted("landing page"), cards, len(models.Games))
	default:
		fmt.Printf("%s OK (%d game cards)\n", dotted("landing page"), cards)
	}

	// 4. Git repository
	if !git.IsRepo(root) {
		fmt.Printf("%s FAIL (not a git repository)\n", dotted("git repository"))
		return
	}
	state, err := git.GetState(root)
	if err != nil {
		fmt.Printf("%s FAIL (%v)\n", dotted("git repository"), err)
		return
	}
	if state.IsClean {
		fmt.Printf("%s OK (branch %s, clean)\n", dotted("git repository"), state.Branch)
	} else {
		fmt.Printf("%s OK (branch %s, %d dirty)\n", dotted("git repository"), state.Branch, state.DirtyFiles)
	}
}

// dotted pads a check name with trailing dots so statuses line up.
func dotted(name string) string {
	const width = 22
	if len(name) >= width {
		return name + " "
	}
	return name + " " + strings.Repeat(".", width-len(name))
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
