package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/marcus/solsite/internal/config"
	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/git"
	"github.com/marcus/solsite/internal/models"
	"github.com/marcus/solsite/internal/output"
	"github.com/marcus/solsite/internal/site"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <YYYYMMDD>",
	Short: "Insert a day's entries across the site and commit them",
	Long: `Runs the full daily update for one date code: merges the entry into each
game's index, generates the daily pages, patches the homepage and the
"today" landing page, then commits the changed files on a branch named
after the date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := args[0]

		// Shape check only; calendar validity is the date parser's job.
		// Rejected before any file I/O happens.
		if !datecode.IsCode(code) {
			output.Error("date must be 8 digits in YYYYMMDD form, e.g. 20250923")
			return fmt.Errorf("invalid date code %q", code)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		noPublish, _ := cmd.Flags().GetBool("no-publish")
		confirm, _ := cmd.Flags().GetBool("confirm")

		return runAdd(getBaseDir(), code, addOptions{
			DryRun:    dryRun,
			NoPublish: noPublish,
			Confirm:   confirm,
		})
	},
}

type addOptions struct {
	DryRun    bool
	NoPublish bool
	Confirm   bool
}

// runAdd performs every file mutation for one date and then the publish
// step. Per-document failures are reported and skipped; the rest of the run
// continues. Only the publish step can fail the run as a whole.
func runAdd(root, code string, opts addOptions) error {
	date, err := datecode.Parse(code)
	if err != nil {
		output.Error("%v", err)
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		output.Error("failed to load config: %v", err)
		return err
	}

	u := &site.Updater{
		Root:     root,
		SiteName: cfg.SiteNameOrDefault(),
		DryRun:   opts.DryRun,
	}
	changes := &site.ChangeSet{}

	for _, game := range models.Games {
		mergeIndex(u, game, date, changes)
		generatePage(u, game, date, changes)
	}

	switch changed, err := u.PatchHomepage(date); {
	case err != nil:
		output.Error("%v", err)
	case changed:
		output.Success("Updated %s with %s", site.HomepagePath, date.Display())
		changes.Add(site.HomepagePath)
	default:
		output.Warning("%s already up to date", site.HomepagePath)
	}

	switch changed, err := u.PatchLandingPage(date); {
	case err != nil:
		output.Error("%v", err)
	case changed:
		output.Success("Updated %s for %s", site.LandingPath, date.Display())
		changes.Add(site.LandingPath)
	default:
		output.Warning("%s already up to date", site.LandingPath)
	}

	if changes.Empty() {
		output.Warning("No changes to commit.")
		return nil
	}

	if opts.DryRun {
		output.Info("Dry run: %d file(s) would change:", len(changes.Paths()))
		for _, p := range changes.Paths() {
			output.Subtle("  %s", p)
		}
		return nil
	}

	if opts.NoPublish || !cfg.PublishEnabled() {
		output.Info("Skipping publish (%d file(s) changed)", len(changes.Paths()))
		return nil
	}

	if opts.Confirm && !confirmPublish(code, changes) {
		output.Warning("Publish aborted.")
		return nil
	}

	return publish(root, code, changes)
}

func mergeIndex(u *site.Updater, game models.Game, date datecode.Date, changes *site.ChangeSet) {
	rel := site.IndexPath(game)
	changed, err := u.MergeEntry(game, date)
	switch {
	case err != nil:
		output.Error("%v", err)
	case changed:
		output.Success("Added %s → %s to %s", date.Code(), date.Display(), rel)
		changes.Add(rel)
	default:
		output.Warning("%s already exists in %s, skipping insert", date.Code(), rel)
	}
}

func generatePage(u *site.Updater, game models.Game, date datecode.Date, changes *site.ChangeSet) {
	rel := site.PagePath(game, date.Code())
	created, err := u.GeneratePage(game, date)
	switch {
	case err != nil:
		output.Error("%v", err)
	case created:
		output.Success("Created %s", rel)
		changes.Add(rel)
	default:
		output.Warning("%s already exists, skipping", rel)
	}
}

func confirmPublish(code string, changes *site.ChangeSet) bool {
	proceed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Commit %d file(s) on branch %s?", len(changes.Paths()), code)).
			Value(&proceed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return proceed
}

// publish is the single all-or-nothing boundary: either the changed files
// are committed together on the date branch or the step fails and the file
// mutations stay on disk.
func publish(root, code string, changes *site.ChangeSet) error {
	created, err := git.EnsureBranch(root, code)
	if err != nil {
		output.Error("%v", err)
		return fmt.Errorf("publish: %w", err)
	}
	if created {
		output.Success("Created new branch %q", code)
	} else {
		output.Info("Branch %q already exists, checking it out", code)
	}

	if err := git.Stage(root, changes.Paths()...); err != nil {
		output.Error("%v", err)
		return fmt.Errorf("publish: %w", err)
	}

	if err := git.Commit(root, fmt.Sprintf("Add %s entry", code)); err != nil {
		output.Error("%v", err)
		return fmt.Errorf("publish: %w", err)
	}

	output.Success("Committed %d file(s) on branch %q", len(changes.Paths()), code)
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().Bool("dry-run", false, "report what would change without writing")
	addCmd.Flags().Bool("no-publish", false, "skip the git branch/stage/commit step")
	addCmd.Flags().Bool("confirm", false, "ask before creating the commit")
}
