// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wordreorg/internal/docio"
	"github.com/pdiddy/wordreorg/internal/emit"
	"github.com/pdiddy/wordreorg/internal/outline"
	"github.com/pdiddy/wordreorg/internal/reconcile"
	"github.com/pdiddy/wordreorg/internal/structure"
	"github.com/pdiddy/wordreorg/internal/style"
	"github.com/pdiddy/wordreorg/pkg/types"
)

var reorganizeCmd = &cobra.Command{
	Use:   "reorganize",
	Short: "Reorganize a Word document to match an outline file",
	Long: `Reorganize rebuilds a Word document so its sections follow the order given
by an outline file, as written by 'generate' and edited by hand. Sections
are matched to outline entries by exact heading text; each section's
content moves together with its heading.

The --unmatched policy decides what happens to source sections the outline
does not mention (append, delete, or warn). The --missing policy decides
what happens when the outline names a heading the source does not have
(error, warn, or ignore).`,
	RunE: runReorganize,
}

func runReorganize(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	tocPath, _ := cmd.Flags().GetString("toc")
	output, _ := cmd.Flags().GetString("output")
	cfg, err := resolveReorganizeConfig(cmd)
	if err != nil {
		return err
	}

	if err := ensureInputFile(input, "input document"); err != nil {
		return err
	}
	if err := ensureInputFile(tocPath, "outline file"); err != nil {
		return err
	}
	if err := ensureOutputPath(output); err != nil {
		return err
	}

	fmt.Println(style.Banner.Render("--- Reorganizing document ---"))

	fmt.Println(style.Info.Render(fmt.Sprintf("Loading target outline from: %s ...", tocPath)))
	target, err := outline.LoadFile(tocPath, os.Stderr)
	if err != nil {
		return err
	}

	sections, err := scanDocument(input, cfg.MaxLevel, true)
	if err != nil {
		return err
	}
	fmt.Println(style.Success.Render(fmt.Sprintf("Found %d heading sections.", structure.CountHeadings(sections))))

	fmt.Println(style.Info.Render("Comparing source sections with target outline..."))
	plan, planErr := reconcile.Build(sections, target, cfg.Missing, cfg.Unmatched)
	reportPlan(plan, cfg)
	if planErr != nil {
		return planErr
	}

	fmt.Println(style.Info.Render("Planning writing order..."))
	if len(plan.Sections) > 0 && plan.Sections[0].IsPreamble() {
		fmt.Println("Including preamble content at the beginning.")
	}
	if cfg.Verbose {
		for _, s := range plan.Sections {
			if !s.IsPreamble() {
				fmt.Printf("  - scheduling section %q\n", s.Heading)
			}
		}
		for _, h := range plan.Missing {
			fmt.Printf("  - skipping missing outline entry %q\n", h)
		}
		for _, h := range plan.Duplicates {
			fmt.Printf("  - skipping duplicate section %q\n", h)
		}
	}
	if len(plan.Sections) == 0 {
		fmt.Fprintln(os.Stderr, style.Warn.Render("Warning: no sections identified to write to the output document."))
	}

	fmt.Println(style.Info.Render(fmt.Sprintf("Creating new document: %s ...", output)))
	items, res := emit.Collect(plan.Sections, docio.Cloner{}, cfg.Verbose, os.Stdout, os.Stderr)
	if res.HasFailures() {
		fmt.Fprintln(os.Stderr, style.Warn.Render(fmt.Sprintf(
			"Warning: encountered %d errors during element copying. Review the output carefully.", res.CopyErrors)))
	}

	doc := docio.New()
	docio.Append(doc, items...)

	fmt.Println(style.Info.Render(fmt.Sprintf("Saving reorganized document to: %s ...", output)))
	if err := docio.Save(doc, output); err != nil {
		return err
	}

	fmt.Println(style.Success.Render("Reorganization complete!"))
	return nil
}

// reportPlan prints duplicate, missing, and unmatched findings with their
// policy outcomes. Abort-worthy conditions are left to the caller; the plan
// error carries them.
func reportPlan(plan reconcile.Plan, cfg types.ReorganizeConfig) {
	for _, h := range plan.Duplicates {
		fmt.Fprintln(os.Stderr, style.Warn.Render(fmt.Sprintf(
			"Warning: duplicate heading in source: %q. Using first instance.", h)))
	}

	if len(plan.Missing) > 0 && cfg.Missing != types.MissingIgnore {
		msg := fmt.Sprintf("Headings in outline but not found in source: %s", strings.Join(plan.Missing, ", "))
		if cfg.Missing == types.MissingError {
			fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+msg+" (policy: error)"))
		} else {
			fmt.Fprintln(os.Stderr, style.Warn.Render("Warning: "+msg+" (policy: warn, skipping)"))
		}
		suggestions := reconcile.Suggest(plan.Missing, plan.Unmatched)
		for _, h := range plan.Missing {
			if match, ok := suggestions[h]; ok {
				fmt.Fprintln(os.Stderr, style.Dim.Render(fmt.Sprintf("  closest source heading to %q: %q", h, match)))
			}
		}
	}

	if len(plan.Unmatched) > 0 {
		msg := fmt.Sprintf("Headings in source but not in outline: %s", strings.Join(plan.Unmatched, ", "))
		switch cfg.Unmatched {
		case types.UnmatchedDelete:
			fmt.Fprintln(os.Stderr, style.Info.Render("Info: "+msg+" (policy: delete, discarding)"))
		case types.UnmatchedWarn:
			fmt.Fprintln(os.Stderr, style.Warn.Render("Warning: "+msg+" (policy: warn, appending to end)"))
		default:
			fmt.Fprintln(os.Stderr, style.Info.Render("Info: "+msg+" (policy: append, adding to end)"))
		}
	}
}

// resolveReorganizeConfig merges reorganize's flags with config file values.
func resolveReorganizeConfig(cmd *cobra.Command) (types.ReorganizeConfig, error) {
	unmatched, err := types.ParseUnmatchedPolicy(stringSetting(cmd, "unmatched", "unmatched", string(types.UnmatchedAppend)))
	if err != nil {
		return types.ReorganizeConfig{}, err
	}
	missing, err := types.ParseMissingPolicy(stringSetting(cmd, "missing", "missing", string(types.MissingWarn)))
	if err != nil {
		return types.ReorganizeConfig{}, err
	}
	return types.ReorganizeConfig{
		MaxLevel:  intSetting(cmd, "max-level", "max_level", types.DefaultMaxLevel),
		Unmatched: unmatched,
		Missing:   missing,
		Verbose:   boolSetting(cmd, "verbose", "verbose", false),
	}, nil
}

func init() {
	reorganizeCmd.Flags().String("input", "", "path to the source Word document (.docx)")
	reorganizeCmd.Flags().String("toc", "", "path to the outline file (YAML or Markdown)")
	reorganizeCmd.Flags().String("output", "", "path for the reorganized Word document")
	reorganizeCmd.Flags().Int("max-level", types.DefaultMaxLevel, "maximum heading level treated as a section boundary")
	reorganizeCmd.Flags().String("unmatched", string(types.UnmatchedAppend), "policy for source sections not in the outline: append, delete, or warn")
	reorganizeCmd.Flags().String("missing", string(types.MissingWarn), "policy for outline headings not in the source: error, warn, or ignore")
	reorganizeCmd.Flags().Bool("verbose", false, "increase output verbosity")
	reorganizeCmd.MarkFlagRequired("input")
	reorganizeCmd.MarkFlagRequired("toc")
	reorganizeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(reorganizeCmd)
}
