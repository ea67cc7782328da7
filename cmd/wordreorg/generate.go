// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wordreorg/internal/docio"
	"github.com/pdiddy/wordreorg/internal/outline"
	"github.com/pdiddy/wordreorg/internal/structure"
	"github.com/pdiddy/wordreorg/internal/style"
	"github.com/pdiddy/wordreorg/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an outline file from a Word document",
	Long: `Generate reads a Word document and writes an outline file describing its
heading structure up to --max-level. Childless headings appear as bare
strings, headings with subsections as nested entries. Edit the outline by
hand, then feed it to 'reorganize' to restructure the document.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}

	if err := ensureInputFile(input, "input document"); err != nil {
		return err
	}
	if err := ensureOutputPath(output); err != nil {
		return err
	}

	fmt.Println(style.Banner.Render("--- Generating outline ---"))

	sections, err := scanDocument(input, cfg.MaxLevel, false)
	if err != nil {
		return err
	}
	heads := structure.Headings(sections)
	fmt.Println(style.Success.Render(fmt.Sprintf("Found %d heading sections.", len(heads))))
	if cfg.Verbose {
		for _, h := range heads {
			fmt.Printf("  - found heading %q (level %d)\n", h.Text, h.Level)
		}
	}

	roots := outline.Build(heads)

	fmt.Println(style.Info.Render(fmt.Sprintf("Writing outline to: %s ...", output)))
	if err := writeOutlineFile(output, roots, cfg.Format); err != nil {
		return err
	}

	fmt.Println(style.Success.Render("Outline generation complete."))
	fmt.Printf("You can now edit %q and use it with the 'reorganize' command.\n", output)
	return nil
}

// resolveGenerateConfig merges generate's flags with config file values.
func resolveGenerateConfig(cmd *cobra.Command) (types.GenerateConfig, error) {
	format, err := types.ParseOutlineFormat(stringSetting(cmd, "format", "format", string(types.OutlineYAML)))
	if err != nil {
		return types.GenerateConfig{}, err
	}
	return types.GenerateConfig{
		MaxLevel: intSetting(cmd, "max-level", "max_level", types.DefaultMaxLevel),
		Format:   format,
		Verbose:  boolSetting(cmd, "verbose", "verbose", false),
	}, nil
}

// scanDocument opens a document and extracts its heading-delimited sections.
func scanDocument(path string, maxLevel int, capture bool) ([]types.Section, error) {
	fmt.Println(style.Info.Render(fmt.Sprintf("Parsing source document: %s ...", path)))
	doc, err := docio.Open(path)
	if err != nil {
		return nil, err
	}
	return structure.Scan(docio.Items(doc), docio.Classifier{MaxLevel: maxLevel}, capture), nil
}

// writeOutlineFile serializes the forest in the requested format.
func writeOutlineFile(path string, roots []*outline.Node, format types.OutlineFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating outline file: %w", err)
	}

	var werr error
	switch format {
	case types.OutlineMarkdown:
		werr = outline.WriteMarkdown(f, roots)
	default:
		werr = outline.WriteYAML(f, roots)
	}
	if werr != nil {
		f.Close()
		return werr
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing outline file: %w", err)
	}
	return nil
}

func init() {
	generateCmd.Flags().String("input", "", "path to the source Word document (.docx)")
	generateCmd.Flags().String("output", "", "path for the generated outline file")
	generateCmd.Flags().Int("max-level", types.DefaultMaxLevel, "maximum heading level to include in the outline")
	generateCmd.Flags().String("format", "yaml", "outline format: yaml or markdown")
	generateCmd.Flags().Bool("verbose", false, "increase output verbosity")
	generateCmd.MarkFlagRequired("input")
	generateCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(generateCmd)
}
