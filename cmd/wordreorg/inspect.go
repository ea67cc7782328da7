package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wordreorg/internal/structure"
	"github.com/pdiddy/wordreorg/internal/style"
	"github.com/pdiddy/wordreorg/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the heading structure of a Word document",
	Long: `Inspect prints the heading structure that 'generate' and 'reorganize'
would extract from a document, without writing any file. Useful for
checking how heading styles map to section boundaries before committing to
a reorganization.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	maxLevel := intSetting(cmd, "max-level", "max_level", types.DefaultMaxLevel)

	if err := ensureInputFile(input, "input document"); err != nil {
		return err
	}

	sections, err := scanDocument(input, maxLevel, false)
	if err != nil {
		return err
	}

	heads := structure.Headings(sections)
	for _, h := range heads {
		fmt.Println(formatHeading(h))
	}
	fmt.Println(style.Success.Render(fmt.Sprintf("%d headings (max level %d).", len(heads), maxLevel)))
	return nil
}

// formatHeading indents a heading by its depth, with top-level headings in
// bold so chapter boundaries stand out in long listings.
func formatHeading(h types.Heading) string {
	indent := strings.Repeat("  ", h.Level-1)
	text := h.Text
	if h.Level == 1 {
		text = style.Bold.Render(text)
	}
	return fmt.Sprintf("%s%s %s", indent, style.Dim.Render(fmt.Sprintf("H%d", h.Level)), text)
}

func init() {
	inspectCmd.Flags().String("input", "", "path to the source Word document (.docx)")
	inspectCmd.Flags().Int("max-level", types.DefaultMaxLevel, "maximum heading level to display")
	inspectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(inspectCmd)
}
