// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wordreorg/internal/style"
	"github.com/pdiddy/wordreorg/pkg/types"
)

func TestRootRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "reorganize", "inspect", "version"} {
		assert.True(t, names[want], "subcommand %s not registered", want)
	}
}

func TestPersistentPreRunReadsExecutingCommandFlags(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("color", true)

	// At execution time cobra merges inherited persistent flags into the
	// running command's flag set; reproduce that state on a standalone
	// command and hand it to the hook.
	cmd := &cobra.Command{Use: "noop"}
	cmd.Flags().Bool("no-color", false, "")
	require.NoError(t, cmd.Flags().Set("no-color", "true"))

	rootCmd.PersistentPreRun(cmd, nil)

	assert.Equal(t, "plain", style.Error.Render("plain"))
}

func TestVerboseFlagsHaveNoShorthand(t *testing.T) {
	for _, cmd := range []*cobra.Command{generateCmd, reorganizeCmd} {
		f := cmd.Flags().Lookup("verbose")
		require.NotNil(t, f, "%s must define --verbose", cmd.Name())
		assert.Empty(t, f.Shorthand, "%s --verbose must not carry a shorthand", cmd.Name())
	}
}

func TestFormatHeading(t *testing.T) {
	style.Disable()

	assert.Equal(t, "H1 Introduction", formatHeading(types.Heading{Text: "Introduction", Level: 1}))
	assert.Equal(t, "  H2 Background", formatHeading(types.Heading{Text: "Background", Level: 2}))
	assert.Equal(t, "    H3 Prior Work", formatHeading(types.Heading{Text: "Prior Work", Level: 3}))
}
