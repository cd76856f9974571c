package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dshills/sadie/internal/canvas/charset"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sadie %s\n", info.Version)
			fmt.Fprintf(out, "  commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  built:  %s\n", info.Date)
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		},
	}
}

func newCharsetsCommand() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "charsets",
		Short: "List glyph and palette presets",
		Long: `List the built-in glyph sets and palettes.

With --show, each glyph set is printed in full and each palette as hex
colours.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "glyphs:")
			for _, name := range charset.GlyphPresetNames() {
				g, err := charset.GlyphPreset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-10s %4d\n", name, g.Len())
				if show {
					fmt.Fprintf(out, "    %s\n", g)
				}
			}

			fmt.Fprintln(out, "palettes:")
			for _, name := range charset.PalettePresetNames() {
				p, err := charset.PalettePreset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-10s %4d\n", name, p.Len())
				if show {
					for id := range p.Len() {
						fmt.Fprintf(out, "    %2d %s\n", id, p.Char(charset.CharID(id)))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print every entry")
	return cmd
}

func newConfigCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration sadie would run with, after merging the
config file, SADIE_* environment variables and flags, as TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration:\n%w", err)
			}
			return nil
		},
	}
}
