package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nine-hub/api/export"
	"github.com/nine-hub/api/palette"
)

// paletteTool is the tool key palette exports are recorded under
const paletteTool = "palette-generator"

func newPaletteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate and export colour palettes",
	}
	cmd.AddCommand(newPaletteGenerateCmd(c), newPaletteExportCmd(c))
	return cmd
}

func newPaletteGenerateCmd(c *cli) *cobra.Command {
	var (
		harmony string
		seed    uint64
		locks   []int
		base    []string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a five colour palette from a harmony rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := palette.ParseHarmony(harmony)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed>>1))

			var p *palette.Palette
			if len(base) > 0 {
				locked := make([]bool, palette.Size)
				for _, i := range locks {
					if i < 1 || i > palette.Size {
						return fmt.Errorf("lock index %d out of range 1-%d", i, palette.Size)
					}
					locked[i-1] = true
				}
				if p, err = palette.FromHexes(h, base, locked); err != nil {
					return err
				}
				if err = p.Regenerate(rng); err != nil {
					return err
				}
			} else if p, err = palette.New(h, rng); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "" {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				content, err := export.Render(f, p.Hexes(), p.Names())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, content)
				_, err = c.store().AddExport(paletteTool, string(f), content)
				return err
			}
			for i, s := range p.Colors {
				lock := " "
				if s.Locked {
					lock = "*"
				}
				fmt.Fprintf(out, "%d%s %s  %s\n", i+1, lock, s.Hex, s.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&harmony, "harmony", string(palette.Analogous), "harmony rule")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringSliceVar(&base, "colors", nil, "current palette, five hex colours")
	cmd.Flags().IntSliceVar(&locks, "lock", nil, "1-based positions in --colors to keep")
	cmd.Flags().StringVar(&format, "format", "", "print the palette in an export format, named by colour, and record it")
	return cmd
}

func newPaletteExportCmd(c *cli) *cobra.Command {
	var (
		format string
		names  []string
		noSave bool
	)
	cmd := &cobra.Command{
		Use:   "export <hex>...",
		Short: "Render colours in an export format",
		Long:  "Render colours in one of: " + formatList() + ". The result is added to the export history.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			content, err := export.Render(f, args, names)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)

			if noSave {
				return nil
			}
			_, err = c.store().AddExport(paletteTool, string(f), content)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.CSS), "export format")
	cmd.Flags().StringSliceVar(&names, "names", nil, "names for the colours, in order")
	cmd.Flags().BoolVar(&noSave, "no-history", false, "do not record the export")
	return cmd
}

func formatList() string {
	formats := export.Formats()
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
