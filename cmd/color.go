package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nine-hub/api/colors"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert, compare and simulate colours",
	}
	cmd.AddCommand(
		newColorConvertCmd(),
		newColorContrastCmd(),
		newColorFixCmd(),
		newColorShadesCmd(),
		newColorSimulateCmd(),
		newColorNameCmd(),
	)
	return cmd
}

func newColorConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>",
		Short: "Print a colour as hex, rgb and hsl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colors.HexToRGB(args[0])
			if err != nil {
				return err
			}
			hsl := colors.RGBToHSL(rgb)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex  %s\n", rgb.Hex())
			fmt.Fprintf(out, "rgb  %s\n", rgb)
			fmt.Fprintf(out, "hsl  %s\n", hsl)
			fmt.Fprintf(out, "lum  %.4f\n", colors.RelativeLuminance(rgb))
			return nil
		},
	}
}

func newColorContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <fg> <bg>",
		Short: "Check a foreground/background pair against WCAG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := colors.CheckContrast(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ratio  %.2f:1\n", report.Ratio)
			fmt.Fprintf(out, "normal %s\n", colors.WCAGLevel(report.Ratio, colors.TextNormal).Level)
			fmt.Fprintf(out, "large  %s\n", colors.WCAGLevel(report.Ratio, colors.TextLarge).Level)
			return nil
		},
	}
}

func newColorFixCmd() *cobra.Command {
	var (
		target string
		ratio  float64
	)
	cmd := &cobra.Command{
		Use:   "fix <fg> <bg>",
		Short: "Adjust one side of a pair until it reaches a contrast ratio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixed, err := colors.FixContrast(args[0], args[1], colors.FixTarget(target), ratio)
			if err != nil {
				return err
			}
			fg, bg := fixed, args[1]
			if colors.FixTarget(target) == colors.FixBackground {
				fg, bg = args[0], fixed
			}
			achieved, err := colors.ContrastRatio(fg, bg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%.2f:1)\n", fixed, achieved)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", string(colors.FixForeground), "side to adjust: fg or bg")
	cmd.Flags().Float64Var(&ratio, "ratio", 4.5, "contrast ratio to reach")
	return cmd
}

func newColorShadesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shades <hex>",
		Short: "Print the 50-950 shade scale of a colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shades, err := colors.Shades(args[0])
			if err != nil {
				return err
			}
			for i, hex := range shades {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4d %s\n", colors.ShadeSteps[i], hex)
			}
			return nil
		},
	}
}

func newColorSimulateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "simulate <hex>",
		Short: "Show a colour as seen with colour vision deficiencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deficiencies := colors.Deficiencies
			if kind != "" {
				d, err := colors.ParseDeficiency(kind)
				if err != nil {
					return err
				}
				deficiencies = []colors.Deficiency{d}
			}
			for _, d := range deficiencies {
				sim, err := colors.Simulate(args[0], d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", d, sim)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "protanopia, deuteranopia, tritanopia or achromatopsia (default all)")
	return cmd
}

func newColorNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <hex>",
		Short: "Give a colour a rough human name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := colors.Name(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
