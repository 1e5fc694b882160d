package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nine-hub/api/storage"
)

func newPresetCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved tool presets",
	}
	cmd.AddCommand(
		newPresetListCmd(c),
		newPresetSaveCmd(c),
		newPresetShowCmd(c),
		newPresetRenameCmd(c),
		newPresetDeleteCmd(c),
		newPresetShareCmd(c),
	)
	return cmd
}

func newPresetListCmd(c *cli) *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List presets, optionally for one tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := c.store().Presets(tool)
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no presets")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTOOL\tNAME\tUPDATED")
			for _, p := range presets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.ToolKey, p.Name, p.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "only presets for this tool")
	return cmd
}

func newPresetSaveCmd(c *cli) *cobra.Command {
	var tool, name, data string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a tool configuration as a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(data)) {
				return errors.New("--data must be valid JSON")
			}
			p, err := c.store().SavePreset(tool, name, json.RawMessage(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "tool key, e.g. glassmorphism")
	cmd.Flags().StringVar(&name, "name", "", "preset name")
	cmd.Flags().StringVar(&data, "data", "", "tool configuration as JSON")
	_ = cmd.MarkFlagRequired("tool")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newPresetShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a preset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.store().Preset(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

func newPresetRenameCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[1]
			p, err := c.store().UpdatePreset(args[0], storage.PresetUpdate{Name: &name})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s renamed to %q\n", p.ID, p.Name)
			return nil
		},
	}
}

func newPresetDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.store().DeletePreset(args[0])
		},
	}
}

func newPresetShareCmd(c *cli) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Print a link that opens the tool with this preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.store().Preset(args[0])
			if err != nil {
				return err
			}
			if base == "" {
				base = "https://ninehub.dev/tools/" + p.ToolKey
			}
			link, err := storage.ShareURL(base, p.Data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "tool page URL (default https://ninehub.dev/tools/<tool>)")
	return cmd
}
