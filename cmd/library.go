package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newFavoriteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite",
		Aliases: []string{"fav"},
		Short:   "Manage favourite tools",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favourite tools",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				favs, err := c.store().Favorites()
				if err != nil {
					return err
				}
				for _, f := range favs {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <tool>",
			Short: "Add a tool to favourites, or remove it if already there",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				on, err := c.store().ToggleFavorite(args[0])
				if err != nil {
					return err
				}
				state := "removed from"
				if on {
					state = "added to"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s favorites\n", args[0], state)
				return nil
			},
		},
	)
	return cmd
}

func newHistoryCmd(c *cli) *cobra.Command {
	var tool string
	var limit int

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent exports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := c.store().ExportHistory(tool, limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tTOOL\tFORMAT\tID")
			for _, r := range history {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Timestamp.Format("2006-01-02 15:04:05"), r.ToolKey, r.Format, r.ID)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&tool, "tool", "", "only exports from this tool")
	listCmd.Flags().IntVar(&limit, "limit", 10, "how many to show (0 for all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget exports, for one tool or all of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.store().ClearExportHistory(tool)
		},
	}
	clearCmd.Flags().StringVar(&tool, "tool", "", "only clear this tool")

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the export history",
	}
	cmd.AddCommand(listCmd, clearCmd)
	return cmd
}

func newStoreCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect or reset the local store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "usage",
			Short: "Count favourites, presets and exports",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := c.store().Usage()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "favorites %d\npresets   %d\nexports   %d\n", u.Favorites, u.Presets, u.Exports)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove everything except the theme preference",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.store().ClearAll()
			},
		},
		&cobra.Command{
			Use:       "theme [light|dark|system]",
			Short:     "Print or set the theme preference",
			Args:      cobra.MaximumNArgs(1),
			ValidArgs: []string{"light", "dark", "system"},
			RunE: func(cmd *cobra.Command, args []string) error {
				s := c.store()
				if len(args) == 1 {
					return s.SetTheme(args[0])
				}
				theme, err := s.Theme()
				if err != nil {
					return err
				}
				if theme == "" {
					theme = "system"
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			},
		},
	)
	return cmd
}

func newHashKeyCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-key <admin-key>",
		Short: "Print the bcrypt hash to put in ADMIN_KEY_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}
