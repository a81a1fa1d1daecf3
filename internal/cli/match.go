package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/ghostgame/internal/model"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands against a running server",
	}

	cmd.AddCommand(newMatchNewCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchMoveCmd())
	cmd.AddCommand(newMatchRematchCmd())
	cmd.AddCommand(newMatchAbandonCmd())

	return cmd
}

func matchPath(id string, suffix string) string {
	return "/api/v1/matches/" + url.PathEscape(id) + suffix
}

func newMatchNewCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{}
			if strategy != "" {
				body["strategy"] = strategy
			}

			var result Match
			if err := client.Post("/api/v1/matches", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Computer strategy: ghost, random")
	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get match state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Get(matchPath(args[0], ""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <letter>",
		Short: "Play a letter; the computer replies in the same call",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, err := model.NormalizeLetter(args[1])
			if err != nil {
				return fmt.Errorf("letter must be a single character a-z")
			}

			var result MoveResult
			body := map[string]string{"letter": string(letter)}
			if err := client.Post(matchPath(args[0], "/moves"), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchRematchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rematch <id>",
		Short: "Restart a finished match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Post(matchPath(args[0], "/rematch"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(matchPath(args[0], "")); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Match abandoned")
			return nil
		},
	}
}
