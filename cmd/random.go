package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var randomCmd = NewRandomCmd()

func NewRandomCmd() *cobra.Command {
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Print one random quote and exit.",
		Long:  `Print one random quote, optionally limited to a tag. Tags are matched case-insensitively.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, _ := cmd.Flags().GetString("tag")

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			q, err := store.Pick(strings.TrimSpace(tag))
			if err != nil {
				return err
			}
			newPrinter(cmd).Quote(q)
			return nil
		},
	}
	randomCmd.Flags().StringP("tag", "t", "", "Only pick quotes with this tag")
	return randomCmd
}

func GetRandomCmd() *cobra.Command {
	return randomCmd
}

func init() {
	RootCmd.AddCommand(GetRandomCmd())
}
