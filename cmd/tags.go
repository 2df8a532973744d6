package cmd

import (
	"github.com/spf13/cobra"
)

var tagsCmd = NewTagsCmd()

func NewTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the available tags, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			newPrinter(cmd).TagList(store.Tags())
			return nil
		},
	}
}

func GetTagsCmd() *cobra.Command {
	return tagsCmd
}

func init() {
	RootCmd.AddCommand(GetTagsCmd())
}
