package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tansive/devpool/internal/devpool/developer"
	"github.com/tansive/devpool/pkg/types"
)

func newKindsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the developer kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := developer.Kinds()
			if opts.output == types.OutputText {
				for _, k := range kinds {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
						return err
					}
				}
				return nil
			}
			names := make([]string, 0, len(kinds))
			for _, k := range kinds {
				names = append(names, k.String())
			}
			return printValue(cmd.OutOrStdout(), opts.output, names)
		},
	}
}
