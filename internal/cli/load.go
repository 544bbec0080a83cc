package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tansive/devpool/internal/common/logtrace"
	"github.com/tansive/devpool/internal/devpool/config"
	"github.com/tansive/devpool/internal/devpool/pool"
	"github.com/tansive/devpool/internal/devpool/roster"
)

func newLoadCmd(opts *options) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "load [roster-file]",
		Short: "Load a roster into a pool and print it",
		Long: `Load reads a roster written in YAML or JSON, registers every developer in a new
pool and prints the pool. With --get, only the named developers are printed and
unknown names are reported as not found.

When no file is given the roster_file from the configuration is used.

Example:
  devpool load roster.yaml
  devpool load roster.yaml --get mykim --get xyz -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logtrace.WithFields(cmd.Context(), map[string]string{"command": "load"})
			p, err := loadPool(ctx, args)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return printDevelopers(cmd.OutOrStdout(), opts.output, p.List())
			}
			results := make([]lookupResult, 0, len(names))
			for _, name := range names {
				d, _ := p.Get(name)
				results = append(results, lookupResult{name: name, dev: d})
			}
			return printLookups(cmd.OutOrStdout(), opts.output, results)
		},
	}
	cmd.Flags().StringArrayVar(&names, "get", nil, "Name of a developer to look up, may be repeated")
	return cmd
}

// loadPool builds a pool from the roster named in args, or from the
// configured roster file.
func loadPool(ctx context.Context, args []string) (*pool.Pool, error) {
	path := config.Config().RosterFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no roster file given and roster_file is not configured")
	}
	p := pool.New()
	if _, err := roster.LoadFile(ctx, p, path); err != nil {
		return nil, errors.Wrap(err, "unable to load roster")
	}
	return p, nil
}
