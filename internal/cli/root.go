package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tansive/devpool/internal/common/logtrace"
	"github.com/tansive/devpool/internal/devpool/config"
	"github.com/tansive/devpool/pkg/types"
)

const version = "v0.1.0"

type options struct {
	configFile string
	output     string
	logLevel   string
}

// NewRootCmd creates a new root command for the CLI
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "devpool",
		Short: "devpool registers developers of a closed set of kinds and looks them up by name",
		Long: `devpool keeps developers in a pool keyed by name. The set of developer kinds is
closed: Backend, Frontend, Android and Other. Rosters written in YAML or JSON can
be loaded into a pool and queried.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", types.OutputText, "Output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level, overrides the configuration file")

	cmd.AddCommand(
		newVersionCmd(opts),
		newKindsCmd(opts),
		newDemoCmd(opts),
		newLoadCmd(opts),
		newCodeCmd(opts),
	)
	return cmd
}

func (o *options) setup() error {
	switch o.output {
	case types.OutputText, types.OutputJSON, types.OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q: expected text, json or yaml", o.output)
	}
	if err := config.LoadConfig(o.configFile); err != nil {
		return err
	}
	level := config.Config().LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	logtrace.InitLogger(level, config.Config().LogFormat)
	return nil
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of devpool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == types.OutputText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "devpool "+version)
				return err
			}
			return printValue(cmd.OutOrStdout(), opts.output, map[string]string{"version": version})
		},
	}
}
