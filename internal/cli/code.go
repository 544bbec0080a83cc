package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tansive/devpool/internal/common/logtrace"
	"github.com/tansive/devpool/internal/devpool/config"
	"github.com/tansive/devpool/pkg/types"
)

func newCodeCmd(opts *options) *cobra.Command {
	var (
		rosterFile string
		language   string
	)
	cmd := &cobra.Command{
		Use:   "code <name>",
		Short: "Let a developer from a roster code in a language",
		Long: `Code loads a roster, looks up the named developer and lets it code.
With -o json or -o yaml the developer and the sentence it wrote are printed
as a document.

Example:
  devpool code mykim --roster roster.yaml --language Kotlin
  devpool code mykim --roster roster.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logtrace.WithFields(cmd.Context(), map[string]string{"command": "code"})
			var rosterArgs []string
			if rosterFile != "" {
				rosterArgs = []string{rosterFile}
			}
			p, err := loadPool(ctx, rosterArgs)
			if err != nil {
				return err
			}
			d, ok := p.Get(args[0])
			if !ok {
				return fmt.Errorf("developer %s not found", args[0])
			}
			if language == "" {
				language = config.Config().DefaultLanguage
			}
			if opts.output == types.OutputText {
				if err := d.Code(cmd.OutOrStdout(), language); err != nil {
					return err
				}
				return nil
			}

			var buf bytes.Buffer
			if err := d.Code(&buf, language); err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), opts.output, map[string]string{
				"name":     d.Name(),
				"kind":     d.Kind().String(),
				"language": language,
				"output":   strings.TrimSuffix(buf.String(), "\n"),
			})
		},
	}
	cmd.Flags().StringVarP(&rosterFile, "roster", "r", "", "Roster file, defaults to roster_file from the configuration")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language to code in, defaults to default_language from the configuration")
	return cmd
}
