package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/tansive/devpool/internal/common/apperrors"
	"github.com/tansive/devpool/pkg/types"
)

// Execute runs the root command and exits the process on failure. This is
// called by main.main().
func Execute() {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err == nil {
		return
	}
	output, _ := cmd.PersistentFlags().GetString("output")
	w := io.Writer(os.Stderr)
	if output == types.OutputJSON {
		w = os.Stdout
	}
	if err := printError(w, output, err); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func printError(w io.Writer, format string, err error) error {
	if format == types.OutputJSON {
		return printValue(w, types.OutputJSON, map[string]string{"error": errorText(err)})
	}
	_, werr := fmt.Fprintf(w, "Error: %s\n", errorText(err))
	return werr
}

// errorText renders err with the wrapped causes of the first application
// error in its chain.
func errorText(err error) string {
	var appErr apperrors.Error
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	return strings.Replace(err.Error(), appErr.Error(), appErr.ErrorAll(), 1)
}
