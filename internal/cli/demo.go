package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tansive/devpool/internal/common/logtrace"
	"github.com/tansive/devpool/internal/devpool/developer"
	"github.com/tansive/devpool/internal/devpool/pool"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Register a few developers and look them up",
		Long: `Demo registers backend developer mykim and frontend developer jk, lets each of
them code, then looks up mykim, jk and the unknown name xyz. It finishes by
registering an Android developer and offering the Other developer to the pool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logtrace.WithFields(cmd.Context(), map[string]string{"command": "demo"})
			return runDemo(ctx, cmd.OutOrStdout(), opts.output)
		},
	}
}

func runDemo(ctx context.Context, w io.Writer, format string) error {
	p := pool.New()

	backend := developer.NewBackend("mykim")
	frontend := developer.NewFrontend("jk")
	android := developer.NewAndroid("안드로")

	for _, step := range []struct {
		dev      developer.Developer
		language string
	}{
		{backend, "Java & Kotlin"},
		{frontend, "Javascript"},
		{android, "Kotlin"},
	} {
		if err := p.Add(ctx, step.dev); err != nil {
			return err
		}
		if err := step.dev.Code(w, step.language); err != nil {
			return err
		}
	}

	lookups := make([]lookupResult, 0, 3)
	for _, name := range []string{backend.Name(), frontend.Name(), "xyz"} {
		d, _ := p.Get(name)
		lookups = append(lookups, lookupResult{name: name, dev: d})
	}
	if err := printLookups(w, format, lookups); err != nil {
		return err
	}

	if err := p.Add(ctx, developer.OtherDeveloper); err != nil {
		return err
	}
	if _, ok := p.Get(developer.OtherDeveloperName); !ok {
		fmt.Fprintf(w, "%s was not added to the pool\n", developer.OtherDeveloper)
	}
	if err := developer.OtherDeveloper.Code(w, "Go"); err != nil {
		if !errors.Is(err, developer.ErrNotImplemented) {
			return err
		}
		fmt.Fprintf(w, "%s: %v\n", developer.OtherDeveloper, err)
	}
	return nil
}
