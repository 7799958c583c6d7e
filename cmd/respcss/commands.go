package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"respcss/breakpoints"
	"respcss/config"
	"respcss/css"
	"respcss/document"
	"respcss/state"
)

func generate(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return errors.New("no rule documents specified")
	}

	layout, err := env.Cfg.Output.StylesheetLayout()
	if err != nil {
		return err
	}
	if name := cmd.String("layout"); len(name) > 0 {
		if layout, err = css.ParseLayout(name); err != nil {
			return err
		}
	}

	dst := cmd.String("out")
	if len(dst) > 0 && !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination file '%s' already exists, use --overwrite to replace it", dst)
		}
	}

	sheet, err := buildStylesheet(env, sources, layout)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if len(dst) > 0 {
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer f.Close()
		out = f
		env.Rpt.Store("output/"+filepath.Base(dst), dst)
	}

	n, err := sheet.WriteTo(out)
	if err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}

	if len(dst) == 0 {
		dst = "STDOUT"
	}
	// stdout carries the stylesheet, keep it clean at normal level
	env.Log.Debug("Stylesheet written", zap.String("file", dst), zap.Int64("bytes", n), zap.Stringer("layout", layout))
	return nil
}

// buildStylesheet combines rules of all sources into a single stylesheet.
// Every broken document is reported.
func buildStylesheet(env *state.LocalEnv, sources []string, layout css.Layout) (*css.Stylesheet, error) {

	gen, err := env.Generator()
	if err != nil {
		return nil, fmt.Errorf("unable to prepare generator: %w", err)
	}

	var (
		errs error
		all  document.Document
	)
	for i, src := range sources {
		env.Rpt.Store(fmt.Sprintf("input/%02d-%s", i, filepath.Base(src)), src)

		found, err := document.LoadSources(src)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, s := range found {
			env.Log.Debug("Rules loaded", zap.String("source", s.Name), zap.Int("rules", len(s.Doc.Rules)))
			all.Rules = append(all.Rules, s.Doc.Rules...)
		}
	}
	if errs != nil {
		return nil, errs
	}

	renderer := document.NewRenderer(gen, layout, env.Log)
	if env.Rpt != nil {
		env.Rpt.StoreData("trace.txt", []byte(renderer.Trace(&all)))
	}
	return renderer.Render(&all)
}

func listBreakpoints(ctx context.Context, _ *cli.Command) error {

	env := state.EnvFromContext(ctx)

	gen, err := env.Generator()
	if err != nil {
		return fmt.Errorf("unable to prepare generator: %w", err)
	}
	return writeBreakpoints(os.Stdout, gen.Breakpoints(), gen.Order())
}

func writeBreakpoints(w io.Writer, bps breakpoints.Map, order []string) error {

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range order {
		query := "(base)"
		if !bps.IsBase(name) {
			query = bps.MediaQuery(name)
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, query)
	}
	return tw.Flush()
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
