package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantumauth-io/quantum-go-cryptosvc/log"
	"github.com/quantumauth-io/quantum-go-cryptosvc/profile"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

type options struct {
	profile  string
	out      string
	list     bool
	logLevel string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cryptogen",
		Short: "Generate crypto service enablement constants from a build profile",
		Long: `Generate crypto service enablement constants from a build profile.

The profile (YAML, JSON, TOML or HCL) is resolved into one boolean per
catalogue service and written as a Go source file for package enablement.

Examples:
  # Regenerate the committed constants
  cryptogen --profile profiles/default.yaml --out enablement/flags_gen.go

  # Review what a profile ships
  cryptogen --profile profiles/minimal.hcl --list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(stdout, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.profile, "profile", "p", "", "path to the build profile")
	flags.StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	flags.BoolVar(&opts.list, "list", false, "print the table layout instead of generating code")
	flags.StringVar(&opts.logLevel, "log-level", string(log.WarnLevel), "debug, info, warn or error")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func run(stdout io.Writer, opts *options) error {
	if err := log.Init(log.Config{Level: log.Level(opts.logLevel), Encoding: "console"}); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	defer log.Sync()

	p, err := profile.Load(opts.profile)
	if err != nil {
		return err
	}
	resolved, err := p.Resolve()
	if err != nil {
		return err
	}
	log.Info(profile.Summary(p.Name, resolved), zap.String("path", opts.profile))

	if opts.list {
		return writeLayout(stdout, p.Name, resolved)
	}

	src, err := render(p.Name, resolved)
	if err != nil {
		return err
	}
	if opts.out == "-" {
		_, err = stdout.Write(src)
		return err
	}
	if err := writeFile(opts.out, src); err != nil {
		return err
	}
	log.Info("Wrote enablement constants", zap.String("out", opts.out))
	return nil
}

// writeLayout prints the service table a build of this profile exposes.
func writeLayout(w io.Writer, name string, resolved map[services.Name]bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", profile.Summary(name, resolved))
	fmt.Fprintln(tw, "SLOT\tSERVICE\tFAMILY\tENABLED")
	fmt.Fprintln(tw, "0\tGetVersion\t-\ttrue")
	for i, d := range services.Catalogue() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", i+1, d.Name, d.Family, resolved[d.Name])
	}
	return tw.Flush()
}

func writeFile(path string, src []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cryptogen-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to chmod %s", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "failed to replace %s", path)
}
