// Command owsbind inspects and exercises WPS format registries and
// SensorML documents.
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/owsbind/owserr"
	"github.com/andaru/owsbind/wpsio"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	config string
	report bool
}

func main() {
	opts := &rootOptions{}
	err := newRootCmd(opts).Execute()
	if err != nil {
		glog.Errorf("owsbind: %v", err)
		if opts.report {
			writeReport(os.Stderr, err)
		}
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "owsbind",
		Short:         "WPS format registry and SensorML tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the standard flag set; the
			// values were set through pflag, mark the set parsed.
			return flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().StringVar(&opts.config, "config", "", "YAML registry description; the standard registry if empty")
	root.PersistentFlags().BoolVar(&opts.report, "report", false, "write an OWS exception report to stderr on failure")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newFormatsCmd(opts),
		newResolveCmd(opts),
		newInferCmd(opts),
		newConvertCmd(opts),
		newSMLCmd(),
	)
	return root
}

// registryConfig returns the registry description named by --config.
func (o *rootOptions) registryConfig() (wpsio.Config, error) {
	if o.config == "" {
		return wpsio.StandardConfig(), nil
	}
	glog.V(1).Infof("owsbind: loading %s", o.config)
	return wpsio.LoadConfig(o.config)
}

func (o *rootOptions) registry() (*wpsio.Registry, error) {
	c, err := o.registryConfig()
	if err != nil {
		return nil, err
	}
	return c.Registry(wpsio.StandardCatalog(), wpsio.StandardTypes())
}

// exception returns the OWS exception err maps to, if any.
func exception(err error) *owserr.Error {
	var ex interface{ Exception() *owserr.Error }
	if errors.As(err, &ex) {
		return ex.Exception()
	}
	if e, ok := owserr.As(err); ok {
		return e
	}
	return nil
}

func writeReport(w io.Writer, err error) {
	ex := exception(err)
	if ex == nil {
		ex = owserr.NoApplicableCode(owserr.WithText(err.Error()))
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(owserr.NewReport(ex)); err != nil {
		glog.Errorf("owsbind: writing exception report: %v", err)
		return
	}
	fmt.Fprintln(w)
}
