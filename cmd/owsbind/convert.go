package main

import (
	"io"
	"os"
	"reflect"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/andaru/owsbind/wpsio"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var from, to requestFlags
	var typeName, in, out string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Decode a payload as an input and encode it again as an output",
		Example: "  owsbind convert --from-mime application/gml+xml --to-mime application/json -i stations.gml\n" +
			"  owsbind convert --form literal --type xs:double --to-encoding base64 <<< 2.5",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}
			var form wpsio.Form
			if err := form.UnmarshalText([]byte(from.form)); err != nil {
				return err
			}

			var t reflect.Type
			if typeName != "" {
				t, err = lookupType(typeName)
			} else {
				t, err = r.InferType(form, wpsio.Input, from.hints, "")
			}
			if err != nil {
				return err
			}
			glog.V(1).Infof("owsbind: converting %v", t)

			src := cmd.InOrStdin()
			if in != "-" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			v, err := r.Read(t, form, from.hints, src)
			if err != nil {
				return err
			}

			if out == "-" {
				return r.Write(cmd.OutOrStdout(), v, form, to.hints)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			return closeAfter(f, r.Write(f, v, form, to.hints))
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&from.form, "form", "complex", "literal, complex, bbox or reference")
	from.registerHints(fs, "from-")
	to.registerHints(fs, "to-")
	fs.StringVar(&typeName, "type", "", "value type; inferred from the input hints if empty")
	fs.StringVarP(&in, "in", "i", "-", "input file, - for stdin")
	fs.StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

// closeAfter closes c, returning err or else the close error.
func closeAfter(c io.Closer, err error) error {
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}
