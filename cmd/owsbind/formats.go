package main

import (
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andaru/owsbind/wpsio"
)

func newFormatsCmd(opts *rootOptions) *cobra.Command {
	var asYAML bool
	var typeName string
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the registry's format descriptors in resolution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				c, err := opts.registryConfig()
				if err != nil {
					return err
				}
				b, err := c.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}

			r, err := opts.registry()
			if err != nil {
				return err
			}
			var t reflect.Type
			if typeName != "" {
				if t, err = lookupType(typeName); err != nil {
					return err
				}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DIRECTION\tFORM\tTYPE\tMIME TYPE\tENCODING\tSCHEMA\tDEFAULT")
			for _, d := range r.Descriptors() {
				if t != nil && d.Type != t {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%s\t%s\t%s\n",
					d.Direction, d.Form, d.Type, dash(d.MimeType), dash(d.Encoding), dash(d.Schema), yesNo(d.Default))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the registry description as YAML")
	cmd.Flags().StringVar(&typeName, "type", "", "only list descriptors of this type")
	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// descriptorLine is the one-line form of d printed by resolve.
func descriptorLine(d wpsio.FormatDescriptor) string {
	return fmt.Sprintf("%s %T", d, d.Converter)
}
