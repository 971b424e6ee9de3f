package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var req requestFlags
	var def bool
	cmd := &cobra.Command{
		Use:   "resolve TYPE",
		Short: "Show the descriptor a request for TYPE resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}
			t, err := lookupType(args[0])
			if err != nil {
				return err
			}
			dir, form, err := req.parse()
			if err != nil {
				return err
			}
			d, err := r.FindDescriptor(t, dir, form, req.hints)
			if def {
				d, err = r.DefaultSupport(t, dir, form)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), descriptorLine(d))
			return nil
		},
	}
	req.register(cmd.Flags(), "", "input", "complex")
	cmd.Flags().BoolVar(&def, "default", false, "show the default descriptor, ignoring hints")
	return cmd
}

func newInferCmd(opts *rootOptions) *cobra.Command {
	var req requestFlags
	cmd := &cobra.Command{
		Use:   "infer [DATATYPE]",
		Short: "Infer the Go type of a WPS input or output",
		Long: "Infer the Go type of a WPS input or output. Literal forms use the\n" +
			"declared DATATYPE name; other forms use the mime type and schema hints.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}
			dir, form, err := req.parse()
			if err != nil {
				return err
			}
			var declared string
			if len(args) > 0 {
				declared = args[0]
			}
			t, err := r.InferType(form, dir, req.hints, declared)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	req.register(cmd.Flags(), "", "input", "literal")
	return cmd
}
