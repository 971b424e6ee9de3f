package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/owsbind/sml"
	"github.com/andaru/owsbind/xmlutil"
)

func newSMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sml",
		Short: "SensorML 1.0.1 document tools",
	}
	cmd.AddCommand(newSMLValidateCmd(), newSMLFmtCmd())
	return cmd
}

func newSMLValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check SensorML documents against the occurrence constraints",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			problems := 0
			for _, name := range args {
				doc, err := decodeFile(name)
				if err != nil {
					return errors.Wrap(err, name)
				}
				errs := sml.Validate(doc)
				for _, err := range errs {
					fmt.Fprintf(w, "%s: %v\n", name, err)
				}
				if len(errs) == 0 {
					fmt.Fprintf(w, "%s: ok\n", name)
				}
				problems += len(errs)
			}
			if problems > 0 {
				return errors.Errorf("%d problem(s) found", problems)
			}
			return nil
		},
	}
}

func newSMLFmtCmd() *cobra.Command {
	var charset string
	cmd := &cobra.Command{
		Use:   "fmt [FILE]",
		Short: "Rewrite a SensorML document in canonical indented form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc *sml.SensorML
				err error
			)
			if len(args) == 0 {
				doc, err = sml.Decode(cmd.InOrStdin())
			} else {
				doc, err = decodeFile(args[0])
			}
			if err != nil {
				return err
			}
			w, err := xmlutil.CharsetWriter(charset, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return closeAfter(w, sml.EncodeCharset(w, doc, charset))
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "UTF-8", "character set of the output")
	return cmd
}

func decodeFile(name string) (*sml.SensorML, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sml.Decode(f)
}
