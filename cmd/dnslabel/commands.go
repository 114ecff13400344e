// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/bassosimone/dnslabel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newCheckCmd returns the command validating labels.
func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		allowRoot bool
		prefix    bool
	)

	cmd := &cobra.Command{
		Use:   "check [flags] [--] [label...]",
		Short: "Validate labels given as arguments or read from stdin",
		Long: `Validate labels given as arguments or read from stdin.

Flags must come before the labels: every argument after the first label
is a label, even if it starts with a hyphen. Use -- before the labels
when the first one starts with a hyphen.`,
		Example: "  dnslabel check www -bad\n  dnslabel check --prefix -- -bad www",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, input := range inputs {
				label, rest, err := dnslabel.TryScanBytes([]byte(input), allowRoot, !prefix)
				if err != nil {
					failed++
					opts.logger.WithField("input", input).WithError(err).Debug("invalid label")
					fmt.Fprintf(out, "error %s: %s\n", input, err.Error())
					continue
				}
				opts.logger.WithFields(logrus.Fields{
					"label":     label.String(),
					"remaining": len(rest),
				}).Debug("valid label")
				fmt.Fprintf(out, "ok %s\n", label.String())
			}

			if failed > 0 {
				return errors.Errorf("%d of %d labels are invalid", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowRoot, "allow-root", false, "accept the empty root label")
	cmd.Flags().BoolVar(&prefix, "prefix", false, "only require a valid label at the start of the input")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// newNameCmd returns the command splitting a domain name into labels.
func newNameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "name <domain>",
		Short: "Print the labels of a domain name, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := dnslabel.ParseName(args[0])
			if err != nil {
				return err
			}
			opts.logger.WithFields(logrus.Fields{
				"name":   name.Canonical(),
				"labels": len(name),
			}).Debug("parsed name")

			out := cmd.OutOrStdout()
			for _, label := range name {
				fmt.Fprintln(out, label.String())
			}
			return nil
		},
	}
}

// newUniqCmd returns the command printing distinct labels read from stdin.
func newUniqCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uniq",
		Short: "Print the distinct labels read from stdin ignoring case, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), nil)
			if err != nil {
				return err
			}

			set := dnslabel.NewLabelSet()
			for lineno, input := range inputs {
				label, err := dnslabel.TryFromString(input)
				if err != nil || label.IsRoot() {
					opts.logger.WithFields(logrus.Fields{
						"line":  lineno + 1,
						"input": input,
					}).Warn("skipping invalid label")
					continue
				}
				set.Add(label)
			}

			out := cmd.OutOrStdout()
			set.Ascend(func(label dnslabel.OwnedLabel) bool {
				fmt.Fprintln(out, label.String())
				return true
			})
			return nil
		},
	}
}
