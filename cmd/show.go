// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/telekom/trstats/pkg/report"
)

// NewCmdShow creates a new show command
func NewCmdShow() *cobra.Command {
	var graph, target string

	cmd := &cobra.Command{
		Use:   "show <document>",
		Short: "Print a statistics document written by run",
		Long:  "Reads a JSON or YAML statistics document, prints its summary table and optionally draws its chart.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := report.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := report.WriteTable(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			if graph != "" {
				return report.WriteChart(graph, doc, target)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graph, "graph", "g", "", "box plot file, the format follows the extension (pdf by default)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target shown in the chart title")

	return cmd
}
