// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// tableHeader is the header row of the console summary.
var tableHeader = []string{"Hop", "Hosts", "Samples", "Avg", "Median", "Min", "Max"}

// TableData returns the rows of the console summary, header first.
func TableData(d Document) pterm.TableData {
	data := pterm.TableData{tableHeader}
	for _, h := range d {
		hosts := strings.Join(h.Hosts, " ")
		if !h.IsResponsive() {
			hosts = "*"
		}
		data = append(data, []string{
			strconv.Itoa(h.Hop),
			hosts,
			strconv.Itoa(len(h.Latency)),
			h.Avg.String(),
			h.Median.String(),
			h.Min.String(),
			h.Max.String(),
		})
	}
	return data
}

// WriteTable prints the document as a table.
func WriteTable(w io.Writer, d Document) error {
	out, err := pterm.DefaultTable.WithHasHeader(true).WithData(TableData(d)).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
