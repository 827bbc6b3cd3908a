/*
 * Copyright 2026 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package count

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/warcstream/cmd/warc/internal"
	"github.com/nlnwa/warcstream/internal/tally"
	"github.com/spf13/cobra"
)

type conf struct {
	recordType string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "count [file...]",
		Short: "Count records and content size per record type",
		Long: `Count records and content size per WARC-Type.

Reads standard input when no file is given. If a file contains a malformed record,
the records before it are counted and the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runE(c, cmd.OutOrStdout(), internal.Inputs(args))
		},
	}

	cmd.Flags().StringVarP(&c.recordType, "type", "t", "", "only report records of this type, e.g. response")

	return cmd
}

func runE(c *conf, out io.Writer, fileNames []string) error {
	counter := tally.New()

	var err error
	for _, fileName := range fileNames {
		err = internal.ReadFile(fileName, func(_ int64, record *warcstream.Record) error {
			counter.Add(record)
			return nil
		})
		if err != nil {
			break
		}
	}

	var printErr error
	if c.recordType != "" {
		row := counter.Get(c.recordType)
		_, printErr = fmt.Fprintf(out, "%s records: %s\n%s size: %d MiB\n", row.Type, humanize.Comma(row.Records), row.Type, row.Bytes>>20)
	} else {
		printErr = printTable(out, counter)
	}
	if err != nil {
		return err
	}
	return printErr
}

func printTable(out io.Writer, counter *tally.Counter) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "type\trecords\tsize\t")
	for _, row := range counter.Rows() {
		recordType := row.Type
		if recordType == "" {
			recordType = "(none)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", recordType, humanize.Comma(row.Records), humanize.IBytes(uint64(row.Bytes)))
	}
	total := counter.Total()
	fmt.Fprintf(w, "total\t%s\t%s\t\n", humanize.Comma(total.Records), humanize.IBytes(uint64(total.Bytes)))
	return w.Flush()
}
