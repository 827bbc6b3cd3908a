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

package ls

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/warcstream/cmd/warc/internal"
	"github.com/spf13/cobra"
)

type conf struct {
	recordCount int
}

// errLimitReached stops reading when enough records have been listed
var errLimitReached = errors.New("record limit reached")

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "ls [file...]",
		Short: "List records from warc files",
		Long: `List one line per record: offset, record id, type and target URI.

Reads standard input when no file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runE(c, cmd.OutOrStdout(), internal.Inputs(args))
		},
	}

	cmd.Flags().IntVarP(&c.recordCount, "record-count", "c", 0, "The maximum number of records to show")

	return cmd
}

func runE(c *conf, out io.Writer, fileNames []string) error {
	count := 0
	for _, fileName := range fileNames {
		err := internal.ReadFile(fileName, func(offset int64, record *warcstream.Record) error {
			count++
			printRecord(out, offset, record)
			if c.recordCount > 0 && count >= c.recordCount {
				return errLimitReached
			}
			return nil
		})
		if err == errLimitReached {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var typeColors = map[string]func(format string, a ...interface{}) string{
	"warcinfo": color.MagentaString,
	"request":  color.BlueString,
	"response": color.GreenString,
	"revisit":  color.YellowString,
	"metadata": color.CyanString,
}

func printRecord(out io.Writer, offset int64, record *warcstream.Record) {
	recordID := record.Header.Get(warcstream.WarcRecordID)
	targetURI := internal.CropString(record.Header.Get(warcstream.WarcTargetURI), 100)
	recordType := fmt.Sprintf("%-9.9s", record.Type())
	if c, ok := typeColors[strings.ToLower(record.Type())]; ok {
		recordType = c("%s", recordType)
	}
	fmt.Fprintf(out, "%9d %s %s %s\n", offset, recordID, recordType, targetURI)
}
