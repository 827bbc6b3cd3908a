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

package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nlnwa/warcstream/cmd/warc/cmd/count"
	"github.com/nlnwa/warcstream/cmd/warc/cmd/ls"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	cfgFile string
}

// NewCommand returns a new cobra.Command implementing the root command for warc
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "warc",
		Short: "Read WARC records from files or standard input",
		Long: `warc reads WARC records sequentially from files or from standard input.

Records are parsed one at a time, so archives of any size can be piped through it.
Reading stops at the first malformed or truncated record.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(viper.GetString("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}

	cobra.OnInitialize(func() { c.initConfig() })

	// Flags
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.warc.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level, one of: panic, fatal, error, warn, info, debug, trace")
	cmd.PersistentFlags().Int("buffer-size", 64*1024, "size of the read buffer in bytes")
	cmd.PersistentFlags().Int64("max-content-length", 0, "largest accepted Content-Length, 0 means no limit")
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		log.Fatalf("Failed to bind root flags: %v", err)
	}

	// Subcommands
	cmd.AddCommand(count.NewCommand())
	cmd.AddCommand(ls.NewCommand())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (c *conf) initConfig() {
	if c.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(c.cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".warc" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".warc")
	}

	viper.SetEnvPrefix("warc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}
