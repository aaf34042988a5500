// Copyright 2026 The reviewmd Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reviewmd/reviewmd/internal/config"
)

// newConfigInitCommand builds the config-init subcommand, which writes a
// commented starter config file to the standard location.
func newConfigInitCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config-init",
		Short: "Write a starter config file",
		Long: `Write a commented starter configuration file. By default it is placed at
the XDG location ($XDG_CONFIG_HOME/reviewmd/config.yaml). An existing file is
never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := config.WriteStarter(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination path (default: "+config.DefaultConfigPath()+")")

	return cmd
}
