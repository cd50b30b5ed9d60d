// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/nestbuf/pkg/nested"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] container_file",
	Short: "decode a container file back into a nested array.",
	Long: `Decode the flat word buffer held in a given container file back into its
	 nested array, printed as JSON on standard output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := codecConfig(cmd)
		// Read container file
		file := readBufferFile(args[0])
		//
		log.Debug(fmt.Sprintf("read %d word buffer from %s", file.Buffer.WordCount(), args[0]))
		// Decode flat buffer
		arr, err := nested.Decode(file.Buffer, config)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Render as JSON
		bytes, err := nested.ToJsonBytes(arr, GetFlag(cmd, "hex"))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Println(string(bytes))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("hex", false, "print elements as hexadecimal literals.")
}
