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
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/nestbuf/pkg/nbf"
	"github.com/consensys/nestbuf/pkg/nested"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] input_file",
	Short: "encode a nested array into a container file.",
	Long: `Encode a given nested array (expressed as a JSON array of arrays of decimal
	 or hexadecimal literals) into a flat word buffer, written as a container file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var compression = nbf.COMPRESSION_NONE
		//
		config := codecConfig(cmd)
		output := GetString(cmd, "output")
		defines := GetStringArray(cmd, "define")
		//
		if GetFlag(cmd, "compress") {
			compression = nbf.COMPRESSION_ZSTD
		}
		// Parse nested array
		arr := readNestedJsonFile(args[0])
		//
		log.Debug(fmt.Sprintf("encoding %d inner arrays (%d elements)", arr.Count(), arr.TotalElements()))
		// Encode into flat buffer
		buffer, err := nested.Encode(arr, config)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Construct container file
		file := nbf.NewFile(compression, nil, buffer)
		// Write metadata
		metaBytes, err := json.Marshal(buildMetadata(defines))
		//
		if err != nil {
			fmt.Printf("error writing metadata: %s\n", err.Error())
			os.Exit(1)
		}
		//
		file.Header.MetaData = metaBytes
		// Serialise to disk
		writeBufferFile(file, output)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("output", "o", "a.nbf", "specify output file.")
	encodeCmd.Flags().BoolP("compress", "c", false, "compress payload with zstd.")
	encodeCmd.Flags().StringArrayP("define", "D", []string{}, "define metadata attribute.")
}
