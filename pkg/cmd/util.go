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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/nestbuf/pkg/nbf"
	"github.com/consensys/nestbuf/pkg/nested"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint64 gets an expected uint64 flag, or exits if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Construct a codec configuration from the persistent flags.
func codecConfig(cmd *cobra.Command) nested.Config {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	return nested.Config{
		StrictCanonical: GetFlag(cmd, "strict"),
		MaxTotalWords:   GetUint64(cmd, "max-words"),
	}
}

// Parse a nested array from a given JSON input file.
func readNestedJsonFile(filename string) nested.Array {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var arr nested.Array
		//
		if arr, err = nested.FromJsonBytes(bytes); err == nil {
			return arr
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse a container file, sanity checking its identifier first.
func readBufferFile(filename string) nbf.File {
	var file nbf.File
	//
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		if !nbf.IsNestedBufferFile(bytes) {
			err = fmt.Errorf("%s is not a container file", filename)
		} else {
			err = file.UnmarshalBinary(bytes)
		}
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return file
}

// Write a container file to disk.
func writeBufferFile(file nbf.File, filename string) {
	bytes, err := file.MarshalBinary()
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debug(fmt.Sprintf("wrote %d bytes to %s", len(bytes), filename))
}

// Construct header metadata from a set of key=value definitions.
func buildMetadata(items []string) map[string]string {
	metadata := make(map[string]string)
	//
	for _, item := range items {
		split := strings.Split(item, "=")
		if len(split) != 2 {
			fmt.Printf("malformed definition \"%s\"\n", item)
			os.Exit(2)
		}
		//
		metadata[split[0]] = split[1]
	}
	//
	return metadata
}
