package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/nestbuf/pkg/nbf"
	"github.com/consensys/nestbuf/pkg/nested"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] container_file",
	Short: "inspect the layout of a container file.",
	Long: `Inspect a container file, printing its header followed by a region-by-region
	 breakdown of the word buffer it holds (header word, offset table, data region).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := codecConfig(cmd)
		file := readBufferFile(args[0])
		// Print container header
		printContainerHeader(&file)
		// Print buffer regions
		printBufferRegions(file.Buffer, config)
		// Print raw words
		if GetFlag(cmd, "raw") {
			printRawWords(file.Buffer)
		}
	},
}

func printContainerHeader(file *nbf.File) {
	fmt.Printf("container: v%d.%d, compression %d\n",
		file.Header.MajorVersion, file.Header.MinorVersion, file.Header.Compression)
	//
	metadata, err := file.Header.GetMetaData()
	//
	if err != nil {
		fmt.Printf("metadata: (malformed: %s)\n", err.Error())
	} else {
		for k, v := range metadata {
			fmt.Printf("metadata: %s=%s\n", k, v)
		}
	}
}

func printBufferRegions(buffer nested.Buffer, config nested.Config) {
	fmt.Printf("buffer: %d words\n", buffer.WordCount())
	//
	n, ok := buffer.Count()
	//
	if !ok {
		fmt.Printf("header: (absurd count %s)\n", buffer[0].String())
		return
	}
	//
	fmt.Printf("header: %d inner arrays\n", n)
	// Print offset table, insofar as it is present.
	for i := uint64(0); i < n && 1+i < buffer.WordCount(); i++ {
		fmt.Printf("offset[%d]: %s\n", i, buffer[1+i].String())
	}
	// Attempt full decode to report per-array contents (or the first
	// structural problem encountered).
	arr, err := nested.Decode(buffer, config)
	//
	if err != nil {
		fmt.Printf("data: %s\n", err.Error())
		return
	}
	//
	for i, inner := range arr {
		fmt.Printf("data[%d]: %d elements\n", i, len(inner))
	}
}

// printRawWords dumps every word of the buffer in hex, packing as many words
// per row as the enclosing terminal allows.
func printRawWords(buffer nested.Buffer) {
	cols := 1
	// Determine available terminal width
	if term.IsTerminal(0) {
		if width, _, err := term.GetSize(0); err == nil {
			// Each word occupies 64 hex digits plus separator
			cols = max(1, width/66)
		}
	}
	//
	for i, w := range buffer {
		fmt.Print(hex.EncodeToString(w.Bytes()))
		//
		if (i+1)%cols == 0 || i+1 == len(buffer) {
			fmt.Println()
		} else {
			fmt.Print("  ")
		}
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "dump raw buffer words in hex.")
}
