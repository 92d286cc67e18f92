// Command monitor is a host driver for the 8080 core: it loads a ROM image,
// wires up an emulator.Emulator, and either runs it to completion or drops
// into an interactive single-step debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var romPath string
	var storageDir string

	root := &cobra.Command{
		Use:   "monitor",
		Short: "Host driver and debugger for the 8080 core",
	}
	root.PersistentFlags().StringVar(&romPath, "rom", "", "path to the 4096-byte ROM image (required)")
	root.PersistentFlags().StringVar(&storageDir, "storage-dir", ".", "base directory Storage-Mount resolves filenames under")
	root.MarkPersistentFlagRequired("rom")

	root.AddCommand(newRunCmd(&romPath, &storageDir))
	root.AddCommand(newMountCmd(&romPath, &storageDir))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
