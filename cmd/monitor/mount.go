package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go8080/device"
	"go8080/emulator"
)

func newMountCmd(romPath, storageDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount [filename]",
		Short: "Mount a storage file through the Storage-Mount device and report its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(*romPath)
			if err != nil {
				return fmt.Errorf("monitor: reading ROM: %w", err)
			}

			e, err := emulator.New(rom, *storageDir)
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}

			for _, b := range []byte(args[0]) {
				e.Mount.WritePort(device.MountFilename, b)
			}
			e.Mount.WritePort(device.MountCommand, device.MountCmdMount)

			switch e.Mount.ReadPort(device.MountStatus) {
			case device.MountStatusOK:
				fmt.Printf("mounted %q under %s\n", args[0], *storageDir)
			case device.MountStatusInvalidName:
				return fmt.Errorf("monitor: %q is not a valid storage filename", args[0])
			default:
				return fmt.Errorf("monitor: could not mount %q", args[0])
			}
			return nil
		},
	}
	return cmd
}
