package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go8080/emulator"
)

func newRunCmd(romPath, storageDir *string) *cobra.Command {
	var hz int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a ROM image, optionally dropping into the interactive debugger",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(*romPath)
			if err != nil {
				return fmt.Errorf("monitor: reading ROM: %w", err)
			}

			e, err := emulator.New(rom, *storageDir)
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}

			if interactive {
				return debug(e)
			}

			if err := e.Run(context.Background(), hz); err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			os.Stdout.Write(e.Console.Output())
			return nil
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 0, "target clock rate in Hz (0 = unpaced)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start the single-step TUI debugger instead of free-running")
	return cmd
}

func debug(e *emulator.Emulator) error {
	_, err := tea.NewProgram(newModel(e)).Run()
	return err
}
