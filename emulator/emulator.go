// Package emulator wires the register file, memory, I/O bus, and device
// set into a single runnable machine, and drives the fetch/decode/execute
// loop on the host's behalf.
package emulator

import (
	"context"
	"fmt"
	"os"
	"time"

	"go8080/cpu"
	"go8080/device"
	"go8080/iobus"
	"go8080/memory"
)

// Emulator owns the whole machine: CPU, Memory, Bus, and the fixed device
// set described by the port map (Console, System Control, Storage,
// Storage-Mount).
type Emulator struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Bus     *iobus.Bus
	Console *device.Console
	SysCtrl *device.SystemControl
	Storage *device.Storage
	Mount   *device.StorageMount
}

// New constructs a machine from a 4096-byte ROM image and a base directory
// under which Storage-Mount resolves filenames. Devices are created and
// mapped onto their fixed ports (spec port numbering: 0x00-0x02 Console,
// 0x08-0x0C Storage, 0x0D-0x0F Storage-Mount, 0xFE-0xFF System Control),
// and the CPU starts in its power-on state. It returns an error if the ROM
// image is the wrong size or storageBaseDir is not an existing directory.
func New(rom []byte, storageBaseDir string) (*Emulator, error) {
	mem, err := memory.New(rom)
	if err != nil {
		return nil, fmt.Errorf("emulator: %w", err)
	}

	info, err := os.Stat(storageBaseDir)
	if err != nil {
		return nil, fmt.Errorf("emulator: storage base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("emulator: storage base directory %q is not a directory", storageBaseDir)
	}

	bus := iobus.New()

	console := device.NewConsole()
	bus.Map(device.ConsoleDataOut, console)
	bus.Map(device.ConsoleDataIn, console)
	bus.Map(device.ConsoleStatus, console)

	sysCtrl := device.NewSystemControl(mem)
	bus.Map(device.SysCtrlCommand, sysCtrl)
	bus.Map(device.SysCtrlStatus, sysCtrl)

	storage := device.NewStorage()
	bus.Map(device.StorageAddrLow, storage)
	bus.Map(device.StorageAddrMid, storage)
	bus.Map(device.StorageAddrHigh, storage)
	bus.Map(device.StorageData, storage)
	bus.Map(device.StorageStatus, storage)

	mount := device.NewStorageMount(storage, storageBaseDir)
	bus.Map(device.MountFilename, mount)
	bus.Map(device.MountCommand, mount)
	bus.Map(device.MountStatus, mount)

	c := cpu.New(mem, bus)

	return &Emulator{
		CPU:     c,
		Mem:     mem,
		Bus:     bus,
		Console: console,
		SysCtrl: sysCtrl,
		Storage: storage,
		Mount:   mount,
	}, nil
}

// Reset returns the CPU to its power-on state and re-enables the memory
// overlay, matching a hard reset: registers zeroed, PC=SP=0x0000, flags
// cleared, IE=false, Halted=false, overlay=true. Device state (mounted
// files, console queues) survives a reset, as it would on real hardware
// where only the CPU reset line is pulsed.
func (e *Emulator) Reset() {
	e.CPU.Reset()
	e.Mem.Reset()
}

// Step executes exactly one instruction, additionally noticing a System
// Control cold-reset request and applying it before returning. Returns the
// nominal T-state count consumed by the instruction.
func (e *Emulator) Step() int {
	cycles := e.CPU.Step()
	if e.SysCtrl.ResetRequested() {
		e.CPU.Reset()
	}
	return cycles
}

// Run drives Step in a loop, pacing itself against targetHz using the
// accumulated cycle counts so the emulated clock runs at approximately the
// requested rate. It returns when ctx is cancelled or the CPU halts with
// interrupts disabled (a state from which it can never resume on its own).
//
// targetHz of zero runs unpaced, as fast as the host can step.
func (e *Emulator) Run(ctx context.Context, targetHz int) error {
	if targetHz <= 0 {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			e.Step()
			if e.CPU.Halted && !e.CPU.IE {
				return nil
			}
		}
	}

	const batchCycles = 1000
	interval := time.Duration(batchCycles) * time.Second / time.Duration(targetHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	accumulated := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for accumulated < batchCycles {
				accumulated += e.Step()
				if e.CPU.Halted && !e.CPU.IE {
					return nil
				}
			}
			accumulated -= batchCycles
		}
	}
}
