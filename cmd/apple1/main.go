// Command apple1 loads a 6502 program image and either runs it to
// completion headlessly or drives it through the bubbletea debugger.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"apple1/cpu"
	"apple1/loader"
	"apple1/mem"
	"apple1/probe"
	"apple1/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apple1",
		Short: "A MOS 6502 / Apple-1 emulator",
	}
	root.AddCommand(newRunCmd(), newDebugCmd())
	return root
}

// loadImage loads path into bus, choosing binary or hex-text format by
// file extension (".hex" is read as text at the addresses written in the
// file, anything else as raw binary at offset), and points the reset
// vector at offset.
func loadImage(bus *mem.Bus, path string, offset uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("apple1: reading %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".hex") {
		if err := loader.LoadHexText(bus, strings.NewReader(string(data))); err != nil {
			return fmt.Errorf("apple1: loading %s: %w", path, err)
		}
	} else {
		loader.LoadBinary(bus, data, offset)
	}
	bus.Store16(0xfffc, offset)
	return nil
}

func parseOffset(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("apple1: invalid offset %q: %w", s, err)
	}
	return uint16(v), nil
}

func newRunCmd() *cobra.Command {
	var offsetFlag string
	var maxSteps uint64
	var maxVisits int
	var hardwareBRK bool

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Run a program headlessly and print the final register state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(offsetFlag)
			if err != nil {
				return err
			}

			bus := &mem.Bus{}
			if err := loadImage(bus, args[0], offset); err != nil {
				return err
			}

			regs := &cpu.Registers{}
			detector := probe.NewCycleDetector(maxVisits)
			c := cpu.NewCPU(regs, bus, detector)
			c.HardwareBRK = hardwareBRK
			c.Reset()

			steps := c.Run(maxSteps)
			slog.Info("run finished",
				"steps", steps,
				"halted", c.Halted,
				"stuck", detector.Halted(),
				"registers", c.String(),
			)
			fmt.Println(c.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&offsetFlag, "offset", "0600", "load address / reset vector, in hex")
	cmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	cmd.Flags().IntVar(&maxVisits, "max-visits", 1000, "halt once a single address is re-entered more than this many times (visits are counted cumulatively)")
	cmd.Flags().BoolVar(&hardwareBRK, "hardware-brk", false, "BRK pushes state and jumps through $FFFE instead of halting")
	return cmd
}

func newDebugCmd() *cobra.Command {
	var offsetFlag string

	cmd := &cobra.Command{
		Use:   "debug <image>",
		Short: "Run a program under the interactive bubbletea debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(offsetFlag)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("apple1: reading %s: %w", args[0], err)
			}
			return tui.Debug(data, offset)
		},
	}

	cmd.Flags().StringVar(&offsetFlag, "offset", "0600", "load address / reset vector, in hex")
	return cmd
}
