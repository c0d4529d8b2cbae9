// Command apple1 wires an address bus, RAM, a ROM image, a 6820-style PIA,
// a CPU, a pacing clock, and the terminal together into a runnable Apple-1
// style machine.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/stid/apple1-rst/bus"
	"github.com/stid/apple1-rst/clock"
	"github.com/stid/apple1-rst/cpu"
	"github.com/stid/apple1-rst/disassemble"
	"github.com/stid/apple1-rst/loader"
	"github.com/stid/apple1-rst/memory"
	"github.com/stid/apple1-rst/pia"
	"github.com/stid/apple1-rst/terminal"
)

// Real Apple-1 memory map: 6820 PIA registers at $D010-$D013, WozMon ROM
// at $FF00-$FFFF. RAM fills everything below the PIA.
const (
	piaBase = 0xD010
	piaTop  = 0xD013
	romBase = 0xFF00
	romTop  = 0xFFFF
)

func main() {
	app := &cli.App{
		Name:  "apple1",
		Usage: "run an Apple-1 style 6502 machine",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "ram-size",
				Usage: "bytes of RAM, filling address 0 up to the PIA",
				Value: piaBase,
			},
			&cli.StringFlag{
				Name:     "rom",
				Usage:    "path to a 256-byte ROM image flashed at $FF00",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "mhz",
				Usage: "target CPU clock speed in MHz",
				Value: 1.0,
			},
			&cli.IntFlag{
				Name:  "step-chunk",
				Usage: "pacing-loop iterations per Clock.Step call",
				Value: 1000,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log a disassembly line for every retired instruction",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("apple1: %v", err)
	}
}

func run(c *cli.Context) error {
	ramSize := c.Int("ram-size")
	if ramSize <= 0 || ramSize > piaBase {
		return fmt.Errorf("ram-size must be in (0, %d]", piaBase)
	}

	ram, err := memory.NewRAM(ramSize)
	if err != nil {
		return fmt.Errorf("building RAM: %w", err)
	}
	rom, err := memory.NewROM(romTop - romBase + 1)
	if err != nil {
		return fmt.Errorf("building ROM: %w", err)
	}
	if err := loader.LoadFile(rom, romBase, c.String("rom")); err != nil {
		return fmt.Errorf("loading ROM image: %w", err)
	}

	term := terminal.New()
	chip := pia.New()
	chip.WireA(nil, term) // port A: display output only
	chip.WireB(term, nil) // port B: keyboard input only

	b := bus.New()
	b.Map(0, uint16(ramSize-1), ram, "ram")
	b.Map(piaBase, piaTop, chip, "pia")
	b.Map(romBase, romTop, rom, "rom")

	proc := cpu.New(b)
	proc.Reset()

	trace := c.Bool("trace")
	stepper := stepperFunc(func() (int, error) {
		if trace {
			text, _ := disassemble.Step(proc.PC, b)
			log.Println(text)
		}
		return proc.Step()
	})

	clk := clock.New(stepper, c.Float64("mhz"), c.Int("step-chunk"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	go func() {
		if err := term.Run(ctx); err != nil {
			log.Printf("terminal exited: %v", err)
		}
		cancel()
	}()

	log.Printf("apple1: running at %.3fMHz, ram=%d bytes, rom=%s", c.Float64("mhz"), ramSize, c.String("rom"))
	if err := clk.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("machine halted: %w", err)
	}
	return nil
}

// stepperFunc adapts a plain function to clock.Stepper.
type stepperFunc func() (int, error)

func (f stepperFunc) Step() (int, error) { return f() }
