package nes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DebugConsole drives a Console through text commands, one per line.
// commands:
//   r ADDR:
//     read a byte.
//   rw ADDR:
//     read a word.
//   w ADDR DATA:
//     write a byte.
//   s 0|1:
//     set the controller strobe.
//   j:
//     read the controller.
//   press N, release N:
//     press or release button N (0-7).
//   p:
//     print.
//   reset:
//     reset.
//   q:
//     quit.
// Numbers are hexadecimal, with or without 0x.
type DebugConsole struct {
	console *Console
	out     io.Writer
}

// NewDebugConsole creates a DebugConsole writing its output to out.
func NewDebugConsole(console *Console, out io.Writer) *DebugConsole {
	return &DebugConsole{console: console, out: out}
}

func parseHex(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, bits)
	if err != nil {
		return 0, fmt.Errorf("Invalid number %q: %w", s, err)
	}
	return v, nil
}

func parseButton(s string) (Button, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("Invalid button %q: %w", s, err)
	}
	if Button(v) > ButtonRight {
		return 0, fmt.Errorf("Invalid button %q: must be 0-%d", s, ButtonRight)
	}
	return Button(v), nil
}

func wantArgs(args []string, n int) error {
	if len(args) != n+1 {
		return fmt.Errorf("%s takes %d argument(s), got %d", args[0], n, len(args)-1)
	}
	return nil
}

func (d *DebugConsole) print() error {
	return d.console.withCPU(func(cpu *CPU) {
		fmt.Fprintf(d.out, "CPU: PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x, P=0x%02x\n",
			cpu.pc, cpu.a, cpu.x, cpu.y, cpu.s, cpu.p)
		ct := d.console.controller
		fmt.Fprintf(d.out, "Controller: buttons=0b%08b, index=%d, strobe=%t\n", ct.buttons, ct.index, ct.strobe)
	})
}

// Execute runs a single command line. It returns io.EOF for quit.
func (d *DebugConsole) Execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "r", "read":
		if err := wantArgs(args, 1); err != nil {
			return err
		}
		address, err := parseHex(args[1], 16)
		if err != nil {
			return err
		}
		data, err := d.console.Read(uint16(address))
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "0x%04x: 0x%02x\n", address, data)
	case "rw", "readword":
		if err := wantArgs(args, 1); err != nil {
			return err
		}
		address, err := parseHex(args[1], 16)
		if err != nil {
			return err
		}
		data, err := d.console.Read16(uint16(address))
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "0x%04x: 0x%04x\n", address, data)
	case "w", "write":
		if err := wantArgs(args, 2); err != nil {
			return err
		}
		address, err := parseHex(args[1], 16)
		if err != nil {
			return err
		}
		data, err := parseHex(args[2], 8)
		if err != nil {
			return err
		}
		return d.console.Write(uint16(address), byte(data))
	case "s", "strobe":
		if err := wantArgs(args, 1); err != nil {
			return err
		}
		on, err := parseHex(args[1], 1)
		if err != nil {
			return err
		}
		return d.console.Write(joypad1, byte(on))
	case "j", "joypad":
		data, err := d.console.Read(joypad1)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "%d\n", data)
	case "press", "release":
		if err := wantArgs(args, 1); err != nil {
			return err
		}
		b, err := parseButton(args[1])
		if err != nil {
			return err
		}
		if args[0] == "press" {
			return d.console.Press(b)
		}
		return d.console.Release(b)
	case "p", "print":
		return d.print()
	case "reset":
		return d.console.Reset()
	case "q", "quit":
		fmt.Fprintln(d.out, "Quitting.")
		return io.EOF
	default:
		return fmt.Errorf("Unknown command %s", line)
	}
	return nil
}

// Run executes commands from in until quit or the end of input. A fault
// stops it, other errors are printed and the next command is read.
func (d *DebugConsole) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := d.Execute(scanner.Text())
		var fault *Fault
		switch {
		case err == nil:
		case err == io.EOF:
			return nil
		case errors.As(err, &fault):
			return err
		default:
			fmt.Fprintf(d.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}
