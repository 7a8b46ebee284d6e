package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/patterns/core/pluggable"
)

var (
	// ErrUsage reports a command with missing or malformed arguments.
	ErrUsage = errors.New("usage")
	// ErrUnknownCommand reports a line whose first word is not a command.
	ErrUnknownCommand = errors.New("unknown command")
)

const shellHelp = `commands:
  furniture <kind>     select a piece of furniture
  gui <platform>       build a widget family and interact with it
  product <kind>       describe the product of a creator
  use <strategy>       make a strategy active
  calc <a> <b>         run the active strategy
  keys                 list the keys of every selector
  help                 show this message
  exit                 end the session`

func isPatternError(err error) bool {
	return errors.Is(err, pluggable.ErrUnknownKey) || errors.Is(err, pluggable.ErrInvalidState)
}

// Exec runs one shell command line. Blank lines are ignored.
func (s *Service) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "furniture":
		kind, err := oneArg(cmd, args)
		if err != nil {
			return err
		}
		return s.Furniture(kind)
	case "gui":
		platform, err := oneArg(cmd, args)
		if err != nil {
			return err
		}
		return s.GUI(platform)
	case "product":
		kind, err := oneArg(cmd, args)
		if err != nil {
			return err
		}
		return s.Product(kind)
	case "use":
		key, err := oneArg(cmd, args)
		if err != nil {
			return err
		}
		return s.Use(key)
	case "calc":
		a, b, err := ParseOperands(args)
		if err != nil {
			return err
		}
		_, err = s.Calc(a, b)
		return err
	case "keys":
		return s.PrintKeys()
	case "help":
		return s.println(shellHelp)
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
}

// RunShell reads commands from in until EOF, "exit" or ctx cancellation.
// Input errors such as unknown keys or an unset strategy are written to the
// output and the session continues; write and read failures end it.
func (s *Service) RunShell(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := s.Exec(line); err != nil {
			if !IsUserError(err) {
				return err
			}
			s.log.Debugf("shell: %v", err)
			if werr := s.println("error: " + err.Error()); werr != nil {
				return werr
			}
		}
	}
	return scanner.Err()
}

// ParseOperands parses exactly two numeric operands.
func ParseOperands(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: calc <a> <b>", ErrUsage)
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: operand a: %v", ErrUsage, err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: operand b: %v", ErrUsage, err)
	}
	return a, b, nil
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s <key>", ErrUsage, cmd)
	}
	return args[0], nil
}
