package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/hexaflex/intcode/port"
	"github.com/hexaflex/intcode/program"
	"github.com/hexaflex/intcode/vm"
)

var (
	inputFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "comma-separated input values; the program reads stdin when omitted",
	}
	traceFlag = &cli.BoolFlag{
		Name:  "trace",
		Usage: "print each instruction before it executes",
	}
	profileFlag = &cli.BoolFlag{
		Name:  "cpuprofile",
		Usage: "write a CPU profile of the run to the working directory",
	}
)

func main() {
	app := &cli.App{
		Name:      AppName,
		Usage:     "run an Intcode program",
		ArgsUsage: "<image file>",
		Version:   Version(),
		Flags:     []cli.Flag{inputFlag, traceFlag, profileFlag},
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one image file")
	}

	if ctx.Bool(profileFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	image, err := program.LoadFile(ctx.Args().First())
	if err != nil {
		return err
	}

	p, scripted, err := makePort(ctx.String(inputFlag.Name))
	if err != nil {
		return err
	}

	var trace vm.TraceFunc
	if ctx.Bool(traceFlag.Name) {
		trace = func(i *vm.Instruction) { log.Println(i) }
	}

	machine, err := vm.New(image, p, trace)
	if err != nil {
		return err
	}

	result, err := machine.Run()
	if err != nil {
		return err
	}

	// A stream port prints outputs as they happen; a scripted
	// port captures them, so flush them here.
	if scripted {
		for _, v := range result.Outputs {
			fmt.Println(v)
		}
	}

	log.Println("halted, cell zero =", result.Value)
	return nil
}

// makePort builds the machine's I/O port. An empty script selects the
// interactive stdin/stdout port.
func makePort(script string) (port.Port, bool, error) {
	if script == "" {
		return port.NewStream(os.Stdin, os.Stdout), false, nil
	}

	fields := strings.Split(script, ",")
	values := make([]int, len(fields))

	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, false, errors.Wrapf(err, "input value %d", i)
		}
		values[i] = v
	}

	return port.NewScript(values...), true, nil
}
