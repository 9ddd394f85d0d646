package main

import (
	"flag"
	"log"
	"os"

	"github.com/redlinelabs/tpu/asm"
	"github.com/redlinelabs/tpu/bus"
	"github.com/redlinelabs/tpu/vm"
)

func main() {
	var source string
	var maxSteps int
	var verbose bool

	flag.StringVar(&source, "c", "", "RGAL source file to assemble and run")
	flag.IntVar(&maxSteps, "n", 1_000_000, "maximum Step calls before giving up")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}
	if source == "" {
		log.Fatalf("%v: -c is required", os.Args[0])
	}

	f, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer f.Close()

	prog, err := asm.Assemble(f)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	b := bus.NewSimBus()
	m := vm.New(prog, b)
	m.Verbose = verbose

	for steps := 0; !m.IsHalted(); steps++ {
		if steps >= maxSteps {
			log.Fatalf("%v: exceeded %d steps without halting", source, maxSteps)
		}
		m.Step()
	}

	log.Print(m)
	if fault := m.LastFault(); fault != nil {
		log.Fatal(fault)
	}
}
