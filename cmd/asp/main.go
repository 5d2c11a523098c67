package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/BlakeFreer/asp/isa"
)

// extensions maps each output format to its default file extension.
var extensions = map[string]string{
	"asm": "s",
	"hex": "hex",
	"mif": "mif",
}

func main() {
	var format string
	var output string
	var hex bool
	var verbose bool

	flag.StringVar(&format, "f", "mif", "Output format: asm, hex, or mif")
	flag.StringVar(&output, "o", "", "Output filename, by default out.<fmt>")
	flag.BoolVar(&hex, "H", false, "Input file is machine code")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one input file, got %v", os.Args[0], flag.Args())
	}
	input := flag.Arg(0)

	ext, ok := extensions[format]
	if !ok {
		log.Fatalf("%v: unknown format '%v'", os.Args[0], format)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	var prog *isa.Program
	var errs []error
	if hex {
		prog, errs = isa.DecodeProgram(inf)
	} else {
		asm := &isa.Assembler{Verbose: verbose}
		prog, errs = asm.Parse(inf)
	}
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "%v: %v\n", input, err)
	}
	if prog == nil {
		log.Fatalf("%v: exiting due to errors", input)
	}

	if verbose {
		fmt.Println("---- Assembly ----")
		fmt.Println(prog.Text())
		fmt.Println("---- Machine Code ----")
		for _, bin := range prog.Binary() {
			fmt.Printf("%08b\n", bin)
		}
	}

	var contents []byte
	switch format {
	case "asm":
		contents = []byte(prog.Text())
	case "hex":
		contents = prog.Binary()
	case "mif":
		mif, err := prog.Mif()
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		contents = []byte(mif)
	}

	if len(output) == 0 {
		output = "out." + ext
	}

	err = os.WriteFile(output, contents, 0o666)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	log.Printf("Output saved to %v", output)
}
