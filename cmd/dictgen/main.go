package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/japaniel/kotoba/pkg/dictgen"
)

func main() {
	overwrite := flag.Bool("overwrite", false, "Overwrite an existing dictionary.jsonl")
	noCache := flag.Bool("no-cache", false, "Re-download the JMDict export even when cached")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [directory]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Builds dictionary.jsonl from the JMDict export and the JLPT")
		fmt.Fprintln(flag.CommandLine.Output(), "vocabulary lists (jlpt-voc-1.utf.txt .. jlpt-voc-4.utf.txt)")
		fmt.Fprintln(flag.CommandLine.Output(), "found in directory (default: working directory).")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := dictgen.Run(ctx, dir, *overwrite, *noCache); err != nil {
		log.Fatalf("Failed to build dictionary: %v", err)
	}
	fmt.Println("Wrote dictionary.jsonl")
}
