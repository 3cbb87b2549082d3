package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"sparse-calc/internal/matrix"

	"github.com/rs/zerolog"
)

// defaultOutputPath is where the result matrix is persisted.
const defaultOutputPath = "result.txt"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	first := fs.String("first", "", "path to the first matrix file")
	second := fs.String("second", "", "path to the second matrix file")
	op := fs.String("op", "", fmt.Sprintf("operation to perform (%s)", strings.Join(matrix.Operations(), ", ")))
	out := fs.String("out", defaultOutputPath, "path for the result matrix file")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *first == "" || *second == "" || *op == "" {
		fs.Usage()
		return fmt.Errorf("-first, -second and -op are required")
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ctx := context.Background()
	loader := matrix.NewFileLoader(logger)

	a, err := loader.Load(ctx, *first)
	if err != nil {
		return err
	}
	fmt.Println("1st matrix loaded successfully.")

	b, err := loader.Load(ctx, *second)
	if err != nil {
		return err
	}
	fmt.Println("2nd matrix loaded successfully.")

	result, err := matrix.Apply(*op, a, b)
	if err != nil {
		return err
	}

	fmt.Printf("\nOutput of %s operation:\n%s\n", *op, result)

	if err := matrix.NewFileWriter(logger).Save(ctx, *out, result); err != nil {
		return err
	}
	fmt.Printf("\nOutput file saved at: %s\n", *out)

	return nil
}
