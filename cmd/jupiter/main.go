// Package main provides the Jupiter matrix toolkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jupiter-num/jupiter/engine"
	"github.com/jupiter-num/jupiter/loader"
	"github.com/jupiter-num/jupiter/stats"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Jupiter %s\n", version)
			return
		case "info":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: jupiter info <file>")
				os.Exit(2)
			}
			if err := info(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "jupiter: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Jupiter - Dense Matrix Toolkit for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version        Show version")
	fmt.Println("  info <file>    Show shape and summary statistics of a matrix file")
}

func info(path string) error {
	eng := engine.New()
	m, err := loader.Load(path, eng)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d\n", path, m.Rows(), m.Cols())
	fmt.Printf("  min:    %g\n", stats.Min(m))
	fmt.Printf("  max:    %g\n", stats.Max(m))
	fmt.Printf("  mean:   %g\n", stats.Mean(m))
	fmt.Printf("  stddev: %g\n", stats.StdDev(m))
	fmt.Printf("  fro:    %g\n", stats.NormFro(m))
	return nil
}
