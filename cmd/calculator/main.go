// Command calculator is a small REPL and one-shot evaluator over the
// calculator package. It is a thin external collaborator: argument
// parsing and line reading only, no grammar logic of its own.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arrenn/parsec/calculator"
)

func main() {
	if len(os.Args) > 1 {
		os.Exit(runOneShot(strings.Join(os.Args[1:], " ")))
	}
	runREPL(os.Stdin, os.Stdout)
}

func runOneShot(expression string) int {
	result, errMsg := calculator.Parse(expression)
	if errMsg != "" {
		fmt.Fprintln(os.Stderr, errMsg)
		return 1
	}
	fmt.Println(result)
	return 0
}

func runREPL(in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit", "q":
			return
		}

		result, errMsg := calculator.Parse(line)
		if errMsg != "" {
			fmt.Fprintln(out, errMsg)
			continue
		}
		fmt.Fprintln(out, result)
	}
}
