package main

import (
	"fmt"
	"log"
	"os"
)

type Command int

const (
	COMMAND_BUILD Command = iota
	COMMAND_HELP
)

type CliResult struct {
	Command     Command
	InputPath   string
	OutputPath  string
	Minified    bool
	PrintTokens bool
	Debug       bool
	LogFile     string
}

var HELP_COMMAND string = `superss - A stylesheet language that compiles to plain CSS.
Write nested selectors, mixins and aliases, get browser-ready CSS out.

Usage:
  superss <command> [arguments]

Available Commands:
  build <file> [flags]   Compiles the stylesheet to CSS
      <file>             Path to the stylesheet
      -min               Emit minified CSS
      -tokens            Print the token stream before compiling
      -o <path>          Write the output to a file instead of stdout
      -debug             Enable debug logging
      -log-file <path>   Also write logs to the given file

  help                   Show this help message

Examples:
  superss build style.sss                 Compile and print the CSS
  superss build style.sss -min            Compile to minified CSS
  superss build style.sss -o style.css    Compile into style.css
`

func cli() (CliResult, error) {
	result := CliResult{}

	args := os.Args[1:]
	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "help":
		result.Command = COMMAND_HELP
	case "build":
		result.Command = COMMAND_BUILD

		if len(args) < 2 {
			return result, fmt.Errorf("build requires a file path")
		}
		inputPath := args[1]

		_, err := os.Stat(inputPath)
		if err != nil {
			log.Fatalf("No such file or directory: %s\n", inputPath)
		}
		result.InputPath = inputPath

		rest := args[2:]
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case "-min":
				result.Minified = true
			case "-tokens":
				result.PrintTokens = true
			case "-debug":
				result.Debug = true
			case "-o":
				if i+1 >= len(rest) {
					return result, fmt.Errorf("-o requires a path")
				}
				i++
				result.OutputPath = rest[i]
			case "-log-file":
				if i+1 >= len(rest) {
					return result, fmt.Errorf("-log-file requires a path")
				}
				i++
				result.LogFile = rest[i]
			default:
				return result, fmt.Errorf("unknown flag: %s", rest[i])
			}
		}
	default:
		return result, fmt.Errorf("unknown command %q, run 'superss help'", command)
	}
	return result, nil
}
