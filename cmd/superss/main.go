package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Kirk-KD/SuperStyleSheet/internal/compiler"
	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer"
	"github.com/Kirk-KD/SuperStyleSheet/internal/parser"
)

func main() {
	args, err := cli()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
		return
	case COMMAND_BUILD:
		if args.Debug {
			level.Set(slog.LevelDebug)
		}
		logger, closeLogger, err := newLogger(args.LogFile)
		if err != nil {
			log.Fatal(err)
		}
		defer closeLogger()

		css, err := build(args, logger)
		if err != nil {
			// Positioned diagnostics were already printed by the collector.
			logger.Error("build failed", "error", err)
			os.Exit(1)
		}

		if args.OutputPath != "" {
			err := os.WriteFile(args.OutputPath, []byte(css), 0644)
			if err != nil {
				log.Fatal(err)
			}
			logger.Debug("wrote output", "path", args.OutputPath, "bytes", len(css))
			return
		}
		fmt.Println(css)
	}
}

func build(args CliResult, logger *slog.Logger) (string, error) {
	collector := diagnostics.New()

	lex, err := lexer.NewFromFilePath(args.InputPath, collector)
	if err != nil {
		return "", err
	}
	tokens, err := lex.Tokenize()
	if err != nil {
		return "", err
	}
	logger.Debug("tokenized", "path", args.InputPath, "tokens", len(tokens))

	if args.PrintTokens {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	p := parser.New(tokens, collector)
	root, err := p.Parse()
	if err != nil {
		return "", err
	}
	logger.Debug("parsed", "statements", len(root.Statements))

	c := compiler.New(root, collector)
	css, err := c.Compile(args.Minified)
	if err != nil {
		return "", err
	}
	logger.Debug("compiled", "minified", args.Minified)
	return css, nil
}
