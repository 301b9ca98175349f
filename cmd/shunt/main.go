package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/suite"
	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "shunt: %v\n", err)
		fmt.Fprint(stderr, usage)
		return 2
	}
	if cfg.Help {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	p := parser.New(parser.WithStrict(cfg.Strict))

	if cfg.SuitePath != "" {
		return runSuite(p, cfg, stdout, stderr)
	}

	status := 0
	for _, expr := range cfg.Expressions {
		if err := convert(p, expr, cfg.Dump, stdout); err != nil {
			color.New(color.FgRed).Fprintf(stderr, "%s: %v\n", expr, err)
			status = 1
		}
	}
	return status
}

func convert(p *parser.Parser, expr string, dump bool, w io.Writer) error {
	infix, err := p.Tokenize(expr)
	if err != nil {
		return err
	}
	postfix, err := p.Convert(infix)
	if err != nil {
		return err
	}

	if dump {
		header := color.New(color.FgCyan, color.Bold)
		header.Fprintln(w, "infix:")
		if err := infix.Dump(w); err != nil {
			return err
		}
		header.Fprintln(w, "postfix:")
		if err := postfix.Dump(w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, postfix.String())
	return nil
}

func runSuite(p *parser.Parser, cfg *CliConfig, stdout, stderr io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		fmt.Fprintf(stderr, "shunt: %v\n", err)
		return 2
	}
	if s.Strict && !p.Strict() {
		p = parser.New(parser.WithStrict(true))
	}

	report := suite.Run(p, s)

	if err := suite.WriteTable(report, stdout); err != nil {
		fmt.Fprintf(stderr, "shunt: %v\n", err)
		return 2
	}

	if cfg.ReportPath != "" {
		if err := suite.WriteJSON(report, cfg.ReportPath); err != nil {
			fmt.Fprintf(stderr, "shunt: %v\n", err)
			return 2
		}
	}

	failed := len(report.Failed())
	summary := color.New(color.FgGreen)
	if failed > 0 {
		summary = color.New(color.FgRed)
	}
	summary.Fprintf(stdout, "%s: %d/%d passed\n", report.Suite, len(report.Results)-failed, len(report.Results))
	if failed > 0 {
		return 1
	}
	return 0
}
