package main

import (
	"fmt"

	"git.sr.ht/~sircmpwn/getopt"
)

const usage = `usage: shunt [options] [expression ...]

options:
  -d       dump the infix and postfix token lists
  -S       strict mode, validate infix and postfix streams
  -s FILE  run the YAML conversion suite in FILE
  -o FILE  write the suite report as JSON to FILE
  -v       debug logging
  -h       help
`

type CliConfig struct {
	Dump        bool
	Strict      bool
	Verbose     bool
	Help        bool
	SuitePath   string
	ReportPath  string
	Expressions []string
}

func ParseArgs(args []string) (*CliConfig, error) {
	opts, optind, err := getopt.Getopts(args, "dSs:o:vh")
	if err != nil {
		return nil, err
	}

	cfg := &CliConfig{}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			cfg.Dump = true
		case 'S':
			cfg.Strict = true
		case 's':
			cfg.SuitePath = opt.Value
		case 'o':
			cfg.ReportPath = opt.Value
		case 'v':
			cfg.Verbose = true
		case 'h':
			cfg.Help = true
		}
	}
	cfg.Expressions = args[optind:]

	if !cfg.Help && cfg.SuitePath == "" && len(cfg.Expressions) == 0 {
		return nil, fmt.Errorf("no expression given")
	}

	return cfg, nil
}
