package suite

import (
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
)

// Run converts every case with p and compares the outcome with the expectation.
func Run(p *parser.Parser, s *Suite) Report {
	report := Report{Suite: s.Name, Results: make([]Result, 0, len(s.Cases))}

	for _, c := range s.Cases {
		res := Result{Case: c}

		start := time.Now()
		postfix, err := p.Parse(c.Expression)
		res.Latency = time.Since(start)
		if err != nil {
			res.Reason = ReasonOf(err)
			res.Passed = c.ExpectsError() && res.Reason == c.Error
		} else {
			res.Got = postfix.String()
			res.Passed = !c.ExpectsError() && res.Got == c.Postfix
		}

		if !res.Passed {
			slog.Debug("suite case failed", "suite", s.Name, "case", c.ID, "got", res.Got, "reason", res.Reason)
		}
		report.Results = append(report.Results, res)
	}

	durations := make([]time.Duration, len(report.Results))
	for i, res := range report.Results {
		durations[i] = res.Latency
	}
	report.Latency = ComputeLatencyStats(durations)

	return report
}

// ReasonOf maps a conversion error to its reason code.
func ReasonOf(err error) string {
	var pe *parser.Error
	var ve *token.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, token.ErrUnrecognizedChar):
		return "unrecognized_char"
	case errors.As(err, &pe):
		return string(pe.Reason)
	case errors.As(err, &ve):
		return "invalid_infix"
	case errors.Is(err, parser.ErrMalformedPostfix):
		return "invalid_postfix"
	default:
		return "unknown"
	}
}
