package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "=== %s ===\n\n", r.Suite)

	header := []string{"Case", "Expression", "Expected", "Got", "Latency", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		row := []string{
			res.Case.ID,
			res.Case.Expression,
			expected(res.Case),
			got(res),
			res.Latency.String(),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "latency: mean=%s median=%s p95=%s max=%s\n",
		r.Latency.Mean, r.Latency.Median, r.Latency.P95, r.Latency.Max)

	return tw.Flush()
}

func expected(c Case) string {
	if c.ExpectsError() {
		return "error: " + c.Error
	}
	return c.Postfix
}

func got(res Result) string {
	if res.Reason != "" {
		return "error: " + res.Reason
	}
	return res.Got
}
