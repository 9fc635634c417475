package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polyroots/polyroots/internal/config"
	"github.com/polyroots/polyroots/pkg/solver"
	"github.com/polyroots/polyroots/pkg/stats"
)

// rootsOutput is the JSON shape of a root search, shared with the HTTP API.
type rootsOutput struct {
	Polynomial string  `json:"polynomial"`
	Degree     int     `json:"degree"`
	Roots      []int64 `json:"roots"`
	Cached     bool    `json:"cached"`
}

type evalOutput struct {
	Polynomial string `json:"polynomial"`
	X          int64  `json:"x"`
	Value      string `json:"value,omitempty"`
	Root       bool   `json:"root"`
}

// averagesOutput holds the selected averages; unselected ones are omitted.
type averagesOutput struct {
	Count  int       `json:"count"`
	Mean   *float64  `json:"mean,omitempty"`
	Median *float64  `json:"median,omitempty"`
	Modes  []float64 `json:"modes,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRoots prints a root search. Text output is one root per line and
// nothing at all when there are no roots.
func writeRoots(w io.Writer, format string, res *solver.Result, cached bool) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, rootsOutput{
			Polynomial: res.Polynomial,
			Degree:     res.Degree,
			Roots:      res.Roots,
			Cached:     cached,
		})

	case config.FormatTable:
		t := newTable("#", "root")
		for i, r := range res.Roots {
			t.Row(strconv.Itoa(i+1), strconv.FormatInt(r, 10))
		}
		fmt.Fprintln(w, StyleTitle.Render(res.Polynomial))
		fmt.Fprintln(w, t.Render())
		printStats(w, cached, fmt.Sprintf("degree %d", res.Degree), plural(len(res.Roots), "root"))
		return nil

	default:
		for _, r := range res.Roots {
			fmt.Fprintln(w, r)
		}
		return nil
	}
}

func writeEval(w io.Writer, format string, out evalOutput, showValue bool) error {
	switch format {
	case config.FormatJSON:
		if !showValue {
			out.Value = ""
		}
		return writeJSON(w, out)

	case config.FormatTable:
		t := newTable("polynomial", "x", "value", "root")
		t.Row(out.Polynomial, strconv.FormatInt(out.X, 10), out.Value, strconv.FormatBool(out.Root))
		fmt.Fprintln(w, t.Render())
		return nil

	default:
		if showValue {
			fmt.Fprintln(w, out.Value)
		} else {
			fmt.Fprintln(w, out.Root)
		}
		return nil
	}
}

func writeAverages(w io.Writer, format string, out averagesOutput) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, out)

	case config.FormatTable:
		t := newTable("average", "value")
		for _, row := range averageRows(out) {
			t.Row(row[0], row[1])
		}
		fmt.Fprintln(w, t.Render())
		printStats(w, false, plural(out.Count, "value"))
		return nil

	default:
		for _, row := range averageRows(out) {
			fmt.Fprintf(w, "%s: %s\n", row[0], row[1])
		}
		return nil
	}
}

func averageRows(out averagesOutput) [][2]string {
	var rows [][2]string
	if out.Mean != nil {
		rows = append(rows, [2]string{"Mean", formatFloat(*out.Mean)})
	}
	if out.Median != nil {
		rows = append(rows, [2]string{"Median", formatFloat(*out.Median)})
	}
	if out.Modes != nil {
		modes := make([]string, len(out.Modes))
		for i, m := range out.Modes {
			modes[i] = formatFloat(m)
		}
		rows = append(rows, [2]string{"Mode", strings.Join(modes, ", ")})
	}
	return rows
}

func newAveragesOutput(s stats.Summary, mean, median, mode bool) averagesOutput {
	out := averagesOutput{Count: s.Count}
	if mean {
		out.Mean = &s.Mean
	}
	if median {
		out.Median = &s.Median
	}
	if mode {
		out.Modes = s.Modes
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
