package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/pqpath/compare"
	"github.com/katalvlaran/pqpath/dijkstra"
)

// previewLen caps how many sorted values a table cell shows.
const previewLen = 8

func status(err error) string {
	if err != nil {
		return "FAIL: " + err.Error()
	}
	return "ok"
}

// renderSortReport prints one row per backing.
func renderSortReport(w io.Writer, rep *compare.Report[[]int]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"backing", "elapsed", "status", "output"})
	table.SetAutoWrapText(false)
	for _, run := range rep.Runs {
		table.Append([]string{run.Kind.String(), run.Elapsed.String(), status(run.Err), preview(run.Output)})
	}
	table.Render()
}

// renderPathReport prints one row per vertex with the distance and path of
// every backing side by side.
func renderPathReport(w io.Writer, rep *compare.Report[*dijkstra.Result], vertices []int) {
	table := tablewriter.NewWriter(w)
	header := []string{"vertex"}
	for _, run := range rep.Runs {
		header = append(header, run.Kind.String())
	}
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, v := range vertices {
		row := []string{strconv.Itoa(v)}
		for _, run := range rep.Runs {
			row = append(row, describe(run.Output, v))
		}
		table.Append(row)
	}
	footer := []string{"status"}
	for _, run := range rep.Runs {
		footer = append(footer, fmt.Sprintf("%s %s", status(run.Err), run.Elapsed))
	}
	table.SetFooter(footer)
	table.Render()
}

func describe(res *dijkstra.Result, v int) string {
	if res == nil {
		return "-"
	}
	if !res.Reachable(v) {
		return "unreachable"
	}
	return fmt.Sprintf("%d %v", res.Distance(v), res.Path(v))
}

func preview(values []int) string {
	parts := make([]string, 0, min(len(values), previewLen)+1)
	for i, v := range values {
		if i == previewLen {
			parts = append(parts, fmt.Sprintf("… (%d total)", len(values)))
			break
		}
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}
