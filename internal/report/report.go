package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/lucasgdosr/lists/internal/workload"
)

var header = []string{"List", "Ops", "Len", "Resizes", "Moves", "Moves/op", "Rebalances"}

// Write renders one row per result.
func Write(w io.Writer, results []workload.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetAutoFormatHeaders(false)
	for _, r := range results {
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.Operations),
			strconv.Itoa(r.Len),
			strconv.FormatUint(r.Stats.Resizes, 10),
			strconv.FormatUint(r.Stats.Moves, 10),
			fmt.Sprintf("%0.2f", r.MovesPerOp()),
			strconv.FormatUint(r.Stats.Rebalances, 10),
		})
	}
	table.Render()
}
