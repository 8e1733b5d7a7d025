package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

type summaryTotals struct {
	documents int
	elements  int
	subpaths  int
	points    int
	failed    int
}

func renderSummaryTable(results []m.Result) (string, summaryTotals) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Elements", "Subpaths", "Points", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var totals summaryTotals

	for _, res := range results {
		elements, subpaths, points, failed := len(res.Elements), res.Subpaths(), res.Points(), res.Failed()

		table.Append([]string{
			string(res.Document.Source),
			strconv.Itoa(elements),
			strconv.Itoa(subpaths),
			strconv.Itoa(points),
			strconv.Itoa(failed),
		})

		totals.documents++
		totals.elements += elements
		totals.subpaths += subpaths
		totals.points += points
		totals.failed += failed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", totals.documents),
		strconv.Itoa(totals.elements),
		strconv.Itoa(totals.subpaths),
		strconv.Itoa(totals.points),
		strconv.Itoa(totals.failed),
	})

	table.Render()

	return tableBuffer.String(), totals
}

func elementLabel(el m.Element) string {
	if el.ID != "" {
		return fmt.Sprintf("path #%d (%s)", el.Index, el.ID)
	}

	return fmt.Sprintf("path #%d", el.Index)
}

func shardLabel(shardIndex, shardCount int) string {
	if shardCount <= 1 {
		return ""
	}

	return fmt.Sprintf(" (Shard %d/%d)", shardIndex, shardCount)
}
