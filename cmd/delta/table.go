package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/stylo/internal/attribution"
	stylomath "github.com/drakos74/stylo/internal/math"
	"github.com/olekukonko/tablewriter"
)

// render prints the attributions, the per author scores and the accuracy.
func render(w io.Writer, report attribution.Report) {
	attributions := tablewriter.NewWriter(w)
	attributions.SetHeader([]string{"Title", "Author", "Predicted", "Nearest", "Distance", "Delta", ""})
	attributions.SetAutoFormatHeaders(true)
	attributions.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	attributions.SetAlignment(tablewriter.ALIGN_LEFT)
	attributions.SetBorder(false)
	for _, a := range report.Attributions {
		mark := "x"
		if a.Correct() {
			mark = "ok"
		}
		attributions.Append([]string{
			a.Title,
			string(a.Author),
			string(a.Predicted),
			a.Nearest,
			stylomath.Format(a.Distance, 4),
			stylomath.Format(a.Delta, 4),
			mark,
		})
	}
	attributions.Render()

	fmt.Fprintln(w)

	scores := tablewriter.NewWriter(w)
	scores.SetHeader([]string{"Author", "Support", "Predicted", "Correct", "Precision", "Recall"})
	scores.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	scores.SetAlignment(tablewriter.ALIGN_LEFT)
	scores.SetBorder(false)
	for _, s := range report.Scores {
		scores.Append([]string{
			string(s.Author),
			strconv.Itoa(s.Support),
			strconv.Itoa(s.Predicted),
			strconv.Itoa(s.Correct),
			stylomath.Format(s.Precision, 2),
			stylomath.Format(s.Recall, 2),
		})
	}
	scores.Render()

	fmt.Fprintf(w, "\nrun %s metric=%s features=%d references=%d accuracy=%s\n",
		report.ID, report.Metric, report.Features, report.References, stylomath.Percent(report.Accuracy))
}
