// Package charting renders histograms of generator output for eyeball
// checks of the distributions.
package charting

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/charts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bucketize splits samples into equal-width buckets over their range
// and returns bucket labels with occupancy counts.
func Bucketize(samples []float64, buckets int) ([]string, []int) {
	var labels = make([]string, buckets)
	var counts = make([]int, buckets)
	if len(samples) == 0 {
		return labels, counts
	}
	min, max := floats.Min(samples), floats.Max(samples)
	width := (max - min) / float64(buckets)
	if width == 0 {
		width = 1
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3g", min+width*float64(i))
	}
	for _, s := range samples {
		bucket := int((s - min) / width)
		if bucket >= buckets {
			bucket = buckets - 1
		}
		counts[bucket]++
	}
	return labels, counts
}

// BuildHistogram builds a bar chart of the sample distribution,
// annotated with the sample moments.
func BuildHistogram(title string, samples []float64, buckets int, refresh bool) *charts.Bar {
	mean, stddev := stat.MeanStdDev(samples, nil)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{
			Title: title,
			Subtitle: fmt.Sprintf("n=%s mean=%.4f stddev=%.4f",
				humanize.Comma(int64(len(samples))), mean, stddev),
		},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	labels, counts := Bucketize(samples, buckets)
	bar.AddXAxis(labels).AddYAxis("count", counts)
	if refresh {
		bar.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return bar
}
