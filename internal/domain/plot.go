package domain

// Plot carries everything a renderer needs for one chart: the series plus its
// title and axis labels. Renderers hold no cross-call state; each Plot is a
// complete, standalone description.
type Plot struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Series YearlySeries `json:"series"`
}

// AverageMagnitudePlot labels an average-magnitude series for rendering.
func AverageMagnitudePlot(s YearlySeries) Plot {
	return Plot{
		Title:  "Average Magnitude per Year",
		XLabel: "Year",
		YLabel: "Average magnitude",
		Series: s,
	}
}

// QuakesPerYearPlot labels an event-count series for rendering.
func QuakesPerYearPlot(s YearlySeries) Plot {
	return Plot{
		Title:  "Number of Earthquakes per Year",
		XLabel: "Year",
		YLabel: "Earthquakes",
		Series: s,
	}
}
