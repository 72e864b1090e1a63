package chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// Renderer draws charts in process with go-chart; the worker serves it over AMQP
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer producing images of the given size
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	return &Renderer{width: width, height: height}
}

// Render returns the PNG bytes of the chart
func (r *Renderer) Render(ctx context.Context, req entity.ChartRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var peak int64
	for _, v := range req.Values {
		if v < 0 {
			return nil, errs.NewValidationError("values", "must not be negative", errs.ErrInvalidRequest)
		}
		peak = max(peak, v)
	}
	if peak == 0 {
		return nil, errs.ErrEmptyChart
	}

	var buf bytes.Buffer
	var err error
	if req.ChartType == entity.ChartBarplot {
		err = r.bar(req, float64(peak)).Render(gochart.PNG, &buf)
	} else {
		err = r.pie(req).Render(gochart.PNG, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: render %s: %s", errs.ErrChartUnavailable, req.ChartType, err.Error())
	}
	return buf.Bytes(), nil
}

func (r *Renderer) pie(req entity.ChartRequest) gochart.PieChart {
	values := make([]gochart.Value, 0, len(req.Values))
	for i, v := range req.Values {
		if v == 0 {
			continue
		}
		values = append(values, gochart.Value{Label: req.Labels[i], Value: float64(v)})
	}
	return gochart.PieChart{
		Title:  req.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}
}

func (r *Renderer) bar(req entity.ChartRequest, peak float64) gochart.BarChart {
	bars := make([]gochart.Value, len(req.Values))
	for i, v := range req.Values {
		bars[i] = gochart.Value{Label: req.Labels[i], Value: float64(v)}
	}

	const spacing = 8
	barWidth := max((r.width-80)/len(bars)-spacing, 6)

	return gochart.BarChart{
		Title:      req.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: peak},
		},
		Bars: bars,
	}
}
