package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SessionReadFailures returns a timeseries panel showing session read
// failures per second by kind.
func SessionReadFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Session Read Failures").
		Description("Session store read failures per second, by data kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(souqly_session_read_failures_total{job="souqly"}[5m])) by (kind)`,
			"{{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SessionWriteFailures returns a timeseries panel showing session write
// failures per second by kind.
func SessionWriteFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Session Write Failures").
		Description("Session store write failures per second, by data kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(souqly_session_write_failures_total{job="souqly"}[5m])) by (kind)`,
			"{{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
