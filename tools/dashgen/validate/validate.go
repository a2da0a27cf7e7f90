// Package validate checks generated dashboard definitions for broken
// PromQL and references to unknown metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result accumulates validation errors and warnings for one dashboard.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every panel query expression in the dashboard:
// each must parse as PromQL and reference only metrics in known.
// Recording rule names count as metrics. Histogram series suffixes
// (_bucket, _sum, _count) resolve to their base metric name.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	exprs, err := collectExprs(dash)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard contains no query expressions")
		return res
	}

	for _, e := range exprs {
		checkExpr(e, known, &res)
	}
	return res
}

// panelExpr pairs a query expression with the title of the panel it came from.
type panelExpr struct {
	panel string
	expr  string
}

// collectExprs walks the serialized dashboard and gathers every target
// expr together with its panel title. Going through JSON keeps this
// independent of the concrete dataquery types the builders emit.
func collectExprs(dash dashboard.Dashboard) ([]panelExpr, error) {
	raw, err := json.Marshal(dash)
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard: %w", err)
	}

	var doc struct {
		Panels []struct {
			Title   string `json:"title"`
			Targets []struct {
				Expr string `json:"expr"`
			} `json:"targets"`
			Panels []struct {
				Title   string `json:"title"`
				Targets []struct {
					Expr string `json:"expr"`
				} `json:"targets"`
			} `json:"panels"`
		} `json:"panels"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}

	var exprs []panelExpr
	for _, p := range doc.Panels {
		for _, t := range p.Targets {
			exprs = append(exprs, panelExpr{panel: p.Title, expr: t.Expr})
		}
		for _, inner := range p.Panels {
			for _, t := range inner.Targets {
				exprs = append(exprs, panelExpr{panel: inner.Title, expr: t.Expr})
			}
		}
	}
	return exprs, nil
}

func checkExpr(e panelExpr, known map[string]bool, res *Result) {
	if strings.TrimSpace(e.expr) == "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has an empty query expression", e.panel))
		return
	}

	ast, err := parser.ParseExpr(e.expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("panel %q: invalid PromQL %q: %v", e.panel, e.expr, err))
		return
	}

	parser.Inspect(ast, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q: selector without a metric name in %q", e.panel, e.expr))
			return nil
		}
		if !known[name] && !known[stripHistogramSuffix(name)] {
			res.Errors = append(res.Errors, fmt.Sprintf("panel %q: unknown metric %q in %q", e.panel, name, e.expr))
		}
		return nil
	})
}

func stripHistogramSuffix(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
