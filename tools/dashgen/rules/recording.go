package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "souqly-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "souqly-recording",
					Rules: []Rule{
						{
							Record: "souqly:http_requests:rate5m",
							Expr:   `sum(rate(souqly_http_requests_total[5m]))`,
						},
						{
							Record: "souqly:http_errors:rate5m",
							Expr:   `sum(rate(souqly_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "souqly:ingestion_products:rate5m",
							Expr:   `rate(souqly_ingestion_products_total[5m])`,
						},
						{
							Record: "souqly:ingestion_errors:rate5m",
							Expr:   `rate(souqly_ingestion_errors_total[5m])`,
						},
						{
							Record: "souqly:feed_api_calls:rate5m",
							Expr:   `rate(souqly_feed_api_calls_total[5m])`,
						},
						{
							Record: "souqly:session_failures:rate5m",
							Expr:   `sum(rate(souqly_session_read_failures_total[5m])) + sum(rate(souqly_session_write_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
