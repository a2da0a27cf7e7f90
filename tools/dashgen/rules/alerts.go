package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// souqly operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "souqly-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "souqly-alerts",
					Rules: []Rule{
						{
							Alert: "SouqlyDown",
							Expr:  `absent(up{job="souqly"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "souqly is down",
								"description": "The souqly job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "SouqlyReadinessDown",
							Expr:  `souqly_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "souqly readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "SouqlyHighErrorRate",
							Expr:  `souqly:http_errors:rate5m / souqly:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on souqly",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "SouqlyIngestionErrors",
							Expr:  `souqly:ingestion_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Ingestion errors detected",
								"description": "The feed ingestion pipeline has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "SouqlyFeedQuotaHigh",
							Expr:  `souqly_feed_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Feed API daily usage is above 80% of the quota",
								"description": "Daily affiliate feed API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "SouqlyFeedLimitReached",
							Expr:  `increase(souqly_feed_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Feed API daily limit has been reached",
								"description": "The affiliate feed API daily quota has been exhausted. Ingestion is paused until reset.",
							},
						},
						{
							Alert: "SouqlyNotificationFailures",
							Expr:  `increase(souqly_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more price alert notifications (webhooks) have failed to send.",
							},
						},
						{
							Alert: "SouqlySessionWriteFailures",
							Expr:  `sum(rate(souqly_session_write_failures_total[5m])) > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Session store write failures are elevated",
								"description": "Session data writes are failing at more than 0.1/s for the last 5 minutes. Check the Redis session store.",
							},
						},
					},
				},
			},
		},
	}
}
