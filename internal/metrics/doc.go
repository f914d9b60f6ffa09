// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered with the default registry through promauto at
package init, so importing the package is enough to expose them.

Dataset:
  - moodreel_dataset_load_total{origin}
  - moodreel_dataset_load_duration_seconds
  - moodreel_dataset_records
  - moodreel_dataset_rows_skipped_total

Recommendations:
  - moodreel_recommend_requests_total{emotion,policy}
  - moodreel_recommend_duration_seconds
  - moodreel_recommend_cache_total{result}

Upstreams:
  - moodreel_classifier_requests_total{endpoint,status}
  - moodreel_circuit_breaker_state{name}
  - moodreel_circuit_breaker_requests_total{name,result}
  - moodreel_circuit_breaker_state_transitions_total{name,from_state,to_state}

HTTP:
  - moodreel_api_requests_total{method,endpoint,status_code}
  - moodreel_api_request_duration_seconds{method,endpoint}
  - moodreel_api_active_requests
*/
package metrics
