package strapi

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "statements_content_api_requests_total",
		Help: "Outbound content API requests by resource kind, method and status code.",
	},
	[]string{"kind", "method", "code"},
)

func observeRequest(kind, method string, statusCode int) {
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	requestsTotal.WithLabelValues(kind, method, code).Inc()
}
