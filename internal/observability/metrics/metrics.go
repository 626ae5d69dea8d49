package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	tokenClientLatency           *prometheus.HistogramVec
	queueSendErrorCounter        prometheus.Counter
	httpRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram      *prometheus.HistogramVec
	pollerLastSuccessGauge       *prometheus.GaugeVec
	ledgerOperationDuration      *prometheus.HistogramVec
	totalStakedGauge             prometheus.Gauge
	rewardIndexGauge             prometheus.Gauge
	cooldownAccountsGauge        *prometheus.GaugeVec
	dbLatency                    *prometheus.HistogramVec
)

func init() {
	registerMetrics()
}

// Init starts the metrics server.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	tokenClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_client_latency_seconds",
			Help:    "Histogram of token client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	pollerLastSuccessGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "poller_last_success_timestamp_seconds",
			Help: "Unix time of the last poll that finished without error",
		},
		[]string{"type"},
	)

	ledgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Ledger operation duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_staked",
			Help: "Total staked amount in whole tokens",
		},
	)

	rewardIndexGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_reward_index",
			Help: "Last value of the global reward index scaled down by 1e18",
		},
	)

	cooldownAccountsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_cooldown_accounts",
			Help: "Number of accounts per cooldown state",
		},
		[]string{"state"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		tokenClientLatency,
		queueSendErrorCounter,
		httpRequestDurationHistogram,
		pollerDurationHistogram,
		pollerLastSuccessGauge,
		ledgerOperationDuration,
		totalStakedGauge,
		rewardIndexGauge,
		cooldownAccountsGauge,
		dbLatency,
	)
}

func RecordTokenClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	tokenClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordLedgerOperation(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	ledgerOperationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

// RecordLedgerTotals takes values already scaled down to whole tokens.
func RecordLedgerTotals(totalStaked, rewardIndex float64) {
	totalStakedGauge.Set(totalStaked)
	rewardIndexGauge.Set(rewardIndex)
}

func RecordCooldownAccounts(counts map[string]int) {
	for state, count := range counts {
		cooldownAccountsGauge.WithLabelValues(state).Set(float64(count))
	}
}

// StartHttpRequestDurationTimer starts a timer to measure incoming http request duration.
// The route is passed on completion since chi resolves it while routing.
func StartHttpRequestDurationTimer(method string) func(path string, statusCode int) {
	startTime := time.Now()
	return func(path string, statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(
			method,
			path,
			strconv.Itoa(statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
