package system

import "github.com/prometheus/client_golang/prometheus"

var (
	// phaseDuration tracks wall time spent in one S/C/Q phase of one
	// timestep, labeled by system name and phase, the scheduler analogue
	// of the teacher's engine-level request-latency histogram.
	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hopsancore",
			Subsystem: "scheduler",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of one S/C/Q scheduler phase.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"system", "phase"},
	)

	// activeRuns counts simulations currently in progress per system name.
	activeRuns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hopsancore",
			Subsystem: "scheduler",
			Name:      "active_runs",
			Help:      "Number of Simulate/SimulateMultiThreaded calls currently in flight.",
		},
		[]string{"system"},
	)
)

func init() {
	prometheus.MustRegister(phaseDuration, activeRuns)
}
