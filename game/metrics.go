package game

import "github.com/prometheus/client_golang/prometheus"

// InstrumentRenderer wraps a renderer to time every frame.
func InstrumentRenderer(r Renderer) Renderer { return &metrics{r} }

var (
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks simulated.",
		},
	)
	applesEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "apples_eaten_total",
			Help:      "Apples eaten by the snake.",
		},
	)
	resets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "resets_total",
			Help:      "Snake resets by cause.",
		},
		[]string{"cause"},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "length",
			Help:      "Current target length of the snake.",
		},
	)
	tickRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "speed",
			Help:      "Current speed in ticks per second.",
		},
	)
	renderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "render",
			Name:      "frame_seconds",
			Help:      "Time spent drawing a frame.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticks, applesEaten, resets, snakeLength, tickRate, renderDuration)
}

type metrics struct{ r Renderer }

func (m *metrics) Render(f *Frame) error {
	t := prometheus.NewTimer(renderDuration)
	defer t.ObserveDuration()
	return m.r.Render(f)
}
