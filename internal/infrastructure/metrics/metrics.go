// Package metrics exposes Prometheus counters for key generation and codec activity.
package metrics

import (
	"errors"
	"fmt"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rsa_toolkit"

// Collector implements textbook.MetricsRecorder on top of Prometheus counters.
// A nil *Collector records nothing.
type Collector struct {
	keysGenerated *prometheus.CounterVec
	unitsEncoded  prometheus.Counter
	unitsDecoded  prometheus.Counter
	failures      *prometheus.CounterVec
}

var _ textbook.MetricsRecorder = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		keysGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_generated_total",
			Help:      "Key pairs generated, by mode.",
		}, []string{"mode"}),
		unitsEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_encoded_total",
			Help:      "Plaintext bytes encrypted into cipher units.",
		}),
		unitsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_decoded_total",
			Help:      "Cipher units decrypted into plaintext bytes.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed operations, by operation and error kind.",
		}, []string{"op", "kind"}),
	}

	for _, col := range []prometheus.Collector{c.keysGenerated, c.unitsEncoded, c.unitsDecoded, c.failures} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) KeyGenerated(mode string) {
	if c == nil {
		return
	}
	c.keysGenerated.WithLabelValues(mode).Inc()
}

func (c *Collector) UnitsEncoded(n int) {
	if c == nil {
		return
	}
	c.unitsEncoded.Add(float64(n))
}

func (c *Collector) UnitsDecoded(n int) {
	if c == nil {
		return
	}
	c.unitsDecoded.Add(float64(n))
}

func (c *Collector) Failure(op string, err error) {
	if c == nil || err == nil {
		return
	}
	c.failures.WithLabelValues(op, Kind(err)).Inc()
}

// Kind maps an error to a short label value
func Kind(err error) string {
	switch {
	case errors.Is(err, textbook.ErrInvalidPrimeCandidate):
		return "invalid_prime_candidate"
	case errors.Is(err, textbook.ErrNoValidExponent):
		return "no_valid_exponent"
	case errors.Is(err, textbook.ErrNoModularInverse):
		return "no_modular_inverse"
	case errors.Is(err, textbook.ErrMalformedKey):
		return "malformed_key"
	case errors.Is(err, textbook.ErrMalformedCiphertext):
		return "malformed_ciphertext"
	case errors.Is(err, textbook.ErrOutOfRangeDecryptedByte):
		return "out_of_range_byte"
	default:
		return "other"
	}
}
