// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/commitment-signer/utils/logging"
	"github.com/ava-labs/commitment-signer/utils/metric"
	"github.com/ava-labs/commitment-signer/utils/wrappers"
)

type metered[S Signature] struct {
	signer Signer[S]
	log    logging.Logger

	signatures   prometheus.Counter
	signDuration prometheus.Histogram
	messageSize  prometheus.Histogram
}

// NewMetered wraps [signer] so that every signature is counted, timed and
// logged. The returned signatures are exactly those produced by [signer].
func NewMetered[S Signature](
	namespace string,
	signer Signer[S],
	log logging.Logger,
	registerer prometheus.Registerer,
) (Signer[S], error) {
	m := &metered[S]{
		signer: signer,
		log:    log,
		signatures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures",
			Help:      "# of commitments signed",
		}),
		signDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sign_duration",
			Help:      "Latency of a sign call in nanoseconds",
			Buckets:   metric.NanosecondsBuckets,
		}),
		messageSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_bytes",
			Help:      "Size of signed commitments in bytes",
			Buckets:   metric.BytesBuckets,
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.signatures),
		registerer.Register(m.signDuration),
		registerer.Register(m.messageSize),
	)
	return m, errs.Err
}

func (m *metered[S]) Sign(msg []byte) S {
	start := time.Now()
	sig := m.signer.Sign(msg)
	end := time.Now()

	m.signatures.Inc()
	m.signDuration.Observe(float64(end.Sub(start)))
	m.messageSize.Observe(float64(len(msg)))

	m.log.Verbo("signed commitment",
		zap.Int("messageLen", len(msg)),
		zap.Stringer("signature", sig),
	)
	return sig
}
