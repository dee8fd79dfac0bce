// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

var (
	// NanosecondsBuckets are latency buckets sized for CPU bound operations
	// such as hashing and signing.
	NanosecondsBuckets = []float64{
		float64(time.Microsecond),
		float64(10 * time.Microsecond),
		float64(50 * time.Microsecond),
		float64(100 * time.Microsecond),
		float64(250 * time.Microsecond),
		float64(time.Millisecond),
		float64(10 * time.Millisecond),
		float64(100 * time.Millisecond),
		// anything larger than 100 milliseconds will be bucketed together
	}

	BytesBuckets = []float64{
		1 << 6,
		1 << 8,
		1 << 10, // 1 KiB
		1 << 12,
		1 << 14,
		1 << 16,
		1 << 20, // 1 MiB
		// anything larger than 1 MiB will be bucketed together
	}
)
