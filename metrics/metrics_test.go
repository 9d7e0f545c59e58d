// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	Counter("test.counter").Inc(2)
	assert.Equal(t, int64(2), Counter("test.counter").Count())

	Timer("test.timer").Update(time.Millisecond)
	assert.Equal(t, int64(1), Timer("test.timer").Count())

	Gauge("test.gauge").Update(7)
	Meter("test.meter").Mark(1)
	Report(Registry)
}

func TestStartMetrics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartMetrics(ctx, nil)
	StartMetrics(ctx, &types.Metrics{Enable: true, Interval: 1})
}
