// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器统计, 定期输出到日志
package metrics

import (
	"context"
	"time"

	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Registry 全局统计
var Registry = go_metrics.NewRegistry()

//Counter 计数
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, Registry)
}

//Timer 计时
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name, Registry)
}

//Meter 速率
func Meter(name string) go_metrics.Meter {
	return go_metrics.GetOrRegisterMeter(name, Registry)
}

//Gauge 当前值
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(name, Registry)
}

//StartMetrics 根据配置定期把统计数据写到日志, ctx 结束时退出
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	interval := time.Duration(cfg.Interval) * time.Second
	mlog.Info("StartMetrics", "interval", interval)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Report(Registry)
			}
		}
	}()
}

//Report 输出一次
func Report(r go_metrics.Registry) {
	r.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case go_metrics.Counter:
			mlog.Info("counter", "name", name, "count", metric.Count())
		case go_metrics.Gauge:
			mlog.Info("gauge", "name", name, "value", metric.Value())
		case go_metrics.Meter:
			m := metric.Snapshot()
			mlog.Info("meter", "name", name, "count", m.Count(), "rate1", m.Rate1(), "mean", m.RateMean())
		case go_metrics.Timer:
			t := metric.Snapshot()
			ps := t.Percentiles([]float64{0.5, 0.99})
			mlog.Info("timer", "name", name, "count", t.Count(),
				"mean", time.Duration(t.Mean()), "p50", time.Duration(ps[0]), "p99", time.Duration(ps[1]))
		}
	})
}
