// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce     sync.Once
	requestDuration *prometheus.SummaryVec
	requestTotal    *prometheus.CounterVec
	requestInFlight *prometheus.GaugeVec
)

func initCollectors() {
	labels := []string{"server", "method", "path", "status"}
	requestDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "recruit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP 请求的响应时间",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recruit",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP 请求总数",
	}, labels)
	requestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "recruit",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "正在处理的 HTTP 请求数",
	}, []string{"server"})
}

// MetricsBuilder C 端和管理端共用同一组指标，用 server 标签区分
type MetricsBuilder struct {
	server string
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	metricsOnce.Do(initCollectors)
	return &MetricsBuilder{server: server}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		inFlight := requestInFlight.WithLabelValues(b.server)
		inFlight.Inc()
		defer inFlight.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 未命中路由，避免把任意路径当成标签
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		requestDuration.WithLabelValues(b.server, ctx.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(b.server, ctx.Request.Method, path, status).Inc()
	}
}
