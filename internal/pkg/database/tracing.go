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

package database

import (
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
	startKey            = "tracing:start"
)

// GormTracingPlugin 为每一次数据库操作创建一个 span，并记录慢查询
type GormTracingPlugin struct {
	tracer trace.Tracer
	// slowThreshold 为 0 时不记录慢查询
	slowThreshold time.Duration
	logger        *elog.Component
}

type Option func(p *GormTracingPlugin)

func WithSlowThreshold(threshold time.Duration) Option {
	return func(p *GormTracingPlugin) {
		p.slowThreshold = threshold
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *GormTracingPlugin) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

func NewGormTracingPlugin(opts ...Option) *GormTracingPlugin {
	p := &GormTracingPlugin{
		tracer:        otel.GetTracerProvider().Tracer(instrumentationName),
		slowThreshold: 200 * time.Millisecond,
		logger:        elog.DefaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type registerFunc func(name string, fn func(*gorm.DB)) error

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	processors := []struct {
		op     string
		before registerFunc
		after  registerFunc
	}{
		{op: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "ROW", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
		{op: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
	}
	for _, pc := range processors {
		if err := pc.before("tracing:before_"+pc.op, p.before(pc.op)); err != nil {
			return err
		}
		if err := pc.after("tracing:after_"+pc.op, p.after(pc.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
		db.InstanceSet(startKey, time.Now())
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		table := db.Statement.Table
		if db.Statement.Schema != nil {
			table = db.Statement.Schema.Table
		}
		sql := db.Statement.SQL.String()
		span.SetAttributes(
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.table", table),
			attribute.String("db.operation", op),
			attribute.String("db.statement", sql),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		)
		// 没有找到记录属于正常的业务结果
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if p.slowThreshold <= 0 {
			return
		}
		if start, ok := db.InstanceGet(startKey); ok {
			cost := time.Since(start.(time.Time))
			if cost >= p.slowThreshold {
				p.logger.Warn("慢查询",
					elog.String("table", table),
					elog.String("sql", sql),
					elog.FieldCost(cost),
				)
			}
		}
	}
}
