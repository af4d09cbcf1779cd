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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// RoundResultConsumer 接收测评系统回传的轮次结果
type RoundResultConsumer struct {
	svc      service.ApplicantService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRoundResultConsumer(svc service.ApplicantService, q mq.MQ) (*RoundResultConsumer, error) {
	const groupID = "pipeline-round-result"
	consumer, err := q.Consumer(event.RoundResultEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RoundResultConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RoundResultConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费轮次结果事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RoundResultConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	var evt event.RoundResultEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}
	_, err = c.svc.RecordCandidateResult(ctx, evt.JobID, evt.CandidateID, domain.RoundResult{
		RoundID:     evt.RoundID,
		Status:      domain.ResultStatus(evt.Status),
		Score:       evt.Score,
		StartedAt:   fromMilli(evt.StartedAt),
		CompletedAt: fromMilli(evt.CompletedAt),
		TimeTaken:   time.Duration(evt.TimeTaken) * time.Millisecond,
		Answers:     evt.Answers,
	})
	switch {
	case errors.Is(err, service.ErrStaleResult),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidResult),
		errors.Is(err, service.ErrRoundNotFound),
		errors.Is(err, service.ErrApplicantNotFound):
		// 重试也不会成功，记录下来即可
		c.logger.Warn("忽略轮次结果",
			elog.FieldErr(err),
			elog.Int64("jobId", evt.JobID),
			elog.Int64("candidateId", evt.CandidateID),
			elog.Int("roundId", evt.RoundID),
		)
		return nil
	default:
		return err
	}
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
