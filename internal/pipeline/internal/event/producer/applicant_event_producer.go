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

package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/event"
)

//go:generate mockgen -source=./applicant_event_producer.go -package=evtmocks -destination=../mocks/applicant.mock.go -typed ApplicantEventProducer
type ApplicantEventProducer interface {
	Produce(ctx context.Context, evt event.ApplicantEvent) error
}

type applicantEventProducer struct {
	producer mq.Producer
}

func NewApplicantEventProducer(q mq.MQ) (ApplicantEventProducer, error) {
	producer, err := q.Producer(event.ApplicantEventName)
	if err != nil {
		return nil, err
	}
	return &applicantEventProducer{
		producer: producer,
	}, nil
}

func (p *applicantEventProducer) Produce(ctx context.Context, evt event.ApplicantEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	// 同一个投递记录的事件落在同一个分区，保证顺序
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(strconv.FormatInt(evt.ApplicantID, 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("发送投递流转消息失败: %w", err)
	}
	return nil
}
