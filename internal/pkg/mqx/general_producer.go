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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// KeyFunc 决定消息的分区键，同一个键的消息保证顺序
type KeyFunc[T any] func(evt T) string

// GeneralProducer 把事件序列化为 JSON 后发送到固定的 topic
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	key      KeyFunc[T]
}

type ProducerOption[T any] func(p *GeneralProducer[T])

func WithKey[T any](fn KeyFunc[T]) ProducerOption[T] {
	return func(p *GeneralProducer[T]) {
		p.key = fn
	}
}

func NewGeneralProducer[T any](q mq.MQ, topic string, opts ...ProducerOption[T]) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	res := &GeneralProducer[T]{
		producer: p,
		topic:    topic,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data}
	if p.key != nil {
		msg.Key = []byte(p.key(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向 topic=%s 发送消息失败: %w", p.topic, err)
	}
	return nil
}
