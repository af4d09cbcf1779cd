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

package event

import "context"

const FeedbackEventName = "feedback_events"

// FeedbackEvent 新增反馈后发送，供统计和通知使用
type FeedbackEvent struct {
	ID          int64  `json:"id"`
	JobID       int64  `json:"jobId"`
	ApplicantID int64  `json:"applicantId"`
	RoundID     int    `json:"roundId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

//go:generate mockgen -source=./event.go -package=evtmocks -destination=./mocks/event.mock.go -typed FeedbackEventProducer
type FeedbackEventProducer interface {
	Produce(ctx context.Context, evt FeedbackEvent) error
}
