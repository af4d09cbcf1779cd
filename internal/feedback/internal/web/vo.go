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

package web

import (
	"github.com/ecodeclub/recruit/internal/feedback/internal/domain"
)

type SubmitReq struct {
	ApplicantID int64  `json:"applicantId"`
	RoundID     int    `json:"roundId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

type ListReq struct {
	JobID int64 `json:"jobId"`
	// RoundID 为 0 时返回所有轮次
	RoundID int `json:"roundId"`
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
}

type StatsReq struct {
	JobID int64 `json:"jobId"`
}

type Feedback struct {
	ID          int64  `json:"id"`
	ApplicantID int64  `json:"applicantId"`
	RoundID     int    `json:"roundId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Ctime       int64  `json:"ctime"`
}

type RoundStat struct {
	RoundID   int     `json:"roundId"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avgRating"`
}

func newFeedback(fb domain.Feedback) Feedback {
	return Feedback{
		ID:          fb.ID,
		ApplicantID: fb.ApplicantID,
		RoundID:     fb.RoundID,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
		Ctime:       fb.Ctime.UnixMilli(),
	}
}
