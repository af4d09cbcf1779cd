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

package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidRating = errors.New("评分非法")

// Feedback 候选人完成某一轮之后的反馈，只追加不修改
type Feedback struct {
	ID          int64
	JobID       int64
	ApplicantID int64
	RoundID     int
	UID         int64
	Rating      int
	Comment     string
	Ctime       time.Time
}

func (f Feedback) Validate() error {
	if f.Rating < MinRating || f.Rating > MaxRating {
		return fmt.Errorf("%w: %d 不在 [%d, %d] 之间", ErrInvalidRating, f.Rating, MinRating, MaxRating)
	}
	return nil
}

// RoundStat 某个职位某一轮的反馈汇总
type RoundStat struct {
	RoundID   int
	Count     int64
	AvgRating float64
}
