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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

// FeedbackDAO 反馈只有插入，没有更新和删除
type FeedbackDAO interface {
	Create(ctx context.Context, fb Feedback) (int64, error)
	List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]Feedback, error)
	Count(ctx context.Context, jobID int64, roundID int) (int64, error)
	Stats(ctx context.Context, jobID int64) ([]RoundStat, error)
}

type feedbackDAO struct {
	db *egorm.Component
}

func NewFeedbackDAO(db *egorm.Component) FeedbackDAO {
	return &feedbackDAO{
		db: db,
	}
}

func (f *feedbackDAO) Create(ctx context.Context, fb Feedback) (int64, error) {
	fb.Ctime = time.Now().UnixMilli()
	err := f.db.WithContext(ctx).Create(&fb).Error
	return fb.Id, err
}

func (f *feedbackDAO) List(ctx context.Context, jobID int64, roundID int, offset, limit int) ([]Feedback, error) {
	var res []Feedback
	err := f.filter(ctx, jobID, roundID).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (f *feedbackDAO) Count(ctx context.Context, jobID int64, roundID int) (int64, error) {
	var count int64
	err := f.filter(ctx, jobID, roundID).Model(&Feedback{}).Count(&count).Error
	return count, err
}

func (f *feedbackDAO) Stats(ctx context.Context, jobID int64) ([]RoundStat, error) {
	var res []RoundStat
	err := f.db.WithContext(ctx).Model(&Feedback{}).
		Select("round_id, COUNT(*) AS cnt, AVG(rating) AS avg_rating").
		Where("job_id = ?", jobID).
		Group("round_id").
		Order("round_id asc").
		Scan(&res).Error
	return res, err
}

// filter roundID 为 0 时不按轮次过滤
func (f *feedbackDAO) filter(ctx context.Context, jobID int64, roundID int) *egorm.Component {
	db := f.db.WithContext(ctx).Where("job_id = ?", jobID)
	if roundID > 0 {
		db = db.Where("round_id = ?", roundID)
	}
	return db
}

type Feedback struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	JobId       int64  `gorm:"index:idx_job_round;not null;comment:职位ID"`
	RoundId     int    `gorm:"index:idx_job_round;not null;comment:轮次ID"`
	ApplicantId int64  `gorm:"index;not null;comment:投递记录ID"`
	Uid         int64  `gorm:"not null;comment:候选人ID"`
	Rating      int    `gorm:"type:tinyint;not null;comment:评分 1-5"`
	Comment     string `gorm:"type:text;comment:内容"`
	Ctime       int64
}

func (Feedback) TableName() string {
	return "feedbacks"
}

type RoundStat struct {
	RoundId   int
	Cnt       int64
	AvgRating float64
}
