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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateApplicant = errors.New("重复投递")
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	// ErrVersionConflict 理论上行锁可以避免，出现时说明有绕过 Transform 的写入
	ErrVersionConflict = errors.New("版本冲突")
)

// Applicant 候选人在某个职位上的投递记录。
// 一行就是一个完整的文档，轮次结果和日程以 JSON 的形式嵌入，保证单行原子更新。
type Applicant struct {
	ID             int64                          `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	JobID          int64                          `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uniq_job_candidate,priority:1;comment:'职位ID'"`
	CandidateID    int64                          `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uniq_job_candidate,priority:2;index:idx_candidate_id;comment:'候选人ID'"`
	CandidateName  string                         `gorm:"type:VARCHAR(255);comment:'候选人姓名'"`
	CandidateEmail string                         `gorm:"type:VARCHAR(255);comment:'候选人邮箱'"`
	ResumeURL      string                         `gorm:"type:VARCHAR(1024);comment:'简历地址'"`
	AppliedAt      int64                          `gorm:"type:BIGINT;NOT NULL;comment:'投递时间'"`
	ActiveRoundID  int                            `gorm:"type:INT;NOT NULL;comment:'当前轮次ID'"`
	Outcome        string                         `gorm:"type:VARCHAR(16);NOT NULL;default:'';comment:'终态，为空表示仍在流程中'"`
	RejectReason   string                         `gorm:"type:VARCHAR(512);comment:'淘汰原因'"`
	Status         string                         `gorm:"type:VARCHAR(32);NOT NULL;index:idx_status;comment:'展示状态，由轮次结果推导'"`
	RoundResults   sqlx.JsonColumn[[]RoundResult] `gorm:"type:json;comment:'轮次结果'"`
	Schedules      sqlx.JsonColumn[[]Schedule]    `gorm:"type:json;comment:'日程'"`
	Version        int64                          `gorm:"type:BIGINT;NOT NULL;default:0;comment:'版本号'"`
	Ctime          int64
	Utime          int64
}

func (Applicant) TableName() string {
	return "applicants"
}

type RoundResult struct {
	RoundID     int            `json:"roundId"`
	Status      string         `json:"status"`
	Score       *float64       `json:"score,omitempty"`
	StartedAt   int64          `json:"startedAt,omitempty"`
	CompletedAt int64          `json:"completedAt,omitempty"`
	TimeTaken   int64          `json:"timeTaken,omitempty"`
	Answers     map[string]any `json:"answers,omitempty"`
}

type Schedule struct {
	RoundID     int    `json:"roundId"`
	Status      string `json:"status"`
	ScheduledAt int64  `json:"scheduledAt"`
	DueDate     int64  `json:"dueDate"`
	CompletedAt int64  `json:"completedAt,omitempty"`
}

type ApplicantDAO interface {
	Create(ctx context.Context, a Applicant) (int64, error)
	FindByID(ctx context.Context, id int64) (Applicant, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (Applicant, error)
	// Transform 在同一个事务内锁定、读取、修改并写回一条投递记录。
	// fn 返回错误时事务回滚，数据库中的记录保持不变。
	Transform(ctx context.Context, id int64, fn func(a Applicant) (Applicant, error)) (Applicant, error)
	ListByJob(ctx context.Context, jobID int64, status string, offset, limit int) ([]Applicant, error)
	CountByJob(ctx context.Context, jobID int64, status string) (int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Applicant, error)
	// CountInFlight 统计当前处于这些轮次并且尚未结束的投递记录
	CountInFlight(ctx context.Context, jobID int64, roundIDs []int) (int64, error)
}

type GORMApplicantDAO struct {
	db *egorm.Component
}

func NewGORMApplicantDAO(db *egorm.Component) ApplicantDAO {
	return &GORMApplicantDAO{db: db}
}

func (g *GORMApplicantDAO) Create(ctx context.Context, a Applicant) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateApplicant
			}
		}
		return 0, err
	}
	return a.ID, nil
}

func (g *GORMApplicantDAO) FindByID(ctx context.Context, id int64) (Applicant, error) {
	var a Applicant
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMApplicantDAO) FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (Applicant, error) {
	var a Applicant
	err := g.db.WithContext(ctx).Where("job_id = ? AND candidate_id = ?", jobID, candidateID).First(&a).Error
	return a, err
}

func (g *GORMApplicantDAO) Transform(ctx context.Context, id int64, fn func(a Applicant) (Applicant, error)) (Applicant, error) {
	var res Applicant
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Applicant
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&cur).Error
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		next.ID, next.JobID, next.CandidateID = cur.ID, cur.JobID, cur.CandidateID
		next.Ctime = cur.Ctime
		next.Version = cur.Version + 1
		next.Utime = time.Now().UnixMilli()
		result := tx.Model(&Applicant{}).
			Where("id = ? AND version = ?", cur.ID, cur.Version).
			Updates(map[string]any{
				"active_round_id": next.ActiveRoundID,
				"outcome":         next.Outcome,
				"reject_reason":   next.RejectReason,
				"status":          next.Status,
				"round_results":   next.RoundResults,
				"schedules":       next.Schedules,
				"version":         next.Version,
				"utime":           next.Utime,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}
		res = next
		return nil
	})
	return res, err
}

func (g *GORMApplicantDAO) ListByJob(ctx context.Context, jobID int64, status string, offset, limit int) ([]Applicant, error) {
	var res []Applicant
	err := g.byJob(ctx, jobID, status).
		Order("applied_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicantDAO) CountByJob(ctx context.Context, jobID int64, status string) (int64, error) {
	var cnt int64
	err := g.byJob(ctx, jobID, status).Model(&Applicant{}).Count(&cnt).Error
	return cnt, err
}

func (g *GORMApplicantDAO) byJob(ctx context.Context, jobID int64, status string) *gorm.DB {
	db := g.db.WithContext(ctx).Where("job_id = ?", jobID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (g *GORMApplicantDAO) ListByCandidate(ctx context.Context, candidateID int64) ([]Applicant, error) {
	var res []Applicant
	err := g.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMApplicantDAO) CountInFlight(ctx context.Context, jobID int64, roundIDs []int) (int64, error) {
	if len(roundIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Applicant{}).
		Where("job_id = ? AND outcome = ? AND active_round_id IN ?", jobID, "", roundIDs).
		Count(&cnt).Error
	return cnt, err
}
