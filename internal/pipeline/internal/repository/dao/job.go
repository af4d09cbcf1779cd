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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Job 职位，流程定义以 JSON 的形式整体存储
type Job struct {
	ID          int64                    `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	CompanyUID  string                   `gorm:"type:VARCHAR(64);NOT NULL;index:idx_company_uid;comment:'所属公司'"`
	Title       string                   `gorm:"type:VARCHAR(255);NOT NULL;comment:'职位名称'"`
	Description string                   `gorm:"type:TEXT;comment:'职位描述'"`
	Status      string                   `gorm:"type:VARCHAR(32);NOT NULL;comment:'职位状态'"`
	Rounds      sqlx.JsonColumn[[]Round] `gorm:"type:json;comment:'招聘流程'"`
	Ctime       int64
	Utime       int64
}

func (Job) TableName() string {
	return "jobs"
}

// Round 招聘流程中的一个轮次
type Round struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	AssessmentID      string   `json:"assessmentId,omitempty"`
	AssessmentName    string   `json:"assessmentName,omitempty"`
	SelectionCriteria *float64 `json:"selectionCriteria,omitempty"`
	AutoProceed       bool     `json:"autoProceed"`
	Disabled          bool     `json:"disabled"`
	DueInHours        int      `json:"dueInHours,omitempty"`
}

type JobDAO interface {
	Save(ctx context.Context, job Job) (int64, error)
	FindByID(ctx context.Context, id int64) (Job, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	List(ctx context.Context, companyUID string, offset, limit int) ([]Job, error)
	Count(ctx context.Context, companyUID string) (int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Save(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Utime = now
	if job.ID == 0 {
		job.Ctime = now
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"description",
			"rounds",
			"utime",
		}),
	}).Create(&job).Error
	return job.ID, err
}

func (g *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (g *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return g.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}).Error
}

func (g *GORMJobDAO) List(ctx context.Context, companyUID string, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := g.where(ctx, companyUID).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (g *GORMJobDAO) Count(ctx context.Context, companyUID string) (int64, error) {
	var cnt int64
	err := g.where(ctx, companyUID).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

// where companyUID 为空时不过滤，平台管理员使用
func (g *GORMJobDAO) where(ctx context.Context, companyUID string) *gorm.DB {
	db := g.db.WithContext(ctx)
	if companyUID != "" {
		db = db.Where("company_uid = ?", companyUID)
	}
	return db
}
