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
	"fmt"
	"time"
)

// Engine 候选人流转的状态机。
// 所有方法都是纯函数：输入当前的职位和候选人，输出新的候选人，
// 出错时返回的候选人与输入一致（ErrStaleResult 除外，此时结果已经写入历史）。
type Engine struct{}

func NewEngine() Engine {
	return Engine{}
}

// Apply 创建投递记录。
// 投递本身就是 application 轮次的结果，所以候选人直接进入 application 之后的第一个轮次。
func (e Engine) Apply(job Job, c Candidate, now time.Time) (Applicant, error) {
	if !job.AcceptsApplicants() {
		return Applicant{}, ErrJobNotAcceptingApplicant
	}
	if err := ValidateRounds(job.Rounds); err != nil {
		return Applicant{}, err
	}
	application := job.Rounds[0]
	a := Applicant{
		JobID:         job.ID,
		Candidate:     c,
		AppliedAt:     now,
		ActiveRoundID: application.ID,
		RoundResults: []RoundResult{
			{RoundID: application.ID, Status: ResultPassed, StartedAt: now, CompletedAt: now},
		},
	}
	first, err := FirstRound(job.Rounds)
	if err != nil {
		return Applicant{}, err
	}
	if first.ID != application.ID {
		a = e.enter(a, first, now)
	}
	a.Status = a.DeriveStatus(job.Rounds)
	return a, nil
}

// RecordResult 写入某个轮次的结果并驱动流转。
// 重复提交同一轮次的结果时覆盖旧结果，已经过去的轮次只记录结果，不会流转。
func (e Engine) RecordResult(job Job, a Applicant, r RoundResult, now time.Time) (Applicant, error) {
	if a.IsTerminal() {
		return a, fmt.Errorf("%w: 候选人已处于终态 %s", ErrInvalidTransition, a.Outcome)
	}
	if !r.Status.IsValid() {
		return a, fmt.Errorf("%w: 未知的结果状态 %s", ErrInvalidResult, r.Status)
	}
	round, err := ResolveRound(job.Rounds, r.RoundID)
	if err != nil {
		return a, err
	}
	// 尚未进入的轮次不接受结果，避免进入后直接凭旧结果推进
	if cur := Order(job.Rounds, a.ActiveRoundID); cur >= 0 && Order(job.Rounds, r.RoundID) > cur {
		return a, fmt.Errorf("%w: 轮次 %d 尚未开始", ErrInvalidTransition, r.RoundID)
	}
	if r.Status == ResultPassed && !round.Passes(r.Score) {
		r.Status = ResultFailed
	}
	if r.Status != ResultPending && r.CompletedAt.IsZero() {
		r.CompletedAt = now
	}

	next := a.clone().upsertResult(r)
	if r.Status != ResultPending {
		// 没有日程的轮次无需处理
		_ = next.CompleteSchedule(r.RoundID, now)
	}
	if r.RoundID != a.ActiveRoundID {
		next.Status = next.DeriveStatus(job.Rounds)
		return next, ErrStaleResult
	}

	switch r.Status {
	case ResultFailed:
		// 筛选失败直接淘汰，其余轮次的失败等待人工决定
		if round.IsScreening() {
			next.Outcome = OutcomeRejected
			next.RejectReason = StatusScreeningFailed.String()
		}
	case ResultPassed:
		if IsLastRound(job.Rounds, round.ID) {
			next.Outcome = OutcomeHired
		} else if round.AutoProceed {
			to, _ := NextRound(job.Rounds, round.ID)
			next = e.enter(next, to, now)
		}
	}
	next.Status = next.DeriveStatus(job.Rounds)
	return next, nil
}

// Advance 人工推进到下一个轮次。
// 只能推进到紧邻的下一个启用轮次，并且当前轮次必须已经通过。
func (e Engine) Advance(job Job, a Applicant, toRoundID int, now time.Time) (Applicant, error) {
	if a.IsTerminal() {
		return a, fmt.Errorf("%w: 候选人已处于终态 %s", ErrInvalidTransition, a.Outcome)
	}
	to, err := ResolveRound(job.Rounds, toRoundID)
	if err != nil {
		return a, err
	}
	cur, err := ResolveRound(job.Rounds, a.ActiveRoundID)
	if err != nil {
		return a, err
	}
	next, ok := NextRound(job.Rounds, cur.ID)
	if !ok || next.ID != to.ID {
		return a, fmt.Errorf("%w: 无法从轮次 %d 推进到轮次 %d", ErrInvalidTransition, cur.ID, to.ID)
	}
	res, ok := a.Result(cur.ID)
	if !ok || res.Status != ResultPassed {
		return a, fmt.Errorf("%w: 轮次 %d 尚未通过", ErrInvalidTransition, cur.ID)
	}
	moved := e.enter(a.clone(), to, now)
	moved.Status = moved.DeriveStatus(job.Rounds)
	return moved, nil
}

// Reject 人工淘汰
func (e Engine) Reject(job Job, a Applicant, reason string) (Applicant, error) {
	if a.IsTerminal() {
		return a, fmt.Errorf("%w: 候选人已处于终态 %s", ErrInvalidTransition, a.Outcome)
	}
	next := a.clone()
	next.Outcome = OutcomeRejected
	next.RejectReason = reason
	next.Status = next.DeriveStatus(job.Rounds)
	return next, nil
}

// enter 进入新的轮次，需要候选人参与并且配置了期限的轮次会自动创建日程
func (e Engine) enter(a Applicant, r Round, now time.Time) Applicant {
	a.ActiveRoundID = r.ID
	if r.Type.RequiresCandidateAction() && r.DueInHours > 0 {
		// 已经存在有效日程时保留原日程
		_, _ = a.IssueSchedule(r.ID, now.Add(time.Duration(r.DueInHours)*time.Hour), now)
	}
	return a
}
