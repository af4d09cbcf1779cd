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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/ai/internal/domain"
	"github.com/ecodeclub/recruit/internal/ai/internal/service/llm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// jsonExpr 大模型经常在 JSON 外面包一层 markdown
const jsonExpr = `(?s)\{.*\}`

var (
	ErrInvalidInput  = errors.New("生成参数不完整")
	ErrInvalidAnswer = errors.New("大模型返回的内容无法解析")
)

const systemPrompt = "你是一名资深的招聘面试官。只输出一个 JSON 对象，不要输出任何解释、注释或者 markdown 标记。"

//go:generate mockgen -source=./generator.go -package=svcmocks -destination=./mocks/generator.mock.go -typed Generator
type Generator interface {
	// GenerateInterview 根据职位和轮次生成完整的面试脚本
	GenerateInterview(ctx context.Context, input domain.InterviewInput) (domain.InterviewScript, error)
	RegenerateQuestion(ctx context.Context, input domain.QuestionInput) (domain.QuestionDraft, error)
}

type generator struct {
	llm    llm.Service
	expr   *regexp.Regexp
	logger *elog.Component
}

func NewGenerator(svc llm.Service) Generator {
	return &generator{
		llm:    svc,
		expr:   regexp.MustCompile(jsonExpr),
		logger: elog.DefaultLogger,
	}
}

func (g *generator) GenerateInterview(ctx context.Context, input domain.InterviewInput) (domain.InterviewScript, error) {
	if strings.TrimSpace(input.JobTitle) == "" || strings.TrimSpace(input.RoundName) == "" {
		return domain.InterviewScript{}, fmt.Errorf("%w: 职位和轮次不能为空", ErrInvalidInput)
	}
	input = input.Normalize()
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "请为职位「%s」的「%s」轮次生成一份面试脚本，使用%s。\n", input.JobTitle, input.RoundName, input.Language)
	if input.JobDescription != "" {
		_, _ = fmt.Fprintf(&sb, "职位描述：%s\n", input.JobDescription)
	}
	if len(input.Skills) > 0 {
		_, _ = fmt.Fprintf(&sb, "重点考察的技能：%s\n", strings.Join(input.Skills, "、"))
	}
	_, _ = fmt.Fprintf(&sb, "需要 %d 道问题。", input.QuestionCount)
	sb.WriteString(`输出格式：{"intro": "开场白", "questions": ["问题"], "outro": "结束语"}`)

	var script domain.InterviewScript
	err := g.invoke(ctx, domain.BizGenerateInterview, sb.String(), &script)
	if err != nil {
		return domain.InterviewScript{}, err
	}
	script.Questions = g.compact(script.Questions)
	if len(script.Questions) == 0 {
		return domain.InterviewScript{}, fmt.Errorf("%w: 没有生成任何问题", ErrInvalidAnswer)
	}
	return script, nil
}

func (g *generator) RegenerateQuestion(ctx context.Context, input domain.QuestionInput) (domain.QuestionDraft, error) {
	if strings.TrimSpace(input.Question) == "" {
		return domain.QuestionDraft{}, fmt.Errorf("%w: 原问题不能为空", ErrInvalidInput)
	}
	input = input.Normalize()
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "职位「%s」的「%s」轮次中有一道面试题：%s\n", input.JobTitle, input.RoundName, input.Question)
	if input.Feedback != "" {
		_, _ = fmt.Fprintf(&sb, "面试官的修改意见：%s\n", input.Feedback)
	}
	_, _ = fmt.Fprintf(&sb, "请使用%s重新出一道考察点相同的题目，并给出 %d 个追问。", input.Language, input.FollowUpCount)
	sb.WriteString(`输出格式：{"question": "新的问题", "followUps": ["追问"]}`)

	var draft domain.QuestionDraft
	err := g.invoke(ctx, domain.BizRegenerateQuestion, sb.String(), &draft)
	if err != nil {
		return domain.QuestionDraft{}, err
	}
	draft.Question = strings.TrimSpace(draft.Question)
	if draft.Question == "" {
		return domain.QuestionDraft{}, fmt.Errorf("%w: 没有生成问题", ErrInvalidAnswer)
	}
	draft.FollowUps = g.compact(draft.FollowUps)
	return draft, nil
}

func (g *generator) invoke(ctx context.Context, biz, prompt string, val any) error {
	tid := shortuuid.New()
	resp, err := g.llm.Invoke(ctx, domain.LLMRequest{
		Tid:          tid,
		Biz:          biz,
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
	})
	if err != nil {
		return err
	}
	raw := g.expr.FindString(resp.Answer)
	if raw == "" {
		g.logger.Warn("大模型没有返回 JSON", elog.String("tid", tid), elog.String("answer", resp.Answer))
		return fmt.Errorf("%w: tid=%s", ErrInvalidAnswer, tid)
	}
	if err = json.Unmarshal([]byte(raw), val); err != nil {
		g.logger.Warn("解析大模型返回的 JSON 失败", elog.String("tid", tid), elog.FieldErr(err))
		return fmt.Errorf("%w: tid=%s, %w", ErrInvalidAnswer, tid, err)
	}
	return nil
}

func (g *generator) compact(src []string) []string {
	src = slice.Map(src, func(idx int, s string) string {
		return strings.TrimSpace(s)
	})
	return slice.FilterMap(src, func(idx int, s string) (string, bool) {
		return s, s != ""
	})
}
