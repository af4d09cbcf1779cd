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

const (
	BizGenerateInterview  = "generate_interview"
	BizRegenerateQuestion = "regenerate_question"
	defaultQuestionCount  = 5
	maxQuestionCount      = 20
	defaultFollowUpCount  = 2
)

// InterviewInput 生成面试脚本需要的职位和轮次信息
type InterviewInput struct {
	JobTitle       string
	JobDescription string
	RoundName      string
	Skills         []string
	QuestionCount  int
	// Language 生成内容使用的语言，默认中文
	Language string
}

func (i InterviewInput) Normalize() InterviewInput {
	if i.QuestionCount <= 0 {
		i.QuestionCount = defaultQuestionCount
	}
	if i.QuestionCount > maxQuestionCount {
		i.QuestionCount = maxQuestionCount
	}
	if i.Language == "" {
		i.Language = "中文"
	}
	return i
}

type InterviewScript struct {
	Intro     string   `json:"intro"`
	Questions []string `json:"questions"`
	Outro     string   `json:"outro"`
}

// QuestionInput 面试官对某一道题不满意，要求重新生成
type QuestionInput struct {
	JobTitle  string
	RoundName string
	Question  string
	// Feedback 面试官的修改意见
	Feedback      string
	FollowUpCount int
	Language      string
}

func (q QuestionInput) Normalize() QuestionInput {
	if q.FollowUpCount <= 0 {
		q.FollowUpCount = defaultFollowUpCount
	}
	if q.Language == "" {
		q.Language = "中文"
	}
	return q
}

type QuestionDraft struct {
	Question  string   `json:"question"`
	FollowUps []string `json:"followUps"`
}
