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

import "github.com/ecodeclub/recruit/internal/ai/internal/domain"

type GenerateInterviewReq struct {
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription"`
	RoundName      string   `json:"roundName"`
	Skills         []string `json:"skills"`
	QuestionCount  int      `json:"questionCount"`
	Language       string   `json:"language"`
}

func (r GenerateInterviewReq) toDomain() domain.InterviewInput {
	return domain.InterviewInput{
		JobTitle:       r.JobTitle,
		JobDescription: r.JobDescription,
		RoundName:      r.RoundName,
		Skills:         r.Skills,
		QuestionCount:  r.QuestionCount,
		Language:       r.Language,
	}
}

type RegenerateQuestionReq struct {
	JobTitle      string `json:"jobTitle"`
	RoundName     string `json:"roundName"`
	Question      string `json:"question"`
	Feedback      string `json:"feedback"`
	FollowUpCount int    `json:"followUpCount"`
	Language      string `json:"language"`
}

func (r RegenerateQuestionReq) toDomain() domain.QuestionInput {
	return domain.QuestionInput{
		JobTitle:      r.JobTitle,
		RoundName:     r.RoundName,
		Question:      r.Question,
		Feedback:      r.Feedback,
		FollowUpCount: r.FollowUpCount,
		Language:      r.Language,
	}
}

type InterviewScript struct {
	Intro     string   `json:"intro"`
	Questions []string `json:"questions"`
	Outro     string   `json:"outro"`
}

type QuestionDraft struct {
	Question  string   `json:"question"`
	FollowUps []string `json:"followUps"`
}
