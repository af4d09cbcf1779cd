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

package openai

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/recruit/internal/ai/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrEmptyAnswer = errors.New("大模型没有返回内容")

type Config struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	// Timeout 单次调用的超时时间
	Timeout time.Duration `yaml:"timeout"`
}

// Handler 兼容 OpenAI 协议的大模型，例如 DeepSeek、通义千问
type Handler struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *elog.Component
}

func NewHandler(cfg Config, opts ...option.RequestOption) *Handler {
	opts = append([]option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
	}, opts...)
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Handler{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))
	resp, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(h.model),
	})
	if err != nil {
		h.logger.Error("调用大模型失败",
			elog.FieldErr(err),
			elog.String("tid", req.Tid),
			elog.String("biz", req.Biz),
		)
		return domain.LLMResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return domain.LLMResponse{}, ErrEmptyAnswer
	}
	return domain.LLMResponse{
		Tokens: resp.Usage.TotalTokens,
		Answer: resp.Choices[0].Message.Content,
	}, nil
}
