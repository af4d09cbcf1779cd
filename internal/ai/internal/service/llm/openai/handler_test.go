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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/recruit/internal/ai/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Invoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got map[string]any
	server := gin.New()
	server.POST("/chat/completions", func(ctx *gin.Context) {
		require.NoError(t, ctx.BindJSON(&got))
		ctx.JSON(http.StatusOK, map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "deepseek-v3",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"question": "q"}`,
					},
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     10,
				"completion_tokens": 5,
				"total_tokens":      15,
			},
		})
	})
	httpServer := httptest.NewServer(server)
	defer httpServer.Close()

	h := NewHandler(Config{
		BaseURL: httpServer.URL + "/",
		APIKey:  "test-key",
		Model:   "deepseek-v3",
	}, option.WithMaxRetries(0))
	resp, err := h.Invoke(context.Background(), domain.LLMRequest{
		Tid:          "tid-1",
		Biz:          domain.BizRegenerateQuestion,
		SystemPrompt: "只返回 JSON",
		Prompt:       "重新生成",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LLMResponse{
		Tokens: 15,
		Answer: `{"question": "q"}`,
	}, resp)

	assert.Equal(t, "deepseek-v3", got["model"])
	data, err := json.Marshal(got["messages"])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"role":"system","content":"只返回 JSON"},{"role":"user","content":"重新生成"}]`, string(data))
}

func TestHandler_InvokeFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.POST("/chat/completions", func(ctx *gin.Context) {
		ctx.JSON(http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"message": "mock error"},
		})
	})
	httpServer := httptest.NewServer(server)
	defer httpServer.Close()

	h := NewHandler(Config{BaseURL: httpServer.URL + "/", Model: "deepseek-v3"}, option.WithMaxRetries(0))
	_, err := h.Invoke(context.Background(), domain.LLMRequest{Prompt: "重新生成"})
	assert.Error(t, err)
}
