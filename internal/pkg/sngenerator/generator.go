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

package sngenerator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Generator 生成一次性令牌，由时间戳、业务 ID 末四位和 shortuuid 组成，只包含字母和数字
type Generator struct {
	now  func() time.Time
	uuid func() string
}

type Option func(g *Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithUUID(uuid func() string) Option {
	return func(g *Generator) {
		g.uuid = uuid
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:  time.Now,
		uuid: shortuuid.New,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(id int64) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("业务 ID 不能为负数: %d", id)
	}
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	return fmt.Sprintf("%s%04d%s", ts, id%10000, g.uuid()), nil
}
