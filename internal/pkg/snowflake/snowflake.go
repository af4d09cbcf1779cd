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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// App 业务线，和节点号一起组成雪花算法的 10 位节点
type App uint

const (
	AppInvitation App = iota
)

const (
	nodeBits      = 5
	maxNode  uint = 1<<nodeBits - 1
	maxApp   App  = 1<<(10-nodeBits) - 1
)

var (
	ErrExceedNode = errors.New("节点号超出限制")
	ErrExceedApp  = errors.New("业务线超出限制")
	ErrUnknownApp = errors.New("未注册的业务线")
)

type Generator interface {
	Generate(app App) (ID, error)
}

// +-------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 5 Bit App | 5 Bit Node | 12 Bit Sequence ID |
// +-------------------------------------------------------------------------------+
type generator struct {
	// 初始化后只读
	nodes map[App]*snowflake.Node
}

// NewGenerator 为每个业务线创建一个节点，同一个进程内各业务线的 ID 互不冲突
func NewGenerator(nodeID uint, apps ...App) (Generator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	nodes := make(map[App]*snowflake.Node, len(apps))
	for _, app := range apps {
		if app > maxApp {
			return nil, fmt.Errorf("%w: %d", ErrExceedApp, app)
		}
		n, err := snowflake.NewNode(int64(uint(app)<<nodeBits | nodeID))
		if err != nil {
			return nil, err
		}
		nodes[app] = n
	}
	return &generator{nodes: nodes}, nil
}

func (g *generator) Generate(app App) (ID, error) {
	n, ok := g.nodes[app]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownApp, app)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (id ID) App() App {
	return App(snowflake.ID(id).Node() >> nodeBits)
}

func (id ID) Node() uint {
	return uint(snowflake.ID(id).Node()) & maxNode
}

func (id ID) Int64() int64 {
	return int64(id)
}
