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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	testCases := []struct {
		name    string
		nodeID  uint
		apps    []App
		wantErr error
	}{
		{
			name:    "节点号超出限制",
			nodeID:  32,
			apps:    []App{AppInvitation},
			wantErr: ErrExceedNode,
		},
		{
			name:    "业务线超出限制",
			nodeID:  3,
			apps:    []App{AppInvitation, 32},
			wantErr: ErrExceedApp,
		},
		{
			name:   "正常创建",
			nodeID: 31,
			apps:   []App{AppInvitation, 1, 31},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator(tc.nodeID, tc.apps...)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, err := NewGenerator(7, AppInvitation, 5)
	require.NoError(t, err)

	ids := make(map[int64]struct{}, 20000)
	for _, app := range []App{AppInvitation, 5} {
		for i := 0; i < 10000; i++ {
			id, err := g.Generate(app)
			require.NoError(t, err)
			assert.Equal(t, app, id.App())
			assert.Equal(t, uint(7), id.Node())
			_, ok := ids[id.Int64()]
			require.False(t, ok)
			ids[id.Int64()] = struct{}{}
		}
	}

	_, err = g.Generate(6)
	assert.ErrorIs(t, err, ErrUnknownApp)
}
