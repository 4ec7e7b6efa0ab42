// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestRender(t *testing.T) {
	values := map[string]string{
		"owner": "Ordo Templi Orientis",
		"dates": "1904",
	}

	tests := []struct {
		name            string
		template        string
		want            string
		wantPlaceholder string
	}{
		{
			name:     "substitutes_values",
			template: "Copyright (C) {dates} {owner}",
			want:     "Copyright (C) 1904 Ordo Templi Orientis",
		},
		{
			name:     "repeated_placeholder",
			template: "{owner}/{owner}",
			want:     "Ordo Templi Orientis/Ordo Templi Orientis",
		},
		{
			name:     "no_placeholders",
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "unterminated_tag_is_literal",
			template: "open { brace",
			want:     "open { brace",
		},
		{
			name:            "unknown_placeholder",
			template:        "{nonexistent}",
			wantPlaceholder: "nonexistent",
		},
		{
			name:            "format_spec_is_unsupported",
			template:        "{dates:04d}",
			wantPlaceholder: "dates:04d",
		},
		{
			name:            "double_brace_is_not_an_escape",
			template:        "{{owner}}",
			wantPlaceholder: "{owner",
		},
		{
			name:            "metadata_is_not_a_placeholder",
			template:        "{owner} {substring}",
			wantPlaceholder: "substring",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.template, values)
			if tt.wantPlaceholder != "" {
				require.Error(t, err, "Render should fail")
				var te *TemplateError
				require.True(t, errors.As(err, &te), "error should be a TemplateError")
				assert.Equal(t, tt.wantPlaceholder, te.Placeholder, "placeholder should be named")
				assert.Contains(t, err.Error(), "{"+tt.wantPlaceholder+"}")
				return
			}
			require.NoError(t, err, "Render should succeed")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	known := []string{"owner", "dates"}

	assert.NoError(t, Check("{owner} {dates}", known))
	assert.NoError(t, Check("", known))

	err := Check("{owner} {root}", known)
	require.Error(t, err)
	var te *TemplateError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "root", te.Placeholder)
}
