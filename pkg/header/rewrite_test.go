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

package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/unbeheader/pkg/filetype"
)

const (
	thelemaHeader = "# This file is part of Thelema.\n# Copyright (C) 1904 Ordo Templi Orientis\n"
	beware        = "print('Beware of the knowledge you will gain.')\n"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name        string
		ext         string
		content     string
		want        string
		wantFound   bool
		wantChanged bool
	}{
		{
			name:        "header_only_file_becomes_empty",
			ext:         "py",
			content:     thelemaHeader,
			want:        "",
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "partial_header_is_completed",
			ext:         "py",
			content:     "# This file is part of Thelema.\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "leading_newlines_are_removed",
			ext:         "py",
			content:     "\n\n" + thelemaHeader + "\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "outdated_year_is_updated",
			ext:         "py",
			content:     "# This file is part of Thelema.\n# Copyright (C) 1486 Ordo Templi Orientis\n\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "no_blank_line_after_shebang",
			ext:         "py",
			content:     "#!/usr/bin/env python\n\n" + thelemaHeader + "\n" + beware,
			want:        "#!/usr/bin/env python\n" + thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "many_blank_lines_after_shebang",
			ext:         "py",
			content:     "#!/usr/bin/env python\n\n\n" + thelemaHeader + "\n" + beware,
			want:        "#!/usr/bin/env python\n" + thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "missing_header_is_added",
			ext:         "py",
			content:     beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   false,
			wantChanged: true,
		},
		{
			name:        "missing_header_is_added_after_shebang",
			ext:         "py",
			content:     "#!/usr/bin/env python\n\n" + beware,
			want:        "#!/usr/bin/env python\n" + thelemaHeader + "\n" + beware,
			wantFound:   false,
			wantChanged: true,
		},
		{
			name:        "up_to_date_file_is_unchanged",
			ext:         "py",
			content:     thelemaHeader + "\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: false,
		},
		{
			name:        "missing_blank_line_is_added",
			ext:         "py",
			content:     thelemaHeader + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "extra_blank_lines_are_collapsed",
			ext:         "py",
			content:     thelemaHeader + "\n\n\n\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "unrelated_comment_is_kept",
			ext:         "py",
			content:     "# just a comment\n" + beware,
			want:        thelemaHeader + "\n# just a comment\n" + beware,
			wantFound:   false,
			wantChanged: true,
		},
		{
			name:        "empty_file",
			ext:         "py",
			content:     "",
			want:        "",
			wantChanged: false,
		},
		{
			name:        "whitespace_only_file",
			ext:         "py",
			content:     "\n  \n\t\n",
			want:        "\n  \n\t\n",
			wantChanged: false,
		},
		{
			name:        "shebang_only_file",
			ext:         "sh",
			content:     "#!/bin/sh\n",
			want:        "#!/bin/sh\n",
			wantChanged: false,
		},
		{
			name:        "shebang_and_header_only",
			ext:         "sh",
			content:     "#!/bin/sh\n" + thelemaHeader,
			want:        "#!/bin/sh\n",
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "js_block_header_is_replaced",
			ext:         "js",
			content:     "/* This file is part of Thelema.\n * Copyright (C) 1486 Someone\n */\n\nfoo();\n",
			want:        "// This file is part of Thelema.\n// Copyright (C) 1904 Ordo Templi Orientis\n\nfoo();\n",
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "js_line_header_is_replaced",
			ext:         "jsx",
			content:     "// This file is part of Thelema.\n// Copyright (C) 1486 Someone\nfoo();\n",
			want:        "// This file is part of Thelema.\n// Copyright (C) 1904 Ordo Templi Orientis\n\nfoo();\n",
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "css_header_is_added",
			ext:         "css",
			content:     "body {}\n",
			want:        "/* This file is part of Thelema.\n * Copyright (C) 1904 Ordo Templi Orientis\n */\n\nbody {}\n",
			wantFound:   false,
			wantChanged: true,
		},
		{
			name:        "css_header_is_updated",
			ext:         "css",
			content:     "/* This file is part of Thelema.\n * Copyright (C) 1486 Ordo Templi Orientis\n */\nbody {}\n",
			want:        "/* This file is part of Thelema.\n * Copyright (C) 1904 Ordo Templi Orientis\n */\n\nbody {}\n",
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "header_after_code_is_replaced_in_place",
			ext:         "py",
			content:     "import os\n\n# This file is part of Thelema.\n",
			want:        "import os\n\n" + thelemaHeader,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "blank_line_after_coding_comment_is_kept",
			ext:         "py",
			content:     "# -*- coding: utf-8 -*-\n\n# This file is part of Thelema.\n" + beware,
			want:        "# -*- coding: utf-8 -*-\n\n" + thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
		{
			name:        "crlf_current_header_is_unchanged",
			ext:         "py",
			content:     "# This file is part of Thelema.\r\n# Copyright (C) 1904 Ordo Templi Orientis\r\n\r\nprint('x')\r\n",
			want:        "# This file is part of Thelema.\r\n# Copyright (C) 1904 Ordo Templi Orientis\r\n\r\nprint('x')\r\n",
			wantFound:   true,
			wantChanged: false,
		},
		{
			name:        "crlf_body_is_normalised",
			ext:         "py",
			content:     "print('x')\r\n",
			want:        thelemaHeader + "\nprint('x')\n",
			wantFound:   false,
			wantChanged: true,
		},
		{
			name:        "crlf_header_is_replaced",
			ext:         "py",
			content:     "# This file is part of Thelema.\r\n# Copyright (C) 1486 Ordo Templi Orientis\r\n\r\n" + beware,
			want:        thelemaHeader + "\n" + beware,
			wantFound:   true,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := filetype.Lookup(tt.ext)
			require.True(t, ok, "extension should be registered")

			got, err := Rewrite(tt.content, rule, newConfig())
			require.NoError(t, err, "Rewrite should succeed")
			assert.Equal(t, tt.want, got.Content, "content should match")
			assert.Equal(t, tt.wantFound, got.Found, "found should match")
			assert.Equal(t, tt.wantChanged, got.Changed, "changed should match")
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []string{
		beware,
		"#!/usr/bin/env python\n" + beware,
		"#!/usr/bin/env python\n\n\n# This file is part of Thelema.\n" + beware,
		"\n\n# This file is part of Thelema.\n# Copyright (C) 1486 Ordo Templi Orientis\n\n\n\n" + beware,
		thelemaHeader,
		"#!/bin/sh\n" + thelemaHeader,
		"# This file is part of Thelema.\n" + beware + "\n# This file is part of Thelema.\n" + beware,
	}

	rule, _ := filetype.Lookup("py")
	for i, input := range inputs {
		first, err := Rewrite(input, rule, newConfig())
		require.NoError(t, err, "first rewrite of input %d should succeed", i)

		second, err := Rewrite(first.Content, rule, newConfig())
		require.NoError(t, err, "second rewrite of input %d should succeed", i)
		assert.False(t, second.Changed, "second rewrite of input %d should not change anything", i)
		assert.Equal(t, first.Content, second.Content, "input %d should be stable", i)
	}
}

func TestRewriteBlankLineInvariant(t *testing.T) {
	rule, _ := filetype.Lookup("py")
	for blanks := 0; blanks <= 4; blanks++ {
		content := thelemaHeader + strings.Repeat("\n", blanks) + beware
		got, err := Rewrite(content, rule, newConfig())
		require.NoError(t, err)
		assert.Equal(t, thelemaHeader+"\n"+beware, got.Content, "%d blank lines should become one", blanks)
	}
}

func TestRewriteScenario(t *testing.T) {
	rule, _ := filetype.Lookup("py")
	cfg := newConfig()
	cfg.Owner = "O"
	cfg.Template = "{comment_start} This file is part of T.\n{comment_middle} Copyright (C) {dates} {owner}\n{comment_end}"

	got, err := Rewrite("print('x')", rule, cfg)
	require.NoError(t, err)
	assert.Equal(t, "# This file is part of T.\n# Copyright (C) 1904 O\n\nprint('x')", got.Content)
	assert.False(t, got.Found, "header should be reported as missing")
	assert.True(t, got.Changed)
}

func TestRewriteTemplateError(t *testing.T) {
	rule, _ := filetype.Lookup("py")
	cfg := newConfig()
	cfg.Template = "{nonexistent}"

	_, err := Rewrite(beware, rule, cfg)
	require.Error(t, err, "Rewrite should fail")
	assert.Contains(t, err.Error(), "nonexistent")

	got, err := Rewrite("", rule, cfg)
	require.NoError(t, err, "empty content never renders the template")
	assert.False(t, got.Changed)
}
