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
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/walteh/unbeheader/pkg/config"
	"github.com/walteh/unbeheader/pkg/filetype"
	"github.com/walteh/unbeheader/pkg/tmpl"
)

// 🏭 Generate renders the header for cfg using the comment skeleton of a
// file type. The result is right-trimmed line by line and always ends in
// exactly one newline.
func Generate(skel filetype.Skeleton, cfg *config.Config) (string, error) {
	start := cfg.FirstYear()
	dates := strconv.Itoa(start)
	if start != cfg.EndYear {
		dates = fmt.Sprintf("%d - %d", start, cfg.EndYear)
	}

	rendered, err := tmpl.Render(cfg.Template, map[string]string{
		"comment_start":  skel.Start,
		"comment_middle": skel.Middle,
		"comment_end":    skel.End,
		"owner":          cfg.Owner,
		"dates":          dates,
		"start_year":     strconv.Itoa(start),
		"end_year":       strconv.Itoa(cfg.EndYear),
	})
	if err != nil {
		return "", err
	}

	rendered = strings.ReplaceAll(strings.TrimSpace(rendered), "\r\n", "\n")
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, "\n") + "\n", nil
}
