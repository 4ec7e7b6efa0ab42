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
	"regexp"
	"strings"
	"unicode"

	"github.com/walteh/unbeheader/pkg/config"
	"github.com/walteh/unbeheader/pkg/filetype"
)

const shebangPrefix = "#!/"

// 📊 Result is the outcome of rewriting the content of one file
type Result struct {
	Content string // content after the rewrite
	Found   bool   // whether an existing header was found
	Changed bool   // whether Content differs from the input
}

// 🔄 Rewrite puts the header described by cfg at the top of content.
//
// An existing header is any comment block matched by rule.Pattern that
// contains cfg.Substring. It is replaced in place; when none is found a new
// header is prepended. Exactly one blank line separates the header from
// the code that follows, a leading shebang line stays first, and a file
// holding nothing but its header becomes empty. Line endings are
// normalised to LF before comparing, so CRLF content with a current header
// is unchanged.
func Rewrite(content string, rule filetype.Rule, cfg *config.Config) (Result, error) {
	unchanged := Result{Content: content}
	if isBlank(content) {
		return unchanged, nil
	}

	text := normalizeNewlines(content)
	body := text
	shebang := ""
	if strings.HasPrefix(text, shebangPrefix) {
		shebang, body, _ = strings.Cut(text, "\n")
		if isBlank(body) {
			return unchanged, nil
		}
	}

	header, err := Generate(rule.Skeleton, cfg)
	if err != nil {
		return Result{}, err
	}

	body, found := splice(body, rule.Pattern, cfg.Substring, header)
	body = strings.TrimLeftFunc(body, unicode.IsSpace)
	if !found {
		body = header + "\n" + body
	}
	if shebang != "" {
		body = shebang + "\n" + body
	}

	if body == text {
		return Result{Content: content, Found: found}, nil
	}
	return Result{
		Content: body,
		Found:   found,
		Changed: true,
	}, nil
}

// splice replaces every comment block of body that contains substring with
// header. The whitespace after a replaced block is collapsed to a single
// blank line, or dropped when nothing follows.
func splice(body string, pattern *regexp.Regexp, substring, header string) (string, bool) {
	var (
		out    strings.Builder
		cursor int
		found  bool
	)

	for _, loc := range pattern.FindAllStringIndex(body, -1) {
		start, end := loc[0], loc[1]
		if start < cursor || !strings.Contains(body[start:end], substring) {
			continue
		}
		found = true

		rest := strings.TrimLeftFunc(body[end:], unicode.IsSpace)
		if out.Len() == 0 && isBlank(body[cursor:start]) && rest == "" {
			// nothing but the header, keep the file empty
			return "", true
		}

		out.WriteString(body[cursor:start])
		out.WriteString(header)
		if rest != "" {
			out.WriteByte('\n')
		}
		cursor = len(body) - len(rest)
	}

	out.WriteString(body[cursor:])
	return out.String(), found
}

// normalizeNewlines turns CRLF and lone CR line endings into LF
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
