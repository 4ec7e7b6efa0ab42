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

// Package tmpl renders header templates with `{name}` placeholders over a
// closed set of values.
//
// Only bare names are placeholders. Braces cannot be escaped (`{{` and `}}`
// are not literal braces) and format specs such as `{start_year:04d}` are
// not supported; the whole `start_year:04d` is looked up as a name and
// fails as an unknown placeholder.
package tmpl

import (
	"fmt"
	"io"

	"github.com/valyala/fasttemplate"
	"gitlab.com/tozd/go/errors"
)

const (
	startTag = "{"
	endTag   = "}"
)

// TemplateError is returned when a template references a placeholder that
// has no value.
type TemplateError struct {
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid placeholder {%s} found in template", e.Placeholder)
}

// Render substitutes every placeholder of template with its value.
func Render(template string, values map[string]string) (string, error) {
	out, err := fasttemplate.ExecuteFuncStringWithErr(template, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		v, ok := values[tag]
		if !ok {
			return 0, &TemplateError{Placeholder: tag}
		}
		return w.Write([]byte(v))
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	return out, nil
}

// Check verifies that template only references names from known.
func Check(template string, known []string) error {
	values := make(map[string]string, len(known))
	for _, name := range known {
		values[name] = ""
	}
	_, err := Render(template, values)
	return err
}
