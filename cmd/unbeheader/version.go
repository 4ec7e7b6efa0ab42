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

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/unbeheader/pkg/filetype"
)

const shortRevision = 12

// 🏷️ versionInfo is what the version command prints
type versionInfo struct {
	version  string
	revision string
	built    string
	dirty    bool
}

// readVersionInfo collects module and vcs details from the build info
func readVersionInfo() versionInfo {
	info := versionInfo{version: "dev"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.revision = s.Value
			if len(info.revision) > shortRevision {
				info.revision = info.revision[:shortRevision]
			}
		case "vcs.time":
			info.built = s.Value
		case "vcs.modified":
			info.dirty = s.Value == "true"
		}
	}
	return info
}

func (v versionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 unbeheader version info:\n")
	fmt.Fprintf(&b, "Version:   %s\n", v.version)
	if v.revision != "" {
		dirty := ""
		if v.dirty {
			dirty = " (modified)"
		}
		fmt.Fprintf(&b, "Revision:  %s%s\n", v.revision, dirty)
	}
	if v.built != "" {
		fmt.Fprintf(&b, "Built:     %s\n", v.built)
	}
	fmt.Fprintf(&b, "Go:        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "Files:     %s\n", strings.Join(filetype.Extensions(), ", "))
	return b.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), readVersionInfo())
		},
	}
}
