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
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode prints err unless it was already reported and maps it to a
// process exit code
func exitCode(err error) int {
	var usage *usageError
	switch {
	case errors.Is(err, errOutdated):
		return 1
	case errors.As(err, &usage):
		pterm.Error.Println(usage.Error())
		return 2
	default:
		pterm.Error.Println(err.Error())
		return 1
	}
}
