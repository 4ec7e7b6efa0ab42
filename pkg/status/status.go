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

package status

// 📊 Outcome is what happened, or would happen, to a file's header
type Outcome int

const (
	OutcomeAdding    Outcome = iota // no header, file written
	OutcomeMissing                  // no header, check mode
	OutcomeUpdating                 // outdated header, file written
	OutcomeIncorrect                // outdated header, check mode
)

// String returns the message prefix for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMissing:
		return "Missing header in"
	case OutcomeUpdating:
		return "Updating header in"
	case OutcomeIncorrect:
		return "Incorrect header in"
	default:
		return "Adding header in"
	}
}

// Classify maps whether a header was found, and whether the run only
// checks, to an outcome.
func Classify(found, check bool) Outcome {
	switch {
	case found && check:
		return OutcomeIncorrect
	case found:
		return OutcomeUpdating
	case check:
		return OutcomeMissing
	default:
		return OutcomeAdding
	}
}
