// Copyright 2023 Google LLC
// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package regions

import "context"

// Parse runs a Parser over rows starting from root and returns the
// resulting tree. It is a synchronous, single-call convenience
// wrapper around NewParser(root).Parse: there is no lexer/parser
// handoff to orchestrate here, since the crawler consumes rows
// directly.
func Parse(rows []string, root *RootPhrase) (*RootBranch, error) {
	return NewParser(root).Parse(context.Background(), rows)
}
