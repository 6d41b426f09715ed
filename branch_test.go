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

import (
	"testing"
)

func TestBranch_defaultEndsImmediately(t *testing.T) {
	t.Parallel()

	root := NewBasePhrase(nil, "sink")
	phrase := &sinkPhrase{BasePhrase: root}
	root.self = phrase

	b := phrase.Starts("xyz", 0, 0, 0, nil)
	if b == nil {
		t.Fatal("Starts returned nil")
	}

	closer := b.Ends("", 0, 3, 3)
	if closer == nil {
		t.Fatal("Ends returned nil, want an immediate zero-width close")
	}

	if closer.MatchRelStart() != 0 || closer.MatchRelEnd() != 0 {
		t.Errorf("closer = [%d,%d), want [0,0)", closer.MatchRelStart(), closer.MatchRelEnd())
	}
}

// sinkPhrase exercises BasePhrase's default Starts (spans the whole
// remaining row) without pulling in a derived phrase kind.
type sinkPhrase struct {
	*BasePhrase
}

func TestBranch_isOpenAndClose(t *testing.T) {
	t.Parallel()

	root := NewRootPhrase("root")
	tree, err := Parse([]string{"abc"}, root)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// The root branch's Ends always returns nil, so it is never closed
	// by the crawler; it remains open even though parsing completed.
	if !tree.IsOpen() {
		t.Errorf("RootBranch.IsOpen() = false, want true")
	}

	if _, ok := tree.EndNode(); ok {
		t.Errorf("RootBranch.EndNode() reported closed, want not closed")
	}
}

func TestBranch_linearExpandsBranchesOnly(t *testing.T) {
	t.Parallel()

	root := NewRootPhrase("root")
	bracket := &testBracketPhrase{BasePhrase: NewBasePhrase(nil, "bracket")}
	bracket.BasePhrase.self = bracket
	root.AddPhrase(bracket)

	tree, err := Parse([]string{"a(b)c"}, root)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var labels []string
	for _, n := range tree.Linear() {
		switch v := n.(type) {
		case *Token:
			labels = append(labels, v.Label()+":"+v.Content)
		case *NodeToken:
			labels = append(labels, v.Label()+":"+v.Content)
		}
	}

	want := []string{"RN:", "RT:a", "N:(", "T:b", "N:)", "RT:c", "RN:"}
	if len(labels) != len(want) {
		t.Fatalf("got %d linear nodes %v, want %d %v", len(labels), labels, len(want), want)
	}

	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

// testBracketPhrase is a minimal hand-rolled (non-regex) derived
// phrase used to exercise Branch.Linear without a dependency on the
// simpleregex package.
type testBracketPhrase struct {
	*BasePhrase
}

func (p *testBracketPhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *Branch) *Branch {
	idx := indexByte(remainingRow, '(')
	if idx < 0 {
		return nil
	}

	b := NewBranch(idx, idx+1, "(", rowN, rowViewpoint, absViewpoint, active, p)
	b.SetEnder(EnderFunc(func(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken {
		end := indexByte(remainingRow, ')')
		if end < 0 {
			return nil
		}

		return b.MakeNode(NewCoordinate(end, end+1, rowN, rowViewpoint, absViewpoint), ")")
	}))

	return b
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}

	return -1
}
