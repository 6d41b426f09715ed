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

// Package render turns a parsed region tree into a pretty-printed XML
// string for inspection, the same role visualisation.py's
// pretty_xml_result plays for the original implementation. It is a
// presentation-only consumer of regions' public tree surface, not part
// of the crawler itself.
package render

import (
	"fmt"
	"strings"

	"github.com/ianlewis/regions"
)

// PrettyXML renders tree as an indented XML document: each Branch
// becomes an element tagged with its label ("B", or "RB" for the
// root), carrying its phrase id and coordinate span as attributes, with
// Token and NodeToken children rendered as leaf elements tagged by
// their label ("T", "N", and the root's own "RT"/"RN" variants).
// Coordinates are reported
// 0-based; use PrettyXMLBase to shift the reported row/column/offset
// numbers.
func PrettyXML(tree *regions.RootBranch) string {
	return PrettyXMLBase(tree, 0)
}

// PrettyXMLBase renders tree like PrettyXML but adds base to every
// reported row, column, and absolute offset, letting a caller report
// 1-based positions instead of the crawler's native 0-based ones.
func PrettyXMLBase(tree *regions.RootBranch, base int) string {
	var b strings.Builder

	writeBranch(&b, &tree.Branch, 0, base)

	return b.String()
}

func writeBranch(b *strings.Builder, branch *regions.Branch, depth, base int) {
	indent := strings.Repeat("  ", depth)
	tag := branchTag(branch)

	fmt.Fprintf(b, "%s<%s phrase=%q coord=%q>\n", indent, tag, phraseID(branch), coordAttr(branch.Coordinate, base))

	for _, child := range branch.Children() {
		writeNode(b, child, depth+1, base)
	}

	fmt.Fprintf(b, "%s</%s>\n", indent, tag)
}

func writeNode(b *strings.Builder, n regions.Node, depth, base int) {
	switch v := n.(type) {
	case *regions.Branch:
		writeBranch(b, v, depth, base)
	case *regions.NodeToken:
		writeLeaf(b, v.Label(), v.Content, v.Coordinate, depth, base)
	case *regions.Token:
		writeLeaf(b, v.Label(), v.Content, v.Coordinate, depth, base)
	default:
		panic(fmt.Sprintf("render: unknown node type %T", n))
	}
}

func writeLeaf(b *strings.Builder, label, content string, c regions.Coordinate, depth, base int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s<%s coord=%q>%s</%s>\n", indent, label, coordAttr(c, base), escape(content), label)
}

func coordAttr(c regions.Coordinate, base int) string {
	return fmt.Sprintf("%d:%d:%d/%d:%d",
		c.RowN()+base, c.StartInRow()+base, c.EndInRow()+base, c.AbsStart()+base, c.AbsEnd()+base)
}

func branchTag(b *regions.Branch) string {
	if b.Label() != "" {
		return b.Label()
	}

	return "B"
}

func phraseID(b *regions.Branch) string {
	if b.Phrase == nil {
		return ""
	}

	return fmt.Sprintf("%v", b.Phrase.ID())
}

func escape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)

	return r.String(s)
}
