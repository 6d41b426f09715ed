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

// Phrase is a grammar rule: a description of how a region begins,
// carrying the set of child phrases permitted inside it. A Phrase is
// process-lifetime state built once before parsing and read only
// during parsing.
//
// Phrase graphs may be cyclic (mutual recursion, direct self-edges).
// The crawler never traverses SubPhrases transitively in a single
// step, only the active branch's own phrase's SubPhrases, so cycles
// are safe by construction.
type Phrase interface {
	// ID returns the phrase's diagnostic identifier. It is opaque to
	// the crawler and used only for rendering and debugging.
	ID() any

	// SubPhrases returns the set of phrases allowed to open as direct
	// children of a branch opened by this phrase. Iteration order over
	// the returned map is unspecified and must not be relied upon.
	SubPhrases() map[Phrase]struct{}

	// AddPhrase adds ph to this phrase's SubPhrases set.
	AddPhrase(ph Phrase)

	// Starts returns a newly constructed candidate Branch whose opening
	// boundary locates the phrase's opener within remainingRow, parented
	// under active, or nil if the phrase does not begin in this
	// remaining-row slice.
	Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *Branch) *Branch

	// NextSearchContent narrows the search text used by subsequent
	// siblings' start probes within the same crawler step. The crawler
	// reaches it through the candidate Branch's NextSearchContent unless
	// that Branch was given its own with SetNextSearchContent. The
	// default is the identity function.
	NextSearchContent(searchContent string) string
}

// BasePhrase is the base implementation of Phrase. Derived phrase kinds
// embed *BasePhrase and shadow Starts (and optionally
// NextSearchContent) with their own match logic; ID, SubPhrases,
// AddPhrase, AddPhrases, AddPhrasesMutual, and AddSelf are inherited
// unchanged through embedding.
type BasePhrase struct {
	// self is the outer Phrase value BasePhrase was embedded into. It
	// lets AddSelf and AddPhrasesMutual add the *derived* phrase (not
	// the embedded BasePhrase) to a sub_phrases set.
	self Phrase

	id         any
	subPhrases map[Phrase]struct{}
}

// NewBasePhrase constructs a BasePhrase for self (typically the struct
// embedding this BasePhrase, passed in during its own constructor) with
// the given diagnostic id.
func NewBasePhrase(self Phrase, id any) *BasePhrase {
	return &BasePhrase{self: self, id: id, subPhrases: make(map[Phrase]struct{})}
}

// ID implements Phrase.
func (p *BasePhrase) ID() any { return p.id }

// SubPhrases implements Phrase.
func (p *BasePhrase) SubPhrases() map[Phrase]struct{} { return p.subPhrases }

// AddPhrase implements Phrase.
func (p *BasePhrase) AddPhrase(ph Phrase) { p.subPhrases[ph] = struct{}{} }

// AddPhrases adds each of phrases as a child phrase and returns p for
// chaining.
func (p *BasePhrase) AddPhrases(phrases ...Phrase) *BasePhrase {
	for _, ph := range phrases {
		p.AddPhrase(ph)
	}

	return p
}

// AddPhrasesMutual adds each of phrases as a child phrase and adds
// self as a child phrase of each of them in turn.
func (p *BasePhrase) AddPhrasesMutual(phrases ...Phrase) *BasePhrase {
	for _, ph := range phrases {
		p.AddPhrase(ph)
		ph.AddPhrase(p.self)
	}

	return p
}

// AddSelf adds self as one of its own child phrases, enabling direct
// recursion.
func (p *BasePhrase) AddSelf() *BasePhrase {
	p.AddPhrase(p.self)
	return p
}

// Starts implements the base Phrase contract: a candidate Branch
// spanning the entire remaining row. This is a sink useful for derived
// phrase kinds that always consume the rest of the row once some other
// condition (checked before calling this) decided they apply; most
// derived kinds shadow Starts entirely instead.
func (p *BasePhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *Branch) *Branch {
	return NewBranch(0, len(remainingRow), remainingRow, rowN, rowViewpoint, absViewpoint, active, p.self)
}

// NextSearchContent implements the base Phrase contract: identity.
func (p *BasePhrase) NextSearchContent(searchContent string) string { return searchContent }

// RootPhrase is the distinguished top-level phrase. It never matches as
// a child: its Starts always returns nil.
type RootPhrase struct {
	*BasePhrase
}

// NewRootPhrase constructs a RootPhrase with the given diagnostic id.
func NewRootPhrase(id any) *RootPhrase {
	r := &RootPhrase{}
	r.BasePhrase = NewBasePhrase(r, id)

	return r
}

// Starts implements Phrase: a RootPhrase never begins as a child.
func (r *RootPhrase) Starts(string, int, int, int, *Branch) *Branch { return nil }
