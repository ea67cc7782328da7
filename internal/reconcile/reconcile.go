// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile aligns a document's extracted sections with a target
// heading order and applies the mismatch policies. It computes the plan
// only; no document is read or written here.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/pdiddy/wordreorg/pkg/types"
)

// Plan is the computed emission order together with everything worth
// reporting about how it was reached.
type Plan struct {
	// Sections is the final emission order: the preamble when it has
	// content, then the target's headings in target order, then unmatched
	// sections kept by policy, in source document order.
	Sections []types.Section

	// Missing lists target headings with no addressable source section, in
	// target order.
	Missing []string

	// Unmatched lists source headings absent from the target, in source
	// document order.
	Unmatched []string

	// Duplicates lists heading texts that occur more than once in the
	// source, each reported once. Only the first occurrence of a duplicated
	// heading stays addressable.
	Duplicates []string
}

// Build indexes sections by exact heading text, first occurrence winning,
// and assembles the emission plan against the target order. A target heading
// repeated in the outline is consumed once. Under types.MissingError a
// non-empty Missing list makes Build return an error; the returned plan is
// still fully populated so callers can report what was found.
func Build(sections []types.Section, target []string, missing types.MissingPolicy, unmatched types.UnmatchedPolicy) (Plan, error) {
	var plan Plan

	index := make(map[string]types.Section, len(sections))
	var sourceOrder []string
	var preamble *types.Section
	reported := make(map[string]bool)

	for i := range sections {
		s := sections[i]
		if s.IsPreamble() {
			preamble = &sections[i]
			continue
		}
		if _, ok := index[s.Heading]; ok {
			if !reported[s.Heading] {
				plan.Duplicates = append(plan.Duplicates, s.Heading)
				reported[s.Heading] = true
			}
			continue
		}
		index[s.Heading] = s
		sourceOrder = append(sourceOrder, s.Heading)
	}

	targetSet := make(map[string]bool, len(target))
	for _, h := range target {
		targetSet[h] = true
		if _, ok := index[h]; !ok {
			plan.Missing = append(plan.Missing, h)
		}
	}

	for _, h := range sourceOrder {
		if !targetSet[h] {
			plan.Unmatched = append(plan.Unmatched, h)
		}
	}

	if preamble != nil && len(preamble.Elements) > 0 {
		plan.Sections = append(plan.Sections, *preamble)
	}

	consumed := make(map[string]bool, len(target))
	for _, h := range target {
		s, ok := index[h]
		if !ok || consumed[h] {
			continue
		}
		plan.Sections = append(plan.Sections, s)
		consumed[h] = true
	}

	if unmatched != types.UnmatchedDelete {
		for _, h := range plan.Unmatched {
			plan.Sections = append(plan.Sections, index[h])
		}
	}

	if missing == types.MissingError && len(plan.Missing) > 0 {
		return plan, fmt.Errorf("headings in outline but not found in source: %s", strings.Join(plan.Missing, ", "))
	}
	return plan, nil
}
