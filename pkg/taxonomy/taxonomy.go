// Package taxonomy resolves the three-level dependent persona tables used
// to configure an expert. Individual plans pick category, sub-category,
// objective; business plans pick industry, sub-type, operating segment.
// All tables are embedded; a lookup that matches no rule yields an empty
// option set, never an error.
package taxonomy

import (
	"fmt"

	"smepro-be/internal/entity"
	"smepro-be/pkg/entitlement"
)

type Level int

const (
	LevelDomain Level = iota
	LevelSubDomain
	LevelSpecialization
)

// Labels names the three levels the way the plan family does.
func Labels(plan entity.EffectivePlan) (domain, subDomain, specialization string) {
	if entitlement.IsSoloFamily(plan) {
		return "category", "subCategory", "objective"
	}
	return "industry", "subType", "operatingSegment"
}

// SegmentTerm is the human phrasing for the third level, used in prompts.
func SegmentTerm(plan entity.EffectivePlan) string {
	if entitlement.IsSoloFamily(plan) {
		return "objective"
	}
	return "operating segment"
}

// OptionsFor returns the allowed values at a level given the selections
// above it. An unknown prior selection returns an empty slice, which
// blocks submission.
func OptionsFor(plan entity.EffectivePlan, level Level, prior entity.PersonaConfig) []string {
	solo := entitlement.IsSoloFamily(plan)
	switch level {
	case LevelDomain:
		if solo {
			return clone(soloCategories)
		}
		return clone(businessIndustries)
	case LevelSubDomain:
		if solo {
			return clone(soloSubCategories[prior.Domain])
		}
		return clone(businessSubTypes[prior.Domain])
	case LevelSpecialization:
		if solo {
			return clone(soloObjectives[prior.SubDomain])
		}
		return clone(segmentOptions(prior.Domain, prior.SubDomain))
	default:
		return nil
	}
}

// segmentOptions prefers the sub-type rule and falls back to the
// industry-level rule, matching the source schema's resolution order.
func segmentOptions(industry, subType string) []string {
	if segs, ok := segmentsBySubType[subType]; ok {
		return segs
	}
	return segmentsByIndustry[industry]
}

// Validate checks the whole chain. Any stale or unknown level fails, so a
// selection invalidated by an earlier change can never be submitted.
func Validate(plan entity.EffectivePlan, cfg entity.PersonaConfig) error {
	if cfg.Domain == "" || cfg.SubDomain == "" || cfg.Specialization == "" {
		return fmt.Errorf("taxonomy: incomplete persona configuration")
	}
	domainLabel, subLabel, segLabel := Labels(plan)

	if !contains(OptionsFor(plan, LevelDomain, entity.PersonaConfig{}), cfg.Domain) {
		return fmt.Errorf("taxonomy: unknown %s %q", domainLabel, cfg.Domain)
	}
	if !contains(OptionsFor(plan, LevelSubDomain, cfg), cfg.SubDomain) {
		return fmt.Errorf("taxonomy: %s %q is not valid for %s %q", subLabel, cfg.SubDomain, domainLabel, cfg.Domain)
	}
	if !contains(OptionsFor(plan, LevelSpecialization, cfg), cfg.Specialization) {
		return fmt.Errorf("taxonomy: %s %q is not valid for %s %q", segLabel, cfg.Specialization, subLabel, cfg.SubDomain)
	}
	return nil
}

// AllSegments is the deduplicated union of every third-level value the
// plan family can reach. The suggestion engine draws candidates from it.
func AllSegments(plan entity.EffectivePlan) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(values []string) {
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	if entitlement.IsSoloFamily(plan) {
		for _, objectives := range soloObjectives {
			add(objectives)
		}
		return out
	}
	for _, segs := range segmentsBySubType {
		add(segs)
	}
	for _, segs := range segmentsByIndustry {
		add(segs)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func clone(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
