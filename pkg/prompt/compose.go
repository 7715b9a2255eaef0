// Package prompt assembles every instruction the collaborator receives:
// the session system prompt, builder tool prompts, step actions, and the
// auxiliary generation prompts for suggestions, introductions, and vault
// analysis. Composition is deterministic so identical session state always
// yields an identical prompt.
package prompt

import (
	"fmt"
	"strings"

	"smepro-be/internal/constant"
	"smepro-be/internal/entity"
	"smepro-be/pkg/entitlement"
)

// Compose builds the full system instruction for a chat turn from the
// session's personas, mode, plan family, and capability state.
func Compose(session *entity.ChatSession, plan entity.EffectivePlan) string {
	solo := entitlement.IsSoloFamily(plan)
	segmentTerm := segmentTermFor(plan)

	mission := "You are a world-class Subject Matter Expert (SME) named SMEPro. Your mission is to provide precise, actionable, and insightful advice. Format responses using clear markdown."
	if session.Mode == entity.SessionModeBuilder {
		mission += " You are in **SMEBuilder Mode**. Your goal is to help the user build tangible assets from the provided context. When you see a [TOOL:...] command, you MUST generate the requested asset based on the entire conversation history."
	}

	var collaborationRule string
	if len(session.Personas) > 1 {
		if session.Mode == entity.SessionModeWorkshop {
			collaborationRule = `You are acting as a facilitator for a workshop. Synthesize the perspectives of the experts on your team and present a unified response in the third person. Clearly attribute insights to the relevant expert. For example: "The Sales & Marketing expert suggests..."`
		} else {
			collaborationRule = "You are operating as a collaborative team of experts providing a unified response. Draw on the collective expertise of the team."
		}
	}

	header := "Your current specialization is:"
	if len(session.Personas) > 1 {
		header = "Your current specializations are:"
	}
	lines := make([]string, 0, len(session.Personas))
	for _, persona := range session.Personas {
		lines = append(lines, personaLine(persona, solo))
	}

	criticalRule := fmt.Sprintf(`**CRITICAL RULE - YOUR PRIMARY DIRECTIVE:** Your absolute highest priority is to operate strictly within your designated specialization. If a user's request falls outside your area of expertise, you MUST NOT attempt to answer it. Instead, you MUST immediately pivot. Your response MUST begin by:
1.  Clearly stating the limits of your current expertise (e.g., "As the specialist in [Your Expertise], I cannot provide an analysis on [User's Topic].").
2.  Explicitly recommending a different, more appropriate SME %s to handle the request.
3.  Briefly explaining why that SME is a better fit.
For example: "As the specialist in Engineering & Design, I cannot provide a detailed marketing strategy. To properly address this, I strongly recommend adding an expert from the 'Sales & Marketing' %s to this session. They will have the right expertise for this task."
This is not a suggestion; it is your core function for maintaining user trust and providing accurate, safe intelligence. Failure to adhere to this rule is a critical failure of your function.`, segmentTerm, segmentTerm)

	capabilities := capabilitiesSection(session)

	return fmt.Sprintf("%s %s\n\n%s\n%s\n\n%s%s\n\nIf the user provides a [RESPONSE STYLE: ...] prefix in their prompt, you must adhere to that format for your response.",
		mission, collaborationRule, header, strings.Join(lines, "\n"), criticalRule, capabilities)
}

func personaLine(cfg entity.PersonaConfig, solo bool) string {
	if solo {
		return fmt.Sprintf("- Field: **%s**, Discipline: **%s**, Objective: **%s**", cfg.Domain, cfg.SubDomain, cfg.Specialization)
	}
	return fmt.Sprintf("- Industry Focus: **%s**, Sub-Type: **%s**, Operating Segment: **%s**", cfg.Domain, cfg.SubDomain, cfg.Specialization)
}

func segmentTermFor(plan entity.EffectivePlan) string {
	if entitlement.IsSoloFamily(plan) {
		return "objective"
	}
	return "operating segment"
}

// capabilitiesSection renders the static and dynamic capability blocks.
// Static capabilities walk the display-order universe so the output is
// stable regardless of map iteration.
func capabilitiesSection(session *entity.ChatSession) string {
	var b strings.Builder

	var static []string
	for _, name := range constant.CapabilityNames {
		if session.EnabledCapabilities[name] {
			static = append(static, fmt.Sprintf("- **%s**", constant.CapabilityDescriptions[name]))
		}
	}
	if len(static) > 0 {
		b.WriteString("\n\n**STATIC CAPABILITIES ENABLED:**\n")
		b.WriteString(strings.Join(static, "\n"))
	}

	var dynamic []string
	for _, cap := range session.DynamicCapabilities {
		if cap.Enabled {
			dynamic = append(dynamic, fmt.Sprintf("- **%s:** %s", cap.Name, cap.Description))
		}
	}
	if len(dynamic) > 0 {
		b.WriteString(fmt.Sprintf("\n\n**DYNAMIC CAPABILITIES FOR FOCUS: %s**\nYou have been equipped with the following special capabilities. You MUST act as an agent that can perform these tasks. Your outputs for these should be structured for use in the SMEBuilder.\n", session.Focus))
		b.WriteString(strings.Join(dynamic, "\n"))
	}

	if b.Len() == 0 {
		return ""
	}
	return "\n\n**ADDITIONAL CAPABILITIES:**" + b.String()
}

// Transcript renders messages as "sender: content" lines, falling back to
// the role when a message carries no sender name. last limits the window
// to the most recent n messages; zero means all.
func Transcript(messages []entity.ChatMessage, last int, separator string) string {
	if last > 0 && len(messages) > last {
		messages = messages[len(messages)-last:]
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		sender := m.SenderName
		if sender == "" {
			sender = string(m.Role)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", sender, m.Content))
	}
	return strings.Join(lines, separator)
}

// RoleTranscript renders messages as "role: content" lines, ignoring any
// sender names. Used where the model only needs the turn structure.
func RoleTranscript(messages []entity.ChatMessage, last int) string {
	if last > 0 && len(messages) > last {
		messages = messages[len(messages)-last:]
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}
