package prompt

import (
	"fmt"
	"strings"

	"smepro-be/internal/constant"
	"smepro-be/internal/entity"
)

// Introduction asks the model to introduce a newly added expert in the
// context of the recent conversation.
func Introduction(cfg entity.PersonaConfig, history []entity.ChatMessage) string {
	return fmt.Sprintf(`You are a new Subject Matter Expert joining an ongoing conversation. Your specialization is: Industry: %s, Sub-Type: %s, Segment: %s.
Based on the last few messages of the conversation provided below, generate a brief, professional, and context-aware introductory message (2-3 sentences).
Your introduction should acknowledge the current topic and state how you can contribute. Start with "Hello, I've joined the session."

CONVERSATION HISTORY:
%s

Generate the introductory message now:`,
		cfg.Domain, cfg.SubDomain, cfg.Specialization, Transcript(history, 4, "\n"))
}

// DeeperInsight elaborates a term the user selected inside a message.
func DeeperInsight(selectedText, fullContext string) string {
	return fmt.Sprintf(`A user has requested a deeper insight on the term "%s".
Based on the full context of the message below, please provide a concise and clear elaboration on this specific term.
Explain what it is, why it's relevant to the conversation, and any important nuances.

FULL MESSAGE CONTEXT:
---
%s
---

Provide the deeper insight on "%s" now:`, selectedText, fullContext, selectedText)
}

// InsightMessage wraps an insight reply for appending to the session log.
func InsightMessage(selectedText, insight string) string {
	return fmt.Sprintf("**Insight on \"%s\":**\n\n%s", selectedText, insight)
}

// Suggestion builds the team-recommendation prompt. segmentType is the
// plural plan-family phrasing, "objectives" or "operating segments".
func Suggestion(activeSegments []string, history []entity.ChatMessage, segmentType string) string {
	return fmt.Sprintf(`You are an expert strategist analyzing a conversation to recommend new team members.

**Current Team of Experts:**
- %s

**Recent Conversation Context:**
---
%s
---

**Your Task:**
Based on the conversation, the user's needs seem to be evolving. Identify up to 3 '%s' from the provided list that are **NOT** on the current team but would add the most value right now. For each suggestion, you MUST provide a concise but clear justification explaining *why* their expertise is suddenly relevant based on the conversation. Your analysis is critical.

Respond ONLY with a JSON object that matches the specified schema. Do not fail to provide suggestions if the context hints at a need for new expertise.`,
		strings.Join(activeSegments, "\n- "), RoleTranscript(history, 5), segmentType)
}

// FocusCapabilities asks the model to design 3-5 focus-specific skills the
// user can enable.
func FocusCapabilities(focus entity.FocusType, history []entity.ChatMessage) string {
	return fmt.Sprintf(`You are a capability designer for an AI agent.
The user has set their session 'Focus' to "%s".
Based on this focus and the recent conversation context, generate a list of 3-5 tangible, end-result-oriented capabilities.
These capabilities will be presented to the user to enable. They should be powerful, SME-level skills.

Conversation Context:
---
%s
---

Instructions:
- The 'name' should be a concise, action-oriented title (e.g., "Generate Viral Hook Scripts").
- The 'description' should be a one-sentence explanation of what the capability does.
- The output MUST be a JSON object matching the specified schema.

Generate the capabilities now.`, focus, RoleTranscript(history, 5))
}

// CapabilityExplanation builds the onboarding text shown before a dynamic
// capability is enabled.
func CapabilityExplanation(capability entity.DynamicCapability, focus entity.FocusType, history []entity.ChatMessage) string {
	return fmt.Sprintf(`You are an AI assistant onboarding a user to a new capability.
The user wants to enable the capability: **"%s"**.
The user's session focus is: **"%s"**.
The recent conversation is:
---
%s
---

Your task is to explain what this capability will allow the AI to do *specifically for them, right now*.
- Be specific and outcome-oriented.
- Relate the capability to their conversation and focus.
- Explain that the results will be structured for use in the "SMEBuilder".
- Keep it concise (2-3 sentences).`, capability.Name, focus, RoleTranscript(history, 5))
}

// CapabilitySuggestion asks which static capabilities fit the current
// conversation. The caller constrains the answer to the capability enum.
func CapabilitySuggestion(history []entity.ChatMessage) string {
	list := make([]string, 0, len(constant.CapabilityNames))
	for _, name := range constant.CapabilityNames {
		list = append(list, fmt.Sprintf("- %s: %s", name, constant.CapabilityDescriptions[name]))
	}

	return fmt.Sprintf(`You are an intelligent assistant that helps configure an AI agent.
Based on the recent conversation, which of the following capabilities would be most useful to enable?

Available Capabilities:
%s

Recent Conversation:
---
%s
---

Your Task:
Analyze the conversation and identify 1-2 capabilities that are most relevant to the user's current task.

Respond ONLY with a JSON object containing a single key "suggestions" which is an array of strings. The strings must be one of the available capability names.
Example: { "suggestions": ["generateCode", "runTerminal"] }`,
		strings.Join(list, "\n"), RoleTranscript(history, 4))
}

// VaultAnalysis builds the synthesis prompt over selected vault items. The
// Concept Review template overrides the generic analyst framing.
func VaultAnalysis(items []entity.VaultItem, objective, responseFormat string) string {
	framing := fmt.Sprintf(`As a strategic analyst, your task is to analyze the following knowledge items from a user's vault.
Objective: %s.
Required Output Format: You must structure your response as a "%s".`, objective, responseFormat)

	if strings.HasPrefix(objective, constant.ConceptReviewPrefix) {
		framing = `As a master strategist, conduct a "Concept Review" of the following knowledge items. Your goal is to synthesize disparate ideas into a cohesive, actionable concept. Identify core themes, map relationships between items, and formulate a high-level strategic direction. The output should be structured as a "Project Brief" to serve as a foundational document for a new initiative.`
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("---\n### %s (Category: %s)\n%s\n---", item.Title, item.Category, item.Content))
	}

	return fmt.Sprintf("%s\n\nHere are the vault items:\n%s\n\nAnalyze this information now, adhering strictly to the objective and output format.\n",
		framing, strings.Join(blocks, "\n\n"))
}

// DrillDown builds the user prompt for a highlighted-text drill-down. The
// color-specific framing travels as the system instruction.
func DrillDown(snippet, context string) string {
	return fmt.Sprintf("CONTEXT:\n---\n%s\n---\n\nAnalyze the following specific text snippet from the context above:\n\nSNIPPET: \"%s\"", context, snippet)
}

// WorkshopActivation renders the system message that anchors workshop mode
// in the session log. Agenda lines are indented under their bullet.
func WorkshopActivation(data entity.WorkshopData) string {
	agendaLines := strings.Split(data.Agenda, "\n")
	for i, line := range agendaLines {
		agendaLines[i] = "  - " + line
	}
	useCases := data.UseCases
	if useCases == "" {
		useCases = "Not specified"
	}

	return strings.TrimSpace(fmt.Sprintf(`
%s

A structured collaborative session has been initiated with the following parameters:

- **Objective:** %s
- **Agenda:**
%s
- **Backstory:** %s
- **Use Cases:** %s

All participating SMEs will now align their expertise to achieve the stated objective.`,
		constant.WorkshopActivatedMarker, data.Objective, strings.Join(agendaLines, "\n"), data.Backstory, useCases))
}

// NewExpertsJoined renders the system message logged when suggested
// experts are accepted into a session.
func NewExpertsJoined(segments []string) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, "- "+s)
	}
	return fmt.Sprintf("%s\n%s", constant.NewExpertsJoinedHeader, strings.Join(lines, "\n"))
}
