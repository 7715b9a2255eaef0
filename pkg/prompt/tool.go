package prompt

import (
	"fmt"
	"strings"

	"smepro-be/internal/constant"
	"smepro-be/internal/entity"
)

var toolTasks = map[string]string{
	constant.ToolGenerateReadme:     "TASK: Generate a comprehensive README.md file for a new project based on this discussion. Include sections for Project Title, Description, Features, Tech Stack, and Getting Started.",
	constant.ToolDraftTechReqs:      "TASK: Draft a technical requirements document. Include sections for User Stories, Data Models, and recommended Technology Stack, tailored to the project's context.",
	constant.ToolCreateSocialPost:   "TASK: Create a promotional social media post (suitable for LinkedIn or X) to announce this project or concept. Include relevant hashtags and a call-to-action.",
	constant.ToolOutlineProjectPlan: "TASK: Outline a high-level project plan. Include key phases (e.g., Discovery, Design, Development, Deployment), major milestones for each phase, and estimated timelines.",
	constant.ToolDraftEmail:         "TASK: Draft a professional marketing email based on the conversation. The email should have a clear subject line, a compelling body, and a call-to-action.",
	constant.ToolGenerateUserStory:  "TASK: Generate a set of Agile user stories based on the features discussed. Each story should follow the format: 'As a [user type], I want [an action] so that [a benefit]' and include acceptance criteria.",
	constant.ToolOutlineBlogPost:    "TASK: Outline a blog post based on the conversation. Include a catchy title, an introduction, several main section headings with bullet points, and a conclusion.",
	constant.ToolCreateSwot:         "TASK: Create a SWOT (Strengths, Weaknesses, Opportunities, Threats) analysis based on the project or concept discussed. Present it in a clear, structured format.",
	constant.ToolDraftPitchDeck:     "TASK: Generate a 10-slide pitch deck outline based on the conversation. Include slides for Problem, Solution, Market Size, Product, Business Model, Go-to-Market Strategy, Team, Competition, Financial Projections, and The Ask.",
	constant.ToolCreateApiDocs:      "TASK: Generate a draft for API documentation in Markdown format based on the technical discussion. Include sections for Authentication, Endpoints, Request/Response examples, and Error Codes.",
	constant.ToolGenerateTestCases:  "TASK: Generate a set of test cases for the features discussed. Format them in a table with columns for Test Case ID, Description, Steps to Reproduce, Expected Result, and Actual Result.",
	constant.ToolWritePressRelease:  "TASK: Write a professional press release announcing the project or a key milestone from the conversation. Include a headline, dateline, introduction, body paragraphs with quotes, and boilerplate company info.",
}

// IsToolCommand reports whether a user message routes through the builder
// tool path instead of plain chat.
func IsToolCommand(content string) bool {
	return strings.HasPrefix(content, constant.ToolCommandPrefix)
}

// ToolPrompt builds the single-shot prompt for a builder tool command. The
// primary persona anchors the expert voice, and the whole conversation is
// inlined as context. An unknown command degrades to the bare transcript.
func ToolPrompt(command string, session *entity.ChatSession) string {
	transcript := Transcript(session.Messages, 0, "\n")
	task, ok := toolTasks[command]
	if !ok {
		return transcript
	}

	primary := session.PrimaryPersona()
	persona := fmt.Sprintf("As an expert in **%s** for the **%s** industry, with a focus on **%s**, your task is to generate a professional, structured asset based on the entire conversation context provided below.",
		primary.Specialization, primary.Domain, primary.SubDomain)

	return fmt.Sprintf("%s\n\nCONVERSATION HISTORY:\n---\n%s\n---\n\n%s", persona, transcript, task)
}

// StepAction builds the prompt for executing a named action against a step
// of a builder output.
func StepAction(action, context string, cfg entity.PersonaConfig, history []entity.ChatMessage) string {
	return fmt.Sprintf(`As a world-class expert in **%s (%s)**, perform the following task based on the provided context.

**Task:** %s

**Context from the current step/prompt:**
---
%s
---

**Recent Conversation History for additional context:**
---
%s
---

Provide a concise, professional, and actionable response. Format using markdown.`,
		cfg.Specialization, cfg.SubDomain, action, context, Transcript(history, 6, "\n\n"))
}

// CodeStepAction is the code-generating variant of StepAction. It demands
// placeholder values in double curly braces so generated snippets never
// embed real credentials.
func CodeStepAction(action, context, language, platform string, cfg entity.PersonaConfig, history []entity.ChatMessage) string {
	return fmt.Sprintf(`As a senior software architect specializing in **%s (%s)**, generate a production-ready code snippet for the following task.

**Task:** %s
**Language:** %s
**Cloud Platform/Framework:** %s

**Context from the current step/prompt:**
---
%s
---

**Recent Conversation History for additional context:**
---
%s
---

**CRITICAL INSTRUCTIONS:**
1.  Generate high-quality, near production-ready code.
2.  Where user-specific values are required (like project IDs, API keys, service account names, database connection strings, etc.), you MUST use double curly brace placeholders with descriptive names. For example: `+"`'{{GCP_PROJECT_ID}}'` or `'{{DATABASE_CONNECTION_URL}}'`"+`.
3.  Add concise comments explaining each major part of the code logic.
4.  Wrap the entire code block in a single markdown code fence.
`,
		cfg.Specialization, cfg.SubDomain, action, language, platform, context, Transcript(history, 6, "\n\n"))
}

// DynamicStepActions asks the model to name 2-4 contextual tools for a
// builder step. The response is constrained to a JSON schema by the caller.
func DynamicStepActions(cfg entity.PersonaConfig, stepContent string, history []entity.ChatMessage) string {
	return fmt.Sprintf(`You are an expert assistant that suggests contextual tools.
Based on the user's role, the current task, and the conversation history, suggest 2-4 short, actionable tool names.

**User's Role:** %s in %s (%s)
**Current Task/Step:** "%s"
**Conversation Context:**
---
%s
---

**Instructions:**
- The tool names should be concise command-like phrases (e.g., "Generate Code Snippet", "Draft Marketing Email", "Outline Project Plan").
- Do NOT suggest more than 4 tools.
- ONLY respond with a JSON object that matches the specified schema.

Analyze the context and provide the most relevant actions now.`,
		cfg.Specialization, cfg.Domain, cfg.SubDomain, stepContent, Transcript(history, 6, "\n"))
}
