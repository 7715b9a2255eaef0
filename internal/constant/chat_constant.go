package constant

// Static capability identifiers. These ship with every session; dynamic
// capabilities are generated per focus at runtime.
const (
	CapabilityGenerateCode    = "generateCode"
	CapabilitySelfCheck       = "selfCheck"
	CapabilityRunTerminal     = "runTerminal"
	CapabilityAutomateBrowser = "automateBrowser"
	CapabilityLatestModels    = "latestModels"
	CapabilityApiKeyOptional  = "apiKeyOptional"
	CapabilityAiImaging       = "aiImaging"
)

// CapabilityNames is the full static capability universe, in display order.
var CapabilityNames = []string{
	CapabilityGenerateCode,
	CapabilitySelfCheck,
	CapabilityRunTerminal,
	CapabilityAutomateBrowser,
	CapabilityLatestModels,
	CapabilityApiKeyOptional,
	CapabilityAiImaging,
}

// CapabilityDescriptions are the effect lines injected into the system
// prompt for every enabled static capability.
var CapabilityDescriptions = map[string]string{
	CapabilityGenerateCode:    "You can generate code snippets from natural language descriptions.",
	CapabilitySelfCheck:       "You must review your own responses for accuracy and clarity before finalizing them.",
	CapabilityRunTerminal:     "You can simulate running terminal commands and provide the expected output in a markdown block.",
	CapabilityAutomateBrowser: "You can describe the steps to automate browser actions using a framework like Puppeteer or Selenium.",
	CapabilityLatestModels:    "You are powered by the latest and most capable AI models.",
	CapabilityApiKeyOptional:  "The user does not need to provide their own API keys to use your capabilities.",
	CapabilityAiImaging:       "You can process image-related requests. This includes creating new images from text descriptions, or enhancing existing images for specific social media platforms. When a platform is mentioned, you should use your knowledge of optimal image dimensions and styles for that platform. If the user asks you to perform an action for a platform and you have not been told they are authenticated, you MUST ask them to authenticate first before proceeding.",
}

// DefaultEnabledCapabilities seeds every new session.
func DefaultEnabledCapabilities() map[string]bool {
	return map[string]bool{
		CapabilityGenerateCode:    true,
		CapabilitySelfCheck:       false,
		CapabilityRunTerminal:     false,
		CapabilityAutomateBrowser: false,
		CapabilityLatestModels:    true,
		CapabilityApiKeyOptional:  true,
	}
}

// FocusTypes a session focus can be set to. An empty focus means none.
var FocusTypes = []string{
	"Social Media",
	"TikTok",
	"Digital Marketing",
	"OnlyFans",
	"Instagram",
	"Facebook",
	"Content Automation",
}

// Builder tool commands. A user message starting with one of these routes
// through the tool prompt instead of the chat history.
const (
	ToolGenerateReadme     = "[TOOL:GENERATE_README]"
	ToolDraftTechReqs      = "[TOOL:DRAFT_TECH_REQS]"
	ToolCreateSocialPost   = "[TOOL:CREATE_SOCIAL_POST]"
	ToolOutlineProjectPlan = "[TOOL:OUTLINE_PROJECT_PLAN]"
	ToolDraftEmail         = "[TOOL:DRAFT_EMAIL]"
	ToolGenerateUserStory  = "[TOOL:GENERATE_USER_STORIES]"
	ToolOutlineBlogPost    = "[TOOL:OUTLINE_BLOG_POST]"
	ToolCreateSwot         = "[TOOL:CREATE_SWOT]"
	ToolDraftPitchDeck     = "[TOOL:DRAFT_PITCH_DECK]"
	ToolCreateApiDocs      = "[TOOL:CREATE_API_DOCS]"
	ToolGenerateTestCases  = "[TOOL:GENERATE_TEST_CASES]"
	ToolWritePressRelease  = "[TOOL:WRITE_PRESS_RELEASE]"
)

// ToolCommandPrefix marks a builder tool command in a user message.
const ToolCommandPrefix = "[TOOL:"

// BuilderOutputMarker prefixes model replies produced by a tool command so
// the client can render them as builder assets.
const BuilderOutputMarker = "<!-- BUILDER_OUTPUT -->"

// ResponseStylePrefix is the inline style hint a client may prepend to a
// user message. The composer instructs the model to honor it.
const ResponseStylePrefix = "[RESPONSE STYLE: "

// Session log fixtures.
const (
	SessionStartedMessage    = "Session started."
	BuilderSessionMarker     = "**SMEBuilder Session Initiated.** All tool outputs in this session will be structured as buildable assets."
	WorkshopActivatedMarker  = "**WORKSHOP MODE ACTIVATED**"
	WorkshopClosingMessage   = "Workshop Mode is now active. All systems are aligned to your objectives. Let's begin."
	NewExpertsJoinedHeader   = "**New Experts Joined:**"
	CollaboratorErrorMessage = "I'm sorry, but I encountered an error while processing your request. Please try again."
)
