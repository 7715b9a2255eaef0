package constant

// Analysis modes offered by the vault analyzer.
var AnalysisPrompts = []string{
	"Synthesize these items into a cohesive strategy.",
	"Identify key themes, potential synergies, and actionable strategies.",
	"Create a concise, executive-level summary and a bulleted list of recommendations.",
	"Find contradictions or gaps in the provided information.",
	"Outline a project plan based on these items.",
	"Concept Review: Synthesize items into a cohesive, actionable concept and strategic direction.",
}

// ResponseFormats a user can request for a synthesis run.
var ResponseFormats = []string{
	"Expert Analysis",
	"Solution to a Problem",
	"Step by Step Plan",
	"Cited Response",
	"Vault View Summary",
}

// The Concept Review mode overrides the chosen response format with a
// fixed Project Brief. Not user-overridable.
const (
	ConceptReviewPrefix  = "Concept Review:"
	ProjectBriefFormat   = "Project Brief"
	DefaultVaultCategory = "Uncategorized"
)

// Default vault categories seeded for a new user. SME KT backs the
// knowledge-transfer save flow and must always be present.
var DefaultVaultCategories = []string{
	"Strategic Plans",
	"Research & Data",
	"Creative Ideas",
	"Key Contacts",
	"Procedural Guides",
	"Meeting Notes",
	"Uncategorized",
	"SME KT",
}

// Drill-down color tags and their analysis framings.
const (
	DrillDownRed   = "red"
	DrillDownBlue  = "blue"
	DrillDownGreen = "green"
)

var DrillDownFramings = map[string]string{
	DrillDownRed:   "You are a risk and priority analyst. Your task is to analyze the provided text snippet within its full context. Identify and explain potential concerns, uncertainties, causal factors, and high-priority elements. Focus on what could be a problem or needs immediate attention. Be concise and direct.",
	DrillDownBlue:  "You are a data and insights analyst. Your task is to provide a deeper, more analytical insight into the provided text snippet, using the full context. Connect the snippet to broader trends, provide related data points or concepts, and explain its significance in a larger picture. Do not just repeat the information; add value and perspective.",
	DrillDownGreen: "You are a growth and monetization strategist. Your task is to analyze the provided text snippet within its full context. Focus exclusively on how this idea or concept can be leveraged for financial gain, learning opportunities, or competitive advantage. Outline actionable steps or potential business models related to the snippet. Be creative and results-oriented.",
}
