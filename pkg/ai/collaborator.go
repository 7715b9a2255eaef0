package ai

import (
	"context"
)

// Message is a chat turn in a provider-agnostic format.
type Message struct {
	Role    string // "user" or "model"
	Content string
	Parts   []Part
}

// Part carries optional multimodal payloads alongside text.
type Part struct {
	Text     string
	MimeType string
	Data     string // base64 payload when MimeType is set
}

// Option allows optional parameters like SystemInstruction or Model.
type Option func(*Options)

type Options struct {
	SystemInstruction string
	Model             string // override the provider default
	ThinkingBudget    int32
}

func WithSystemInstruction(instruction string) Option {
	return func(o *Options) {
		o.SystemInstruction = instruction
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithThinkingBudget(budget int32) Option {
	return func(o *Options) {
		o.ThinkingBudget = budget
	}
}

// Schema describes the shape a JSON completion must satisfy. It mirrors
// the subset of JSON Schema the providers accept.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Enum        []string
}

// Asset is a generated binary artifact (image or video).
type Asset struct {
	MimeType string
	Data     []byte // raw bytes for images
	URI      string // download URI for videos
}

// Collaborator is the contract every generative backend satisfies. All
// calls are request/response; no streaming.
type Collaborator interface {
	// Chat sends a system instruction plus full history and returns the
	// model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// GenerateJSON sends a single prompt constrained to the schema and
	// returns the raw JSON text.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema, options ...Option) (string, error)

	// GenerateImage renders an image for the prompt at the aspect ratio.
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (*Asset, error)

	// AnalyzeImage answers a prompt about an uploaded image.
	AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error)

	// EditImage applies the prompt to an uploaded image and returns the
	// edited result.
	EditImage(ctx context.Context, prompt, mimeType string, data []byte) (*Asset, error)

	// AnimateImage turns an image into a short video, polling the
	// long-running operation until it completes.
	AnimateImage(ctx context.Context, prompt, mimeType string, data []byte, aspectRatio string) (*Asset, error)
}
