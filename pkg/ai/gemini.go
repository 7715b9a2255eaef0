package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Published model names. ModelFast serves conversational traffic; ModelDeep
// handles analysis-heavy prompts.
const (
	ModelFast = "gemini-flash-lite-latest"
	ModelDeep = "gemini-2.5-pro"
)

const (
	imageModel        = "imagen-4.0-generate-001"
	imageEditModel    = "gemini-2.5-flash-image"
	videoModel        = "veo-3.1-fast-generate-preview"
	videoPollInterval = 10 * time.Second
)

// GeminiCollaborator implements Collaborator on the Google GenAI SDK.
type GeminiCollaborator struct {
	client *genai.Client
	model  string
}

func NewGeminiCollaborator(apiKey, model string) (*GeminiCollaborator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = ModelFast
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiCollaborator{client: client, model: model}, nil
}

func (g *GeminiCollaborator) buildConfig(opts *Options) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if opts.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(opts.SystemInstruction, genai.RoleUser)
	}
	if opts.ThinkingBudget > 0 {
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(opts.ThinkingBudget)}
	}
	return config
}

func (g *GeminiCollaborator) resolveModel(opts *Options) string {
	if opts.Model != "" {
		return opts.Model
	}
	return g.model
}

func applyOptions(options []Option) *Options {
	opts := &Options{}
	for _, o := range options {
		o(opts)
	}
	return opts
}

func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == "model" {
			role = genai.Role(genai.RoleModel)
		}
		if len(m.Parts) == 0 {
			contents = append(contents, genai.NewContentFromText(m.Content, role))
			continue
		}
		// The message text travels as its own part ahead of any attachments.
		parts := make([]*genai.Part, 0, len(m.Parts)+1)
		if m.Content != "" {
			parts = append(parts, genai.NewPartFromText(m.Content))
		}
		for _, p := range m.Parts {
			if p.MimeType != "" {
				raw, err := base64.StdEncoding.DecodeString(p.Data)
				if err != nil {
					continue
				}
				parts = append(parts, genai.NewPartFromBytes(raw, p.MimeType))
			} else if p.Text != "" {
				parts = append(parts, genai.NewPartFromText(p.Text))
			}
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}
	return contents
}

func (g *GeminiCollaborator) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	opts := applyOptions(options)

	resp, err := g.client.Models.GenerateContent(ctx, g.resolveModel(opts), toContents(history), g.buildConfig(opts))
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiCollaborator) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	opts := applyOptions(options)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.resolveModel(opts), contents, g.buildConfig(opts))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiCollaborator) GenerateJSON(ctx context.Context, prompt string, schema *Schema, options ...Option) (string, error) {
	opts := applyOptions(options)

	config := g.buildConfig(opts)
	config.ResponseMIMEType = "application/json"
	config.ResponseSchema = toGenaiSchema(schema)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.resolveModel(opts), contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini structured generate failed: %w", err)
	}
	return resp.Text(), nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGenaiSchema(s.Items),
	}
	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "array":
		out.Type = genai.TypeArray
	case "number":
		out.Type = genai.TypeNumber
	case "boolean":
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func (g *GeminiCollaborator) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*Asset, error) {
	resp, err := g.client.Models.GenerateImages(ctx, imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    aspectRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("image generation returned no image")
	}

	img := resp.GeneratedImages[0].Image
	return &Asset{MimeType: "image/jpeg", Data: img.ImageBytes}, nil
}

func (g *GeminiCollaborator) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, ModelFast, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini image analysis failed: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiCollaborator) EditImage(ctx context.Context, prompt, mimeType string, data []byte) (*Asset, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, imageEditModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image edit failed: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return &Asset{MimeType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
			}
		}
	}
	return nil, fmt.Errorf("image edit returned no image")
}

func (g *GeminiCollaborator) AnimateImage(ctx context.Context, prompt, mimeType string, data []byte, aspectRatio string) (*Asset, error) {
	operation, err := g.client.Models.GenerateVideos(ctx, videoModel, prompt,
		&genai.Image{ImageBytes: data, MIMEType: mimeType},
		&genai.GenerateVideosConfig{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    aspectRatio,
		})
	if err != nil {
		return nil, fmt.Errorf("gemini video generation failed: %w", err)
	}

	for !operation.Done {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(videoPollInterval):
		}
		operation, err = g.client.Operations.GetVideosOperation(ctx, operation, nil)
		if err != nil {
			return nil, fmt.Errorf("gemini video polling failed: %w", err)
		}
	}

	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 ||
		operation.Response.GeneratedVideos[0].Video == nil {
		return nil, fmt.Errorf("video generation returned no video")
	}
	return &Asset{MimeType: "video/mp4", URI: operation.Response.GeneratedVideos[0].Video.URI}, nil
}
