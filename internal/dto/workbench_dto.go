// FILE: internal/dto/workbench_dto.go
package dto

import "time"

type WorkbenchChatRequest struct {
	Context  string            `json:"context" validate:"required"`
	Messages []MessageResponse `json:"messages" validate:"required,min=1"`
}

type ComplexTextRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type TextResultResponse struct {
	Result string `json:"result"`
}

type GenerateImageRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	AspectRatio string `json:"aspect_ratio" validate:"omitempty,oneof=1:1 16:9 9:16 4:3 3:4"`
}

type AnalyzeImageRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
}

type EditImageRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
}

type AnimateImageRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	Image       string `json:"image" validate:"required"`
	MimeType    string `json:"mime_type" validate:"required"`
	AspectRatio string `json:"aspect_ratio" validate:"required,oneof=16:9 9:16"`
}

// AssetResponse is a generated workbench artifact. Images carry base64
// content; videos carry a download URI.
type AssetResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	MimeType  string    `json:"mime_type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
