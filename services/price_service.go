package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"motomart-api/config"
	"motomart-api/utils"
)

// PriceService asks Gemini for a fair listing price based on the structured
// motorcycle attributes. The provider is treated as opaque: one call, no
// retry, errors surfaced to the caller as-is.
type PriceService struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewPriceService(cfg *config.Config) *PriceService {
	client := resty.New().
		SetBaseURL("https://generativelanguage.googleapis.com/v1beta").
		SetTimeout(30 * time.Second)

	return &PriceService{
		client: client,
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
	}
}

type PriceInput struct {
	Make      string
	Model     string
	Year      int
	Condition string
	KmDriven  int
}

// PriceSuggestion is the structured answer shown to the seller.
type PriceSuggestion struct {
	SuggestedPrice int    `json:"suggested_price"`
	Reasoning      string `json:"reasoning"`
}

func (in *PriceInput) validate() error {
	switch {
	case strings.TrimSpace(in.Make) == "":
		return validationErrorf("make is required")
	case strings.TrimSpace(in.Model) == "":
		return validationErrorf("model is required")
	}
	if !utils.IsValidYear(in.Year) {
		return validationErrorf("year must be 1900 or later")
	}
	if in.KmDriven < 0 {
		return validationErrorf("km driven cannot be negative")
	}
	if !utils.IsValidCondition(in.Condition) {
		return validationErrorf("condition must be one of Excellent, Good, Fair, Poor")
	}
	return nil
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SuggestPrice calls the model and parses its JSON answer.
func (s *PriceService) SuggestPrice(ctx context.Context, input PriceInput) (*PriceSuggestion, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if s.apiKey == "" {
		return nil, fmt.Errorf("price suggestion is not configured")
	}

	prompt := fmt.Sprintf(`You are an expert in motorcycle valuation. Based on the make, model, year, condition, and mileage of the motorcycle, suggest a fair listing price. Also provide a brief explanation of your reasoning.

Make: %s
Model: %s
Year: %d
Condition: %s
Mileage: %d km

Respond with a single JSON object with keys "suggestedPrice" (number) and "reasoning" (string).`,
		input.Make, input.Model, input.Year, input.Condition, input.KmDriven)

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{ResponseMimeType: "application/json"},
	}

	var result geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post("/models/" + s.model + ":generateContent")
	if err != nil {
		return nil, fmt.Errorf("price suggestion request failed: %w", err)
	}
	if resp.IsError() {
		if result.Error.Message != "" {
			return nil, fmt.Errorf("price suggestion failed: %s", result.Error.Message)
		}
		return nil, fmt.Errorf("price suggestion failed with status %d", resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("price suggestion returned an empty answer")
	}

	var parsed struct {
		SuggestedPrice float64 `json:"suggestedPrice"`
		Reasoning      string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &parsed); err != nil {
		return nil, fmt.Errorf("could not parse price suggestion: %w", err)
	}

	return &PriceSuggestion{
		SuggestedPrice: int(parsed.SuggestedPrice),
		Reasoning:      parsed.Reasoning,
	}, nil
}
