package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"callsmith/models"
)

const geminiTimeout = 30 * time.Second

// GeminiPlanner asks Gemini for a call plan.
type GeminiPlanner struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiPlanner(apiKey string) (*GeminiPlanner, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiPlanner{model: model, timeout: geminiTimeout}, nil
}

func (p *GeminiPlanner) GenerateCallPlan(ctx context.Context, req *models.AppointmentRequest) (*models.CallPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.model.GenerateContent(ctx, genai.Text(buildPlanPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	plan := parsePlanText(sb.String())
	if plan.Script == "" {
		return nil, errors.New("gemini returned an empty call script")
	}
	return plan, nil
}

func buildPlanPrompt(req *models.AppointmentRequest) string {
	var b strings.Builder
	b.WriteString("You are a phone assistant who calls businesses to book appointments on behalf of a client.\n")
	b.WriteString("Draft the call for the request below. Respond with a single JSON object using exactly these keys:\n")
	b.WriteString(`{"script": "<full text the assistant speaks>", "itinerary": ["<topic 1>", "..."], "summary": "<one-sentence outcome summary>"}` + "\n\n")
	fmt.Fprintf(&b, "Business: %s\n", req.BusinessName)
	fmt.Fprintf(&b, "Phone number: %s\n", req.PhoneNumber)
	if req.ContactName != "" {
		fmt.Fprintf(&b, "Ask for: %s\n", req.ContactName)
	}
	fmt.Fprintf(&b, "Reason for the call: %s\n", req.Reason)
	fmt.Fprintf(&b, "Preferred date: %s, window: %s (%s)\n", req.PreferredDate, req.PreferredTimeWindow, req.Timezone)
	if req.SpecialInstructions != "" {
		fmt.Fprintf(&b, "Special instructions: %s\n", req.SpecialInstructions)
	}
	if req.CallBackNumber != "" {
		fmt.Fprintf(&b, "Callback number to leave: %s\n", req.CallBackNumber)
	}
	fmt.Fprintf(&b, "Voice tone: %s\n", req.VoiceProfile)
	return b.String()
}

// parsePlanText decodes the model reply. Replies that ignore the JSON
// instruction are still usable: the raw text becomes the script and the
// summary stays empty so the fallback summarizer covers it.
func parsePlanText(text string) *models.CallPlan {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var plan models.CallPlan
	if err := json.Unmarshal([]byte(trimmed), &plan); err == nil && plan.Script != "" {
		if plan.Itinerary == nil {
			plan.Itinerary = []string{}
		}
		return &plan
	}
	return &models.CallPlan{Script: strings.TrimSpace(text), Itinerary: []string{}}
}
