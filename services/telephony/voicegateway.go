package telephony

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"callsmith/models"
)

// VoiceGatewayProvider places calls through an external voice gateway over
// HTTP. The gateway speaks the script with the requested voice profile and
// reports back a call status.
type VoiceGatewayProvider struct {
	baseURL   string
	authToken string
	callerID  string
	client    *http.Client
}

func NewVoiceGatewayProvider(baseURL, authToken, callerID string) *VoiceGatewayProvider {
	return &VoiceGatewayProvider{
		baseURL:   baseURL,
		authToken: authToken,
		callerID:  callerID,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayCallRequest struct {
	To             string `json:"to"`
	From           string `json:"from,omitempty"`
	Script         string `json:"script"`
	VoiceProfile   string `json:"voiceProfile"`
	CallbackNumber string `json:"callbackNumber,omitempty"`
}

type gatewayCallResponse struct {
	CallID      string `json:"callId"`
	Status      string `json:"status"`
	InitiatedAt string `json:"initiatedAt"`
	Message     string `json:"message"`
}

func (p *VoiceGatewayProvider) InitiateCall(ctx context.Context, req CallRequest) (*models.CallResult, error) {
	payload, err := json.Marshal(gatewayCallRequest{
		To:             req.To,
		From:           p.callerID,
		Script:         req.Script,
		VoiceProfile:   req.VoiceProfile,
		CallbackNumber: req.CallbackNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal call request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/calls", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.authToken)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice gateway: %w", err)
	}
	defer resp.Body.Close()

	var gatewayResp gatewayCallResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&gatewayResp); decodeErr != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("failed to decode gateway response: %w", decodeErr)
	}
	if resp.StatusCode != http.StatusOK {
		if gatewayResp.Message != "" {
			return nil, fmt.Errorf("voice gateway error: %s", gatewayResp.Message)
		}
		return nil, fmt.Errorf("voice gateway returned status %d", resp.StatusCode)
	}

	result := &models.CallResult{
		CallID:      gatewayResp.CallID,
		Status:      gatewayResp.Status,
		Provider:    "voice-gateway",
		InitiatedAt: gatewayResp.InitiatedAt,
	}
	if result.CallID == "" {
		result.CallID = uuid.New().String()
	}
	if result.Status == "" {
		result.Status = models.CallStatusInitiated
	}
	if result.InitiatedAt == "" {
		result.InitiatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return result, nil
}
