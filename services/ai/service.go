package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assistant"
)

var (
	// errors
	ErrTimeout = errors.New("AI service timed out")
)

const fallbackResponse = "Sorry, I could not generate a response."

type (
	service struct {
		baseURL string
		apiKey  string
		client  *http.Client
		logger  core.Logger
	}

	chatRequest struct {
		Message string      `json:"message"`
		Context interface{} `json:"context,omitempty"`
	}

	chatResponse struct {
		Response string `json:"response"`
		Message  string `json:"message"`
	}
)

var _ assistant.Client = (*service)(nil)

// NewService returns an assistant.Client backed by the remote model HTTP API.
// Requests go through transport when it is non-nil, so an offline interceptor
// can serve cached replies for the health endpoint.
func NewService(conf *core.Config, transport http.RoundTripper, logger core.Logger) assistant.Client {
	return &service{
		baseURL: conf.AI.BaseURL,
		apiKey:  conf.AI.APIKey,
		client: &http.Client{
			Timeout:   conf.AI.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

func (svc *service) SendMessage(ctx context.Context, message string, chatCtx interface{}) (string, error) {
	payload, err := json.Marshal(chatRequest{Message: message, Context: chatCtx})
	if err != nil {
		return "", errors.Wrap(err, "marshalling chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/ai/chat", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "building chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	if svc.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+svc.apiKey)
	}

	res, err := svc.client.Do(req)
	if err != nil {
		if uerr, ok := err.(*url.Error); ok && uerr.Timeout() {
			return "", ErrTimeout
		}
		return "", errors.Wrap(err, "sending chat request")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("AI service returned status %d", res.StatusCode)
	}

	var body chatResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decoding chat response")
	}
	switch {
	case body.Response != "":
		return body.Response, nil
	case body.Message != "":
		return body.Message, nil
	default:
		return fallbackResponse, nil
	}
}

func (svc *service) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+"/ai/health", nil)
	if err != nil {
		return false
	}
	res, err := svc.client.Do(req)
	if err != nil {
		svc.logger.Debug("AI health check failed: " + err.Error())
		return false
	}
	defer res.Body.Close()
	return res.StatusCode >= 200 && res.StatusCode < 300
}
