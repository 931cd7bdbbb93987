package dailyverse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var (
	ErrRateLimited     = errors.New("ai gateway rate limit exceeded")
	ErrPaymentRequired = errors.New("ai gateway payment required")
)

// Gateway calls the hosted chat-completions endpoint that picks the verse.
type Gateway struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

func NewGateway(url, apiKey, model string) *Gateway {
	return &Gateway{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// FetchVerse asks the model for a personalized verse. 429 and 402 from the
// gateway surface as sentinel errors so the handler can pass them through;
// every other failure, including an unparseable model reply, degrades to the
// fixed fallback verse.
func (g *Gateway) FetchVerse(ctx context.Context, feelings []string, date string) (*DailyVerse, error) {
	if g.apiKey == "" {
		return nil, errors.New("ai gateway key is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(feelings)},
			{Role: "user", Content: userPrompt(date)},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrPaymentRequired
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("ai gateway error: %d %s", resp.StatusCode, detail)
		return nil, fmt.Errorf("ai gateway returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, err
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("no content in ai response")
	}

	verse, err := parseVersePayload(chat.Choices[0].Message.Content)
	if err != nil {
		log.Printf("failed to parse ai response: %v", err)
		fallback := FallbackVerse
		return &fallback, nil
	}
	return verse, nil
}

// parseVersePayload strips the markdown code fences some models wrap JSON in.
func parseVersePayload(content string) (*DailyVerse, error) {
	clean := strings.TrimSpace(content)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var v DailyVerse
	if err := json.Unmarshal([]byte(clean), &v); err != nil {
		return nil, err
	}
	if v.Verse == "" || v.Reference == "" {
		return nil, errors.New("incomplete verse payload")
	}
	return &v, nil
}

func systemPrompt(feelings []string) string {
	feelingsContext := "This is a new user with no history yet."
	if len(feelings) > 0 {
		recent := feelings
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		feelingsContext = "The user has recently shared these feelings and experiences: " + strings.Join(recent, "; ")
	}

	return fmt.Sprintf(`You are a compassionate Bible verse selector for the Zealous app. Your job is to select an encouraging, relevant Bible verse for the user's daily devotional.

%s

Based on their journey, select ONE Bible verse that would speak to their heart today. The verse should:
1. Be encouraging and uplifting
2. Relate to their recent feelings if they have shared any
3. Be from the NIV or NLT translation
4. Include the full verse text and reference

Respond ONLY with a JSON object in this exact format (no markdown, no code blocks):
{"verse": "The full verse text here", "reference": "Book Chapter:Verse", "reflection": "A brief 1-2 sentence reflection on why this verse might speak to them today"}`, feelingsContext)
}

func userPrompt(date string) string {
	return fmt.Sprintf("Please select an encouraging Bible verse for today (%s). Make sure it's different from common verses like Jeremiah 29:11 or Philippians 4:13 - find something that might be new to them.", date)
}
