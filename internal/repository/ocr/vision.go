package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LeonardoLujan/gamified-savings-app/pgk/retryablehttp"
)

const annotatePath = "/v1/images:annotate"

type annotateRequest struct {
	Requests []annotateRequestEntry `json:"requests"`
}

type annotateRequestEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
	} `json:"responses"`
}

// Client talks to the Vision text-detection endpoint. A response without
// a text annotation is not an error: it means no text was found.
type Client struct {
	apiURL string
	apiKey string
	client *retryablehttp.RetryableClient
}

func New(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

// ExtractText submits the base64-encoded image for TEXT_DETECTION and
// returns the full recognized text, or "" when the service found none.
func (c *Client) ExtractText(ctx context.Context, imageBase64 string) (string, error) {
	body, err := json.Marshal(annotateRequest{
		Requests: []annotateRequestEntry{
			{
				Image:    annotateImage{Content: imageBase64},
				Features: []annotateFeature{{Type: "TEXT_DETECTION"}},
			},
		},
	})
	if err != nil {
		return "", err
	}

	url := c.apiURL + annotatePath
	if c.apiKey != "" {
		url = fmt.Sprintf("%s?key=%s", url, c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(ctx, req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text detection request failed: %s", http.StatusText(response.StatusCode))
	}

	var annotated annotateResponse
	if err := json.NewDecoder(response.Body).Decode(&annotated); err != nil {
		return "", err
	}

	if len(annotated.Responses) == 0 || annotated.Responses[0].FullTextAnnotation == nil {
		return "", nil
	}

	return annotated.Responses[0].FullTextAnnotation.Text, nil
}
