package classify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Remote queries an external classification service. Requests carry an
// HMAC-SHA512 signature over the body, keyed by the application key and
// HMAC key concatenated.
type Remote struct {
	URL            string
	ApplicationKey string
	HMACKey        string

	client http.Client
}

// NewRemote builds a remote classifier for the given endpoint.
func NewRemote(url, applicationKey, hmacKey string) *Remote {
	return &Remote{
		URL:            url,
		ApplicationKey: applicationKey,
		HMACKey:        hmacKey,
	}
}

// Ready reports whether the endpoint and credentials are configured.
func (r *Remote) Ready() bool {
	return r.URL != "" && r.ApplicationKey != ""
}

type remoteRequest struct {
	GridSize int       `json:"gridSize"`
	Bitmap   []float64 `json:"bitmap"`
}

type remoteResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// Classify sends the bitmap to the service and returns its class
// probabilities.
func (r *Remote) Classify(ctx context.Context, bitmap []float64) ([]float64, error) {
	payload := remoteRequest{
		GridSize: gridSide(len(bitmap)),
		Bitmap:   bitmap,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	fullkey := r.ApplicationKey + r.HMACKey
	mac := hmac.New(sha512.New, []byte(fullkey))
	mac.Write(data)
	signature := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequestWithContext(ctx, "POST", r.URL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("applicationKey", r.ApplicationKey)
	req.Header.Set("hmac", signature)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: Status %d, Response: %s", res.StatusCode, string(body))
	}

	var parsed remoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Probabilities) != NumClasses {
		return nil, fmt.Errorf("expected %d probabilities, got %d", NumClasses, len(parsed.Probabilities))
	}

	return parsed.Probabilities, nil
}

// gridSide recovers the square grid side from a flat bitmap length.
func gridSide(n int) int {
	side := 0
	for side*side < n {
		side++
	}
	return side
}
