package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/breedsnap/breedsnap-go/internal/models"
)

// vision is the single outbound capability the classifier needs.
// Narrow on purpose so tests can substitute each phase independently.
type vision interface {
	DescribeImage(ctx context.Context, systemPrompt, prompt, imageURL string, maxTokens int) (string, error)
}

// GateDecision is the typed intermediate between the gate call and the
// identification call.
type GateDecision struct {
	IsCat  bool   `json:"isCat"`
	Reason string `json:"reason"`
}

// Classifier runs the two-phase identification protocol: a cheap
// cat-presence gate, then the full breed identification. The gate
// exists because the model otherwise produces confident-looking breed
// output for non-cat images.
type Classifier struct {
	model  vision
	logger *slog.Logger
}

// NewClassifier creates a classifier on top of a vision model.
func NewClassifier(model vision, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		model:  model,
		logger: logger,
	}
}

// Classify identifies the breed of the cat in the image. It returns a
// *NotACatError if the gate rejects the image, and an error wrapping
// ErrProvider if the model is unreachable or its reply is unusable.
// The identification call is never issued when the gate rejects.
func (c *Classifier) Classify(ctx context.Context, image []byte, mimeType string) (models.Classification, error) {
	imageURL := DataURL(mimeType, image)

	gate, err := c.gate(ctx, imageURL)
	if err != nil {
		return models.Classification{}, err
	}
	if !gate.IsCat {
		reason := gate.Reason
		if reason == "" {
			reason = DefaultNotACatReason
		}
		return models.Classification{}, &NotACatError{Reason: reason}
	}

	return c.identify(ctx, imageURL)
}

// gate asks the model whether the image contains a cat at all.
// Unparsable replies fail open: proceeding with a garbage gate verdict
// is preferred over blocking a real cat photo on a parse error. That is
// a policy choice, logged at WARN so it is visible in operation.
func (c *Classifier) gate(ctx context.Context, imageURL string) (GateDecision, error) {
	content, err := c.model.DescribeImage(ctx, gateSystemPrompt, gatePrompt, imageURL, gateMaxTokens)
	if err != nil {
		return GateDecision{}, fmt.Errorf("%w: cat gate: %v", ErrProvider, err)
	}

	raw, ok := ExtractJSONObject(content)
	if !ok {
		c.logger.Warn("cat gate reply had no JSON object, failing open", "content", truncate(content, 200))
		return GateDecision{IsCat: true}, nil
	}

	var decision GateDecision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		c.logger.Warn("cat gate reply unparsable, failing open", "error", err)
		return GateDecision{IsCat: true}, nil
	}

	return decision, nil
}

// identify runs the full breed identification and post-processes the
// model output: percentage normalization first, then field defaults.
func (c *Classifier) identify(ctx context.Context, imageURL string) (models.Classification, error) {
	content, err := c.model.DescribeImage(ctx, identifySystemPrompt, identifyPrompt, imageURL, identifyMaxTokens)
	if err != nil {
		return models.Classification{}, fmt.Errorf("%w: identify breed: %v", ErrProvider, err)
	}
	if strings.TrimSpace(content) == "" {
		return models.Classification{}, fmt.Errorf("%w: empty reply from model", ErrProvider)
	}

	raw, ok := ExtractJSONObject(content)
	if !ok {
		return models.Classification{}, fmt.Errorf("%w: no JSON object in model reply", ErrProvider)
	}

	var result models.Classification
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return models.Classification{}, fmt.Errorf("%w: malformed JSON in model reply: %v", ErrProvider, err)
	}

	NormalizePercentages(&result)
	result.ApplyDefaults()

	return result, nil
}

// DataURL encodes an image the way both the model endpoint and the
// record store expect it: inline base64 with its MIME type.
func DataURL(mimeType string, image []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
