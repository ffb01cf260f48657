package logos

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spinelhq/spinel/pkg/logger"
)

const (
	defaultImageEndpoint = "https://image.pollinations.ai/prompt/"
	describeSystem       = "You are a creative logo design assistant. Provide detailed logo descriptions."
)

// downloadFormats is the fixed list of export formats advertised with every
// logo description.
var downloadFormats = []string{"PNG", "SVG", "JPG", "AI"}

// FailureReason classifies why an image generation attempt degraded.
type FailureReason string

const (
	ReasonNone    FailureReason = ""
	ReasonTimeout FailureReason = "timeout"
	ReasonStatus  FailureReason = "status"
	ReasonNetwork FailureReason = "network"
)

// Params describes the requested logo.
type Params struct {
	CompanyName string
	Style       string
	Colors      []string
}

// ImageResult is the outcome of one image generation attempt. On success the
// image is carried both as its source URL and as an inline base64 data URI;
// on failure a human-readable fallback description is supplied instead.
type ImageResult struct {
	Success             bool   `json:"success"`
	ImageURL            string `json:"image_url,omitempty"`
	ImageBase64         string `json:"image_base64,omitempty"`
	Prompt              string `json:"prompt,omitempty"`
	Error               string `json:"error,omitempty"`
	FallbackDescription string `json:"fallback_description,omitempty"`

	// Reason records the failure class for callers that need to distinguish
	// degradation causes. Not serialized.
	Reason FailureReason `json:"-"`
}

// Completer produces a text completion; satisfied by pkg/llm.Client.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Service builds logo descriptions and images.
type Service struct {
	completer     Completer
	httpClient    *http.Client
	imageEndpoint string
	log           *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithHTTPClient replaces the client used for image fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithImageEndpoint replaces the text-to-image endpoint root.
func WithImageEndpoint(endpoint string) Option {
	return func(s *Service) {
		if endpoint != "" {
			s.imageEndpoint = endpoint
		}
	}
}

// WithLogger supplies a logger; nil keeps logging silent.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService returns a logo service backed by the given completion provider.
func NewService(completer Completer, opts ...Option) *Service {
	s := &Service{
		completer:     completer,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		imageEndpoint: defaultImageEndpoint,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Describe asks the completion provider for a JSON-shaped textual logo
// description. The provider's text is returned verbatim with no server-side
// validation of its JSON shape.
func (s *Service) Describe(ctx context.Context, p Params) (string, error) {
	prompt := fmt.Sprintf(`Create a detailed description for a logo design for company: %s
Style: %s
Colors: %s

Provide a detailed description including:
1. Logo concept and symbolism
2. Typography suggestions
3. Color scheme details
4. Layout and composition
5. Suitable file formats

Format the response as a JSON with keys: concept, typography, colors, layout, formats`,
		p.CompanyName, p.Style, strings.Join(p.Colors, ", "))

	return s.completer.Complete(ctx, describeSystem, prompt)
}

// GenerateImage renders a logo through the text-to-image endpoint. Failures
// never surface as errors; they produce a failure-flagged result with a
// fallback description.
func (s *Service) GenerateImage(ctx context.Context, p Params) ImageResult {
	prompt := imagePrompt(p)
	imageURL := s.imageEndpoint + url.PathEscape(prompt) + "?width=512&height=512&model=flux&enhance=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return s.failure(ctx, p, err.Error(), ReasonNetwork, false)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		reason := ReasonNetwork
		if isTimeout(err) {
			reason = ReasonTimeout
		}
		return s.failure(ctx, p, err.Error(), reason, false)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.failure(ctx, p,
			fmt.Sprintf("Image generation failed with status %d", resp.StatusCode),
			ReasonStatus, true)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.failure(ctx, p, err.Error(), ReasonNetwork, false)
	}

	return ImageResult{
		Success:     true,
		ImageURL:    imageURL,
		ImageBase64: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw),
		Prompt:      prompt,
	}
}

// failure builds the degraded result. A status failure still knows the
// style and colors were understood, so its fallback text mentions them.
func (s *Service) failure(ctx context.Context, p Params, errText string, reason FailureReason, withStyle bool) ImageResult {
	s.log.WarnContext(ctx, "logo image generation degraded",
		logger.Component("logos"),
		slog.String("reason", string(reason)),
		slog.String("detail", errText),
	)

	fallback := "لوغو احترافي لشركة " + p.CompanyName
	if withStyle {
		fallback = fmt.Sprintf("لوغو احترافي لشركة %s بأسلوب %s مع ألوان %s",
			p.CompanyName, p.Style, strings.Join(p.Colors, ", "))
	}

	return ImageResult{
		Success:             false,
		Error:               errText,
		FallbackDescription: fallback,
		Reason:              reason,
	}
}

// imagePrompt words the request differently for non-ASCII company names so
// the renderer treats the name as literal artwork text.
func imagePrompt(p Params) string {
	colors := strings.Join(p.Colors, ", ")
	if !isASCII(p.CompanyName) {
		return fmt.Sprintf("professional business logo design, company name '%s', %s style, %s colors, minimalist, vector style, clean background, high quality, svg style, corporate branding",
			p.CompanyName, p.Style, colors)
	}
	return fmt.Sprintf("professional business logo design for '%s', %s style, %s colors, minimalist, vector style, clean background, high quality, svg style, corporate branding",
		p.CompanyName, p.Style, colors)
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
