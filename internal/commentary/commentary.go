// Package commentary turns a natal chart into a long-form written
// interpretation via an LLM provider.
package commentary

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"celestialguide/internal/providers/gemini"
	"celestialguide/internal/types"
)

// ErrMissingAPIKey reports that no LLM key is configured.
var ErrMissingAPIKey = errors.New("commentary: API key not configured")

// Model is the LLM the commentary service targets.
const Model = "gemini-2.0-flash-exp"

// Sections lists the six headings the generated text is structured under,
// in order.
var Sections = []string{
	"Personal Identity and Appearance (Ascendant and its Ruler)",
	"Life Purpose and Career Path (Sun, Midheaven and their Rulers)",
	"Emotional World and Inner Needs (Moon Placement and Aspects)",
	"Relationships and Harmony Dynamics (Venus, Mars and the 7th House)",
	"Challenges and Growth Areas (Saturn, Outer Planets and Hard Aspects)",
	"Lifelong Mission (Lunar Nodes)",
}

const systemInstruction = `You are an experienced astrologer synthesizing traditional and modern chart
interpretation. Read the chart below as a whole, weighing aspect
combinations in context rather than listing placements. Respond in
Markdown under exactly these six headings, in this order, with one
substantial paragraph (150-250 words) per heading:

1. Personal Identity and Appearance (Ascendant and its Ruler)
2. Life Purpose and Career Path (Sun, Midheaven and their Rulers)
3. Emotional World and Inner Needs (Moon Placement and Aspects)
4. Relationships and Harmony Dynamics (Venus, Mars and the 7th House)
5. Challenges and Growth Areas (Saturn, Outer Planets and Hard Aspects)
6. Lifelong Mission (Lunar Nodes)

Use only the placements relevant to each section, give concrete life
examples, and balance strengths with growth opportunities. Keep the tone
empathetic, constructive and professional.`

// BirthInfo carries the request context echoed into the prompt.
type BirthInfo struct {
	Datetime    string
	Timezone    string
	Latitude    float64
	Longitude   float64
	HouseSystem string
}

// Result is the generated commentary plus the chart it interprets.
type Result struct {
	Text     string           `json:"commentaryText"`
	Model    string           `json:"model"`
	Sections []string         `json:"sections"`
	Chart    types.NatalChart `json:"chartData"`
}

// TextProvider generates text from a prompt.
type TextProvider interface {
	GenerateContent(prompt string) (string, error)
}

// Service writes chart commentary.
type Service interface {
	Deep(chart types.NatalChart, birth BirthInfo) (Result, error)
}

type service struct {
	provider TextProvider
	logger   *slog.Logger
}

// NewService wires the Gemini client. An empty key leaves the provider
// unconfigured; calls fail with ErrMissingAPIKey.
func NewService(logger *slog.Logger, apiKey string) Service {
	var provider TextProvider
	if apiKey != "" {
		provider = gemini.NewClient(logger, apiKey)
	}
	return NewServiceWithProvider(logger, provider)
}

func NewServiceWithProvider(logger *slog.Logger, provider TextProvider) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "commentary"),
	}
}

func (s *service) Deep(chart types.NatalChart, birth BirthInfo) (Result, error) {
	if s.provider == nil {
		return Result{}, ErrMissingAPIKey
	}

	prompt := BuildPrompt(chart, birth)
	s.logger.Debug("generating commentary", "prompt_len", len(prompt))

	text, err := s.provider.GenerateContent(prompt)
	if err != nil {
		return Result{}, fmt.Errorf("generating commentary: %w", err)
	}

	return Result{
		Text:     text,
		Model:    Model,
		Sections: Sections,
		Chart:    chart,
	}, nil
}

// BuildPrompt renders the chart into the structured prompt the model
// interprets.
func BuildPrompt(chart types.NatalChart, birth BirthInfo) string {
	var b strings.Builder

	b.WriteString(systemInstruction)
	b.WriteString("\n\n---\n\n")

	b.WriteString("**Birth Information:**\n")
	fmt.Fprintf(&b, "- Date: %s\n", birth.Datetime)
	fmt.Fprintf(&b, "- Location: Lat %.4f, Lon %.4f\n", birth.Latitude, birth.Longitude)
	fmt.Fprintf(&b, "- Timezone: %s\n\n", birth.Timezone)

	fmt.Fprintf(&b, "**Ascendant:** %s\n", formatPosition(chart.Ascendant))
	fmt.Fprintf(&b, "**Midheaven:** %s\n", formatPosition(chart.Midheaven))
	fmt.Fprintf(&b, "**House System:** %s\n\n", birth.HouseSystem)

	b.WriteString("**Planet Positions:**\n")
	for _, planet := range chart.Planets {
		fmt.Fprintf(&b, "- %s: %s (House %d)", planet.Name, formatPosition(planet.ZodiacPosition), planet.House)
		if planet.Retrograde {
			b.WriteString(" retrograde")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(chart.Aspects) > 0 {
		b.WriteString("**Major Aspects:**\n")
		aspects := chart.Aspects
		if len(aspects) > 15 {
			aspects = aspects[:15]
		}
		for _, aspect := range aspects {
			fmt.Fprintf(&b, "- %s %s %s (Orb: %.2f°)\n", aspect.Planet1, aspect.Type, aspect.Planet2, aspect.Orb)
		}
		b.WriteString("\n")
	}

	b.WriteString("**House Cusps:**\n")
	houses := chart.Houses
	if len(houses) > 6 {
		houses = houses[:6]
	}
	for _, house := range houses {
		fmt.Fprintf(&b, "- House %d: %.0f° %s\n", house.House, house.DegreeInSign, house.Sign)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("Using the natal chart above, write the six-section interpretation.\n")
	return b.String()
}

func formatPosition(pos types.ZodiacPosition) string {
	return fmt.Sprintf("%.2f° %s", pos.DegreeInSign, pos.Sign)
}
