package commentary

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"celestialguide/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type stubProvider struct {
	prompt string
	text   string
	err    error
}

func (s *stubProvider) GenerateContent(prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func testChart() types.NatalChart {
	chart := types.NatalChart{
		Ascendant: types.ZodiacPosition{Degree: 125.5, Sign: "Leo", DegreeInSign: 5.5},
		Midheaven: types.ZodiacPosition{Degree: 35.0, Sign: "Taurus", DegreeInSign: 5.0},
		Planets: []types.PlanetPosition{
			{
				Name:           "Sun",
				ZodiacPosition: types.ZodiacPosition{Degree: 95.2, Sign: "Cancer", DegreeInSign: 5.2},
				House:          12,
			},
			{
				Name:           "Mercury",
				ZodiacPosition: types.ZodiacPosition{Degree: 80.0, Sign: "Gemini", DegreeInSign: 20.0},
				House:          11,
				Retrograde:     true,
			},
		},
	}
	for i := 1; i <= 12; i++ {
		chart.Houses = append(chart.Houses, types.HouseCusp{
			House:          i,
			ZodiacPosition: types.ZodiacPosition{Degree: float64(i * 30), Sign: "Aries", DegreeInSign: 0},
		})
	}
	for i := 0; i < 20; i++ {
		chart.Aspects = append(chart.Aspects, types.Aspect{
			Planet1: fmt.Sprintf("P%d", i), Planet2: "Sun", Type: "Trine", Angle: 120, Orb: 1.5,
		})
	}
	return chart
}

func TestDeepMissingKey(t *testing.T) {
	svc := NewService(testLogger(), "")

	if _, err := svc.Deep(testChart(), BirthInfo{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestDeepResult(t *testing.T) {
	provider := &stubProvider{text: "## Personal Identity\n..."}
	svc := NewServiceWithProvider(testLogger(), provider)

	birth := BirthInfo{
		Datetime:    "1990-06-26 14:30:00",
		Timezone:    "Europe/Istanbul",
		Latitude:    41.0082,
		Longitude:   28.9784,
		HouseSystem: "Placidus",
	}
	result, err := svc.Deep(testChart(), birth)
	if err != nil {
		t.Fatalf("Deep: %v", err)
	}

	if result.Text != provider.text {
		t.Errorf("text = %q", result.Text)
	}
	if result.Model != Model {
		t.Errorf("model = %q", result.Model)
	}
	if len(result.Sections) != 6 {
		t.Errorf("sections = %d, want 6", len(result.Sections))
	}
	if len(result.Chart.Planets) != 2 {
		t.Error("chart not echoed into result")
	}
}

func TestDeepPropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	svc := NewServiceWithProvider(testLogger(), provider)

	if _, err := svc.Deep(testChart(), BirthInfo{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildPrompt(t *testing.T) {
	birth := BirthInfo{
		Datetime:    "1990-06-26 14:30:00",
		Timezone:    "Europe/Istanbul",
		Latitude:    41.0082,
		Longitude:   28.9784,
		HouseSystem: "Koch",
	}
	prompt := BuildPrompt(testChart(), birth)

	for _, want := range []string{
		"Europe/Istanbul",
		"Lat 41.0082, Lon 28.9784",
		"**Ascendant:** 5.50° Leo",
		"**Midheaven:** 5.00° Taurus",
		"**House System:** Koch",
		"Sun: 5.20° Cancer (House 12)",
		"Mercury: 20.00° Gemini (House 11) retrograde",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Only the first 15 aspects and 6 cusps feed the prompt.
	if strings.Contains(prompt, "P15") {
		t.Error("aspects not truncated to 15")
	}
	if !strings.Contains(prompt, "P14") {
		t.Error("expected 15th aspect present")
	}
	if strings.Contains(prompt, "House 7:") {
		t.Error("cusps not truncated to 6")
	}
}
