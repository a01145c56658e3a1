package view

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"go-weather/internal/application/window"
	"go-weather/internal/domain/entity"
)

func render(t *testing.T, page Page) string {
	t.Helper()

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, "window.html", page, nil); err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	return buf.String()
}

func TestRender_Widgets(t *testing.T) {
	v := window.View{
		Title:       "Weather App",
		Query:       "Bengaluru",
		Units:       entity.Imperial,
		State:       window.Displaying,
		Name:        "Bengaluru, IN",
		Condition:   "Clear Sky",
		Temperature: "81.5 °F",
		Detail:      "Feels like: 82.6 °F | Humidity: 70% | Wind: 3.1 mph",
		Icon:        &entity.IconImage{ID: "01d", Image: image.NewRGBA(image.Rect(0, 0, 100, 100))},
		Forecast:    "2025-01-01 00:00:00 — 68°F — Clear Sky\n",
	}

	html := render(t, NewPage("", v))

	for _, expected := range []string{
		"<title>Weather App</title>",
		`value="Bengaluru"`,
		`action="/weather"`,
		`formaction="/weather/location"`,
		`value="imperial" checked`,
		"Bengaluru, IN",
		"81.5 °F",
		`src="data:image/png;base64,`,
		"2025-01-01 00:00:00 — 68°F — Clear Sky",
	} {
		if !strings.Contains(html, expected) {
			t.Errorf("expected page to contain %q", expected)
		}
	}
	if strings.Contains(html, `value="metric" checked`) {
		t.Error("expected only the imperial radio to be checked")
	}
	if strings.Contains(html, "<dialog") {
		t.Error("expected no notice dialog")
	}
}

func TestRender_NoticeAndNoIcon(t *testing.T) {
	v := window.View{
		Title:  "Weather App",
		Units:  entity.Metric,
		State:  window.Idle,
		Notice: &window.Notice{Title: "Location failed", Text: "Could not detect location via IP."},
	}

	html := render(t, NewPage("/app", v))

	if !strings.Contains(html, "<dialog open") || !strings.Contains(html, "Location failed") {
		t.Error("expected notice dialog")
	}
	if strings.Contains(html, "<img") {
		t.Error("expected no icon image")
	}
	if !strings.Contains(html, `action="/app/weather"`) {
		t.Error("expected base path in form action")
	}
	if !strings.Contains(html, `value="metric" checked`) {
		t.Error("expected metric radio to be checked")
	}
}

func TestRender_EscapesProviderText(t *testing.T) {
	v := window.View{
		Title:  "Weather App",
		Notice: &window.Notice{Title: "API error", Text: "<script>alert(1)</script>"},
	}

	html := render(t, NewPage("", v))
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("expected provider text to be escaped")
	}
}
