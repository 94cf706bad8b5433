package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
)

// ParseAnalysis extracts the JSON object from raw model output (which may be
// wrapped in markdown fences or prose) and validates it against the expected
// schema. Malformed or out-of-range payloads return entity.ValidationError.
func ParseAnalysis(raw string) (*model.Analysis, error) {
	text, err := extractJSON(stripFences(raw))
	if err != nil {
		return nil, &entity.ValidationError{Field: "analysis", Reason: err.Error()}
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, &entity.ValidationError{Field: "analysis", Reason: err.Error()}
	}

	if err := validate(&analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

func validate(a *model.Analysis) error {
	if a.Title == "" {
		return &entity.ValidationError{Field: "analysis.title", Reason: "missing"}
	}
	if a.Description == "" {
		return &entity.ValidationError{Field: "analysis.description", Reason: "missing"}
	}
	if a.Directionality.Score < -1.0 || a.Directionality.Score > 1.0 {
		return &entity.ValidationError{
			Field:  "analysis.directionality.score",
			Reason: fmt.Sprintf("%v outside [-1.0, 1.0]", a.Directionality.Score),
		}
	}

	for i, region := range a.Regions {
		if region.Rank < 1 {
			return &entity.ValidationError{
				Field:  fmt.Sprintf("analysis.regions[%d].rank", i),
				Reason: "must be a positive rank",
			}
		}
		if !normalized(region.Box.X) || !normalized(region.Box.Y) ||
			!normalized(region.Box.Width) || !normalized(region.Box.Height) {
			return &entity.ValidationError{
				Field:  fmt.Sprintf("analysis.regions[%d].box", i),
				Reason: "coordinates must be normalized to [0, 1]",
			}
		}
	}

	return nil
}

func normalized(v float64) bool {
	return v >= 0.0 && v <= 1.0
}

// stripFences removes ```json ... ``` or ``` ... ``` wrapping, returning the
// original text when no fences are present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	end := len(lines) - 1
	for i := len(lines) - 1; i >= 1; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i

			break
		}
	}

	return strings.Join(lines[1:end], "\n")
}

// extractJSON returns the first top-level JSON object embedded in text.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found")
	}

	text = text[start:]
	end := strings.LastIndex(text, "}")
	if end == -1 {
		return "", fmt.Errorf("no closing brace found")
	}

	return text[:end+1], nil
}
