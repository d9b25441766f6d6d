package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

var fenceMarker = regexp.MustCompile("```(?:json)?\n?")

// decodeBatch parses a model reply into an extraction batch. Models ignore
// the bare-JSON instruction often enough that markdown fences are stripped
// before decoding.
func decodeBatch(text string) (*menu.ExtractionResult, error) {
	cleaned := strings.TrimSpace(fenceMarker.ReplaceAllString(text, ""))

	var batch menu.ExtractionResult
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, errors.New("gemini returned non-json output")
	}
	return &batch, nil
}
