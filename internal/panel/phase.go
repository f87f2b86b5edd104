package panel

import (
	"encoding/json"
	"ulascansenturk/weather-panel/internal/weather"
)

// Phase is the panel currently shown. Exactly one is visible at a time.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseContent
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseContent:
		return "content"
	case PhaseError:
		return "error"
	default:
		return "loading"
	}
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Visibility says which of the three panels a renderer should show.
type Visibility struct {
	Loading bool `json:"loading"`
	Content bool `json:"content"`
	Error   bool `json:"error"`
}

func (p Phase) Visibility() Visibility {
	return Visibility{
		Loading: p == PhaseLoading,
		Content: p == PhaseContent,
		Error:   p == PhaseError,
	}
}

// View is a copy of the panel state with display strings derived for the
// current unit.
type View struct {
	Phase        Phase               `json:"phase"`
	Visible      Visibility          `json:"visible"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Display      *weather.Display    `json:"display,omitempty"`
	Unit         weather.DisplayUnit `json:"unit"`
	Clock        string              `json:"clock"`
	Notice       string              `json:"notice,omitempty"`
}
