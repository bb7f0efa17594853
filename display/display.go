// Package display turns lookup outcomes into the three regions shown to the user.
package display

import (
	"fmt"

	"cityweather/manager"
)

// State is everything a surface needs to draw: temperature, emoji and
// description (or the error text in place of the description).
type State struct {
	Temperature string
	Emoji       string
	Description string
}

func Render(result manager.Result) State {
	state := State{
		Description: result.Description,
		Emoji:       result.Emoji,
	}

	if result.Temperature != nil {
		state.Temperature = fmt.Sprintf("%.1f°C", *result.Temperature)
	}

	return state
}

func RenderError(err error) State {
	lookupErr := manager.Classify(err)
	if lookupErr == nil {
		return State{}
	}

	return State{Description: lookupErr.Error()}
}

// FromLookup renders whichever outcome a lookup produced.
func FromLookup(result manager.Result, err error) State {
	if err != nil {
		return RenderError(err)
	}

	return Render(result)
}
