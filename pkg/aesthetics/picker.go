package aesthetics

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user cancels the interactive picker.
var ErrAborted = errors.New("aesthetics: selection aborted")

// PromptDriver abstracts the interactive prompt so the picker can be tested
// without a terminal.
type PromptDriver interface {
	// Select shows message with the given options and returns the chosen
	// option string.
	Select(message string, options []string) (string, error)
}

type surveyDriver struct{}

func (surveyDriver) Select(message string, options []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("aesthetics: prompt failed: %w", err)
	}
	return choice, nil
}

// Picker drives interactive style selection over a catalog.
type Picker struct {
	catalog *Catalog
	driver  PromptDriver
}

// NewPicker builds a picker for the catalog. A nil driver selects the
// default terminal prompt.
func NewPicker(catalog *Catalog, driver PromptDriver) *Picker {
	if driver == nil {
		driver = surveyDriver{}
	}
	return &Picker{catalog: catalog, driver: driver}
}

// Pick prompts for a style. A non-empty query narrows the options to search
// hits first; an empty query offers the whole catalog.
func (p *Picker) Pick(query string) (Style, error) {
	candidates := p.catalog.All()
	if query != "" {
		candidates = p.catalog.Search(query, 0)
		if len(candidates) == 0 {
			return Style{}, fmt.Errorf("aesthetics: no styles match %q", query)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	options := make([]string, len(candidates))
	bySlugLabel := make(map[string]Style, len(candidates))
	for i, style := range candidates {
		options[i] = style.Slug + ": " + style.Label()
		bySlugLabel[options[i]] = style
	}

	choice, err := p.driver.Select("Pick a design aesthetic", options)
	if err != nil {
		return Style{}, err
	}

	style, ok := bySlugLabel[choice]
	if !ok {
		return Style{}, fmt.Errorf("aesthetics: unexpected selection %q", choice)
	}
	return style, nil
}
