/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
)

const (
	// Keys of the host framework settings map.
	SettingsViewsKey      = "views"
	SettingsViewEngineKey = "view engine"
)

// ViewSettings tells where partials live and which extension denotes a
// template. With Search set the Views are an ordered list of candidate
// directories, otherwise Views holds a single base directory.
type ViewSettings struct {
	Views      []string `mapstructure:"views" json:"views,omitempty" yaml:"views,omitempty"`
	ViewEngine string   `mapstructure:"view engine" json:"view engine,omitempty" yaml:"view engine,omitempty"`
	Search     bool     `mapstructure:"-" json:"-" yaml:"-"`
}

func NewViewDir(dir, engine string) *ViewSettings {
	return &ViewSettings{
		Views:      []string{dir},
		ViewEngine: engine,
	}
}

func NewViewSearch(engine string, dirs ...string) *ViewSettings {
	return &ViewSettings{
		Views:      dirs,
		ViewEngine: engine,
		Search:     true,
	}
}

// NewViewSettingsFromMap decodes the settings object of a host framework:
// "views" is a string or a list of strings, "view engine" the extension tag.
func NewViewSettingsFromMap(m map[string]interface{}) (*ViewSettings, error) {
	ans := &ViewSettings{}

	if engine, ok := m[SettingsViewEngineKey]; ok && engine != nil {
		e, err := cast.ToStringE(engine)
		if err != nil {
			return nil, fmt.Errorf("invalid %s setting: %s",
				SettingsViewEngineKey, err.Error())
		}
		ans.ViewEngine = e
	}

	views, ok := m[SettingsViewsKey]
	if !ok || views == nil {
		return ans, nil
	}

	switch val := views.(type) {
	case string:
		ans.Views = []string{val}
	default:
		list, err := cast.ToStringSliceE(views)
		if err != nil {
			return nil, fmt.Errorf("invalid %s setting: %s",
				SettingsViewsKey, err.Error())
		}
		ans.Views = list
		ans.Search = true
	}

	return ans, nil
}

func (s *ViewSettings) HasViews() bool { return s != nil && len(s.Views) > 0 }
func (s *ViewSettings) IsSearch() bool { return s.HasViews() && s.Search }

// GetExtension returns the template extension with the leading dot or an
// empty string when no view engine is configured.
func (s *ViewSettings) GetExtension() string {
	if s == nil || s.ViewEngine == "" {
		return ""
	}
	return "." + strings.TrimPrefix(s.ViewEngine, ".")
}

// IsFileRef reports whether the locator already names a template file.
func (s *ViewSettings) IsFileRef(locator string) bool {
	ext := s.GetExtension()
	return ext != "" && strings.HasSuffix(locator, ext)
}

// GetCandidates returns the paths to try for a locator, in view order.
func (s *ViewSettings) GetCandidates(locator string) []string {
	if !s.HasViews() || s.IsFileRef(locator) {
		return []string{locator}
	}

	ext := s.GetExtension()
	ans := make([]string, 0, len(s.Views))
	for _, view := range s.Views {
		ans = append(ans, filepath.Join(view, locator+ext))
	}
	return ans
}
