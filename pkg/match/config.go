package match

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Default tunable values. The margin and windows were inherited from
// tuning runs, not derived; treat them as knobs, not truths.
const (
	// DefaultScoreMargin is how far below the winner's content score an
	// alternative layout may land and still be adopted for diversity.
	DefaultScoreMargin = 12.0

	// DefaultHistoryLimit bounds the selection history kept per run.
	DefaultHistoryLimit = 50

	// DefaultRecentWindow is how many recent picks count toward the
	// layout-reuse penalty.
	DefaultRecentWindow = 5

	// DefaultRecentStoryWindow is how many recent picks count when
	// preferring a fresh story type during rerouting.
	DefaultRecentStoryWindow = 3
)

// Tunables holds the planner's diversity knobs. The zero value is
// usable; SetDefaults fills unset fields. This struct supports both
// TOML config files and JSON API requests.
type Tunables struct {
	ScoreMargin       float64 `toml:"score_margin" json:"score_margin,omitempty"`
	HistoryLimit      int     `toml:"history_limit" json:"history_limit,omitempty"`
	RecentWindow      int     `toml:"recent_window" json:"recent_window,omitempty"`
	RecentStoryWindow int     `toml:"recent_story_window" json:"recent_story_window,omitempty"`
}

// DefaultTunables returns the standard knob settings.
func DefaultTunables() Tunables {
	return Tunables{
		ScoreMargin:       DefaultScoreMargin,
		HistoryLimit:      DefaultHistoryLimit,
		RecentWindow:      DefaultRecentWindow,
		RecentStoryWindow: DefaultRecentStoryWindow,
	}
}

// SetDefaults fills zero fields with their defaults. Idempotent.
func (t *Tunables) SetDefaults() {
	if t.ScoreMargin == 0 {
		t.ScoreMargin = DefaultScoreMargin
	}
	if t.HistoryLimit == 0 {
		t.HistoryLimit = DefaultHistoryLimit
	}
	if t.RecentWindow == 0 {
		t.RecentWindow = DefaultRecentWindow
	}
	if t.RecentStoryWindow == 0 {
		t.RecentStoryWindow = DefaultRecentStoryWindow
	}
}

// Validate rejects negative knob values.
func (t *Tunables) Validate() error {
	if t.ScoreMargin < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "score_margin must not be negative, got %v", t.ScoreMargin)
	}
	if t.HistoryLimit < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "history_limit must not be negative, got %d", t.HistoryLimit)
	}
	if t.RecentWindow < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "recent_window must not be negative, got %d", t.RecentWindow)
	}
	if t.RecentStoryWindow < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "recent_story_window must not be negative, got %d", t.RecentStoryWindow)
	}
	return nil
}

// LoadTunables reads planner knobs from a TOML file and fills unset
// fields with defaults.
func LoadTunables(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read tunables file %s", path)
	}
	var t Tunables
	if err := toml.Unmarshal(data, &t); err != nil {
		return Tunables{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse tunables file %s", path)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, err
	}
	t.SetDefaults()
	return t, nil
}
