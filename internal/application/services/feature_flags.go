package services

import (
	"github.com/ankorline/yachtcharterdiscovery/backend/pkg/config"
)

// FeatureFlags holds flag values captured once at startup. Passing the flags
// in explicitly keeps both states testable without touching the environment.
type FeatureFlags struct {
	useSourceYachtImages bool
}

// NewFeatureFlags builds the flag set from configuration
func NewFeatureFlags(cfg config.FeaturesConfig) *FeatureFlags {
	return &FeatureFlags{
		useSourceYachtImages: cfg.UseSourceYachtImages,
	}
}

// UseSourceYachtImages reports whether source-provided image URLs may be used
func (f *FeatureFlags) UseSourceYachtImages() bool {
	return f.useSourceYachtImages
}
