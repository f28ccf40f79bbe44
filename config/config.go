// Package config manages bender project configuration.
//
// Configuration is resolved by Viper from, in precedence order: environment
// variables (BENDER_ prefix), a project bender.toml discovered by walking up
// the directory tree, and built-in defaults. CLI flags override all of these
// at the command layer.
package config

import (
	"github.com/spf13/viper"
)

// Config is the resolved bender configuration
type Config struct {
	// Schema is the path to the normalized schema document
	Schema string `mapstructure:"schema"`

	// Output is the destination file for generated declarations;
	// empty means stdout
	Output string `mapstructure:"output"`

	Generator GeneratorConfig `mapstructure:"generator"`
}

// GeneratorConfig carries declaration formatting options
type GeneratorConfig struct {
	// Attribute is prepended verbatim before struct/enum/union declarations
	Attribute string `mapstructure:"attribute"`

	// TypeMapping overrides target-language spellings per abstract name
	TypeMapping map[string]string `mapstructure:"type_mapping"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema", "types.yaml")
	v.SetDefault("output", "") // stdout
	v.SetDefault("generator.attribute", "")
	v.SetDefault("generator.type_mapping", map[string]string{})
}
