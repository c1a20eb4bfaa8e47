// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading and accessing
//              configuration data from TOML, YAML and native settings files
//              with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Native section format, struct decoding and saving;
//                      dropped watching and validation rules

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/lu/core/error"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/serialx"
	"github.com/msto63/lu/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatNative represents the [Section] key/value settings format
	FormatNative

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatNative:
		return "native"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as used on the command line
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "native", "conf", "ini":
		return FormatNative, nil
	case "auto", "":
		return FormatAuto, nil
	default:
		return FormatAuto, mdwerror.New(fmt.Sprintf("unknown config format: %s", name)).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("config.ParseFormat").
			WithDetail("format", name)
	}
}

// DetectFormat determines the configuration format from a file extension.
// Anything that is not TOML or YAML is read as a native settings file.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatNative
	}
}

// Config represents a loaded configuration with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	logger    *log.Logger
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for missing top-level keys
	Logger    *log.Logger            // Receives debug output; nil is silent
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	logger := log.OrDiscard(options.Logger).WithName("config")
	logger.Debug("loaded config", log.Fields{"path": filePath, "format": format.String(), "keys": len(data)})

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		logger:    logger,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format, logger: log.Discard()}, nil
}

// WithEnvPrefix returns a copy of the configuration that consults
// environment variables with the given prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: prefix,
		logger:    c.logger,
	}
}

// WithLogger returns a copy of the configuration that logs to logger
func (c *Config) WithLogger(logger *log.Logger) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		logger:    log.OrDiscard(logger).WithName("config"),
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	case FormatNative:
		sections, err := serialx.ReadSections(bytes.NewReader(content))
		if err != nil {
			return nil, mdwerror.Wrap(err, "settings parse error").
				WithOperation("config.parseContent")
		}
		for _, section := range sections {
			target := data
			if section.Name != "" {
				target = ensureMap(data, section.Name)
			}
			for _, e := range section.Entries {
				setPath(target, e.Key, e.Value)
			}
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// Get returns the raw value at a dot-separated key, or nil
func (c *Config) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a time.Duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if duration, err := time.ParseDuration(envValue); err == nil {
			return duration
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if duration, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return duration
		}
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setPath(c.data, key, value)
}

// Sections returns the top-level keys that hold tables, sorted
func (c *Config) Sections() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	for k, v := range c.data {
		if _, ok := v.(map[string]interface{}); ok {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// getValue retrieves a configuration value by dot-separated key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	rest := key
	for {
		segment, _ := stringx.AdvancePastOrInherit(&rest, '.', stringx.ScanRaw)
		value, ok := current[segment]
		if !ok {
			return nil
		}
		if rest == "" {
			return value
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
}

// getEnvValue retrieves the environment override for a configuration key
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(EnvKey(c.envPrefix, key))
}

// EnvKey converts a configuration key to its environment variable name:
// prefix LU and key server.wrapWidth give LU_SERVER_WRAP_WIDTH
func EnvKey(prefix, key string) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(strings.ToUpper(prefix))
		b.WriteByte('_')
	}

	var prev rune
	for i, r := range key {
		switch {
		case r == '.' || r == '-':
			b.WriteByte('_')
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
		prev = r
	}
	return b.String()
}

func ensureMap(data map[string]interface{}, key string) map[string]interface{} {
	if next, ok := data[key].(map[string]interface{}); ok {
		return next
	}
	next := make(map[string]interface{})
	data[key] = next
	return next
}

func setPath(data map[string]interface{}, key string, value interface{}) {
	current := data
	rest := key
	for {
		segment, _ := stringx.AdvancePastOrInherit(&rest, '.', stringx.ScanRaw)
		if rest == "" {
			current[segment] = value
			return
		}
		current = ensureMap(current, segment)
	}
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}
