package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	APIBaseURL         string
	APIToken           string
	CaptionTimeout     time.Duration
	TitleTimeout       time.Duration
	DescriptionTimeout time.Duration
	TagsTimeout        time.Duration
	ScoreTimeout       time.Duration
	BrandHashtag       string
	DefaultTags        []string
	DefaultSEOScore    float64
	FallbackTemplate   string
	Verbose            bool
	Quiet              bool
	MCPLogEnabled      bool

	// Fixed XDG paths (not configurable)
	ConfigDir      string
	DataDir        string
	CacheDir       string
	TranscriptsDir string
}

//go:embed config.toml fallback.tmpl
var defaultFS embed.FS

// ensureDefaultFile checks if a file exists in the specified directory
// and creates it from the embedded default if it doesn't exist
func ensureDefaultFile(configDir, embedFilename, description string) error {
	filePath := filepath.Join(configDir, embedFilename)

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile(embedFilename)
	if err != nil {
		return fmt.Errorf("reading embedded default %s: %w", description, err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default %s: %w", description, err)
	}

	fmt.Printf("Created default %s at %s\n", description, filePath)
	return nil
}

// EnsureDefaultConfig checks if a config file exists in the XDG config directory
// and creates it from the embedded default if it doesn't exist
func EnsureDefaultConfig(configDir string) error {
	return ensureDefaultFile(configDir, "config.toml", "configuration")
}

// EnsureDefaultFallbackTemplate checks if a fallback.tmpl file exists in the XDG
// config directory and creates it from the embedded default if it doesn't exist
func EnsureDefaultFallbackTemplate(configDir string) error {
	return ensureDefaultFile(configDir, "fallback.tmpl", "fallback description template")
}

// InitConfig initializes Viper and loads configuration
func InitConfig() *Config {
	// XDG standard directories
	configDir := filepath.Join(xdg.ConfigHome, "vidopt")
	dataDir := filepath.Join(xdg.DataHome, "vidopt")
	cacheDir := filepath.Join(xdg.CacheHome, "vidopt")

	// directory for the per-video transcript cache
	transcriptsDir := filepath.Join(dataDir, "transcripts")

	// Initialize viper
	v := viper.New()

	// Set default values for configurable settings
	v.SetDefault("api_base_url", "https://api.vidopt.app")
	v.SetDefault("caption_timeout", 15*time.Second)
	v.SetDefault("title_timeout", 45*time.Second)
	v.SetDefault("description_timeout", 2*time.Minute)
	v.SetDefault("tags_timeout", 45*time.Second)
	v.SetDefault("score_timeout", 30*time.Second)
	v.SetDefault("brand_hashtag", "#VidOpt")
	v.SetDefault("default_tags", []string{"youtube growth", "creator tips", "video seo"})
	v.SetDefault("default_seo_score", 50.0)
	v.SetDefault("fallback_template", "") // if empty will use default template
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("mcp_log_enabled", false)

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("VIDOPT")
	v.AutomaticEnv()

	// Special case for the API token - check both Viper and direct env var
	_ = v.BindEnv("api_token", "VIDOPT_API_TOKEN", "API_TOKEN")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	// Create config struct from viper
	config := &Config{
		// User configurable settings
		APIBaseURL:         v.GetString("api_base_url"),
		APIToken:           v.GetString("api_token"),
		CaptionTimeout:     v.GetDuration("caption_timeout"),
		TitleTimeout:       v.GetDuration("title_timeout"),
		DescriptionTimeout: v.GetDuration("description_timeout"),
		TagsTimeout:        v.GetDuration("tags_timeout"),
		ScoreTimeout:       v.GetDuration("score_timeout"),
		BrandHashtag:       v.GetString("brand_hashtag"),
		DefaultTags:        v.GetStringSlice("default_tags"),
		DefaultSEOScore:    v.GetFloat64("default_seo_score"),
		FallbackTemplate:   v.GetString("fallback_template"),
		Verbose:            v.GetBool("verbose"),
		Quiet:              v.GetBool("quiet"),
		MCPLogEnabled:      v.GetBool("mcp_log_enabled"),

		// Fixed XDG paths
		ConfigDir:      configDir,
		DataDir:        dataDir,
		CacheDir:       cacheDir,
		TranscriptsDir: transcriptsDir,
	}

	if config.Verbose {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}
