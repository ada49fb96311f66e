package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        App        `mapstructure:"app"`
	Relevance  Relevance  `mapstructure:"relevance"`
	Classify   Classify   `mapstructure:"classify"`
	Clustering Clustering `mapstructure:"clustering"`
	Embedding  Embedding  `mapstructure:"embedding"`
	Summarize  Summarize  `mapstructure:"summarize"`
	Output     Output     `mapstructure:"output"`
}

// App holds general application configuration
type App struct {
	LogLevel string `mapstructure:"log_level"`
	InputDir string `mapstructure:"input_dir"`
}

// Relevance holds relevance-scoring configuration
type Relevance struct {
	// Threshold is the minimum auto score for an article to be kept.
	Threshold float64 `mapstructure:"threshold"`
}

// Classify holds category-classification configuration
type Classify struct {
	// MinConfidence gates articles out of the pipeline entirely when their
	// winning prototype similarity falls below it.
	MinConfidence float64 `mapstructure:"min_confidence"`
	// MaxMissingEmbeddings is the fraction of relevant articles allowed to
	// lack an embedding before the run aborts as a data-integrity failure.
	MaxMissingEmbeddings float64 `mapstructure:"max_missing_embeddings"`
}

// Clustering holds story-clustering configuration
type Clustering struct {
	// DuplicateThreshold is the minimum cosine similarity for two articles
	// to be considered for a merge.
	DuplicateThreshold float64 `mapstructure:"duplicate_threshold"`
	// BrandOverrideSimilarity is the similarity at which a one-sided brand
	// mention no longer vetoes a merge.
	BrandOverrideSimilarity float64 `mapstructure:"brand_override_similarity"`
	// StrayEvictionThreshold is the representative similarity below which a
	// member with no shared entities is evicted into its own story.
	StrayEvictionThreshold float64 `mapstructure:"stray_eviction_threshold"`
	// MaxParallelCategories bounds how many categories cluster concurrently.
	MaxParallelCategories int `mapstructure:"max_parallel_categories"`
}

// Embedding holds embedding-collaborator configuration
type Embedding struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
}

// Summarize holds the capability flag for the optional story summarizer
type Summarize struct {
	Enabled bool   `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// Output holds report output configuration
type Output struct {
	Path string `mapstructure:"path"`
}

// Load loads the configuration from .env, an optional config file, and the
// environment, then validates it. Threshold values outside [0,1] fail here
// rather than being silently clamped at runtime.
func Load(configFile string) (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".autonews")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns a configuration populated with the built-in defaults,
// bypassing viper. Useful for tests and embedding as a library.
func Default() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			InputDir: "input/articles",
		},
		Relevance: Relevance{
			Threshold: 0.25,
		},
		Classify: Classify{
			MinConfidence:        0.14,
			MaxMissingEmbeddings: 0.2,
		},
		Clustering: Clustering{
			DuplicateThreshold:      0.72,
			BrandOverrideSimilarity: 0.90,
			StrayEvictionThreshold:  0.78,
			MaxParallelCategories:   4,
		},
		Embedding: Embedding{
			Model:      "gemini-embedding-001",
			Dimensions: 384,
		},
		Summarize: Summarize{
			Enabled: false,
			Model:   "gemini-flash-lite-latest",
		},
		Output: Output{
			Path: "output/results.json",
		},
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	d := Default()

	viper.SetDefault("app.log_level", d.App.LogLevel)
	viper.SetDefault("app.input_dir", d.App.InputDir)

	viper.SetDefault("relevance.threshold", d.Relevance.Threshold)

	viper.SetDefault("classify.min_confidence", d.Classify.MinConfidence)
	viper.SetDefault("classify.max_missing_embeddings", d.Classify.MaxMissingEmbeddings)

	viper.SetDefault("clustering.duplicate_threshold", d.Clustering.DuplicateThreshold)
	viper.SetDefault("clustering.brand_override_similarity", d.Clustering.BrandOverrideSimilarity)
	viper.SetDefault("clustering.stray_eviction_threshold", d.Clustering.StrayEvictionThreshold)
	viper.SetDefault("clustering.max_parallel_categories", d.Clustering.MaxParallelCategories)

	viper.SetDefault("embedding.model", d.Embedding.Model)
	viper.SetDefault("embedding.dimensions", d.Embedding.Dimensions)

	viper.SetDefault("summarize.enabled", d.Summarize.Enabled)
	viper.SetDefault("summarize.model", d.Summarize.Model)

	viper.SetDefault("output.path", d.Output.Path)
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("embedding.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("relevance.threshold", []string{
		"AUTO_FILTER_THRESHOLD",
	})

	bindEnvKeys("classify.min_confidence", []string{
		"MIN_CATEGORY_CONFIDENCE",
	})

	bindEnvKeys("clustering.duplicate_threshold", []string{
		"SIMILARITY_THRESHOLD",
	})

	bindEnvKeys("app.input_dir", []string{
		"INPUT_FOLDER",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// Validate rejects configurations the pipeline cannot run with. All threshold
// values must lie in [0,1]; bounds are checked here once so the stages never
// have to defend against nonsense configuration.
func Validate(c *Config) error {
	thresholds := []struct {
		key   string
		value float64
	}{
		{"relevance.threshold", c.Relevance.Threshold},
		{"classify.min_confidence", c.Classify.MinConfidence},
		{"classify.max_missing_embeddings", c.Classify.MaxMissingEmbeddings},
		{"clustering.duplicate_threshold", c.Clustering.DuplicateThreshold},
		{"clustering.brand_override_similarity", c.Clustering.BrandOverrideSimilarity},
		{"clustering.stray_eviction_threshold", c.Clustering.StrayEvictionThreshold},
	}

	for _, t := range thresholds {
		if t.value < 0 || t.value > 1 {
			return fmt.Errorf("invalid configuration: %s = %v, must be in [0,1]", t.key, t.value)
		}
	}

	if c.Clustering.MaxParallelCategories < 1 {
		return fmt.Errorf("invalid configuration: clustering.max_parallel_categories = %d, must be >= 1", c.Clustering.MaxParallelCategories)
	}

	if c.Embedding.Dimensions < 1 {
		return fmt.Errorf("invalid configuration: embedding.dimensions = %d, must be >= 1", c.Embedding.Dimensions)
	}

	return nil
}
