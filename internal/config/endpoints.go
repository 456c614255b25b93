package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the optional endpoint profile file
const EnvConfigPath = "VOICEGEN_CONFIG"

// XTTSConfig describes the xtts-api-server deployment
type XTTSConfig struct {
	URL           string `yaml:"url"`
	SpeakersDir   string `yaml:"speakers_dir"`
	SpeakerSuffix string `yaml:"speaker_suffix"`
	OutputDir     string `yaml:"output_dir"`
	// TimeoutMS of 0 leaves the request unbounded. The server historically
	// gets no deadline here; set one explicitly if the share can hang.
	TimeoutMS int `yaml:"timeout_ms"`
}

// AllTalkConfig describes the AllTalk deployment
type AllTalkConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutMS   int    `yaml:"timeout_ms"`
	DownloadDir string `yaml:"download_dir"`
}

// Endpoints holds compiled-in service locations, optionally overridden
// by a YAML file and VOICEGEN_* environment variables.
type Endpoints struct {
	XTTS    XTTSConfig    `yaml:"xtts"`
	AllTalk AllTalkConfig `yaml:"alltalk"`
}

// Timeout returns the request timeout; zero means none
func (c XTTSConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Timeout returns the request timeout
func (c AllTalkConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// DefaultEndpoints returns the built-in service locations
func DefaultEndpoints() Endpoints {
	return Endpoints{
		XTTS: XTTSConfig{
			URL:           "http://10.1.1.200:8020/tts_to_file",
			SpeakersDir:   `\\DEBIAN-YAKOV\yakov\AI\xtts\speakers`,
			SpeakerSuffix: ".wav",
			OutputDir:     `\\DEBIAN-YAKOV\yakov\AI\xtts\output`,
			TimeoutMS:     0,
		},
		AllTalk: AllTalkConfig{
			BaseURL:   "http://127.0.0.1:7851",
			TimeoutMS: 30000,
		},
	}
}

// LoadEndpoints reads the profile at path (if any) over the defaults,
// then applies environment overrides and validates the result.
func LoadEndpoints(path string) (Endpoints, error) {
	cfg := DefaultEndpoints()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Endpoints) {
	overrideString(&cfg.XTTS.URL, "VOICEGEN_XTTS_URL")
	overrideString(&cfg.XTTS.SpeakersDir, "VOICEGEN_XTTS_SPEAKERS_DIR")
	overrideString(&cfg.XTTS.SpeakerSuffix, "VOICEGEN_XTTS_SPEAKER_SUFFIX")
	overrideString(&cfg.XTTS.OutputDir, "VOICEGEN_XTTS_OUTPUT_DIR")
	overrideInt(&cfg.XTTS.TimeoutMS, "VOICEGEN_XTTS_TIMEOUT_MS")
	overrideString(&cfg.AllTalk.BaseURL, "VOICEGEN_ALLTALK_BASE_URL")
	overrideInt(&cfg.AllTalk.TimeoutMS, "VOICEGEN_ALLTALK_TIMEOUT_MS")
	overrideString(&cfg.AllTalk.DownloadDir, "VOICEGEN_ALLTALK_DOWNLOAD_DIR")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Endpoints) error {
	if err := validateHTTPURL(cfg.XTTS.URL); err != nil {
		return fmt.Errorf("xtts.url: %w", err)
	}
	if err := validateHTTPURL(cfg.AllTalk.BaseURL); err != nil {
		return fmt.Errorf("alltalk.base_url: %w", err)
	}
	if cfg.XTTS.SpeakersDir == "" {
		return errors.New("xtts.speakers_dir must not be empty")
	}
	if cfg.XTTS.TimeoutMS < 0 || cfg.AllTalk.TimeoutMS < 0 {
		return errors.New("timeout_ms must not be negative")
	}
	return nil
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return errors.New("URL must include a host")
	}
	return nil
}
