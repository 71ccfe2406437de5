package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetSceneFile returns the scene to load; empty means the built-in scene.
func (c *Config) GetSceneFile() string {
	sceneFile := c.config.GetString("SCENE_FILE")
	if len(sceneFile) == 0 {
		sceneFile = c.config.GetString("scene.file")
	}

	return sceneFile
}

func (c *Config) GetMoveStep() float64 {
	moveStep := c.config.GetFloat64("MOVE_STEP")
	if moveStep == 0 {
		moveStep = c.config.GetFloat64("player.move_step")
	}

	return moveStep
}

// GetRotateStep is the player's rotation per tick, in radians.
func (c *Config) GetRotateStep() float64 {
	rotateStep := c.config.GetFloat64("ROTATE_STEP")
	if rotateStep == 0 {
		rotateStep = c.config.GetFloat64("player.rotate_step")
	}

	return rotateStep
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetMTVLogInterval() time.Duration {
	intervalMillis := c.config.GetInt("MTV_LOG_INTERVAL_MS")
	if intervalMillis == 0 {
		intervalMillis = c.config.GetInt("log.mtv_interval_ms")
	}

	return time.Duration(intervalMillis) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 640)
	v.SetDefault("window.title", "sat2d")
	v.SetDefault("player.move_step", 2.0)
	v.SetDefault("player.rotate_step", 0.05)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.mtv_interval_ms", 500)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
