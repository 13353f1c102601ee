package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"doublekey/logger"
)

type DictConfig struct {
	Capacity   int  `yaml:"Capacity"`   // 初始容量，0表示第一次插入时才分配
	Concurrent bool `yaml:"Concurrent"` // 是否使用读写锁包装

	Log logger.Settings `yaml:"Log"`

	ConfigFilePath string `yaml:"-"` // 配置文件绝对路径
}

var Config *DictConfig

func init() {
	Config = Default()
}

// Default 不存在配置文件时使用的默认配置
func Default() *DictConfig {
	return &DictConfig{
		Capacity:   0,
		Concurrent: true,
		Log: logger.Settings{
			Path:       "logs",
			Name:       "doublekey",
			Ext:        "log",
			TimeFormat: "2006-01-02",
			Level:      "INFO",
		},
	}
}

// Parse 从reader读取yaml配置，未出现的字段保留默认值
func Parse(reader io.Reader) (*DictConfig, error) {
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	config := Default()
	if err := yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, err
	}
	if config.Capacity < 0 {
		return nil, fmt.Errorf("config: Capacity must not be negative, got %d", config.Capacity)
	}
	if _, err := logger.ParseLevel(config.Log.Level); err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	return config, nil
}

func parseConfigFile(configFilePath string) (*DictConfig, error) {
	reader, err := os.Open(configFilePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return Parse(reader)
}

// SetupConfig 读取配置文件并替换全局配置
func SetupConfig(configFilePath string) error {
	config, err := parseConfigFile(configFilePath)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(configFilePath)
	if err != nil {
		return err
	}
	config.ConfigFilePath = absPath
	Config = config
	return nil
}
