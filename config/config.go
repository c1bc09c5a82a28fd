package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// BackendConfig describes the remote product endpoint.
type BackendConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds
	// RefreshInterval controls the periodic store re-sync, in seconds.
	// Zero disables the refresh job.
	RefreshInterval int `yaml:"refresh_interval" json:"refresh_interval"`
}

// UploadsConfig describes the remote file upload service.
type UploadsConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds
}

// SiteConfig points at the yaml document holding branding, footer and
// technology-catalog content.
type SiteConfig struct {
	ContentFile string `yaml:"content_file" json:"content_file"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Backend BackendConfig `yaml:"backend" json:"backend"`
	Uploads UploadsConfig `yaml:"uploads" json:"uploads"`
	Site    SiteConfig    `yaml:"site" json:"site"`
	Logger  LoggerConfig  `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "nmtweb",
		Location: "Asia/Kolkata",
		Workdir:  "/var/nmtweb",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Backend: BackendConfig{
		BaseURL:         "http://127.0.0.1:5000/api/v1",
		Timeout:         30,
		RefreshInterval: 300,
	},
	Uploads: UploadsConfig{
		BaseURL: "http://127.0.0.1:5000/api/v1/storage",
		Timeout: 60,
	},
	Site: SiteConfig{
		ContentFile: "/var/nmtweb/site.yml",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/nmtweb/nmtweb.log",
	},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

// LoadConfig loads the application configuration from the given yaml
// file, falling back to defaults and applying NMTWEB_ environment
// overrides last.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "nmtweb.yml"
	}
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if _, err := os.Stat(cfile); err == nil {
		data, err := os.ReadFile(cfile)
		if err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("NMTWEB_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("NMTWEB_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("NMTWEB_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("NMTWEB_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("NMTWEB_WEB_PORT", &cfg.Web.Port)

	setEnvValue("NMTWEB_BACKEND_BASEURL", &cfg.Backend.BaseURL)
	setEnvIntValue("NMTWEB_BACKEND_TIMEOUT", &cfg.Backend.Timeout)
	setEnvIntValue("NMTWEB_BACKEND_REFRESH_INTERVAL", &cfg.Backend.RefreshInterval)

	setEnvValue("NMTWEB_UPLOADS_BASEURL", &cfg.Uploads.BaseURL)
	setEnvIntValue("NMTWEB_UPLOADS_TIMEOUT", &cfg.Uploads.Timeout)

	setEnvValue("NMTWEB_SITE_CONTENT_FILE", &cfg.Site.ContentFile)

	setEnvValue("NMTWEB_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("NMTWEB_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("NMTWEB_LOGGER_FILENAME", &cfg.Logger.Filename)

	return cfg
}

// InitDirs ensures the working directory layout exists.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(c.System.Workdir, 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0o755)
}
