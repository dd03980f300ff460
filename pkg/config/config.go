package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host       string `json:"host"`       // The domain name of the server.
	ServerAddr string `json:"serverAddr"` // The address the server endpoint binds to.

	Auth struct {
		AccessTokenSecret     string `json:"accessTokenSecret"`
		AccessTokenExpiryHour int    `json:"accessTokenExpiryHour"`
		// Dashboard staff credentials. Session management proper lives with the
		// identity provider; this only gates the admin routes.
		AdminUser     string `json:"adminUser"`
		AdminPassword string `json:"adminPassword"`
	} `json:"auth"`

	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
	} `json:"postgres"`

	// Object storage for progress photos.
	ObjectStorage struct {
		Endpoint  string `json:"endpoint"`
		AccessKey string `json:"accessKey"`
		SecretKey string `json:"secretKey"`
		Bucket    string `json:"bucket"`
		UseSSL    bool   `json:"useSSL"`
		// PublicBase is the base URL photo references are built from. Buckets are
		// world-readable; no signed URLs.
		PublicBase string `json:"publicBase"`
	} `json:"objectStorage"`

	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		From     string `json:"from"`
		// Notify is the fixed recipient for meeting notifications.
		Notify string `json:"notify"`
	} `json:"smtp"`

	// Cron spec for the daily meeting reminder sweep.
	MeetingReminderSpec string `json:"meetingReminderSpec"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode it reads
// ./etc/debug-config.yaml (overridable via PULSE_DEBUG_CONFIG_PATH), otherwise
// the config.yaml mounted from the deployment ConfigMap.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("PULSE_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("PULSE_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}
	klog.Info("config path: ", configPath)

	if err := readConfig(configPath, config); err != nil {
		klog.Error("init config", err)
		panic(err)
	}
	return config
}

func readConfig(path string, into *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, into)
}
