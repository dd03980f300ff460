package helper

import (
	"os"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/bilaad-labs/estate-pulse/dao/orm"
	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/handler"
	"github.com/bilaad-labs/estate-pulse/pkg/config"
	"github.com/bilaad-labs/estate-pulse/pkg/notify"
	"github.com/bilaad-labs/estate-pulse/pkg/objectstore"
)

// ConfigInitializer wires configuration and shared dependencies at startup.
type ConfigInitializer struct {
	backendConfig *config.Config
}

func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment loads a local .env in debug mode so developers can run
// against their own services without touching the deployed config.
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if !config.IsDebugMode() {
		return nil
	}
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// InitializeRegisterConfig opens the database, runs migrations and builds the
// dependency set handed to every handler manager.
func (ci *ConfigInitializer) InitializeRegisterConfig() (*handler.RegisterConfig, error) {
	db := orm.GetDB()
	if err := orm.Migrate(db); err != nil {
		return nil, err
	}
	klog.Info("database migrations applied")

	objClient, err := objectstore.NewClient()
	if err != nil {
		return nil, err
	}

	return &handler.RegisterConfig{
		Store:       store.NewService(db),
		Notifier:    notify.NewSMTPNotifier(),
		ObjectStore: objClient,
	}, nil
}
