package main

import (
	"k8s.io/klog/v2"

	"github.com/bilaad-labs/estate-pulse/cmd/estate-pulse/helper"
)

// @title						Estate Pulse API
// @version						1.0.0
// @description					Backend for the Estate Pulse project-management dashboard: construction projects, their units, exports and meeting scheduling.
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description					Obtain a token from /login and pass it as 'Bearer ${TOKEN}'
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig()
	if err != nil {
		klog.Fatalf("Failed to register config: %s\n", err)
	}

	serverRunner := helper.NewServerRunner(backendConfig)

	// Daily meeting reminders
	reminder := serverRunner.StartReminder(registerConfig)
	defer reminder.Stop()

	// Start HTTP server
	serverRunner.StartServer(registerConfig)
}
