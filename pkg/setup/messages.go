package setup

// User-facing progress messages
const (
	MsgWelcome           = "🚀 Welcome to Vite React Starter Setup!"
	MsgInstallingAll     = "Installing all optional features..."
	MsgInteractiveIntro  = "This script will help you configure optional features for your project."
	MsgNothingSelected   = "No additional features selected. Your project is ready to use!"
	MsgApplying          = "📦 Installing selected features..."
	MsgConfiguring       = "Configuring %s..."
	MsgAddingDevDeps     = "Adding dev dependencies"
	MsgAddingDeps        = "Adding dependencies"
	MsgAddingScripts     = "Adding scripts"
	MsgManifestUpdated   = "Updated %s"
	MsgInstalling        = "📥 Installing dependencies..."
	MsgInstallOK         = "Dependencies installed successfully!"
	MsgInstallFailed     = "Failed to install dependencies. Please run %s install manually."
	MsgInstallDisabled   = "Skipping dependency installation. Install them later with: %s"
	MsgNoManifestForInit = "No %s found. Add these dependencies yourself: %s"
)
