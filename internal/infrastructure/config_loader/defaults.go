package loader

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// envConfPath is the env var name that overrides configuration directory when flag is absent.
	envConfPath = "CONF_PATH"
	// envServiceName overrides the compiled-in service name.
	envServiceName = "SERVICE_NAME"
	// envServiceVersion overrides the compiled-in service version.
	envServiceVersion = "SERVICE_VERSION"
	// envAppEnv selects the deployment environment label.
	envAppEnv = "APP_ENV"
	// envPort overrides the port part of the HTTP listen address (Cloud Run $PORT).
	envPort = "PORT"

	// defaultServiceName is used when neither ldflags nor SERVICE_NAME provide a name.
	defaultServiceName = "greeting"
	// defaultServiceVersion is used when no version was linked in.
	defaultServiceVersion = "dev"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
)

// envFileNames are dotenv files loaded, in order, before the environment is read.
var envFileNames = []string{".env.local", ".env"}
