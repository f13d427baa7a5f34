// Package loader resolves, loads and validates the bootstrap configuration
// and derives the service metadata consumed by logging and telemetry.
package loader

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	loginfra "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/logger"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ServiceMetadata holds the service identity attached to logs and metrics.
type ServiceMetadata struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
}

// Loader aggregates the strongly typed configuration pieces for downstream
// Wire injection.
type Loader struct {
	Bootstrap *conf.Bootstrap
	Service   ServiceMetadata
	LoggerCfg loginfra.Config
}

// BuildError carries the stage and path context of a configuration failure.
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

// Error implements the error interface.
func (e BuildError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e BuildError) Unwrap() error {
	return e.Err
}

// ParseConfPath registers and parses the -conf flag on the given flag set.
func ParseConfPath(fs *flag.FlagSet, args []string) (string, error) {
	var confPath string
	fs.StringVar(&confPath, "conf", "", "config path, eg: -conf configs")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return confPath, nil
}

// ResolveConfPath applies the fallback rules for the configuration path.
// Precedence: explicit flag value > CONF_PATH env var > default directory.
func ResolveConfPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfPath); env != "" {
		return env
	}
	return defaultConfPath
}

// LoadBootstrap loads the bootstrap configuration from confPath and derives
// the service metadata. name and version usually come from ldflags and may be
// empty. The returned cleanup releases the config watcher.
func LoadBootstrap(confPath, name, version string) (*Loader, func(), error) {
	resolved := ResolveConfPath(confPath)
	loadEnvFiles(resolved)

	c := config.New(config.WithSource(file.NewSource(resolved)))
	if err := c.Load(); err != nil {
		return nil, nil, BuildError{Stage: "load", Path: resolved, Err: err}
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		c.Close()
		return nil, nil, BuildError{Stage: "scan", Path: resolved, Err: err}
	}
	applyEnvOverrides(&bc)

	if err := validate(&bc); err != nil {
		c.Close()
		return nil, nil, BuildError{Stage: "validate", Path: resolved, Err: err}
	}

	meta := buildServiceMetadata(name, version)
	l := &Loader{
		Bootstrap: &bc,
		Service:   meta,
		LoggerCfg: loginfra.Config{
			Service: meta.Name,
			Version: meta.Version,
			HostID:  meta.InstanceID,
			Env:     meta.Environment,
		},
	}
	cleanup := func() {
		_ = c.Close()
	}
	return l, cleanup, nil
}

// loadEnvFiles loads dotenv files found next to the working directory or the
// configuration path. Missing files are not an error.
func loadEnvFiles(confPath string) {
	dirs := []string{".", filepath.Dir(confPath)}
	for _, dir := range dirs {
		for _, name := range envFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			_ = godotenv.Load(path)
		}
	}
}

var structValidator = validator.New()

// validate checks the scanned configuration for structural problems beyond
// what the YAML scanner can catch.
func validate(bc *conf.Bootstrap) error {
	if err := structValidator.Struct(bc); err != nil {
		return err
	}
	if t := bc.Server.HTTP.Timeout; t != "" {
		if _, err := time.ParseDuration(t); err != nil {
			return fmt.Errorf("server.http.timeout: %w", err)
		}
	}
	return nil
}

// applyEnvOverrides applies the 12-factor environment overrides onto the
// scanned configuration. PORT replaces the port part of the listen address
// and keeps the host, matching Cloud Run's dynamic port assignment.
func applyEnvOverrides(bc *conf.Bootstrap) {
	if bc == nil {
		return
	}
	if port := os.Getenv(envPort); port != "" {
		host, _, err := net.SplitHostPort(bc.Server.HTTP.Addr)
		if err != nil {
			host = ""
		}
		bc.Server.HTTP.Addr = net.JoinHostPort(host, port)
	}
}

// buildServiceMetadata derives the service identity from build-time values
// and environment variables.
func buildServiceMetadata(name, version string) ServiceMetadata {
	if env := os.Getenv(envServiceName); env != "" {
		name = env
	}
	if name == "" {
		name = defaultServiceName
	}
	if env := os.Getenv(envServiceVersion); env != "" {
		version = env
	}
	if version == "" {
		version = defaultServiceVersion
	}
	environment := os.Getenv(envAppEnv)
	if environment == "" {
		environment = defaultEnvironment
	}
	host, _ := os.Hostname()
	return ServiceMetadata{
		Name:        name,
		Version:     version,
		Environment: environment,
		InstanceID:  host,
	}
}
