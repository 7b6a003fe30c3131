package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config stores repository-local settings: named remotes and an
// optional committer identity, read from .git/config.
type Config struct {
	Remote map[string]RemoteConfig `toml:"remote"`
	User   UserConfig              `toml:"user"`
}

// RemoteConfig holds a single named remote's URL.
type RemoteConfig struct {
	URL string `toml:"url"`
}

// UserConfig holds an optional committer identity. It is stored and
// loaded with the rest of the config; commit-tree does not read it, and
// the commits it writes carry no author or committer line.
type UserConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

func (r *Repo) configPath() string {
	return filepath.Join(r.GitDir, "config")
}

// ReadConfig reads .git/config. A missing file returns an empty config.
func (r *Repo) ReadConfig() (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(r.configPath(), &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Remote: make(map[string]RemoteConfig)}, nil
		}
		return nil, wrapIO("config.read", err)
	}
	if cfg.Remote == nil {
		cfg.Remote = make(map[string]RemoteConfig)
	}
	return &cfg, nil
}

// WriteConfig atomically writes .git/config via temp file and rename.
func (r *Repo) WriteConfig(cfg *Config) error {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Remote == nil {
		cfg.Remote = make(map[string]RemoteConfig)
	}

	tmp, err := os.CreateTemp(r.GitDir, ".config-tmp-*")
	if err != nil {
		return wrapIO("config.write", err)
	}
	tmpName := tmp.Name()

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return wrapIO("config.write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return wrapIO("config.write", err)
	}
	if err := os.Rename(tmpName, r.configPath()); err != nil {
		os.Remove(tmpName)
		return wrapIO("config.write", err)
	}
	return nil
}

// SetRemote stores or updates a named remote's URL.
func (r *Repo) SetRemote(name, remoteURL string) error {
	name = strings.TrimSpace(name)
	remoteURL = strings.TrimSpace(remoteURL)
	if name == "" || remoteURL == "" {
		return wrapIO("config.set_remote", fmt.Errorf("remote name and URL are required"))
	}
	cfg, err := r.ReadConfig()
	if err != nil {
		return err
	}
	cfg.Remote[name] = RemoteConfig{URL: remoteURL}
	return r.WriteConfig(cfg)
}

// RemoteURL returns the configured URL for the given remote name.
func (r *Repo) RemoteURL(name string) (string, error) {
	cfg, err := r.ReadConfig()
	if err != nil {
		return "", err
	}
	rc, ok := cfg.Remote[name]
	if !ok || strings.TrimSpace(rc.URL) == "" {
		return "", wrapNotFound("config.remote_url", fmt.Errorf("remote %q is not configured", name))
	}
	return rc.URL, nil
}
