package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoTable is returned when a command needs a table and none is known
var ErrNoTable = errors.New("no table selected: pass --table or run 'moonlight table new'")

// Config holds CLI configuration
type Config struct {
	ServerURL string
	TableID   string
	TableFile string
	Seat      int
	Output    string
	NoColor   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("MOONLIGHT_SERVER", "http://localhost:8080"),
		TableID:   os.Getenv("MOONLIGHT_TABLE"),
		TableFile: getEnvOrDefault("MOONLIGHT_TABLE_FILE", defaultTableFile()),
		Seat:      0,
		Output:    "text",
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

// LoadTable loads the remembered table ID if none was given
func (c *Config) LoadTable() error {
	if c.TableID != "" {
		return nil
	}

	data, err := os.ReadFile(c.TableFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Nothing remembered yet
		}
		return err
	}

	c.TableID = strings.TrimSpace(string(data))
	return nil
}

// SaveTable remembers id as the current table
func (c *Config) SaveTable(id string) error {
	c.TableID = id

	dir := filepath.Dir(c.TableFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TableFile, []byte(id), 0600)
}

// ForgetTable removes the remembered table if it is id
func (c *Config) ForgetTable(id string) error {
	data, err := os.ReadFile(c.TableFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if strings.TrimSpace(string(data)) != id {
		return nil
	}
	return os.Remove(c.TableFile)
}

// RequireTable returns the table to act on
func (c *Config) RequireTable() (string, error) {
	if c.TableID == "" {
		return "", ErrNoTable
	}
	return c.TableID, nil
}

func defaultTableFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moonlight/table"
	}
	return filepath.Join(home, ".moonlight", "table")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
