package sources

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/model"
)

const unreadableMarker = "(unreadable)"

// ServicesFromEnv parses the services variable as JSON. A nil result means the
// variable is unset, a marker means it was set but not valid JSON.
func (c Config) ServicesFromEnv() model.JSON {
	return loadJSONEnv(c.ServicesVar)
}

func (c Config) ApplicationFromEnv() model.JSON {
	return loadJSONEnv(c.ApplicationVar)
}

func loadJSONEnv(name string) model.JSON {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	var parsed model.JSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.WithFields(log.Fields{"var": name, "err": err}).Debug("failed to parse env var as JSON")
		return model.Errorf("Invalid JSON in %s", name)
	}
	return parsed
}

// ServicesFromFile reads the services JSON from the path named by the file
// variable. Unset variable means nil, a missing file or bad JSON becomes a
// marker with a message distinguishing the two.
func (c Config) ServicesFromFile() model.JSON {
	path := os.Getenv(c.ServicesFileVar)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Errorf("File not found: %s", path)
		}
		return model.Errorf("Invalid JSON in file: %s", path)
	}
	var parsed model.JSON
	if err = json.Unmarshal(data, &parsed); err != nil {
		log.WithFields(log.Fields{"path": path, "err": err}).Debug("failed to parse services file")
		return model.Errorf("Invalid JSON in file: %s", path)
	}
	return parsed
}

// DirectoryBindings walks BindingRoot, one record per subdirectory, one data
// entry per file. A missing root is a normal deployment state and yields an
// empty list. Subdirectories come back from ReadDir in lexicographic order.
func (c Config) DirectoryBindings() []model.DirectoryBinding {
	bindings := make([]model.DirectoryBinding, 0)
	entries, err := os.ReadDir(c.BindingRoot)
	if err != nil {
		return bindings
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(c.BindingRoot, entry.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			log.WithFields(log.Fields{"dir": dir, "err": err}).Debug("skipping unreadable binding directory")
			continue
		}
		record := model.DirectoryBinding{BindingName: entry.Name(), Data: model.JSON{}}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			value, readable := readBindingFile(filepath.Join(dir, f.Name()))
			if readable && f.Name() == "binding-guid" {
				record.BindingGuid = value
			}
			// the binding-guid file also stays in the data map
			record.Data[f.Name()] = value
		}
		bindings = append(bindings, record)
	}
	return bindings
}

// readBindingFile returns the file contents as trimmed UTF-8 text, or a hex
// string when the bytes don't decode. Read failures degrade to a marker value
// instead of aborting the directory scan.
func readBindingFile(path string) (value string, readable bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return unreadableMarker, false
	}
	if utf8.Valid(content) {
		return strings.TrimSpace(string(content)), true
	}
	return hex.EncodeToString(content), true
}
