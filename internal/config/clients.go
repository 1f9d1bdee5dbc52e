package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/construction-sites/crm/internal/usecase"
)

// LoadClients reads the static site directory the enquiry relay routes by.
// The file maps site id to client name, inbox and domain.
func LoadClients(path string) (map[string]usecase.SiteClient, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file %s: %w", path, err)
	}

	clients := make(map[string]usecase.SiteClient)
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("failed to parse clients file %s: %w", path, err)
	}
	return clients, nil
}
