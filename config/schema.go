package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the configuration schema.
const SchemaID = "https://github.com/randalmurphal/pagekit/config.schema.json"

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&Config{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "pagekit site configuration"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
