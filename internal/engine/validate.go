package engine

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema constrains the config file shape and ranges. Cross-field
// rules live in Config.Validate.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "mastery": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "decay_base": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
        "slow_factor": {"type": "number", "minimum": 1},
        "slow_credit": {"type": "number", "minimum": 0, "maximum": 1},
        "needs_review_threshold": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "schedule": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "strong_threshold": {"type": "number", "minimum": 0, "maximum": 1},
        "partial_threshold": {"type": "number", "minimum": 0, "maximum": 1},
        "strong_multiplier": {"type": "number", "exclusiveMinimum": 1},
        "partial_multiplier": {"type": "number", "exclusiveMinimum": 1},
        "weak_multiplier": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
        "initial_days": {"type": "integer", "minimum": 1},
        "max_days": {"type": "integer", "minimum": 1}
      }
    },
    "trigger": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "period": {"type": "integer", "minimum": 1},
        "weak_threshold": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "regen": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "queue_size": {"type": "integer", "minimum": 1},
        "timeout_secs": {"type": "integer", "minimum": 1}
      }
    },
    "store_timeout_secs": {"type": "integer", "minimum": 1}
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateConfig validates raw config JSON against the embedded schema.
func validateConfig(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid config JSON: %w", err)
	}

	compileOnce.Do(func() {
		var def any
		if compileErr = json.Unmarshal([]byte(configSchema), &def); compileErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource("schema://engine-config.json", def); compileErr != nil {
			return
		}
		compiledSchema, compileErr = c.Compile("schema://engine-config.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile config schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
