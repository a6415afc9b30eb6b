// Package achievement contains the gamification engine tests.
package achievement

import "testing"

func TestDefinitions_CatalogIsConsistent(t *testing.T) {
	defs := Definitions()
	if len(defs) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.ID == "" || def.Title == "" || def.Description == "" {
			t.Errorf("definition %q is missing presentation fields", def.ID)
		}
		if _, dup := seen[def.ID]; dup {
			t.Errorf("duplicate definition id %q", def.ID)
		}
		seen[def.ID] = struct{}{}

		_, hasRule := progressRules[def.ID]
		_, isTelemetry := telemetryDefinitions[def.ID]
		if !hasRule && !isTelemetry {
			t.Errorf("definition %q has neither a progress rule nor a telemetry driver", def.ID)
		}
		if hasRule && isTelemetry {
			t.Errorf("definition %q cannot be both derived and telemetry-driven", def.ID)
		}
	}

	for id := range progressRules {
		if _, ok := definitionByID(id); !ok {
			t.Errorf("progress rule %q has no catalog entry", id)
		}
	}
	for id := range telemetryDefinitions {
		if _, ok := definitionByID(id); !ok {
			t.Errorf("telemetry driver %q has no catalog entry", id)
		}
	}
}
