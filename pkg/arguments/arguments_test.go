package arguments

import "testing"

func TestDefaultSimulationSettings(t *testing.T) {
	settings := DefaultSimulationSettings()

	if settings.Distance != 400 {
		t.Errorf("distance %v, want 400", settings.Distance)
	}
	if settings.MobilityBonus != 4 {
		t.Errorf("mobility bonus %v, want 4", settings.MobilityBonus)
	}
	if settings.MaxSimulationTime != 999 {
		t.Errorf("max simulation time %d, want 999", settings.MaxSimulationTime)
	}
	if !settings.Estimation {
		t.Errorf("estimation disabled by default")
	}
	if settings.PilotTimeOnTarget != 0.75 || settings.TurretTimeOnTarget != 0.95 {
		t.Errorf("time on target %v/%v, want 0.75/0.95",
			settings.PilotTimeOnTarget, settings.TurretTimeOnTarget)
	}
}

func TestParseWithoutConfigFile(t *testing.T) {
	metadata := Parse("")

	if len(metadata.InstanceID) == 0 {
		t.Errorf("no instance identifier generated")
	}
	if metadata.Environment != "unknown" {
		t.Errorf("environment %q, want \"unknown\"", metadata.Environment)
	}
	if metadata.Simulation != DefaultSimulationSettings() {
		t.Errorf("settings %+v, want the defaults", metadata.Simulation)
	}
}
