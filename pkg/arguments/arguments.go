package arguments

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// AppMetadata :
// Describes some properties used to identify the current instance of
// the application along with the parameters driving the simulations.
// Default values are suited for a local run but information will be
// retrieved from the configuration file to modify them.
//
// The `InstanceID` describes an identifier of the current instance
// of the simulator. Each instance has its own identifier which allows
// to distinguish several batches of simulations executed on the same
// machine. This value is generated at runtime and changes upon each
// restart of the application.
//
// The `Environment` is a string describing the configuration used to
// start this application. It usually refers to the name of the file
// containing the parameters to apply, which allows to quickly figure
// which set of values drove a batch of engagements.
// The default value is "unknown".
//
// The `Simulation` regroups the parameters applied to the combat
// engine itself.
type AppMetadata struct {
	InstanceID  string `json:"instance_id"`
	Environment string `json:"environment"`
	Simulation  SimulationSettings
}

// SimulationSettings :
// Regroups the parameters controlling the combat engine. All of them
// have defaults matching an estimation-grade engagement so providing
// a configuration file is optional.
//
// The `Distance` defines the engagement distance in meters separating
// the two contestants.
// The default value is 400.
//
// The `MobilityBonus` defines the multiplier applied to the circling
// time difference between the two ships when computing the mobility
// advantage of the attacker.
// The default value is 4.
//
// The `MaxSimulationTime` defines the number of ticks after which an
// engagement is interrupted even if the target still flies.
// The default value is 999.
//
// The `Estimation` defines whether the mobility scoring uses the
// estimated circling times of the ships or a flat value.
// The default value is `true`.
//
// The `PilotTimeOnTarget` defines the fraction of its theoretical
// damage a pilot-operated weapon actually lands.
// The default value is 0.75.
//
// The `TurretTimeOnTarget` fills a similar role for turret-operated
// weapons which benefit from a dedicated gunner.
// The default value is 0.95.
type SimulationSettings struct {
	Distance           float64
	MobilityBonus      float64
	MaxSimulationTime  int
	Estimation         bool
	PilotTimeOnTarget  float64
	TurretTimeOnTarget float64
}

// DefaultSimulationSettings :
// Used to build the set of simulation parameters applied when no
// configuration overrides them.
//
// Returns the default settings.
func DefaultSimulationSettings() SimulationSettings {
	return SimulationSettings{
		Distance:           400,
		MobilityBonus:      4,
		MaxSimulationTime:  999,
		Estimation:         true,
		PilotTimeOnTarget:  0.75,
		TurretTimeOnTarget: 0.95,
	}
}

// Parse :
// Used to parse the app arguments and produce the corresponding data.
// The arguments allow to gather information about the environment in
// which the application is executed along with the parameters to use
// for the simulations.
//
// The `configFile` is a string describing the optional configuration
// file provided by the runtime of the application. This is usually
// the name of the configuration file without the extension. An empty
// value keeps all the defaults.
//
// This function returns the built-in application's properties.
func Parse(configFile string) AppMetadata {
	// Assign the extra path to use to reach the configuration file.
	viper.SetEnvPrefix("ENV")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	// Put the configuration file in the config structure: name of
	// the config file (without extension).
	if len(configFile) > 0 {
		viper.SetConfigName(configFile)

		// Optionally look for config in the working directory and
		// in the common `data/config` directory.
		viper.AddConfigPath(".")
		viper.AddConfigPath("data/config")

		// Find and read the config file.
		err := viper.ReadInConfig()
		if err != nil {
			panic(fmt.Errorf("could not parse input configuration \"%s\" (err: %v)", configFile, err))
		}
	}

	// Create the default application properties.
	metadata := AppMetadata{
		InstanceID:  uuid.New().String(),
		Environment: "unknown",
		Simulation:  DefaultSimulationSettings(),
	}

	// Fetch values from the configuration produced by the runtime.
	if len(configFile) > 0 {
		metadata.Environment = configFile
	}
	if viper.IsSet("Simulation.Distance") {
		metadata.Simulation.Distance = viper.GetFloat64("Simulation.Distance")
	}
	if viper.IsSet("Simulation.MobilityBonus") {
		metadata.Simulation.MobilityBonus = viper.GetFloat64("Simulation.MobilityBonus")
	}
	if viper.IsSet("Simulation.MaxTime") {
		metadata.Simulation.MaxSimulationTime = viper.GetInt("Simulation.MaxTime")
	}
	if viper.IsSet("Simulation.Estimation") {
		metadata.Simulation.Estimation = viper.GetBool("Simulation.Estimation")
	}
	if viper.IsSet("Simulation.PilotTimeOnTarget") {
		metadata.Simulation.PilotTimeOnTarget = viper.GetFloat64("Simulation.PilotTimeOnTarget")
	}
	if viper.IsSet("Simulation.TurretTimeOnTarget") {
		metadata.Simulation.TurretTimeOnTarget = viper.GetFloat64("Simulation.TurretTimeOnTarget")
	}

	// Return the built-in configuration object.
	return metadata
}
