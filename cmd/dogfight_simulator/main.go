package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"runtime/debug"
	"strings"

	"dogfight_simulator/internal/game"
	"dogfight_simulator/internal/model"
	"dogfight_simulator/pkg/arguments"
	"dogfight_simulator/pkg/logger"
)

// usage :
// Displays the usage of the simulator. The descriptor dumps
// are expected in subdirectories of the data directory, one
// JSON document per file.
func usage() {
	fmt.Println("Usage:")
	fmt.Println("./dogfight_simulator -data=[dir] for the directory holding the descriptor dumps")
	fmt.Println("                     -config=[file] for configuration file to use (development/production)")
	fmt.Println("The data directory is expected to define the \"ships\", \"weapons\",")
	fmt.Println("\"shields\" and \"loadouts\" subdirectories.")
}

// loadDescriptors :
// Used to load all the descriptor documents found in the
// input directory. Each file is expected to hold a single
// JSON document. Files are visited in lexicographic order
// so that the content of the catalog does not depend on
// the file system.
//
// The `dir` defines the directory to scan.
//
// Returns the decoded descriptors along with any error.
func loadDescriptors(dir string) ([]model.Descriptor, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	descriptors := make([]model.Descriptor, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, err := ioutil.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		var descriptor model.Descriptor
		err = json.Unmarshal(raw, &descriptor)
		if err != nil {
			return nil, fmt.Errorf("could not decode \"%s\" (err: %v)", entry.Name(), err)
		}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

// main :
// Load the descriptor dumps, build the contestants and run
// every pairing of the batch.
func main() {
	// Define common flags.
	help := flag.Bool("h", false, "Print usage")
	conf := flag.String("config", "", "Configuration file to customize app behavior (development/production)")
	data := flag.String("data", "data", "Directory holding the descriptor dumps")

	// Parse flags.
	flag.Parse()

	// Check for help flag.
	if *help {
		usage()
		return
	}

	// Parse configuration if any.
	trueConf := ""
	if conf != nil {
		trueConf = *conf
	}
	metadata := arguments.Parse(trueConf)

	log := logger.NewStdLogger(metadata.InstanceID)

	// Handle last resort error handling to at least determine
	// what was the cause of the crash.
	defer func() {
		err := recover()
		if err != nil {
			stack := string(debug.Stack())
			log.Trace(logger.Fatal, "main", fmt.Sprintf("App crashed after error: %v (stack: %s)", err, stack))
		}

		log.Release()
	}()

	// Build the catalog from the descriptor dumps.
	catalog := model.NewCatalog(log)

	kinds := []struct {
		dir      string
		register func(model.Descriptor) error
	}{
		{"ships", catalog.RegisterShipDescriptor},
		{"weapons", catalog.RegisterWeaponDescriptor},
		{"shields", catalog.RegisterShieldDescriptor},
		{"loadouts", catalog.RegisterLoadoutDescriptor},
	}

	for _, kind := range kinds {
		descriptors, err := loadDescriptors(filepath.Join(*data, kind.dir))
		if err != nil {
			panic(fmt.Errorf("could not load \"%s\" descriptors (err: %v)", kind.dir, err))
		}

		for _, descriptor := range descriptors {
			err = kind.register(descriptor)
			if err != nil {
				panic(fmt.Errorf("could not ingest \"%s\" descriptor (err: %v)", kind.dir, err))
			}
		}

		log.Trace(logger.Info, "main", fmt.Sprintf("Ingested %d \"%s\" descriptor(s)", len(descriptors), kind.dir))
	}

	// Build one contestant per registered loadout.
	settings := metadata.Simulation

	sim := game.NewSimulation(
		game.SimulationConfig{
			Distance:          settings.Distance,
			MobilityBonus:     settings.MobilityBonus,
			MaxSimulationTime: settings.MaxSimulationTime,
			Estimation:        settings.Estimation,
		},
		log,
	)

	for _, loadout := range catalog.Loadouts() {
		contestant, err := game.NewContestant(loadout, catalog, settings.PilotTimeOnTarget, settings.TurretTimeOnTarget)
		if err != nil {
			panic(fmt.Errorf("could not build contestant from loadout \"%s\" (err: %v)", loadout.Identifier, err))
		}

		sim.AddContestant(contestant)
	}

	// Run every pairing of the batch.
	results, err := sim.SimulateAll()
	if err != nil {
		panic(fmt.Errorf("could not run the simulation batch (err: %v)", err))
	}

	for _, result := range results {
		log.Trace(logger.Info, "main", result.Summary())
	}
}
