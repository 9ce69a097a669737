package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// configuration :
// Provides a way to configure the way logs are displayed both in
// terms of level and in terms of the application executing the
// logger. This logger uses a display to the standard output as a
// logging strategy with some coloring based on the severity of
// the logs to display. The logger is initialized with a default
// configuration but information are retrieved from the runtime
// configuration file to modify it.
//
// The `AppName` describes a string for the name of the application
// using the logger.
// The default value is "dogfight_simulator".
//
// The `Level` is a string representing the minimum level of a log
// message in order for it to be displayed. Basically it allows to
// filter verbose messages (typically the per-engagement traces of
// the combat engine) from environments where only the outcome of
// the simulations matters.
// The default value is "info".
//
// The `Buffer` allows to specify the size of the buffer used to
// accumulate log messages. The logger does not directly output
// messages to the standard output but stores them in an internal
// channel with a predefined size so that posting a log is almost
// instantaneous for the caller. A batch of simulations can produce
// bursts of traces which are absorbed by this buffer.
// The default value is 500.
type configuration struct {
	AppName string
	Level   string
	Buffer  int
}

// traceMessage :
// Describes a message to be enqueued by the logger. It contains
// all the needed information to be displayed such as its severity,
// the module that produced it and its content.
//
// The `level` value represents the actual importance of the log
// message.
//
// The `module` describes which part of the application produced
// the message (typically "simulation" or "catalog"). It helps
// grouping related messages when analyzing the output of a batch
// of engagements.
//
// The `content` represents the content of the message and is
// dumped as is during the logging process.
type traceMessage struct {
	level   Severity
	module  string
	content string
}

// StdLogger :
// Describes the logger structure used to perform logging to the
// standard output. Messages received as go structures are placed
// in an internal buffer and dumped by a dedicated routine so that
// the caller is not blocked while the underlying display system
// is performing the log.
//
// The `config` allows to retrieve information about the settings
// to apply to input log messages before displaying them.
//
// The `instanceID` represents the name of the instance of the
// application running the logger. It is updated each time the
// application restarts which allows to distinguish among several
// batches of simulations executed on a single machine.
//
// The `level` defines the minimum severity for a message to be
// displayed, as parsed from the configuration.
//
// The `logChannel` is used to receive the trace messages before
// sending them to the logging device.
//
// The `endChannel` allows to terminate the active loop which
// transmits log messages from the `logChannel` to the logging
// device.
//
// The `closed` value indicates whether the logger has been
// terminated or not. One can access this value after locking the
// `locker` attribute to determine whether it is safe to post
// messages in the `logChannel`.
//
// The `locker` allows to protect the `closed` boolean from
// concurrent accesses.
//
// The `waiter` allows to wait for the proper termination of the
// logging routine in order to allow the display of the last
// posted log messages.
type StdLogger struct {
	config     configuration
	instanceID string
	level      Severity
	logChannel chan traceMessage
	endChannel chan bool
	closed     bool
	locker     sync.Mutex
	waiter     sync.WaitGroup
}

// parseConfiguration :
// Used to retrieve the parameters to apply to the logger from the
// configuration file. A default configuration is provided to work
// in most cases but one can modify some settings at runtime.
//
// Returns the arguments parsed from the configuration file.
func parseConfiguration() configuration {
	// Provide a default configuration.
	config := configuration{
		AppName: "dogfight_simulator",
		Level:   "info",
		Buffer:  500,
	}

	// Parse the description file if any.
	if viper.IsSet("Logger.Name") {
		config.AppName = viper.GetString("Logger.Name")
	}
	if viper.IsSet("Logger.Level") {
		config.Level = viper.GetString("Logger.Level")
	}
	if viper.IsSet("Logger.Buffer") {
		config.Buffer = viper.GetInt("Logger.Buffer")
	}

	return config
}

// NewStdLogger :
// Used to create a new logger with the specified instance name.
// The created logger will parse the configuration file provided
// by the environment and adapt its configuration right away.
//
// The `instanceID` string might be empty in case no instance ID
// is provided by the runtime, in which case a "local" value is
// used so that the logs stay readable.
//
// The return value represents the produced logger.
func NewStdLogger(instanceID string) *StdLogger {
	// Retrieve the configuration.
	config := parseConfiguration()

	// Create the logger.
	log := StdLogger{
		config:     config,
		instanceID: instanceID,
		level:      SeverityFromString(config.Level),
		logChannel: make(chan traceMessage, config.Buffer),
		endChannel: make(chan bool),
	}

	// Update the instance ID in case no value is provided.
	if len(log.instanceID) == 0 {
		log.instanceID = "local"
	}

	// Start logging.
	log.waiter.Add(1)
	go log.performLogging()

	return &log
}

// Release :
// Used to perform the stopping of the active loop meant to handle
// logging to the underlying device. It will block until the method
// actually does return to make sure that the last logs posted will
// be dumped.
func (log *StdLogger) Release() {
	// Request the termination of the active loop.
	log.endChannel <- false

	// Close the log channel.
	log.locker.Lock()
	log.closed = true
	close(log.logChannel)
	log.locker.Unlock()

	// Wait for the routine termination.
	log.waiter.Wait()
}

// Trace :
// Used to perform the log of the input message with the specified
// level. The log message is not directly transmitted to the logging
// device but instead placed in the internal buffer of trace messages
// so that it can be processed by the active logger loop.
// Note that this function does not block the caller as long as the
// internal buffer is not full.
//
// The `level` describes the severity of the message to log.
//
// The `module` describes the part of the application that produced
// the message.
//
// The `message` describes the content of the message to log.
func (log *StdLogger) Trace(level Severity, module string, message string) {
	// Discard messages below the configured level.
	if level < log.level {
		return
	}

	trace := traceMessage{
		level:   level,
		module:  module,
		content: message,
	}

	// Enqueue the trace to the internal channel if it is not
	// closed yet.
	log.locker.Lock()
	defer log.locker.Unlock()
	if !log.closed {
		log.logChannel <- trace
	}
}

// performLogging :
// Used to perform logging. This method is meant to be launched as
// a go routine and will regularly poll the internal trace channel
// to perform logging.
func (log *StdLogger) performLogging() {
	// Until we request stop, we must continue logging.
	keepLogging := true

	for keepLogging {
		select {
		case keepLogging = <-log.endChannel:
			// The end channel has been activated, terminate
			// the logging process.
		case trace := <-log.logChannel:
			// A new trace is available, log it.
			log.performSingleLog(trace)
		}
	}

	// Iterate over the remaining messages of the log channel.
	for trace := range log.logChannel {
		log.performSingleLog(trace)
	}

	// Set the routine as done.
	log.waiter.Done()
}

// performSingleLog :
// Used to perform a single log for the input trace. This method is
// called from the active logging loop and performs the conversion
// of the input message into something that can be displayed by the
// associated logging device.
//
// The `trace` describes the message to log.
func (log *StdLogger) performSingleLog(trace traceMessage) {
	// Format the log to the standard output by providing some
	// information about the message to log and the instance
	// producing it.
	out := FormatWithBrackets(log.config.AppName, Magenta)
	out += " " + FormatWithBrackets(log.instanceID, Magenta)
	out += " " + FormatWithNoBrackets(time.Now().Format("2006-01-02 15:04:05"), Magenta)
	out += " " + FormatWithNoBrackets(trace.level.String(), trace.level.color())
	out += " " + FormatWithBrackets(trace.module, Blue)
	out += " " + trace.content

	fmt.Println(out)
}
