// flatdb is a small relational engine that keeps each table as a flat text
// file and executes a SQL-like command script against a directory of
// databases.
//
//	flatdb -data Databases < script.sql
//	flatdb -script script.sql -log-level debug -log-file logs/flatdb.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"flatdb/catalog"
	"flatdb/database"
	"flatdb/dberror"
	"flatdb/executor"
	"flatdb/logging"
	"flatdb/parser"
)

type Configuration struct {
	DataDir    string
	ScriptFile string
	LogLevel   string
	LogFormat  string
	LogFile    string
	FoldNames  bool
}

func main() {
	config := parseArguments()

	if err := initializeLogging(config); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	code := run(config, os.Stdin, os.Stdout)
	logging.Close()
	os.Exit(code)
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DataDir, "data", "Databases", "Root directory holding one directory per database")
	flag.StringVar(&config.ScriptFile, "script", "", "Command file to execute (default stdin)")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	flag.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")
	flag.BoolVar(&config.FoldNames, "fold-names", false, "Resolve table names case-insensitively for every command")

	flag.Parse()

	return config
}

func initializeLogging(config Configuration) error {
	return logging.Init(logging.Config{
		Level:      logging.Level(config.LogLevel),
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	})
}

// run executes one session and returns the process exit code. Only storage
// failures make it non-zero; a malformed command ends the session normally.
func run(config Configuration, stdin io.Reader, stdout io.Writer) int {
	in := stdin
	if config.ScriptFile != "" {
		f, err := os.Open(config.ScriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	cat, err := catalog.New(config.DataDir, database.Options{FoldMutationNames: config.FoldNames})
	if err != nil {
		fmt.Fprintf(os.Stderr, "open data directory: %v\n", err)
		return 1
	}

	session := executor.NewSession(cat, stdout)
	if err := session.Run(parser.NewStream(in)); err != nil {
		if dberror.CategoryOf(err) == dberror.CategorySystem {
			fmt.Fprintf(os.Stderr, "flatdb: %v\n", err)
			return 1
		}
	}
	return 0
}
