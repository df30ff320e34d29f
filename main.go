package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/config"
	"github.com/inkmath/inkmath/log"
	"github.com/inkmath/inkmath/shell"
	"github.com/inkmath/inkmath/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	servePort := flag.String("serve", "", "run the HTTP API on the given port instead of the shell")
	trace := flag.Bool("trace", false, "enable trace logging")
	configFile := flag.String("config", "", "configuration file, defaults to the user config dir")
	modelFile := flag.String("model", "", "digit model file, overrides the configuration")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	if *trace {
		log.EnableTracing()
	}

	var cfg config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.LoadFrom(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Warning.Printf("failed to load configuration: %v", err)
	}
	if *modelFile != "" {
		cfg.ModelPath = *modelFile
	}

	classifier := buildClassifier(cfg)

	if *servePort != "" {
		runServerMode(*servePort, cfg, classifier)
		return
	}

	if err := shell.Run(&cfg, classifier, flag.Args()); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}

// buildClassifier picks the classifier from the configuration: the remote
// service when an endpoint is set, otherwise the local model file if one
// exists. Without either, recognition runs on heuristics alone.
func buildClassifier(cfg config.Config) classify.Classifier {
	if cfg.RemoteURL != "" {
		return classify.NewRemote(cfg.RemoteURL, cfg.RemoteKey, cfg.RemoteHMAC)
	}

	name, err := cfg.ModelFile()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil
	}

	model, err := classify.LoadModel(name)
	if err != nil {
		log.Warning.Printf("failed to load model %s: %v", name, err)
		return nil
	}
	log.Trace.Printf("loaded model from %s", name)
	return model
}
