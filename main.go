package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Pearson-Advance/configuration/aws/module"
)

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to log provider calls to stderr")
	flag.Parse()

	// stdout belongs to the engine's result channel; everything else goes
	// to stderr.
	logrus.SetOutput(os.Stderr)

	if debug || os.Getenv("ANSIBLE_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	params, err := module.ReadParams(flag.Args(), os.Stdin)

	if err != nil {
		module.WriteFailure(os.Stdout, err)
		os.Exit(1)
	}

	result, err := module.Run(context.Background(), params)

	if err != nil {
		module.WriteFailure(os.Stdout, err)
		os.Exit(1)
	}

	if err := module.WriteResult(os.Stdout, result); err != nil {
		logrus.Fatal(err.Error())
	}
}
