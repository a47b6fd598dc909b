package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opencourt/courtcall/internal/courtcall/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := courtcall(); err != nil {
		logrus.Fatal(err)
	}
}

func courtcall() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
