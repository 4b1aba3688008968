package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/client/config"
	"bikeshare/utils"
)

const goodbyeMessage = "\nGoodbye!"

// InitLogger configures logrus with logLevel (e.g. warn, debug) and text output on stderr.
// An unknown level is returned as error and the logger is left untouched
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	clientConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading client config: %s", err)
	}

	if err := InitLogger(clientConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	signalChannel := utils.GetSignalChannel()
	client := NewClient(clientConfig, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- client.Run()
	}()

	select {
	case sig := <-signalChannel:
		log.Infof("[client][method: main] received signal %s, shutting down", sig)
		fmt.Println(goodbyeMessage)
	case err := <-done:
		if err != nil {
			log.Errorf("[client][method: main][status: ERROR] %s", err)
			os.Exit(1)
		}
		log.Debug("[client][method: main] Finish main.go")
	}
}
