package main

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(level)
	return nil
}

func main() {
	if err := InitLogger("info"); err != nil {
		log.Fatalf("%s", err)
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err)
	}

	if err = InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	cityCatalog, err := catalog.New(explorerConfig.DataDir, explorerConfig.CatalogEntries()...)
	if err != nil {
		log.Fatalf("error building city catalog: %s", err)
	}
	dataLoader := loader.NewLoader(cityCatalog, explorerConfig.CacheSize)

	var publisher summaryPublisher
	var rabbitMQ *communication.RabbitMQ
	if explorerConfig.Publisher.Enabled {
		publisherConfig := explorerConfig.Publisher
		reportPublisher, connection, err := communication.NewRabbitReportPublisher(
			publisherConfig.URL,
			publisherConfig.Queue,
			time.Duration(publisherConfig.TimeoutSeconds)*time.Second,
		)
		if err != nil {
			log.Errorf("error creating report publisher, summaries will not be published: %s", err)
		} else {
			publisher = reportPublisher
			rabbitMQ = connection
		}
	}

	var closeOnce sync.Once
	shutdown := func() { closeOnce.Do(func() { closeRabbitMQ(rabbitMQ) }) }

	ctx, cancel := context.WithCancel(context.Background())
	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("signal %s received, finishing explorer", sig)
		cancel()
		shutdown()
		os.Exit(0)
	}()

	explorer := NewExplorer(dataLoader, publisher, os.Stdin, os.Stdout)
	err = explorer.Run(ctx)
	cancel()
	shutdown()
	if err != nil {
		log.Fatalf("explorer finished with error: %s", err)
	}
	log.Debug("Finish main.go")
}

func closeRabbitMQ(rabbitMQ *communication.RabbitMQ) {
	if rabbitMQ == nil {
		return
	}
	if err := rabbitMQ.Close(); err != nil {
		log.Errorf("error closing rabbitMQ connection: %s", err)
	}
}
