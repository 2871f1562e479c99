package main

import (
	"context"
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Tanishksoam/speakhire/api"
	"github.com/Tanishksoam/speakhire/external/mailer"
	"github.com/Tanishksoam/speakhire/schema"
	"github.com/Tanishksoam/speakhire/store"
	"github.com/Tanishksoam/speakhire/utils"
)

func initConfig(file string) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("forms")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.base_url", "http://localhost:3000")
	viper.SetDefault("mail.sender_name", "SpeakHire")
	viper.SetDefault("mail.lang", "en")
	viper.SetDefault("log.level", "info")

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func newMailer() mailer.Mailer {
	apiKey := viper.GetString("mail.sendgrid_key")
	if apiKey == "" {
		log.Warn("sendgrid key not configured, invitation links are logged only")
		return mailer.NewLogMailer(viper.GetString("mail.lang"))
	}

	return mailer.NewSendGridMailer(
		apiKey,
		viper.GetString("mail.sender"),
		viper.GetString("mail.sender_name"),
		viper.GetString("mail.lang"),
	)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file")
	flag.Parse()

	initConfig(configFile)
	initLog()

	if err := utils.InitI18NBundle(); err != nil {
		log.WithError(err).Fatal("fail to load i18n messages")
	}

	connURI := viper.GetString("mongo.conn")
	dbName := viper.GetString("mongo.database")
	if connURI == "" || dbName == "" {
		log.Fatal("mongo.conn and mongo.database are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.NewClient(options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to create mongo client")
	}
	if err := client.Connect(ctx); err != nil {
		log.WithError(err).Fatal("fail to connect mongo database")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Fatal("fail to ping mongo database")
	}

	if err := schema.NewMongoDBIndexer(connURI, dbName).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create mongodb indexes")
	}

	mongoStore := store.NewMongoStore(client, dbName)

	server := api.NewServer(
		mongoStore,
		newMailer(),
		viper.GetString("server.base_url"),
		viper.GetBool("server.trace"),
	)

	addr := viper.GetString("server.address")
	log.WithField("addr", addr).Info("starting forms api server")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
