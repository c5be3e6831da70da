package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/benvisser/call-of-doody-sub000/api"
	"github.com/benvisser/call-of-doody-sub000/cache"
	"github.com/benvisser/call-of-doody-sub000/events"
	"github.com/benvisser/call-of-doody-sub000/geo"
	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/score"
	"github.com/benvisser/call-of-doody-sub000/store"
	"github.com/benvisser/call-of-doody-sub000/utils"
)

func initConfig(configFile string) {
	viper.SetEnvPrefix("restroom")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.cache_ttl", "1m")
	viper.SetDefault("server.jwt_secret", "")
	viper.SetDefault("server.trace", false)
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("mongo.database", "restroom")
	viper.SetDefault("nominatim.endpoint", "https://nominatim.openstreetmap.org")
	viper.SetDefault("nominatim.user_agent", "restroom-api")
	viper.SetDefault("amqp.exchange", "restroom")
	viper.SetDefault("amenity.min_votes", score.DefaultMinVotes)
	viper.SetDefault("amenity.confirm_percentage", score.DefaultConfirmPercentage)
	viper.SetDefault("amenity.remove_percentage", score.DefaultRemovePercentage)
	viper.SetDefault("i18n.dir", "i18n")
	viper.SetDefault("log.level", "info")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})
}

func initGeocoder() {
	if apiKey := viper.GetString("google.api_key"); apiKey != "" {
		geocoder, err := geo.NewGoogleGeocoder(apiKey)
		if err == nil {
			geo.SetLocationResolver(geocoder)
			geo.SetLocationSearcher(geocoder)
			return
		}
		log.WithError(err).Error("fail to create google geocoder, using nominatim")
	}

	geocoder := geo.NewNominatimGeocoder(viper.GetString("nominatim.endpoint"), viper.GetString("nominatim.user_agent"))
	geo.SetLocationResolver(geocoder)
	geo.SetLocationSearcher(geocoder)
}

func initCache(ctx context.Context) cache.Cache {
	var cfg cache.RedisConfig
	if err := viper.UnmarshalKey("redis", &cfg); err != nil || cfg.Addr == "" {
		log.Info("redis is not configured, using in-memory cache")
		return cache.NewInMemory()
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("redis connect failed, using in-memory cache")
		return cache.NewInMemory()
	}
	return cache.NewRedisCache(client)
}

func initPublisher() events.Publisher {
	url := viper.GetString("amqp.url")
	if url == "" {
		log.Info("amqp is not configured, events are dropped")
		return events.NopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(url, viper.GetString("amqp.exchange"))
	if err != nil {
		log.WithError(err).Error("amqp connect failed, events are dropped")
		return events.NopPublisher{}
	}
	return publisher
}

func main() {
	var (
		configFile       string
		migrateAmenities bool
		recomputeRatings bool
	)
	flag.StringVar(&configFile, "c", "", "config file path")
	flag.BoolVar(&migrateAmenities, "migrate-amenities", false, "convert legacy amenities of every location and exit")
	flag.BoolVar(&recomputeRatings, "recompute-ratings", false, "recompute the ratings of every location and exit")
	flag.Parse()

	_ = godotenv.Load()
	initConfig(configFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.WithError(err).Fatal("mongo connect failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := schema.NewMongoDBIndexer(mongoURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create indexes")
	}

	if err := utils.InitI18NBundle(); err != nil {
		log.WithError(err).Fatal("fail to load i18n bundle")
	}

	initGeocoder()

	var thresholds score.StatusThresholds
	if err := viper.UnmarshalKey("amenity", &thresholds); err != nil {
		log.WithError(err).Fatal("invalid amenity thresholds")
	}

	mongoStore := store.NewMongoStore(client, database, store.WithStatusThresholds(thresholds))

	if migrateAmenities || recomputeRatings {
		if migrateAmenities {
			n, err := mongoStore.MigrateLocationAmenities(ctx)
			if err != nil {
				log.WithError(err).Fatal("amenity migration failed")
			}
			log.WithField("migrated", n).Info("amenity migration done")
		}
		if recomputeRatings {
			n, err := mongoStore.RecomputeAllRatings(ctx)
			if err != nil {
				log.WithError(err).Fatal("rating recompute failed")
			}
			log.WithField("updated", n).Info("rating recompute done")
		}
		return
	}

	publisher := initPublisher()
	defer publisher.Close()

	var serverConfig api.Config
	if err := viper.UnmarshalKey("server", &serverConfig); err != nil {
		log.WithError(err).Fatal("invalid server config")
	}

	server := api.NewServer(serverConfig, mongoStore, initCache(ctx), publisher)

	go func() {
		if err := server.Run(viper.GetString("server.addr")); err != nil {
			log.WithError(err).Error("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
		os.Exit(1)
	}
}
