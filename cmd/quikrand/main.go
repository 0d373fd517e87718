package main

import (
	"flag"
	"os"
	"os/signal"

	"github.com/Cheeseborgers/quik-math/charting"
	"github.com/Cheeseborgers/quik-math/config"
	"github.com/Cheeseborgers/quik-math/logging"
	"github.com/Cheeseborgers/quik-math/random"
	"github.com/Cheeseborgers/quik-math/storage"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var seed uint64
var tokens int
var ids int
var samples int
var serve bool
var resume bool
var exitChannel chan os.Signal

func init() {
	flag.Uint64Var(&seed, "seed", 0, "explicit generator seed (0 uses entropy)")
	flag.IntVar(&tokens, "tokens", 0, "number of tokens to generate")
	flag.IntVar(&ids, "ids", 0, "number of IDs to generate")
	flag.IntVar(&samples, "samples", 0, "number of uniform samples to summarize")
	flag.BoolVar(&serve, "serve", serve, "serve distribution histograms over HTTP")
	flag.BoolVar(&resume, "resume", resume, "persist and resume generator state")
	exitChannel = make(chan os.Signal, 1)
}

func wait() {
	signal.Notify(exitChannel, os.Interrupt)
	<-exitChannel
}

func overrideConfig(cfg *config.Config) {
	if seed != 0 {
		cfg.Seed = seed
	}
	if tokens != 0 {
		cfg.Tokens = tokens
	}
	if ids != 0 {
		cfg.IDs = ids
	}
	if samples != 0 {
		cfg.Samples = samples
	}
	if resume {
		cfg.Resume = true
	}
}

func generateTokens(cfg *config.Config, rng *random.Random) {
	for i := 0; i < cfg.Tokens; i++ {
		token, err := rng.Token(cfg.TokenLength, cfg.AlphabetType())
		if err != nil {
			log.WithError(err).Fatal("Could not generate token")
		}
		log.WithFields(log.Fields{
			"alphabet": cfg.AlphabetType(),
			"token":    token,
		}).Infoln("Token")
	}
}

func generateIDs(cfg *config.Config, rng *random.Random) {
	for i := 0; i < cfg.IDs; i++ {
		log.WithField("id", rng.GenerateID()).Infoln("ID")
	}
}

func summarizeSamples(cfg *config.Config, rng *random.Random) {
	var values = make([]float64, cfg.Samples)
	for i := range values {
		v, err := rng.Float(0, 1)
		if err != nil {
			log.WithError(err).Fatal("Could not sample")
		}
		values[i] = float64(v)
	}
	mean, stddev := stat.MeanStdDev(values, nil)
	log.WithFields(log.Fields{
		"samples": humanize.Comma(int64(len(values))),
		"mean":    mean,
		"stddev":  stddev,
	}).Infoln("Uniform samples")
}

func serveCharts(cfg *config.Config, rng *random.Random) {
	service := charting.NewService(rng, cfg)
	watcher, err := config.Watch(func() {
		if reloaded, reloadErr := config.LoadConfig(); reloadErr != nil {
			log.WithError(reloadErr).Error("Could not reload config")
		} else {
			service.Reload(reloaded)
		}
	})
	if err != nil {
		log.WithError(err).Fatal("Could not watch config")
	}
	defer func() { _ = watcher.Close() }()
	go func() {
		if serveErr := service.Start(); serveErr != nil {
			log.WithError(serveErr).Fatal("Chart service failed")
		}
	}()
	log.WithField("address", cfg.ServeAddress).Infoln("Serving histograms")
	wait()
}

func main() {
	flag.Parse()
	logging.SetupLogger()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	overrideConfig(cfg)
	rng := random.NewSeeded(cfg.Seed)
	if cfg.Resume {
		db, dbErr := storage.GetDB()
		if dbErr != nil {
			log.Fatal(dbErr)
		}
		defer func() {
			if saveErr := storage.SaveGenerator(db, cfg.Generator, rng); saveErr != nil {
				log.WithError(saveErr).Error("Could not save generator state")
			}
			_ = db.Close()
		}()
		if loadErr := storage.LoadGenerator(db, cfg.Generator, rng); loadErr != nil &&
			loadErr != storage.ErrGeneratorNotFound {
			log.Fatal(loadErr)
		}
	}
	if cfg.Tokens > 0 {
		generateTokens(cfg, rng)
	}
	if cfg.IDs > 0 {
		generateIDs(cfg, rng)
	}
	if cfg.Samples > 0 {
		summarizeSamples(cfg, rng)
	}
	if serve || cfg.ServeAddress != "" {
		if cfg.ServeAddress == "" {
			cfg.ServeAddress = ":8080"
		}
		serveCharts(cfg, rng)
	}
}
