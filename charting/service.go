package charting

import (
	"bytes"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Cheeseborgers/quik-math/config"
	"github.com/Cheeseborgers/quik-math/random"
	"github.com/ReneKroon/ttlcache"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

const HistogramBuckets = 50

var distributions = []string{"uniform", "gaussian", "ints"}

var ErrUnknownDistribution = errors.New("charting: unknown distribution")

// Service serves rendered distribution histograms over HTTP. Rendering
// draws fresh samples from the shared generator, so responses are
// cached for the configured TTL.
type Service struct {
	rng   *random.Random
	cache *ttlcache.Cache
	mtx   sync.Mutex
	cfg   *config.Config
}

func NewService(rng *random.Random, cfg *config.Config) *Service {
	return &Service{
		rng:   rng,
		cache: ttlcache.NewCache(),
		cfg:   cfg,
	}
}

func (cs *Service) Start() error {
	router := httprouter.New()
	router.GET("/hist/:dist", cs.GetHistogram)
	return http.ListenAndServe(cs.Config().ServeAddress, router)
}

func (cs *Service) Config() *config.Config {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	return cs.cfg
}

// Reload swaps the active config and drops cached renders.
func (cs *Service) Reload(cfg *config.Config) {
	cs.mtx.Lock()
	cs.cfg = cfg
	cs.mtx.Unlock()
	for _, dist := range distributions {
		cs.cache.Remove(dist)
	}
}

// Sample draws count values from the named distribution.
func (cs *Service) Sample(dist string, count int) ([]float64, error) {
	var samples = make([]float64, count)
	switch dist {
	case "uniform":
		for i := range samples {
			v, err := cs.rng.Float(0, 1)
			if err != nil {
				return nil, err
			}
			samples[i] = float64(v)
		}
	case "gaussian":
		for i := range samples {
			samples[i] = float64(cs.rng.Gaussian(0, 1))
		}
	case "ints":
		for i := range samples {
			v, err := cs.rng.Int(0, 99)
			if err != nil {
				return nil, err
			}
			samples[i] = float64(v)
		}
	default:
		return nil, ErrUnknownDistribution
	}
	return samples, nil
}

func (cs *Service) GetHistogram(
	w http.ResponseWriter,
	request *http.Request,
	params httprouter.Params,
) {
	startTime := time.Now()
	dist := params.ByName("dist")
	if cached, found := cs.cache.Get(dist); found {
		_, _ = w.Write(cached.([]byte))
		return
	}
	cfg := cs.Config()
	samples, err := cs.Sample(dist, cfg.ChartSamples)
	if err != nil {
		log.WithError(err).WithField("dist", dist).Error("Error sampling distribution")
		w.WriteHeader(404)
		return
	}
	bar := BuildHistogram(dist, samples, HistogramBuckets, cfg.ChartRefresh)
	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		log.WithError(err).Error("Error rendering chart")
		w.WriteHeader(500)
		return
	}
	cs.cache.SetWithTTL(dist, buf.Bytes(), time.Duration(cfg.ChartTTL)*time.Second)
	_, _ = w.Write(buf.Bytes())
	log.WithFields(log.Fields{
		"elapsedTime":  time.Since(startTime),
		"totalSamples": len(samples),
		"path":         request.URL,
		"dist":         dist,
	}).Println("Chart request")
}
