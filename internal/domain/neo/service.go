package neo

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/infrastructure/nasa"
)

// Feeder is the slice of the NASA client the service needs.
type Feeder interface {
	Feed(ctx context.Context, startDate, endDate string) (*nasa.FeedResponse, error)
}

// Service serves processed near-Earth-object data, caching the daily feed and
// degrading to static samples when NASA is unreachable.
type Service struct {
	feeder   Feeder
	cacheTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time

	mu       sync.Mutex
	cacheDay string
	cachedAt time.Time
	cached   []Asteroid
}

func NewService(client *nasa.Client, cfg *config.Config) *Service {
	return newService(client, cfg.NeoCacheTTL)
}

func newService(feeder Feeder, cacheTTL time.Duration) *Service {
	return &Service{
		feeder:   feeder,
		cacheTTL: cacheTTL,
		log:      logger.Component("neo"),
		now:      time.Now,
	}
}

// Today returns today's processed close approaches plus whether the data came
// from the live feed.
func (s *Service) Today(ctx context.Context) ([]Asteroid, bool) {
	day := s.now().Format("2006-01-02")

	s.mu.Lock()
	if s.cacheDay == day && s.now().Sub(s.cachedAt) < s.cacheTTL && len(s.cached) > 0 {
		cached := append([]Asteroid(nil), s.cached...)
		s.mu.Unlock()
		return cached, true
	}
	s.mu.Unlock()

	feed, err := s.feeder.Feed(ctx, day, day)
	if err != nil {
		s.log.Warn().Err(err).Msg("NeoWs feed unavailable, serving sample data")
		return s.processed(sampleToday(s.now())), false
	}

	asteroids := s.processed(fromFeed(feed))
	s.mu.Lock()
	s.cacheDay = day
	s.cachedAt = s.now()
	s.cached = append([]Asteroid(nil), asteroids...)
	s.mu.Unlock()

	return asteroids, true
}

// Refresh forces a feed fetch, used by the background schedule to keep the
// day cache warm.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.cachedAt = time.Time{}
	s.mu.Unlock()
	s.Today(ctx)
}

// Hazardous returns today's potentially hazardous asteroids, highest risk first.
func (s *Service) Hazardous(ctx context.Context) ([]Asteroid, bool) {
	all, live := s.Today(ctx)
	hazardous := make([]Asteroid, 0, len(all))
	for _, a := range all {
		if a.IsHazardous {
			hazardous = append(hazardous, a)
		}
	}
	sort.Slice(hazardous, func(i, j int) bool {
		return hazardous[i].RiskScore > hazardous[j].RiskScore
	})
	return hazardous, live
}

// Upcoming returns the static list of notable future close approaches.
func (s *Service) Upcoming() []Asteroid {
	return s.processed(sampleUpcoming())
}

// Statistics summarizes a set of asteroids.
type Statistics struct {
	TotalCount          int            `json:"total_count"`
	HazardousCount      int            `json:"hazardous_count"`
	HazardousPercentage float64        `json:"hazardous_percentage"`
	RiskAnalysis        RiskAnalysis   `json:"risk_analysis"`
	ClosestApproach     *ApproachBrief `json:"closest_approach,omitempty"`
	Timestamp           time.Time      `json:"timestamp"`
}

type RiskAnalysis struct {
	AverageRisk float64 `json:"average_risk"`
	MaxRisk     float64 `json:"max_risk"`
	MinRisk     float64 `json:"min_risk"`
}

type ApproachBrief struct {
	AsteroidID    string  `json:"asteroid_id"`
	AsteroidName  string  `json:"asteroid_name"`
	DistanceKM    float64 `json:"distance_km"`
	DistanceLunar float64 `json:"distance_lunar"`
	Date          string  `json:"date"`
}

// Summarize computes statistics over the given asteroids.
func (s *Service) Summarize(asteroids []Asteroid) Statistics {
	stats := Statistics{Timestamp: s.now()}
	if len(asteroids) == 0 {
		return stats
	}

	stats.TotalCount = len(asteroids)
	minRisk, maxRisk, sum := math.MaxFloat64, 0.0, 0.0
	closest := asteroids[0]
	for _, a := range asteroids {
		if a.IsHazardous {
			stats.HazardousCount++
		}
		sum += a.RiskScore
		minRisk = math.Min(minRisk, a.RiskScore)
		maxRisk = math.Max(maxRisk, a.RiskScore)
		if a.MissDistanceKM < closest.MissDistanceKM {
			closest = a
		}
	}

	stats.HazardousPercentage = round1(float64(stats.HazardousCount) / float64(stats.TotalCount) * 100)
	stats.RiskAnalysis = RiskAnalysis{
		AverageRisk: round1(sum / float64(stats.TotalCount)),
		MaxRisk:     maxRisk,
		MinRisk:     minRisk,
	}
	stats.ClosestApproach = &ApproachBrief{
		AsteroidID:    closest.ID,
		AsteroidName:  closest.Name,
		DistanceKM:    closest.MissDistanceKM,
		DistanceLunar: math.Round(closest.MissDistanceKM/lunarDistanceKM*1000) / 1000,
		Date:          closest.CloseApproachDate,
	}
	return stats
}

// Alert is a user-facing threat notification.
type Alert struct {
	ID         string    `json:"id"`
	Level      string    `json:"level"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	AsteroidID string    `json:"asteroid_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// alertRiskThreshold is the risk score above which an asteroid raises a
// warning alert.
const alertRiskThreshold = 50.0

// Alerts derives warnings from today's set; a single informational alert is
// returned when nothing crosses the threshold.
func (s *Service) Alerts(asteroids []Asteroid) []Alert {
	now := s.now()
	alerts := make([]Alert, 0)
	for _, a := range asteroids {
		if a.RiskScore < alertRiskThreshold {
			continue
		}
		alerts = append(alerts, Alert{
			ID:         "alert_" + a.ID,
			Level:      "warning",
			Title:      "HIGH RISK: " + a.Name,
			Message:    "Asteroid detected with risk score " + strconv.FormatFloat(a.RiskScore, 'f', -1, 64),
			AsteroidID: a.ID,
			Timestamp:  now,
		})
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			ID:        "system_normal",
			Level:     "info",
			Title:     "System Normal",
			Message:   "No immediate threats detected",
			Timestamp: now,
		})
	}
	return alerts
}

// SimulateThreat runs a fixed hypothetical close approach through the scoring
// pipeline.
func (s *Service) SimulateThreat() Asteroid {
	simulated := Asteroid{
		ID:                  "sim_001",
		Name:                "SIMULATED THREAT 2026-XF1",
		IsHazardous:         true,
		EstimatedDiameterKM: 0.8,
		CloseApproachDate:   s.now().AddDate(0, 0, 7).Format("2006-01-02"),
		MissDistanceKM:      150000,
		RelativeVelocityKPH: 72000,
		OrbitingBody:        "Earth",
	}
	Enrich(&simulated)
	return simulated
}

func (s *Service) processed(asteroids []Asteroid) []Asteroid {
	for i := range asteroids {
		Enrich(&asteroids[i])
	}
	return asteroids
}

func fromFeed(feed *nasa.FeedResponse) []Asteroid {
	asteroids := make([]Asteroid, 0, feed.ElementCount)
	for _, items := range feed.NearEarthObjects {
		for _, item := range items {
			a := Asteroid{
				ID:                  item.ID,
				Name:                item.Name,
				IsHazardous:         item.IsHazardous,
				EstimatedDiameterKM: item.EstimatedDiameter.Kilometers.Max,
			}
			if len(item.CloseApproachData) > 0 {
				approach := item.CloseApproachData[0]
				a.CloseApproachDate = approach.Date
				a.OrbitingBody = approach.OrbitingBody
				a.MissDistanceKM, _ = strconv.ParseFloat(approach.MissDistance.Kilometers, 64)
				a.RelativeVelocityKPH, _ = strconv.ParseFloat(approach.RelativeVelocity.KilometersPerHour, 64)
			}
			asteroids = append(asteroids, a)
		}
	}
	sort.Slice(asteroids, func(i, j int) bool { return asteroids[i].MissDistanceKM < asteroids[j].MissDistanceKM })
	return asteroids
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
