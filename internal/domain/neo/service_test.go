package neo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmic-watch/services/astro-api/internal/infrastructure/nasa"
)

type stubFeeder struct {
	feed  *nasa.FeedResponse
	err   error
	calls int
}

func (s *stubFeeder) Feed(context.Context, string, string) (*nasa.FeedResponse, error) {
	s.calls++
	return s.feed, s.err
}

func feedWithOne(date string) *nasa.FeedResponse {
	item := nasa.NeoItem{ID: "42", Name: "(2024 AB)", IsHazardous: true}
	item.EstimatedDiameter.Kilometers.Max = 0.5
	approach := nasa.CloseApproach{Date: date, OrbitingBody: "Earth"}
	approach.MissDistance.Kilometers = "250000"
	approach.RelativeVelocity.KilometersPerHour = "65000"
	item.CloseApproachData = []nasa.CloseApproach{approach}
	return &nasa.FeedResponse{
		ElementCount:     1,
		NearEarthObjects: map[string][]nasa.NeoItem{date: {item}},
	}
}

func TestTodayUsesLiveFeedAndCaches(t *testing.T) {
	feeder := &stubFeeder{feed: feedWithOne("2026-08-31")}
	svc := newService(feeder, 5*time.Minute)

	asteroids, live := svc.Today(context.Background())
	require.True(t, live)
	require.Len(t, asteroids, 1)
	assert.Equal(t, "(2024 AB)", asteroids[0].Name)
	assert.Equal(t, 250000.0, asteroids[0].MissDistanceKM)
	assert.NotZero(t, asteroids[0].RiskScore)

	svc.Today(context.Background())
	assert.Equal(t, 1, feeder.calls, "second call within TTL must hit the cache")
}

func TestTodayCacheExpires(t *testing.T) {
	feeder := &stubFeeder{feed: feedWithOne("2026-08-31")}
	svc := newService(feeder, time.Nanosecond)

	svc.Today(context.Background())
	time.Sleep(time.Millisecond)
	svc.Today(context.Background())
	assert.Equal(t, 2, feeder.calls)
}

func TestTodayFallsBackToSamples(t *testing.T) {
	feeder := &stubFeeder{err: errors.New("connection refused")}
	svc := newService(feeder, 5*time.Minute)

	asteroids, live := svc.Today(context.Background())
	assert.False(t, live)
	require.NotEmpty(t, asteroids)
	for _, a := range asteroids {
		assert.NotEmpty(t, a.ThreatLevel)
	}
}

func TestHazardousSortedByRiskDesc(t *testing.T) {
	feeder := &stubFeeder{err: nasa.ErrRateLimited}
	svc := newService(feeder, 5*time.Minute)

	hazardous, _ := svc.Hazardous(context.Background())
	require.NotEmpty(t, hazardous)
	for i := 1; i < len(hazardous); i++ {
		assert.GreaterOrEqual(t, hazardous[i-1].RiskScore, hazardous[i].RiskScore)
		assert.True(t, hazardous[i].IsHazardous)
	}
}

func TestSummarize(t *testing.T) {
	svc := newService(&stubFeeder{err: errors.New("down")}, time.Minute)
	asteroids, _ := svc.Today(context.Background())

	stats := svc.Summarize(asteroids)
	assert.Equal(t, len(asteroids), stats.TotalCount)
	assert.Equal(t, 3, stats.HazardousCount)
	require.NotNil(t, stats.ClosestApproach)
	assert.Equal(t, "3542519", stats.ClosestApproach.AsteroidID)
	assert.GreaterOrEqual(t, stats.RiskAnalysis.MaxRisk, stats.RiskAnalysis.AverageRisk)
	assert.GreaterOrEqual(t, stats.RiskAnalysis.AverageRisk, stats.RiskAnalysis.MinRisk)
}

func TestAlertsThreshold(t *testing.T) {
	svc := newService(&stubFeeder{}, time.Minute)

	quiet := []Asteroid{{ID: "1", Name: "calm", RiskScore: 10}}
	alerts := svc.Alerts(quiet)
	require.Len(t, alerts, 1)
	assert.Equal(t, "info", alerts[0].Level)
	assert.Equal(t, "system_normal", alerts[0].ID)

	loud := []Asteroid{{ID: "2", Name: "scary", RiskScore: 65}}
	alerts = svc.Alerts(loud)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Level)
	assert.Equal(t, "alert_2", alerts[0].ID)
}

func TestSimulateThreatIsCritical(t *testing.T) {
	svc := newService(&stubFeeder{}, time.Minute)
	sim := svc.SimulateThreat()
	assert.True(t, sim.IsHazardous)
	assert.Equal(t, "🚨 CRITICAL", sim.ThreatLevel)
}
