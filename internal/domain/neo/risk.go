package neo

import "math"

// lunarDistanceKM is the Earth-Moon distance used to normalize approach
// distances into lunar distances (LD).
const lunarDistanceKM = 384400.0

// Asteroid is one processed near-Earth object.
type Asteroid struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	IsHazardous         bool    `json:"is_potentially_hazardous"`
	EstimatedDiameterKM float64 `json:"estimated_diameter_km"`
	MissDistanceKM      float64 `json:"miss_distance_km"`
	RelativeVelocityKPH float64 `json:"relative_velocity_kph"`
	CloseApproachDate   string  `json:"close_approach_date"`
	OrbitingBody        string  `json:"orbiting_body,omitempty"`
	Note                string  `json:"note,omitempty"`
	RiskScore           float64 `json:"risk_score"`
	ThreatLevel         string  `json:"threat_level"`
	SizeCategory        string  `json:"size_category"`
	DistanceCategory    string  `json:"distance_category"`
}

// RiskScore combines hazard flag, diameter, approach distance and velocity
// into a 0-100 score.
func RiskScore(diameterKM, velocityKPH, distanceKM float64, isHazardous bool) float64 {
	score := 0.0
	if isHazardous {
		score += 35
	}

	if diameterKM > 0 {
		score += math.Min(30, 10*math.Log10(diameterKM*1000))
	}

	if distanceKM > 0 {
		switch ld := distanceKM / lunarDistanceKM; {
		case ld <= 0.05:
			score += 25
		case ld <= 0.1:
			score += 20
		case ld <= 0.5:
			score += 15
		case ld <= 1:
			score += 10
		case ld <= 5:
			score += 5
		}
	}

	switch {
	case velocityKPH > 80000:
		score += 10
	case velocityKPH > 60000:
		score += 7
	case velocityKPH > 40000:
		score += 4
	default:
		score += 2
	}

	return math.Min(100, math.Round(score*10)/10)
}

// ThreatLevel maps a risk score to its display band.
func ThreatLevel(score float64) string {
	switch {
	case score >= 70:
		return "🚨 CRITICAL"
	case score >= 50:
		return "⚠️ HIGH"
	case score >= 30:
		return "🔶 MODERATE"
	case score >= 10:
		return "📉 LOW"
	default:
		return "✅ MINIMAL"
	}
}

// SizeCategory buckets an asteroid by estimated diameter.
func SizeCategory(diameterKM float64) string {
	switch {
	case diameterKM >= 1:
		return "LARGE (≥1 km)"
	case diameterKM >= 0.1:
		return "MEDIUM (0.1-1 km)"
	default:
		return "SMALL (<0.1 km)"
	}
}

// DistanceCategory buckets an approach by lunar distance.
func DistanceCategory(distanceKM float64) string {
	switch ld := distanceKM / lunarDistanceKM; {
	case ld <= 0.1:
		return "EXTREMELY CLOSE"
	case ld <= 0.5:
		return "VERY CLOSE"
	case ld <= 1:
		return "CLOSE"
	case ld <= 5:
		return "NEARBY"
	default:
		return "DISTANT"
	}
}

// Enrich fills in the derived fields of an asteroid in place.
func Enrich(a *Asteroid) {
	a.RiskScore = RiskScore(a.EstimatedDiameterKM, a.RelativeVelocityKPH, a.MissDistanceKM, a.IsHazardous)
	a.ThreatLevel = ThreatLevel(a.RiskScore)
	a.SizeCategory = SizeCategory(a.EstimatedDiameterKM)
	a.DistanceCategory = DistanceCategory(a.MissDistanceKM)
}
