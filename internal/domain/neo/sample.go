package neo

import "time"

// Static sample data served when the NeoWs feed is unreachable. Mirrors real
// catalogued objects so degraded responses stay plausible.

func sampleToday(now time.Time) []Asteroid {
	date := now.Format("2006-01-02")
	return []Asteroid{
		{
			ID:                  "3542519",
			Name:                "(2010 PK9)",
			IsHazardous:         true,
			EstimatedDiameterKM: 0.284,
			CloseApproachDate:   date,
			MissDistanceKM:      7230000,
			RelativeVelocityKPH: 67600,
			OrbitingBody:        "Earth",
		},
		{
			ID:                  "3726710",
			Name:                "(2015 RC)",
			IsHazardous:         false,
			EstimatedDiameterKM: 0.041,
			CloseApproachDate:   date,
			MissDistanceKM:      15400000,
			RelativeVelocityKPH: 54200,
			OrbitingBody:        "Earth",
		},
		{
			ID:                  "2465633",
			Name:                "465633 (2009 JR5)",
			IsHazardous:         true,
			EstimatedDiameterKM: 1.2,
			CloseApproachDate:   date,
			MissDistanceKM:      12500000,
			RelativeVelocityKPH: 58900,
			OrbitingBody:        "Earth",
		},
		{
			ID:                  "3752467",
			Name:                "(2016 CA30)",
			IsHazardous:         true,
			EstimatedDiameterKM: 0.048,
			CloseApproachDate:   date,
			MissDistanceKM:      8900000,
			RelativeVelocityKPH: 61200,
			OrbitingBody:        "Earth",
		},
	}
}

func sampleUpcoming() []Asteroid {
	return []Asteroid{
		{
			ID:                  "99942",
			Name:                "Apophis",
			IsHazardous:         true,
			EstimatedDiameterKM: 0.34,
			CloseApproachDate:   "2029-04-13",
			MissDistanceKM:      31600,
			RelativeVelocityKPH: 76500,
			OrbitingBody:        "Earth",
			Note:                "Historic close approach in 2029",
		},
		{
			ID:                  "101955",
			Name:                "Bennu",
			IsHazardous:         true,
			EstimatedDiameterKM: 0.49,
			CloseApproachDate:   "2135-09-25",
			MissDistanceKM:      750000,
			RelativeVelocityKPH: 63000,
			OrbitingBody:        "Earth",
			Note:                "NASA OSIRIS-REx mission target",
		},
	}
}
