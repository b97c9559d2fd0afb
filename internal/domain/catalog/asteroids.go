package catalog

import (
	"fmt"
	"strings"
)

// asteroidFacts maps lowercased asteroid names to static fact sheets used
// when the upstream model cannot answer.
var asteroidFacts = map[string]string{
	"bennu": `Bennu (101955)
• Facts: A carbon-rich rubble-pile asteroid about 490 m in diameter, discovered in 1999.
• Orbit: Crosses Earth's orbit every 1.2 years; close approach to Earth every 6 years.
• Significance: Target of NASA's OSIRIS-REx mission, which returned samples in 2023.
• Risk: Cumulative impact probability of ~1 in 2,700 between 2175 and 2199 — among the highest scored, still very unlikely.
• Status: Actively monitored; sample analysis ongoing.`,
	"apophis": `Apophis (99942)
• Facts: A 340 m stony asteroid discovered in 2004, named after the Egyptian god of chaos.
• Orbit: Will pass within 31,600 km of Earth on April 13, 2029 — closer than geostationary satellites.
• Significance: The 2029 flyby will be visible to the naked eye, a once-per-thousand-years event for an object this size.
• Risk: Impact ruled out for at least the next 100 years after the 2021 radar campaign.
• Status: Monitored; target of the retasked OSIRIS-APEX mission.`,
	"ceres": `Ceres (1)
• Facts: The largest object in the asteroid belt at 940 km across — massive enough to be a dwarf planet.
• Orbit: Circles the Sun between Mars and Jupiter every 4.6 years.
• Significance: Visited by NASA's Dawn spacecraft (2015-2018); bright spots in Occator crater are salt deposits from subsurface brines.
• Risk: None — Ceres never approaches Earth.
• Status: Stable main-belt orbit; no monitoring required.`,
	"vesta": `Vesta (4)
• Facts: The second-most-massive asteroid, 525 km across, with a basaltic crust like a terrestrial planet.
• Orbit: Main-belt orbit with a 3.6 year period.
• Significance: Source of the HED meteorites found on Earth; mapped by the Dawn mission in 2011-2012.
• Risk: None — a stable main-belt object.
• Status: No monitoring required.`,
	"eros": `Eros (433)
• Facts: A 34 km elongated near-Earth asteroid, the first asteroid ever orbited and landed upon (NEAR Shoemaker, 2001).
• Orbit: Mars-crossing orbit with a 1.76 year period.
• Significance: Provided the first detailed surface data of any asteroid.
• Risk: No Earth-impact risk in current projections.
• Status: Routinely tracked.`,
}

const unknownAsteroidTemplate = `%s is currently under analysis by the Cosmic Watch team.
We don't have a local fact sheet for this object yet. It may be a recent discovery or catalogued under a different designation. Check NASA's Small-Body Database for provisional data, or ask again once the AI service reconnects.`

// LookupAsteroid resolves a named asteroid to its fact sheet. Matching is
// case-insensitive and trims surrounding whitespace. Unknown names yield the
// "under analysis" template echoing the trimmed input verbatim.
func LookupAsteroid(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if fact, ok := asteroidFacts[strings.ToLower(trimmed)]; ok {
		return fact, true
	}
	return fmt.Sprintf(unknownAsteroidTemplate, trimmed), false
}
