package catalog

import "github.com/transitlab/transitscope/schema"

// snapshotSystems is the built-in catalog: a curated set of well studied
// transiting systems with values taken from the public archives. Gaps are
// deliberate; sparse systems exercise the same fallback paths a user-provided
// catalog directory will hit.
var snapshotSystems = []snapshotEntry{
	{
		identifier: "TRAPPIST-1",
		gaia:       map[string]any{schema.KeyParallaxMas: 80.4512},
		simbad: map[string]any{
			schema.KeyRADeg:     346.6224,
			schema.KeyDecDeg:    -5.0414,
			schema.KeyMagnitude: 18.8,
		},
		tic: map[string]any{
			schema.KeyStarName:       "TRAPPIST-1",
			schema.KeyTemperatureK:   2566.0,
			schema.KeyRadiusSun:      0.119,
			schema.KeyMassSun:        0.089,
			schema.KeyLuminositySun:  0.000553,
			schema.KeySurfaceGravity: 5.24,
			schema.KeyMetallicity:    0.04,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "TRAPPIST-1 b",
			schema.KeyPeriodDays:        1.51088,
			schema.KeyPlanetRadiusEarth: 1.116,
			schema.KeyPlanetMassEarth:   1.374,
			schema.KeyEquilibriumTempK:  400.0,
		},
	},
	{
		identifier: "TOI-700",
		gaia:       map[string]any{schema.KeyParallaxMas: 32.1},
		simbad: map[string]any{
			schema.KeyRADeg:     97.0958,
			schema.KeyDecDeg:    -65.5783,
			schema.KeyMagnitude: 13.1,
		},
		tic: map[string]any{
			schema.KeyStarName:       "TOI-700",
			schema.KeyTemperatureK:   3480.0,
			schema.KeyRadiusSun:      0.415,
			schema.KeyMassSun:        0.416,
			schema.KeyLuminositySun:  0.0233,
			schema.KeySurfaceGravity: 4.93,
			schema.KeyMetallicity:    -0.07,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "TOI-700 d",
			schema.KeyPeriodDays:        37.426,
			schema.KeyPlanetRadiusEarth: 1.07,
			schema.KeyPlanetMassEarth:   1.57,
			schema.KeyEquilibriumTempK:  269.0,
		},
	},
	{
		identifier: "HD 209458",
		gaia:       map[string]any{schema.KeyParallaxMas: 20.77},
		simbad: map[string]any{
			schema.KeyRADeg:     330.795,
			schema.KeyDecDeg:    18.8842,
			schema.KeyMagnitude: 7.65,
		},
		tic: map[string]any{
			schema.KeyStarName:       "HD 209458",
			schema.KeyTemperatureK:   6065.0,
			schema.KeyRadiusSun:      1.155,
			schema.KeyMassSun:        1.119,
			schema.KeyLuminositySun:  1.61,
			schema.KeySurfaceGravity: 4.361,
			schema.KeyMetallicity:    0.0,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "HD 209458 b",
			schema.KeyPeriodDays:        3.52475,
			schema.KeyPlanetRadiusEarth: 15.6,
			schema.KeyPlanetMassEarth:   219.0,
			schema.KeyEquilibriumTempK:  1449.0,
		},
	},
	{
		identifier: "Kepler-452",
		gaia:       map[string]any{schema.KeyParallaxMas: 1.796},
		simbad: map[string]any{
			schema.KeyRADeg:     294.0898,
			schema.KeyDecDeg:    44.2775,
			schema.KeyMagnitude: 13.4,
		},
		tic: map[string]any{
			schema.KeyStarName:       "Kepler-452",
			schema.KeyTemperatureK:   5757.0,
			schema.KeyRadiusSun:      1.11,
			schema.KeyMassSun:        1.04,
			schema.KeyLuminositySun:  1.21,
			schema.KeySurfaceGravity: 4.32,
			schema.KeyMetallicity:    0.21,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "Kepler-452 b",
			schema.KeyPeriodDays:        384.843,
			schema.KeyPlanetRadiusEarth: 1.63,
			schema.KeyPlanetMassEarth:   5.0,
			schema.KeyEquilibriumTempK:  265.0,
		},
	},
	{
		identifier: "WASP-12",
		gaia:       map[string]any{schema.KeyParallaxMas: 2.312},
		simbad: map[string]any{
			schema.KeyRADeg:     97.6367,
			schema.KeyDecDeg:    29.6722,
			schema.KeyMagnitude: 11.69,
		},
		tic: map[string]any{
			schema.KeyStarName:       "WASP-12",
			schema.KeyTemperatureK:   6300.0,
			schema.KeyRadiusSun:      1.57,
			schema.KeyMassSun:        1.35,
			schema.KeyLuminositySun:  3.48,
			schema.KeySurfaceGravity: 4.38,
			schema.KeyMetallicity:    0.3,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "WASP-12 b",
			schema.KeyPeriodDays:        1.09142,
			schema.KeyPlanetRadiusEarth: 21.0,
			schema.KeyPlanetMassEarth:   465.0,
			schema.KeyEquilibriumTempK:  2580.0,
		},
	},
	{
		identifier: "GJ 1214",
		gaia:       map[string]any{schema.KeyParallaxMas: 68.3},
		simbad: map[string]any{
			schema.KeyRADeg:     258.8317,
			schema.KeyDecDeg:    4.9633,
			schema.KeyMagnitude: 14.67,
		},
		tic: map[string]any{
			schema.KeyStarName:       "GJ 1214",
			schema.KeyTemperatureK:   3026.0,
			schema.KeyRadiusSun:      0.216,
			schema.KeyMassSun:        0.176,
			schema.KeyLuminositySun:  0.00351,
			schema.KeySurfaceGravity: 5.03,
			schema.KeyMetallicity:    0.29,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "GJ 1214 b",
			schema.KeyPeriodDays:        1.5804,
			schema.KeyPlanetRadiusEarth: 2.68,
			schema.KeyPlanetMassEarth:   8.17,
			schema.KeyEquilibriumTempK:  596.0,
		},
	},
	{
		identifier: "LHS 3844",
		gaia:       map[string]any{schema.KeyParallaxMas: 67.1},
		simbad: map[string]any{
			schema.KeyRADeg:     335.446,
			schema.KeyDecDeg:    -69.163,
			schema.KeyMagnitude: 15.26,
		},
		tic: map[string]any{
			schema.KeyStarName:       "LHS 3844",
			schema.KeyTemperatureK:   3036.0,
			schema.KeyRadiusSun:      0.189,
			schema.KeyMassSun:        0.151,
			schema.KeyLuminositySun:  0.00272,
			schema.KeySurfaceGravity: 5.06,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "LHS 3844 b",
			schema.KeyPeriodDays:        0.46293,
			schema.KeyPlanetRadiusEarth: 1.303,
			schema.KeyEquilibriumTempK:  805.0,
		},
	},
	{
		identifier: "55 Cnc",
		gaia:       map[string]any{schema.KeyParallaxMas: 79.45},
		simbad: map[string]any{
			schema.KeyRADeg:     133.1492,
			schema.KeyDecDeg:    28.3308,
			schema.KeyMagnitude: 5.95,
		},
		tic: map[string]any{
			schema.KeyStarName:       "55 Cnc",
			schema.KeyTemperatureK:   5172.0,
			schema.KeyRadiusSun:      0.943,
			schema.KeyMassSun:        0.905,
			schema.KeyLuminositySun:  0.582,
			schema.KeySurfaceGravity: 4.43,
			schema.KeyMetallicity:    0.35,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "55 Cnc e",
			schema.KeyPeriodDays:        0.73655,
			schema.KeyPlanetRadiusEarth: 1.875,
			schema.KeyPlanetMassEarth:   7.99,
			schema.KeyEquilibriumTempK:  1958.0,
		},
	},
	{
		identifier: "Proxima Cen",
		gaia:       map[string]any{schema.KeyParallaxMas: 768.52},
		simbad: map[string]any{
			schema.KeyRADeg:     217.3935,
			schema.KeyDecDeg:    -62.6761,
			schema.KeyMagnitude: 11.13,
		},
		tic: map[string]any{
			schema.KeyStarName:       "Proxima Cen",
			schema.KeyTemperatureK:   3042.0,
			schema.KeyRadiusSun:      0.1542,
			schema.KeyMassSun:        0.1221,
			schema.KeyLuminositySun:  0.001567,
			schema.KeySurfaceGravity: 5.2,
			schema.KeyMetallicity:    0.21,
		},
		exoarchive: map[string]any{
			schema.KeyPlanetName:        "Proxima Cen b",
			schema.KeyPeriodDays:        11.1868,
			schema.KeyPlanetRadiusEarth: 1.07,
			schema.KeyPlanetMassEarth:   1.27,
			schema.KeyEquilibriumTempK:  234.0,
		},
	},
	{
		// No confirmed planet and no metallicity, so batch output shows a
		// partially resolved profile.
		identifier: "KIC 8462852",
		gaia:       map[string]any{schema.KeyParallaxMas: 2.231},
		simbad: map[string]any{
			schema.KeyRADeg:     301.5644,
			schema.KeyDecDeg:    44.4569,
			schema.KeyMagnitude: 11.7,
		},
		tic: map[string]any{
			schema.KeyStarName:       "KIC 8462852",
			schema.KeyTemperatureK:   6750.0,
			schema.KeyRadiusSun:      1.58,
			schema.KeyMassSun:        1.43,
			schema.KeyLuminositySun:  4.68,
			schema.KeySurfaceGravity: 4.0,
		},
	},
}
