// internal/config/config.go
package config

const (
	BoardWidth  = 48
	BoardHeight = 28

	TickMs      = 16 // ~60 FPS
	TickSeconds = TickMs / 1000.0

	StartingKibbles = 90
	StartingLives   = 9

	SpeedFactor           = 1.3 // global pacing multiplier (~30% faster)
	FastForwardMultiplier = 5.0

	// Wave and spawn pacing.
	SpawnBaseCount     = 6
	SpawnPerLevel      = 2
	SpawnIntervalMs    = 600
	WavesPerMap        = 10
	MapDifficultyBonus = 2
	WaveBonusBase      = 20
	WaveBonusPerWave   = 3
	MapMilestoneWaves  = 10

	// Economy.
	SellRefundFactor  = 0.6
	UpgradeCostFactor = 5
	UnlockCostFactor  = 10

	// Firing cadence. Cooldowns get a symmetric jitter and never drop
	// below the minimum.
	MinCooldown          = 0.06
	CooldownJitter       = 0.14
	PlacementCooldownMin = 0.05

	ProjectileSpeed        = 17.0 // cells per second
	ProjectileImpactEps    = 0.05 // squared distance counting as arrival
	ProjectileImpactRadius = 1.0  // squared search radius around impact

	// Thunder beam corridor.
	BeamBehindSlack = -0.2 // forward projection floor; slightly behind still hits
	BeamHalfWidth   = 0.35
	BeamTraceSteps  = 120
	BeamTraceStep   = 0.5

	// Fat cat pulse. The slack widens the unupgraded profile a touch.
	PulseSlack     = 0.2
	ShockwaveSpeed = 10.0
	ShockwaveTime  = 0.45
	SleepWaveTime  = 0.5

	// Kitty swipe footprint: depth cells forward, offsets across.
	SwipeDepth     = 6
	SwipeOffsetMin = -2
	SwipeOffsetMax = 1

	// Tiger cone: cosine of the angular half-width (~34 degrees).
	ConeCosThreshold  = 0.825
	KnockbackChance   = 0.20
	KnockbackDistance = 3.0

	// Catatonic nap field.
	NapDuration     = 2.5
	NapUpgradeBonus = 1.5

	// Jump relocation search radius on top of melee range.
	JumpSearchBonus = 4.0

	// Transient effect lifetimes, in unscaled seconds.
	SplatTimeProjectile = 0.28
	SplatTimeBeam       = 0.18
	SplatTimePulse      = 0.22
	SplatTimeSwipe      = 0.18
	BeamTraceTime       = 0.18
	AreaHighlightTime   = 0.22

	// Rat stat curves at the standard category; other categories scale these.
	EnemyBaseHP        = 6
	EnemyHPPerLevel    = 3
	EnemyBaseSpeed     = 0.65
	EnemySpeedPerLevel = 0.07
)
