package object

// Player
const (
	// PlayerStartX and PlayerStartY are where a fresh ship appears
	PlayerStartX = 300
	PlayerStartY = 100

	// PlayerMaxHealth caps healing from pickups
	PlayerMaxHealth = 100

	// PlayerMaxEnergy is the regen cap; one primary shot costs PlayerShotCost
	PlayerMaxEnergy = 10
	PlayerShotCost  = 10

	// PlayerStep is the movement per pressed direction per tick
	PlayerStep = 4

	// Movement gates, checked against the pre-move position
	PlayerMinX = 4
	PlayerMaxX = ScreenWidth - 5
	PlayerMinY = 54
	PlayerMaxY = ScreenHeight - 5

	// Spawn offsets ahead of the ship
	BlueBulletOffsetY = 50
	MeteorOffsetY     = 100
)

// Projectiles
const (
	BlueBulletStep       = 6
	BlueBulletBaseDamage = 5
	BlueBulletDamageStep = 3
	BlueBulletBaseSize   = 0.5
	BlueBulletSizeStep   = 0.1

	// RedBulletSpeed is the nominal speed stat; movement uses the step/drift pair
	RedBulletSpeed   = 2
	RedBulletStepY   = 6
	RedBulletDriftX  = 2
	RedBulletSize    = 0.5
	RedBulletOffsetY = 50

	MeteorStep = 2
	// MeteorSpin is the rotation in degrees per tick
	MeteorSpin = 5
	MeteorSize = 2.0
	// MeteorDamage is large enough to kill any ship outright
	MeteorDamage = 100000

	ProjectileLayer = 1
)

// Enemy ships
const (
	// RamDamage is dealt to the player when a ship flies into it
	RamDamage = 20

	// AlignTolerance is the |dx| at which a ship counts as lined up with the player
	AlignTolerance = 10

	ShipTimerMin = 10
	ShipTimerMax = 50

	AlphaMaxEnergy  = 25
	AlphaShotCost   = 25
	AlphaFireChance = 25 // percent per aligned tick
	AlphaScore      = 50

	SigmaDiveSpeed  = 10
	SigmaDropChance = 20 // percent, health pickup
	SigmaScore      = 100

	OmegaMaxEnergy     = 50
	OmegaShotCost      = 50
	OmegaDropChance    = 40 // percent, any pickup
	OmegaUpgradeChance = 80 // percent of drops that are upgrades
	OmegaScore         = 200
)

// Pickups
const (
	WidgetStep       = 2
	WidgetSize       = 0.5
	WidgetLayer      = 2
	WidgetScore      = 20
	HealthWidgetHeal = 50
)

// Cosmetics
const (
	StarLayer = 4
	// StarSizeMin and StarSizeMax are in hundredths
	StarSizeMin = 10
	StarSizeMax = 40

	ExplosionLayer  = 3
	ExplosionSize   = 4.5
	ExplosionShrink = 0.2
	ExplosionFrames = 20
)
