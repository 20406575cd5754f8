// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 32.0
	MaxDeltaTime = 0.06

	// Игрок
	PlayerSpeed        = 170.0
	PlayerRadius       = 11.0
	PlayerMaxHP        = 100.0
	PlayerMaxArmor     = 100.0
	PlayerMaxStamina   = 100.0
	StaminaRegenPerSec = 22.0
	DashCost           = 30.0
	DashSpeed          = 520.0
	DashDuration       = 0.16
	DashCooldown       = 1.2
	MeleeRange         = 46.0
	MeleeHalfAngle     = 1.1 // радианы от направления взгляда
	MeleeDamage        = 22.0
	MeleeCooldown      = 0.45
	MeleeKnockback     = 240.0
	PotionHealBase     = 40.0
	MaxPotions         = 5

	// Смягчение урона по игроку
	ArmorAbsorbFraction = 0.6  // доля оставшегося урона, которую принимает броня
	BigHitThreshold     = 25.0 // урон, который включает аварийный щит
	EmergencyShieldTime = 1.5
	EmergencyShieldCD   = 12.0

	// Хит-стоп
	HitStopDuration = 0.07
	HitStopScale    = 0.15

	// Снаряды
	ProjectilePoolSize = 256
	ProjectileRadius   = 4.0
	EnemyBulletSpeed   = 260.0

	// Взрывы
	ExplosionRadius   = 64.0
	ExplosionDamage   = 30.0
	ExplosionDuration = 0.35

	// Враги: тайминги состояний
	IdleTimeMin      = 0.8
	IdleTimeMax      = 2.2
	PatrolTimeMin    = 2.0
	PatrolTimeMax    = 4.5
	PatrolSpeedScale = 0.45
	PatrolDriftRate  = 1.4 // полуширина углового дрейфа курса, рад/с
	RetreatTime      = 1.6
	SteerAccel       = 6.0 // скорость поворота вектора скорости к цели
	WallDriftAngle   = 0.6 // угловой увод при контакте со стеной

	// Гоблин
	GoblinStabBurst    = 3
	GoblinStabInterval = 0.12
	GoblinStabRange    = 30.0
	GoblinAttackCD     = 1.4
	GoblinDodgeCD      = 2.6
	GoblinDodgeSpeed   = 380.0

	// Огр
	OgreMeleeRange     = 40.0
	OgreAttackCD       = 1.8
	OgreSmashTelegraph = 0.9
	OgreSmashRadius    = 90.0
	OgreSmashCD        = 6.0
	OgreSmashBand      = 120.0 // дистанция, на которой огр начинает замах
	OgreSmashStun      = 0.5   // оглушение игрока, попавшего под удар
	OgreRetreatHP      = 0.25
	OgreRageSpeedMult  = 1.6
	BossAddCount       = 3 // подкрепление на фазе 50%

	// Лучник
	ArcherStandoff    = 180.0
	ArcherMinRange    = 110.0
	ArcherBaseFireCD  = 2.2
	ArcherStrafeSpeed = 0.8 // доля от базовой скорости

	// Призрак
	WraithTeleportCD   = 3.5
	WraithTeleportDist = 140.0
	WraithDrainRange   = 42.0
	WraithDrainTick    = 0.5
	WraithDrainAmount  = 4.0
	WraithInvisHP      = 0.5
	WraithInvisTime    = 3.0

	// Элитные модификаторы
	EliteShieldHits   = 3
	EliteReflectFrac  = 0.25
	EliteRegenPerSec  = 0.02 // доля от максимального здоровья
	EliteFrenzyMult   = 1.35
	EliteStatMult     = 1.5
	ElitePhaseCD      = 4.0
	EliteKillBuffMult = 1.25 // прилив урона за убийство элиты или босса
	EliteKillBuffTime = 5.0

	// Сложность и прогрессия
	EliteLevelGate     = 3
	EliteChanceBase    = 0.06
	EliteChancePerLvl  = 0.02
	EliteChanceCap     = 0.35
	HPScaleBase        = 1.16
	DamageScaleBase    = 1.11
	SpeedScaleBase     = 1.015
	SpeedScaleCap      = 1.6
	BossLevelEvery     = 10
	BossHPMultPerTier  = 2.5
	BossDmgMultPerTier = 1.5

	// Боезапас: резерв измеряется в полных магазинах
	ReserveClipsStart = 2
	ReserveClipsCap   = 4

	// Выпадение предметов
	DropChanceBase     = 0.18
	DropChanceElite    = 0.45
	DropChanceLowHP    = 0.40 // ниже 30% здоровья
	LowHPFraction      = 0.30
	CrateDropChance    = 0.65
	PotionAmount       = 1
	AmmoPickupFraction = 0.35 // доля от потолка резерва
	ArmorPickupAmount  = 25.0

	// Уровень и сундуки
	ChestInteractRange = 48.0
	ExitInteractRange  = 40.0
	PerkChoices        = 3
)

var (
	BackgroundColor = color.RGBA{16, 14, 20, 255}
	FloorColor      = color.RGBA{54, 48, 64, 255}
	CorridorColor   = color.RGBA{44, 40, 54, 255}
	WallColor       = color.RGBA{92, 78, 70, 255}
	VoidColor       = color.RGBA{10, 9, 12, 255}
	TorchColor      = color.RGBA{255, 180, 60, 255}
	ExitColor       = color.RGBA{120, 230, 140, 255}

	PlayerColor     = color.RGBA{90, 200, 255, 255}
	GoblinColor     = color.RGBA{110, 200, 90, 255}
	OgreColor       = color.RGBA{200, 110, 70, 255}
	ArcherColor     = color.RGBA{220, 220, 160, 255}
	WraithColor     = color.RGBA{150, 110, 220, 255}
	EliteStroke     = color.RGBA{255, 215, 0, 255}
	BossStroke      = color.RGBA{255, 60, 60, 255}
	CrateColor      = color.RGBA{160, 120, 60, 255}
	ChestColor      = color.RGBA{230, 190, 80, 255}
	PotionColor     = color.RGBA{220, 70, 90, 255}
	AmmoColor       = color.RGBA{200, 200, 90, 255}
	ArmorItemColor  = color.RGBA{120, 160, 220, 255}
	PlayerShotColor = color.RGBA{255, 240, 160, 255}
	EnemyShotColor  = color.RGBA{255, 90, 90, 255}
	ExplosionColor  = color.RGBA{255, 140, 40, 160}
	SmashColor      = color.RGBA{255, 60, 60, 110}

	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 80, 80, 255}
	ColorGray  = color.RGBA{120, 120, 120, 255}
)
