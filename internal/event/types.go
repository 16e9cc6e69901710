// internal/event/types.go
package event

const (
	WaveStarted   EventType = "wave_start"
	TowerPlaced   EventType = "place"
	TowerSold     EventType = "sell"
	TowerUpgraded EventType = "upgrade"
	TowerUnlocked EventType = "unlock"
	TowerFired    EventType = "tower_fired" // Data: component.Kind
	EnemyDied     EventType = "enemy_died"  // Data: component.Category
	LifeLost      EventType = "life_lost"
	MapChanged    EventType = "map_change" // Data: new map index
	GameOver      EventType = "game_over"
)

// AllTypes lists every event the core dispatches, for sinks that want the
// whole stream.
var AllTypes = []EventType{
	WaveStarted, TowerPlaced, TowerSold, TowerUpgraded, TowerUnlocked,
	TowerFired, EnemyDied, LifeLost, MapChanged, GameOver,
}
