// internal/event/types.go
package event

const (
	EnemySpawned   EventType = "EnemySpawned"
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен игроком
	EnemyLeaked    EventType = "EnemyLeaked"    // Враг дошёл до конца трассы
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded"     // Волна закончилась (только batch)
	WaveChanged    EventType = "WaveChanged"   // Игрок сменил волну (только continuous)
	LivesDepleted  EventType = "LivesDepleted" // Жизни упали до нуля; игра продолжается
)
