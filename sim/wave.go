package sim

// WavePhase is the spawn director's state: actively fighting a wave or
// counting down to the next one.
type WavePhase int

const (
	WaveActive WavePhase = iota
	WaveCountdown
)

// WaveManager decides when waves start and how hard they are. It never
// spawns anything itself; the world asks SpawnTarget and tops up.
type WaveManager struct {
	Wave              int
	Spawned           int
	Countdown         float64
	CountdownDuration float64
	phase             WavePhase
	started           bool
}

func NewWaveManager() *WaveManager {
	return &WaveManager{CountdownDuration: 5.0, phase: WaveCountdown}
}

// Update advances the wave state machine. The very first call bootstraps
// straight into wave 1; afterwards a started wave ends when its last
// enemy dies, and the countdown rolls into the next wave when it runs
// out. WaveStarted is reported on the tick a wave begins.
func (w *WaveManager) Update(dt float64, aliveEnemies int) (waveStarted bool) {
	if !w.started {
		w.startNextWave()
		return true
	}
	switch w.phase {
	case WaveCountdown:
		w.Countdown -= dt
		if w.Countdown <= 0 {
			w.startNextWave()
			return true
		}
	case WaveActive:
		if w.Spawned > 0 && aliveEnemies == 0 {
			w.phase = WaveCountdown
			w.Countdown = w.CountdownDuration
		}
	}
	return false
}

func (w *WaveManager) startNextWave() {
	w.Wave++
	w.Spawned = 0
	w.Countdown = 0
	w.phase = WaveActive
	w.started = true
}

// Phase returns the current director phase.
func (w *WaveManager) Phase() WavePhase { return w.phase }

// BetweenWaves reports whether a countdown is running.
func (w *WaveManager) BetweenWaves() bool { return w.started && w.phase == WaveCountdown }

// SpawnTarget is the total enemy count the current wave should reach.
func (w *WaveManager) SpawnTarget() int {
	if w.phase != WaveActive {
		return 0
	}
	return EnemiesForWave(w.Wave)
}

// EnemiesForWave returns how many enemies a wave spawns in total.
func EnemiesForWave(wave int) int { return 3 + (wave-1)*2 }

// EnemyHealthForWave returns per-enemy health, rising every third wave.
func EnemyHealthForWave(wave int) int { return 1 + (wave-1)/3 }

// SpeedMultiplierForWave ramps enemy speed up to 2x by wave 11.
func SpeedMultiplierForWave(wave int) float64 {
	extra := float64(wave-1) * 0.1
	if extra > 1 {
		extra = 1
	}
	return 1 + extra
}
