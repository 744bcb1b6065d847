package loop

import (
	"github.com/google/uuid"

	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/object"
	"github.com/mousany/dawn-breaker/internal/world"
)

// Phase is the host-side game phase.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen
	PhasePlaying               // Active gameplay
	PhaseDead                  // Life lost, waiting to continue
	PhaseGameOver              // No lives left, waiting to restart
	PhaseLevelUp               // Level cleared banner
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	case PhaseGameOver:
		return "game_over"
	case PhaseLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// ID tags the session in logs. Empty generates a random id.
	ID     string
	Lives  int
	Logger log.Log
}

// Session drives one player's World through the game phases. It holds no
// terminal state, so scripted hosts can step it directly.
type Session struct {
	id      string
	phase   Phase
	world   *world.World
	rand    object.Rand
	lives   int
	logger  log.Log
	banner  int
	running bool

	ticks int
	games int
	best  int
}

// NewSession creates a session on the title screen.
func NewSession(r object.Rand, opts SessionOptions) *Session {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}
	lives := opts.Lives
	if lives <= 0 {
		lives = world.InitialLives
	}

	s := &Session{
		id:      id,
		phase:   PhaseStart,
		rand:    r,
		lives:   lives,
		logger:  logger.With(log.String("session", id)),
		running: true,
	}
	s.world = s.newWorld()
	return s
}

func (s *Session) newWorld() *world.World {
	return world.New(s.rand, world.WithLives(s.lives), world.WithLogger(s.logger))
}

// Step advances the session by one frame.
func (s *Session) Step(in object.Input) {
	if in.Key(input.KeyQuit) {
		s.running = false
		return
	}

	switch s.phase {
	case PhaseStart:
		if confirmed(in) {
			s.startGame()
		}
	case PhasePlaying:
		s.ticks++
		s.updatePlaying(in)
	case PhaseDead:
		if confirmed(in) {
			s.world.Init()
			s.setPhase(PhasePlaying)
		}
	case PhaseGameOver:
		if confirmed(in) {
			s.world = s.newWorld()
			s.startGame()
		}
	case PhaseLevelUp:
		s.banner--
		if s.banner <= 0 || in.KeyDown(input.KeyEnter) {
			s.world.Init()
			s.setPhase(PhasePlaying)
		}
	}
}

func (s *Session) startGame() {
	s.games++
	s.world.Init()
	s.setPhase(PhasePlaying)
	s.logger.Info("game started", log.Int("game", s.games))
}

func (s *Session) updatePlaying(in object.Input) {
	switch s.world.Update(in) {
	case world.PlayerDestroyed:
		s.world.CleanUp()
		if s.world.IsGameOver() {
			s.best = max(s.best, s.world.Score())
			s.logger.Info("game over",
				log.Int("score", s.world.Score()),
				log.Int("level", s.world.Level()),
			)
			s.setPhase(PhaseGameOver)
			return
		}
		s.setPhase(PhaseDead)
	case world.LevelCleared:
		s.world.CleanUp()
		s.world.NextLevel()
		s.banner = LevelUpFrames
		s.setPhase(PhaseLevelUp)
	}
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.logger.Debug("phase change",
		log.String("from", s.phase.String()),
		log.String("to", p.String()),
	)
	s.phase = p
}

// confirmed reports a fresh press of SPACE or Enter.
func confirmed(in object.Input) bool {
	return in.KeyDown(input.KeyFire1) || in.KeyDown(input.KeyEnter)
}

// Stop ends the session at the next opportunity.
func (s *Session) Stop() {
	s.running = false
}

func (s *Session) ID() string          { return s.id }
func (s *Session) Phase() Phase        { return s.phase }
func (s *Session) World() *world.World { return s.world }
func (s *Session) Running() bool       { return s.running }
func (s *Session) Ticks() int          { return s.ticks }
func (s *Session) Games() int          { return s.games }
func (s *Session) BestScore() int      { return max(s.best, s.world.Score()) }
func (s *Session) Logger() log.Log     { return s.logger }
