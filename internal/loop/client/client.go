package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixellove/internal/draw"
	"github.com/tomz197/pixellove/internal/input"
	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/loop/round"
	"github.com/tomz197/pixellove/internal/loop/server"
	"github.com/tomz197/pixellove/internal/store"
)

// Music is the background track control the client drives.
type Music interface {
	Play()
	Stop()
	Toggle() bool
	Enabled() bool
}

// Client handles rendering and input for a single connection. Each client
// owns its own round session.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	terminal     *draw.Terminal
	inputStream  *input.Stream
	lastInput    time.Time
	lastMouse    input.Mouse
	mouseMoved   bool
	username     string
	termSizeFunc draw.TermSizeFunc
	inactivity   bool

	baseCfg config.Config
	cfg     config.Config
	custom  store.Customization
	store   *store.Store
	music   Music
	logger  *log.Logger
	rng     *rand.Rand

	session  *round.Session
	hud      *hud
	renderer *sceneRenderer
	styles   styles
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	// Config is the base configuration; nil means config.Default().
	Config *config.Config
	// Store holds the customization; nil keeps it in memory.
	Store  *store.Store
	Music  Music
	Logger *log.Logger
	Rand   *rand.Rand
	// Inactivity enables the idle warning and disconnect.
	Inactivity bool
	// Input replaces the stream started from the reader.
	Input *input.Stream
}

// NewClient creates a new client registered with the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	st := opts.Store
	if st == nil {
		st = store.New(nil, logger)
	}
	base := config.Default()
	if opts.Config != nil {
		base = opts.Config.WithDefaults()
	}

	custom, err := st.Load(base)
	if err != nil {
		logger.Warn("Using default customization", "err", err)
	}
	cfg := custom.Apply(base)

	inputStream := opts.Input
	if inputStream == nil {
		inputStream = input.StartStream(r)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, cfg.Gameplay.FieldWidth, cfg.Gameplay.FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	c := &Client{
		server:       gs,
		handle:       gs.RegisterClient(opts.Username),
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		terminal:     draw.NewTerminal(w),
		inputStream:  inputStream,
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		inactivity:   opts.Inactivity,
		baseCfg:      base,
		cfg:          cfg,
		custom:       custom,
		store:        st,
		music:        opts.Music,
		logger:       logger,
		rng:          rng,
		hud:          &hud{},
		styles:       newStyles(w, cfg.Theme),
	}
	c.renderer = newSceneRenderer(canvas, cfg, rng)
	c.newSession()

	if c.music != nil {
		if custom.MusicEnabled {
			c.music.Play()
		} else {
			c.music.Stop()
		}
	}
	return c
}

// newSession replaces the round session with one for the current config.
func (c *Client) newSession() {
	if c.session != nil {
		c.session.Close()
	}
	c.session = round.NewSession(c.cfg, round.Options{
		Renderer: c.renderer,
		UI:       c.hud,
		Logger:   c.logger.With("user", c.username),
		Rand:     c.rng,
	})
}

// applyCustomization rebuilds the config from the current customization.
func (c *Client) applyCustomization() {
	c.cfg = c.custom.Apply(c.baseCfg)
	c.renderer.configure(c.cfg)
}

// Run starts the client loop. Blocks until the client quits, the input
// closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	c.terminal.Enter()
	defer func() {
		c.session.Close()
		c.server.UnregisterClient(c.handle.ID)
		c.terminal.Leave()
	}()

	lastTime := time.Now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput(frameStart)
		c.processServerEvents()
		c.updateScreen()
		c.update()
		c.renderScene(frameStart)

		if err := c.drawFrame(); err != nil {
			return err
		}
		c.state.frame++

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
	return nil
}

// update runs the handler of the current screen.
func (c *Client) update() {
	if !c.state.Running {
		return
	}
	switch c.state.Screen {
	case ScreenCustomize:
		c.updateCustomizeState()
	case ScreenIntro:
		c.updateIntroState()
	case ScreenPlaying:
		c.updatePlayingState()
	case ScreenPaused:
		c.updatePausedState()
	case ScreenCelebrate:
		c.updateCelebrateState()
	case ScreenWin, ScreenLose:
		c.updateResultState()
	case ScreenShutdown:
		c.updateShutdownState()
	}
}

// processInput reads this frame's input and tracks activity.
func (c *Client) processInput(now time.Time) {
	in := input.ReadInput(c.inputStream)
	c.state.Input = in

	c.mouseMoved = in.HasMouse && (in.Mouse.Col != c.lastMouse.Col || in.Mouse.Row != c.lastMouse.Row)
	c.lastMouse = in.Mouse

	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case in.Any() || c.mouseMoved:
		c.lastInput = now
		c.state.isInactive = false
	case c.inactivity && idle > config.InactivityDisconnectUser:
		c.logger.Info("Disconnecting inactive player", "user", c.username)
		c.state.Running = false
	case c.inactivity && idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if in.Quit || in.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && c.state.Screen != ScreenShutdown {
				c.session.Pause()
				c.state.Screen = ScreenShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.terminal.Clear()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// confirmed reports whether the player confirmed this frame.
func (c *Client) confirmed() bool {
	in := c.state.Input
	return in.Tap.Space || in.Tap.Enter || in.Clicked
}

// updateIntroState handles the title screen.
func (c *Client) updateIntroState() {
	switch {
	case c.state.Input.Key('c'):
		c.state.customize = customizeState{}
		c.state.Screen = ScreenCustomize
	case c.confirmed():
		c.startRound()
	}
}

// updatePlayingState steers the player.
func (c *Client) updatePlayingState() {
	in := c.state.Input
	if in.Tap.Escape || in.Key('p') {
		c.session.Pause()
		c.state.pauseChoice = pauseResume
		c.state.Screen = ScreenPaused
		return
	}

	if c.mouseMoved {
		x, _ := c.canvas.TerminalToLogical(in.Mouse.Col, in.Mouse.Row)
		c.session.SetTarget(x)
	}
	if in.Tap.Left {
		c.session.NudgeTarget(-config.KeyboardNudge)
	}
	if in.Tap.Right {
		c.session.NudgeTarget(config.KeyboardNudge)
	}
}

// updatePausedState handles the pause menu.
func (c *Client) updatePausedState() {
	in := c.state.Input
	switch {
	case in.Tap.Escape || in.Key('p'):
		c.resumeRound()
	case in.Key('r'):
		c.startRound()
	case in.Key('m'):
		c.state.Screen = ScreenIntro
	case in.Tap.Up:
		c.state.pauseChoice = (c.state.pauseChoice + pauseItems - 1) % pauseItems
	case in.Tap.Down:
		c.state.pauseChoice = (c.state.pauseChoice + 1) % pauseItems
	case in.Tap.Enter || in.Tap.Space:
		switch c.state.pauseChoice {
		case pauseResume:
			c.resumeRound()
		case pauseRestart:
			c.startRound()
		case pauseMenu:
			c.state.Screen = ScreenIntro
		}
	}
}

// updateResultState handles the win and lose screens.
func (c *Client) updateResultState() {
	switch {
	case c.state.Input.Key('m'):
		c.state.Screen = ScreenIntro
	case c.confirmed():
		c.startRound()
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// startRound starts or restarts the round.
func (c *Client) startRound() {
	c.inputStream.ResetKeyInput()
	c.hud.takeResult()
	c.session.Start()
	c.state.Screen = ScreenPlaying
}

func (c *Client) resumeRound() {
	c.inputStream.ResetKeyInput()
	c.session.Resume()
	c.state.Screen = ScreenPlaying
}

// checkRoundEnd switches to the result screens once the session reports
// an outcome. Returns true if the screen changed.
func (c *Client) checkRoundEnd() bool {
	res, ok := c.hud.takeResult()
	if !ok {
		return false
	}
	c.state.result = res
	c.server.ReportRound(c.handle.ID, res.outcome, res.score)

	if res.outcome == round.OutcomeWin {
		c.state.celebrateFrame = 0
		c.state.Screen = ScreenCelebrate
	} else {
		c.state.Screen = ScreenLose
	}
	return true
}
