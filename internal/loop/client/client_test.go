package client

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/pixellove/internal/input"
	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/loop/round"
	"github.com/tomz197/pixellove/internal/loop/server"
	"github.com/tomz197/pixellove/internal/sprite"
	"github.com/tomz197/pixellove/internal/store"
)

type fakeMusic struct {
	playing bool
	toggles int
}

func (m *fakeMusic) Play()         { m.playing = true }
func (m *fakeMusic) Stop()         { m.playing = false }
func (m *fakeMusic) Enabled() bool { return m.playing }
func (m *fakeMusic) Toggle() bool {
	m.toggles++
	m.playing = !m.playing
	return m.playing
}

type testClient struct {
	*Client
	out    *bytes.Buffer
	stream *input.Stream
	srv    *server.Server
	now    time.Time
}

func newTestClient(t *testing.T, opts ClientOptions) *testClient {
	t.Helper()
	out := &bytes.Buffer{}
	stream := input.NewStream(256)
	srv := server.NewServer(nil)

	opts.Input = stream
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = func() (int, int, error) { return 100, 40, nil }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	c := NewClient(srv, nil, out, opts)
	t.Cleanup(func() { c.session.Close() })
	return &testClient{Client: c, out: out, stream: stream, srv: srv, now: time.Now()}
}

// step feeds keys and runs one frame without the frame pacing of Run.
func (tc *testClient) step(t *testing.T, keys string) {
	t.Helper()
	if keys != "" {
		tc.stream.Feed([]byte(keys))
	}
	tc.now = tc.now.Add(config.TargetFrameTime)
	tc.state.delta = config.TargetFrameTime
	tc.processInput(tc.now)
	tc.processServerEvents()
	tc.updateScreen()
	tc.update()
	tc.renderScene(tc.now)
	tc.out.Reset()
	if err := tc.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
}

func (tc *testClient) toPlaying(t *testing.T) {
	t.Helper()
	tc.step(t, "\r")
	if tc.state.Screen != ScreenIntro {
		t.Fatalf("after customize: %v", tc.state.Screen)
	}
	tc.step(t, " ")
	if tc.state.Screen != ScreenPlaying {
		t.Fatalf("after intro: %v", tc.state.Screen)
	}
}

func TestFlowToPlaying(t *testing.T) {
	tc := newTestClient(t, ClientOptions{Username: "alice"})
	if tc.state.Screen != ScreenCustomize {
		t.Fatalf("first screen: %v", tc.state.Screen)
	}
	tc.step(t, "")
	if !strings.Contains(tc.out.String(), "MAKE IT YOURS") {
		t.Fatal("customize screen not drawn")
	}

	tc.toPlaying(t)
	if tc.session.Phase() != round.PhaseRunning {
		t.Fatalf("session phase: %v", tc.session.Phase())
	}
	tc.step(t, "")
	if !strings.Contains(tc.out.String(), "♥") {
		t.Fatal("HUD not drawn")
	}
	if tc.srv.Players() != 1 {
		t.Fatalf("players: %d", tc.srv.Players())
	}
}

func TestPauseMenu(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)

	tc.step(t, "\x1b")
	if tc.state.Screen != ScreenPaused || tc.session.Phase() != round.PhasePaused {
		t.Fatalf("escape: screen %v phase %v", tc.state.Screen, tc.session.Phase())
	}
	if !strings.Contains(tc.out.String(), "PAUSED") {
		t.Fatal("pause menu not drawn")
	}

	tc.step(t, "\x1b")
	if tc.state.Screen != ScreenPlaying || tc.session.Phase() != round.PhaseRunning {
		t.Fatalf("resume: screen %v phase %v", tc.state.Screen, tc.session.Phase())
	}

	tc.step(t, "p")
	tc.step(t, "\x1b[B")
	tc.step(t, "\x1b[B")
	if tc.state.pauseChoice != pauseMenu {
		t.Fatalf("pause choice: %d", tc.state.pauseChoice)
	}
	tc.step(t, "\r")
	if tc.state.Screen != ScreenIntro {
		t.Fatalf("main menu: %v", tc.state.Screen)
	}
	if tc.session.Phase() != round.PhasePaused {
		t.Fatalf("round should stay paused behind the menu: %v", tc.session.Phase())
	}
}

func TestPauseRestart(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)
	for i := 0; i < 40; i++ {
		tc.step(t, "")
	}
	tc.step(t, "p")
	tc.step(t, "r")
	if tc.state.Screen != ScreenPlaying {
		t.Fatalf("restart: %v", tc.state.Screen)
	}
	if snap := tc.session.Snapshot(); snap.Phase != round.PhaseRunning || snap.Hearts != 0 {
		t.Fatalf("round not restarted: %+v", snap)
	}
}

func TestMouseSetsTarget(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)

	tc.step(t, "\x1b[<35;26;10M")
	want, _ := tc.canvas.TerminalToLogical(26, 10)
	if got := tc.session.Snapshot().TargetX; math.Abs(got-want) > 1e-9 {
		t.Fatalf("target: got %v, want %v", got, want)
	}

	tc.step(t, "d")
	if got := tc.session.Snapshot().TargetX; math.Abs(got-(want+config.KeyboardNudge)) > 1e-9 {
		t.Fatalf("nudged target: got %v, want %v", got, want+config.KeyboardNudge)
	}
	// A still pointer does not override the keyboard.
	tc.step(t, "")
	if got := tc.session.Snapshot().TargetX; math.Abs(got-(want+config.KeyboardNudge)) > 1e-9 {
		t.Fatalf("target reset by idle pointer: %v", got)
	}
}

func TestWinCelebratesThenShowsWin(t *testing.T) {
	tc := newTestClient(t, ClientOptions{Username: "alice"})
	tc.toPlaying(t)

	tc.hud.ShowWin(103, tc.cfg)
	tc.step(t, "")
	if tc.state.Screen != ScreenCelebrate {
		t.Fatalf("after win: %v", tc.state.Screen)
	}
	if snap := tc.srv.Snapshot(); snap.Wins != 1 || snap.BestScore != 103 {
		t.Fatalf("server stats: %+v", snap)
	}

	// Too early to skip.
	tc.step(t, " ")
	if tc.state.Screen != ScreenCelebrate {
		t.Fatal("celebration skipped before the text appeared")
	}
	for tc.state.celebrateFrame <= config.HugTextDelay {
		tc.step(t, "")
	}
	tc.step(t, "")
	if !strings.Contains(tc.out.String(), "I LOVE YOU") {
		t.Fatal("hug title not drawn")
	}
	tc.step(t, " ")
	if tc.state.Screen != ScreenWin {
		t.Fatalf("skip: %v", tc.state.Screen)
	}
	tc.step(t, "")
	if !strings.Contains(tc.out.String(), "Score: 103") {
		t.Fatal("win score not drawn")
	}
}

func TestCelebrationEndsOnItsOwn(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)
	tc.hud.ShowWin(100, tc.cfg)
	tc.step(t, "")
	for i := 0; i < config.HugFrames+config.HugHoldFrames && tc.state.Screen == ScreenCelebrate; i++ {
		tc.step(t, "")
	}
	if tc.state.Screen != ScreenWin {
		t.Fatalf("screen: %v", tc.state.Screen)
	}
}

func TestLoseShowsRemaining(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)

	tc.hud.ShowLose(80, tc.cfg)
	tc.step(t, "")
	if tc.state.Screen != ScreenLose {
		t.Fatalf("after lose: %v", tc.state.Screen)
	}
	tc.step(t, "")
	if !strings.Contains(tc.out.String(), "Only 20 more hearts") {
		t.Fatal("lose message not drawn")
	}

	tc.step(t, "m")
	if tc.state.Screen != ScreenIntro {
		t.Fatalf("menu: %v", tc.state.Screen)
	}
	tc.step(t, "\r")
	if tc.state.Screen != ScreenPlaying {
		t.Fatalf("play again: %v", tc.state.Screen)
	}
}

func TestCustomizeChangesAndSaves(t *testing.T) {
	st := store.New(nil, nil)
	music := &fakeMusic{}
	tc := newTestClient(t, ClientOptions{Store: st, Music: music})
	if !music.playing {
		t.Fatal("music should start when enabled")
	}
	before := tc.custom.PlayerCharacter.HairStyle

	tc.step(t, "\x1b[C")
	if tc.custom.PlayerCharacter.HairStyle == before {
		t.Fatal("hair style unchanged")
	}
	want, _ := sprite.ParseHairStyle(tc.custom.PlayerCharacter.HairStyle)
	if tc.renderer.player.Style != want {
		t.Fatal("renderer not updated")
	}

	for tc.state.customize.row != custMusic {
		tc.step(t, "\x1b[B")
	}
	tc.step(t, "\r")
	if music.toggles != 1 || tc.custom.MusicEnabled {
		t.Fatalf("music toggle: toggles=%d enabled=%v", music.toggles, tc.custom.MusicEnabled)
	}

	tc.step(t, "\x1b[B")
	tc.step(t, "\r")
	if tc.state.Screen != ScreenIntro {
		t.Fatalf("start: %v", tc.state.Screen)
	}
	saved, err := st.Load(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if saved.PlayerCharacter.HairStyle != tc.custom.PlayerCharacter.HairStyle || saved.MusicEnabled {
		t.Fatalf("saved: %+v", saved)
	}
	if tc.session.Config().PlayerCharacter.HairStyle != saved.PlayerCharacter.HairStyle {
		t.Fatal("session not rebuilt with the new customization")
	}
}

func TestShutdownEvent(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.toPlaying(t)

	tc.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	tc.step(t, "")
	if tc.state.Screen != ScreenShutdown {
		t.Fatalf("screen: %v", tc.state.Screen)
	}
	if tc.session.Phase() != round.PhasePaused {
		t.Fatalf("round not paused: %v", tc.session.Phase())
	}
	if !strings.Contains(tc.out.String(), "SERVER SHUTTING DOWN") {
		t.Fatal("shutdown screen not drawn")
	}

	tc.state.shutdownTimer = 0.001
	tc.step(t, "")
	if tc.state.Running {
		t.Fatal("client still running after shutdown countdown")
	}
}

func TestInactivity(t *testing.T) {
	tc := newTestClient(t, ClientOptions{Inactivity: true})

	tc.lastInput = tc.now.Add(-(config.InactivityWarnUser + 1) * time.Second)
	tc.step(t, "")
	if !tc.state.isInactive {
		t.Fatal("no inactivity warning")
	}
	tc.step(t, "x")
	if tc.state.isInactive {
		t.Fatal("key press did not clear the warning")
	}

	tc.lastInput = tc.now.Add(-(config.InactivityDisconnectUser + 1) * time.Second)
	tc.step(t, "")
	if tc.state.Running {
		t.Fatal("inactive client not disconnected")
	}
}

func TestQuit(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	tc.step(t, "q")
	if tc.state.Running {
		t.Fatal("q did not quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tc := newTestClient(t, ClientOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tc.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tc.srv.Players() != 0 {
		t.Fatal("client not unregistered")
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(200, 70)
	if w != config.MaxTermWidth || h != config.MaxTermHeight || col != 10 || row != 5 {
		t.Fatalf("got %d %d %d %d", w, h, col, row)
	}
	w, h, col, row = clampTermSize(80, 24)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Fatalf("got %d %d %d %d", w, h, col, row)
	}
}

func TestHudResult(t *testing.T) {
	h := &hud{}
	if _, ok := h.takeResult(); ok {
		t.Fatal("empty hud has a result")
	}
	h.UpdateProgress(150, 100)
	if r := h.snapshot().fillRatio(); r != 1 {
		t.Fatalf("fill ratio: %v", r)
	}
	h.ShowLose(12, config.Default())
	r, ok := h.takeResult()
	if !ok || r.outcome != round.OutcomeLose || r.score != 12 {
		t.Fatalf("result: %+v %v", r, ok)
	}
	if _, ok := h.takeResult(); ok {
		t.Fatal("result delivered twice")
	}
}

func TestCycleHelpers(t *testing.T) {
	styles := sprite.PlayerHairStyles()
	first := styles[0].String()
	last := styles[len(styles)-1].String()
	if got := cycleHair(styles, last, 1); got != first {
		t.Fatalf("wrap forward: %q", got)
	}
	if got := cycleHair(styles, first, -1); got != last {
		t.Fatalf("wrap back: %q", got)
	}
	if got := cycleHair(styles, "mohawk", 1); got != first {
		t.Fatalf("unknown style: %q", got)
	}

	color, highlight := cycleOutfit("#FF4A6E", 1)
	if color != outfitPalette[1] || highlight == color {
		t.Fatalf("outfit: %q %q", color, highlight)
	}
	if color, _ := cycleOutfit("#123456", -1); color != outfitPalette[len(outfitPalette)-1] {
		t.Fatalf("unknown outfit backwards: %q", color)
	}
}
