package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/tomz197/pixellove/internal/draw"
	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/sprite"
)

// styles are the lipgloss styles of one connection. Each connection gets its
// own renderer so the color profile does not depend on the server's stdout.
type styles struct {
	r        *lipgloss.Renderer
	panel    lipgloss.Style
	title    lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	selected lipgloss.Style
	hud      lipgloss.Style
	bar      lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles(w io.Writer, theme config.Theme) styles {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.TrueColor))
	r.SetColorProfile(termenv.TrueColor)

	accent := lipgloss.Color(theme.HUDAccent)
	bg := lipgloss.Color(theme.Background)
	soft := lipgloss.Color(sprite.Subtitle.Hex())

	base := r.NewStyle().Background(bg)
	return styles{
		r: r,
		panel: r.NewStyle().
			Background(bg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			BorderBackground(bg).
			Padding(1, 3).
			Align(lipgloss.Center),
		title:    base.Foreground(accent).Bold(true),
		text:     base.Foreground(lipgloss.Color("#ffffff")),
		dim:      base.Foreground(soft),
		selected: base.Foreground(lipgloss.Color(sprite.Ribbon.Hex())).Bold(true),
		hud:      base.Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(0, 1),
		bar:      base.Foreground(accent),
		barEmpty: base.Foreground(lipgloss.Color("#3a2a4e")),
	}
}

// color renders s with foreground fg over bg.
func (s styles) color(text string, fg, bg colorful.Color) string {
	return s.r.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Bold(true).
		Render(text)
}

// renderScene fills the canvas for the current screen. Playing and paused
// screens are drawn by the session.
func (c *Client) renderScene(now time.Time) {
	if c.state.Screen == ScreenPlaying || c.state.Screen == ScreenPaused {
		c.session.Frame(now)
		if !c.checkRoundEnd() {
			return
		}
	}

	switch c.state.Screen {
	case ScreenCustomize:
		c.renderer.preview(c.state.frame)
	case ScreenCelebrate:
		f := c.state.celebrateFrame
		c.renderer.hug(min(f, config.HugFrames), min(float64(f)*config.HugCharFadeRate, 1))
	default:
		c.renderer.Background(c.state.frame)
		w, h := c.renderer.field.Width, c.renderer.field.Height
		c.renderer.Player(w/2, h-config.PlayerBaseOffset)
	}
}

// drawFrame renders the canvas and the text overlays of the current screen.
func (c *Client) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	screenChanged := c.state.Screen != c.state.prevScreen
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if screenChanged || inactiveChanged {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
		c.state.prevScreen = c.state.Screen
		c.state.wasInactive = c.state.isInactive
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawOverlayTexts()
	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawOverlayTexts writes the labels queued by the renderer, blended over
// the canvas cell beneath them.
func (c *Client) drawOverlayTexts() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()

	for _, t := range c.renderer.texts {
		col, row := c.canvas.LogicalToTerminal(t.x, t.y)
		width := runewidth.StringWidth(t.text)
		col -= width / 2
		if row < 1 || row > termHeight || col < 1 || col+width-1 > termWidth {
			continue
		}
		top, _ := c.canvas.CellColors(col, row)
		bg := top.Color()
		c.chunkWriter.WriteAt(col, row, c.styles.color(t.text, sprite.Blend(bg, t.color, t.alpha), bg))
		c.canvas.MarkTextDirty(col, row, width)
	}
}

// drawUI draws the overlay of the current screen.
func (c *Client) drawUI() {
	centerX := c.canvas.TerminalWidth() / 2
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.Screen == ScreenShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.Screen {
	case ScreenCustomize:
		c.drawCustomizeScreen(centerX)
	case ScreenIntro:
		c.drawIntroScreen(centerX, centerY)
	case ScreenPlaying:
		c.drawPlayingHUD()
	case ScreenPaused:
		c.drawPlayingHUD()
		c.drawPauseMenu(centerX, centerY)
	case ScreenCelebrate:
		c.drawCelebrateText()
	case ScreenWin:
		c.drawWinScreen(centerX, centerY)
	case ScreenLose:
		c.drawLoseScreen(centerX, centerY)
	}
}

// writeBlock writes a multi-line block with its top-left corner at col, row
// and marks the covered cells dirty.
func (c *Client) writeBlock(col, row int, block string) {
	termHeight := c.canvas.TerminalHeight()
	col = max(col, 1)
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 1 || r > termHeight {
			continue
		}
		c.chunkWriter.WriteAt(col, r, line)
		c.canvas.MarkTextDirty(col, r, lipgloss.Width(line))
	}
}

// drawPanel draws a bordered panel centered on centerX, centerY.
func (c *Client) drawPanel(centerX, centerY int, lines ...string) {
	block := c.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	width := lipgloss.Width(block)
	height := lipgloss.Height(block)
	c.writeBlock(centerX-width/2, centerY-height/2, block)
}

// messageLines styles each line of a possibly multi-line message, truncated
// to fit the terminal.
func (c *Client) messageLines(style lipgloss.Style, msg string) []string {
	maxWidth := max(c.canvas.TerminalWidth()-10, 10)
	var out []string
	for _, line := range strings.Split(msg, "\n") {
		out = append(out, style.Render(runewidth.Truncate(line, maxWidth, "…")))
	}
	return out
}

// blink reports whether blinking prompts are visible this frame.
func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.drawPanel(centerX, centerY,
		c.styles.title.Render("ARE YOU STILL THERE?"),
		"",
		c.styles.text.Render(fmt.Sprintf("You will be disconnected in %d seconds.", max(left, 0))),
		"",
		c.styles.dim.Render("Press any key to continue"),
	)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	remaining := int(c.state.shutdownTimer) + 1
	c.drawPanel(centerX, centerY,
		c.styles.title.Render("SERVER SHUTTING DOWN"),
		"",
		c.styles.text.Render("The server is restarting for maintenance."),
		c.styles.text.Render("Please reconnect in a moment."),
		"",
		c.styles.text.Render(fmt.Sprintf("Disconnecting in %d seconds...", remaining)),
		c.styles.dim.Render("Press Q to disconnect now"),
	)
}

// drawIntroScreen draws the title screen.
func (c *Client) drawIntroScreen(centerX, centerY int) {
	cfg := c.cfg
	lines := []string{
		c.styles.dim.Render(cfg.Player.Subtitle),
		c.styles.title.Render(strings.ToUpper(cfg.Player.Name)),
		"",
		c.styles.text.Render(fmt.Sprintf("Catch %d hearts in %d seconds!", cfg.Gameplay.TargetScore, cfg.Gameplay.TimeLimit)),
	}
	lines = append(lines, c.messageLines(c.styles.text, cfg.Messages.Intro)...)
	lines = append(lines,
		"",
		c.styles.dim.Render("♥ +1   gold ♥ +5   broken ♥ -3"),
		c.styles.dim.Render("A D / ← →  move    ESC pause    C customize    Q quit"),
		"",
	)
	prompt := " "
	if blink() {
		prompt = ">>  Press SPACE to Play  <<"
	}
	lines = append(lines, c.styles.selected.Render(prompt))

	c.drawPanel(centerX, centerY-3, lines...)
}

// drawPlayingHUD draws score, timer and progress bar.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD() {
	view := c.hud.snapshot()
	if !view.visible {
		return
	}
	termWidth := c.canvas.TerminalWidth()

	score := c.styles.hud.Render(fmt.Sprintf("♥ %-4d", view.score))
	c.writeBlock(2, 1, score)

	timer := c.styles.hud.Render(fmt.Sprintf("⏱ %3ds", view.timeLeft))
	c.writeBlock(termWidth-lipgloss.Width(timer), 1, timer)

	barWidth := min(40, termWidth-24)
	if barWidth < 4 {
		return
	}
	filled := int(view.fillRatio() * float64(barWidth))
	bar := c.styles.bar.Render(strings.Repeat(string(draw.BlockFull), filled)) +
		c.styles.barEmpty.Render(strings.Repeat(string(draw.BlockFull), barWidth-filled)) +
		c.styles.hud.Render(fmt.Sprintf("%3d/%-3d", view.progress, view.target))
	c.writeBlock(termWidth/2-lipgloss.Width(bar)/2, 1, bar)
}

// drawPauseMenu draws the pause menu.
func (c *Client) drawPauseMenu(centerX, centerY int) {
	items := [pauseItems]string{"Resume", "Restart", "Main menu"}
	lines := []string{c.styles.title.Render("PAUSED"), ""}
	for i, item := range items {
		if i == c.state.pauseChoice {
			lines = append(lines, c.styles.selected.Render("▸ "+item+" ◂"))
		} else {
			lines = append(lines, c.styles.text.Render("  "+item+"  "))
		}
	}
	lines = append(lines, "", c.styles.dim.Render("ESC resume   R restart   M menu"))
	c.drawPanel(centerX, centerY, lines...)
}

// drawWinScreen draws the win screen.
func (c *Client) drawWinScreen(centerX, centerY int) {
	res := c.state.result
	lines := []string{
		c.styles.title.Render("YOU DID IT!"),
		"",
		c.styles.text.Render(fmt.Sprintf("Score: %d", res.score)),
		"",
	}
	lines = append(lines, c.messageLines(c.styles.text, res.cfg.Messages.Win)...)
	lines = append(lines,
		"",
		c.styles.dim.Render("with love, "+res.cfg.Sender.Name),
		"",
		c.styles.dim.Render("SPACE play again   M menu   Q quit"),
	)
	c.drawPanel(centerX, centerY, lines...)
}

// drawLoseScreen draws the lose screen.
func (c *Client) drawLoseScreen(centerX, centerY int) {
	res := c.state.result
	remaining := res.cfg.Gameplay.TargetScore - res.score
	lines := []string{
		c.styles.title.Render("TIME'S UP!"),
		"",
		c.styles.text.Render(fmt.Sprintf("Score: %d", res.score)),
		"",
	}
	lines = append(lines, c.messageLines(c.styles.text, res.cfg.Messages.LoseText(remaining))...)
	lines = append(lines,
		"",
		c.styles.dim.Render("SPACE try again   M menu   Q quit"),
	)
	c.drawPanel(centerX, centerY, lines...)
}

// drawCustomizeScreen draws the customization menu above the character
// preview.
func (c *Client) drawCustomizeScreen(centerX int) {
	custom := c.custom
	music := "off"
	if custom.MusicEnabled {
		music = "on"
	}

	rows := [custRows][2]string{
		custPlayerHair:    {"Player hair", custom.PlayerCharacter.HairStyle},
		custPlayerOutfit:  {"Player outfit", custom.PlayerCharacter.OutfitColor},
		custPartnerHair:   {"Partner hair", custom.PartnerCharacter.HairStyle},
		custPartnerOutfit: {"Partner outfit", custom.PartnerCharacter.OutfitColor},
		custMusic:         {"Music", music},
	}

	lines := []string{
		c.styles.title.Render("MAKE IT YOURS"),
		c.styles.dim.Render(fmt.Sprintf("for %s, from %s", c.cfg.Player.Name, c.cfg.Sender.Name)),
		"",
	}
	for i := 0; i < custStart; i++ {
		label := fmt.Sprintf("%-15s ‹ %-9s ›", rows[i][0], rows[i][1])
		if i == c.state.customize.row {
			lines = append(lines, c.styles.selected.Render("▸ "+label))
		} else {
			lines = append(lines, c.styles.text.Render("  "+label))
		}
	}
	start := "[ Start ]"
	if c.state.customize.row == custStart {
		lines = append(lines, "", c.styles.selected.Render("▸ "+start+" ◂"))
	} else {
		lines = append(lines, "", c.styles.text.Render(start))
	}
	lines = append(lines, "", c.styles.dim.Render("↑↓ select   ←→ change   ENTER start   Q quit"))

	block := c.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	c.writeBlock(centerX-lipgloss.Width(block)/2, 2, block)
}
