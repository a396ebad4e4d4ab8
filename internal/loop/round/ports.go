package round

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/object"
)

// UI receives HUD and end-of-round notifications. Calls are made while the
// session lock is held: implementations must return promptly and must not
// call back into the Session.
type UI interface {
	ShowHUD(visible bool)
	UpdateScore(score int)
	UpdateTimer(seconds int)
	UpdateProgress(current, target int)
	ShowWin(score int, cfg config.Config)
	ShowLose(score int, cfg config.Config)
}

type nopUI struct{}

func (nopUI) ShowHUD(bool)                  {}
func (nopUI) UpdateScore(int)               {}
func (nopUI) UpdateTimer(int)               {}
func (nopUI) UpdateProgress(int, int)       {}
func (nopUI) ShowWin(int, config.Config)    {}
func (nopUI) ShowLose(int, config.Config)   {}

type nopRenderer struct{}

func (nopRenderer) Background(int)                                                  {}
func (nopRenderer) Heart(float64, float64, float64, colorful.Color, object.HeartKind) {}
func (nopRenderer) Pixel(float64, float64, float64, colorful.Color, float64)          {}
func (nopRenderer) Text(float64, float64, string, colorful.Color, float64)            {}
func (nopRenderer) Player(float64, float64)                                          {}

var (
	_ UI              = nopUI{}
	_ object.Renderer = nopRenderer{}
)
