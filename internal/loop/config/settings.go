package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the per-round configuration handed to the game. It is read-only
// once a round starts.
type Config struct {
	Player           PlayerInfo `yaml:"player"`
	Sender           SenderInfo `yaml:"sender"`
	Messages         Messages   `yaml:"messages"`
	Gameplay         Gameplay   `yaml:"gameplay"`
	PlayerCharacter  Character  `yaml:"playerCharacter"`
	PartnerCharacter Character  `yaml:"partnerCharacter"`
	Theme            Theme      `yaml:"theme"`
}

// PlayerInfo names the person the game is made for.
type PlayerInfo struct {
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
}

// SenderInfo names the person who made the game.
type SenderInfo struct {
	Name string `yaml:"name"`
}

// Messages holds the texts shown around a round.
// Lose may contain {remaining}; HugTitle may contain {name}.
type Messages struct {
	Intro       string `yaml:"intro"`
	Win         string `yaml:"win"`
	Lose        string `yaml:"lose"`
	HugTitle    string `yaml:"hugTitle"`
	HugSubtitle string `yaml:"hugSubtitle"`
}

// Gameplay holds the scoring and timing rules.
type Gameplay struct {
	TargetScore       int     `yaml:"targetScore"`
	TimeLimit         int     `yaml:"timeLimit"` // Seconds
	BrokenHeartChance float64 `yaml:"brokenHeartChance"`
	GoldHeartChance   float64 `yaml:"goldHeartChance"`
	PenaltyPoints     int     `yaml:"penaltyPoints"`
	GoldPoints        int     `yaml:"goldPoints"`
	ComboPoints       int     `yaml:"comboPoints"`
	ComboWindowMs     int     `yaml:"comboWindow"`
	FieldWidth        float64 `yaml:"fieldWidth"`
	FieldHeight       float64 `yaml:"fieldHeight"`
}

// Character describes a pixel-art character's palette and hair style.
// HairColors are dark, main and highlight, in that order.
type Character struct {
	HairColors      []string `yaml:"hairColors"`
	SkinColor       string   `yaml:"skinColor"`
	OutfitColor     string   `yaml:"outfitColor"`
	OutfitHighlight string   `yaml:"outfitHighlight"`
	AccentColor     string   `yaml:"accentColor,omitempty"`
	ShirtColor      string   `yaml:"shirtColor,omitempty"`
	TrouserColor    string   `yaml:"trouserColor,omitempty"`
	ShoeColor       string   `yaml:"shoeColor"`
	HairStyle       string   `yaml:"hairStyle"`
}

// Theme holds the play-field colors.
type Theme struct {
	Background       string   `yaml:"background"`
	CanvasBackground string   `yaml:"canvasBackground"`
	GroundColor      string   `yaml:"groundColor"`
	HUDAccent        string   `yaml:"hudAccent"`
	StarCount        int      `yaml:"starCount"`
	HeartColors      []string `yaml:"heartColors"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Player: PlayerInfo{
			Name:     "Player",
			Subtitle: "A little game made with love for",
		},
		Sender: SenderInfo{Name: "Sender"},
		Messages: Messages{
			Intro:       "MOVE THE MOUSE\nTO CATCH HEARTS",
			Win:         "You caught 100 hearts...\nbut you've had mine from the start.\nI love you! 💕",
			Lose:        "Only {remaining} more hearts to go!\nYou're so close... try again! 💕",
			HugTitle:    "I LOVE YOU, {name}!",
			HugSubtitle: "You caught all my love... and my heart 💕",
		},
		Gameplay: DefaultGameplay(),
		PlayerCharacter: Character{
			HairColors:      []string{"#8b1a1a", "#a01010", "#c42020"},
			SkinColor:       "#fdd5b1",
			OutfitColor:     "#ff4a6e",
			OutfitHighlight: "#ff6b8a",
			AccentColor:     "#ffd700",
			ShoeColor:       "#8b1a1a",
			HairStyle:       "long",
		},
		PartnerCharacter: Character{
			HairColors:      []string{"#3d2314", "#4a2a15", "#6b3d22"},
			SkinColor:       "#f5c7a1",
			OutfitColor:     "#222222",
			OutfitHighlight: "#333333",
			ShirtColor:      "#ffffff",
			TrouserColor:    "#1a1a2e",
			ShoeColor:       "#333333",
			HairStyle:       "short",
		},
		Theme: Theme{
			Background:       "#1a0a1e",
			CanvasBackground: "#0f0a18",
			GroundColor:      "#1a0a2e",
			HUDAccent:        "#ff4a6e",
			StarCount:        50,
			HeartColors:      []string{"#ff4a6e", "#ff3355", "#ff6b8a", "#e84393"},
		},
	}
}

// DefaultGameplay returns the stock scoring and timing rules.
func DefaultGameplay() Gameplay {
	return Gameplay{
		TargetScore:       100,
		TimeLimit:         45,
		BrokenHeartChance: 0.12,
		GoldHeartChance:   0.10,
		PenaltyPoints:     3,
		GoldPoints:        5,
		ComboPoints:       2,
		ComboWindowMs:     800,
		FieldWidth:        FieldWidth,
		FieldHeight:       FieldHeight,
	}
}

// ComboWindow returns the maximum gap between two catches of one streak.
func (g Gameplay) ComboWindow() time.Duration {
	return time.Duration(g.ComboWindowMs) * time.Millisecond
}

// WithDefaults replaces absent values with the stock ones. For integer and
// dimension fields zero means absent; probabilities are kept as given since
// zero is a meaningful chance. Negative probabilities count as absent.
func (g Gameplay) WithDefaults() Gameplay {
	d := DefaultGameplay()
	if g.TargetScore <= 0 {
		g.TargetScore = d.TargetScore
	}
	if g.TimeLimit <= 0 {
		g.TimeLimit = d.TimeLimit
	}
	if g.BrokenHeartChance < 0 {
		g.BrokenHeartChance = d.BrokenHeartChance
	}
	if g.GoldHeartChance < 0 {
		g.GoldHeartChance = d.GoldHeartChance
	}
	if g.PenaltyPoints <= 0 {
		g.PenaltyPoints = d.PenaltyPoints
	}
	if g.GoldPoints <= 0 {
		g.GoldPoints = d.GoldPoints
	}
	if g.ComboPoints <= 0 {
		g.ComboPoints = d.ComboPoints
	}
	if g.ComboWindowMs <= 0 {
		g.ComboWindowMs = d.ComboWindowMs
	}
	if g.FieldWidth <= 0 {
		g.FieldWidth = d.FieldWidth
	}
	if g.FieldHeight <= 0 {
		g.FieldHeight = d.FieldHeight
	}
	return g
}

// WithDefaults fills every absent value of the configuration.
func (c Config) WithDefaults() Config {
	d := Default()
	c.Gameplay = c.Gameplay.WithDefaults()

	if c.Player.Name == "" {
		c.Player.Name = d.Player.Name
	}
	if c.Player.Subtitle == "" {
		c.Player.Subtitle = d.Player.Subtitle
	}
	if c.Sender.Name == "" {
		c.Sender.Name = d.Sender.Name
	}

	m := &c.Messages
	fillString(&m.Intro, d.Messages.Intro)
	fillString(&m.Win, d.Messages.Win)
	fillString(&m.Lose, d.Messages.Lose)
	fillString(&m.HugTitle, d.Messages.HugTitle)
	fillString(&m.HugSubtitle, d.Messages.HugSubtitle)

	c.PlayerCharacter = c.PlayerCharacter.withDefaults(d.PlayerCharacter)
	c.PartnerCharacter = c.PartnerCharacter.withDefaults(d.PartnerCharacter)

	t := &c.Theme
	fillString(&t.Background, d.Theme.Background)
	fillString(&t.CanvasBackground, d.Theme.CanvasBackground)
	fillString(&t.GroundColor, d.Theme.GroundColor)
	fillString(&t.HUDAccent, d.Theme.HUDAccent)
	if t.StarCount < 0 {
		t.StarCount = d.Theme.StarCount
	}
	if len(t.HeartColors) == 0 {
		t.HeartColors = d.Theme.HeartColors
	}
	return c
}

func (ch Character) withDefaults(d Character) Character {
	if len(ch.HairColors) < 3 {
		ch.HairColors = d.HairColors
	}
	fillString(&ch.SkinColor, d.SkinColor)
	fillString(&ch.OutfitColor, d.OutfitColor)
	fillString(&ch.OutfitHighlight, d.OutfitHighlight)
	fillString(&ch.AccentColor, d.AccentColor)
	fillString(&ch.ShirtColor, d.ShirtColor)
	fillString(&ch.TrouserColor, d.TrouserColor)
	fillString(&ch.ShoeColor, d.ShoeColor)
	fillString(&ch.HairStyle, d.HairStyle)
	return ch
}

func fillString(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

// LoseText renders the lose message for the given gap to the target.
func (m Messages) LoseText(remaining int) string {
	return strings.ReplaceAll(m.Lose, "{remaining}", strconv.Itoa(remaining))
}

// HugTitleText renders the celebration title for the given name.
func (m Messages) HugTitleText(name string) string {
	return strings.ReplaceAll(m.HugTitle, "{name}", name)
}

// Parse decodes a YAML document over the stock configuration, so keys that
// are not present keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}
