// Package store persists the player's customization between runs.
package store

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// AppName is the gdata application name used for the save location.
const AppName = "pixellove"

const (
	customizationObject   = "customization"
	customizationProperty = "current"
)

// Customization is the part of the configuration the player can edit.
type Customization struct {
	Player           config.PlayerInfo `yaml:"player"`
	Sender           config.SenderInfo `yaml:"sender"`
	Messages         config.Messages   `yaml:"messages"`
	PlayerCharacter  config.Character  `yaml:"playerCharacter"`
	PartnerCharacter config.Character  `yaml:"partnerCharacter"`
	MusicEnabled     bool              `yaml:"musicEnabled"`
}

// FromConfig captures the editable part of cfg. Music starts enabled.
func FromConfig(cfg config.Config) Customization {
	return Customization{
		Player:           cfg.Player,
		Sender:           cfg.Sender,
		Messages:         cfg.Messages,
		PlayerCharacter:  cfg.PlayerCharacter,
		PartnerCharacter: cfg.PartnerCharacter,
		MusicEnabled:     true,
	}
}

// Apply returns cfg with the customization laid over it.
func (c Customization) Apply(cfg config.Config) config.Config {
	cfg.Player = c.Player
	cfg.Sender = c.Sender
	cfg.Messages = c.Messages
	cfg.PlayerCharacter = c.PlayerCharacter
	cfg.PartnerCharacter = c.PartnerCharacter
	return cfg.WithDefaults()
}

// Store loads and saves a Customization. Without a gdata manager it keeps
// the last saved value in memory only.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	logger  *log.Logger
	mem     *Customization
}

// New creates a store backed by manager, which may be nil.
func New(manager *gdata.Manager, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{manager: manager, logger: logger}
}

// Open creates a store in the per-user data directory of AppName. When the
// directory cannot be used the store falls back to memory and the error is
// returned alongside it.
func Open(logger *log.Logger) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return New(nil, logger), fmt.Errorf("failed to open save data: %w", err)
	}
	return New(manager, logger), nil
}

// Persistent reports whether saves survive the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load returns the saved customization decoded over FromConfig(base), so
// fields missing from the save keep base values. Nothing saved yields
// FromConfig(base). Corrupt data yields FromConfig(base) and an error.
func (s *Store) Load(base config.Config) (Customization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := FromConfig(base)
	if s.manager == nil {
		if s.mem != nil {
			return *s.mem, nil
		}
		return c, nil
	}

	if !s.manager.ObjectPropExists(customizationObject, customizationProperty) {
		return c, nil
	}
	data, err := s.manager.LoadObjectProp(customizationObject, customizationProperty)
	if err != nil {
		return c, fmt.Errorf("failed to load customization: %w", err)
	}
	loaded := c
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("Discarding corrupt customization", "err", err)
		return c, fmt.Errorf("failed to unmarshal customization: %w", err)
	}
	return loaded, nil
}

// Save writes c.
func (s *Store) Save(c Customization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		s.mem = &c
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal customization: %w", err)
	}
	if err := s.manager.SaveObjectProp(customizationObject, customizationProperty, data); err != nil {
		return fmt.Errorf("failed to save customization: %w", err)
	}
	s.logger.Debug("Customization saved")
	return nil
}
