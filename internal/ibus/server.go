//go:build linux

package ibus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/hieple7985/hip-key/internal/config"
	"github.com/hieple7985/hip-key/internal/dict"
	"github.com/hieple7985/hip-key/internal/logging"
)

// Server owns the D-Bus connection and hands out engines to IBus.
type Server struct {
	logger *logging.Logger

	mu      sync.Mutex
	cfg     *config.Config
	conn    *dbus.Conn
	store   *dict.Store
	serial  uint32
	engines []*Engine
}

// NewServer prepares a server. The dictionary is opened here when
// enabled; failure to open it only disables candidates.
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}

	if cfg.Dictionary.Enabled {
		path := cfg.DictionaryPath()
		store, err := dict.Open(path)
		if err != nil {
			logger.Warn("dictionary unavailable", "path", path, "error", err)
		} else {
			s.store = store
		}
	}

	return s
}

// Start connects to the session bus, claims the bus name, and exports
// the engine factory.
func (s *Server) Start() error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}

	reply, err := conn.RequestName(HipkeyBusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return fmt.Errorf("request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return errors.New("bus name already taken, is another instance running?")
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	factory := &Factory{server: s}
	if err := conn.Export(factory, "/org/freedesktop/IBus/Factory", IBusFactoryInterface); err != nil {
		return fmt.Errorf("export factory: %w", err)
	}

	s.logger.Info("engine factory exported", "bus_name", HipkeyBusName)
	return nil
}

// UpdateConfig applies a reloaded configuration to every live engine.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	engines := make([]*Engine, len(s.engines))
	copy(engines, s.engines)
	s.mu.Unlock()

	for _, e := range engines {
		e.SetConfig(cfg)
	}

	s.logger.Info("configuration reloaded", "method", cfg.Input.Method)
}

func (s *Server) createEngine() (dbus.ObjectPath, error) {
	s.mu.Lock()
	s.serial++
	path := dbus.ObjectPath(fmt.Sprintf("/org/freedesktop/IBus/Engine/%d", s.serial))
	engine := newEngine(s.conn, path, s.cfg, s.store, s.logger)
	s.engines = append(s.engines, engine)
	conn := s.conn
	s.mu.Unlock()

	if err := conn.Export(engine, path, IBusEngineInterface); err != nil {
		return "", fmt.Errorf("export engine: %w", err)
	}

	s.logger.Info("engine created", "path", string(path))
	return path, nil
}

// Close flushes every engine's pending composition and releases the bus
// and dictionary.
func (s *Server) Close() error {
	s.mu.Lock()
	engines := make([]*Engine, len(s.engines))
	copy(engines, s.engines)
	conn := s.conn
	store := s.store
	s.conn = nil
	s.store = nil
	s.mu.Unlock()

	for _, e := range engines {
		e.mu.Lock()
		e.commitPendingLocked()
		e.mu.Unlock()
	}

	var firstErr error
	if conn != nil {
		if err := conn.Close(); err != nil {
			firstErr = err
		}
	}
	if store != nil {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Factory implements org.freedesktop.IBus.Factory.
type Factory struct {
	server *Server
}

// CreateEngine hands IBus a fresh engine object path.
func (f *Factory) CreateEngine(name string) (dbus.ObjectPath, *dbus.Error) {
	if name != HipkeyEngineName {
		return "", dbus.NewError("org.freedesktop.IBus.NoEngine",
			[]interface{}{"unknown engine: " + name})
	}

	path, err := f.server.createEngine()
	if err != nil {
		return "", dbus.NewError("org.freedesktop.IBus.Error",
			[]interface{}{err.Error()})
	}

	return path, nil
}
