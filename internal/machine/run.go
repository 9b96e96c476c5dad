package machine

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultSpeed is the default number of instructions executed per second.
	DefaultSpeed = 700

	// TimerFrequency is the rate of the delay and sound timers and of the
	// frontend polling in Hz.
	TimerFrequency = 60
)

// RunConfig controls the pacing of Run.
type RunConfig struct {
	Speed  int    // instructions per second, DefaultSpeed if not set
	Cycles uint64 // stop after this many steps, 0 runs without limit
}

// Run executes the program until the frontend requests to quit, the context
// is cancelled, the cycle limit is reached or a step returns an error.
// Timers are decremented and the frontend is polled at TimerFrequency,
// independently of the instruction rate. The screen is only rendered if it
// changed since the last frame.
func (m *Machine) Run(ctx context.Context, fe frontend.Frontend, cfg RunConfig) error {
	speed := cfg.Speed
	if speed <= 0 {
		speed = DefaultSpeed
	}
	interval := time.Second / time.Duration(speed)
	if interval <= 0 {
		interval = time.Nanosecond
	}

	cpuTicker := time.NewTicker(interval)
	defer cpuTicker.Stop()
	frameTicker := time.NewTicker(time.Second / TimerFrequency)
	defer frameTicker.Stop()

	m.logger.Debug("Starting run loop",
		log.Int("speed", speed),
		log.Hex("pc", m.cpu.PC()))

	dirty := true
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running machine: %w", ctx.Err())

		case <-cpuTicker.C:
			res, err := m.Step()
			if err != nil {
				return err
			}
			if res.Redraw {
				dirty = true
			}

			if cfg.Cycles > 0 && m.cycles >= cfg.Cycles {
				m.logger.Debug("Cycle limit reached", log.Hex("pc", m.cpu.PC()))
				return m.render(fe, dirty)
			}

		case <-frameTicker.C:
			m.cpu.TickTimers()

			input := fe.Poll()
			if input.Quit {
				return nil
			}
			if input.Pressed {
				m.cpu.SetKey(input.Key)
			} else {
				m.cpu.ReleaseKey()
			}

			if err := m.render(fe, dirty); err != nil {
				return err
			}
			dirty = false
		}
	}
}

func (m *Machine) render(fe frontend.Frontend, dirty bool) error {
	if !dirty {
		return nil
	}
	if err := fe.Render(m.cpu.Screen()); err != nil {
		return fmt.Errorf("rendering screen: %w", err)
	}
	return nil
}
