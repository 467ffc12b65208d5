package app

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"

	"gol/internal/core"
	"gol/pkg/lifelike"
)

// Action is a user command understood by the Controller. Keyboard shortcuts
// and menu buttons both resolve to an Action.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionRules
	ActionReset
	ActionReseed
	ActionClear
	ActionSave
	ActionLoad
	ActionExit
	ActionMenu
	ActionTogglePause
	ActionStepOnce
	ActionSpeedUp
	ActionSpeedDown
	ActionToggleBoundary
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionStart:          "Start",
	ActionRules:          "Rules",
	ActionReset:          "Reset",
	ActionReseed:         "Reseed",
	ActionClear:          "Clear",
	ActionSave:           "Save",
	ActionLoad:           "Load",
	ActionExit:           "Exit",
	ActionMenu:           "Menu",
	ActionTogglePause:    "Pause",
	ActionStepOnce:       "Step",
	ActionSpeedUp:        "Faster",
	ActionSpeedDown:      "Slower",
	ActionToggleBoundary: "Boundary",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// MenuActions lists the buttons of the main menu in display order.
var MenuActions = []Action{ActionStart, ActionRules, ActionReset, ActionSave, ActionLoad, ActionExit}

type boundarySwitcher interface {
	Boundary() lifelike.Boundary
	SetBoundary(lifelike.Boundary)
}

type statusReporter interface {
	Status() string
}

// dragState remembers the last cell flipped while the mouse is held so a
// drag toggles each cell at most once in a row.
type dragState struct {
	active bool
	x, y   int
}

// Controller owns the interactive state around a simulation: menu and pause
// flags, the rule prompt, the playback speed and painting. It has no
// rendering dependencies so the GUI and tests drive it the same way.
type Controller struct {
	sim   core.Sim
	clock *core.FixedStep

	minTPS, maxTPS int
	seed           int64
	savePath       string

	menu      bool
	paused    bool
	tickOnce  bool
	quit      bool
	prompting bool
	prompt    []rune
	status    string
	statusAt  time.Time
	drag      dragState

	now     func() time.Time
	newSeed func() int64
	logf    func(format string, args ...any)
}

// NewController wraps sim using the speed, seed and save path from cfg. The
// menu starts open.
func NewController(sim core.Sim, cfg *Config) *Controller {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Controller{
		sim:      sim,
		clock:    core.NewFixedStep(cfg.TPS),
		minTPS:   cfg.MinTPS,
		maxTPS:   cfg.MaxTPS,
		seed:     cfg.Seed,
		savePath: cfg.SavePath,
		menu:     true,
		now:      time.Now,
		newSeed:  func() int64 { return time.Now().UnixNano() },
		logf:     log.Printf,
	}
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Execute performs a single user action.
func (c *Controller) Execute(a Action) {
	switch a {
	case ActionStart:
		c.menu = false
		c.paused = false
	case ActionRules:
		setter, ok := c.sim.(core.RuleSetter)
		if !ok {
			c.setStatus("%s has a fixed rule", c.sim.Name())
			return
		}
		c.menu = false
		c.prompting = true
		c.prompt = []rune(setter.Rule())
	case ActionReset:
		c.sim.Reset(c.seed)
		c.menu = false
		c.paused = false
		c.setStatus("reset with seed %d", c.seed)
	case ActionReseed:
		c.seed = c.newSeed()
		c.sim.Reset(c.seed)
		c.setStatus("reset with seed %d", c.seed)
	case ActionClear:
		clearer, ok := c.sim.(core.Clearer)
		if !ok {
			c.setStatus("%s cannot be cleared", c.sim.Name())
			return
		}
		clearer.Clear()
		c.paused = true
		c.setStatus("cleared")
	case ActionSave:
		c.save()
	case ActionLoad:
		c.load()
	case ActionExit:
		c.quit = true
	case ActionMenu:
		if c.prompting {
			c.CancelPrompt()
			return
		}
		c.menu = !c.menu
	case ActionTogglePause:
		c.paused = !c.paused
	case ActionStepOnce:
		c.paused = true
		c.tickOnce = true
	case ActionSpeedUp:
		c.setStatus("speed %d tps", c.clock.Adjust(1, c.minTPS, c.maxTPS))
	case ActionSpeedDown:
		c.setStatus("speed %d tps", c.clock.Adjust(-1, c.minTPS, c.maxTPS))
	case ActionToggleBoundary:
		sw, ok := c.sim.(boundarySwitcher)
		if !ok {
			return
		}
		next := lifelike.Toroidal
		if sw.Boundary() == lifelike.Toroidal {
			next = lifelike.Clamped
		}
		sw.SetBoundary(next)
		c.setStatus("boundary %s", next)
	}
}

func (c *Controller) save() {
	p, ok := c.sim.(core.Persister)
	if !ok {
		c.setStatus("%s cannot be saved", c.sim.Name())
		return
	}
	if err := p.Save(c.savePath); err != nil {
		c.logf("save %s: %v", c.savePath, err)
		c.setStatus("save failed: %v", err)
		return
	}
	c.setStatus("saved %s", c.savePath)
}

func (c *Controller) load() {
	p, ok := c.sim.(core.Persister)
	if !ok {
		c.setStatus("%s cannot be loaded", c.sim.Name())
		return
	}
	if err := p.Load(c.savePath); err != nil {
		c.logf("load %s: %v", c.savePath, err)
		c.setStatus("load failed: %v", err)
		return
	}
	c.paused = true
	c.setStatus("loaded %s", c.savePath)
}

// Tick advances the simulation when it is running and the clock says a
// generation is due. It reports whether a step happened.
func (c *Controller) Tick() bool {
	if c.quit || c.menu || c.prompting {
		return false
	}
	if c.tickOnce {
		c.tickOnce = false
		c.sim.Step()
		return true
	}
	if c.paused || !c.clock.ShouldStep() {
		return false
	}
	c.sim.Step()
	return true
}

// TypePrompt appends runes to the rule prompt.
func (c *Controller) TypePrompt(rs []rune) {
	if !c.prompting {
		return
	}
	c.prompt = append(c.prompt, rs...)
}

// Backspace drops the last rune of the rule prompt.
func (c *Controller) Backspace() {
	if c.prompting && len(c.prompt) > 0 {
		c.prompt = c.prompt[:len(c.prompt)-1]
	}
}

// CancelPrompt closes the rule prompt without changing the rule.
func (c *Controller) CancelPrompt() {
	c.prompting = false
	c.prompt = nil
	c.menu = true
}

// SubmitPrompt applies the text typed into the rule prompt.
func (c *Controller) SubmitPrompt() error {
	return c.ApplyRule(string(c.prompt))
}

// ApplyRule replaces the simulation's rule. On error the rule is left as
// it was and the prompt stays open so the text can be corrected.
func (c *Controller) ApplyRule(rule string) error {
	setter, ok := c.sim.(core.RuleSetter)
	if !ok {
		return errors.Errorf("%s has a fixed rule", c.sim.Name())
	}
	if err := setter.SetRule(rule); err != nil {
		c.setStatus("invalid rule: %v", err)
		return err
	}
	c.prompting = false
	c.prompt = nil
	c.menu = true
	c.setStatus("rule %s", setter.Rule())
	return nil
}

// PressCell starts a paint stroke at (x, y).
func (c *Controller) PressCell(x, y int) {
	c.drag = dragState{}
	if c.toggle(x, y) {
		c.drag = dragState{active: true, x: x, y: y}
	}
}

// DragCell continues a paint stroke. Holding the mouse on one cell flips it
// only once.
func (c *Controller) DragCell(x, y int) {
	if !c.drag.active || (c.drag.x == x && c.drag.y == y) {
		return
	}
	if c.toggle(x, y) {
		c.drag.x, c.drag.y = x, y
	}
}

// Release ends the current paint stroke.
func (c *Controller) Release() { c.drag = dragState{} }

func (c *Controller) toggle(x, y int) bool {
	editor, ok := c.sim.(core.CellEditor)
	if !ok {
		return false
	}
	return editor.Toggle(x, y)
}

func (c *Controller) setStatus(format string, args ...any) {
	c.status = fmt.Sprintf(format, args...)
	c.statusAt = c.now()
}

// statusTTL is how long a feedback message stays before the sim's own
// status shows again. Messages do not expire while the rule prompt is open.
const statusTTL = 3 * time.Second

// Status returns the latest feedback message, falling back to the sim's
// own status once the message has expired.
func (c *Controller) Status() string {
	if c.status != "" && (c.prompting || c.now().Sub(c.statusAt) < statusTTL) {
		return c.status
	}
	c.status = ""
	if r, ok := c.sim.(statusReporter); ok {
		return r.Status()
	}
	return ""
}

// MenuOpen reports whether the main menu is showing.
func (c *Controller) MenuOpen() bool { return c.menu }

// Paused reports whether playback is paused.
func (c *Controller) Paused() bool { return c.paused }

// Prompting reports whether the rule prompt is open.
func (c *Controller) Prompting() bool { return c.prompting }

// Prompt returns the text typed into the rule prompt so far.
func (c *Controller) Prompt() string { return string(c.prompt) }

// Quit reports whether Exit was requested.
func (c *Controller) Quit() bool { return c.quit }

// TPS returns the playback speed in generations per second.
func (c *Controller) TPS() int { return c.clock.TPS() }

// Seed returns the seed used by the next Reset.
func (c *Controller) Seed() int64 { return c.seed }

// SetTPS changes the playback speed within the configured range.
func (c *Controller) SetTPS(tps int) int {
	c.clock.SetTPS(min(max(tps, c.minTPS), c.maxTPS))
	return c.clock.TPS()
}
