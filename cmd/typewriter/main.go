// Package main provides the typewriter command.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/typewriter/internal/app/contact"
	"github.com/osa030/typewriter/internal/app/typing"
	"github.com/osa030/typewriter/internal/app/viewport"
	"github.com/osa030/typewriter/internal/domain/phrase"
	"github.com/osa030/typewriter/internal/infra/config"
	"github.com/osa030/typewriter/internal/infra/logger"
	"github.com/osa030/typewriter/internal/infra/terminal"
)

const defaultConfigPath = "config/typewriter.yaml"

var (
	app        = kingpin.New("typewriter", "Typing text animator for the terminal")
	configPath = app.Flag("config", "Path to config file (default: "+defaultConfigPath+" if present)").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// run command (default)
	runCmd      = app.Command("run", "Animate the configured phrases (default)").Default()
	runDuration = runCmd.Flag("duration", "Stop after this long (0 runs until interrupted)").Default("0s").Duration()
	runSurface  = runCmd.Flag("surface", "Override the surface type (line, screen)").String()

	// phrases command
	phrasesCmd = app.Command("phrases", "List configured phrases and exit")

	// contact command
	contactCmd     = app.Command("contact", "Validate a contact form submission")
	contactName    = contactCmd.Flag("name", "Sender name").String()
	contactEmail   = contactCmd.Flag("email", "Sender email").String()
	contactMessage = contactCmd.Flag("message", "Message body").String()

	// section command
	sectionCmd    = app.Command("section", "Show page state at a scroll offset")
	sectionScroll = sectionCmd.Flag("scroll", "Scroll offset in pixels").Default("0").Int()
	sectionTarget = sectionCmd.Flag("target", "Print the scroll target of this section id").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Bootstrap logger until the config is known
	if _, err := logger.Init(loggerConfig(nil)); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}
	if command == runCmd.FullCommand() && *runSurface != "" {
		cfg.Surface.Type = *runSurface
	}
	if _, err := logger.Init(loggerConfig(cfg)); err != nil {
		zlog.Fatal().Msgf("Failed to initialize logger: %v", err)
	}

	switch command {
	case phrasesCmd.FullCommand():
		err = printPhrases(os.Stdout, cfg)
	case contactCmd.FullCommand():
		ok := validateContact(os.Stdout, cfg, contact.Form{
			Name:    *contactName,
			Email:   *contactEmail,
			Message: *contactMessage,
		})
		if !ok {
			os.Exit(1)
		}
	case sectionCmd.FullCommand():
		err = printSection(os.Stdout, cfg, *sectionScroll, *sectionTarget)
	default:
		err = run(cfg, *runDuration)
	}

	if err != nil {
		zlog.Error().Msgf("typewriter: %v", err)
		os.Exit(1)
	}
}

// loggerConfig merges config file settings with command-line flags.
// Flags win. A nil cfg yields the bootstrap configuration.
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.Config{Output: "stderr", Level: "info"}
	if cfg != nil {
		lc.Output = cfg.Log.Output
		lc.Level = cfg.Log.Level
	}
	if *verbose {
		lc.Level = "debug"
	}
	// The screen surface owns the terminal
	if cfg != nil && cfg.Surface.Type == terminal.TypeScreen && (lc.Output == "stderr" || lc.Output == "stdout") {
		lc.Output = "discard"
	}
	if *logfile != "" {
		lc.Output = *logfile
	}
	return lc
}

// loadConfig loads path, or the default config file if present, or built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			zlog.Debug().Msg("No config file, using built-in defaults")
			return config.Default()
		}
		path = defaultConfigPath
	}
	zlog.Info().Msgf("Loading config from %s", path)
	return config.Load(path)
}

// newAnimator builds the animator described by cfg.
func newAnimator(cfg *config.Config, surface typing.Surface) (*typing.Animator, error) {
	phrases, err := phrase.New(cfg.Typing.Phrases...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid phrases")
	}
	return typing.New(phrases, surface, typing.WithDelays(delaysFromConfig(cfg)))
}

func delaysFromConfig(cfg *config.Config) typing.Delays {
	return typing.Delays{
		Grow:       cfg.Typing.GrowDelay(),
		Shrink:     cfg.Typing.ShrinkDelay(),
		PauseFull:  cfg.Typing.FullPause(),
		PauseEmpty: cfg.Typing.EmptyPause(),
	}
}

// run animates until interrupted, the surface asks to quit, or duration elapses.
func run(cfg *config.Config, duration time.Duration) error {
	display, err := terminal.New(cfg.Surface.Type, cfg.Surface.Settings, os.Stdout)
	if err != nil {
		return errors.Wrap(err, "failed to create surface")
	}
	defer func() {
		if err := display.Close(); err != nil {
			zlog.Warn().Msgf("Failed to close surface: %v", err)
		}
	}()

	anim, err := newAnimator(cfg, display)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go logEvents(ctx, anim)

	if err := anim.Start(cfg.Typing.InitialDelay()); err != nil {
		return errors.Wrap(err, "failed to start animator")
	}
	zlog.Info().Msgf("Animator started: id=%s surface=%s phrases=%d", anim.ID(), cfg.Surface.Type, len(cfg.Typing.Phrases))

	var timeout <-chan time.Time
	if duration > 0 {
		timeout = time.After(duration)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-display.Done():
		zlog.Info().Msg("Quit requested by surface")
	case <-timeout:
		zlog.Info().Msgf("Duration %v elapsed", duration)
	}

	anim.Stop()
	zlog.Info().Msgf("Animator stopped: steps=%d", anim.Steps())
	return nil
}

// logEvents reports phrase transitions until ctx is cancelled.
func logEvents(ctx context.Context, anim *typing.Animator) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-anim.Events():
			zlog.Debug().Msgf("typing: %s: index=%d phrase=%q", ev.Type, ev.PhraseIndex, ev.Phrase)
		}
	}
}

// printPhrases lists the rotation and its timing.
func printPhrases(w io.Writer, cfg *config.Config) error {
	phrases, err := phrase.New(cfg.Typing.Phrases...)
	if err != nil {
		return errors.Wrap(err, "invalid phrases")
	}

	fmt.Fprintln(w, "Phrases:")
	for i := range phrases.Len() {
		fmt.Fprintf(w, "  %2d  %-30s (%d chars)\n", i, phrases.At(i), phrases.RuneLen(i))
	}
	fmt.Fprintf(w, "Cycle: %d steps, %v (initial delay %v)\n",
		phrases.CycleSteps(), typing.CycleDuration(phrases, delaysFromConfig(cfg)), cfg.Typing.InitialDelay())
	return nil
}

// validateContact prints validation results and reports whether the form was accepted.
func validateContact(w io.Writer, cfg *config.Config, form contact.Form) bool {
	res := contact.NewValidator(cfg.GetMessage).Validate(form)
	if res.Valid() {
		fmt.Fprintln(w, cfg.GetMessage("success"))
		return true
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "%-8s %s\n", e.Field+":", e.Message)
	}
	return false
}

// printSection prints the derived page state at scroll offset y.
func printSection(w io.Writer, cfg *config.Config, y int, target string) error {
	tr := trackerFromConfig(cfg)

	if target != "" {
		top, ok := tr.ScrollTarget(target)
		if !ok {
			return errors.Newf("unknown section: %s", target)
		}
		fmt.Fprintf(w, "scroll target for %s: %d\n", target, top)
		return nil
	}

	st := tr.At(y)
	active := st.ActiveSection
	if active == "" {
		active = "(none)"
	}
	fmt.Fprintf(w, "scroll:     %d\n", st.ScrollY)
	fmt.Fprintf(w, "navbar:     scrolled=%t\n", st.NavbarScrolled)
	fmt.Fprintf(w, "scroll-top: visible=%t\n", st.ScrollTopVisible)
	fmt.Fprintf(w, "active:     %s\n", active)
	return nil
}

func trackerFromConfig(cfg *config.Config) viewport.Tracker {
	tr := viewport.Tracker{
		NavbarThreshold:    cfg.Page.NavbarThreshold,
		ScrollTopThreshold: cfg.Page.ScrollTopThreshold,
		SectionOffset:      cfg.Page.SectionOffset,
		NavbarHeight:       cfg.Page.NavbarHeight,
	}
	for _, s := range cfg.Page.Sections {
		tr.Sections = append(tr.Sections, viewport.Section{ID: s.ID, Top: s.Top, Height: s.Height})
	}
	return tr
}
