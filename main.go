package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"

	"devconsole/pkg/console"
	"devconsole/pkg/console/command"
	"devconsole/pkg/console/config"
	"devconsole/pkg/console/layout"
	"devconsole/pkg/console/renderer"
	ebitenrenderer "devconsole/pkg/console/renderer/ebiten"
	"devconsole/pkg/console/renderer/tui"
)

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// demoCommands shows how a host adds its own commands next to the built-ins.
func demoCommands(c *console.Console) command.Module {
	return command.Module{
		command.Func("CMDecho", "Print the arguments back", func(args []string) error {
			c.Log(strings.Join(args, " "))
			return nil
		}, "words"),
		command.Func("CMDadd", "Add two numbers", func(args []string) error {
			if len(args) != 2 {
				return errors.Errorf("add needs 2 arguments, got %d", len(args))
			}
			a, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "parse %q", args[0])
			}
			b, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrapf(err, "parse %q", args[1])
			}
			c.Log(strconv.FormatFloat(a+b, 'f', -1, 64))
			return nil
		}, "a", "b"),
		command.Func("CMDwarn", "Log a warning", func(args []string) error {
			c.Warning(strings.Join(args, " "))
			return nil
		}, "message"),
	}
}

func main() {
	configPath := flag.String("config", "console.yaml", "path to the console configuration file")
	rendererName := flag.String("renderer", "", "front-end to use: ebiten or tui (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid renderer: %v", err)
		}
	}

	initGettext(cfg)

	var (
		measurer layout.Measurer
		fonts    *ebitenrenderer.Fonts
	)
	switch cfg.Renderer {
	case "tui":
		measurer = layout.CellMeasurer{CellWidth: cfg.FontSize * 0.6, LineHeight: cfg.FontSize}
	default:
		fonts, err = ebitenrenderer.LoadFonts(cfg.FontSize, cfg.FontSize)
		if err != nil {
			log.Fatalf("Failed to load fonts: %v", err)
		}
		measurer = fonts
	}

	c, err := console.New(cfg, console.Options{
		Measurer:  measurer,
		Clipboard: renderer.Clipboard(),
	})
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}
	c.RefreshCommands(demoCommands(c))

	var r renderer.Renderer
	switch cfg.Renderer {
	case "tui":
		r = tui.New(c, os.Stdin, os.Stdout)
	default:
		log.SetOutput(io.MultiWriter(os.Stderr, c.Writer()))
		r = ebitenrenderer.New(c, fonts)
	}

	if err := r.Init(); err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	if err := r.Run(); err != nil {
		log.Fatalf("Renderer exited: %v", err)
	}
}
