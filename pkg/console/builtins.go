package console

import (
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"

	"devconsole/pkg/console/command"
	"devconsole/pkg/console/logbuf"
)

// Version is set at build time with -ldflags "-X devconsole/pkg/console.Version=..."
var Version = "dev"

// builtins is the command set every console ships with.
func (c *Console) builtins() command.Module {
	return command.Module{
		command.Func("CMDabout", "About the console", c.cmdAbout),
		command.Func("CMDhelp", "How to use the console", c.cmdHelp),
		command.Func("CMDhello", "Hello!", c.cmdHello),
		command.Func("CMDclear", "Completely clears the console", c.cmdClear),
		command.Func("CMDlist", "List all non hidden commands", c.cmdList),
		command.Func("CMDlist-raw", "List all non hidden commands without any markup or descriptions", c.cmdListRaw),
		command.Func("CMDquit", "Quit the current application", c.cmdQuit),
		command.Func("CMDreset-geometry", "Reset the position & size of the console", c.cmdResetGeometry),
		command.HiddenFunc("CMDmatrix", "Hack the matrix", c.cmdMatrix),
		command.HiddenFunc("CMDstop-matrix", "Stop hacking the matrix", c.cmdStopMatrix),
	}
}

// noArgs rejects stray tokens for commands that take none
func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return errors.New(gotext.Get("%s takes no arguments, got %d", name, len(args)))
	}
	return nil
}

func (c *Console) cmdAbout(args []string) error {
	c.Log(gotext.Get("Developer Console | ver: %s", Version))
	c.Log(gotext.Get("Type list to see the available commands."))
	return nil
}

func (c *Console) cmdHelp(args []string) error {
	c.Log(gotext.Get("To add your own command, declare it with command.Func in a command.Module."))
	c.Log(gotext.Get("Its name must start with <b>%s</b>; the rest of the name is what you type.", command.Prefix))
	c.Log(gotext.Get("Pass your modules to console.New, or call RefreshCommands to swap them at runtime:"))
	c.Log("<b>c.RefreshCommands(mygame.Commands())</b>").SetColor(c.palette.Success)
	c.Log(gotext.Get("Arguments are split on whitespace and handed to the handler as strings."))
	c.Log(gotext.Get("A handler that returns an error or panics is reported here; the console keeps running."))
	c.Log(gotext.Get("Send messages to the console with Log, Warning, Error or Exception, or route the log package to Writer."))
	return nil
}

func (c *Console) cmdHello(args []string) error {
	c.Log("Hello World!")
	return nil
}

func (c *Console) cmdClear(args []string) error {
	if err := noArgs("clear", args); err != nil {
		return err
	}
	c.buffer.Clear()
	return nil
}

func (c *Console) cmdList(args []string) error {
	for _, d := range c.registry.List() {
		c.Log(command.FormatMarkup(d))
	}
	return nil
}

func (c *Console) cmdListRaw(args []string) error {
	for _, line := range c.registry.ListRaw() {
		c.Log(line)
	}
	return nil
}

func (c *Console) cmdQuit(args []string) error {
	c.RequestQuit()
	return nil
}

func (c *Console) cmdResetGeometry(args []string) error {
	if err := noArgs("reset-geometry", args); err != nil {
		return err
	}
	c.geometry.Reset()
	return nil
}

// cmdMatrix fills the log with one full window of tokens and starts the
// animation that keeps replacing it.
func (c *Console) cmdMatrix(args []string) error {
	now := c.now
	if now.IsZero() {
		now = time.Now()
	}
	c.buffer.Clear()
	c.buffer.AppendColored(logbuf.SeverityInfo, c.matrix.frame(c.geometry.Rects().Window, 1), "", c.palette.Matrix)
	c.matrix.ticker.Start(now)
	return nil
}

func (c *Console) cmdStopMatrix(args []string) error {
	c.matrix.ticker.Stop()
	c.buffer.Clear()
	c.Log(gotext.Get("Welcome to the real world.")).SetColor(c.palette.Matrix)
	return nil
}
