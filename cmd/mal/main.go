package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/xyproto/vt"
	"golang.org/x/term"

	mal "github.com/nooranasrin/mal"
)

const (
	appName     = "mal"
	historyFile = ".mal_history"
	historyEnv  = "MAL_HISTORY"
	promptMain  = "user> "
	promptCont  = "  ... "
)

var banner = fmt.Sprintf("mal %s REPL\nCtrl+C cancels input, Ctrl+D exits.", mal.Version)

// palette colours REPL output; the zero value prints text unchanged.
type palette struct{ on bool }

func (p palette) result(s string) string { return p.paint(vt.Blue, s) }
func (p palette) err(s string) string    { return p.paint(vt.LightRed, s) }
func (p palette) banner(s string) string { return p.paint(vt.LightGreen, s) }

func (p palette) paint(c vt.AttributeColor, s string) string {
	if !p.on {
		return s
	}
	return c.Get(s)
}

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(nil))
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(mal.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		if strings.HasPrefix(cmd, "-") {
			fmt.Fprintf(os.Stderr, "%s: unknown flag %q\n", appName, cmd)
			usage()
			os.Exit(2)
		}
		// mal <file> [args...]
		os.Exit(cmdRun(os.Args[1:]))
	}
}

func usage() {
	fmt.Printf(`mal %s (built %s)

Usage:
  %s                                          Start the REPL.
  %s <file.mal> [args...]                     Run a program.
  %s run [-max-depth N] <file.mal> [--] [args...]
  %s repl [-no-color] [-history PATH] [-max-depth N]
  %s version                                  Print the compiled version

`, mal.Version, mal.BuildDate, appName, appName, appName, appName, appName)
}

func newRuntime(maxDepth int) (*mal.Interpreter, error) {
	ip, err := mal.NewRuntime()
	if err != nil {
		return nil, err
	}
	ip.MaxDepth = maxDepth
	return ip, nil
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	maxDepth := fs.Int("max-depth", mal.DefaultMaxDepth, "maximum nested evaluation depth (0 disables)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	args = fs.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.mal> [--] [args...]\n", appName)
		return 2
	}

	file := args[0]
	argv := args[1:]
	if len(argv) > 0 && argv[0] == "--" {
		argv = argv[1:]
	}

	ip, err := newRuntime(*maxDepth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	ip.SetArgv(argv)

	if _, err := ip.LoadFile(file); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, pe.Err)
			return 1
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func historyPath(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if p := os.Getenv(historyEnv); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	noColor := fs.Bool("no-color", false, "disable coloured output")
	hist := fs.String("history", "", "history file (default $"+historyEnv+" or ~/"+historyFile+")")
	maxDepth := fs.Int("max-depth", mal.DefaultMaxDepth, "maximum nested evaluation depth (0 disables)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	pal := palette{on: !*noColor && term.IsTerminal(int(os.Stdout.Fd()))}

	ip, err := newRuntime(*maxDepth)
	if err != nil {
		fmt.Fprintln(os.Stderr, pal.err(err.Error()))
		return 1
	}

	fmt.Println(pal.banner(banner))

	histPath := historyPath(*hist)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		out, err := ip.Rep(code)
		if errors.Is(err, mal.ErrEmptyInput) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, pal.err(mal.WrapErrorWithName(err, "<repl>", code).Error()))
			continue
		}
		fmt.Println(pal.result(out))
	}
	return 0
}

// readByParseProbe keeps prompting while the buffered text is an incomplete
// form, so a list can be typed across several lines.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the pending input.
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := mal.ReadAll(src); perr != nil && mal.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
