package desk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineSource supplies command lines and answers to prompts. ReadLine returns
// io.EOF when input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
	Prompt(label string) (string, error)
}

// ScriptSource reads commands from a non-interactive stream. A prompt
// consumes the next line, so scripts can answer prompts inline.
type ScriptSource struct {
	scanner *bufio.Scanner
	echo    io.Writer
}

// NewScriptSource reads lines from r. When echo is non-nil, prompt labels
// are written to it so transcripts stay readable.
func NewScriptSource(r io.Reader, echo io.Writer) *ScriptSource {
	return &ScriptSource{scanner: bufio.NewScanner(r), echo: echo}
}

// ReadLine returns the next line without its trailing newline.
func (s *ScriptSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("read script: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Prompt answers with the next line, echoing label first when configured.
func (s *ScriptSource) Prompt(label string) (string, error) {
	if s.echo != nil {
		fmt.Fprintf(s.echo, "%s: ", label)
	}
	line, err := s.ReadLine()
	if s.echo != nil && err == nil {
		fmt.Fprintln(s.echo, line)
	}
	return line, err
}

// Terminal is an interactive LineSource with line editing and history.
type Terminal struct {
	rl     *readline.Instance
	prompt string
}

// TerminalOptions configures NewTerminal.
type TerminalOptions struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewTerminal opens a readline session with command-name completion.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "libris> "
	}
	items := make([]readline.PrefixCompleterInterface, 0, len(commandNames))
	for _, name := range commandNames {
		items = append(items, readline.PcItem(name))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       opts.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		Stdin:             opts.Stdin,
		Stdout:            opts.Stdout,
		Stderr:            opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize readline: %w", err)
	}
	return &Terminal{rl: rl, prompt: prompt}, nil
}

// ReadLine returns the next command. Ctrl+C on an empty line ends the
// session; on a partial line it discards the line.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if strings.TrimSpace(line) == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

// Prompt asks for one value. Ctrl+C answers blank, which cancels.
func (t *Terminal) Prompt(label string) (string, error) {
	t.rl.SetPrompt(label + ": ")
	defer t.rl.SetPrompt(t.prompt)

	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Stdout returns a writer that does not corrupt the edit line.
func (t *Terminal) Stdout() io.Writer {
	return t.rl.Stdout()
}

// Close ends the readline session and restores the terminal.
func (t *Terminal) Close() error {
	return t.rl.Close()
}
