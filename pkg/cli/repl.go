package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/config"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/db"
)

const oncePrompt = "Enter command: "

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isExit(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}

// runOnce reads exactly one line, runs it and returns
func runOnce(session *db.DB, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, oncePrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read command: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	fmt.Fprint(out, db.FormatResult(session.Execute(line)))
	return nil
}

// runLines runs every line of in until EOF or an exit command
func runLines(session *db.DB, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isExit(strings.TrimSpace(line)) {
			break
		}

		fmt.Fprint(out, db.FormatResult(session.Execute(line)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("CREATE TABLE"),
	readline.PcItem("DROP TABLE"),
	readline.PcItem("INSERT INTO"),
	readline.PcItem("SELECT"),
	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

// runInteractive is the terminal REPL with line editing and history
func runInteractive(session *db.DB, cfg *config.Config, out io.Writer) error {
	if cfg.HistoryFile != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0o700)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return fmt.Errorf("init line editor: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, "Toy SQL catalog")
	fmt.Fprintln(out, "Type 'exit' or 'quit' to exit the program")
	fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if isExit(strings.TrimSpace(line)) {
			break
		}

		fmt.Fprint(out, db.FormatResult(session.Execute(line)))
	}

	fmt.Fprintln(out, "Goodbye!")
	return nil
}
