// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"code.hybscloud.com/tagged"
)

// Console is a line-oriented terminal with history.
type Console interface {
	Println(msg string)
	// Input reads one line. It is empty at end of input or on interrupt.
	Input() tagged.Maybe[string]
	SaveHistory(path string) error
	LoadHistory(path string) error
	Close() error
}

type readlineConsole struct {
	rl      *readline.Instance
	history []string
}

// NewConsole opens an interactive console on the process terminal.
func NewConsole(prompt string) (Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening console")
	}
	return &readlineConsole{rl: rl}, nil
}

func (c *readlineConsole) Println(msg string) {
	fmt.Fprintln(c.rl.Stdout(), msg)
}

func (c *readlineConsole) Input() tagged.Maybe[string] {
	line, err := c.rl.Readline()
	if err != nil {
		return tagged.None[string]()
	}
	line = strings.TrimSpace(line)
	if line != "" {
		c.remember(line)
	}
	return tagged.Some(line)
}

func (c *readlineConsole) remember(line string) {
	c.history = append(c.history, line)
	c.rl.SaveHistory(line)
}

func (c *readlineConsole) SaveHistory(path string) error {
	return writeHistory(path, c.history)
}

// LoadHistory appends the lines stored at path. A missing file is not an error.
func (c *readlineConsole) LoadHistory(path string) error {
	lines, err := readHistory(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		c.remember(line)
	}
	return nil
}

func (c *readlineConsole) Close() error {
	return c.rl.Close()
}

func readHistory(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening history")
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading history %s", path)
	}
	return lines, nil
}

func writeHistory(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return errors.Wrapf(err, "writing history %s", path)
	}
	return nil
}
