// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"code.hybscloud.com/tagged"
)

// scriptConsole replays fixed input lines and records output.
type scriptConsole struct {
	lines   []string
	out     []string
	history []string
}

func (c *scriptConsole) Println(msg string) {
	c.out = append(c.out, msg)
}

func (c *scriptConsole) Input() tagged.Maybe[string] {
	if len(c.lines) == 0 {
		return tagged.None[string]()
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	c.history = append(c.history, line)
	return tagged.Some(line)
}

func (c *scriptConsole) SaveHistory(path string) error {
	return writeHistory(path, c.history)
}

func (c *scriptConsole) LoadHistory(path string) error {
	lines, err := readHistory(path)
	c.history = append(c.history, lines...)
	return err
}

func (c *scriptConsole) Close() error { return nil }
