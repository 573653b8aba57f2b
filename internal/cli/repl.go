// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/tagged"
	"code.hybscloud.com/tagged/logging"
	"code.hybscloud.com/tagged/ring"
)

type opcode uint8

const (
	opPush opcode = iota
	opPop
	opFront
	opLen
	opHelp
	opQuit
)

type command struct {
	op  opcode
	arg string
}

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingValue   = errors.New("push needs a value")
	errUnexpectedArg  = errors.New("unexpected argument")
)

var opcodes = map[string]opcode{
	"push":  opPush,
	"pop":   opPop,
	"front": opFront,
	"len":   opLen,
	"help":  opHelp,
	"quit":  opQuit,
	"exit":  opQuit,
}

const helpText = `push <value>  append value, evicting the oldest when full
pop           remove and print the oldest value
front         print the oldest value
len           print the number of queued values
help          print this text
quit          leave`

func parseCommand(line string) tagged.Result[command, error] {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	op, ok := opcodes[name]
	if !ok {
		return tagged.Err[command](errors.Wrapf(errUnknownCommand, "%q", name))
	}
	switch {
	case op == opPush && arg == "":
		return tagged.Err[command](errMissingValue)
	case op != opPush && arg != "":
		return tagged.Err[command](errors.Wrapf(errUnexpectedArg, "%s %q", name, arg))
	}
	return tagged.Ok[command, error](command{op: op, arg: arg})
}

// repl drives a ring of strings from console input.
type repl struct {
	con   Console
	queue *ring.Ring[string]
	log   *zap.Logger
}

// run reads commands until quit or end of input.
func (r *repl) run() {
	for {
		in := r.con.Input()
		line, ok := in.Get()
		if !ok {
			return
		}
		if line == "" {
			continue
		}
		more := tagged.MatchEither(parseCommand(line), r.exec, func(err error) bool {
			r.con.Println("error: " + err.Error())
			return true
		})
		if !more {
			return
		}
	}
}

func (r *repl) exec(c command) bool {
	printValue := func(v *string) { r.con.Println(*v) }
	printEmpty := func() { r.con.Println("(empty)") }

	switch c.op {
	case opPush:
		evicted := r.queue.Push(c.arg)
		evicted.AndThen(func(v *string) {
			r.log.Debug("evicted", zap.String("value", *v))
			r.con.Println("evicted " + *v)
		})
	case opPop:
		v := r.queue.Pop()
		v.AndThen(printValue).OrElse(printEmpty)
	case opFront:
		v := r.queue.Front()
		v.AndThen(printValue).OrElse(printEmpty)
	case opLen:
		r.con.Println(strconv.Itoa(r.queue.Len()))
	case opHelp:
		r.con.Println(helpText)
	case opQuit:
		return false
	}
	return true
}

func newReplCmd(load func() (Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "repl starts an interactive queue console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			svc, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer svc.Close()

			con, err := NewConsole("> ")
			if err != nil {
				return err
			}
			defer con.Close()
			if cfg.History.File != "" {
				if err := con.LoadHistory(cfg.History.File); err != nil {
					svc.Console().Warn("history not loaded", zap.Error(err))
				}
			}

			r := &repl{con: con, queue: ring.New[string](cfg.Ring.Capacity), log: svc.Console()}
			r.run()

			if cfg.History.File != "" {
				return con.SaveHistory(cfg.History.File)
			}
			return nil
		},
	}
}
