// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/tagged"
	"code.hybscloud.com/tagged/sock"
)

var errNoReply = errors.New("no reply")

// sendMessage sends msg to host:port and waits for the same number of bytes
// to come back.
func sendMessage(ctx context.Context, host string, port uint16, msg string, timeout time.Duration) tagged.Result[string, error] {
	return tagged.AndThenEither(sock.Dial(ctx, host, port), func(s *sock.Socket) tagged.Result[string, error] {
		defer s.Close()
		if _, err := s.SendString(msg).TryValue(); err != nil {
			return tagged.Err[string](err)
		}
		buf := make([]byte, len(msg))
		for read := 0; read < len(buf); {
			ready, err := s.Poll(timeout).TryValue()
			if err != nil {
				return tagged.Err[string](err)
			}
			if !ready {
				return tagged.Err[string](errors.Wrapf(errNoReply, "after %v", timeout))
			}
			n, err := s.Recv(buf[read:]).TryValue()
			if err != nil {
				return tagged.Err[string](err)
			}
			read += n
		}
		return tagged.Ok[string, error](string(buf))
	})
}

func newSendCmd() *cobra.Command {
	var timeout time.Duration
	c := &cobra.Command{
		Use:   "send <host> <port> <message>",
		Short: "send writes a message to an echo server and prints the reply",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := strconv.ParseUint(args[1], 10, 16)
			if err != nil {
				return errors.Wrapf(err, "parsing port %q", args[1])
			}
			reply, err := sendMessage(cmd.Context(), args[0], uint16(port), args[2], timeout).TryValue()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
	c.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "time to wait for the reply")
	return c
}
