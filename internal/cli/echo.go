// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/tagged"
	"code.hybscloud.com/tagged/logging"
	"code.hybscloud.com/tagged/sock"
	"code.hybscloud.com/tagged/worker"
)

const (
	pollInterval = 100 * time.Millisecond
	echoBufSize  = 4096
)

// serveEcho echoes every connection accepted on ln until ctx is done,
// each on its own worker thread. It closes ln before returning.
func serveEcho(ctx context.Context, ln *sock.Listener, core tagged.Maybe[int], log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		ln.Close()
		return nil
	})
	g.Go(func() error {
		for id := 0; ; id++ {
			s, err := ln.Accept().TryValue()
			if err != nil {
				if errors.Is(err, sock.ErrClosed) && ctx.Err() != nil {
					return nil
				}
				return err
			}
			name := fmt.Sprintf("echo-%d", id)
			log.Info("accepted", zap.String("thread", name), zap.Stringer("peer", s.RemoteAddr()))
			th := worker.Spawn(ctx, worker.Options{Name: name, Core: core.Clone()}, func(ctx context.Context) error {
				return echoConn(ctx, s)
			})
			g.Go(func() error {
				res := th.Join()
				if err, failed := res.GetRight(); failed {
					log.Warn("connection failed", zap.Stringer("thread", th), zap.Error(err))
				}
				return nil
			})
		}
	})
	return g.Wait()
}

// echoConn writes back everything read from s until the peer closes or ctx
// is done.
func echoConn(ctx context.Context, s *sock.Socket) error {
	defer s.Close()
	buf := make([]byte, echoBufSize)
	for ctx.Err() == nil {
		ready, err := s.Poll(pollInterval).TryValue()
		if err != nil {
			return err
		}
		if !ready {
			continue
		}
		n, err := s.Recv(buf).TryValue()
		if errors.Is(err, sock.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := s.Send(buf[:n]).TryValue(); err != nil {
			return err
		}
	}
	return nil
}

func newEchoCmd(load func() (Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "echo",
		Short: "echo starts a TCP server which echos all messages",
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
			log := svc.Console()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := sock.Listen(ctx, cfg.Echo.Addr, cfg.Echo.Port).TryValue()
			if err != nil {
				return err
			}
			log.Info("listening", zap.Stringer("addr", ln.Addr()))
			return serveEcho(ctx, ln, cfg.Worker.Pin(), log)
		},
	}
}
