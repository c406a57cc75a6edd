package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"

	kc "kpair/crypto"
	"kpair/internal/service"
	"kpair/pairing"
	"kpair/peer"
	sec "kpair/security"
	"kpair/store"

	"github.com/sirupsen/logrus"
)

func main() {
	config := newConfig()
	log := config.logger()

	keys, err := store.OpenFile(config.storePath)
	if err != nil {
		log.WithError(err).Fatal("cannot open key store")
	}
	id, err := config.localID()
	if err != nil {
		log.WithError(err).Fatal("cannot load device ID")
	}

	cfg := pairing.Config{
		LocalID: id,
		Cap:     sec.Cap(config.dummy),
		Timeout: config.timeout,
		Log:     log,
	}
	model := pairing.WithConfirm(keys, newPrompt(os.Stdin, os.Stdout).confirm)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithField("id", id).Debug("local device")
	switch config.command {
	case "serve":
		err = serve(ctx, config, cfg, model, log)
	case "pair":
		err = pair(ctx, config, cfg, model, log)
	}
	if err != nil {
		log.WithError(err).Fatal(config.command + " failed")
	}
}

func serve(ctx context.Context, config Config, cfg pairing.Config, model pairing.IModel, log logrus.FieldLogger) error {
	srv := pairing.NewServer(config.addr, cfg, model, func(ctx context.Context, r pairing.Result) {
		defer r.Conn.Close()
		describe(log, r)
		// echo whatever the phone sends until it hangs up
		if _, err := io.Copy(r.Conn, r.Conn); err != nil {
			log.WithError(err).Debug("connection closed")
		}
	})

	events, dispose := srv.Events().Listen()
	defer dispose()
	srv.Start()
	defer srv.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev.State == service.Stopped && ev.Err != nil {
				return ev.Err
			}
		}
	}
}

func pair(ctx context.Context, config Config, cfg pairing.Config, model pairing.IModel, log logrus.FieldLogger) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", config.remote)
	if err != nil {
		return err
	}
	hsopt := pairing.HSOpt{Level: config.level(), Resume: config.resume}
	r, err := pairing.Initiate(ctx, &cfg, hsopt, model, conn)
	if err != nil {
		return err
	}
	defer r.Conn.Close()
	describe(log, r)

	const ping = "ping\n"
	if _, err := io.WriteString(r.Conn, ping); err != nil {
		return err
	}
	echo := make([]byte, len(ping))
	if _, err := io.ReadFull(r.Conn, echo); err != nil {
		return err
	}
	fmt.Printf("head unit answered %q over the paired channel\n", echo)
	return nil
}

func describe(log logrus.FieldLogger, r pairing.Result) {
	fp, _ := kc.Fingerprint(r.Conn.Key())
	log.WithFields(logrus.Fields{
		"remote":  r.RemoteID,
		"secure":  r.Conn.IsSecure(),
		"resumed": r.Resumed,
		"key":     fp,
	}).Info("device paired")
}

// prompt asks the operator to compare codes, one question at a time.
type prompt struct {
	mu    sync.Mutex
	once  sync.Once
	in    io.Reader
	out   io.Writer
	lines chan string
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{in: in, out: out, lines: make(chan string)}
}

// readLines feeds answers to whichever question is pending.
func (p *prompt) readLines() {
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
	close(p.lines)
}

func (p *prompt) confirm(ctx context.Context, remote peer.ID, code string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.once.Do(func() { go p.readLines() })

	fmt.Fprintf(p.out, "Device %s shows code %s. Does it match? [y/N] ", remote, code)
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return false, io.EOF
		}
		line = strings.ToLower(strings.TrimSpace(line))
		return line == "y" || line == "yes", nil
	}
}
