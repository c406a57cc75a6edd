package main

import (
	"fmt"
	"os"
	"time"

	"kpair/peer"
	sec "kpair/security"

	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"
)

// Config stores values related to program configuration
type Config struct {
	command string
	remote  string

	addr      string
	dummy     bool
	storePath string
	resume    bool
	timeout   time.Duration
	verbose   bool
}

func newConfig() Config {
	config := Config{}

	pflag.Usage = printUsage

	addr := pflag.StringP("addr", "a", "127.0.0.1:7390", "address the head unit listens on")
	dummy := pflag.BoolP("dummy", "D", false, "allow the insecure pass-through handshake (testing only)")
	storePath := pflag.StringP("store", "s", "kpair.keys", "file holding the keys of paired devices")
	resume := pflag.BoolP("resume", "r", false, "reconnect with a saved key instead of comparing codes")
	timeout := pflag.Float64P("timeout", "t", DefaultTimeoutSeconds, "time allowed for one pairing (in seconds)")
	verbose := pflag.BoolP("verbose", "v", false, "log handshake details")

	pflag.Parse()
	config.addr = *addr
	config.dummy = *dummy
	config.storePath = *storePath
	config.resume = *resume
	config.timeout = time.Duration(*timeout * float64(time.Second))
	config.verbose = *verbose

	args := pflag.Args()
	if len(args) < 1 {
		eprintln("Too few arguments")
		printUsage()
		os.Exit(1)
	}
	config.command = args[0]
	switch config.command {
	case "serve":
	case "pair":
		if len(args) < 2 {
			eprintln("pair needs the address of the head unit")
			os.Exit(1)
		}
		config.remote = args[1]
	default:
		eprintln("Unknown command", config.command)
		printUsage()
		os.Exit(1)
	}

	return config
}

const DefaultTimeoutSeconds = 120.0

func (c Config) level() sec.Level {
	if c.dummy {
		return sec.Whatever
	}
	return sec.RequireSecure
}

func (c Config) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// localID loads the device ID kept next to the key store, creating it on
// first use.
func (c Config) localID() (peer.ID, error) {
	path := c.storePath + ".id"
	b, err := os.ReadFile(path)
	if err == nil {
		return peer.Decode(string(b))
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	id := peer.New()
	if err := os.WriteFile(path, []byte(id.String()), 0o600); err != nil {
		return "", err
	}
	return id, nil
}

func eprintln(a ...any) {
	fmt.Fprintln(os.Stderr, a...)
}

func printUsage() {
	eprintln("Usage: " + os.Args[0] + " [OPTION]... serve")
	eprintln("       " + os.Args[0] + " [OPTION]... pair HEAD_UNIT:PORT")
	eprintln("Flags:")
	pflag.PrintDefaults()
	eprintln("Example:")
	eprintln("    " + os.Args[0] + " -a 0.0.0.0:7390 serve")
	eprintln("    " + os.Args[0] + " pair 192.168.1.20:7390")
}
