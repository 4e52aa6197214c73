// Command jscookie encodes and decodes document.cookie strings.
//
//	jscookie set [flags] NAME VALUE
//	jscookie get [-raw STRING] [NAME]
//	jscookie remove [flags] NAME
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/aatuh/jscookie"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rawStore serves a fixed cookie string and ignores writes.
type rawStore string

func (s rawStore) ReadCookie() string   { return string(s) }
func (s rawStore) WriteCookie(_ string) {}

// echoStore keeps nothing; set and remove only print what they write.
type echoStore struct{}

func (echoStore) ReadCookie() string   { return "" }
func (echoStore) WriteCookie(_ string) {}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "jscookie").Logger()
}

func main() {
	log := initLogger()
	if err := loadDotenv(".env"); err != nil {
		log.Fatal().Err(err).Msg("environment")
	}
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("jscookie failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, log zerolog.Logger) error {
	if len(args) == 0 {
		return errors.New("usage: jscookie set|get|remove [flags] ...")
	}
	switch args[0] {
	case "set":
		return runSet(args[1:], stdout, log)
	case "get":
		return runGet(args[1:], stdin, stdout)
	case "remove":
		return runRemove(args[1:], stdout, log)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// writeFlags are the attribute flags shared by set and remove.
type writeFlags struct {
	fs          *flag.FlagSet
	config      *string
	path        *string
	domain      *string
	expires     *float64
	secure      *bool
	sameSite    *string
	partitioned *bool
	identity    *bool
}

func newWriteFlags(name string) *writeFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &writeFlags{
		fs:          fs,
		config:      fs.String("config", "", "TOML file with default attributes"),
		path:        fs.String("path", "", "path attribute"),
		domain:      fs.String("domain", "", "domain attribute"),
		expires:     fs.Float64("expires", 0, "expires in days from now"),
		secure:      fs.Bool("secure", false, "secure flag"),
		sameSite:    fs.String("samesite", "", "sameSite: lax|strict|none"),
		partitioned: fs.Bool("partitioned", false, "partitioned flag"),
		identity:    fs.Bool("identity", false, "store the value without percent-encoding"),
	}
}

// jar builds a jar from config, then lets explicitly passed flags win.
func (w *writeFlags) jar(log zerolog.Logger) (*jscookie.Jar, error) {
	cfg, err := loadConfig(*w.config)
	if err != nil {
		return nil, err
	}
	w.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			cfg.Path = *w.path
		case "domain":
			cfg.Domain = *w.domain
		case "expires":
			cfg.ExpiresDays = *w.expires
		case "secure":
			cfg.Secure = *w.secure
		case "samesite":
			cfg.SameSite = *w.sameSite
		case "partitioned":
			cfg.Partitioned = *w.partitioned
		}
	})
	log.Debug().
		Str("path", cfg.Path).
		Str("domain", cfg.Domain).
		Float64("expires_days", cfg.ExpiresDays).
		Bool("secure", cfg.Secure).
		Str("same_site", cfg.SameSite).
		Msg("cookie defaults")

	jar, err := jscookie.NewFromConfig(cfg, echoStore{})
	if err != nil {
		return nil, err
	}
	if *w.identity {
		jar = jar.WithConverter(jscookie.IdentityConverter)
	}
	return jar, nil
}

func runSet(args []string, stdout io.Writer, log zerolog.Logger) error {
	w := newWriteFlags("set")
	if err := w.fs.Parse(args); err != nil {
		return err
	}
	if w.fs.NArg() != 2 {
		return errors.New("usage: jscookie set [flags] NAME VALUE")
	}
	jar, err := w.jar(log)
	if err != nil {
		return err
	}
	raw, _ := jar.Set(w.fs.Arg(0), w.fs.Arg(1))
	_, err = fmt.Fprintln(stdout, raw)
	return err
}

func runRemove(args []string, stdout io.Writer, log zerolog.Logger) error {
	w := newWriteFlags("remove")
	if err := w.fs.Parse(args); err != nil {
		return err
	}
	if w.fs.NArg() != 1 {
		return errors.New("usage: jscookie remove [flags] NAME")
	}
	jar, err := w.jar(log)
	if err != nil {
		return err
	}
	// Remove discards the written string; Set with the same attributes
	// produces it for printing.
	raw, _ := jar.Set(w.fs.Arg(0), "", jscookie.NewAttributes().WithExpires(-1))
	_, err = fmt.Fprintln(stdout, raw)
	return err
}

func runGet(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	rawFlag := fs.String("raw", "", "cookie string; read from stdin when empty")
	identity := fs.Bool("identity", false, "return values without percent-decoding")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.New("usage: jscookie get [-raw STRING] [NAME]")
	}

	raw := *rawFlag
	if raw == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		raw = strings.TrimRight(string(data), "\r\n")
	}

	jar := jscookie.New(rawStore(raw))
	if *identity {
		jar = jar.WithConverter(jscookie.IdentityConverter)
	}

	if fs.NArg() == 1 {
		value, ok := jar.Get(fs.Arg(0))
		if !ok {
			return fmt.Errorf("%w: %s", jscookie.ErrNotFound, fs.Arg(0))
		}
		_, err := fmt.Fprintln(stdout, value)
		return err
	}

	out, err := json.MarshalIndent(jar.All(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
