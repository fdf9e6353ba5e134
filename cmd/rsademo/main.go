// Command rsademo encrypts short alphabetic messages with textbook RSA.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	textbookrsa "github.com/vaultsandbox/textbook-rsa"
)

// exitFunc is the function called to exit the program.
// It can be replaced in tests.
var exitFunc = os.Exit

// Config holds the I/O streams and environment file used by run.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	EnvFile string
}

// DefaultConfig returns the configuration used by main.
func DefaultConfig() *Config {
	return &Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

func run(args []string, cfg *Config) error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newApp(cfg).RunContext(ctx, args)
}

type command struct {
	cfg *Config
	log zerolog.Logger
}

func newApp(cfg *Config) *cli.App {
	cmd := &command{cfg: cfg, log: zerolog.Nop()}

	return &cli.App{
		Name:      "rsademo",
		Usage:     "Textbook RSA over a 27-symbol alphabet",
		Reader:    cfg.Stdin,
		Writer:    cfg.Stdout,
		ErrWriter: cfg.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"RSADEMO_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (console, json)",
				Value:   "console",
				EnvVars: []string{"RSADEMO_LOG_FORMAT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger, err := newLogger(cfg.Stderr, c.String("log-level"), c.String("log-format"))
			if err != nil {
				return err
			}
			cmd.log = logger
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "Encrypt a message file with a fresh keypair",
				ArgsUsage: "<inputfile> -o <outputfile>",
				Flags: append(keygenFlags(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path for the ciphertext",
					},
					&cli.BoolFlag{
						Name:  "seal",
						Usage: "Also write an ML-DSA-65 seal next to the ciphertext",
					},
				),
				Action: cmd.encrypt,
			},
			{
				Name:      "roundtrip",
				Usage:     "Encrypt and decrypt a message, checking the result",
				ArgsUsage: "[inputfile]",
				Flags:     keygenFlags(),
				Action:    cmd.roundtrip,
			},
			{
				Name:  "keygen",
				Usage: "Generate a keypair and print it as JSON",
				Flags: append(keygenFlags(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the keypair to this file instead of stdout",
					},
				),
				Action: cmd.keygen,
			},
			{
				Name:      "verify",
				Usage:     "Verify a ciphertext against its seal",
				ArgsUsage: "<artifact>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "seal",
						Usage: "Seal path (default: <artifact>" + textbookrsa.SealSuffix + ")",
					},
				},
				Action: cmd.verify,
			},
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func keygenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "Seed for reproducible key generation",
			EnvVars: []string{"RSADEMO_SEED"},
		},
		&cli.StringFlag{
			Name:    "passphrase",
			Usage:   "Derive key generation randomness from a passphrase",
			EnvVars: []string{"RSADEMO_PASSPHRASE"},
		},
		&cli.IntFlag{
			Name:    "min-index",
			Usage:   "Smallest prime index to draw (inclusive)",
			Value:   textbookrsa.DefaultMinPrimeIndex,
			EnvVars: []string{"RSADEMO_MIN_INDEX"},
		},
		&cli.IntFlag{
			Name:    "max-index",
			Usage:   "Largest prime index to draw (exclusive)",
			Value:   textbookrsa.DefaultMaxPrimeIndex,
			EnvVars: []string{"RSADEMO_MAX_INDEX"},
		},
		&cli.IntFlag{
			Name:    "max-attempts",
			Usage:   "Prime pairs to try before giving up",
			Value:   textbookrsa.DefaultMaxAttempts,
			EnvVars: []string{"RSADEMO_MAX_ATTEMPTS"},
		},
	}
}

func keygenOptions(c *cli.Context) ([]textbookrsa.Option, error) {
	if c.IsSet("seed") && c.IsSet("passphrase") {
		return nil, errors.New("--seed and --passphrase are mutually exclusive")
	}

	opts := []textbookrsa.Option{
		textbookrsa.WithPrimeIndexRange(c.Int("min-index"), c.Int("max-index")),
		textbookrsa.WithMaxAttempts(c.Int("max-attempts")),
	}
	switch {
	case c.IsSet("seed"):
		opts = append(opts, textbookrsa.WithSeed(c.Uint64("seed")))
	case c.IsSet("passphrase"):
		opts = append(opts, textbookrsa.WithPassphrase(c.String("passphrase")))
	}
	return opts, nil
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}

	switch format {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// encryptArgs returns the input and output paths. The output flag may also
// follow the input file, as in "encrypt message.txt -o encrypted.txt".
func encryptArgs(c *cli.Context) (input, output string, err error) {
	args := c.Args().Slice()
	output = c.String("output")

	if len(args) == 3 && output == "" && (args[1] == "-o" || args[1] == "--output") {
		args, output = args[:1], args[2]
	}
	if len(args) != 1 || output == "" {
		return "", "", errors.New("usage: rsademo encrypt <inputfile> -o <outputfile>")
	}
	return args[0], output, nil
}

// readMessage reads a message file, or stdin when path is empty or "-".
// A single trailing line ending is dropped.
func (cmd *command) readMessage(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.cfg.Stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", &textbookrsa.IOError{Op: "read", Path: path, Err: err}
	}

	text := string(data)
	if s, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(s, "\r")
	}
	return text, nil
}

func (cmd *command) generate(c *cli.Context) (*textbookrsa.Keypair, error) {
	opts, err := keygenOptions(c)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	kp, err := textbookrsa.GenerateKeypair(opts...)
	if err != nil {
		return nil, err
	}
	cmd.log.Debug().
		Uint64("p", kp.P).
		Uint64("q", kp.Q).
		Uint64("e", kp.E).
		Dur("took", time.Since(start)).
		Msg("generated keypair")
	return kp, nil
}

func (cmd *command) encrypt(c *cli.Context) error {
	input, output, err := encryptArgs(c)
	if err != nil {
		return err
	}

	text, err := cmd.readMessage(input)
	if err != nil {
		return err
	}
	blocks, length, err := textbookrsa.EncodeMessage(text)
	if err != nil {
		return err
	}
	cmd.log.Debug().Int("length", length).Int("blocks", len(blocks)).Msg("encoded message")

	kp, err := cmd.generate(c)
	if err != nil {
		return err
	}
	ciphertext := kp.Encrypt(blocks)

	// nothing is written once the run has been interrupted
	if err := c.Context.Err(); err != nil {
		return err
	}

	var seal *textbookrsa.Seal
	if c.Bool("seal") {
		if seal, err = textbookrsa.SealArtifact(textbookrsa.FormatCiphertext(ciphertext)); err != nil {
			return err
		}
	}

	if err := textbookrsa.WriteCiphertextFile(output, ciphertext); err != nil {
		return err
	}
	if seal != nil {
		sealPath := output + textbookrsa.SealSuffix
		if err := textbookrsa.WriteSealFile(sealPath, seal); err != nil {
			os.Remove(output)
			return err
		}
		cmd.log.Info().Str("seal", sealPath).Msg("wrote seal")
	}

	w := cmd.cfg.Stdout
	fmt.Fprintf(w, "Successfully encrypted %s\n", input)
	fmt.Fprintf(w, "Public Key (e, n): %s\n", kp.Public())
	fmt.Fprintf(w, "Private Key (d, n): %s\n", kp.Private())
	fmt.Fprintf(w, "Encrypted data saved to: %s\n", output)
	return nil
}

func (cmd *command) roundtrip(c *cli.Context) error {
	if c.Args().Len() > 1 {
		return errors.New("usage: rsademo roundtrip [inputfile]")
	}

	text, err := cmd.readMessage(c.Args().First())
	if err != nil {
		return err
	}
	opts, err := keygenOptions(c)
	if err != nil {
		return err
	}

	tr, err := textbookrsa.RoundTrip(text, opts...)
	if tr != nil {
		w := cmd.cfg.Stdout
		fmt.Fprintf(w, "Public Key (e, n): %s\n", tr.Keypair.Public())
		fmt.Fprintf(w, "Private Key (d, n): %s\n", tr.Keypair.Private())
		fmt.Fprintf(w, "Plaintext blocks: %s\n", textbookrsa.FormatCiphertext(tr.Plaintext))
		fmt.Fprintf(w, "Encrypted blocks: %s\n", textbookrsa.FormatCiphertext(tr.Ciphertext.Blocks))
		fmt.Fprintf(w, "Decrypted blocks: %s\n", textbookrsa.FormatCiphertext(tr.Decrypted))
		fmt.Fprintf(w, "Recovered text: %s\n", tr.Recovered)
	}
	return err
}

func (cmd *command) keygen(c *cli.Context) error {
	kp, err := cmd.generate(c)
	if err != nil {
		return err
	}

	if out := c.String("out"); out != "" {
		if err := textbookrsa.WriteKeypairFile(out, kp); err != nil {
			return err
		}
		cmd.log.Info().Str("path", out).Msg("wrote keypair")
		return nil
	}

	data, err := json.MarshalIndent(kp.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode keypair: %w", err)
	}
	_, err = fmt.Fprintf(cmd.cfg.Stdout, "%s\n", data)
	return err
}

func (cmd *command) verify(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("usage: rsademo verify <artifact> [--seal path]")
	}
	artifact := c.Args().First()

	sealPath := c.String("seal")
	if sealPath == "" {
		sealPath = artifact + textbookrsa.SealSuffix
	}

	if err := textbookrsa.VerifyArtifactFile(artifact, sealPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.cfg.Stdout, "Seal OK: %s\n", artifact)
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
