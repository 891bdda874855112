package main

import (
	"bufio"
	"checkmypass/config"
	"checkmypass/hibp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// readHidden reads one password from the terminal without echo.
var readHidden = func(prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "checkmypass",
		Usage:     "Check passwords against the Pwned Passwords corpus without sending them anywhere",
		ArgsUsage: "[--] [password...]",
		// passwords such as "help" must not be taken for a command
		HideHelpCommand: true,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file",
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "Range endpoint the hash prefix is appended to",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for each range request",
			},
			&cli.BoolFlag{
				Name:  "padding",
				Usage: "Ask the service to pad responses",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Hash mode: sha1 or ntlm",
			},
			&cli.BoolFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Usage:   "Read a password with hidden input",
			},
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "Read passwords from standard input, one per line",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	mode, err := hibp.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	passwords, err := collectPasswords(c)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		if err := cli.ShowAppHelp(c); err != nil {
			return err
		}
		return errors.New("no passwords given")
	}

	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	defer log.Sync()

	fetcher := hibp.NewFetcher(
		hibp.WithBaseURL(cfg.APIURL),
		hibp.WithTimeout(cfg.Timeout),
		hibp.WithUserAgent(cfg.UserAgent),
		hibp.WithPadding(cfg.Padding),
		hibp.WithMode(mode),
		hibp.WithLogger(log),
	)
	checker := hibp.NewChecker(fetcher, log)

	for _, password := range passwords {
		res, err := checker.Check(c.Context, password)
		if err != nil {
			return err
		}
		report(c.App.Writer, password, res)
	}
	return nil
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if c.IsSet("api-url") {
		cfg.APIURL = c.String("api-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("padding") {
		cfg.Padding = c.Bool("padding")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// collectPasswords gathers positional arguments first, then the prompted
// password, then stdin lines. Blank stdin lines are skipped.
func collectPasswords(c *cli.Context) ([]string, error) {
	passwords := c.Args().Slice()

	if c.Bool("prompt") {
		password, err := readHidden(c.App.ErrWriter)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}

	if c.Bool("stdin") {
		scanner := bufio.NewScanner(c.App.Reader)
		for scanner.Scan() {
			line := strings.TrimSuffix(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			passwords = append(passwords, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read passwords from stdin: %w", err)
		}
	}

	return passwords, nil
}

func report(w io.Writer, password string, res hibp.Result) {
	if res.Found() {
		fmt.Fprintf(w, "%s was found %d times. You should probs change your password.\n", password, res.Count)
		return
	}
	fmt.Fprintf(w, "%s was not found. Carry on, bub.\n", password)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
