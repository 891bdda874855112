package main

import (
	"checkmypass/config"
	"checkmypass/hibp"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const maxPrefix = 1 << (4 * config.HASH_PREFIX_LENGTH)

// generatePrefixes returns n consecutive range prefixes starting at start.
func generatePrefixes(start int64, n int) []string {
	var prefixes []string
	formatter_str := fmt.Sprintf("%%0%dX", config.HASH_PREFIX_LENGTH)
	for i := start; i < start+int64(n) && i < maxPrefix; i++ {
		prefixes = append(prefixes, fmt.Sprintf(formatter_str, i))
	}
	return prefixes
}

func parsePrefix(s string) (string, error) {
	s = strings.ToUpper(s)
	if len(s) != config.HASH_PREFIX_LENGTH {
		return "", fmt.Errorf("prefix %q is not %d characters long", s, config.HASH_PREFIX_LENGTH)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", fmt.Errorf("prefix %q is not a valid hex number", s)
	}
	return s, nil
}

// describeRange prints the size of the k-anonymity set behind each prefix.
func describeRange(ctx context.Context, fetcher *hibp.Fetcher, prefixes []string, w io.Writer) error {
	for _, prefix := range prefixes {
		body, err := fetcher.Fetch(ctx, prefix)
		if err != nil {
			return err
		}
		candidates, err := hibp.ParseCandidates(body)
		if err != nil {
			return fmt.Errorf("prefix %s: %w", prefix, err)
		}
		fmt.Fprintf(w, "%s candidates=%d padded=%d\n", prefix, len(candidates)-candidates.Padded(), candidates.Padded())
	}
	return nil
}

func main() {
	api_url := flag.String("api-url", config.RANGE_API_URL, "Range endpoint the prefix is appended to")
	timeout := flag.Duration("timeout", config.HTTP_CLIENT_TIMEOUT, "Timeout for each range request")
	padding := flag.Bool("padding", false, "Ask the service to pad responses")
	mode_str := flag.String("mode", config.DEFAULT_MODE, "Hash mode: sha1 or ntlm")
	start_from := flag.String("from", "", "First prefix to enumerate from")
	count := flag.Int("n", 1, "Number of prefixes to enumerate with -from")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to create logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	mode, err := hibp.ParseMode(*mode_str)
	if err != nil {
		log.Fatal("invalid mode", zap.Error(err))
	}

	var prefixes []string
	for _, arg := range flag.Args() {
		prefix, err := parsePrefix(arg)
		if err != nil {
			log.Fatal("invalid prefix", zap.Error(err))
		}
		prefixes = append(prefixes, prefix)
	}
	if *start_from != "" {
		prefix, err := parsePrefix(*start_from)
		if err != nil {
			log.Fatal("invalid -from prefix", zap.Error(err))
		}
		if *count <= 0 {
			log.Fatal("-n must be positive")
		}
		start_from_int, _ := strconv.ParseInt(prefix, 16, 64)
		prefixes = append(prefixes, generatePrefixes(start_from_int, *count)...)
	}
	if len(prefixes) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	fetcher := hibp.NewFetcher(
		hibp.WithBaseURL(*api_url),
		hibp.WithTimeout(*timeout),
		hibp.WithPadding(*padding),
		hibp.WithMode(mode),
		hibp.WithLogger(log),
	)
	log.Debug("describing ranges", zap.Int("prefixes", len(prefixes)))
	if err := describeRange(context.Background(), fetcher, prefixes, os.Stdout); err != nil {
		log.Fatal("unable to describe range", zap.Error(err))
	}
}
