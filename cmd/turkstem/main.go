package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/stemmer"
	"github.com/oarkflow/stemmer/tokenizer"
	"github.com/oarkflow/stemmer/turkish"
	"github.com/oarkflow/stemmer/web"
	"github.com/oarkflow/stemmer/wordlist"
)

func loadEngine(c *cli.Context, key string) (*stemmer.Engine, error) {
	cfg := &stemmer.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := stemmer.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		cfg = loaded
	}
	return stemmer.GetOrSetEngine(key, cfg)
}

// readWords returns the arguments, or the lines of stdin when there are none.
func readWords(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var words []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

func stemAction(c *cli.Context) error {
	eng, err := loadEngine(c, c.String("key"))
	if err != nil {
		return err
	}
	defer eng.Close()
	words, err := readWords(c.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	stems, errs := eng.StemBatch(words, tokenizer.Language(c.String("language")))
	if len(errs) > 0 {
		return errs[0]
	}
	out := c.App.Writer
	for i, word := range words {
		switch {
		case c.Bool("json"):
			line, err := json.Marshal(map[string]any{"word": word, "stem": stems[i], "candidates": eng.Candidates(word)})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(line))
		case c.Bool("candidates"):
			fmt.Fprintf(out, "%s\t%s\t%s\n", word, stems[i], strings.Join(eng.Candidates(word), ","))
		default:
			fmt.Fprintf(out, "%s\t%s\n", word, stems[i])
		}
	}
	return nil
}

func analyzeAction(c *cli.Context) error {
	eng, err := loadEngine(c, c.String("key"))
	if err != nil {
		return err
	}
	defer eng.Close()
	tokens, err := eng.Analyze(strings.Join(c.Args().Slice(), " "), tokenizer.Language(c.String("language")))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, strings.Join(tokens, " "))
	return nil
}

// defaultLists maps the names accepted by the defaults command to the bundled
// word lists.
func defaultLists(opts *turkish.Options) map[string]wordlist.Set {
	return map[string]wordlist.Set{
		"protected":         opts.ProtectedWords,
		"vowel-harmony":     opts.VowelHarmonyExceptions,
		"last-consonant":    opts.LastConsonantExceptions,
		"average-stem-size": opts.AverageStemSizeWords,
	}
}

func defaultsAction(c *cli.Context) error {
	opts, err := turkish.DefaultOptions()
	if err != nil {
		return err
	}
	lists := defaultLists(opts)
	set, ok := lists[c.Args().First()]
	if !ok {
		return fmt.Errorf("unknown word list %q", c.Args().First())
	}
	for _, word := range set.Words() {
		fmt.Fprintln(c.App.Writer, word)
	}
	return nil
}

func serveAction(c *cli.Context) error {
	eng, err := loadEngine(c, c.String("key"))
	if err != nil {
		return err
	}
	defer eng.Close()
	web.StartServer(fmt.Sprintf("%s:%s", c.String("host"), c.String("port")), c.String("prefix"))
	return nil
}

func newApp() *cli.App {
	keyFlag := &cli.StringFlag{
		Name:  "key",
		Usage: "Engine key",
		Value: "turkish",
	}
	languageFlag := &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"l"},
		Usage:   "Language code (tr, en, fr, ...)",
		Value:   string(tokenizer.TURKISH),
	}
	return &cli.App{
		Name:  "turkstem",
		Usage: "Rule based Turkish stemmer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a JSON engine configuration",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "stem",
				Usage:     "Stem words given as arguments or one per line on stdin",
				ArgsUsage: "[words...]",
				Flags: []cli.Flag{
					keyFlag,
					languageFlag,
					&cli.BoolFlag{Name: "candidates", Usage: "Print every ranked candidate"},
					&cli.BoolFlag{Name: "json", Usage: "Print one JSON object per word"},
				},
				Action: stemAction,
			},
			{
				Name:      "analyze",
				Usage:     "Tokenize and stem a text",
				ArgsUsage: "text",
				Flags:     []cli.Flag{keyFlag, languageFlag},
				Action:    analyzeAction,
			},
			{
				Name:      "defaults",
				Usage:     "Print a bundled word list, one word per line",
				ArgsUsage: "protected|vowel-harmony|last-consonant|average-stem-size",
				Action:    defaultsAction,
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Flags: []cli.Flag{
					keyFlag,
					&cli.StringFlag{Name: "host", Value: "0.0.0.0", Usage: "Domain name or IP"},
					&cli.StringFlag{Name: "port", Value: "3000", Usage: "Port available to be used on server"},
					&cli.StringFlag{Name: "prefix", Value: "/", Usage: "Route prefix"},
				},
				Action: serveAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("turkstem failed")
		os.Exit(1)
	}
}
