package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/japaniel/kotoba/pkg/config"
	"github.com/japaniel/kotoba/pkg/dictionary"
	"github.com/japaniel/kotoba/pkg/game"
	"github.com/japaniel/kotoba/pkg/harvest"
	"github.com/japaniel/kotoba/pkg/stats"

	_ "github.com/mattn/go-sqlite3"
)

const sessionKey game.Key = 1

func main() {
	modeFlag := flag.String("mode", "gloss-to-kana", "Quiz mode (gloss-to-kana, kana-to-gloss, kana-to-kanji, kanji-to-kana, kanji-to-gloss, gloss-to-kanji)")
	levelsFlag := flag.String("levels", "n4", "Comma-separated JLPT levels to draw from (n1..n4)")
	posFlag := flag.String("pos", "nouns", "Comma-separated part-of-speech tags or categories (nouns, verbs, prenominals)")
	urlFlag := flag.String("url", "", "Harvest the quiz pool from this article URL")
	textFlag := flag.String("text", "", "Harvest the quiz pool from this text file")
	userFlag := flag.String("user", "player", "Name answers are attributed to")
	dictFlag := flag.String("dict", "", "Dictionary snapshot path (overrides KOTOBA_DICT)")
	dbFlag := flag.String("db", "", "Stats database path (overrides KOTOBA_STATS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dictFlag != "" {
		cfg.DictPath = *dictFlag
	}
	if *dbFlag != "" {
		cfg.StatsPath = *dbFlag
	}

	mode, err := game.ParseMode(*modeFlag)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}
	levels, err := parseLevels(*levelsFlag)
	if err != nil {
		log.Fatalf("Invalid levels: %v", err)
	}
	pos, err := parsePos(*posFlag)
	if err != nil {
		log.Fatalf("Invalid part-of-speech list: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lex, err := dictionary.Load(cfg.DictPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary %s: %v", cfg.DictPath, err)
	}
	fmt.Printf("Loaded %d dictionary entries from %s\n", lex.Len(), cfg.DictPath)

	msgr := newConsoleMessenger()
	mgr := game.NewManager(lex, msgr)
	mgr.RoundTimeout = cfg.RoundTimeout
	mgr.Logger = log.New(os.Stderr, "", log.LstdFlags)

	if cfg.StatsPath != "" {
		conn, err := sql.Open("sqlite3", cfg.StatsPath)
		if err != nil {
			log.Fatalf("Failed to open stats database: %v", err)
		}
		defer conn.Close()
		if err := stats.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize stats database: %v", err)
		}
		mgr.Recorder = stats.NewRecorder(conn)
		fmt.Printf("Recording rounds to %s\n", cfg.StatsPath)
	}

	switch {
	case *urlFlag != "" || *textFlag != "":
		pool, err := harvestPool(ctx, lex, cfg.HarvestWorkers, *urlFlag, *textFlag)
		if err != nil {
			log.Fatalf("Failed to harvest pool: %v", err)
		}
		if len(pool) == 0 {
			log.Fatal("The text contained no quizzable dictionary words")
		}
		fmt.Printf("Harvested %d words\n", len(pool))
		err = mgr.StartPool(ctx, sessionKey, "console", mode, pool, pos)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
	default:
		err = mgr.Start(ctx, sessionKey, "console", mode, levels, pos)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
	}

	go readAnswers(mgr, msgr, *userFlag)

	for mgr.Active(sessionKey) {
		select {
		case <-ctx.Done():
			mgr.Stop(sessionKey)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// harvestPool builds a quiz pool from a URL or a local text file.
func harvestPool(ctx context.Context, lex *dictionary.Lexicon, workers int, rawURL, textPath string) ([]*dictionary.Entry, error) {
	h, err := harvest.NewHarvester(lex)
	if err != nil {
		return nil, err
	}
	h.Workers = workers

	var text string
	if rawURL != "" {
		article, err := harvest.FetchArticle(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Title: %s\n", article.Title)
		text = article.Text
	} else {
		raw, err := os.ReadFile(textPath)
		if err != nil {
			return nil, err
		}
		text = string(raw)
	}

	return h.Pool(ctx, text)
}

// readAnswers forwards stdin lines as selection events: a number picks the
// matching option of the latest menu, "stop" ends the session.
func readAnswers(mgr *game.Manager, msgr *consoleMessenger, user string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "stop" || line == "quit":
			mgr.Stop(sessionKey)
		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Println("Type an option number, or stop to quit")
				continue
			}
			opt, ok := msgr.option(n - 1)
			if !ok {
				fmt.Println("No such option")
				continue
			}
			mgr.Dispatch(game.Event{ID: opt.ID, User: user})
		}
	}
}

// consoleMessenger renders menus on stdout. It remembers the latest option
// list so typed numbers can be mapped back to option ids.
type consoleMessenger struct {
	mu      sync.Mutex
	current []game.Option
}

func newConsoleMessenger() *consoleMessenger {
	return &consoleMessenger{}
}

func (c *consoleMessenger) option(i int) (game.Option, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.current) {
		return game.Option{}, false
	}
	return c.current[i], true
}

func (c *consoleMessenger) Send(_ context.Context, _ game.ChannelID, content string, opts []game.Option) (game.MessageRef, error) {
	fmt.Println(content)
	c.printOptions(opts)
	return "console", nil
}

func (c *consoleMessenger) Edit(_ context.Context, _ game.ChannelID, _ game.MessageRef, opts []game.Option) error {
	c.printOptions(opts)
	return nil
}

func (c *consoleMessenger) Respond(_ context.Context, ev game.Event, content string) error {
	fmt.Printf("> %s\n", content)
	return nil
}

func (c *consoleMessenger) printOptions(opts []game.Option) {
	if len(opts) == 0 {
		return
	}
	c.mu.Lock()
	c.current = opts
	c.mu.Unlock()
	for i, o := range opts {
		marker := " "
		if o.Disabled {
			marker = "x"
		}
		fmt.Printf("  [%s] %d) %s\n", marker, i+1, o.Label)
	}
}
