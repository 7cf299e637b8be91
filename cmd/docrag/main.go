package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"docrag/internal/chunker"
	"docrag/internal/config"
	"docrag/internal/domain"
	"docrag/internal/service"
	"docrag/internal/summarizer"
	"docrag/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath  string
		query    string
		maxChars int
		keywords bool
		related  string
		summary  bool
		stats    bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docrag/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "Print the relevant context for this question and exit")
	flag.IntVar(&maxChars, "max-chars", 0, "Context budget in characters (overrides config)")
	flag.BoolVar(&keywords, "keywords", false, "With --query, print the expanded keywords instead of the context")
	flag.StringVar(&related, "related", "", "Print words that co-occur with this word and exit")
	flag.BoolVar(&summary, "summary", false, "Print an extractive summary and exit")
	flag.BoolVar(&stats, "stats", false, "Print index statistics and exit")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) != 1 {
		fmt.Println("Usage: docrag [--config=config.yaml] [--query=...] document.txt")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if maxChars > 0 {
		cfg.Retrieval.MaxChars = maxChars
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}
	logger := newLogger(cfg.Log)

	var ch domain.Chunker
	switch cfg.Chunker.Type {
	case "lines", "":
		ch = chunker.NewLineChunker(cfg.Chunker.LinesPerChunk, cfg.Chunker.OverlapLines)
	default:
		logger.Fatalf("unknown chunker: %s", cfg.Chunker.Type)
	}

	var sum *summarizer.FrequencySummarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	default:
		logger.Fatalf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	data, err := os.ReadFile(inputs[0])
	if err != nil {
		logger.Fatalf("read document: %v", err)
	}

	engine := service.NewEngine(ch, sum, logger.WithField("document", inputs[0]))
	engine.Index(string(data))

	switch {
	case stats:
		fmt.Println(engine.Stats())
	case summary:
		s, _ := engine.Summary(cfg.Summarizer.MaxSentences)
		fmt.Println(s)
	case related != "":
		neighbors, _ := engine.RelatedWords(strings.ToLower(related), cfg.Retrieval.TopK*4)
		for _, n := range neighbors {
			fmt.Printf("%-24s %d\n", n.Word, n.Count)
		}
	case query != "" && keywords:
		kws, _ := engine.ExtractKeywords(query)
		for _, kw := range kws {
			fmt.Printf("%-24s %.2f  %s\n", kw.Word, kw.Weight, kw.Source)
		}
	case query != "":
		ctx, _ := engine.RelevantContext(query, cfg.Retrieval.MaxChars)
		fmt.Println(ctx)
	default:
		s, _ := engine.Summary(cfg.Summarizer.MaxSentences)
		m := tui.New(engine, s, cfg.Retrieval.TopK, cfg.Retrieval.MaxChars)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			logger.Fatal(err)
		}
	}
}

func newLogger(cfg config.LogConfig) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return logrus.NewEntry(l)
}
