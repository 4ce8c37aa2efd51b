package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dilroop-us/poeckt-kv/core"
	"github.com/dilroop-us/poeckt-kv/internal/config"
	"github.com/dilroop-us/poeckt-kv/internal/utils"
)

const helpString = `
Available Commands:

SET <key> <value>
  Store a value for the given key.
  Overwrites the value if the key already exists.
  Response: ok

GET <key>
  Retrieve the value associated with the key.
  Response: value | nil

DELETE <key>
  Delete the key and its value.
  Response: ok | not found

EXISTS <key>
  Check if a key exists.
  Response: true | false

COUNT
  Return the total number of keys stored.
  Response: integer

LIST
  List all stored keys.
  Response: list of keys | nil

HELP
  Show this help message.

EXIT
  Close the store and quit.
`

func main() {
	dir := flag.String("dir", "", "store directory (overrides the config file)")
	configPath := flag.String("config", "poeckt.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("could not load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Dir = *dir
	}

	initLogger(&cfg)

	store, err := core.Open(cfg.Dir, core.WithLogFileName(cfg.LogFileName))
	if err != nil {
		slog.Error("could not open store", "dir", cfg.Dir, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Opened store at %v (%d keys)\n", cfg.Dir, store.Len())
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Println("input error:", err)
			}
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, key, value, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		fmt.Println(executeCommand(store, cmd, key, value))
	}
}

func initLogger(cfg *config.Config) {
	level := parseLogLevel(cfg.Logger.Level)

	var handler slog.Handler
	if cfg.Logger.JSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func executeCommand(store *core.Store, cmd, key, value string) string {
	switch strings.ToLower(cmd) {
	case "set":
		if key == "" {
			return "usage: set <key> <value>"
		}
		if err := store.Put([]byte(key), []byte(value)); err != nil {
			return "error: " + err.Error()
		}
		return "ok"

	case "get":
		if key == "" {
			return "usage: get <key>"
		}
		val, err := store.Get([]byte(key))
		if errors.Is(err, core.ErrNotFound) {
			return "nil"
		}
		if err != nil {
			return "error: " + err.Error()
		}
		return string(val)

	case "delete":
		if key == "" {
			return "usage: delete <key>"
		}
		err := store.Del([]byte(key))
		if errors.Is(err, core.ErrNotFound) {
			return "not found"
		}
		if err != nil {
			return "error: " + err.Error()
		}
		return "ok"

	case "exists":
		if key == "" {
			return "usage: exists <key>"
		}
		_, err := store.Get([]byte(key))
		if errors.Is(err, core.ErrNotFound) {
			return "false"
		}
		if err != nil {
			return "error: " + err.Error()
		}
		return "true"

	case "count":
		return strconv.Itoa(store.Len())

	case "list":
		keys := store.Keys()
		if len(keys) == 0 {
			return "nil"
		}
		return "----- KEYS START -----\n" + strings.Join(keys, "\n") + "\n----- KEYS END -----"

	case "help":
		return strings.TrimSpace(helpString)

	default:
		return "Invalid Command"
	}
}
