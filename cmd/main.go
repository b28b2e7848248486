package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chatsphere/domain"
	"chatsphere/repositories"
	"chatsphere/services"
	"chatsphere/store"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and drives the input loop. Errors are
// centralized here so deferred cleanup (the database close) always
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Store & Services
	repository := repositories.NewStateRepository(db, log)
	st, err := store.NewStore(repository, log)
	if err != nil {
		return err
	}
	sessions := services.NewSessionService(st, log)
	spheres := services.NewSphereService(st, sessions, log)

	// 4. Renderer, subscribed to every committed mutation
	renderer := newConsoleRenderer(st, os.Stdout)
	st.RegisterSink(renderer)
	renderer.Render()

	// 5. Input loop, one command per line
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}
		if err := dispatch(line, sessions, spheres); err != nil {
			color.Error.Println(err.Error())
		}
	}
	log.Info("Program stopped cleanly")
	return scanner.Err()
}

// dispatch maps input lines onto core commands; a line that is not a
// slash command is posted to the selected channel.
func dispatch(line string, sessions services.ISessionService, spheres services.ISphereService) error {
	if !strings.HasPrefix(line, "/") {
		return spheres.PostMessage(line)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/signup", "/login":
		if len(fields) != 3 {
			return fmt.Errorf("usage: %s <username> <password>", fields[0])
		}
		if fields[0] == "/signup" {
			_, err := sessions.SignUp(fields[1], fields[2])
			return err
		}
		_, err := sessions.LogIn(fields[1], fields[2])
		return err
	case "/logout":
		sessions.LogOut()
		return nil
	case "/sphere":
		id, err := parseID(fields[1:])
		if err != nil {
			return err
		}
		sessions.SelectSphere(id)
		return nil
	case "/channel":
		id, err := parseID(fields[1:])
		if err != nil {
			return err
		}
		return sessions.SelectChannel(id)
	case "/create":
		name := strings.TrimSpace(strings.TrimPrefix(line, "/create"))
		_, err := spheres.CreateSphere(name)
		return err
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseID(args []string) (domain.ID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id")
	}
	raw, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return domain.ID(raw), nil
}
