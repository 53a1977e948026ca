package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bunpou/bunpou/internal/profile"
	"github.com/bunpou/bunpou/internal/version"
	"github.com/bunpou/bunpou/server"
	"github.com/bunpou/bunpou/store"
	"github.com/bunpou/bunpou/store/db"
)

const (
	greetingBanner = `
bunpou - Japanese grammar study server
version %s
`
)

var (
	rootCmd = &cobra.Command{
		Use:   "bunpou",
		Short: "A web server for studying Japanese grammar patterns",
		Run: func(_ *cobra.Command, _ []string) {
			instanceProfile := loadProfile()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			st, err := newStore(ctx, instanceProfile)
			if err != nil {
				cancel()
				slog.Error("failed to create store", "error", err)
				return
			}

			s, err := server.NewServer(instanceProfile, st)
			if err != nil {
				cancel()
				slog.Error("failed to create server", "error", err)
				return
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigChan
				slog.Info("received signal, shutting down", "signal", sig.String())
				cancel()
			}()

			fmt.Printf(greetingBanner, instanceProfile.Version)
			if err := s.Start(ctx); err != nil {
				slog.Error("failed to start server", "error", err)
				cancel()
			}

			<-ctx.Done()
		},
	}

	importCmd = &cobra.Command{
		Use:   "import [file...]",
		Short: "Import grammar catalog entries from JSON files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			instanceProfile := loadProfile()

			ctx := context.Background()
			st, err := newStore(ctx, instanceProfile)
			if err != nil {
				slog.Error("failed to create store", "error", err)
				return
			}
			defer st.Close()

			total := 0
			for _, path := range args {
				n, err := importCatalogFile(ctx, st, path)
				if err != nil {
					slog.Error("failed to import catalog file", "file", path, "error", err)
					return
				}
				total += n
			}
			slog.Info("catalog import finished", "entries", total)
		},
	}
)

func init() {
	viper.SetDefault("mode", "demo")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8081)

	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("bunpou")
	viper.AutomaticEnv()

	rootCmd.AddCommand(importCmd)
}

func loadProfile() *profile.Profile {
	instanceProfile := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version.GetCurrentVersion(viper.GetString("mode")),
	}
	instanceProfile.FromEnv()
	if err := instanceProfile.Validate(); err != nil {
		slog.Error("invalid profile", "error", err)
		os.Exit(1)
	}
	return instanceProfile
}

func newStore(ctx context.Context, instanceProfile *profile.Profile) (*store.Store, error) {
	driver, err := db.NewDBDriver(instanceProfile)
	if err != nil {
		return nil, err
	}
	st := store.New(driver, instanceProfile)
	if err := st.Migrate(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// catalogEntry is the JSON shape of exported catalog files. Field names
// follow the content pipeline's export format; "id" strings are Indonesian
// translations.
type catalogEntry struct {
	GrammarID string `json:"grammar_id"`
	Level     string `json:"level"`
	Lesson    int    `json:"lesson"`
	Pattern   string `json:"pattern"`
	Meaning   string `json:"meaning_id"`
	Usage     string `json:"usage"`
	Notes     string `json:"notes"`
	Examples  []struct {
		Japanese    string `json:"jp"`
		Romaji      string `json:"romaji"`
		Translation string `json:"id"`
	} `json:"example"`
}

func importCatalogFile(ctx context.Context, st *store.Store, path string) (int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var entries []catalogEntry
	if err := json.Unmarshal(buf, &entries); err != nil {
		return 0, err
	}

	for i, entry := range entries {
		create := &store.Grammar{
			ID:      entry.GrammarID,
			Level:   entry.Level,
			Lesson:  entry.Lesson,
			Pattern: entry.Pattern,
			Meaning: entry.Meaning,
			Usage:   entry.Usage,
			Notes:   entry.Notes,
		}
		if create.ID == "" {
			create.ID = fmt.Sprintf("g_%s_%d_%d", entry.Level, entry.Lesson, i)
		}
		for _, ex := range entry.Examples {
			create.Examples = append(create.Examples, store.Example{
				Japanese:    ex.Japanese,
				Romaji:      ex.Romaji,
				Translation: ex.Translation,
			})
		}
		if _, err := st.CreateGrammar(ctx, create); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
