package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"classdrop/internal/auth"
	"classdrop/internal/cache"
	"classdrop/internal/config"
	"classdrop/internal/db"
	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
	"classdrop/internal/repository"
	"classdrop/internal/service"
)

// SeedPrincipal is one entry of a seed file.
type SeedPrincipal struct {
	Name     string     `json:"name"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func main() {
	source := flag.String("source", "", "path or http(s) URL of a JSON array of {name, password, role}")
	remove := flag.Bool("remove", false, "delete the principal named by -name and -role")
	role := flag.String("role", "", "principal role (student or teacher)")
	name := flag.String("name", "", "principal name")
	password := flag.String("password", "", "password for a single principal given by -name and -role")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	principals := repository.NewPrincipalRepository(gormDB)
	ctx := context.Background()

	if *remove {
		r := model.Role(*role)
		if !r.Valid() || *name == "" {
			log.Fatalf("-remove needs -role student|teacher and -name")
		}
		cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cacheClient.Close()
		if err := removePrincipal(ctx, principals, cacheClient, *name, r); err != nil {
			log.Fatalf("Failed to remove %s %q: %v", r, *name, err)
		}
		log.Printf("Removed %s %q", r, *name)
		return
	}

	var entries []SeedPrincipal
	switch {
	case *source != "":
		log.Printf("Loading principals from: %s", *source)
		entries, err = loadSeed(*source)
		if err != nil {
			log.Fatalf("Failed to load principals: %v", err)
		}
		log.Printf("Loaded %d principals", len(entries))
	case *name != "" && *password != "" && model.Role(*role).Valid():
		entries = []SeedPrincipal{{Name: *name, Password: *password, Role: model.Role(*role)}}
	default:
		log.Fatalf("either -source or -name, -password and -role are required")
	}

	jwtService := auth.NewJWTService(auth.TokenConfig{Secret: []byte(cfg.JWTSecret), TTL: cfg.TokenTTL})
	authService := service.NewAuthService(principals, jwtService)

	created, existing, err := seedPrincipals(ctx, authService, entries)
	if err != nil {
		log.Fatalf("Failed to seed principals: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New principals created: %d", created)
	log.Printf("  - Already registered: %d", existing)
}

// loadSeed reads seed entries from a local file or an http(s) URL.
func loadSeed(source string) ([]SeedPrincipal, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchSeedFromAPI(source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return parseSeed(f)
}

// fetchSeedFromAPI fetches seed entries from a remote JSON document.
func fetchSeedFromAPI(url string) ([]SeedPrincipal, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}
	return parseSeed(resp.Body)
}

func parseSeed(r io.Reader) ([]SeedPrincipal, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	var entries []SeedPrincipal
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	for i, e := range entries {
		if e.Name == "" || e.Password == "" || !e.Role.Valid() {
			return nil, fmt.Errorf("entry %d: name, password and a student or teacher role are required", i)
		}
		if len(e.Password) > auth.MaxPasswordBytes {
			return nil, fmt.Errorf("entry %d: %w", i, apperrors.ErrPasswordTooLong)
		}
	}
	return entries, nil
}

// seedPrincipals registers every entry. Names already taken in their role are
// counted and left untouched.
func seedPrincipals(ctx context.Context, svc service.AuthService, entries []SeedPrincipal) (created int, existing int, err error) {
	for _, e := range entries {
		_, err := svc.Register(ctx, e.Name, e.Password, e.Role)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrAlreadyExists):
			log.Printf("Skipping %s %q: already registered", e.Role, e.Name)
			existing++
		default:
			return created, existing, fmt.Errorf("error registering %s %q: %w", e.Role, e.Name, err)
		}
	}
	return created, existing, nil
}

// removePrincipal deletes a principal and drops the cached assignment listing,
// which may hold the assignments and comments the delete cascaded to.
func removePrincipal(ctx context.Context, principals repository.PrincipalRepository, cacheClient *cache.Client, name string, role model.Role) error {
	if err := principals.Delete(ctx, name, role); err != nil {
		return err
	}
	return cacheClient.Delete(ctx, service.AssignmentListCacheKey)
}
