// Comando de bootstrap: crea el primer usuario (normalmente el admin inicial)
// directamente contra la base de datos. El password se pide por terminal sin eco.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/invorya/stockscan-api/internal/application/auth"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/infrastructure/postgres"
	"github.com/invorya/stockscan-api/pkg/config"
	"github.com/invorya/stockscan-api/pkg/logger"
)

func main() {
	username := flag.String("username", "", "username del usuario a crear")
	fullName := flag.String("name", "", "nombre completo")
	role := flag.String("role", string(entity.RoleAdmin), "rol: admin, manager u operator")
	flag.Parse()

	if *username == "" || *fullName == "" {
		fmt.Fprintln(os.Stderr, "uso: seeduser -username <u> -name <n> [-role admin|manager|operator]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintln(os.Stderr, "leer password:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintln(os.Stderr, "migraciones:", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// El secure store no participa en el registro: nilStore basta aquí.
	manager := auth.NewSessionManager(postgres.NewUserRepository(pool), nilStore{}, 0, logger.Nop())

	user, err := manager.Register(ctx, &entity.User{
		Username: *username,
		FullName: *fullName,
		Role:     entity.Role(*role),
	}, string(password))
	if err != nil {
		fmt.Fprintln(os.Stderr, "crear usuario:", err)
		os.Exit(1)
	}

	fmt.Printf("usuario creado: %s (%s, rol %s)\n", user.Username, user.ID, user.Role)
}

// nilStore implementación vacía del puerto SecureStore.
type nilStore struct{}

func (nilStore) Set(string, string) error { return nil }
func (nilStore) Get(string) (string, bool) {
	return "", false
}
func (nilStore) Remove(string) error { return nil }
func (nilStore) RemoveAll() error    { return nil }
