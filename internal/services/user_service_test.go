package services_test

import (
	"strings"
	"testing"

	"shoply/internal/apperr"
	"shoply/internal/repos"
	"shoply/internal/services"
)

func TestCreateUser_HashesPasswordAndChecksEmail(t *testing.T) {
	db := memdb(t)
	userRepo := repos.NewUserRepo(db)
	svc := services.NewUserService(userRepo)

	u, err := svc.CreateUser("Alice", "alice@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	stored, err := userRepo.Get(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stored.Hash, "Passw0rd!") || !strings.HasPrefix(stored.Hash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %q", stored.Hash)
	}

	if _, err := svc.CreateUser("Mallory", "ALICE@shoply.test", "Passw0rd!"); !apperr.Is(err, apperr.EmailTaken) {
		t.Fatalf("want EMAIL_ALREADY_TAKEN, got %v", err)
	}
}

// The service normalizes emails itself: surrounding whitespace is trimmed
// before storage, and malformed or oversized addresses never reach the store.
func TestCreateUser_EmailNormalization(t *testing.T) {
	db := memdb(t)
	userRepo := repos.NewUserRepo(db)
	svc := services.NewUserService(userRepo)

	u, err := svc.CreateUser("Alice", "  alice@shoply.test  ", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "alice@shoply.test" {
		t.Fatalf("email not trimmed: %q", u.Email)
	}

	if _, err := svc.CreateUser("Bob", "not-an-email", "Passw0rd!"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("want VALIDATION for malformed email, got %v", err)
	}
	long := strings.Repeat("a", 95) + "@shoply.test"
	if _, err := svc.CreateUser("Bob", long, "Passw0rd!"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("want VALIDATION for oversized email, got %v", err)
	}
	if _, err := svc.UpdateUser(u.ID, "Alice", "also not an email"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("want VALIDATION on update, got %v", err)
	}
}

func TestCreateUser_WeakPasswordRejected(t *testing.T) {
	svc := services.NewUserService(repos.NewUserRepo(memdb(t)))
	if _, err := svc.CreateUser("Alice", "alice@shoply.test", "short"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("want VALIDATION, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := memdb(t)
	userRepo := repos.NewUserRepo(db)
	svc := services.NewUserService(userRepo)

	u, err := svc.CreateUser("Alice", "alice@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.ChangePassword(u.ID, "wrong-old", "N3wPassw0rd!"); !apperr.Is(err, apperr.InvalidCredentials) {
		t.Fatalf("want INVALID_CREDENTIALS, got %v", err)
	}
	if err := svc.ChangePassword(u.ID, "Passw0rd!", "weak"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("want VALIDATION for weak new password, got %v", err)
	}
	if err := svc.ChangePassword(u.ID, "Passw0rd!", "N3wPassw0rd!"); err != nil {
		t.Fatal(err)
	}

	auth := services.NewAuthService(userRepo, "test-secret")
	if _, _, err := auth.Login("alice@shoply.test", "Passw0rd!"); !apperr.Is(err, apperr.InvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, err := auth.Login("alice@shoply.test", "N3wPassw0rd!"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}
}

func TestUpdateUser_EmailUniquenessExcludesSelf(t *testing.T) {
	db := memdb(t)
	svc := services.NewUserService(repos.NewUserRepo(db))

	a, err := svc.CreateUser("Alice", "alice@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.CreateUser("Bob", "bob@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateUser(a.ID, "Alice A", "Alice@shoply.test"); err != nil {
		t.Fatalf("keeping own email must pass: %v", err)
	}
	if _, err := svc.UpdateUser(b.ID, "Bob", "alice@shoply.test"); !apperr.Is(err, apperr.EmailTaken) {
		t.Fatalf("want EMAIL_ALREADY_TAKEN, got %v", err)
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	db := memdb(t)
	userRepo := repos.NewUserRepo(db)
	userSvc := services.NewUserService(userRepo)
	auth := services.NewAuthService(userRepo, "test-secret")

	u, err := userSvc.CreateUser("Alice", "alice@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	_, tok, err := auth.Login("alice@shoply.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := auth.ParseToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != u.ID || claims.Email != "alice@shoply.test" {
		t.Fatalf("bad claims: %+v", claims)
	}

	other := services.NewAuthService(userRepo, "other-secret")
	if _, err := other.ParseToken(tok); err == nil {
		t.Fatal("token must not validate under a different secret")
	}
}
