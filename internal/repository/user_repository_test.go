package repository

import (
	"context"
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/estate-ads/internal/utils"
)

func TestCreateAndGetUser(t *testing.T) {
	db := openTestDB(t, testUsersDDL)
	repo := NewUserRepo(db)

	id, err := repo.Create(context.Background(), "  Buyer@Example.COM ", "hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	u, err := repo.GetByEmail(context.Background(), "buyer@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if u.ID != id {
		t.Fatalf("id = %d, want %d", u.ID, id)
	}
	if u.Email != "buyer@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", u.Email)
	}
	if u.PasswordHash == "hunter2" {
		t.Fatal("password stored in plain text")
	}
	if !utils.VerifyPassword(u.PasswordHash, "hunter2") {
		t.Fatal("stored hash does not verify against the password")
	}
	if utils.VerifyPassword(u.PasswordHash, "wrong") {
		t.Fatal("wrong password verified")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := openTestDB(t, testUsersDDL)
	repo := NewUserRepo(db)

	if _, err := repo.Create(context.Background(), "dup@example.com", "pw", bcrypt.MinCost); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := repo.Create(context.Background(), "dup@example.com", "pw2", bcrypt.MinCost); err != ErrEmailExists {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
}

func TestGetByEmailAbsent(t *testing.T) {
	db := openTestDB(t, testUsersDDL)
	repo := NewUserRepo(db)

	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); err != sql.ErrNoRows {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestPing(t *testing.T) {
	db := openTestDB(t, testUsersDDL)
	repo := NewUserRepo(db)

	n, err := repo.Ping(context.Background())
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if n != 1 {
		t.Fatalf("ping = %d, want 1", n)
	}
}
