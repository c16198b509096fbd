package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/profilecms/domain"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&DBUser{}, &DBArticle{}, &DBEvent{}, &DBEventRegistration{}, &DBGalleryPhoto{}, &DBContactMessage{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, repo domain.UserRepository, email, username string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		Username:     username,
		FullName:     "Test User",
		PasswordHash: "hashed",
		Role:         role,
		Status:       domain.UserStatusActive,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	created := seedUser(t, repo, "a@example.com", "alice", domain.RoleAdmin)
	if created.ID == 0 {
		t.Fatal("expected Create to backfill the ID")
	}

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.Username != "alice" || byEmail.Role != domain.RoleAdmin {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	byUsername, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byUsername.ID != created.ID {
		t.Errorf("expected same user, got %d and %d", byUsername.ID, created.ID)
	}

	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Email != "a@example.com" {
		t.Errorf("unexpected email %q", byID.Email)
	}
}

func TestUserRepositoryImpl_NotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound from Delete, got %v", err)
	}
}

func TestUserRepositoryImpl_RoleNormalization(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Insert a row with legacy casing directly.
	db.Create(&DBUser{Email: "legacy@example.com", Username: "legacy", Role: "SUPER_ADMIN", Status: "active"})

	user, err := repo.FindByEmail(ctx, "legacy@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleSuperAdmin {
		t.Errorf("expected normalized super_admin, got %q", user.Role)
	}

	// Unknown stored roles degrade to the least privilege.
	db.Create(&DBUser{Email: "odd@example.com", Username: "odd", Role: "owner", Status: "active"})
	user, err = repo.FindByEmail(ctx, "odd@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected fallback to user, got %q", user.Role)
	}
}

func TestUserRepositoryImpl_List(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "a@example.com", "alice", domain.RoleAdmin)
	seedUser(t, repo, "b@example.com", "bob", domain.RoleUser)
	seedUser(t, repo, "c@example.com", "carol", domain.RoleUser)

	users, total, err := repo.List(ctx, domain.ListFilter{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(users) != 2 {
		t.Errorf("expected page of 2, got %d", len(users))
	}

	users, total, err = repo.List(ctx, domain.ListFilter{Search: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].Username != "bob" {
		t.Errorf("expected only bob, got total=%d users=%v", total, users)
	}
}

func TestUserRepositoryImpl_RecordLogin(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "a@example.com", "alice", domain.RoleUser)

	at := time.Now().Truncate(time.Second)
	if err := repo.RecordLogin(ctx, user.ID, at, "10.0.0.9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.RecordLogin(ctx, user.ID, at.Add(time.Minute), "10.0.0.10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LoginCount != 2 {
		t.Errorf("expected login count 2, got %d", got.LoginCount)
	}
	if got.LastLoginIP != "10.0.0.10" {
		t.Errorf("expected last IP to win, got %q", got.LastLoginIP)
	}
	if got.LastLoginAt == nil {
		t.Error("expected last login timestamp to be set")
	}
}

func TestUserRepositoryImpl_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "a@example.com", "alice", domain.RoleUser)
	created, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Callers routinely hand Update an entity with a zero CreatedAt.
	user.FullName = "Alice Updated"
	user.Role = domain.RoleAdmin
	user.CreatedAt = time.Time{}

	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Alice Updated" || got.Role != domain.RoleAdmin {
		t.Errorf("update did not persist: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Update changed created_at: before=%v after=%v", created.CreatedAt, got.CreatedAt)
	}
}
