package service

import (
	"context"
	"testing"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return &UserService{
		Users: dao.NewUsers(db),
		Audit: newAuditService(db),
		Conf: &config.Config{
			Jwt: &config.Jwt{
				Secret:        "test-secret",
				AccessExpire:  3600,
				RefreshExpire: 86400,
			},
		},
	}
}

func TestRegisterLoginRefresh(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Joana",
		Email:    "joana@example.com",
		Password: "supersecret",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.User.Role != models.RoleViewer {
		t.Errorf("role = %s, want viewer", registered.User.Role)
	}
	if registered.User.Password == "supersecret" {
		t.Error("password stored in plaintext")
	}

	logged, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "joana@example.com",
		Password: "supersecret",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Token.AccessToken == "" || logged.Token.RefreshToken == "" {
		t.Fatal("login must issue both tokens")
	}

	tokens, err := svc.Refresh(ctx, logged.Token.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if tokens.AccessToken == "" {
		t.Fatal("refresh must issue a new access token")
	}

	// an access token is not accepted as a refresh token
	if _, err := svc.Refresh(ctx, logged.Token.AccessToken); KindOf(err) != ErrKindValidation {
		t.Errorf("kind = %v, want validation", KindOf(err))
	}
}

func TestLoginRejectsBadCredentialsAndInactive(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Joana",
		Email:    "joana@example.com",
		Password: "supersecret",
	}, ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "joana@example.com",
		Password: "wrong",
	}, ""); KindOf(err) != ErrKindValidation {
		t.Errorf("wrong password kind = %v, want validation", KindOf(err))
	}

	if err := db.Model(&models.User{}).Where("email = ?", "joana@example.com").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "joana@example.com",
		Password: "supersecret",
	}, ""); KindOf(err) != ErrKindValidation {
		t.Errorf("inactive kind = %v, want validation", KindOf(err))
	}
}

func TestUpdateUserRefetchFailureIsKinded(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(db)
	user := seedUser(t, db, models.RoleSeller, 0)

	if err := db.Migrator().DropTable(&models.User{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.refetch(context.Background(), user.ID)
	if KindOf(err) != ErrKindPersistence {
		t.Errorf("kind = %v, want persistence", KindOf(err))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Joana", Email: "joana@example.com", Password: "supersecret"}
	if _, err := svc.Register(ctx, req, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, req, ""); KindOf(err) != ErrKindValidation {
		t.Errorf("kind = %v, want validation", KindOf(err))
	}
}
